package domain

import (
	"fmt"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// PointMutation replaces the base at pos with base. The replacement is not
// checked against any alphabet.
func PointMutation(seq *m.Sequence, pos int, base byte) error {
	if pos < 0 || pos >= len(*seq) {
		return fmt.Errorf("%w: point mutation at %d, length %d", ErrOutOfRange, pos, len(*seq))
	}

	(*seq)[pos] = base

	return nil
}

// Insertion splices fragment into seq before pos. Inserting at len(seq)
// appends.
func Insertion(seq *m.Sequence, pos int, fragment string) error {
	if pos < 0 || pos > len(*seq) {
		return fmt.Errorf("%w: insertion at %d, length %d", ErrOutOfRange, pos, len(*seq))
	}

	mutated := make(m.Sequence, 0, len(*seq)+len(fragment))
	mutated = append(mutated, (*seq)[:pos]...)
	mutated = append(mutated, fragment...)
	mutated = append(mutated, (*seq)[pos:]...)
	*seq = mutated

	return nil
}

// Deletion removes count bases from seq starting at pos.
func Deletion(seq *m.Sequence, pos, count int) error {
	if pos < 0 || count < 0 || pos > len(*seq) || count > len(*seq)-pos {
		return fmt.Errorf("%w: deletion of %d at %d, length %d", ErrOutOfRange, count, pos, len(*seq))
	}

	*seq = append((*seq)[:pos], (*seq)[pos+count:]...)

	return nil
}
