package domain

import (
	"fmt"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// Validate checks every character of seq against alphabet, ignoring case, and
// returns an uppercase copy.
func Validate(seq string, alphabet m.Alphabet) (m.Sequence, error) {
	bases := alphabet.Bases()
	if bases == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, alphabet)
	}

	out := make(m.Sequence, len(seq))

	for i := 0; i < len(seq); i++ {
		b := upper(seq[i])
		if !inAlphabet(b, bases) {
			return nil, fmt.Errorf("%w: %q at position %d for %s", ErrInvalidBase, seq[i], i, alphabet)
		}

		out[i] = b
	}

	return out, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}

	return b
}

func inAlphabet(b byte, bases string) bool {
	for i := 0; i < len(bases); i++ {
		if bases[i] == b {
			return true
		}
	}

	return false
}
