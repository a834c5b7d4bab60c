package domain

import (
	"fmt"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// DefaultMaxIndelSize is the largest insertion or deletion drawn when the
// caller does not configure one.
const DefaultMaxIndelSize = 3

// simulatedBases are the replacement and insertion bases drawn by the Simulator.
const simulatedBases = "ATCG"

// RandomSource produces uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Simulator applies random point, insertion and deletion edits.
type Simulator struct {
	rnd RandomSource
}

// NewSimulator creates a Simulator drawing from rnd.
func NewSimulator(rnd RandomSource) *Simulator {
	return &Simulator{rnd: rnd}
}

// Simulate applies up to numMutations random edits to seq in place and returns
// one record per applied edit. Each edit works on the result of the previous
// one. The run stops early, without error, if the sequence becomes empty.
func (s *Simulator) Simulate(seq *m.Sequence, numMutations, maxIndelSize int) ([]m.MutationRecord, error) {
	if len(*seq) == 0 || numMutations <= 0 {
		return nil, nil
	}

	if maxIndelSize < 1 {
		maxIndelSize = 1
	}

	records := make([]m.MutationRecord, 0, numMutations)

	for range numMutations {
		if len(*seq) == 0 {
			break
		}

		kind := s.rnd.IntN(3)
		pos := s.rnd.IntN(len(*seq))

		var (
			record m.MutationRecord
			err    error
		)

		switch kind {
		case 0:
			record, err = s.point(seq, pos)
		case 1:
			record, err = s.insert(seq, pos, maxIndelSize)
		default:
			record, err = s.delete(seq, pos, maxIndelSize)
		}

		if err != nil {
			return records, fmt.Errorf("simulate mutation %d: %w", len(records), err)
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *Simulator) point(seq *m.Sequence, pos int) (m.MutationRecord, error) {
	original := (*seq)[pos]
	base := s.randomBase()

	if err := PointMutation(seq, pos, base); err != nil {
		return m.MutationRecord{}, err
	}

	return m.MutationRecord{
		Index:    pos,
		Kind:     m.MutationPoint,
		Original: string(original),
		Mutated:  string(base),
	}, nil
}

func (s *Simulator) insert(seq *m.Sequence, pos, maxIndelSize int) (m.MutationRecord, error) {
	size := 1 + s.rnd.IntN(maxIndelSize)

	fragment := make([]byte, size)
	for i := range fragment {
		fragment[i] = s.randomBase()
	}

	if err := Insertion(seq, pos, string(fragment)); err != nil {
		return m.MutationRecord{}, err
	}

	return m.MutationRecord{
		Index:    pos,
		Kind:     m.MutationInsertion,
		Original: m.NoBase,
		Mutated:  string(fragment),
	}, nil
}

func (s *Simulator) delete(seq *m.Sequence, pos, maxIndelSize int) (m.MutationRecord, error) {
	size := min(1+s.rnd.IntN(maxIndelSize), len(*seq)-pos)
	removed := string((*seq)[pos : pos+size])

	if err := Deletion(seq, pos, size); err != nil {
		return m.MutationRecord{}, err
	}

	return m.MutationRecord{
		Index:    pos,
		Kind:     m.MutationDeletion,
		Original: removed,
		Mutated:  m.NoBase,
	}, nil
}

func (s *Simulator) randomBase() byte {
	return simulatedBases[s.rnd.IntN(len(simulatedBases))]
}
