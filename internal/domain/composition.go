package domain

import (
	"fmt"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// GCContent returns the fraction of G and C bases in seq, ignoring case.
// An empty sequence has a GC content of 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	gc := 0

	for i := 0; i < len(seq); i++ {
		switch upper(seq[i]) {
		case 'G', 'C':
			gc++
		}
	}

	return float64(gc) / float64(len(seq))
}

// CodonUsage counts the non-overlapping codons of an RNA sequence whose length
// is a multiple of three.
func CodonUsage(rna string) (m.CodonUsage, error) {
	if len(rna)%codonLen != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrLengthNotDivisibleByThree, len(rna))
	}

	seq, err := Validate(rna, m.RNA)
	if err != nil {
		return nil, err
	}

	usage := make(m.CodonUsage)
	for i := 0; i+codonLen <= len(seq); i += codonLen {
		usage[string(seq[i:i+codonLen])]++
	}

	return usage, nil
}
