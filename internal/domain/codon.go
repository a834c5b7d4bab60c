package domain

import (
	"fmt"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// StartCodon is the RNA start codon.
const StartCodon = "AUG"

const codonLen = 3

// Classifier resolves RNA codons against an injected genetic code.
type Classifier struct {
	code m.GeneticCode
}

// NewClassifier creates a Classifier backed by code. The map is read, never
// modified.
func NewClassifier(code m.GeneticCode) *Classifier {
	return &Classifier{code: code}
}

// Classify returns the amino acid, or m.Stop, encoded by codon.
func (c *Classifier) Classify(codon string) (m.AminoAcid, error) {
	if len(codon) != codonLen {
		return 0, fmt.Errorf("%w: codon %q must have 3 bases", ErrInvalidBase, codon)
	}

	norm, err := Validate(codon, m.RNA)
	if err != nil {
		return 0, err
	}

	aa, ok := c.code[string(norm)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCodon, norm)
	}

	return aa, nil
}

// IsStart reports whether codon is AUG, ignoring case.
func (c *Classifier) IsStart(codon string) bool {
	norm, err := Validate(codon, m.RNA)

	return err == nil && string(norm) == StartCodon
}

// IsStop reports whether the genetic code maps codon to a stop.
func (c *Classifier) IsStop(codon string) bool {
	aa, err := c.Classify(codon)

	return err == nil && aa.IsStop()
}
