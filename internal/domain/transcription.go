package domain

import (
	"strings"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// TranscribeDNA converts a coding-strand DNA sequence to RNA by replacing T
// with U.
func TranscribeDNA(dna string) (string, error) {
	seq, err := Validate(dna, m.DNA)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(seq.String(), "T", "U"), nil
}

// ReverseTranscribe converts RNA back to DNA by replacing U with T.
func ReverseTranscribe(rna string) (string, error) {
	seq, err := Validate(rna, m.RNA)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(seq.String(), "U", "T"), nil
}
