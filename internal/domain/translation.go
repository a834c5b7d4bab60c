package domain

import (
	"strings"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// TranslateRNA translates from the first AUG in rna, at any offset, up to but
// excluding the first stop codon. A trailing partial codon is ignored and a
// sequence with no AUG translates to the empty string.
func TranslateRNA(rna string, c *Classifier) (string, error) {
	seq, err := Validate(rna, m.RNA)
	if err != nil {
		return "", err
	}

	start := strings.Index(seq.String(), StartCodon)
	if start < 0 {
		return "", nil
	}

	var protein strings.Builder

	for i := start; i+codonLen <= len(seq); i += codonLen {
		aa, err := c.Classify(string(seq[i : i+codonLen]))
		if err != nil {
			return "", err
		}

		if aa.IsStop() {
			break
		}

		protein.WriteByte(byte(aa))
	}

	return protein.String(), nil
}
