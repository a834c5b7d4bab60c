package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// OptimizeCodons back-translates a protein into DNA using the preferred codon
// for each residue in table.
func OptimizeCodons(protein string, table m.CodonTable) (string, error) {
	var dna strings.Builder

	dna.Grow(len(protein) * codonLen)

	for i := 0; i < len(protein); i++ {
		codon, ok := table[m.AminoAcid(upper(protein[i]))]
		if !ok {
			return "", fmt.Errorf("%w: %q at position %d", ErrUnknownAminoAcid, protein[i], i)
		}

		dna.WriteString(codon)
	}

	return dna.String(), nil
}
