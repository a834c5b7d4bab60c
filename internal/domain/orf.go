package domain

import (
	m "github.com/mouse-blink/dnatool/internal/model"
)

// FindORFs reports every open reading frame of an RNA sequence, ordered by
// frame (0, 1, 2) and then by start position.
//
// Each AUG is paired with the first in-frame stop codon (UAA, UAG, UGA) after
// it, so ORFs may nest and a single stop can close several starts. A start with
// no downstream stop yields nothing.
//
// The scan is a single pass per frame: pending starts are queued and flushed
// by the next stop. This produces exactly the output of the nested
// start-then-search-forward scan without its O(n²) worst case.
func FindORFs(rna string) ([]m.ORF, error) {
	seq, err := Validate(rna, m.RNA)
	if err != nil {
		return nil, err
	}

	var orfs []m.ORF

	for frame := 0; frame < codonLen; frame++ {
		var pending []int

		for i := frame; i+codonLen <= len(seq); i += codonLen {
			codon := string(seq[i : i+codonLen])

			if isStopCodon(codon) {
				for _, start := range pending {
					orfs = append(orfs, m.ORF{Start: start, End: i + codonLen, Frame: frame})
				}

				pending = pending[:0]

				continue
			}

			if codon == StartCodon {
				pending = append(pending, i)
			}
		}
	}

	return orfs, nil
}

func isStopCodon(codon string) bool {
	return codon == "UAA" || codon == "UAG" || codon == "UGA"
}
