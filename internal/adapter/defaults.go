package adapter

import (
	m "github.com/mouse-blink/dnatool/internal/model"
)

// DefaultConfig returns the standard genetic code with E. coli codon
// preferences. Each call returns fresh maps.
func DefaultConfig() m.Config {
	return m.Config{
		Organism:         "ecoli",
		GeneticCode:      StandardGeneticCode(),
		CodonPreferences: EColiCodonTable(),
		MaxIndelSize:     3,
	}
}

// StandardGeneticCode returns the standard RNA codon table.
func StandardGeneticCode() m.GeneticCode {
	return m.GeneticCode{
		"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
		"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
		"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
		"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',
		"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
		"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
		"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
		"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
		"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
		"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
		"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
		"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
		"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
		"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
		"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	}
}

// EColiCodonTable returns preferred E. coli codons, in DNA form.
func EColiCodonTable() m.CodonTable {
	return m.CodonTable{
		'A': "GCT", // Ala
		'R': "CGT", // Arg
		'N': "AAT", // Asn
		'D': "GAT", // Asp
		'C': "TGT", // Cys
		'Q': "CAA", // Gln
		'E': "GAA", // Glu
		'G': "GGT", // Gly
		'H': "CAT", // His
		'I': "ATT", // Ile
		'L': "CTG", // Leu
		'K': "AAA", // Lys
		'M': "ATG", // Met
		'F': "TTT", // Phe
		'P': "CCT", // Pro
		'S': "TCT", // Ser
		'T': "ACT", // Thr
		'W': "TGG", // Trp
		'Y': "TAT", // Tyr
		'V': "GTT", // Val
		'*': "TAA", // Stop
	}
}
