package model

// AminoAcid is a single-letter amino acid code.
type AminoAcid byte

// Stop is the translation stop marker.
const Stop AminoAcid = '*'

// IsStop reports whether the amino acid is the stop marker.
func (a AminoAcid) IsStop() bool {
	return a == Stop
}

func (a AminoAcid) String() string {
	return string(rune(a))
}

// GeneticCode maps an uppercase RNA codon to the amino acid it encodes.
type GeneticCode map[string]AminoAcid

// CodonTable maps an amino acid to its preferred DNA codon for an organism.
type CodonTable map[AminoAcid]string

// Config is the injected table configuration used by the classifier,
// translator and optimizer.
type Config struct {
	Organism         string
	GeneticCode      GeneticCode
	CodonPreferences CodonTable
	MaxIndelSize     int
}
