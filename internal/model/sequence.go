package model

// Path represents a file system path.
type Path string

// Alphabet names the nucleotide alphabet a sequence is drawn from.
type Alphabet string

const (
	// DNA is the deoxyribonucleic alphabet A, T, C, G.
	DNA Alphabet = "dna"
	// RNA is the ribonucleic alphabet A, U, C, G.
	RNA Alphabet = "rna"
)

// Bases returns the canonical uppercase bases of the alphabet, or an empty
// string for an unknown alphabet.
func (a Alphabet) Bases() string {
	switch a {
	case DNA:
		return "ATCG"
	case RNA:
		return "AUCG"
	default:
		return ""
	}
}

// Sequence is an uppercase nucleotide sequence. Analysis treats it as read-only;
// mutation primitives edit it in place through a pointer.
type Sequence []byte

// String returns the sequence as text.
func (s Sequence) String() string {
	return string(s)
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Record is a single named sequence, typically one FASTA entry.
type Record struct {
	ID       string
	Sequence string
}
