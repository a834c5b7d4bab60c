// Package model defines the data structures shared by the sequence engine,
// its adapters and the UI.
package model

// MutationKind represents the category of an applied edit.
type MutationKind string

const (
	// MutationPoint replaces a single base.
	MutationPoint MutationKind = "point"
	// MutationInsertion splices a fragment before a position.
	MutationInsertion MutationKind = "insertion"
	// MutationDeletion removes a run of bases.
	MutationDeletion MutationKind = "deletion"
)

// NoBase marks the absent side of an indel record.
const NoBase = "-"

// MutationRecord describes one edit, in the coordinates of the sequence it was
// applied to.
type MutationRecord struct {
	Index    int          `json:"index" yaml:"index"`
	Kind     MutationKind `json:"type" yaml:"type"`
	Original string       `json:"original" yaml:"original"`
	Mutated  string       `json:"mutated" yaml:"mutated"`
}

// MutationResult is the outcome of simulating edits on one record.
type MutationResult struct {
	ID        string           `json:"id" yaml:"id"`
	Original  string           `json:"original" yaml:"original"`
	Mutated   string           `json:"mutated" yaml:"mutated"`
	Seed      uint64           `json:"seed" yaml:"seed"`
	Mutations []MutationRecord `json:"mutations" yaml:"mutations"`
}

// MutationReport is the persisted document written by the mutate command.
type MutationReport struct {
	Records []MutationResult `json:"records" yaml:"records"`
}
