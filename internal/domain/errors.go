package domain

import "errors"

// Errors returned by the sequence engine. They are wrapped with context and
// should be matched with errors.Is.
var (
	ErrInvalidBase               = errors.New("invalid base")
	ErrLengthNotDivisibleByThree = errors.New("sequence length not divisible by 3")
	ErrOutOfRange                = errors.New("position out of range")
	ErrUnknownAminoAcid          = errors.New("unknown amino acid")
	ErrUnknownCodon              = errors.New("unknown codon")
	ErrUnknownAlphabet           = errors.New("unknown alphabet")
)
