package model

import "sort"

// ORF is an open reading frame: a start codon through the first in-frame stop
// codon after it. End is exclusive.
type ORF struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
	Frame int `json:"frame" yaml:"frame"`
}

// Len returns the ORF length in bases, stop codon included.
func (o ORF) Len() int {
	return o.End - o.Start
}

// Codons returns the number of codons spanned by the ORF.
func (o ORF) Codons() int {
	return o.Len() / 3
}

// CodonUsage maps a codon to the number of times it occurs.
type CodonUsage map[string]int

// CodonCount is a single CodonUsage entry.
type CodonCount struct {
	Codon string
	Count int
}

// Total returns the number of codons counted.
func (u CodonUsage) Total() int {
	total := 0
	for _, n := range u {
		total += n
	}

	return total
}

// Sorted returns the entries ordered by codon.
func (u CodonUsage) Sorted() []CodonCount {
	out := make([]CodonCount, 0, len(u))
	for codon, n := range u {
		out = append(out, CodonCount{Codon: codon, Count: n})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Codon < out[j].Codon })

	return out
}

// AnalysisResult holds the composition and ORF report for one record.
type AnalysisResult struct {
	ID         string
	Length     int
	GCContent  float64
	CodonUsage CodonUsage
	ORFs       []ORF
}

// AnalysisSummary aggregates a batch of AnalysisResult values.
type AnalysisSummary struct {
	Records    int
	MeanGC     float64
	StdDevGC   float64
	TotalORFs  int
	LongestORF int
}
