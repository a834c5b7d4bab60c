package cmd

const rootLongDescription = `dnatool analyzes and mutates nucleotide sequences.

It computes GC content and codon usage, finds open reading frames in all three
reading frames, transcribes and translates sequences, back-translates proteins
with organism-specific codon preferences, and simulates random point,
insertion and deletion mutations.

Codon tables default to the standard genetic code and E. coli preferences and
can be replaced with --config tables.yaml.`

const analyzeLongDescription = `Analyze every record of an RNA FASTA file.

For each record prints the GC content, codon usage and every open reading frame
as [start, end) per frame. Every AUG is paired with the first in-frame stop
codon downstream of it, so reported ORFs may overlap. Records are analyzed in
parallel and a summary is printed when the file holds more than one record.`

const mutateLongDescription = `Apply random mutations to every record of a DNA FASTA file.

Each mutation is a point substitution, an insertion or a deletion drawn
uniformly, at a uniformly drawn position of the current sequence. Indels are 1
to --maxindel bases long. The mutated sequences and the ordered edit log are
written to the output file as JSON, or YAML when it ends in .yaml or .yml.

Runs are reproducible: the seed is recorded in the report and can be passed
back with --seed.`
