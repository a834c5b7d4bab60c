// Package adapter contains filesystem and configuration adapters for the
// dnatool CLI.
package adapter

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// fastaLineWidth is the sequence column width used when writing FASTA.
const fastaLineWidth = 80

// FastaAdapter reads and writes FASTA files. It hides direct os access so the
// workflow can be tested without touching the disk.
type FastaAdapter interface {
	// Read returns every record in the file. Gzip input is detected from its
	// magic bytes.
	Read(path m.Path) ([]m.Record, error)

	// Write stores records, wrapping sequence lines at 80 columns.
	Write(path m.Path, records []m.Record) error
}

// LocalFastaAdapter is the filesystem-backed FastaAdapter.
type LocalFastaAdapter struct{}

// NewLocalFastaAdapter constructs a LocalFastaAdapter.
func NewLocalFastaAdapter() *LocalFastaAdapter {
	return &LocalFastaAdapter{}
}

// Read parses a FASTA file into records.
func (a *LocalFastaAdapter) Read(path m.Path) ([]m.Record, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)

	var r io.Reader = br

	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gr.Close()

		r = gr
	}

	records, err := ParseFasta(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// Write creates or truncates path and writes records to it.
func (a *LocalFastaAdapter) Write(path m.Path, records []m.Record) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create FASTA file: %w", err)
	}

	if err := WriteFasta(f, records); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ParseFasta reads FASTA records from r. Blank lines are skipped and sequence
// lines are concatenated with surrounding whitespace trimmed. Content before
// the first header is an error, as is an input without any header.
func ParseFasta(r io.Reader) ([]m.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		records []m.Record
		current *m.Record
		seq     strings.Builder
	)

	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			records = append(records, *current)
			seq.Reset()
		}
	}

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()

			current = &m.Record{ID: strings.TrimSpace(line[1:])}

			continue
		}

		if current == nil {
			return nil, fmt.Errorf("invalid FASTA: sequence data before header on line %d", lineNo)
		}

		seq.WriteString(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan FASTA: %w", err)
	}

	flush()

	if len(records) == 0 {
		return nil, fmt.Errorf("invalid FASTA: no records")
	}

	return records, nil
}

// WriteFasta writes records to w in FASTA format.
func WriteFasta(w io.Writer, records []m.Record) error {
	bw := bufio.NewWriter(w)

	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, ">%s\n", rec.ID); err != nil {
			return fmt.Errorf("write FASTA header: %w", err)
		}

		for i := 0; i < len(rec.Sequence); i += fastaLineWidth {
			end := min(i+fastaLineWidth, len(rec.Sequence))
			if _, err := fmt.Fprintf(bw, "%s\n", rec.Sequence[i:end]); err != nil {
				return fmt.Errorf("write FASTA sequence: %w", err)
			}
		}
	}

	return bw.Flush()
}
