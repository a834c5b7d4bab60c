package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// ReportStore persists and retrieves mutation reports. The encoding follows
// the file extension: .yaml and .yml are YAML, anything else is JSON.
type ReportStore interface {
	SaveMutationReport(path m.Path, report m.MutationReport) error
	LoadMutationReport(path m.Path) (m.MutationReport, error)
}

// LocalReportStore writes reports to the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveMutationReport encodes report and writes it to path, creating parent
// directories as needed.
func (rs *LocalReportStore) SaveMutationReport(path m.Path, report m.MutationReport) error {
	data, err := encodeReport(path, report)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadMutationReport reads a report previously written by SaveMutationReport.
func (rs *LocalReportStore) LoadMutationReport(path m.Path) (m.MutationReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.MutationReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.MutationReport
	if isYAML(path) {
		err = yaml.Unmarshal(data, &report)
	} else {
		err = json.Unmarshal(data, &report)
	}

	if err != nil {
		return m.MutationReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}

func encodeReport(path m.Path, report m.MutationReport) ([]byte, error) {
	records := make([]m.MutationResult, len(report.Records))
	copy(records, report.Records)

	for i := range records {
		if records[i].Mutations == nil {
			records[i].Mutations = []m.MutationRecord{}
		}
	}

	report.Records = records

	if isYAML(path) {
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("encode YAML report: %w", err)
		}

		return data, nil
	}

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode JSON report: %w", err)
	}

	return append(data, '\n'), nil
}

func isYAML(path m.Path) bool {
	ext := strings.ToLower(filepath.Ext(string(path)))

	return ext == ".yaml" || ext == ".yml"
}
