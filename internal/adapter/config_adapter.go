package adapter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// ConfigAdapter loads the codon tables injected into the sequence engine.
type ConfigAdapter interface {
	// Load reads the YAML file at path. An empty path returns the built-in
	// defaults. Tables missing from the file fall back to the defaults.
	Load(path m.Path) (m.Config, error)
}

// configYAML is the on-disk shape of a table configuration.
//
//	organism: ecoli
//	max_indel_size: 3
//	genetic_code:
//	  UUU: F
//	codon_preferences:
//	  F: TTT
type configYAML struct {
	Organism         string            `yaml:"organism"`
	MaxIndelSize     int               `yaml:"max_indel_size"`
	GeneticCode      map[string]string `yaml:"genetic_code"`
	CodonPreferences map[string]string `yaml:"codon_preferences"`
}

// LocalConfigAdapter reads configuration files from disk.
type LocalConfigAdapter struct{}

// NewLocalConfigAdapter constructs a LocalConfigAdapter.
func NewLocalConfigAdapter() *LocalConfigAdapter {
	return &LocalConfigAdapter{}
}

// Load implements ConfigAdapter.
func (a *LocalConfigAdapter) Load(path m.Path) (m.Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Config{}, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML table configuration and fills missing values from
// DefaultConfig.
func ParseConfig(data []byte) (m.Config, error) {
	var raw configYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return m.Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := m.Config{
		Organism:     raw.Organism,
		MaxIndelSize: raw.MaxIndelSize,
	}

	if len(raw.GeneticCode) > 0 {
		code, err := decodeGeneticCode(raw.GeneticCode)
		if err != nil {
			return m.Config{}, err
		}

		cfg.GeneticCode = code
	}

	if len(raw.CodonPreferences) > 0 {
		table, err := decodeCodonTable(raw.CodonPreferences)
		if err != nil {
			return m.Config{}, err
		}

		cfg.CodonPreferences = table
	}

	defaults(&cfg)

	return cfg, nil
}

func defaults(cfg *m.Config) {
	def := DefaultConfig()

	if cfg.Organism == "" {
		cfg.Organism = def.Organism
	}

	if cfg.MaxIndelSize <= 0 {
		cfg.MaxIndelSize = def.MaxIndelSize
	}

	if cfg.GeneticCode == nil {
		cfg.GeneticCode = def.GeneticCode
	}

	if cfg.CodonPreferences == nil {
		cfg.CodonPreferences = def.CodonPreferences
	}
}

func decodeGeneticCode(raw map[string]string) (m.GeneticCode, error) {
	code := make(m.GeneticCode, len(raw))

	for codon, aa := range raw {
		key := strings.ReplaceAll(strings.ToUpper(codon), "T", "U")
		if len(key) != 3 || strings.Trim(key, "ACGU") != "" {
			return nil, fmt.Errorf("genetic_code: invalid codon %q", codon)
		}

		if len(aa) != 1 {
			return nil, fmt.Errorf("genetic_code: %s must map to a single letter, got %q", codon, aa)
		}

		code[key] = m.AminoAcid(strings.ToUpper(aa)[0])
	}

	return code, nil
}

func decodeCodonTable(raw map[string]string) (m.CodonTable, error) {
	table := make(m.CodonTable, len(raw))

	for aa, codon := range raw {
		if len(aa) != 1 {
			return nil, fmt.Errorf("codon_preferences: key %q must be a single letter", aa)
		}

		norm := strings.ToUpper(codon)
		if len(norm) != 3 || strings.Trim(norm, "ACGT") != "" {
			return nil, fmt.Errorf("codon_preferences: invalid DNA codon %q for %s", codon, aa)
		}

		table[m.AminoAcid(strings.ToUpper(aa)[0])] = norm
	}

	return table, nil
}
