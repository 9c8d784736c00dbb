package property

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML alias table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse alias table YAML: %w", err)
	}

	applyDefaults(&t)

	return &t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Table) {
	if t.Version == "" {
		t.Version = "1"
	}
}

// Marshal serializes a Table to YAML.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(t)
}

// WriteFile writes a Table to the given path.
func WriteFile(t *Table, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal alias table: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write alias table %s: %w", path, err)
	}

	return nil
}
