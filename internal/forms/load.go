// internal/forms/load.go
package forms

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/solatis/fieldgate/internal/types"
)

// ParseConfig decodes a FormConfig from JSON. Unknown JSON fields are
// rejected so typos in hand-written form definitions surface immediately.
// Condition-level validation happens at Register time.
func ParseConfig(r io.Reader) (types.FormConfig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg types.FormConfig
	if err := dec.Decode(&cfg); err != nil {
		return types.FormConfig{}, fmt.Errorf("failed to decode form config: %w", err)
	}
	if cfg.ID == "" {
		return types.FormConfig{}, fmt.Errorf("form config has no id")
	}
	return cfg, nil
}

// LoadConfigFile reads a FormConfig from a JSON file on disk.
func LoadConfigFile(path string) (types.FormConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.FormConfig{}, fmt.Errorf("failed to open form config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// LoadDataFile reads a form data bag from a JSON file on disk.
func LoadDataFile(path string) (types.FormData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	var data types.FormData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode data file: %w", err)
	}
	return data, nil
}
