// Package yaml loads machine definitions from YAML documents, a richer
// alternative to the tabular CSV format.
package yaml

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	goyaml "gopkg.in/yaml.v3"

	"github.com/aretw0/weft/pkg/domain"
)

// Load decodes a YAML machine document from r and validates it into a
// Definition. Decoding goes through a generic map first and then through
// mapstructure, so unknown keys are tolerated but typed fields are strict.
func Load(r io.Reader) (*domain.Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read yaml document: %w", err)
	}

	var raw map[string]any
	if err := goyaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml document: %w", err)
	}

	var doc domain.Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode machine document: %w", err)
	}

	return doc.Definition()
}

// LoadFile loads a YAML machine document from a file path.
func LoadFile(path string) (*domain.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
