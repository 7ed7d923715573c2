// Package cli implements the command logic behind cmd/weft.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/weft/internal/compiler"
	"github.com/aretw0/weft/pkg/adapters/csv"
	"github.com/aretw0/weft/pkg/adapters/yaml"
	"github.com/aretw0/weft/pkg/domain"
)

// LoadDefinition reads a machine definition from path. The format is picked
// from the explicit format flag ("csv" or "yaml") or, when empty, from the
// file extension, defaulting to csv.
func LoadDefinition(path, format string) (*domain.Definition, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "csv"
		}
	}

	switch format {
	case "csv":
		rows, err := csv.NewFileSource(path).Rows()
		if err != nil {
			return nil, err
		}
		return compiler.Load(rows)
	case "yaml":
		return yaml.LoadFile(path)
	default:
		return nil, fmt.Errorf("unknown definition format %q (want csv or yaml)", format)
	}
}

// MachineName derives the log/store label for a definition file.
func MachineName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
