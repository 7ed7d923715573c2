// Package csv implements ports.RowSource over comma-separated files, the
// conventional tabular machine definition format.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Source reads definition rows from an io.Reader.
type Source struct {
	r io.Reader
}

// NewSource creates a row source over r.
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

// Rows parses the full input into ordered rows of string fields. Rows may
// have varying field counts; shape validation is the compiler's concern.
func (s *Source) Rows() ([][]string, error) {
	reader := csv.NewReader(s.r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv rows: %w", err)
	}
	return rows, nil
}

// FileSource reads definition rows from a file path, opening the file lazily
// on each Rows call so a source can be re-read after the file changes.
type FileSource struct {
	path string
}

// NewFileSource creates a row source over the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Rows opens the file and parses it into rows.
func (s *FileSource) Rows() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	return NewSource(f).Rows()
}
