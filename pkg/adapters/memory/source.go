// Package memory provides in-memory implementations of the weft ports,
// mainly for embedding and tests.
package memory

// Source implements ports.RowSource over a fixed row slice.
type Source struct {
	rows [][]string
}

// NewSource creates a row source over rows. The slice is used as-is; callers
// must not mutate it afterwards.
func NewSource(rows [][]string) *Source {
	return &Source{rows: rows}
}

// Rows returns the configured rows.
func (s *Source) Rows() ([][]string, error) {
	return s.rows, nil
}
