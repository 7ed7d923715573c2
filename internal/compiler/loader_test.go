package compiler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/weft/pkg/domain"
)

func exampleRows() [][]string {
	return [][]string{
		{"A", "B", "C"},
		{"a", "b"},
		{"A"},
		{"A", "C"},
		{"A", "a", "A"},
		{"A", "b", "B"},
		{"B", "a", "C"},
		{"B", "b", "C"},
		{"C", "a", "C"},
		{"C", "b", "A"},
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	def, err := Load(exampleRows())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := def.States(); !reflect.DeepEqual(got, []domain.State{"A", "B", "C"}) {
		t.Errorf("States() = %v", got)
	}
	if got := def.Symbols(); !reflect.DeepEqual(got, []domain.Symbol{"a", "b"}) {
		t.Errorf("Symbols() = %v", got)
	}
	if def.InitialState() != "A" {
		t.Errorf("InitialState() = %s", def.InitialState())
	}
	if got := def.TerminalStates(); !reflect.DeepEqual(got, []domain.State{"A", "C"}) {
		t.Errorf("TerminalStates() = %v", got)
	}

	want := []domain.Rule{
		{From: "A", Symbol: "a", To: "A"},
		{From: "A", Symbol: "b", To: "B"},
		{From: "B", Symbol: "a", To: "C"},
		{From: "B", Symbol: "b", To: "C"},
		{From: "C", Symbol: "a", To: "C"},
		{From: "C", Symbol: "b", To: "A"},
	}
	if got := def.Rules(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rules() = %v", got)
	}
}

func TestLoad_Idempotent(t *testing.T) {
	first, err := Load(exampleRows())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := Load(exampleRows())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(first.Document(), second.Document()) {
		t.Error("loading the same rows twice produced different definitions")
	}
}

func TestLoad_StructuralErrors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]string
		row  int
	}{
		{
			name: "too few rows",
			rows: [][]string{{"A"}, {"a"}},
			row:  -1,
		},
		{
			name: "initial row not a single field",
			rows: [][]string{{"A", "B"}, {"a"}, {"A", "B"}, {"A"}},
			row:  2,
		},
		{
			name: "transition row wrong arity",
			rows: [][]string{{"A", "B"}, {"a"}, {"A"}, {"B"}, {"A", "a"}},
			row:  4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.rows)
			var defErr *domain.DefinitionError
			if !errors.As(err, &defErr) {
				t.Fatalf("expected DefinitionError, got %v", err)
			}
			if defErr.Row != tc.row {
				t.Errorf("Row = %d, want %d", defErr.Row, tc.row)
			}
		})
	}
}

func TestLoad_UndeclaredTransitionState(t *testing.T) {
	rows := exampleRows()
	rows = append(rows, []string{"A", "a", "D"})

	_, err := Load(rows)
	var stateErr *domain.StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if !reflect.DeepEqual(stateErr.States, []domain.State{"D"}) {
		t.Errorf("offenders = %v", stateErr.States)
	}
}

func TestLoad_CollectsEveryOffendingState(t *testing.T) {
	rows := [][]string{
		{"A", "B", "C"},
		{"a", "b"},
		{"A"},
		{"A", "C"},
		{"D", "a", "E"},
		{"A", "b", "F"},
	}

	_, err := Load(rows)
	var stateErr *domain.StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if !reflect.DeepEqual(stateErr.States, []domain.State{"D", "E", "F"}) {
		t.Errorf("offenders = %v", stateErr.States)
	}
}

func TestLoad_StructureCheckedBeforeStates(t *testing.T) {
	// The malformed arity must win even though the row also references an
	// undeclared state.
	rows := [][]string{
		{"A"},
		{"a"},
		{"A"},
		{"A"},
		{"Z", "a"},
	}

	_, err := Load(rows)
	var defErr *domain.DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("expected DefinitionError, got %v", err)
	}
}

func TestLoad_DuplicateRowsOverwrite(t *testing.T) {
	rows := [][]string{
		{"A", "B"},
		{"a"},
		{"A"},
		{"B"},
		{"A", "a", "A"},
		{"A", "a", "B"},
	}

	def, err := Load(rows)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if to, _ := def.Next("A", "a"); to != "B" {
		t.Errorf("expected last row to win, got %s", to)
	}
}
