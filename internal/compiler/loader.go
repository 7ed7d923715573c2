// Package compiler turns ordered rows of string fields into validated
// machine definitions. It performs no I/O; rows come from a ports.RowSource.
package compiler

import (
	"fmt"

	"github.com/aretw0/weft/pkg/domain"
)

// Fixed row layout of a tabular machine definition.
const (
	rowStates = iota
	rowSymbols
	rowInitial
	rowTerminals
	rowTransitions // first transition row; everything after is a triple
)

// Load compiles rows into a Definition.
//
// Structural checks (row count and field counts) run first and fail with
// DefinitionError; only then are state memberships validated, so a
// DefinitionError and a StateError are never ambiguous for the same input.
// Loading is all-or-nothing and deterministic: the same rows always yield
// field-for-field equal definitions.
func Load(rows [][]string) (*domain.Definition, error) {
	if len(rows) < rowTransitions {
		return nil, &domain.DefinitionError{
			Reason: fmt.Sprintf("expected at least %d rows (states, symbols, initial, terminals), got %d", rowTransitions, len(rows)),
			Row:    -1,
		}
	}
	if len(rows[rowInitial]) != 1 {
		return nil, &domain.DefinitionError{
			Reason: fmt.Sprintf("initial state row must have exactly 1 field, got %d", len(rows[rowInitial])),
			Row:    rowInitial,
		}
	}
	for i, row := range rows[rowTransitions:] {
		if len(row) != 3 {
			return nil, &domain.DefinitionError{
				Reason: fmt.Sprintf("transition row must have exactly 3 fields (from, symbol, to), got %d", len(row)),
				Row:    rowTransitions + i,
			}
		}
	}

	states := make([]domain.State, len(rows[rowStates]))
	for i, s := range rows[rowStates] {
		states[i] = domain.State(s)
	}
	symbols := make([]domain.Symbol, len(rows[rowSymbols]))
	for i, s := range rows[rowSymbols] {
		symbols[i] = domain.Symbol(s)
	}
	terminals := make([]domain.State, len(rows[rowTerminals]))
	for i, s := range rows[rowTerminals] {
		terminals[i] = domain.State(s)
	}
	rules := make([]domain.Rule, 0, len(rows)-rowTransitions)
	for _, row := range rows[rowTransitions:] {
		rules = append(rules, domain.Rule{
			From:   domain.State(row[0]),
			Symbol: domain.Symbol(row[1]),
			To:     domain.State(row[2]),
		})
	}

	return domain.NewDefinition(states, symbols, domain.State(rows[rowInitial][0]), terminals, rules)
}
