package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDefinitionNotFound is returned when a named definition cannot be found
// in a store.
var ErrDefinitionNotFound = errors.New("definition not found")

// DefinitionError reports malformed input rows: wrong row count or wrong
// field count. It is detected at load time, before any state validation, and
// never lets a partially built Definition escape.
type DefinitionError struct {
	Reason string
	// Row is the offending row index, or -1 when the row set as a whole is
	// malformed.
	Row int
}

func (e *DefinitionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed definition: %s", e.Reason)
	}
	return fmt.Sprintf("malformed definition: row %d: %s", e.Row, e.Reason)
}

// StateError reports references to states that are not members of the
// declared state set. It carries every offending state, sorted.
type StateError struct {
	States []State
}

func (e *StateError) Error() string {
	names := make([]string, len(e.States))
	for i, s := range e.States {
		names[i] = string(s)
	}
	return fmt.Sprintf("undefined state(s) encountered: %s", strings.Join(names, ", "))
}

// SymbolError reports a symbol outside the declared alphabet. It is raised
// by Advance before any lookup or state mutation.
type SymbolError struct {
	Symbol Symbol
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("undefined symbol encountered: %s", string(e.Symbol))
}

// TransitionError reports a (state, symbol) pair with no defined target.
// Both members of the pair are individually valid; the transition function
// is simply partial at that point.
type TransitionError struct {
	From   State
	Symbol Symbol
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition encountered: %s -%s-> ?", string(e.From), string(e.Symbol))
}
