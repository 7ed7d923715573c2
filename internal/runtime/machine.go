// Package runtime executes symbol sequences against a machine definition.
package runtime

import (
	"errors"

	"github.com/aretw0/weft/pkg/domain"
)

// Machine is the deterministic execution core: one shared immutable
// definition plus the mutable current state.
//
// A Machine is not safe for concurrent Advance/Run calls; give each
// goroutine its own instance. The Definition behind it may be shared freely.
type Machine struct {
	def     *domain.Definition
	current domain.State
}

// New creates a machine positioned at the definition's initial state.
func New(def *domain.Definition) *Machine {
	return &Machine{
		def:     def,
		current: def.InitialState(),
	}
}

// Definition returns the shared immutable definition.
func (m *Machine) Definition() *domain.Definition {
	return m.def
}

// Current returns the current state.
func (m *Machine) Current() domain.State {
	return m.current
}

// Reset moves the machine back to the initial state.
func (m *Machine) Reset() {
	m.current = m.def.InitialState()
}

// Advance consumes one symbol.
//
// The symbol's alphabet membership is checked before anything else, so a
// SymbolError and a TransitionError are never ambiguous for the same call.
// On any failure the current state is left untouched. The returned record
// describes the attempt: on a TransitionError it carries the (from, symbol)
// pair with Undefined set, mirroring the trace entry of a successful step.
func (m *Machine) Advance(sym domain.Symbol) (domain.TransitionRecord, error) {
	if !m.def.HasSymbol(sym) {
		return domain.TransitionRecord{}, &domain.SymbolError{Symbol: sym}
	}

	from := m.current
	to, ok := m.def.Next(from, sym)
	if !ok {
		rec := domain.TransitionRecord{From: from, Symbol: sym, Undefined: true}
		return rec, &domain.TransitionError{From: from, Symbol: sym}
	}

	m.current = to
	return domain.TransitionRecord{From: from, Symbol: sym, To: to}, nil
}

// Run resets the machine and replays the sequence in order, eagerly, one
// symbol at a time.
//
// The first Advance failure stops consumption but is not propagated as
// fatal: it is retained in RunResult.Err and the verdict is still evaluated
// from whatever state was reached, so the caller can always answer "did it
// terminate". A failed transition attempt appears in the trace as an
// Undefined record; a rejected symbol produces no record. Terminal states do
// not halt a run early.
func (m *Machine) Run(sequence []domain.Symbol) domain.RunResult {
	m.Reset()

	result := domain.RunResult{
		Trace: make([]domain.TransitionRecord, 0, len(sequence)),
	}

	for _, sym := range sequence {
		rec, err := m.Advance(sym)
		if err != nil {
			var symErr *domain.SymbolError
			if !errors.As(err, &symErr) {
				// Undefined transition: keep the attempted pair in the trace.
				result.Trace = append(result.Trace, rec)
			}
			result.Err = err
			break
		}
		result.Trace = append(result.Trace, rec)
	}

	result.FinalState = m.current
	result.Terminated = m.def.IsTerminal(m.current)
	return result
}
