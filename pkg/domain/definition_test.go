package domain

import (
	"errors"
	"reflect"
	"testing"
)

func validDefinition(t *testing.T) *Definition {
	t.Helper()
	def, err := NewDefinition(
		[]State{"A", "B", "C"},
		[]Symbol{"a", "b"},
		"A",
		[]State{"A", "C"},
		[]Rule{
			{"A", "a", "A"},
			{"A", "b", "B"},
			{"B", "a", "C"},
			{"B", "b", "C"},
			{"C", "a", "C"},
			{"C", "b", "A"},
		},
	)
	if err != nil {
		t.Fatalf("NewDefinition failed: %v", err)
	}
	return def
}

func TestDefinition_Accessors(t *testing.T) {
	def := validDefinition(t)

	if got := def.States(); !reflect.DeepEqual(got, []State{"A", "B", "C"}) {
		t.Errorf("States() = %v", got)
	}
	if got := def.Symbols(); !reflect.DeepEqual(got, []Symbol{"a", "b"}) {
		t.Errorf("Symbols() = %v", got)
	}
	if def.InitialState() != "A" {
		t.Errorf("InitialState() = %s", def.InitialState())
	}
	if got := def.TerminalStates(); !reflect.DeepEqual(got, []State{"A", "C"}) {
		t.Errorf("TerminalStates() = %v", got)
	}

	rules := def.Rules()
	if len(rules) != 6 {
		t.Fatalf("expected 6 rules, got %d", len(rules))
	}
	// Sorted by (from, symbol)
	if rules[0] != (Rule{"A", "a", "A"}) || rules[5] != (Rule{"C", "b", "A"}) {
		t.Errorf("unexpected rule ordering: %v", rules)
	}
}

func TestDefinition_Lookups(t *testing.T) {
	def := validDefinition(t)

	if !def.HasState("B") || def.HasState("D") {
		t.Error("HasState membership wrong")
	}
	if !def.HasSymbol("a") || def.HasSymbol("c") {
		t.Error("HasSymbol membership wrong")
	}
	if !def.IsTerminal("C") || def.IsTerminal("B") {
		t.Error("IsTerminal membership wrong")
	}

	to, ok := def.Next("B", "a")
	if !ok || to != "C" {
		t.Errorf("Next(B, a) = %s, %v", to, ok)
	}
	if _, ok := def.Next("A", "c"); ok {
		t.Error("expected undefined transition for (A, c)")
	}
}

func TestNewDefinition_InitialNotInStates(t *testing.T) {
	_, err := NewDefinition([]State{"A", "B"}, []Symbol{"a"}, "X", nil, nil)
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if !reflect.DeepEqual(stateErr.States, []State{"X"}) {
		t.Errorf("offenders = %v", stateErr.States)
	}
}

func TestNewDefinition_TerminalNotInStates(t *testing.T) {
	_, err := NewDefinition([]State{"A", "B"}, []Symbol{"a"}, "A", []State{"A", "Z"}, nil)
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if !reflect.DeepEqual(stateErr.States, []State{"Z"}) {
		t.Errorf("offenders = %v", stateErr.States)
	}
}

func TestNewDefinition_CollectsAllOffenders(t *testing.T) {
	_, err := NewDefinition(
		[]State{"A"},
		[]Symbol{"a"},
		"Q",
		[]State{"Z"},
		[]Rule{{"A", "a", "D"}, {"E", "a", "A"}},
	)
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	// Every offender, sorted, deduplicated.
	if !reflect.DeepEqual(stateErr.States, []State{"D", "E", "Q", "Z"}) {
		t.Errorf("offenders = %v", stateErr.States)
	}
}

func TestNewDefinition_DuplicateRuleLastWriteWins(t *testing.T) {
	def, err := NewDefinition(
		[]State{"A", "B"},
		[]Symbol{"a"},
		"A",
		nil,
		[]Rule{{"A", "a", "A"}, {"A", "a", "B"}},
	)
	if err != nil {
		t.Fatalf("NewDefinition failed: %v", err)
	}
	if to, _ := def.Next("A", "a"); to != "B" {
		t.Errorf("expected last write to win, got %s", to)
	}
	if len(def.Rules()) != 1 {
		t.Errorf("expected a single rule, got %v", def.Rules())
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	def := validDefinition(t)
	doc := def.Document()

	again, err := doc.Definition()
	if err != nil {
		t.Fatalf("Document.Definition failed: %v", err)
	}

	if !reflect.DeepEqual(def.States(), again.States()) ||
		!reflect.DeepEqual(def.Symbols(), again.Symbols()) ||
		def.InitialState() != again.InitialState() ||
		!reflect.DeepEqual(def.TerminalStates(), again.TerminalStates()) ||
		!reflect.DeepEqual(def.Rules(), again.Rules()) {
		t.Error("document round-trip changed the definition")
	}
}

func TestDocument_Invalid(t *testing.T) {
	doc := Document{
		States:  []string{"A"},
		Symbols: []string{"a"},
		Initial: "B",
	}
	if _, err := doc.Definition(); err == nil {
		t.Error("expected validation error for initial state outside states")
	}
}

func TestSequence(t *testing.T) {
	if got := Sequence("aba"); !reflect.DeepEqual(got, []Symbol{"a", "b", "a"}) {
		t.Errorf("Sequence(aba) = %v", got)
	}
	if got := Sequence(""); len(got) != 0 {
		t.Errorf("Sequence(empty) = %v", got)
	}
}
