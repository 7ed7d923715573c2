package domain

import "sort"

// Rule is a single transition: consuming Symbol in state From moves the
// machine to state To.
type Rule struct {
	From   State  `json:"from" yaml:"from" mapstructure:"from"`
	Symbol Symbol `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     State  `json:"to" yaml:"to" mapstructure:"to"`
}

type transitionKey struct {
	from   State
	symbol Symbol
}

// Definition is a validated, immutable machine definition: the state set,
// the input alphabet, the initial state, the terminal (accepting) states and
// a deterministic partial transition function (State, Symbol) -> State.
//
// A Definition is safe to share read-only across concurrently running
// machines. Construct one through NewDefinition; a value that escapes the
// constructor always satisfies the membership invariants.
type Definition struct {
	states      map[State]struct{}
	symbols     map[Symbol]struct{}
	initial     State
	terminals   map[State]struct{}
	transitions map[transitionKey]State
}

// NewDefinition validates and builds a Definition.
//
// Every state referenced anywhere (initial, terminals, both endpoints of each
// rule) must be a member of states. Violations are collected and returned as
// a single StateError carrying the full sorted set of offenders, not just the
// first one found. Duplicate rules for the same (from, symbol) pair resolve
// last-write-wins, so determinism holds by construction.
func NewDefinition(states []State, symbols []Symbol, initial State, terminals []State, rules []Rule) (*Definition, error) {
	def := &Definition{
		states:      make(map[State]struct{}, len(states)),
		symbols:     make(map[Symbol]struct{}, len(symbols)),
		initial:     initial,
		terminals:   make(map[State]struct{}, len(terminals)),
		transitions: make(map[transitionKey]State, len(rules)),
	}
	for _, s := range states {
		def.states[s] = struct{}{}
	}
	for _, s := range symbols {
		def.symbols[s] = struct{}{}
	}

	invalid := make(map[State]struct{})
	check := func(s State) {
		if _, ok := def.states[s]; !ok {
			invalid[s] = struct{}{}
		}
	}

	check(initial)
	for _, t := range terminals {
		check(t)
		def.terminals[t] = struct{}{}
	}
	for _, r := range rules {
		check(r.From)
		check(r.To)
		def.transitions[transitionKey{r.From, r.Symbol}] = r.To
	}

	if len(invalid) > 0 {
		offenders := make([]State, 0, len(invalid))
		for s := range invalid {
			offenders = append(offenders, s)
		}
		sort.Slice(offenders, func(i, j int) bool { return offenders[i] < offenders[j] })
		return nil, &StateError{States: offenders}
	}

	return def, nil
}

// States returns the state set in sorted order.
func (d *Definition) States() []State {
	out := make([]State, 0, len(d.states))
	for s := range d.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Symbols returns the alphabet in sorted order.
func (d *Definition) Symbols() []Symbol {
	out := make([]Symbol, 0, len(d.symbols))
	for s := range d.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// InitialState returns the state machines start in (and reset to).
func (d *Definition) InitialState() State {
	return d.initial
}

// TerminalStates returns the accepting states in sorted order.
func (d *Definition) TerminalStates() []State {
	out := make([]State, 0, len(d.terminals))
	for s := range d.terminals {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Rules returns the transition function as a slice sorted by (from, symbol).
func (d *Definition) Rules() []Rule {
	out := make([]Rule, 0, len(d.transitions))
	for k, to := range d.transitions {
		out = append(out, Rule{From: k.from, Symbol: k.symbol, To: to})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// HasState reports whether s is a member of the state set.
func (d *Definition) HasState(s State) bool {
	_, ok := d.states[s]
	return ok
}

// HasSymbol reports whether sym is a member of the alphabet.
func (d *Definition) HasSymbol(sym Symbol) bool {
	_, ok := d.symbols[sym]
	return ok
}

// IsTerminal reports whether s is an accepting state.
func (d *Definition) IsTerminal(s State) bool {
	_, ok := d.terminals[s]
	return ok
}

// Next looks up the transition target for (from, sym). The second return is
// false when the pair has no defined target; lookups never create entries.
func (d *Definition) Next(from State, sym Symbol) (State, bool) {
	to, ok := d.transitions[transitionKey{from, sym}]
	return to, ok
}

// Document converts the definition back to its serializable form, with all
// collections sorted.
func (d *Definition) Document() Document {
	states := d.States()
	symbols := d.Symbols()
	terminals := d.TerminalStates()

	doc := Document{
		States:    make([]string, len(states)),
		Symbols:   make([]string, len(symbols)),
		Initial:   string(d.initial),
		Terminals: make([]string, len(terminals)),
		Rules:     d.Rules(),
	}
	for i, s := range states {
		doc.States[i] = string(s)
	}
	for i, s := range symbols {
		doc.Symbols[i] = string(s)
	}
	for i, s := range terminals {
		doc.Terminals[i] = string(s)
	}
	return doc
}
