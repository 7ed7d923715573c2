package domain

// TransitionRecord is one attempted step of a run. It is used both for
// tracing and for diagnosing failures: a successful step carries the target
// in To, while a step that hit an undefined transition has Undefined set and
// a zero To.
type TransitionRecord struct {
	From      State  `json:"from"`
	Symbol    Symbol `json:"symbol"`
	To        State  `json:"to,omitempty"`
	Undefined bool   `json:"undefined,omitempty"`
}

// RunResult is the outcome of replaying a symbol sequence through a machine.
//
// A run that hits a SymbolError or TransitionError is not fatal: the trace
// and final state reflect everything consumed up to the failing step, Err
// retains the triggering error, and Terminated is still evaluated so the
// caller can always answer "did it terminate". Err is nil for a clean run.
type RunResult struct {
	Trace      []TransitionRecord `json:"trace"`
	FinalState State              `json:"final_state"`
	Terminated bool               `json:"terminated"`
	Err        error              `json:"-"`
}
