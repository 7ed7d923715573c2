package weft

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/weft/internal/compiler"
	"github.com/aretw0/weft/internal/metrics"
	"github.com/aretw0/weft/internal/runtime"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/ports"
)

// Engine is the high-level entry point for the weft library.
// It compiles a machine definition from a row source and runs symbol
// sequences against it, adding logging and metrics around the core runtime.
type Engine struct {
	def      *domain.Definition
	logger   *slog.Logger
	recorder *metrics.Recorder
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine in log lines (default: "machine").
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// WithMetrics registers run/transition collectors on reg and makes the
// engine record into them.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.recorder = metrics.NewRecorder(reg)
	}
}

// New compiles the rows from source into a validated definition and wraps it
// in an Engine. Compilation is all-or-nothing: a DefinitionError or
// StateError aborts construction entirely.
func New(source ports.RowSource, opts ...Option) (*Engine, error) {
	rows, err := source.Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to read definition rows: %w", err)
	}

	def, err := compiler.Load(rows)
	if err != nil {
		return nil, err
	}

	return NewFromDefinition(def, opts...), nil
}

// NewFromDefinition wraps an already validated definition.
func NewFromDefinition(def *domain.Definition, opts ...Option) *Engine {
	eng := &Engine{
		def:  def,
		Name: "machine",
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("machine", eng.Name)

	return eng
}

// Definition returns the shared immutable definition.
func (e *Engine) Definition() *domain.Definition {
	return e.def
}

// Run replays a symbol sequence on a fresh machine and returns the trace and
// verdict. Each call gets its own machine, so Run is safe to call from
// concurrent goroutines.
func (e *Engine) Run(sequence []domain.Symbol) domain.RunResult {
	result := runtime.New(e.def).Run(sequence)

	for _, rec := range result.Trace {
		if rec.Undefined {
			e.logger.Warn("transition undefined", "from", rec.From, "symbol", rec.Symbol)
			continue
		}
		e.logger.Debug("transition", "from", rec.From, "symbol", rec.Symbol, "to", rec.To)
		if e.recorder != nil {
			e.recorder.RecordTransition(string(rec.From), string(rec.To))
		}
	}

	if result.Err != nil {
		e.logger.Warn("run stopped early", "error", result.Err)
		if e.recorder != nil {
			e.recorder.RecordError(errorKind(result.Err))
		}
	}
	e.logger.Info("run finished",
		"symbols", len(result.Trace),
		"final_state", result.FinalState,
		"terminated", result.Terminated,
	)
	if e.recorder != nil {
		e.recorder.RecordRun(result.Terminated)
	}

	return result
}

// NewMachine creates a machine for symbol-by-symbol stepping. Machines are
// single-goroutine; create one per concurrent run.
func (e *Engine) NewMachine() *Machine {
	return &Machine{inner: runtime.New(e.def)}
}

// Machine exposes the stepping API of the runtime core: Reset, Advance and
// Run, plus a Current snapshot.
type Machine struct {
	inner *runtime.Machine
}

// Current returns the current state.
func (m *Machine) Current() domain.State {
	return m.inner.Current()
}

// Reset moves the machine back to the initial state.
func (m *Machine) Reset() {
	m.inner.Reset()
}

// Advance consumes one symbol, failing with SymbolError or TransitionError
// without mutating the current state.
func (m *Machine) Advance(sym domain.Symbol) (domain.TransitionRecord, error) {
	return m.inner.Advance(sym)
}

// Run resets the machine and replays the sequence, retaining the first
// failure (if any) in the result instead of propagating it.
func (m *Machine) Run(sequence []domain.Symbol) domain.RunResult {
	return m.inner.Run(sequence)
}

func errorKind(err error) string {
	var symErr *domain.SymbolError
	if errors.As(err, &symErr) {
		return "symbol"
	}
	var trErr *domain.TransitionError
	if errors.As(err, &trErr) {
		return "transition"
	}
	return "unknown"
}
