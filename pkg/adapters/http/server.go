// Package http exposes a machine over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/weft/internal/presentation/graph"
	"github.com/aretw0/weft/pkg/domain"
)

// Engine defines the interface the server needs from the weft core.
type Engine interface {
	Definition() *domain.Definition
	Run(sequence []domain.Symbol) domain.RunResult
}

// Server routes HTTP requests to an engine. It is stateless: every run
// request replays its sequence on a fresh machine, so concurrent requests
// never share mutable state.
type Server struct {
	engine Engine
	logger *slog.Logger
}

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithMetricsGatherer mounts /metrics for the given gatherer.
func WithMetricsGatherer(g prometheus.Gatherer) Option {
	return func(c *handlerConfig) {
		c.gatherer = g
	}
}

// NewHandler creates the HTTP handler for an engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	cfg := &handlerConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	server := &Server{engine: engine, logger: cfg.logger}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/definition", server.GetDefinition)
	r.Get("/graph", server.GetGraph)
	r.Post("/run", server.Run)
	if cfg.gatherer != nil {
		r.Get("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	}
	return r
}

// RunRequest is the POST /run request body.
type RunRequest struct {
	// Sequence as a compact string of one-rune symbols...
	Sequence string `json:"sequence"`
	// ...or as an explicit symbol list for multi-rune alphabets.
	Symbols []string `json:"symbols,omitempty"`
}

// RunError is the serialized form of a retained run failure.
type RunError struct {
	Kind    string `json:"kind"` // "symbol" or "transition"
	Message string `json:"message"`
	Symbol  string `json:"symbol,omitempty"`
	From    string `json:"from,omitempty"`
}

// RunResponse is the POST /run response body.
type RunResponse struct {
	Trace      []domain.TransitionRecord `json:"trace"`
	FinalState domain.State              `json:"final_state"`
	Terminated bool                      `json:"terminated"`
	Error      *RunError                 `json:"error,omitempty"`
}

// Run handles the POST /run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Run: invalid request body", "error", err)
		return
	}

	sequence := domain.Sequence(body.Sequence)
	if len(body.Symbols) > 0 {
		sequence = make([]domain.Symbol, len(body.Symbols))
		for i, sym := range body.Symbols {
			sequence[i] = domain.Symbol(sym)
		}
	}

	result := s.engine.Run(sequence)

	resp := RunResponse{
		Trace:      result.Trace,
		FinalState: result.FinalState,
		Terminated: result.Terminated,
		Error:      mapRunError(result.Err),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Run: response encode failed", "error", err)
	}
}

// GetDefinition handles the GET /definition request.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	doc := s.engine.Definition().Document()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		s.logger.Error("GetDefinition: response encode failed", "error", err)
	}
}

// GetGraph handles the GET /graph request, returning a Mermaid diagram.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(s.engine.Definition(), nil))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func mapRunError(err error) *RunError {
	if err == nil {
		return nil
	}

	var symErr *domain.SymbolError
	if errors.As(err, &symErr) {
		return &RunError{
			Kind:    "symbol",
			Message: symErr.Error(),
			Symbol:  string(symErr.Symbol),
		}
	}

	var trErr *domain.TransitionError
	if errors.As(err, &trErr) {
		return &RunError{
			Kind:    "transition",
			Message: trErr.Error(),
			Symbol:  string(trErr.Symbol),
			From:    string(trErr.From),
		}
	}

	return &RunError{Kind: "unknown", Message: err.Error()}
}
