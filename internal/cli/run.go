package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/pkg/domain"
)

// RunOptions contains the configuration for the run command.
type RunOptions struct {
	Path      string
	Format    string // "csv", "yaml" or "" for extension-based detection
	Sequences []string
	JSON      bool // NDJSON output, one result per sequence
	Debug     bool
}

// Run loads the definition at opts.Path and replays each sequence against
// it, writing results to out. Sequences come from opts.Sequences, or from
// stdin (one per line) when none are given.
//
// Runs that stop early are reported, not fatal: the command only errors on
// definition problems or I/O failures.
func Run(opts RunOptions, in io.Reader, out io.Writer) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	def, err := LoadDefinition(opts.Path, opts.Format)
	if err != nil {
		return err
	}

	eng := weft.NewFromDefinition(def,
		weft.WithName(MachineName(opts.Path)),
		weft.WithLogger(logger),
	)

	sequences := opts.Sequences
	if len(sequences) == 0 && in != nil {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				sequences = append(sequences, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read sequences: %w", err)
		}
	}

	for _, seq := range sequences {
		result := eng.Run(domain.Sequence(seq))
		if opts.JSON {
			if err := writeJSON(out, seq, result); err != nil {
				return err
			}
			continue
		}
		writeText(out, seq, result)
	}

	return nil
}

type jsonResult struct {
	Sequence   string                    `json:"sequence"`
	Trace      []domain.TransitionRecord `json:"trace"`
	FinalState domain.State              `json:"final_state"`
	Terminated bool                      `json:"terminated"`
	Error      string                    `json:"error,omitempty"`
}

func writeJSON(out io.Writer, seq string, result domain.RunResult) error {
	payload := jsonResult{
		Sequence:   seq,
		Trace:      result.Trace,
		FinalState: result.FinalState,
		Terminated: result.Terminated,
	}
	if result.Err != nil {
		payload.Error = result.Err.Error()
	}
	return json.NewEncoder(out).Encode(payload)
}

func writeText(out io.Writer, seq string, result domain.RunResult) {
	fmt.Fprintf(out, "Running sequence: %s\n", seq)
	for _, rec := range result.Trace {
		if rec.Undefined {
			fmt.Fprintf(out, "%s -%s-> ?\n", rec.From, rec.Symbol)
			continue
		}
		fmt.Fprintf(out, "%s -%s-> %s\n", rec.From, rec.Symbol, rec.To)
	}
	if result.Err != nil {
		fmt.Fprintln(out, result.Err)
	}
	if result.Terminated {
		fmt.Fprintln(out, "Terminated")
	} else {
		fmt.Fprintln(out, "Failed to terminate")
	}
}

// ExitOnError prints err and exits non-zero; shared by the cobra commands.
func ExitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
