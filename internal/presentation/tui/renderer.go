// Package tui renders machine snapshots for human consumption.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/aretw0/weft/pkg/domain"
)

// DescribeMarkdown builds a human-readable markdown snapshot of a machine:
// sorted state and symbol lists, the initial state, sorted terminals,
// transitions grouped by source state, and the current state.
func DescribeMarkdown(def *domain.Definition, current domain.State) string {
	var sb strings.Builder

	sb.WriteString("# Machine\n\n")
	sb.WriteString(fmt.Sprintf("- **States**: %s\n", joinStates(def.States())))
	sb.WriteString(fmt.Sprintf("- **Symbols**: %s\n", joinSymbols(def.Symbols())))
	sb.WriteString(fmt.Sprintf("- **Initial State**: %s\n", def.InitialState()))
	sb.WriteString(fmt.Sprintf("- **Terminal States**: %s\n", joinStates(def.TerminalStates())))

	sb.WriteString("\n## Transitions\n\n")
	var lastFrom domain.State
	for _, r := range def.Rules() {
		if r.From != lastFrom {
			sb.WriteString(fmt.Sprintf("- `%s`\n", r.From))
			lastFrom = r.From
		}
		sb.WriteString(fmt.Sprintf("  - `%s -%s-> %s`\n", r.From, r.Symbol, r.To))
	}

	if current != "" {
		sb.WriteString(fmt.Sprintf("\n**Current State**: %s\n", current))
	}

	return sb.String()
}

// Render pretty-prints markdown with glamour when stdout is a terminal and
// falls back to the raw markdown otherwise (pipes, CI).
func Render(markdown string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return markdown
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func joinStates(states []domain.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinSymbols(symbols []domain.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
