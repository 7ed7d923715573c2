// Package graph renders machine definitions as Mermaid diagrams.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/weft/pkg/domain"
)

// Overlay contains dynamic run data to visualize on top of the static
// machine: the states a trace passed through and the state it ended in.
type Overlay struct {
	VisitedStates []domain.State
	CurrentState  domain.State
}

// OverlayFromResult builds an overlay from a finished run.
func OverlayFromResult(def *domain.Definition, result domain.RunResult) *Overlay {
	visited := []domain.State{def.InitialState()}
	for _, rec := range result.Trace {
		if !rec.Undefined {
			visited = append(visited, rec.To)
		}
	}
	return &Overlay{
		VisitedStates: visited,
		CurrentState:  result.FinalState,
	}
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) for a definition.
// The initial state is drawn as a circle, terminal states get a class style,
// and parallel transitions between the same pair of states are merged into a
// single edge with a comma-joined symbol label.
func GenerateMermaid(def *domain.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range def.States() {
		safeID := sanitizeMermaidID(string(state))

		opener, closer := "[", "]"
		if state == def.InitialState() {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, state, closer))
	}

	// Merge edges: (from, to) -> symbols
	type edge struct{ from, to domain.State }
	labels := make(map[edge][]string)
	var order []edge
	for _, r := range def.Rules() {
		e := edge{r.From, r.To}
		if _, seen := labels[e]; !seen {
			order = append(order, e)
		}
		labels[e] = append(labels[e], string(r.Symbol))
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].from != order[j].from {
			return order[i].from < order[j].from
		}
		return order[i].to < order[j].to
	})
	for _, e := range order {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(string(e.from)),
			strings.Join(labels[e], ","),
			sanitizeMermaidID(string(e.to))))
	}

	sb.WriteString("\n    classDef terminal stroke-width:3px,stroke:#01579b;\n")
	for _, t := range def.TerminalStates() {
		sb.WriteString(fmt.Sprintf("    class %s terminal;\n", sanitizeMermaidID(string(t))))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(string(s))
			if safeID != "" && !visitedSet[safeID] {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(string(overlay.CurrentState))))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
