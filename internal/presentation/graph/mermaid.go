package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/twoway/pkg/domain"
)

// GraphOverlay contains dynamic run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.StateID
	CurrentState  domain.StateID
}

type edgeKey struct {
	from, to domain.StateID
	move     domain.Move
	silent   bool
}

type edge struct {
	key   edgeKey
	reads []string
	emits []string
}

// GenerateMermaid produces a Mermaid flowchart of a transition table.
// Rules sharing source, target, move and silence collapse into one edge
// labelled "reads, move, emits", e.g. "A|B, 1, A|B". Emits line up with
// reads, and a single emit is shown when every read emits the same symbol.
// The initial state is drawn as a circle and the terminal state as a double circle.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(table *domain.Table, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range table.States() {
		opener, closer := "[", "]"
		switch {
		case table.IsTerminal(s):
			opener, closer = "(((", ")))"
		case s == table.Initial():
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(string(s)), opener, s, closer))
	}

	for _, e := range groupEdges(table.Rules()) {
		label := fmt.Sprintf("%s, %s, %s",
			strings.Join(e.reads, "|"), e.key.move, e.emitLabel())
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(string(e.key.from)), escapeLabel(label), sanitizeMermaidID(string(e.key.to))))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(string(s))
			if safeID == "" || seen[safeID] || s == overlay.CurrentState {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(string(overlay.CurrentState))))
		}
	}

	return sb.String()
}

// groupEdges merges rules per (from, to, move, silent) in declaration order.
func groupEdges(rules []domain.Rule) []*edge {
	var order []*edge
	byKey := make(map[edgeKey]*edge)

	for _, r := range rules {
		k := edgeKey{from: r.From, to: r.Next, move: r.Move, silent: !r.Emit.Present}
		e, ok := byKey[k]
		if !ok {
			e = &edge{key: k}
			byKey[k] = e
			order = append(order, e)
		}
		e.reads = append(e.reads, r.Read.String())
		e.emits = append(e.emits, r.Emit.String())
	}
	return order
}

func (e *edge) emitLabel() string {
	for _, x := range e.emits[1:] {
		if x != e.emits[0] {
			return strings.Join(e.emits, "|")
		}
	}
	return e.emits[0]
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
