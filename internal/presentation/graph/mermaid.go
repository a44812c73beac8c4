package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GraphOverlay contains dynamic run data to visualize on the diagram.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromResult builds an overlay from an evaluation.
// Only traced results know their intermediate states; others mark the final state alone.
func OverlayFromResult(initial string, r domain.Result) *GraphOverlay {
	overlay := &GraphOverlay{
		VisitedStates: []string{initial},
		CurrentState:  r.FinalState,
	}
	if r.Trace != nil {
		for _, s := range r.Steps {
			overlay.VisitedStates = append(overlay.VisitedStates, s.StateTo)
		}
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart (graph LR) for a DFA diagram.
// It applies semantic styling:
// - Accepting: (((Double Circle)))
// - Other states: ((Circle))
// - Initial: an arrow from an invisible start point
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(d domain.Diagram, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	sb.WriteString("    start_point[ ] --> " + sanitizeMermaidID(d.Initial) + "\n")
	sb.WriteString("    style start_point fill:none,stroke:none\n")

	for _, state := range d.States {
		opener, closer := "((", "))"
		if d.IsAccepting(state) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(state), opener, state, closer))
	}

	for _, e := range d.Edges {
		// Escape double quotes in label for Mermaid
		label := strings.ReplaceAll(e.Label, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", sanitizeMermaidID(e.From), label, sanitizeMermaidID(e.To)))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, state := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(state)
			if !visitedSet[safeID] && state != "" && state != overlay.CurrentState {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID prefixes state names so that numeric or reserved names ("end") are valid ids.
func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "m")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return "s_" + s
}
