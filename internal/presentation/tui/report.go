package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Report renders an evaluation as Markdown: a summary and, when present, the step table.
func Report(out *domain.Outcome) string {
	var sb strings.Builder

	verdict := "RECHAZADA"
	if out.Result.Accepted {
		verdict = "ACEPTADA"
	}

	fmt.Fprintf(&sb, "# %s\n\n", out.AutomatonID)
	fmt.Fprintf(&sb, "- **Entrada:** `%s`\n", out.Input)
	fmt.Fprintf(&sb, "- **Resultado:** %s\n", verdict)
	fmt.Fprintf(&sb, "- **Estado final:** `%s`\n", out.Result.FinalState)
	fmt.Fprintf(&sb, "- **Mensaje:** %s\n", out.Result.Message)

	if out.Result.Trace != nil {
		fmt.Fprintf(&sb, "\n## Pasos (%d)\n\n", out.Result.TotalSteps)
		if len(out.Result.Steps) > 0 {
			sb.WriteString("| Paso | Símbolo | Transición |\n")
			sb.WriteString("|---:|:---:|---|\n")
			for _, s := range out.Result.Steps {
				fmt.Fprintf(&sb, "| %d | `%s` | %s |\n", s.Index, escapeCell(s.Symbol), s.Transition)
			}
		}
	}

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
