package builtin

import (
	"fmt"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
)

const customError = "ERROR"

// customTable maps state -> symbol -> next state. Missing entries lead to ERROR.
var customTable = map[string]map[rune]string{
	"A": {'x': "B", 'y': "C"},
	"B": {'x': "A", 'y': "D"},
	"C": {'x': "D", 'y': "A"},
	"D": {'x': "D", 'y': "D"},
}

// customMachine is the four-state x/y automaton. It traces every move and stops on ERROR.
var customMachine = dfa.Machine[string]{
	Initial: "A",
	Next: func(state string, symbol rune) string {
		if next, ok := customTable[state][symbol]; ok {
			return next
		}
		return customError
	},
	Accepting: dfa.In("A", "D"),
	Halt:      func(state string) bool { return state == customError },
	Trace:     true,
}

// EvaluateCustom runs the x/y automaton and returns its full trace.
func EvaluateCustom(raw string) domain.Result {
	run := customMachine.Run(raw)

	msg := fmt.Sprintf(`"%s" es RECHAZADA`, raw)
	if run.Accepted {
		msg = fmt.Sprintf(`"%s" es ACEPTADA (estado final: %s)`, raw, run.Final)
	}
	return domain.Result{
		Accepted:   run.Accepted,
		Message:    msg,
		FinalState: run.Final,
		Trace:      traceOf(run.Path, func(s string) string { return s }),
	}
}

// CustomDiagram describes customMachine.
func CustomDiagram() domain.Diagram {
	edges := []domain.Edge{
		{From: "A", To: "B", Label: "x", Sample: 'x'},
		{From: "A", To: "C", Label: "y", Sample: 'y'},
		{From: "B", To: "A", Label: "x", Sample: 'x'},
		{From: "B", To: "D", Label: "y", Sample: 'y'},
		{From: "C", To: "D", Label: "x", Sample: 'x'},
		{From: "C", To: "A", Label: "y", Sample: 'y'},
		{From: "D", To: "D", Label: "x, y", Sample: 'x'},
	}
	for _, s := range []string{"A", "B", "C", "D"} {
		edges = append(edges, domain.Edge{From: s, To: customError, Label: "otro", Sample: 'z'})
	}
	edges = append(edges, domain.Edge{From: customError, To: customError, Label: "*", Sample: 'x'})

	return domain.Diagram{
		ID:        domain.Custom,
		Initial:   "A",
		Accepting: []string{"A", "D"},
		States:    []string{"A", "B", "C", "D", customError},
		Edges:     edges,
	}
}
