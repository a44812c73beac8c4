package builtin

import (
	"fmt"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
)

const (
	stateEven = "Par"
	stateOdd  = "Impar"
)

// parityMachine tracks the parity of the number of '1' symbols.
// Every other symbol is a self-loop and every state is accepting.
var parityMachine = dfa.Machine[string]{
	Initial: stateEven,
	Next: func(state string, symbol rune) string {
		if symbol != '1' {
			return state
		}
		if state == stateEven {
			return stateOdd
		}
		return stateEven
	},
	Accepting: dfa.In(stateEven, stateOdd),
}

// EvaluateParity reports whether raw contains an even or odd number of '1' symbols.
func EvaluateParity(raw string) domain.Result {
	run := parityMachine.Run(raw)

	word := "PAR"
	if run.Final == stateOdd {
		word = "IMPAR"
	}
	return domain.Result{
		Accepted:   run.Accepted,
		Message:    fmt.Sprintf(`La cantidad de 1s en "%s" es %s`, raw, word),
		FinalState: run.Final,
	}
}

// ParityDiagram describes parityMachine.
func ParityDiagram() domain.Diagram {
	return domain.Diagram{
		ID:        domain.ParImpar,
		Initial:   stateEven,
		Accepting: []string{stateEven, stateOdd},
		States:    []string{stateEven, stateOdd},
		Edges: []domain.Edge{
			{From: stateEven, To: stateOdd, Label: "1", Sample: '1'},
			{From: stateEven, To: stateEven, Label: "otro", Sample: '0'},
			{From: stateOdd, To: stateEven, Label: "1", Sample: '1'},
			{From: stateOdd, To: stateOdd, Label: "otro", Sample: 'x'},
		},
	}
}
