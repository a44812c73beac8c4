package builtin

import (
	"fmt"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
)

const (
	stateBinStart = "q0"
	stateBinValid = "q1"
	stateBinError = "q_error"
)

// binaryMachine accepts non-empty strings of '0' and '1'.
// q_error absorbs, but the walk still consumes the rest of the input.
var binaryMachine = dfa.Machine[string]{
	Initial: stateBinStart,
	Next: func(state string, symbol rune) string {
		if state == stateBinError {
			return stateBinError
		}
		if symbol == '0' || symbol == '1' {
			return stateBinValid
		}
		return stateBinError
	},
	Accepting: dfa.In(stateBinValid),
}

// EvaluateBinary reports whether raw is a valid binary string.
func EvaluateBinary(raw string) domain.Result {
	run := binaryMachine.Run(raw)

	msg := fmt.Sprintf(`"%s" NO es una cadena binaria válida`, raw)
	if run.Accepted {
		msg = fmt.Sprintf(`"%s" es una cadena binaria VÁLIDA`, raw)
	}
	return domain.Result{
		Accepted:   run.Accepted,
		Message:    msg,
		FinalState: run.Final,
	}
}

// BinaryDiagram describes binaryMachine.
func BinaryDiagram() domain.Diagram {
	return domain.Diagram{
		ID:        domain.Binario,
		Initial:   stateBinStart,
		Accepting: []string{stateBinValid},
		States:    []string{stateBinStart, stateBinValid, stateBinError},
		Edges: []domain.Edge{
			{From: stateBinStart, To: stateBinValid, Label: "0, 1", Sample: '0'},
			{From: stateBinStart, To: stateBinError, Label: "otro", Sample: '2'},
			{From: stateBinValid, To: stateBinValid, Label: "0, 1", Sample: '1'},
			{From: stateBinValid, To: stateBinError, Label: "otro", Sample: 'b'},
			{From: stateBinError, To: stateBinError, Label: "*", Sample: '0'},
		},
	}
}
