package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
)

const (
	vowelReject = -1
	vowelDone   = 3
)

// vowelOrder is the required prefix; position i is expected in state i.
var vowelOrder = [...]rune{'a', 'e', 'i'}

// vowelMachine accepts strings starting with "aei".
// State 3 absorbs accepting, -1 absorbs rejecting and stops the walk.
var vowelMachine = dfa.Machine[int]{
	Initial: 0,
	Next: func(state int, symbol rune) int {
		switch {
		case state == vowelDone || state == vowelReject:
			return state
		case symbol == vowelOrder[state]:
			return state + 1
		default:
			return vowelReject
		}
	},
	Accepting: dfa.In(vowelDone),
	Halt:      func(state int) bool { return state == vowelReject },
}

// EvaluateVowels reports whether raw starts with 'a' -> 'e' -> 'i', ignoring case.
func EvaluateVowels(raw string) domain.Result {
	run := vowelMachine.Run(strings.ToLower(raw))

	msg := fmt.Sprintf(`"%s" NO sigue la secuencia 'a' -> 'e' -> 'i'`, raw)
	if run.Accepted {
		msg = fmt.Sprintf(`"%s" sigue la secuencia 'a' -> 'e' -> 'i'`, raw)
	}
	return domain.Result{
		Accepted:   run.Accepted,
		Message:    msg,
		FinalState: strconv.Itoa(run.Final),
	}
}

// VowelsDiagram describes vowelMachine. Labels list both cases since input is lowered first.
func VowelsDiagram() domain.Diagram {
	return domain.Diagram{
		ID:        domain.Vocales,
		Initial:   "0",
		Accepting: []string{"3"},
		States:    []string{"0", "1", "2", "3", "-1"},
		Edges: []domain.Edge{
			{From: "0", To: "1", Label: "a, A", Sample: 'a'},
			{From: "0", To: "-1", Label: "otro", Sample: 'e'},
			{From: "1", To: "2", Label: "e, E", Sample: 'e'},
			{From: "1", To: "-1", Label: "otro", Sample: 'a'},
			{From: "2", To: "3", Label: "i, I", Sample: 'i'},
			{From: "2", To: "-1", Label: "otro", Sample: 'o'},
			{From: "3", To: "3", Label: "*", Sample: 'u'},
			{From: "-1", To: "-1", Label: "*", Sample: 'a'},
		},
	}
}
