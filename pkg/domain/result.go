package domain

import "fmt"

// Result is the outcome of replaying one automaton over one input.
// Field names follow the wire contract consumed by the browser UI.
type Result struct {
	Accepted   bool   `json:"aceptada"`
	Message    string `json:"mensaje"`
	FinalState string `json:"estadoFinal"`

	// Trace is only set by automata that record their transitions.
	*Trace
}

// Trace is the ordered list of transitions taken during an evaluation.
type Trace struct {
	Steps      []Step `json:"pasos"`
	TotalSteps int    `json:"totalPasos"`
}

// NewTrace builds a Trace whose TotalSteps matches len(steps).
// A nil slice is normalized so that it serializes as an empty list.
func NewTrace(steps []Step) *Trace {
	if steps == nil {
		steps = []Step{}
	}
	return &Trace{Steps: steps, TotalSteps: len(steps)}
}

// Step records a single consumed symbol.
type Step struct {
	Index      int    `json:"paso"`
	Symbol     string `json:"simbolo"`
	StateFrom  string `json:"estadoAnterior"`
	StateTo    string `json:"estadoNuevo"`
	Transition string `json:"transicion"`
}

// NewStep builds a Step with its "from -> to" label.
func NewStep(index int, symbol, from, to string) Step {
	return Step{
		Index:      index,
		Symbol:     symbol,
		StateFrom:  from,
		StateTo:    to,
		Transition: fmt.Sprintf("%s -> %s", from, to),
	}
}

// Outcome is a Result together with the request that produced it.
type Outcome struct {
	Input       string      `json:"input"`
	AutomatonID AutomatonID `json:"automataType"`
	Result      Result      `json:"result"`
}
