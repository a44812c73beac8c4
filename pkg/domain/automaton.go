package domain

// AutomatonID identifies one of the built-in automata.
type AutomatonID string

const (
	ParImpar AutomatonID = "par_impar"
	Binario  AutomatonID = "binario"
	Vocales  AutomatonID = "vocales"
	Custom   AutomatonID = "custom"
)

// Descriptor is the public, read-only description of an automaton.
type Descriptor struct {
	ID          AutomatonID `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
}

// Evaluator replays an automaton over a raw input string.
// Implementations must be pure: the same input always yields the same Result.
type Evaluator interface {
	Evaluate(raw string) Result
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(raw string) Result

// Evaluate calls f(raw).
func (f EvaluatorFunc) Evaluate(raw string) Result {
	return f(raw)
}
