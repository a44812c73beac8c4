package dfa

// Machine is a deterministic finite automaton over runes.
type Machine[S comparable] struct {
	// Initial is the state the walk starts from.
	Initial S

	// Next is the transition function. It must be total.
	Next func(state S, symbol rune) S

	// Accepting reports whether a state belongs to the accept set.
	Accepting func(state S) bool

	// Halt, if set, stops the walk right after entering a state for which it returns true.
	Halt func(state S) bool

	// Trace enables recording of every transition taken.
	Trace bool
}

// Transition is a single recorded move of the machine.
type Transition[S comparable] struct {
	Index  int // 1-based position of Symbol in the input
	Symbol rune
	From   S
	To     S
}

// Run is the result of walking a Machine over one input.
type Run[S comparable] struct {
	Final    S
	Accepted bool
	Consumed int
	Path     []Transition[S]
}

// Run walks the machine over input and returns the outcome.
func (m Machine[S]) Run(input string) Run[S] {
	run := Run[S]{Final: m.Initial}
	if m.Trace {
		run.Path = make([]Transition[S], 0, len(input))
	}

	state := m.Initial
	for _, symbol := range input {
		next := m.Next(state, symbol)
		run.Consumed++
		if m.Trace {
			run.Path = append(run.Path, Transition[S]{
				Index:  run.Consumed,
				Symbol: symbol,
				From:   state,
				To:     next,
			})
		}
		state = next
		if m.Halt != nil && m.Halt(state) {
			break
		}
	}

	run.Final = state
	run.Accepted = m.Accepting != nil && m.Accepting(state)
	return run
}

// In returns an accept predicate for a fixed set of states.
func In[S comparable](states ...S) func(S) bool {
	set := make(map[S]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return func(state S) bool {
		_, ok := set[state]
		return ok
	}
}
