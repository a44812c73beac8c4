package domain

// Diagram is the static transition graph of an automaton, used for introspection.
type Diagram struct {
	ID        AutomatonID `json:"id"`
	Initial   string      `json:"initial"`
	Accepting []string    `json:"accepting"`
	States    []string    `json:"states"`
	Edges     []Edge      `json:"edges"`
}

// Edge is one arrow of a Diagram.
// Label describes the symbols that take it; Sample is one concrete symbol that does.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label"`
	Sample rune   `json:"-"`
}

// IsAccepting reports whether state belongs to the accept set.
func (d Diagram) IsAccepting(state string) bool {
	for _, s := range d.Accepting {
		if s == state {
			return true
		}
	}
	return false
}
