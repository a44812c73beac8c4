/*
Package automata evaluates strings against a small, fixed set of deterministic finite automata.

Four automata are built in:

  - par_impar: reports whether the input holds an even or odd number of '1' symbols.
  - binario: accepts non-empty strings made only of '0' and '1'.
  - vocales: accepts strings starting with 'a' -> 'e' -> 'i', ignoring case.
  - custom: a four-state automaton over {x, y} that also returns its transition trace.

Every evaluation is a pure function of its input, so a single Engine can serve any number of
concurrent requests. The same Engine backs the HTTP server, the MCP server and the CLI.

# Usage

	eng := automata.New()

	out, err := eng.Process(context.Background(), "xy", "custom")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Result.Accepted, out.Result.FinalState) // true D

Errors returned by Process wrap one of domain.ErrMissingField, domain.ErrUnknownAutomaton or
domain.ErrInternal. States such as q_error or ERROR are not errors: they are reported in the
Result like any other final state.
*/
package automata
