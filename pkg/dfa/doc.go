/*
Package dfa implements a small generic runner for deterministic finite automata.

A Machine is described by its initial state, a total transition function, an accept
predicate and an optional halt predicate. Run walks the input rune by rune and returns the
final state, whether it is accepting, how many symbols were consumed and, when tracing is
enabled, every transition taken.

Machines are plain values with no internal state, so a single Machine can be run from many
goroutines at once.

# Halting

By default a Machine consumes the whole input even after it enters an absorbing state. When
Halt is set, the walk stops right after the transition into a state for which Halt returns
true; that transition is still counted and traced.
*/
package dfa
