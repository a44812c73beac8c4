package domain

import "errors"

// ErrMissingField is returned when a request omits the input string or the automaton type.
var ErrMissingField = errors.New("missing required field")

// ErrUnknownAutomaton is returned when an automaton identifier is not registered.
var ErrUnknownAutomaton = errors.New("unknown automaton")

// ErrInternal is returned when an evaluation fails unexpectedly.
// The underlying cause is logged, never exposed to callers.
var ErrInternal = errors.New("internal evaluation failure")
