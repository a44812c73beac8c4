package dfa_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/stretchr/testify/assert"
)

// counts 'a' modulo 3, with '#' as an absorbing trap.
func mod3(halt bool) dfa.Machine[int] {
	m := dfa.Machine[int]{
		Initial: 0,
		Next: func(s int, r rune) int {
			switch {
			case s == -1 || r == '#':
				return -1
			case r == 'a':
				return (s + 1) % 3
			default:
				return s
			}
		},
		Accepting: dfa.In(0),
		Trace:     true,
	}
	if halt {
		m.Halt = func(s int) bool { return s == -1 }
	}
	return m
}

func TestMachine_Run(t *testing.T) {
	tests := []struct {
		name     string
		halt     bool
		input    string
		final    int
		accepted bool
		consumed int
	}{
		{"Empty Input Stays Initial", false, "", 0, true, 0},
		{"Three As", false, "aaa", 0, true, 3},
		{"Ignores Others", false, "abab", 2, false, 4},
		{"Trap Keeps Consuming", false, "a#aa", -1, false, 4},
		{"Trap Halts", true, "a#aa", -1, false, 2},
		{"Halt Never Triggered", true, "aaaaaa", 0, true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := mod3(tt.halt).Run(tt.input)
			assert.Equal(t, tt.final, run.Final)
			assert.Equal(t, tt.accepted, run.Accepted)
			assert.Equal(t, tt.consumed, run.Consumed)
			assert.Len(t, run.Path, tt.consumed)
		})
	}
}

func TestMachine_TraceRecordsEveryMove(t *testing.T) {
	run := mod3(true).Run("ab#a")

	want := []dfa.Transition[int]{
		{Index: 1, Symbol: 'a', From: 0, To: 1},
		{Index: 2, Symbol: 'b', From: 1, To: 1},
		{Index: 3, Symbol: '#', From: 1, To: -1},
	}
	assert.Equal(t, want, run.Path)
}

func TestMachine_NoTrace(t *testing.T) {
	m := mod3(false)
	m.Trace = false

	run := m.Run("aaaa")
	assert.Nil(t, run.Path)
	assert.Equal(t, 4, run.Consumed)
}

func TestMachine_RunesNotBytes(t *testing.T) {
	run := mod3(false).Run("ñaé")
	assert.Equal(t, 3, run.Consumed)
	assert.Equal(t, 'ñ', run.Path[0].Symbol)
	assert.Equal(t, 2, run.Path[1].Index)
}

func TestMachine_NilAcceptingRejects(t *testing.T) {
	m := dfa.Machine[string]{
		Initial: "s",
		Next:    func(s string, _ rune) string { return s },
	}
	assert.False(t, m.Run("x").Accepted)
}

func TestIn(t *testing.T) {
	accept := dfa.In("A", "D")
	assert.True(t, accept("A"))
	assert.True(t, accept("D"))
	assert.False(t, accept("B"))
	assert.False(t, accept(""))
}
