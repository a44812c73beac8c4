package registry_test

import (
	"sync"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(state string) domain.Evaluator {
	return domain.EvaluatorFunc(func(string) domain.Result {
		return domain.Result{FinalState: state}
	})
}

func entry(id domain.AutomatonID, state string) registry.Entry {
	return registry.Entry{
		Descriptor: domain.Descriptor{ID: id, Name: string(id)},
		Evaluator:  constant(state),
		Diagram:    domain.Diagram{ID: id, Initial: state},
	}
}

func TestRegistry_LookupAndList(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(entry("b", "B"))
	r.Register(entry("a", "A"))

	ev, err := r.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "A", ev.Evaluate("").FinalState)

	d, err := r.Diagram("b")
	require.NoError(t, err)
	assert.Equal(t, "B", d.Initial)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, domain.AutomatonID("b"), list[0].ID)
	assert.Equal(t, domain.AutomatonID("a"), list[1].ID)
}

func TestRegistry_Unknown(t *testing.T) {
	r := registry.NewRegistry()

	_, err := r.Lookup("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownAutomaton)
	assert.Contains(t, err.Error(), `"nope"`)

	_, err = r.Diagram("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownAutomaton)
}

func TestRegistry_OverwriteKeepsOrder(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(entry("a", "A1"))
	r.Register(entry("b", "B"))
	r.Register(entry("a", "A2"))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, domain.AutomatonID("a"), list[0].ID)

	ev, err := r.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "A2", ev.Evaluate("").FinalState)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(entry("a", "A"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev, err := r.Lookup("a")
			if err != nil {
				t.Error(err)
				return
			}
			_ = ev.Evaluate("x")
			_ = r.List()
		}()
	}
	wg.Wait()
}
