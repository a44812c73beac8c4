package automata_test

import (
	"context"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/registry"
)

func TestFacade_Process(t *testing.T) {
	engine := automata.New()
	ctx := context.Background()

	tests := []struct {
		input    string
		kind     string
		accepted bool
		final    string
	}{
		{"1011", "par_impar", true, "Impar"},
		{"1010", "binario", true, "q1"},
		{"102", "binario", false, "q_error"},
		{"Aeiou", "vocales", true, "3"},
		{"xy", "custom", true, "D"},
		{"xz", "custom", false, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.input, func(t *testing.T) {
			out, err := engine.Process(ctx, tt.input, tt.kind)
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}
			if out.Result.Accepted != tt.accepted {
				t.Errorf("Expected accepted=%v, got %v", tt.accepted, out.Result.Accepted)
			}
			if out.Result.FinalState != tt.final {
				t.Errorf("Expected final state %q, got %q", tt.final, out.Result.FinalState)
			}
		})
	}
}

func TestFacade_Types(t *testing.T) {
	types := automata.New().Types()
	want := []domain.AutomatonID{domain.ParImpar, domain.Binario, domain.Vocales, domain.Custom}

	if len(types) != len(want) {
		t.Fatalf("Expected %d types, got %d", len(want), len(types))
	}
	for i, id := range want {
		if types[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, types[i].ID)
		}
	}
}

func TestFacade_Diagram(t *testing.T) {
	d, err := automata.New().Diagram("vocales")
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}
	if d.Initial != "0" {
		t.Errorf("Expected initial state 0, got %s", d.Initial)
	}
}

func TestFacade_Hooks(t *testing.T) {
	var count int
	engine := automata.New(automata.WithLifecycleHooks(domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.EvaluationEvent) { count++ },
	}))

	_, _ = engine.Process(context.Background(), "1", "binario")
	_, _ = engine.Process(context.Background(), "", "binario")

	if count != 1 {
		t.Errorf("Expected 1 evaluation event, got %d", count)
	}
}

func TestFacade_CustomRegistry(t *testing.T) {
	reg := registry.NewRegistry()
	engine := automata.New(automata.WithRegistry(reg))

	if len(engine.Types()) != 0 {
		t.Errorf("Expected empty registry")
	}
	if _, err := engine.Process(context.Background(), "1", "binario"); err == nil {
		t.Error("Expected error for unregistered automaton")
	}
}

func TestVersion(t *testing.T) {
	if automata.Version == "" {
		t.Error("Version must be embedded")
	}
}
