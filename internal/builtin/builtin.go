// Package builtin defines the built-in automata served by the engine.
//
// Each automaton is a dfa.Machine plus the glue that turns a run into a domain.Result
// and a hand-written Diagram describing its transition graph.
package builtin

import (
	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
)

// Definition bundles everything the registry needs to know about one automaton.
type Definition struct {
	Descriptor domain.Descriptor
	Evaluator  domain.Evaluator
	Diagram    domain.Diagram
}

// Definitions returns the fixed set of automata in display order.
func Definitions() []Definition {
	return []Definition{
		{
			Descriptor: domain.Descriptor{
				ID:          domain.ParImpar,
				Name:        "Par/Impar",
				Description: "Determina si la cantidad de 1s es par o impar",
			},
			Evaluator: domain.EvaluatorFunc(EvaluateParity),
			Diagram:   ParityDiagram(),
		},
		{
			Descriptor: domain.Descriptor{
				ID:          domain.Binario,
				Name:        "Binario Válido",
				Description: "Verifica si la cadena es binaria (solo 0s y 1s)",
			},
			Evaluator: domain.EvaluatorFunc(EvaluateBinary),
			Diagram:   BinaryDiagram(),
		},
		{
			Descriptor: domain.Descriptor{
				ID:          domain.Vocales,
				Name:        "Secuencia de Vocales",
				Description: "Verifica secuencias específicas de vocales",
			},
			Evaluator: domain.EvaluatorFunc(EvaluateVowels),
			Diagram:   VowelsDiagram(),
		},
		{
			Descriptor: domain.Descriptor{
				ID:          domain.Custom,
				Name:        "Autómata Personalizado",
				Description: "Procesa cadenas con un autómata definido",
			},
			Evaluator: domain.EvaluatorFunc(EvaluateCustom),
			Diagram:   CustomDiagram(),
		},
	}
}

// traceOf converts a machine path into the wire representation.
func traceOf[S comparable](path []dfa.Transition[S], name func(S) string) *domain.Trace {
	steps := make([]domain.Step, 0, len(path))
	for _, t := range path {
		steps = append(steps, domain.NewStep(t.Index, string(t.Symbol), name(t.From), name(t.To)))
	}
	return domain.NewTrace(steps)
}
