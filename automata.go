package automata

import (
	"context"
	"log/slog"

	"github.com/aretw0/automata/internal/builtin"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/runtime"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/registry"
)

// Engine is the high-level entry point for the automata library.
// It wraps the registry and the dispatcher and is what every adapter consumes.
type Engine struct {
	dispatcher *runtime.Dispatcher
	registry   *registry.Registry
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the built-in registry. Mostly useful in tests.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// New initializes an Engine with the built-in automata.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = NewBuiltinRegistry()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.dispatcher = runtime.NewDispatcher(eng.registry,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng
}

// NewBuiltinRegistry returns a registry holding par_impar, binario, vocales and custom, in that order.
func NewBuiltinRegistry() *registry.Registry {
	reg := registry.NewRegistry()
	for _, def := range builtin.Definitions() {
		reg.Register(registry.Entry{
			Descriptor: def.Descriptor,
			Evaluator:  def.Evaluator,
			Diagram:    def.Diagram,
		})
	}
	return reg
}

// Process evaluates input with the automaton named by automataType.
func (e *Engine) Process(ctx context.Context, input, automataType string) (*domain.Outcome, error) {
	return e.dispatcher.Process(ctx, input, automataType)
}

// Types returns the descriptors of every available automaton in display order.
func (e *Engine) Types() []domain.Descriptor {
	return e.dispatcher.ListTypes()
}

// Diagram returns the transition graph of an automaton for visualization.
func (e *Engine) Diagram(automataType string) (domain.Diagram, error) {
	return e.dispatcher.Diagram(automataType)
}
