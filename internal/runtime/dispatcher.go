package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
)

// Catalog is the view of the registry the dispatcher needs.
type Catalog interface {
	Lookup(id domain.AutomatonID) (domain.Evaluator, error)
	Diagram(id domain.AutomatonID) (domain.Diagram, error)
	List() []domain.Descriptor
}

// Dispatcher validates requests, selects an evaluator and wraps its result.
// It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	catalog Catalog
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	now     func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// NewDispatcher creates a dispatcher over the given catalog.
func NewDispatcher(catalog Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		catalog: catalog,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Process evaluates input with the automaton named by automataType.
//
// Errors wrap domain.ErrMissingField, domain.ErrUnknownAutomaton or domain.ErrInternal.
// DFA error states are not errors: they are reported in the Result.
func (d *Dispatcher) Process(ctx context.Context, input, automataType string) (*domain.Outcome, error) {
	id := domain.AutomatonID(automataType)

	if input == "" || automataType == "" {
		err := fmt.Errorf("%w: input and automataType are required", domain.ErrMissingField)
		d.reject(ctx, id, err)
		return nil, err
	}

	evaluator, err := d.catalog.Lookup(id)
	if err != nil {
		d.reject(ctx, id, err)
		return nil, err
	}

	start := d.now()
	result, err := d.evaluate(evaluator, input)
	if err != nil {
		d.logger.ErrorContext(ctx, "evaluation failed", "automaton", id, "error", err)
		return nil, err
	}
	elapsed := d.now().Sub(start)

	steps := 0
	if result.Trace != nil {
		steps = result.TotalSteps
	}
	d.logger.DebugContext(ctx, "evaluated",
		"automaton", id,
		"accepted", result.Accepted,
		"final_state", result.FinalState,
		"steps", steps,
	)

	if d.hooks.OnEvaluate != nil {
		d.hooks.OnEvaluate(ctx, &domain.EvaluationEvent{
			EventBase:  domain.EventBase{Timestamp: start, Type: domain.EventEvaluate},
			Automaton:  id,
			Accepted:   result.Accepted,
			FinalState: result.FinalState,
			Symbols:    utf8.RuneCountInString(input),
			Steps:      steps,
			Duration:   elapsed,
		})
	}

	return &domain.Outcome{
		Input:       input,
		AutomatonID: id,
		Result:      result,
	}, nil
}

// ListTypes returns the registered automata in display order.
func (d *Dispatcher) ListTypes() []domain.Descriptor {
	return d.catalog.List()
}

// Diagram returns the transition graph of the automaton named by automataType.
func (d *Dispatcher) Diagram(automataType string) (domain.Diagram, error) {
	if automataType == "" {
		return domain.Diagram{}, fmt.Errorf("%w: automataType is required", domain.ErrMissingField)
	}
	return d.catalog.Diagram(domain.AutomatonID(automataType))
}

// evaluate runs the evaluator, turning a panic into domain.ErrInternal.
func (d *Dispatcher) evaluate(ev domain.Evaluator, input string) (result domain.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrInternal, r)
		}
	}()
	return ev.Evaluate(input), nil
}

func (d *Dispatcher) reject(ctx context.Context, id domain.AutomatonID, reason error) {
	d.logger.DebugContext(ctx, "request rejected", "automaton", id, "error", reason)
	if d.hooks.OnReject != nil {
		d.hooks.OnReject(ctx, &domain.RejectEvent{
			EventBase: domain.EventBase{Timestamp: d.now(), Type: domain.EventReject},
			Automaton: id,
			Reason:    reason,
		})
	}
}
