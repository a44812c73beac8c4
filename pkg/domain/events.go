package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluate EventType = "evaluate"
	EventReject   EventType = "reject"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// EvaluationEvent describes a completed evaluation.
type EvaluationEvent struct {
	EventBase
	Automaton  AutomatonID   `json:"automaton"`
	Accepted   bool          `json:"accepted"`
	FinalState string        `json:"final_state"`
	Symbols    int           `json:"symbols"`
	Steps      int           `json:"steps"`
	Duration   time.Duration `json:"duration"`
}

// RejectEvent describes a request refused before evaluation.
type RejectEvent struct {
	EventBase
	Automaton AutomatonID `json:"automaton,omitempty"`
	Reason    error       `json:"-"`
}

// LifecycleHooks defines callbacks for dispatcher observability.
type LifecycleHooks struct {
	OnEvaluate func(context.Context, *EvaluationEvent)
	OnReject   func(context.Context, *RejectEvent)
}
