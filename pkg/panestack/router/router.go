package router

import (
	"log/slog"
)

// Outcome reports what happened to a navigation request.
type Outcome int

const (
	OutcomeFailed   Outcome = iota // refused or not applicable; nothing changed
	OutcomeDone                    // executed (an animation may still be running)
	OutcomeDeferred                // busy: queued, or dropped because the slot was taken
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFailed:
		return "failed"
	case OutcomeDone:
		return "done"
	case OutcomeDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Request is a deferred navigation call.
type Request func() Outcome

// BusyFunc reports whether a transition or gesture currently owns the panes.
type BusyFunc func() bool

// Router serializes navigation requests against the transition engine.
// While busy it holds at most one pending request; a second request arriving
// while the slot is occupied is dropped and reported as deferred, exactly like
// an accepted one.
type Router struct {
	busy    BusyFunc
	pending Request
	label   string
	logger  *slog.Logger
}

// New creates a Router that consults busy before executing requests.
func New(busy BusyFunc, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		busy:   busy,
		logger: logger,
	}
}

// IsBusy reports whether requests are currently being deferred.
func (r *Router) IsBusy() bool {
	return r.busy != nil && r.busy()
}

// Submit executes req immediately when idle. When busy it stores req as the
// pending continuation if the slot is free, and drops it otherwise.
func (r *Router) Submit(name string, req Request) Outcome {
	if req == nil {
		return OutcomeFailed
	}
	if !r.IsBusy() {
		return req()
	}

	if r.pending == nil {
		r.pending = req
		r.label = name
		r.logger.Debug("navigation request queued", "request", name)
	} else {
		r.logger.Debug("navigation request dropped", "request", name, "pending", r.label)
	}
	return OutcomeDeferred
}

// Flush runs the pending request, if any, after clearing the slot.
// It is called exactly once per transition completion.
func (r *Router) Flush() (Outcome, bool) {
	if r.pending == nil {
		return OutcomeFailed, false
	}
	req, name := r.pending, r.label
	r.pending = nil
	r.label = ""
	r.logger.Debug("flushing navigation request", "request", name)
	return req(), true
}

// HasPending reports whether a request waits for the current transition.
func (r *Router) HasPending() bool {
	return r.pending != nil
}

// PendingName returns the label of the queued request, or "".
func (r *Router) PendingName() string {
	return r.label
}
