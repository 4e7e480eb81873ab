package transition

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
)

// ErrBusy is returned by Start while another transition is in flight.
var ErrBusy = errors.New("transition: another transition is in flight")

// State is the engine's slot state.
type State int

const (
	StateIdle State = iota
	StateAnimating
)

func (s State) String() string {
	if s == StateAnimating {
		return "animating"
	}
	return "idle"
}

// Context names the entities a transition acts on. It travels with the
// transition and is handed back to the commit function unchanged.
type Context struct {
	Kind Kind

	Incoming *router.Entry // becomes visible or takes the top
	Outgoing *router.Entry // leaves the visible panes
	Revealed *router.Entry // uncovered by a pop
	// Indicator follows the frame's indicator progress.
	Indicator *router.Entry

	// RemoveOutgoing destroys the outgoing entry on commit instead of
	// pausing and caching it.
	RemoveOutgoing bool
	// SlidingLast is set for split gestures that collapse to one pane.
	SlidingLast bool
	// Progress is where a gesture release started, in [0,1].
	Progress float64
}

// CommitFunc performs the stack and pane-role changes of a finished
// transition.
type CommitFunc func(ctx Context)

// Transition is one scheduled animation.
type Transition struct {
	Trajectory Trajectory
	Duration   time.Duration
	Context    Context
	Commit     CommitFunc

	elapsed   time.Duration
	committed bool
}

// Engine owns the single active-transition slot.
type Engine struct {
	set    *pane.Set
	logger *slog.Logger

	current *Transition
	// OnIdle runs after every commit, once the slot is free again.
	OnIdle func(ctx Context)
}

// NewEngine creates an idle engine driving set.
func NewEngine(set *pane.Set, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{set: set, logger: logger}
}

// State returns Idle or Animating.
func (e *Engine) State() State {
	if e.current != nil {
		return StateAnimating
	}
	return StateIdle
}

// Busy reports whether a transition is in flight.
func (e *Engine) Busy() bool {
	return e.current != nil
}

// Current returns the in-flight transition's kind.
func (e *Engine) Current() (Kind, bool) {
	if e.current == nil {
		return 0, false
	}
	return e.current.Trajectory.Kind, true
}

// Start applies the first frame and begins the transition. A non-positive
// duration commits immediately.
func (e *Engine) Start(tr *Transition) error {
	if e.current != nil {
		return ErrBusy
	}
	tr.elapsed = 0
	tr.committed = false
	tr.Context.Kind = tr.Trajectory.Kind
	e.current = tr

	e.logger.Debug("transition started",
		"kind", tr.Trajectory.Kind.String(),
		"duration", tr.Duration.String())

	e.apply(0)
	if tr.Duration <= 0 {
		e.finish()
	}
	return nil
}

// Tick advances the in-flight transition by elapsed and commits it when it
// reaches the end. It reports whether a transition was running.
func (e *Engine) Tick(elapsed time.Duration) bool {
	tr := e.current
	if tr == nil {
		return false
	}
	if elapsed > 0 {
		tr.elapsed += elapsed
	}
	if tr.elapsed >= tr.Duration {
		e.finish()
		return true
	}
	e.apply(float64(tr.elapsed) / float64(tr.Duration))
	return true
}

// Finish jumps the in-flight transition to its end and commits it.
func (e *Engine) Finish() {
	if e.current != nil {
		e.finish()
	}
}

// Progress returns the linear progress of the in-flight transition.
func (e *Engine) Progress() float64 {
	tr := e.current
	if tr == nil || tr.Duration <= 0 {
		return 0
	}
	return clamp01(float64(tr.elapsed) / float64(tr.Duration))
}

func (e *Engine) apply(t float64) {
	tr := e.current
	f := tr.Trajectory.Apply(e.set, t)
	tr.Context.Indicator.SetIndicator(f.Indicator)
}

func (e *Engine) finish() {
	tr := e.current
	e.apply(1)

	// The slot is released before the commit runs so that work queued on
	// completion sees an idle engine.
	e.current = nil
	e.set.Front().Animating = false
	e.set.Back().Animating = false

	if tr.committed {
		return
	}
	tr.committed = true
	e.logger.Debug("transition committed", "kind", tr.Trajectory.Kind.String())
	if tr.Commit != nil {
		tr.Commit(tr.Context)
	}
	if e.OnIdle != nil {
		e.OnIdle(tr.Context)
	}
}
