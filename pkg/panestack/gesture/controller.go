package gesture

import (
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
)

// State is the controller's position in the gesture state machine.
type State int

const (
	StateIdle          State = iota // no pointer of interest
	StateMaybeTracking              // pointer down, movement below the threshold
	StateTracking                   // live drag drives pane geometry
	StateResolving                  // release animation running
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMaybeTracking:
		return "maybe-tracking"
	case StateTracking:
		return "tracking"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Release describes how a gesture ended.
type Release struct {
	Commit       bool
	Displacement float64 // horizontal pixels, never negative
	Fraction     float64 // Displacement / travel, clamped to [0,1]
	VelocityX    float64
	VelocityY    float64
	// Fling is set when the release came straight from MaybeTracking.
	Fling bool
}

// Target is the navigation side of a gesture, implemented by the container.
type Target interface {
	// CanStartTracking is consulted on pointer-down and again before a
	// fling is synthesized on release.
	CanStartTracking(ev PointerEvent) bool
	// Animating reports whether a programmatic transition owns the panes.
	Animating() bool
	// CanBeginSlide asks the top screen whether a slide may start now.
	CanBeginSlide() bool
	// ClaimsHorizontalScroll reports whether content under the point owns
	// horizontal scrolling.
	ClaimsHorizontalScroll(x, y float64) bool
	// BeginSlide prepares live geometry. When notify is set the top screen
	// is told the slide has begun; flings skip that.
	BeginSlide(notify bool) bool
	// Travel is the displacement that maps to a fully committed drag.
	Travel() float64
	// Drag applies live geometry for a displacement.
	Drag(dx float64)
	// Resolve starts the commit or cancel animation. Returning false means
	// nothing was started and the controller goes idle.
	Resolve(r Release) bool
	// Abort reverts any live geometry synchronously without committing.
	Abort()
}

// Config holds the gesture thresholds.
type Config struct {
	Slop           float64 // pixels of horizontal travel before tracking starts
	FlingVelocity  float64 // pixels per second
	VelocityWindow time.Duration
}

// DefaultConfig returns the thresholds at the given density (dpi).
func DefaultConfig(dpi float64) Config {
	return Config{
		Slop:           SlopPixels(constants.DefaultSlideThresholdCM, dpi),
		FlingVelocity:  constants.DefaultFlingVelocity,
		VelocityWindow: constants.DefaultVelocityWindow,
	}
}

// SlopPixels converts a physical threshold in centimetres to pixels.
func SlopPixels(cm, dpi float64) float64 {
	if dpi <= 0 {
		dpi = constants.DefaultDPI
	}
	return cm * dpi / 2.54
}

// Controller is the pointer state machine: Idle, MaybeTracking, Tracking,
// Resolving. It runs on the control thread only.
type Controller struct {
	cfg    Config
	target Target
	logger *slog.Logger

	state    State
	pointer  int64
	startX   float64
	startY   float64
	lastDX   float64
	velocity *VelocityTracker
}

// NewController creates a controller driving target.
func NewController(cfg Config, target Target, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FlingVelocity <= 0 {
		cfg.FlingVelocity = constants.DefaultFlingVelocity
	}
	return &Controller{
		cfg:      cfg,
		target:   target,
		logger:   logger,
		velocity: NewVelocityTracker(cfg.VelocityWindow),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Busy reports whether the gesture owns the panes.
func (c *Controller) Busy() bool {
	return c.state == StateTracking || c.state == StateResolving
}

// Displacement returns the last horizontal displacement applied.
func (c *Controller) Displacement() float64 {
	return c.lastDX
}

// Handle feeds one event. A nil event is a null cancel and aborts whatever
// is in progress. It reports whether the event was consumed.
func (c *Controller) Handle(ev *PointerEvent) bool {
	if ev == nil || (ev.Action == ActionCancel && ev.Synthetic) {
		return c.abort()
	}

	switch c.state {
	case StateIdle:
		if ev.Action == ActionDown {
			c.down(*ev)
		}
		return false
	case StateMaybeTracking:
		return c.maybeTracking(*ev)
	case StateTracking:
		return c.tracking(*ev)
	case StateResolving:
		return true
	}
	return false
}

// Done is called when the release animation has finished.
func (c *Controller) Done() {
	if c.state == StateResolving {
		c.setState(StateIdle)
	}
}

func (c *Controller) down(ev PointerEvent) {
	if !c.target.CanStartTracking(ev) {
		return
	}
	c.pointer = ev.PointerID
	c.startX, c.startY = ev.X, ev.Y
	c.lastDX = 0
	c.velocity.Reset()
	c.velocity.Add(ev.Time, ev.X, ev.Y)
	c.setState(StateMaybeTracking)
}

func (c *Controller) maybeTracking(ev PointerEvent) bool {
	if ev.PointerID != c.pointer && ev.Action != ActionCancel {
		return false
	}
	if c.target.Animating() {
		c.logger.Debug("gesture abandoned; transition running", "action", ev.Action.String())
		c.setState(StateIdle)
		c.velocity.Reset()
		return false
	}

	switch ev.Action {
	case ActionMove:
		c.velocity.Add(ev.Time, ev.X, ev.Y)
		dx, dy := ev.X-c.startX, ev.Y-c.startY
		if dx < c.cfg.Slop || dx <= 3*math.Abs(dy) {
			return false
		}
		if !c.target.CanBeginSlide() || c.target.ClaimsHorizontalScroll(c.startX, c.startY) {
			c.setState(StateIdle)
			return false
		}
		if !c.target.BeginSlide(true) {
			c.setState(StateIdle)
			return false
		}
		c.setState(StateTracking)
		c.drag(dx)
		return true

	case ActionUp, ActionPointerUp, ActionCancel:
		c.velocity.Add(ev.Time, ev.X, ev.Y)
		vx, vy := c.releaseVelocity(ev)
		c.setState(StateIdle)
		if ev.Action == ActionCancel {
			return false
		}
		if vx < c.cfg.FlingVelocity || vx <= math.Abs(vy) {
			return false
		}
		if !c.target.CanStartTracking(ev) || !c.target.CanBeginSlide() ||
			c.target.ClaimsHorizontalScroll(c.startX, c.startY) {
			return false
		}
		if !c.target.BeginSlide(false) {
			return false
		}
		c.logger.Debug("fling without tracking", "vx", vx, "vy", vy)
		return c.resolve(Release{
			Commit:    true,
			VelocityX: vx,
			VelocityY: vy,
			Fling:     true,
		})
	}
	return false
}

func (c *Controller) tracking(ev PointerEvent) bool {
	if ev.PointerID != c.pointer && ev.Action != ActionCancel {
		return true
	}

	switch ev.Action {
	case ActionMove:
		c.velocity.Add(ev.Time, ev.X, ev.Y)
		c.drag(ev.X - c.startX)
	case ActionUp, ActionPointerUp, ActionCancel:
		c.velocity.Add(ev.Time, ev.X, ev.Y)
		dx := max(ev.X-c.startX, 0)
		vx, vy := c.releaseVelocity(ev)

		travel := c.target.Travel()
		fraction := 1.0
		if travel > 0 {
			fraction = min(dx/travel, 1)
		}
		back := fraction < constants.CommitFraction &&
			(vx < c.cfg.FlingVelocity || vx < math.Abs(vy))

		c.resolve(Release{
			Commit:       !back,
			Displacement: dx,
			Fraction:     fraction,
			VelocityX:    vx,
			VelocityY:    vy,
		})
	}
	return true
}

func (c *Controller) drag(dx float64) {
	dx = max(dx, 0)
	c.lastDX = dx
	c.target.Drag(dx)
}

func (c *Controller) resolve(r Release) bool {
	c.setState(StateResolving)
	if !c.target.Resolve(r) {
		c.setState(StateIdle)
		return false
	}
	return true
}

func (c *Controller) releaseVelocity(ev PointerEvent) (float64, float64) {
	if ev.HasVelocity {
		return ev.VelocityX, ev.VelocityY
	}
	return c.velocity.Velocity()
}

func (c *Controller) abort() bool {
	prev := c.state
	if prev == StateIdle {
		return false
	}
	c.setState(StateIdle)
	c.velocity.Reset()
	c.lastDX = 0
	if prev == StateTracking || prev == StateResolving {
		c.target.Abort()
	}
	return true
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.logger.Debug("gesture state", "from", c.state.String(), "to", s.String())
	c.state = s
}
