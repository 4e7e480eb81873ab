package panestack

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/BrandonKowalski/panestack/pkg/panestack/internal"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
	"github.com/BrandonKowalski/panestack/pkg/panestack/transition"
)

// Container is the navigation controller: it owns the stack, the panes, the
// transition engine and the gesture controller, and is driven from a single
// control thread through its navigation methods, HandlePointer and Tick.
//
// The only methods safe to call from other goroutines are
// SetKeyboardVisible, SetStatusBarHeight and RequestBack.
type Container struct {
	cfg    Config
	host   Host
	logger *slog.Logger

	stack   *router.Stack
	router  *router.Router
	set     *pane.Set
	engine  *transition.Engine
	gesture *gesture.Controller
	signals *internal.Signals
	words   *internal.Announcer

	splitCapable bool
	slide        *slide
	lastErr      error
}

// New creates an empty container.
func New(cfg Config, host Host) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		cfg:          cfg,
		host:         host,
		logger:       internal.GetInternalLogger(),
		stack:        router.NewStack(),
		signals:      internal.NewSignals(),
		splitCapable: cfg.SplitCapable,
	}

	if host.Announcer != nil {
		words, err := internal.NewAnnouncer(cfg.Locale)
		if err != nil {
			return nil, NewHostError("load_locale", err)
		}
		c.words = words
	}

	c.set = pane.NewSet(pane.Metrics{
		Density:         cfg.Density(),
		ShadowRampDP:    cfg.ShadowRampDP,
		ShadowWidthDP:   cfg.ShadowWidthDP,
		ScrimMaxOpacity: cfg.ScrimMaxOpacity,
	})
	c.engine = transition.NewEngine(c.set, c.logger)
	c.engine.OnIdle = c.onTransitionIdle
	c.router = router.New(c.busy, c.logger)
	c.gesture = gesture.NewController(gesture.Config{
		Slop:           gesture.SlopPixels(cfg.SlideThresholdCM, cfg.DPI),
		FlingVelocity:  cfg.FlingVelocity,
		VelocityWindow: cfg.VelocityWindow,
	}, &slideTarget{c: c}, c.logger)

	return c, nil
}

func (c *Container) busy() bool {
	return c.engine.Busy() || c.gesture.Busy()
}

func (c *Container) onTransitionIdle(transition.Context) {
	c.gesture.Done()
	c.router.Flush()
}

// IsBusy reports whether a transition or gesture currently owns the panes.
func (c *Container) IsBusy() bool {
	return c.busy()
}

// LastError returns why the most recent failed operation failed.
func (c *Container) LastError() error {
	return c.lastErr
}

// Config returns the active configuration.
func (c *Container) Config() Config {
	return c.cfg
}

// SplitCapable reports whether the split layout is active.
func (c *Container) SplitCapable() bool {
	return c.splitCapable
}

// Len returns the number of screens in the stack, sheets included.
func (c *Container) Len() int {
	return c.stack.Len()
}

// Top returns the top screen, or nil.
func (c *Container) Top() Screen {
	if e := c.stack.Top(); e != nil {
		return e.Screen
	}
	return nil
}

// Screens returns the stack bottom first.
func (c *Container) Screens() []Screen {
	entries := c.stack.Entries()
	out := make([]Screen, len(entries))
	for i, e := range entries {
		out[i] = e.Screen
	}
	return out
}

// GroupOf returns the group id of screen.
func (c *Container) GroupOf(screen Screen) (int, bool) {
	e := c.stack.Find(screen)
	if e == nil {
		return 0, false
	}
	return e.GroupID, true
}

// CurrentGroup returns the group id same-group pushes join.
func (c *Container) CurrentGroup() int {
	return c.stack.CurrentGroup()
}

// Contains reports whether screen is in the stack.
func (c *Container) Contains(screen Screen) bool {
	return c.stack.Find(screen) != nil
}

// Panes exposes the pane set for hosts and inspection.
func (c *Container) Panes() *pane.Set {
	return c.set
}

// GestureState returns the gesture controller's state.
func (c *Container) GestureState() gesture.State {
	return c.gesture.State()
}

// HasPendingRequest reports whether a navigation request waits for the
// current transition.
func (c *Container) HasPendingRequest() bool {
	return c.router.HasPending()
}

// HandlePointer feeds one pointer event to the gesture controller. A nil
// event cancels any gesture in progress. It reports whether the event was
// consumed by navigation.
func (c *Container) HandlePointer(ev *PointerEvent) bool {
	return c.gesture.Handle(ev)
}

// Tick advances the in-flight transition and services back presses queued
// from other goroutines. It reports whether a transition is still running.
func (c *Container) Tick(elapsed time.Duration) bool {
	for n := c.signals.TakeBackRequests(); n > 0; n-- {
		c.BackPressed()
	}
	c.engine.Tick(elapsed)
	return c.engine.Busy()
}

// Measure sizes the panes for the available area.
func (c *Container) Measure(width, height int32) {
	c.set.Measure(width, height)
}

// Layout places panes and content and returns what to draw.
func (c *Container) Layout() pane.Layout {
	c.set.Measure(c.set.Width(), c.set.Height())
	return c.set.Layout(c.signals.StatusBarHeight())
}

// SetKeyboardVisible records the soft-keyboard state.
func (c *Container) SetKeyboardVisible(v bool) {
	c.signals.SetKeyboardVisible(v)
}

// SetStatusBarHeight records the top inset applied to content roots.
func (c *Container) SetStatusBarHeight(h int32) {
	c.signals.SetStatusBarHeight(h)
}

// RequestBack queues a back press to be handled on the next Tick.
func (c *Container) RequestBack() {
	c.signals.RequestBack()
}

func (c *Container) width() float64 {
	return float64(c.set.Width())
}

func (c *Container) hostContext() HostContext {
	return HostContext{Density: c.cfg.Density(), SplitCapable: c.splitCapable}
}

func (c *Container) submit(name string, req router.Request) Outcome {
	return c.router.Submit(name, req)
}

func (c *Container) fail(op string, err error) Outcome {
	c.lastErr = err
	c.logger.Info("navigation request failed", "op", op, "error", err)
	return OutcomeFailed
}

func (c *Container) run(tr transition.Trajectory, ctx transition.Context, commit transition.CommitFunc, immediate bool) Outcome {
	d := c.cfg.TransitionDuration
	if immediate {
		d = 0
	}
	return c.start(tr, d, ctx, commit)
}

func (c *Container) start(tr transition.Trajectory, d time.Duration, ctx transition.Context, commit transition.CommitFunc) Outcome {
	err := c.engine.Start(&transition.Transition{
		Trajectory: tr,
		Duration:   d,
		Context:    ctx,
		Commit:     commit,
	})
	if err != nil {
		return c.fail(tr.Kind.String(), err)
	}
	c.lastErr = nil
	return OutcomeDone
}

func (c *Container) dismissKeyboard() {
	if c.signals.DismissKeyboard() && c.host.Keyboard != nil {
		c.host.Keyboard.HideKeyboard()
	}
}

func (c *Container) announce(id string, e *router.Entry) {
	if c.host.Announcer == nil || c.words == nil {
		return
	}
	title := ""
	if e != nil {
		title = e.Title()
	}
	if title == "" && id != internal.MsgClosed {
		return
	}
	if msg := c.words.Message(id, title); msg != "" {
		c.host.Announcer.Announce(msg)
	}
}
