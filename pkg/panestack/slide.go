package panestack

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
	"github.com/BrandonKowalski/panestack/pkg/panestack/transition"
)

// slide is the live state of a back gesture.
type slide struct {
	split       bool
	slidingLast bool
	trajectory  transition.Trajectory
	travel      float64
	progress    float64

	top      *router.Entry
	prev     *router.Entry
	ancestor *router.Entry
}

// slideTarget adapts the container to the gesture controller.
type slideTarget struct {
	c *Container
}

var _ gesture.Target = (*slideTarget)(nil)

func (t *slideTarget) CanStartTracking(ev gesture.PointerEvent) bool {
	c := t.c
	if c.engine.Busy() || c.stack.Len() < 2 {
		return false
	}
	top, prev := c.stack.Top(), c.stack.FromTop(1)
	if top.IsSheet() || prev.IsSheet() || top.Host() == nil {
		return false
	}
	return top.Screen.IsSwipeBackEnabled(ev)
}

func (t *slideTarget) Animating() bool {
	return t.c.engine.Busy()
}

func (t *slideTarget) CanBeginSlide() bool {
	top := t.c.stack.Top()
	return top != nil && top.Screen.CanBeginSlide()
}

func (t *slideTarget) ClaimsHorizontalScroll(x, y float64) bool {
	c := t.c
	front := c.set.Front()
	for _, e := range c.hostedIn(front) {
		s, ok := e.Screen.(HorizontalScroller)
		if !ok {
			continue
		}
		r := e.Host().Rect()
		left := float64(r.X) + front.Shift
		if x >= left && x < left+float64(r.W) && s.ClaimsHorizontalScroll(x-left, y) {
			return true
		}
	}
	return false
}

func (t *slideTarget) BeginSlide(notify bool) bool {
	c := t.c
	top, prev := c.stack.Top(), c.stack.FromTop(1)
	if top == nil || prev == nil {
		return false
	}

	s := &slide{top: top, prev: prev}
	w := c.width()
	front := c.set.Front()

	if c.splitCapable && front.IsSplit() && top.Host() == front.Secondary && prev.Host() == front.Primary {
		s.split = true
		a := c.stack.FromTop(2)
		s.slidingLast = a == nil || a.IsSheet() || a.GroupID != prev.GroupID
		if !s.slidingLast {
			s.ancestor = a
			front.AttachTransient(constants.PeekWeight, -constants.PeekOffset*w)
			c.attach(a, front.Transient)
			a.SetIndicator(0)
			a.Screen.OnPreResume()
			a.Resume()
		}
		s.trajectory = transition.SplitDrag(w, s.slidingLast)
		s.travel = constants.DragTravel * w
	} else {
		s.ancestor = c.buildRevealed(prev)
		prev.Screen.OnPreResume()
		prev.Resume()
		if s.ancestor != nil {
			s.ancestor.Resume()
		}
		c.set.Underlay = true
		s.trajectory = transition.StackDrag(w)
		s.travel = w
	}

	c.slide = s
	c.dismissKeyboard()
	if notify {
		top.Screen.OnBeginSlide()
	}
	t.Drag(0)
	return true
}

func (t *slideTarget) Travel() float64 {
	if s := t.c.slide; s != nil {
		return s.travel
	}
	return t.c.width()
}

func (t *slideTarget) Drag(dx float64) {
	s := t.c.slide
	if s == nil || s.travel <= 0 {
		return
	}
	s.progress = min(max(dx/s.travel, 0), 1)
	f := s.trajectory.Apply(t.c.set, s.progress)
	if s.split && !s.slidingLast {
		s.prev.SetIndicator(f.Indicator)
	}
}

func (t *slideTarget) Resolve(r gesture.Release) bool {
	c := t.c
	s := c.slide
	if s == nil {
		return false
	}

	switch {
	case r.Commit:
		s.top.Screen.OnPrePause()
	case !s.split:
		s.prev.Screen.OnPrePause()
	}
	if !r.Commit && s.ancestor != nil {
		s.ancestor.Screen.OnPrePause()
	}
	return c.resolveSlide(s, r.Commit, false) == OutcomeDone
}

func (t *slideTarget) Abort() {
	c := t.c
	if c.engine.Busy() {
		c.engine.Finish()
		return
	}
	if s := c.slide; s != nil {
		c.resolveSlide(s, false, true)
	}
}

// resolveSlide animates from the live progress to the end (commit) or back
// to the start (cancel).
func (c *Container) resolveSlide(s *slide, commit, immediate bool) Outcome {
	kind, end, remaining := transition.KindSlideCancel, 0.0, s.progress
	if commit {
		kind, end, remaining = transition.KindSlideCommit, 1.0, 1-s.progress
	}

	d := transition.ReleaseDuration(c.cfg.TransitionDuration, c.cfg.MinReleaseDuration, remaining)
	if immediate {
		d = 0
	}

	ctx := transition.Context{
		Outgoing:    s.top,
		Revealed:    s.prev,
		Incoming:    s.ancestor,
		SlidingLast: s.slidingLast,
		Progress:    s.progress,
	}
	if s.split && !s.slidingLast {
		ctx.Indicator = s.prev
	}
	return c.start(s.trajectory.Segment(kind, s.progress, end), d, ctx, func(ctx transition.Context) {
		c.slide = nil
		switch {
		case ctx.Kind == transition.KindSlideCancel:
			c.cancelSlide(s)
		case s.split && s.slidingLast:
			c.commitPopLast(ctx)
		case s.split:
			c.commitPreviousPop(ctx)
		default:
			c.commitStackPop(ctx)
		}
	})
}

func (c *Container) cancelSlide(s *slide) {
	if s.split {
		front := c.set.Front()
		if s.ancestor != nil {
			c.pause(s.ancestor)
		}
		front.Transient.Clear()
		front.DetachTransient()
		front.Primary.UpdateParams(constants.SplitPrimaryWeight, 0)
		front.Secondary.UpdateParams(constants.SplitSecondaryWeight, 0)
		s.prev.SetIndicator(0)
		return
	}

	back := c.set.Back()
	for _, e := range c.hostedIn(back) {
		c.pause(e)
	}
	back.Reset()
	back.Visible = false
	front := c.set.Front()
	front.Shift, front.Alpha = 0, 1
	c.set.Underlay = false
}
