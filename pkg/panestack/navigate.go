package panestack

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/internal"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
	"github.com/BrandonKowalski/panestack/pkg/panestack/transition"
)

// NavOptions tunes a single push.
type NavOptions struct {
	// RemoveLast destroys the current top once the new screen is shown.
	RemoveLast bool
	// Immediate skips the animation; the commit runs synchronously.
	Immediate bool
}

// Present pushes screen into the current group with the full-screen slide.
func (c *Container) Present(screen Screen, opts NavOptions) Outcome {
	return c.submit("present", func() Outcome {
		return c.present(screen, false, false, opts)
	})
}

// PresentGroup pushes screen as the first member of a new group.
func (c *Container) PresentGroup(screen Screen, opts NavOptions) Outcome {
	return c.submit("present-group", func() Outcome {
		return c.present(screen, true, false, opts)
	})
}

// Next pushes screen into the current group. In the split layout it opens
// in the secondary pane; otherwise it behaves like Present.
func (c *Container) Next(screen Screen, opts NavOptions) Outcome {
	return c.submit("next", func() Outcome {
		return c.next(screen, false, opts)
	})
}

// NextInnerGroup pushes screen tagged as an inner-group screen. When the
// current top is itself the inner-group screen of the current group it is
// replaced.
func (c *Container) NextInnerGroup(screen Screen, opts NavOptions) Outcome {
	return c.submit("next-inner-group", func() Outcome {
		if top := c.stack.Top(); top != nil && c.stack.Len() > 1 &&
			top.InnerGroupID == c.stack.CurrentGroup()+1 {
			opts.RemoveLast = true
		}
		return c.next(screen, true, opts)
	})
}

// Replace pushes screen over the top and destroys the old top.
func (c *Container) Replace(screen Screen, immediate bool) Outcome {
	return c.Next(screen, NavOptions{RemoveLast: true, Immediate: immediate})
}

// PresentAsSheet hands screen to the host's sheet presenter and records it
// in the stack outside of any group.
func (c *Container) PresentAsSheet(screen Screen) Outcome {
	return c.submit("present-sheet", func() Outcome {
		if c.host.Sheets == nil {
			return c.fail("present-sheet", NewHostError("present_sheet", ErrUnsupported))
		}
		if screen == nil || !screen.OnCreate() {
			return c.fail("present-sheet", ErrRefused)
		}
		e := c.stack.PushSheet(screen)
		if !c.host.Sheets.PresentSheet(screen) {
			c.stack.Remove(e)
			e.Destroy()
			return c.fail("present-sheet", ErrRefused)
		}
		e.Resume()
		c.lastErr = nil
		return OutcomeDone
	})
}

// AddToStack inserts screen without animation. A negative position appends
// it as the new top, which pauses the old top and shows the new one.
func (c *Container) AddToStack(screen Screen, newGroup bool, position int) Outcome {
	return c.submit("add-to-stack", func() Outcome {
		appended := position < 0 || position >= c.stack.Len()
		e := c.stack.Push(screen, router.PushOptions{NewGroup: newGroup, Position: position})
		if e == nil {
			return c.fail("add-to-stack", ErrRefused)
		}
		if appended {
			c.settle()
			c.resume(e, true)
		}
		c.lastErr = nil
		return OutcomeDone
	})
}

// present runs the full-screen push: the new entry is built in the back
// group, which then becomes the front and slides in.
func (c *Container) present(screen Screen, newGroup, innerGroup bool, opts NavOptions) Outcome {
	prev := c.stack.Top()
	if opts.RemoveLast && prev != nil && !c.stack.CanRemove(prev) {
		return c.fail("present", ErrRefused)
	}

	e := c.stack.Push(screen, router.PushOptions{
		NewGroup:   newGroup,
		InnerGroup: innerGroup,
		Position:   -1,
	})
	if e == nil {
		return c.fail("present", ErrRefused)
	}
	c.hideKeyboardFor(screen)

	next := c.set.Back()
	c.clearGroup(next)
	c.attach(e, next.Primary)
	e.SetIndicator(0)
	next.Visible = true
	c.set.SwapGroups()

	e.Screen.OnPreResume()
	if prev != nil {
		prev.Screen.OnPrePause()
	}

	ctx := transition.Context{Incoming: e, Outgoing: prev, RemoveOutgoing: opts.RemoveLast}
	return c.run(transition.NextPush(c.width()), ctx, c.commitPresent, opts.Immediate)
}

func (c *Container) commitPresent(ctx transition.Context) {
	old := c.set.Back()
	for _, e := range c.hostedIn(old) {
		if e == ctx.Outgoing && ctx.RemoveOutgoing {
			c.finish(e)
		} else {
			c.pause(e)
		}
	}
	if ctx.RemoveOutgoing && ctx.Outgoing != nil && c.stack.IndexOf(ctx.Outgoing) >= 0 {
		c.finish(ctx.Outgoing)
	}
	old.Reset()
	old.Visible = false

	c.resume(ctx.Incoming, true)
	c.announce(internal.MsgOpened, ctx.Incoming)
}

// next pushes into the current group using the split geometry when it is
// active.
func (c *Container) next(screen Screen, innerGroup bool, opts NavOptions) Outcome {
	top := c.stack.Top()
	if !c.splitCapable || top == nil || top.IsSheet() {
		return c.present(screen, false, innerGroup, opts)
	}

	front := c.set.Front()
	if opts.RemoveLast {
		role, ok := front.RoleOf(top.Host())
		if !ok || role == pane.RoleTransient {
			return c.present(screen, false, innerGroup, opts)
		}
		return c.replaceTop(screen, top, role, innerGroup, opts.Immediate)
	}

	e := c.stack.Push(screen, router.PushOptions{InnerGroup: innerGroup, Position: -1})
	if e == nil {
		return c.fail("next", ErrRefused)
	}
	c.hideKeyboardFor(screen)

	if !front.IsSplit() {
		front.EnsureSecondary()
		c.attach(e, front.Secondary)
		e.SetIndicator(1)
		e.Screen.OnPreResume()

		ctx := transition.Context{Incoming: e}
		return c.run(transition.FirstSplitOpen(), ctx, c.commitFirstSplit, opts.Immediate)
	}

	outgoing := c.entryIn(front.Primary)
	front.AttachTransient(0, 0)
	c.attach(e, front.Transient)
	e.SetIndicator(1)
	e.Screen.OnPreResume()
	if outgoing != nil {
		outgoing.Screen.OnPrePause()
	}

	ctx := transition.Context{Incoming: e, Outgoing: outgoing, Indicator: top}
	return c.run(transition.NextPushWithSecondary(c.width()), ctx, c.commitNextWithSecondary, opts.Immediate)
}

func (c *Container) commitFirstSplit(ctx transition.Context) {
	c.resume(ctx.Incoming, true)
	c.announce(internal.MsgOpened, ctx.Incoming)
}

func (c *Container) commitNextWithSecondary(ctx transition.Context) {
	front := c.set.Front()
	front.RotateForward()
	c.pause(ctx.Outgoing)
	front.Transient.Clear()
	front.DetachTransient()
	front.Primary.UpdateParams(constants.SplitPrimaryWeight, 0)
	front.Secondary.UpdateParams(constants.SplitSecondaryWeight, 0)

	c.resume(ctx.Incoming, true)
	c.announce(internal.MsgOpened, ctx.Incoming)
}

// replaceTop floats the new entry over the pane hosting the current top and
// destroys the old top when it lands.
func (c *Container) replaceTop(screen Screen, top *router.Entry, role pane.Role, innerGroup, immediate bool) Outcome {
	if !c.stack.CanRemove(top) {
		return c.fail("replace", ErrRefused)
	}
	e := c.stack.Push(screen, router.PushOptions{InnerGroup: innerGroup, Position: -1})
	if e == nil {
		return c.fail("replace", ErrRefused)
	}
	c.hideKeyboardFor(screen)

	front := c.set.Front()
	weight := front.Pane(role).Weight
	cur := transition.Snapshot(c.set)
	w := c.width()

	front.AttachTransient(weight, w)
	c.attach(e, front.Transient)
	if role == pane.RoleSecondary {
		e.SetIndicator(1)
	}
	e.Screen.OnPreResume()
	top.Screen.OnPrePause()

	ctx := transition.Context{Incoming: e, Outgoing: top, RemoveOutgoing: true}
	tr := transition.ReplaceTop(cur, w, weight)
	return c.run(tr, ctx, func(ctx transition.Context) {
		front := c.set.Front()
		front.SwapWithTransient(role)
		front.Pane(role).UpdateParams(weight, 0)
		c.finish(ctx.Outgoing)
		front.DetachTransient()
		c.resume(ctx.Incoming, true)
		c.announce(internal.MsgOpened, ctx.Incoming)
	}, immediate)
}
