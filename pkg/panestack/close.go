package panestack

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/internal"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
	"github.com/BrandonKowalski/panestack/pkg/panestack/transition"
)

// CloseLast pops the top screen. With openPrevious the split layout brings
// the group's earlier screen back into the primary pane; without it the
// remaining screen widens to full width.
func (c *Container) CloseLast(animated, openPrevious bool) Outcome {
	return c.submit("close-last", func() Outcome {
		return c.closeLast(animated, openPrevious)
	})
}

// CloseScreen closes screen: the top is popped with the usual transition,
// any other entry is removed without animation.
func (c *Container) CloseScreen(screen Screen, animated bool) Outcome {
	return c.submit("close-screen", func() Outcome {
		e := c.stack.Find(screen)
		if e == nil {
			return c.fail("close-screen", ErrNotInStack)
		}
		if e == c.stack.Top() {
			return c.closeLast(animated, true)
		}
		return c.removeEntry(e)
	})
}

// PopUntil removes the entries from index start up to, but not including,
// the entry offset positions above screen. Nothing is removed when any of
// them refuses.
func (c *Container) PopUntil(screen Screen, offset, start int) Outcome {
	return c.submit("pop-until", func() Outcome {
		e := c.stack.Find(screen)
		if e == nil {
			return c.fail("pop-until", ErrNotInStack)
		}
		removed := c.stack.PopUntil(e, offset, start)
		if len(removed) == 0 {
			return c.fail("pop-until", ErrRefused)
		}
		c.discardAll(removed)
		c.lastErr = nil
		return OutcomeDone
	})
}

// PopScreens removes up to count entries beneath the top, nearest first,
// and then optionally closes the top as well. A refusal from any of those
// entries fails the whole call before anything is removed.
func (c *Container) PopScreens(count int, closeLast bool) Outcome {
	return c.submit("pop-screens", func() Outcome {
		if closeLast {
			top := c.stack.Top()
			if top == nil {
				return c.fail("pop-screens", ErrEmptyStack)
			}
			if !c.stack.CanRemove(top) {
				return c.fail("pop-screens", ErrRefused)
			}
		}
		removed, ok := c.stack.RemoveBelowTop(count)
		if !ok {
			return c.fail("pop-screens", ErrRefused)
		}
		c.discardAll(removed)
		if closeLast {
			return c.closeLast(true, true)
		}
		c.lastErr = nil
		return OutcomeDone
	})
}

// RemoveScreen destroys screen without animation, wherever it sits.
func (c *Container) RemoveScreen(screen Screen) Outcome {
	return c.submit("remove-screen", func() Outcome {
		e := c.stack.Find(screen)
		if e == nil {
			return c.fail("remove-screen", ErrNotInStack)
		}
		return c.removeEntry(e)
	})
}

// RemoveAll destroys every screen, top first. If any screen refuses,
// nothing is removed.
func (c *Container) RemoveAll() Outcome {
	return c.submit("remove-all", func() Outcome {
		entries := c.stack.Entries()
		for _, e := range entries {
			if !c.stack.CanRemove(e) {
				return c.fail("remove-all", ErrRefused)
			}
		}
		for _, e := range c.stack.Clear() {
			c.discard(e)
		}
		c.settle()
		c.lastErr = nil
		return OutcomeDone
	})
}

func (c *Container) removeEntry(e *router.Entry) Outcome {
	if !c.stack.CanRemove(e) {
		return c.fail("remove-screen", ErrRefused)
	}
	visible := e.Host() != nil
	c.stack.Remove(e)
	c.discard(e)
	c.stack.SyncGroup()
	if visible {
		c.settle()
	}
	if top := c.stack.Top(); top != nil && !top.IsSheet() {
		c.resume(top, true)
	}
	c.lastErr = nil
	return OutcomeDone
}

func (c *Container) discardAll(removed []*router.Entry) {
	visible := false
	for _, e := range removed {
		if e.Host() != nil {
			visible = true
		}
		c.discard(e)
	}
	if visible {
		c.settle()
	}
}

func (c *Container) closeLast(animated, openPrevious bool) Outcome {
	top := c.stack.Top()
	if top == nil {
		return c.fail("close-last", ErrEmptyStack)
	}
	if !c.stack.CanRemove(top) {
		return c.fail("close-last", ErrRefused)
	}
	c.lastErr = nil

	if top.IsSheet() {
		c.stack.Remove(top)
		c.discard(top)
		return OutcomeDone
	}

	if c.stack.Len() == 1 {
		top.Screen.OnPrePause()
		c.finish(top)
		c.stack.Clear()
		c.settle()
		c.announce(internal.MsgClosed, top)
		return OutcomeDone
	}

	prev := c.stack.FromTop(1)
	if prev.IsSheet() {
		return c.removeEntry(top)
	}

	immediate := !animated
	front := c.set.Front()
	if c.splitCapable && prev.GroupID == c.stack.CurrentGroup() && front.IsSplit() &&
		top.Host() == front.Secondary && prev.Host() == front.Primary {
		ancestor := c.stack.FromTop(2)
		if openPrevious && ancestor != nil && !ancestor.IsSheet() && ancestor.GroupID == prev.GroupID {
			return c.previousPop(top, prev, ancestor, immediate)
		}
		return c.previousPopLast(top, prev, immediate)
	}
	return c.stackPop(top, prev, immediate)
}

// stackPop slides the front group away over a back group rebuilt around
// prev (and its split partner).
func (c *Container) stackPop(top, prev *router.Entry, immediate bool) Outcome {
	ancestor := c.buildRevealed(prev)
	prev.Screen.OnPreResume()
	top.Screen.OnPrePause()

	ctx := transition.Context{Incoming: ancestor, Outgoing: top, Revealed: prev}
	return c.run(transition.StackPop(c.width()), ctx, c.commitStackPop, immediate)
}

// buildRevealed prepares the back group to show prev, with its same-group
// predecessor in the primary pane when the split layout is active. It
// returns that predecessor, or nil.
func (c *Container) buildRevealed(prev *router.Entry) *router.Entry {
	back := c.set.Back()
	c.clearGroup(back)

	var ancestor *router.Entry
	if c.splitCapable {
		if a := c.stack.FromTop(2); a != nil && !a.IsSheet() && a.GroupID == prev.GroupID {
			ancestor = a
		}
	}

	if ancestor != nil {
		back.EnsureSecondary()
		back.Primary.UpdateParams(constants.SplitPrimaryWeight, 0)
		back.Secondary.UpdateParams(constants.SplitSecondaryWeight, 0)
		c.attach(ancestor, back.Primary)
		c.attach(prev, back.Secondary)
		ancestor.SetIndicator(0)
		prev.SetIndicator(1)
		ancestor.Screen.OnPreResume()
	} else {
		c.attach(prev, back.Primary)
		prev.SetIndicator(0)
	}
	back.Visible = true
	return ancestor
}

func (c *Container) commitStackPop(ctx transition.Context) {
	old := c.set.Front()
	for _, e := range c.hostedIn(old) {
		if e != ctx.Outgoing {
			c.pause(e)
		}
	}
	c.finish(ctx.Outgoing)

	c.set.SwapGroups()
	old.Reset()
	old.Visible = false
	c.set.Underlay = false

	c.stack.SyncGroup()
	c.resume(ctx.Revealed, true)
	c.resume(ctx.Incoming, false)
	c.announce(internal.MsgBackTo, ctx.Revealed)
}

// previousPopLast widens the primary over the closing secondary.
func (c *Container) previousPopLast(top, prev *router.Entry, immediate bool) Outcome {
	top.Screen.OnPrePause()
	ctx := transition.Context{Outgoing: top, Revealed: prev}
	return c.run(transition.PreviousPopLast(), ctx, c.commitPopLast, immediate)
}

func (c *Container) commitPopLast(ctx transition.Context) {
	front := c.set.Front()
	c.finish(ctx.Outgoing)
	front.Primary.UpdateParams(constants.FullWeight, 0)
	front.Secondary.UpdateParams(0, 0)
	ctx.Revealed.SetIndicator(0)
	c.resume(ctx.Revealed, true)
	c.announce(internal.MsgBackTo, ctx.Revealed)
}

// previousPop brings the group's third-from-top screen back through the
// transient pane while the secondary leaves.
func (c *Container) previousPop(top, prev, ancestor *router.Entry, immediate bool) Outcome {
	front := c.set.Front()
	front.AttachTransient(constants.PeekWeight, -constants.PeekOffset*c.width())
	c.attach(ancestor, front.Transient)
	ancestor.SetIndicator(0)

	ancestor.Screen.OnPreResume()
	prev.Screen.OnPreResume()
	top.Screen.OnPrePause()

	ctx := transition.Context{Incoming: ancestor, Outgoing: top, Revealed: prev, Indicator: prev}
	return c.run(transition.PreviousPop(c.width()), ctx, c.commitPreviousPop, immediate)
}

func (c *Container) commitPreviousPop(ctx transition.Context) {
	front := c.set.Front()
	front.RotateBackward()
	c.finish(ctx.Outgoing)
	front.Transient.Clear()
	front.DetachTransient()
	front.Primary.UpdateParams(constants.SplitPrimaryWeight, 0)
	front.Secondary.UpdateParams(constants.SplitSecondaryWeight, 0)

	ctx.Revealed.SetIndicator(1)
	c.resume(ctx.Revealed, true)
	c.resume(ctx.Incoming, false)
	c.announce(internal.MsgBackTo, ctx.Revealed)
}
