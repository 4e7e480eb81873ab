package panestack

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/internal"
	"github.com/BrandonKowalski/panestack/pkg/panestack/transition"
)

// BackPressed offers the press to the top screen and otherwise closes it.
// It returns false when the stack is empty afterwards, which tells the host
// to leave.
func (c *Container) BackPressed() bool {
	top := c.stack.Top()
	if top == nil {
		return false
	}
	if top.Screen.OnBackPressed() {
		return true
	}
	c.CloseLast(true, true)
	return !c.stack.IsEmpty()
}

// Send delivers data to the top screen, or to the one beneath it.
func (c *Container) Send(toTop bool, data ...any) bool {
	depth := 1
	if toTop {
		depth = 0
	}
	e := c.stack.FromTop(depth)
	if e == nil {
		return false
	}
	e.Screen.OnReceive(data...)
	return true
}

// SendFrom delivers data to the screen step positions above (positive) or
// below (negative) from.
func (c *Container) SendFrom(from Screen, step int, data ...any) bool {
	e := c.stack.Find(from)
	if e == nil {
		return false
	}
	target := c.stack.At(c.stack.IndexOf(e) + step)
	if target == nil {
		return false
	}
	target.Screen.OnReceive(data...)
	return true
}

// Resume forwards a host resume to the top screen.
func (c *Container) Resume() {
	if top := c.stack.Top(); top != nil {
		top.Resume()
	}
}

// Pause forwards a host pause to the top screen.
func (c *Container) Pause() {
	if top := c.stack.Top(); top != nil {
		top.Pause()
	}
}

// ActivityResult delivers a platform result to every screen.
func (c *Container) ActivityResult(requestCode, resultCode int, data any) {
	for _, e := range c.stack.Entries() {
		e.Screen.OnActivityResult(requestCode, resultCode, data)
	}
}

// RequestPermissions asks the host for permissions on behalf of a screen.
func (c *Container) RequestPermissions(requestCode int, permissions []string) bool {
	if c.host.Permissions == nil {
		c.lastErr = NewHostError("request_permissions", ErrUnsupported)
		return false
	}
	c.host.Permissions.RequestPermissions(requestCode, permissions)
	return true
}

// PermissionsResult delivers a permission decision to every screen.
func (c *Container) PermissionsResult(requestCode int, permissions []string, grants []int) {
	for _, e := range c.stack.Entries() {
		e.Screen.OnRequestPermissionsResult(requestCode, permissions, grants)
	}
}

// OrientationChanged notifies every screen and reflows the current group
// between the split and full-screen layouts.
func (c *Container) OrientationChanged(splitCapable bool) Outcome {
	for _, e := range c.stack.Entries() {
		e.Screen.OnOrientationChanged()
	}
	return c.submit("orientation", func() Outcome {
		return c.reflow(splitCapable)
	})
}

func (c *Container) reflow(splitCapable bool) Outcome {
	changed := c.splitCapable != splitCapable
	c.splitCapable = splitCapable
	c.lastErr = nil

	top, prev := c.stack.Top(), c.stack.FromTop(1)
	if !changed || top == nil || prev == nil || top.IsSheet() || prev.IsSheet() ||
		prev.GroupID != top.GroupID {
		return OutcomeDone
	}

	front := c.set.Front()
	w := c.width()

	if splitCapable {
		if front.IsSplit() || top.Host() != front.Primary {
			c.settle()
			return OutcomeDone
		}
		front.AttachTransient(constants.PeekWeight, -constants.PeekOffset*w)
		c.attach(prev, front.Transient)
		prev.SetIndicator(0)
		prev.Screen.OnPreResume()

		ctx := transition.Context{Incoming: prev, Indicator: top}
		return c.run(transition.OpenSecondary(w), ctx, func(ctx transition.Context) {
			front := c.set.Front()
			front.RotateBackward()
			front.Transient.Clear()
			front.DetachTransient()
			front.Primary.UpdateParams(constants.SplitPrimaryWeight, 0)
			front.Secondary.UpdateParams(constants.SplitSecondaryWeight, 0)
			c.resume(ctx.Incoming, false)
			c.announce(internal.MsgSplitOpened, ctx.Incoming)
		}, false)
	}

	if !front.IsSplit() || top.Host() != front.Secondary {
		c.settle()
		return OutcomeDone
	}
	prev.Screen.OnPrePause()
	top.SetIndicator(0)

	ctx := transition.Context{Outgoing: prev}
	return c.run(transition.CloseSecondary(w), ctx, func(ctx transition.Context) {
		front := c.set.Front()
		front.SwapPrimarySecondary()
		c.pause(ctx.Outgoing)
		front.Primary.UpdateParams(constants.FullWeight, 0)
		front.Secondary.UpdateParams(0, 0)
	}, false)
}
