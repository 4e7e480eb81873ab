package panestack

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DPI = 0
	_, err := New(cfg, Host{})
	require.Error(t, err)
}

func TestPushThenPopRestoresStack(t *testing.T) {
	c := newContainer(t, false)
	a, b := newScreen("a"), newScreen("b")

	mustDone(t, c.Present(a, NavOptions{}))
	require.True(t, c.IsBusy())
	waitIdle(t, c)
	mustDone(t, c.Present(b, NavOptions{}))
	waitIdle(t, c)

	requireStack(t, c, a, b)
	requireHosted(t, c, b, pane.RolePrimary)
	_, ok := hostedBy(c, a)
	require.False(t, ok)
	require.Equal(t, 1, a.count("pause"))

	a.reset()
	mustDone(t, c.CloseLast(true, true))
	waitIdle(t, c)

	requireStack(t, c, a)
	requireHosted(t, c, a, pane.RolePrimary)
	require.Equal(t, 1, a.count("first"))
	require.Equal(t, 1, a.count("resume"))
	require.Equal(t, 1, b.count("destroy"))
	require.False(t, c.Panes().Back().Visible)
	requireIdleWidths(t, c)
}

func TestPresentLifecycleOrder(t *testing.T) {
	c := newContainer(t, false)
	a := newScreen("a")

	mustDone(t, c.Present(a, now()))

	require.Equal(t, []string{"create", "attached", "pre-resume", "visible", "resume", "first"}, a.events)
	require.Same(t, a, c.Top())
	group, ok := c.GroupOf(a)
	require.True(t, ok)
	require.Equal(t, c.CurrentGroup(), group)
}

func TestPresentGroupStartsNewGroup(t *testing.T) {
	c := newContainer(t, true)
	a, b := newScreen("a"), newScreen("b")

	mustDone(t, c.Present(a, now()))
	mustDone(t, c.PresentGroup(b, now()))

	ga, _ := c.GroupOf(a)
	gb, _ := c.GroupOf(b)
	require.Equal(t, ga+1, gb)
	requireHosted(t, c, b, pane.RolePrimary)
	requireIdleWidths(t, c)
}

func TestSplitNextAndPreviousPop(t *testing.T) {
	c := newContainer(t, true)
	a, b, d := newScreen("a"), newScreen("b"), newScreen("d")

	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Next(b, now()))
	requireHosted(t, c, a, pane.RolePrimary)
	requireHosted(t, c, b, pane.RoleSecondary)
	requireIdleWidths(t, c)
	require.Equal(t, int32(350), c.Panes().Front().Primary.MeasuredWidth())

	mustDone(t, c.Next(d, now()))
	requireStack(t, c, a, b, d)
	requireHosted(t, c, b, pane.RolePrimary)
	requireHosted(t, c, d, pane.RoleSecondary)
	_, ok := hostedBy(c, a)
	require.False(t, ok)
	require.Equal(t, 1, a.count("pause"))
	requireIdleWidths(t, c)

	b.reset()
	mustDone(t, c.CloseLast(false, true))
	requireStack(t, c, a, b)
	requireHosted(t, c, a, pane.RolePrimary)
	requireHosted(t, c, b, pane.RoleSecondary)
	require.Equal(t, 1, b.count("first"))
	require.Equal(t, 1, d.count("destroy"))
	require.False(t, c.Panes().Front().Transient.Attached())
	requireIdleWidths(t, c)

	mustDone(t, c.CloseLast(false, true))
	requireStack(t, c, a)
	requireHosted(t, c, a, pane.RolePrimary)
	requireIdleWidths(t, c)
	require.Equal(t, int32(testWidth), c.Panes().Front().Primary.MeasuredWidth())
}

func TestSplitCloseWithoutPrevious(t *testing.T) {
	c := newContainer(t, true)
	a, b, d := newScreen("a"), newScreen("b"), newScreen("d")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Next(b, now()))
	mustDone(t, c.Next(d, now()))

	mustDone(t, c.CloseLast(true, false))
	waitIdle(t, c)

	requireStack(t, c, a, b)
	requireHosted(t, c, b, pane.RolePrimary)
	_, ok := hostedBy(c, a)
	require.False(t, ok)
	requireIdleWidths(t, c)
	require.Equal(t, int32(testWidth), c.Panes().Front().Primary.MeasuredWidth())
}

func TestNextWithoutSplitPresents(t *testing.T) {
	c := newContainer(t, false)
	a, b := newScreen("a"), newScreen("b")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Next(b, now()))

	requireHosted(t, c, b, pane.RolePrimary)
	require.False(t, c.Panes().Front().IsSplit())
	requireIdleWidths(t, c)
}

func TestSecondRequestWhileBusyIsDropped(t *testing.T) {
	c := newContainer(t, false)
	a, b, x, y := newScreen("a"), newScreen("b"), newScreen("x"), newScreen("y")

	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Present(b, NavOptions{}))
	require.True(t, c.IsBusy())

	require.Equal(t, OutcomeDeferred, c.Present(x, NavOptions{}))
	require.Equal(t, OutcomeDeferred, c.Present(y, NavOptions{}))
	require.True(t, c.HasPendingRequest())
	require.Empty(t, x.events)

	waitIdle(t, c)

	requireStack(t, c, a, b, x)
	require.Empty(t, y.events)
	require.False(t, c.HasPendingRequest())
}

func TestCreationRefusalLeavesStackUntouched(t *testing.T) {
	c := newContainer(t, true)
	a := newScreen("a")
	mustDone(t, c.Present(a, now()))

	for _, push := range []func(Screen) Outcome{
		func(s Screen) Outcome { return c.Present(s, now()) },
		func(s Screen) Outcome { return c.PresentGroup(s, now()) },
		func(s Screen) Outcome { return c.Next(s, now()) },
		func(s Screen) Outcome { return c.Replace(s, true) },
	} {
		r := newScreen("refuses")
		r.refuseCreate = true
		group := c.CurrentGroup()

		require.Equal(t, OutcomeFailed, push(r))
		require.True(t, IsRefused(c.LastError()))
		requireStack(t, c, a)
		require.Equal(t, group, c.CurrentGroup())
		require.Equal(t, []string{"create"}, r.events)
		requireHosted(t, c, a, pane.RolePrimary)
	}
}

func TestRemovalGate(t *testing.T) {
	c := newContainer(t, false)
	a, b := newScreen("a"), newScreen("b")
	b.refuseRemove = true
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Present(b, now()))

	require.Equal(t, OutcomeFailed, c.CloseLast(true, true))
	require.True(t, IsRefused(c.LastError()))
	require.Equal(t, OutcomeFailed, c.Replace(newScreen("x"), true))
	require.Equal(t, OutcomeFailed, c.RemoveAll())
	requireStack(t, c, a, b)
	require.Zero(t, b.count("destroy"))

	b.refuseRemove = false
	mustDone(t, c.RemoveAll())
	require.Zero(t, c.Len())
	require.Equal(t, 1, a.count("destroy"))
	require.Equal(t, 1, b.count("destroy"))
	require.NoError(t, c.LastError())
}

func TestReplaceInSplit(t *testing.T) {
	c := newContainer(t, true)
	a, b, d := newScreen("a"), newScreen("b"), newScreen("d")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Next(b, now()))

	mustDone(t, c.Replace(d, false))
	require.True(t, c.IsBusy())
	waitIdle(t, c)

	requireStack(t, c, a, d)
	requireHosted(t, c, a, pane.RolePrimary)
	requireHosted(t, c, d, pane.RoleSecondary)
	require.Equal(t, 1, b.count("destroy"))
	require.False(t, c.Panes().Front().Transient.Attached())
	requireIdleWidths(t, c)
}

func TestReplaceFullScreen(t *testing.T) {
	c := newContainer(t, false)
	a, b, d := newScreen("a"), newScreen("b"), newScreen("d")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Present(b, now()))

	mustDone(t, c.Replace(d, true))

	requireStack(t, c, a, d)
	requireHosted(t, c, d, pane.RolePrimary)
	require.Equal(t, 1, b.count("destroy"))
}

func TestNextInnerGroupReplacesInnerScreen(t *testing.T) {
	c := newContainer(t, true)
	a, b, d := newScreen("a"), newScreen("b"), newScreen("d")
	mustDone(t, c.Present(a, now()))

	mustDone(t, c.NextInnerGroup(b, now()))
	requireStack(t, c, a, b)

	mustDone(t, c.NextInnerGroup(d, now()))
	requireStack(t, c, a, d)
	require.Equal(t, 1, b.count("destroy"))
	requireHosted(t, c, d, pane.RoleSecondary)
}

func TestAddToStack(t *testing.T) {
	c := newContainer(t, false)
	a, x, y := newScreen("a"), newScreen("x"), newScreen("y")
	mustDone(t, c.Present(a, now()))

	mustDone(t, c.AddToStack(x, false, -1))
	requireStack(t, c, a, x)
	requireHosted(t, c, x, pane.RolePrimary)
	require.Equal(t, 1, x.count("first"))
	require.Equal(t, 1, a.count("pause"))

	mustDone(t, c.AddToStack(y, false, 0))
	requireStack(t, c, y, a, x)
	require.Zero(t, y.count("resume"))
	requireHosted(t, c, x, pane.RolePrimary)
}

func TestPopUntilAndPopScreens(t *testing.T) {
	c := newContainer(t, false)
	a, b, d, e := newScreen("a"), newScreen("b"), newScreen("d"), newScreen("e")
	for _, s := range []*testScreen{a, b, d, e} {
		mustDone(t, c.Present(s, now()))
	}

	mustDone(t, c.PopUntil(e, 0, 1))
	requireStack(t, c, a, e)
	require.Equal(t, 1, b.count("destroy"))
	require.Equal(t, 1, d.count("destroy"))
	requireHosted(t, c, e, pane.RolePrimary)

	require.Equal(t, OutcomeFailed, c.PopUntil(b, 0, 0))
	require.ErrorIs(t, c.LastError(), ErrNotInStack)

	mustDone(t, c.PopScreens(1, false))
	requireStack(t, c, e)

	mustDone(t, c.PopScreens(0, true))
	require.Zero(t, c.Len())
	require.Equal(t, 1, e.count("destroy"))
}

func TestPopScreensRefusalRemovesNothing(t *testing.T) {
	c := newContainer(t, false)
	a, b, d, e := newScreen("a"), newScreen("b"), newScreen("d"), newScreen("e")
	for _, s := range []*testScreen{a, b, d, e} {
		mustDone(t, c.Present(s, now()))
	}

	b.refuseRemove = true
	require.Equal(t, OutcomeFailed, c.PopScreens(2, false))
	require.ErrorIs(t, c.LastError(), ErrRefused)
	requireStack(t, c, a, b, d, e)
	require.Zero(t, d.count("destroy"))

	b.refuseRemove = false
	e.refuseRemove = true
	require.Equal(t, OutcomeFailed, c.PopScreens(1, true))
	require.ErrorIs(t, c.LastError(), ErrRefused)
	requireStack(t, c, a, b, d, e)
	require.Zero(t, d.count("destroy"))
	requireHosted(t, c, e, pane.RolePrimary)
}

func TestRemoveVisibleScreenResettles(t *testing.T) {
	c := newContainer(t, true)
	a, b := newScreen("a"), newScreen("b")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Next(b, now()))

	mustDone(t, c.RemoveScreen(b))

	requireStack(t, c, a)
	requireHosted(t, c, a, pane.RolePrimary)
	require.Equal(t, 1, b.count("destroy"))
	requireIdleWidths(t, c)
	require.Equal(t, int32(testWidth), c.Panes().Front().Primary.MeasuredWidth())
}

func TestCloseScreenBelowTop(t *testing.T) {
	c := newContainer(t, false)
	a, b := newScreen("a"), newScreen("b")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Present(b, now()))

	mustDone(t, c.CloseScreen(a, true))
	requireStack(t, c, b)
	require.False(t, c.IsBusy())

	mustDone(t, c.CloseScreen(b, false))
	require.Zero(t, c.Len())
	require.Equal(t, OutcomeFailed, c.CloseScreen(b, false))
	require.Equal(t, OutcomeFailed, c.CloseLast(true, true))
	require.ErrorIs(t, c.LastError(), ErrEmptyStack)
}

func TestSheets(t *testing.T) {
	t.Run("unsupported without presenter", func(t *testing.T) {
		c := newContainer(t, false)
		require.Equal(t, OutcomeFailed, c.PresentAsSheet(newScreen("s")))
		require.True(t, IsHostError(c.LastError()))
		require.True(t, errors.Is(c.LastError(), ErrUnsupported))
	})

	t.Run("present and close", func(t *testing.T) {
		fh := &fakeHost{}
		c := newContainerWithHost(t, false, fh.all())
		a, s := newScreen("a"), newScreen("s")
		mustDone(t, c.Present(a, now()))

		mustDone(t, c.PresentAsSheet(s))
		requireStack(t, c, a, s)
		require.Equal(t, []Screen{s}, fh.sheets)
		require.Equal(t, 1, s.count("resume"))
		requireHosted(t, c, a, pane.RolePrimary)

		mustDone(t, c.CloseLast(true, true))
		requireStack(t, c, a)
		require.Equal(t, []Screen{s}, fh.dismissed)
		require.Equal(t, 1, s.count("destroy"))
	})

	t.Run("presenter refuses", func(t *testing.T) {
		fh := &fakeHost{refuse: true}
		c := newContainerWithHost(t, false, fh.all())
		s := newScreen("s")

		require.Equal(t, OutcomeFailed, c.PresentAsSheet(s))
		require.Zero(t, c.Len())
		require.Equal(t, 1, s.count("destroy"))
	})
}

func TestAnnouncements(t *testing.T) {
	fh := &fakeHost{}
	c := newContainerWithHost(t, false, fh.all())
	a, b := newScreen("a"), newScreen("b")

	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Present(b, now()))
	mustDone(t, c.CloseLast(false, true))
	mustDone(t, c.CloseLast(false, true))

	require.Equal(t, []string{"Opened a", "Opened b", "Back to a", "Closed"}, fh.spoken)
}

func TestKeyboardDismissedOnce(t *testing.T) {
	fh := &fakeHost{}
	c := newContainerWithHost(t, false, fh.all())
	a, b := newScreen("a"), newScreen("b")
	a.hideKeyboard, b.hideKeyboard = true, true

	c.SetKeyboardVisible(true)
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Present(b, now()))

	require.Equal(t, 1, fh.keyboard)
}

func TestLayoutAppliesStatusBarInset(t *testing.T) {
	c := newContainer(t, false)
	a := newScreen("a")
	mustDone(t, c.Present(a, now()))

	c.SetStatusBarHeight(24)
	c.Layout()

	require.Equal(t, pane.Rect{X: 0, Y: 24, W: testWidth, H: testHeight - 24}, a.root.Frame)
}

func TestEntriesExposeLifecycle(t *testing.T) {
	c := newContainer(t, false)
	a, b := newScreen("a"), newScreen("b")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.Present(b, now()))

	ea := c.stack.Find(a)
	require.Equal(t, router.LifecyclePaused, ea.State())
	require.Equal(t, router.LifecycleResumed, c.stack.Top().State())
	require.True(t, c.Contains(b))
	require.False(t, c.Contains(newScreen("x")))
}
