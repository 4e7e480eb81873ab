package panestack

import (
	"testing"

	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/stretchr/testify/require"
)

func TestBackPressed(t *testing.T) {
	c, a, b := stacked(t)

	b.handlesBack = true
	require.True(t, c.BackPressed())
	requireStack(t, c, a, b)

	b.handlesBack = false
	require.True(t, c.BackPressed())
	waitIdle(t, c)
	requireStack(t, c, a)

	require.False(t, c.BackPressed())
	require.Zero(t, c.Len())
	require.False(t, c.BackPressed())
}

func TestRequestBackHandledOnTick(t *testing.T) {
	c, a, _ := stacked(t)

	c.RequestBack()
	require.Equal(t, 2, c.Len())

	c.Tick(frame)
	waitIdle(t, c)
	requireStack(t, c, a)
}

func TestSend(t *testing.T) {
	c, a, b := stacked(t)

	require.True(t, c.Send(true, 1))
	require.True(t, c.Send(false, "below"))
	require.True(t, c.SendFrom(a, 1, "up"))
	require.False(t, c.SendFrom(a, -1, "nothing"))
	require.False(t, c.SendFrom(newScreen("x"), 0))

	require.Equal(t, []any{1, "up"}, b.received)
	require.Equal(t, []any{"below"}, a.received)
}

func TestHostResumePauseTouchesTopOnly(t *testing.T) {
	c, a, b := stacked(t)
	a.reset()
	b.reset()

	c.Pause()
	c.Resume()

	require.Equal(t, []string{"pause", "resume"}, b.events)
	require.Empty(t, a.events)
}

func TestPermissions(t *testing.T) {
	c := newContainer(t, false)
	require.False(t, c.RequestPermissions(3, []string{"camera"}))
	require.True(t, IsHostError(c.LastError()))

	fh := &fakeHost{}
	c = newContainerWithHost(t, false, fh.all())
	require.True(t, c.RequestPermissions(7, []string{"camera"}))
	require.Equal(t, []int{7}, fh.perms)
}

func TestOrientationReflow(t *testing.T) {
	c, a, b := stacked(t)

	mustDone(t, c.OrientationChanged(true))
	require.Equal(t, 1, a.count("orientation"))
	require.Equal(t, 1, b.count("orientation"))
	require.True(t, c.IsBusy())
	waitIdle(t, c)

	require.True(t, c.SplitCapable())
	requireHosted(t, c, a, pane.RolePrimary)
	requireHosted(t, c, b, pane.RoleSecondary)
	require.False(t, c.Panes().Front().Transient.Attached())
	requireIdleWidths(t, c)

	mustDone(t, c.OrientationChanged(false))
	waitIdle(t, c)

	require.False(t, c.SplitCapable())
	requireHosted(t, c, b, pane.RolePrimary)
	_, ok := hostedBy(c, a)
	require.False(t, ok)
	requireIdleWidths(t, c)
	require.Equal(t, int32(testWidth), c.Panes().Front().Primary.MeasuredWidth())

	mustDone(t, c.OrientationChanged(false))
	require.False(t, c.IsBusy())
}

func TestOrientationAcrossGroupsOnlyRecords(t *testing.T) {
	c := newContainer(t, false)
	a, b := newScreen("a"), newScreen("b")
	mustDone(t, c.Present(a, now()))
	mustDone(t, c.PresentGroup(b, now()))

	mustDone(t, c.OrientationChanged(true))

	require.True(t, c.SplitCapable())
	require.False(t, c.IsBusy())
	requireHosted(t, c, b, pane.RolePrimary)
}

func TestOrientationDeferredWhileBusy(t *testing.T) {
	c, a, b := stacked(t)
	mustDone(t, c.CloseLast(true, true))

	require.Equal(t, OutcomeDeferred, c.OrientationChanged(true))
	require.Equal(t, 1, b.count("orientation"))
	waitIdle(t, c)

	requireStack(t, c, a)
	require.True(t, c.SplitCapable())
}
