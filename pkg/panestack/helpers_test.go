package panestack

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1000
	testHeight = 600
	frame      = 16 * time.Millisecond
)

// testScreen records the callbacks it receives.
type testScreen struct {
	BaseScreen
	name string

	refuseCreate bool
	refuseRemove bool
	handlesBack  bool
	noSwipe      bool
	hideKeyboard bool

	root     *pane.Surface
	events   []string
	received []any
}

func newScreen(name string) *testScreen {
	return &testScreen{name: name}
}

func (s *testScreen) record(ev string) { s.events = append(s.events, ev) }

func (s *testScreen) Title() string            { return s.name }
func (s *testScreen) OnCreate() bool           { s.record("create"); return !s.refuseCreate }
func (s *testScreen) AllowRemoval() bool       { return !s.refuseRemove }
func (s *testScreen) HideKeyboardOnShow() bool { return s.hideKeyboard }
func (s *testScreen) OnViewAttached()          { s.record("attached") }
func (s *testScreen) OnPreResume()             { s.record("pre-resume") }
func (s *testScreen) OnResume()                { s.record("resume") }
func (s *testScreen) OnPrePause()              { s.record("pre-pause") }
func (s *testScreen) OnPause()                 { s.record("pause") }
func (s *testScreen) OnBecomeFullyVisible()    { s.record("visible") }
func (s *testScreen) OnGetFirstInStack()       { s.record("first") }
func (s *testScreen) OnRemoveFromParent()      { s.record("removed") }
func (s *testScreen) OnDestroy()               { s.record("destroy") }
func (s *testScreen) OnBeginSlide()            { s.record("begin-slide") }
func (s *testScreen) OnOrientationChanged()    { s.record("orientation") }
func (s *testScreen) OnBackPressed() bool      { return s.handlesBack }
func (s *testScreen) OnReceive(data ...any)    { s.received = append(s.received, data...) }

func (s *testScreen) IsSwipeBackEnabled(gesture.PointerEvent) bool { return !s.noSwipe }

func (s *testScreen) CreateVisualRoot(HostContext) VisualRoot {
	s.root = &pane.Surface{}
	return s.root
}

func (s *testScreen) count(ev string) int {
	n := 0
	for _, e := range s.events {
		if e == ev {
			n++
		}
	}
	return n
}

func (s *testScreen) reset() { s.events = nil }

// scrollScreen claims horizontal scrolling everywhere.
type scrollScreen struct {
	testScreen
}

func (s *scrollScreen) ClaimsHorizontalScroll(_, _ float64) bool { return true }

type fakeHost struct {
	sheets    []Screen
	dismissed []Screen
	refuse    bool
	keyboard  int
	spoken    []string
	perms     []int
}

func (h *fakeHost) PresentSheet(s Screen) bool { h.sheets = append(h.sheets, s); return !h.refuse }
func (h *fakeHost) DismissSheet(s Screen)      { h.dismissed = append(h.dismissed, s) }
func (h *fakeHost) HideKeyboard()              { h.keyboard++ }
func (h *fakeHost) Announce(text string)       { h.spoken = append(h.spoken, text) }

func (h *fakeHost) RequestPermissions(code int, _ []string) { h.perms = append(h.perms, code) }

func (h *fakeHost) all() Host {
	return Host{Sheets: h, Keyboard: h, Permissions: h, Announcer: h}
}

func newContainer(t *testing.T, split bool) *Container {
	t.Helper()
	return newContainerWithHost(t, split, Host{})
}

func newContainerWithHost(t *testing.T, split bool, host Host) *Container {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SplitCapable = split
	c, err := New(cfg, host)
	require.NoError(t, err)
	c.Measure(testWidth, testHeight)
	return c
}

// waitIdle ticks until no transition or gesture is running.
func waitIdle(t *testing.T, c *Container) {
	t.Helper()
	for i := 0; c.IsBusy(); i++ {
		require.Less(t, i, 1000, "container never went idle")
		c.Tick(frame)
	}
}

func mustDone(t *testing.T, out Outcome) {
	t.Helper()
	require.Equal(t, OutcomeDone, out)
}

func now() NavOptions { return NavOptions{Immediate: true} }

// hostedBy returns the role of the front pane hosting s.
func hostedBy(c *Container, s *testScreen) (pane.Role, bool) {
	if s.root == nil {
		return 0, false
	}
	front := c.Panes().Front()
	for _, p := range front.Panes() {
		if p.Hosts(s.root) {
			return front.RoleOf(p)
		}
	}
	return 0, false
}

func requireHosted(t *testing.T, c *Container, s *testScreen, role pane.Role) {
	t.Helper()
	got, ok := hostedBy(c, s)
	require.True(t, ok, "%s is not hosted in the front group", s.name)
	require.Equal(t, role, got, "%s hosted in the wrong pane", s.name)
}

func requireStack(t *testing.T, c *Container, want ...*testScreen) {
	t.Helper()
	got := c.Screens()
	require.Len(t, got, len(want))
	for i := range want {
		require.Same(t, want[i], got[i], "stack position %d", i)
	}
}

// requireIdleWidths checks that the visible front panes tile the width.
func requireIdleWidths(t *testing.T, c *Container) {
	t.Helper()
	require.False(t, c.IsBusy())
	l := c.Layout()
	var sum int32
	for _, p := range l.Front.Placements {
		sum += p.Rect.W
	}
	require.Equal(t, int32(testWidth), sum)
}

func pointer(action gesture.Action, x float64, ms int) *PointerEvent {
	return &PointerEvent{Action: action, X: x, Y: 300, Time: time.Duration(ms) * time.Millisecond}
}

// swipe drags from the left edge to x and releases without velocity.
func swipe(c *Container, x float64) {
	c.HandlePointer(pointer(gesture.ActionDown, 10, 0))
	c.HandlePointer(pointer(gesture.ActionMove, 60, 16))
	c.HandlePointer(pointer(gesture.ActionMove, x, 32))
	up := pointer(gesture.ActionUp, x, 400)
	up.HasVelocity = true
	c.HandlePointer(up)
}
