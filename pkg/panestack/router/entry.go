package router

import (
	"fmt"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
)

// Lifecycle is the coarse lifecycle state of a stack entry.
type Lifecycle int

const (
	LifecycleCreated   Lifecycle = iota // pushed, never resumed
	LifecycleResumed                    // visible and interactive
	LifecyclePaused                     // kept in the stack, not interactive
	LifecycleDestroyed                  // removed from the stack
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleCreated:
		return "created"
	case LifecycleResumed:
		return "resumed"
	case LifecyclePaused:
		return "paused"
	case LifecycleDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("lifecycle(%d)", int(l))
	}
}

// Entry is a screen's record in the stack: its group membership, lifecycle
// flags, and the visual root cached across detach/reattach.
type Entry struct {
	Screen       Screen
	GroupID      int
	InnerGroupID int

	state   Lifecycle
	root    pane.VisualRoot
	host    *pane.Pane
	barHost *pane.Pane
}

func newEntry(screen Screen, group int) *Entry {
	return &Entry{
		Screen:  screen,
		GroupID: group,
		state:   LifecycleCreated,
	}
}

// Root returns the cached visual root, creating it on first use.
// The second return value is true when the root was created by this call.
func (e *Entry) Root(ctx HostContext) (pane.VisualRoot, bool) {
	if e.root != nil {
		return e.root, false
	}
	e.root = e.Screen.CreateVisualRoot(ctx)
	if e.root == nil {
		e.root = &pane.Surface{}
	}
	return e.root, true
}

// CachedRoot returns the visual root without creating it.
func (e *Entry) CachedRoot() pane.VisualRoot {
	return e.root
}

// ActionBar returns the companion action bar when it should be hosted
// next to the screen's root.
func (e *Entry) ActionBar() pane.ActionBar {
	owner, ok := e.Screen.(ActionBarOwner)
	if !ok {
		return nil
	}
	bar := owner.ActionBar()
	if bar == nil || !bar.AddToContainer() {
		return nil
	}
	return bar
}

// SetIndicator forwards the active-indicator progress to the action bar.
func (e *Entry) SetIndicator(progress float64) {
	if e == nil {
		return
	}
	if owner, ok := e.Screen.(ActionBarOwner); ok {
		if bar := owner.ActionBar(); bar != nil {
			bar.SetIndicator(progress)
		}
	}
}

// Host returns the pane currently hosting the root, or nil.
func (e *Entry) Host() *pane.Pane {
	return e.host
}

// BarHost returns the pane currently hosting the action bar, or nil.
func (e *Entry) BarHost() *pane.Pane {
	return e.barHost
}

// SetHosts records where the root and action bar are attached.
func (e *Entry) SetHosts(root, bar *pane.Pane) {
	e.host = root
	e.barHost = bar
}

// State returns the lifecycle state.
func (e *Entry) State() Lifecycle {
	return e.state
}

// Resume fires OnResume unless the entry is already resumed or destroyed.
func (e *Entry) Resume() bool {
	if e.state == LifecycleResumed || e.state == LifecycleDestroyed {
		return false
	}
	e.Screen.OnResume()
	e.state = LifecycleResumed
	return true
}

// Pause fires OnPause if the entry is resumed.
func (e *Entry) Pause() bool {
	if e.state != LifecycleResumed {
		return false
	}
	e.Screen.OnPause()
	e.state = LifecyclePaused
	return true
}

// Destroy pauses the entry, fires OnDestroy once and drops the root cache.
func (e *Entry) Destroy() bool {
	if e.state == LifecycleDestroyed {
		return false
	}
	e.Pause()
	e.Screen.OnDestroy()
	e.state = LifecycleDestroyed
	e.root = nil
	e.host = nil
	e.barHost = nil
	return true
}

// IsSheet reports whether the entry lives in the modal sheet presenter.
func (e *Entry) IsSheet() bool {
	return e.GroupID == constants.SheetGroupID
}

// Title returns the screen title for announcements, or "".
func (e *Entry) Title() string {
	if t, ok := e.Screen.(Titled); ok {
		return t.Title()
	}
	return ""
}
