package panestack

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
)

type (
	// Screen is the lifecycle and capability contract of a stack entry.
	Screen = router.Screen
	// BaseScreen implements Screen with permissive no-op defaults.
	BaseScreen = router.BaseScreen
	// HostContext is handed to screens when they build their visual root.
	HostContext = router.HostContext

	ActionBarOwner = router.ActionBarOwner
	RemovalGate    = router.RemovalGate
	KeyboardHider  = router.KeyboardHider
	Titled         = router.Titled

	VisualRoot   = pane.VisualRoot
	ActionBar    = pane.ActionBar
	Rect         = pane.Rect
	PointerEvent = gesture.PointerEvent
)

// Outcome reports what happened to a navigation request.
type Outcome = router.Outcome

const (
	OutcomeFailed   = router.OutcomeFailed   // refused or not applicable; nothing changed
	OutcomeDone     = router.OutcomeDone     // executed (an animation may still be running)
	OutcomeDeferred = router.OutcomeDeferred // busy: queued, or dropped because the slot was taken
)

// HorizontalScroller is implemented by screens whose content can own
// horizontal scrolling at a point, which blocks the back gesture there.
type HorizontalScroller interface {
	ClaimsHorizontalScroll(x, y float64) bool
}

// SheetPresenter shows and dismisses screens of the modal sheet group.
type SheetPresenter interface {
	PresentSheet(screen Screen) bool
	DismissSheet(screen Screen)
}

// KeyboardDismisser hides the soft keyboard.
type KeyboardDismisser interface {
	HideKeyboard()
}

// PermissionRequester forwards permission requests to the platform.
type PermissionRequester interface {
	RequestPermissions(requestCode int, permissions []string)
}

// Announcer speaks accessibility announcements.
type Announcer interface {
	Announce(text string)
}

// Host bundles the optional collaborators a Container talks to. Nil fields
// disable the corresponding feature.
type Host struct {
	Sheets      SheetPresenter
	Keyboard    KeyboardDismisser
	Permissions PermissionRequester
	Announcer   Announcer
}
