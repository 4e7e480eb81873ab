package router

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
)

// HostContext is handed to screens when they build their visual root.
type HostContext struct {
	Density      float64 // pixels per logical unit
	SplitCapable bool    // whether the display currently runs the split layout
}

// Screen is the lifecycle and capability contract of a stack entry.
// Embed BaseScreen to get no-op defaults and override what you need.
type Screen interface {
	// OnCreate is the creation gate; returning false aborts the push.
	OnCreate() bool
	CreateVisualRoot(ctx HostContext) pane.VisualRoot
	OnViewAttached()

	OnPreResume()
	OnResume()
	OnPrePause()
	OnPause()
	OnBecomeFullyVisible()
	// OnGetFirstInStack fires when the screen becomes the top of the stack.
	OnGetFirstInStack()
	OnRemoveFromParent()
	OnDestroy()

	CanBeginSlide() bool
	IsSwipeBackEnabled(ev gesture.PointerEvent) bool
	OnBeginSlide()
	// OnBackPressed returns true when the screen handled the press itself.
	OnBackPressed() bool

	OnReceive(data ...any)
	OnOrientationChanged()
	OnActivityResult(requestCode, resultCode int, data any)
	OnRequestPermissionsResult(requestCode int, permissions []string, grantResults []int)
}

// ActionBarOwner is implemented by screens with an action-bar companion.
type ActionBarOwner interface {
	ActionBar() pane.ActionBar
}

// RemovalGate is implemented by screens that may refuse to be destroyed.
type RemovalGate interface {
	AllowRemoval() bool
}

// KeyboardHider is implemented by screens that want the soft keyboard
// dismissed when they are shown.
type KeyboardHider interface {
	HideKeyboardOnShow() bool
}

// Titled screens provide a title for accessibility announcements.
type Titled interface {
	Title() string
}

// BaseScreen implements Screen with permissive no-op defaults.
type BaseScreen struct{}

func (BaseScreen) OnCreate() bool                                  { return true }
func (BaseScreen) CreateVisualRoot(HostContext) pane.VisualRoot    { return &pane.Surface{} }
func (BaseScreen) OnViewAttached()                                 {}
func (BaseScreen) OnPreResume()                                    {}
func (BaseScreen) OnResume()                                       {}
func (BaseScreen) OnPrePause()                                     {}
func (BaseScreen) OnPause()                                        {}
func (BaseScreen) OnBecomeFullyVisible()                           {}
func (BaseScreen) OnGetFirstInStack()                              {}
func (BaseScreen) OnRemoveFromParent()                             {}
func (BaseScreen) OnDestroy()                                      {}
func (BaseScreen) CanBeginSlide() bool                             { return true }
func (BaseScreen) IsSwipeBackEnabled(gesture.PointerEvent) bool    { return true }
func (BaseScreen) OnBeginSlide()                                   {}
func (BaseScreen) OnBackPressed() bool                             { return false }
func (BaseScreen) OnReceive(...any)                                {}
func (BaseScreen) OnOrientationChanged()                           {}
func (BaseScreen) OnActivityResult(int, int, any)                  {}
func (BaseScreen) OnRequestPermissionsResult(int, []string, []int) {}
