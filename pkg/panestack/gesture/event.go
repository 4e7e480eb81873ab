// Package gesture turns raw pointer input into back-navigation drags.
//
// A Controller watches pointer events, decides when horizontal movement
// becomes a navigation gesture, forwards the live displacement to its Target
// and resolves the release into a commit or a cancel using the displacement
// fraction and a rolling velocity estimate.
package gesture

import (
	"fmt"
	"time"
)

// Action is the kind of a pointer event.
type Action int

const (
	ActionDown      Action = iota // first pointer touches
	ActionMove                    // any tracked pointer moves
	ActionUp                      // last pointer lifts
	ActionCancel                  // the platform cancelled the gesture
	ActionPointerUp               // a non-primary pointer lifts
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	case ActionPointerUp:
		return "pointer-up"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// PointerEvent is one pointer sample in container pixels.
type PointerEvent struct {
	Action    Action
	PointerID int64
	X, Y      float64
	// Time is a monotonic timestamp; only differences matter.
	Time time.Duration

	// Synthetic marks events generated by the host rather than the user,
	// such as the cancel sent on focus loss. A synthetic cancel aborts the
	// gesture without resolving it.
	Synthetic bool

	// HasVelocity carries a release velocity measured by the host, in
	// pixels per second. It replaces the tracker's estimate on ActionUp.
	HasVelocity bool
	VelocityX   float64
	VelocityY   float64
}

// CancelEvent returns the synthetic cancel a host sends when it loses focus.
func CancelEvent(at time.Duration) PointerEvent {
	return PointerEvent{Action: ActionCancel, Time: at, Synthetic: true}
}
