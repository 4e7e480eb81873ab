// Package transition computes pane geometry for navigation transitions and
// drives the single in-flight transition from an external frame tick.
//
// Every kind of transition is a Trajectory: a pure function from progress
// t in [0,1] to a Frame of pane and layer parameters. The Engine owns the
// clock, applies frames to a pane.Set and runs the commit exactly once.
package transition

import "fmt"

// Kind identifies a transition.
type Kind int

const (
	KindFirstSplitOpen        Kind = iota // primary yields to a new secondary
	KindNextPush                          // full-screen push over the old group
	KindNextPushWithSecondary             // split push through the transient pane
	KindPreviousPop                       // split pop revealing the ancestor from the left
	KindPreviousPopLast                   // split pop collapsing to one pane
	KindOpenSecondary                     // reflow into split mode
	KindCloseSecondary                    // reflow out of split mode
	KindReplaceTop                        // floating replacement of the top screen
	KindStackPop                          // full-screen pop revealing the back group
	KindSlideCommit                       // gesture release completing a back navigation
	KindSlideCancel                       // gesture release restoring the previous state
)

func (k Kind) String() string {
	switch k {
	case KindFirstSplitOpen:
		return "first-split-open"
	case KindNextPush:
		return "next-push"
	case KindNextPushWithSecondary:
		return "next-push-with-secondary"
	case KindPreviousPop:
		return "previous-pop"
	case KindPreviousPopLast:
		return "previous-pop-last"
	case KindOpenSecondary:
		return "open-secondary"
	case KindCloseSecondary:
		return "close-secondary"
	case KindReplaceTop:
		return "replace-top"
	case KindStackPop:
		return "stack-pop"
	case KindSlideCommit:
		return "slide-commit"
	case KindSlideCancel:
		return "slide-cancel"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
