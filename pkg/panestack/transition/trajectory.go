package transition

import (
	"math"
	"time"

	c "github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
)

// Trajectory is the geometry of one transition as a function of progress.
type Trajectory struct {
	Kind  Kind
	Order pane.Order
	// Panes is false for layer-only transitions, which leave pane
	// parameters and the idle measure rule untouched.
	Panes bool
	From  Frame
	To    Frame
	Curve Curve
}

// At returns the frame at linear progress t, after easing.
func (tr Trajectory) At(t float64) Frame {
	t = clamp01(t)
	if tr.Curve != nil {
		t = tr.Curve(t)
	}
	return tr.From.Lerp(tr.To, t)
}

// Segment returns the linear trajectory between progress a and b of tr,
// relabelled with kind. Gesture releases continue a drag this way.
func (tr Trajectory) Segment(kind Kind, a, b float64) Trajectory {
	return Trajectory{
		Kind:  kind,
		Order: tr.Order,
		Panes: tr.Panes,
		From:  tr.At(a),
		To:    tr.At(b),
		Curve: Linear,
	}
}

// Apply writes the frame at progress t into set.
func (tr Trajectory) Apply(set *pane.Set, t float64) Frame {
	f := tr.At(t)
	ApplyFrame(set, f, tr.Panes, tr.Order)
	return f
}

// ApplyFrame writes f into set. Pane parameters are only written when
// panes is set.
func ApplyFrame(set *pane.Set, f Frame, panes bool, order pane.Order) {
	front, back := set.Front(), set.Back()
	front.Shift, front.Alpha = f.Front.Shift, f.Front.Alpha
	back.Shift, back.Alpha = f.Back.Shift, f.Back.Alpha
	if !panes {
		return
	}
	front.Animating = true
	front.Order = order
	front.Primary.UpdateParams(f.Primary.Weight, f.Primary.Offset)
	front.Secondary.UpdateParams(f.Secondary.Weight, f.Secondary.Offset)
	front.Transient.UpdateParams(f.Transient.Weight, f.Transient.Offset)
}

// ReleaseDuration scales base by the remaining share of travel, with a floor.
func ReleaseDuration(base, floor time.Duration, remaining float64) time.Duration {
	d := time.Duration(float64(base) * math.Abs(remaining))
	return max(d, floor)
}

var opaque = LayerParams{Alpha: 1}

func split() Frame {
	return Frame{
		Primary:   PaneParams{Weight: c.SplitPrimaryWeight},
		Secondary: PaneParams{Weight: c.SplitSecondaryWeight},
		Front:     opaque,
		Back:      opaque,
	}
}

func full() Frame {
	return Frame{
		Primary: PaneParams{Weight: c.FullWeight},
		Front:   opaque,
		Back:    opaque,
	}
}

func parked(width float64) PaneParams {
	return PaneParams{Weight: c.PeekWeight, Offset: -c.PeekOffset * width}
}

// FirstSplitOpen shrinks a full-width primary to make room for the first
// secondary of a group.
func FirstSplitOpen() Trajectory {
	from, to := full(), split()
	return Trajectory{Kind: KindFirstSplitOpen, Order: pane.OrderFromRight, Panes: true, From: from, To: to, Curve: EaseOut}
}

// NextPush slides a freshly built front group in over the old group.
func NextPush(width float64) Trajectory {
	from, to := full(), full()
	from.Front = LayerParams{Shift: c.StackShift * width, Alpha: c.StackEnterAlpha}
	return Trajectory{Kind: KindNextPush, From: from, To: to, Curve: EaseOut}
}

// StackPop slides the outgoing front group away, revealing the back group.
func StackPop(width float64) Trajectory {
	from, to := full(), full()
	to.Front = LayerParams{Shift: c.StackShift * width, Alpha: 0}
	return Trajectory{Kind: KindStackPop, From: from, To: to, Curve: EaseOut}
}

// NextPushWithSecondary pushes into an occupied split: the transient enters
// on the right, the secondary compresses into the primary slot and the
// primary parks off the leading edge.
func NextPushWithSecondary(width float64) Trajectory {
	from, to := split(), split()
	to.Primary = parked(width)
	to.Secondary = PaneParams{Weight: c.SplitPrimaryWeight}
	to.Transient = PaneParams{Weight: c.SplitSecondaryWeight}
	from.Indicator = 1
	return Trajectory{Kind: KindNextPushWithSecondary, Order: pane.OrderFromRight, Panes: true, From: from, To: to, Curve: EaseOut}
}

// PreviousPop reveals the split ancestor from the left while the secondary
// leaves on the right.
func PreviousPop(width float64) Trajectory {
	return popDrag(width).withCurve(KindPreviousPop, EaseOut)
}

// PreviousPopLast widens the primary until the secondary is gone.
func PreviousPopLast() Trajectory {
	return popLastDrag().withCurve(KindPreviousPopLast, EaseOut)
}

// OpenSecondary reflows a full-screen group into split mode by bringing the
// predecessor in from the left.
func OpenSecondary(width float64) Trajectory {
	from, to := full(), full()
	from.Transient = parked(width)
	to.Transient = PaneParams{Weight: c.SplitPrimaryWeight}
	to.Primary = PaneParams{Weight: c.SplitSecondaryWeight}
	to.Indicator = 1
	return Trajectory{Kind: KindOpenSecondary, Order: pane.OrderFromLeft, Panes: true, From: from, To: to, Curve: EaseOut}
}

// CloseSecondary reflows a split group to full screen: the primary parks off
// the leading edge while the secondary widens.
func CloseSecondary(width float64) Trajectory {
	from, to := split(), split()
	to.Primary = parked(width)
	to.Secondary = PaneParams{Weight: c.FullWeight}
	return Trajectory{Kind: KindCloseSecondary, Order: pane.OrderFromRight, Panes: true, From: from, To: to, Curve: EaseOut}
}

// ReplaceTop floats the transient over the pane being replaced, from beyond
// the trailing edge. cur is the geometry at the start; weight is the
// replaced pane's weight.
func ReplaceTop(cur Frame, width, weight float64) Trajectory {
	from, to := cur, cur
	from.Transient = PaneParams{Weight: weight, Offset: width}
	to.Transient = PaneParams{Weight: weight, Offset: width - weight*width}
	return Trajectory{Kind: KindReplaceTop, Order: pane.OrderFloating, Panes: true, From: from, To: to, Curve: EaseOut}
}

// SplitDrag maps split drag progress to geometry. When slidingLast the
// primary grows over the secondary; otherwise the ancestor enters through
// the transient pane from the left.
func SplitDrag(width float64, slidingLast bool) Trajectory {
	if slidingLast {
		return popLastDrag()
	}
	return popDrag(width)
}

// StackDrag maps full-screen drag progress to the front layer's shift.
func StackDrag(width float64) Trajectory {
	from, to := full(), full()
	to.Front.Shift = width
	return Trajectory{Kind: KindSlideCommit, From: from, To: to, Curve: Linear}
}

func popDrag(width float64) Trajectory {
	from, to := split(), split()
	from.Transient = parked(width)
	to.Indicator = 1
	to.Transient = PaneParams{Weight: c.SplitPrimaryWeight}
	to.Primary = PaneParams{Weight: c.SplitSecondaryWeight}
	return Trajectory{Kind: KindSlideCommit, Order: pane.OrderFromLeft, Panes: true, From: from, To: to, Curve: Linear}
}

func popLastDrag() Trajectory {
	from, to := split(), split()
	to.Primary = PaneParams{Weight: c.FullWeight}
	to.Secondary = PaneParams{}
	return Trajectory{Kind: KindSlideCommit, Order: pane.OrderFromRight, Panes: true, From: from, To: to, Curve: Linear}
}

func (tr Trajectory) withCurve(kind Kind, curve Curve) Trajectory {
	tr.Kind = kind
	tr.Curve = curve
	return tr
}
