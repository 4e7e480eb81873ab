package transition

import (
	"math"

	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
)

// PaneParams is the weight and offset of one pane.
type PaneParams struct {
	Weight float64
	Offset float64 // pixels
}

// LayerParams is the translation and opacity of a group.
type LayerParams struct {
	Shift float64 // pixels
	Alpha float64
}

// Frame is the full geometry at one instant: the front group's three panes,
// both layers and the active-indicator progress.
type Frame struct {
	Primary   PaneParams
	Secondary PaneParams
	Transient PaneParams
	Front     LayerParams
	Back      LayerParams
	Indicator float64
}

// Snapshot reads the current geometry of a set.
func Snapshot(set *pane.Set) Frame {
	f, b := set.Front(), set.Back()
	return Frame{
		Primary:   PaneParams{f.Primary.Weight, f.Primary.LeftOffset},
		Secondary: PaneParams{f.Secondary.Weight, f.Secondary.LeftOffset},
		Transient: PaneParams{f.Transient.Weight, f.Transient.LeftOffset},
		Front:     LayerParams{f.Shift, f.Alpha},
		Back:      LayerParams{b.Shift, b.Alpha},
	}
}

// Curve maps linear progress to eased progress.
type Curve func(t float64) float64

// Linear is the identity curve, used for gesture releases.
func Linear(t float64) float64 {
	return t
}

// EaseOut decelerates towards the end.
func EaseOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// lerp is exact at both ends.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func (p PaneParams) lerp(to PaneParams, t float64) PaneParams {
	return PaneParams{lerp(p.Weight, to.Weight, t), lerp(p.Offset, to.Offset, t)}
}

func (l LayerParams) lerp(to LayerParams, t float64) LayerParams {
	return LayerParams{lerp(l.Shift, to.Shift, t), lerp(l.Alpha, to.Alpha, t)}
}

// Lerp interpolates every field between f and to.
func (f Frame) Lerp(to Frame, t float64) Frame {
	return Frame{
		Primary:   f.Primary.lerp(to.Primary, t),
		Secondary: f.Secondary.lerp(to.Secondary, t),
		Transient: f.Transient.lerp(to.Transient, t),
		Front:     f.Front.lerp(to.Front, t),
		Back:      f.Back.lerp(to.Back, t),
		Indicator: lerp(f.Indicator, to.Indicator, t),
	}
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return max(0, min(t, 1))
}
