package transition

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/stretchr/testify/require"
)

const width = 1000.0

func TestTrajectoryEndpoints(t *testing.T) {
	cases := []struct {
		name string
		tr   Trajectory
		from Frame
		to   Frame
	}{
		{"first split open", FirstSplitOpen(), full(), split()},
		{"previous pop last", PreviousPopLast(), split(), func() Frame {
			f := split()
			f.Primary.Weight = 1
			f.Secondary.Weight = 0
			return f
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.from, tc.tr.At(0))
			require.Equal(t, tc.to, tc.tr.At(1))
		})
	}
}

func TestNextPushWithSecondaryParksPrimary(t *testing.T) {
	tr := NextPushWithSecondary(width)
	end := tr.At(1)

	require.Equal(t, PaneParams{Weight: 0.2, Offset: -200}, end.Primary)
	require.Equal(t, 0.35, end.Secondary.Weight)
	require.Equal(t, 0.65, end.Transient.Weight)
	require.Equal(t, 1.0, tr.At(0).Indicator)
	require.Equal(t, pane.OrderFromRight, tr.Order)
}

func TestPopDragEntersFromLeft(t *testing.T) {
	tr := SplitDrag(width, false)

	require.Equal(t, pane.OrderFromLeft, tr.Order)
	require.Equal(t, PaneParams{Weight: 0.2, Offset: -200}, tr.At(0).Transient)
	end := tr.At(1)
	require.Equal(t, 0.35, end.Transient.Weight)
	require.Equal(t, 0.65, end.Primary.Weight)
	require.Equal(t, 1.0, end.Indicator)

	mid := tr.At(0.5)
	require.InDelta(t, 0.5, mid.Indicator, 1e-9)
	require.InDelta(t, -100, mid.Transient.Offset, 1e-9)
}

func TestStackDragIsLayerOnly(t *testing.T) {
	tr := StackDrag(width)
	require.False(t, tr.Panes)
	require.Equal(t, 250.0, tr.At(0.25).Front.Shift)
}

func TestReplaceTopSlidesOverRole(t *testing.T) {
	cur := split()
	tr := ReplaceTop(cur, width, 0.65)

	require.Equal(t, PaneParams{Weight: 0.65, Offset: 1000}, tr.At(0).Transient)
	require.InDelta(t, 350, tr.At(1).Transient.Offset, 1e-9)
	require.Equal(t, cur.Primary, tr.At(1).Primary)
	require.Equal(t, pane.OrderFloating, tr.Order)
}

func TestSegmentContinuesDrag(t *testing.T) {
	drag := StackDrag(width)
	release := drag.Segment(KindSlideCancel, 0.4, 0)

	require.Equal(t, KindSlideCancel, release.Kind)
	require.Equal(t, 400.0, release.At(0).Front.Shift)
	require.Equal(t, 0.0, release.At(1).Front.Shift)
	require.InDelta(t, 200, release.At(0.5).Front.Shift, 1e-9)
}

func TestEaseOutAndClamp(t *testing.T) {
	require.Equal(t, 0.0, EaseOut(0))
	require.Equal(t, 1.0, EaseOut(1))
	require.Greater(t, EaseOut(0.5), 0.5)

	tr := FirstSplitOpen()
	require.Equal(t, tr.At(1), tr.At(3))
	require.Equal(t, tr.At(0), tr.At(-1))
}

func TestReleaseDuration(t *testing.T) {
	base := 200 * time.Millisecond
	floor := 50 * time.Millisecond

	require.Equal(t, 100*time.Millisecond, ReleaseDuration(base, floor, 0.5))
	require.Equal(t, 100*time.Millisecond, ReleaseDuration(base, floor, -0.5))
	require.Equal(t, floor, ReleaseDuration(base, floor, 0.1))
}

func TestApplyFrameLayerOnly(t *testing.T) {
	set := pane.NewSet(pane.DefaultMetrics())
	f := split()
	f.Front.Shift = 30

	ApplyFrame(set, f, false, pane.OrderFromLeft)
	require.Equal(t, 30.0, set.Front().Shift)
	require.False(t, set.Front().Animating)
	require.Equal(t, 1.0, set.Front().Primary.Weight)

	ApplyFrame(set, f, true, pane.OrderFromLeft)
	require.True(t, set.Front().Animating)
	require.Equal(t, pane.OrderFromLeft, set.Front().Order)
	require.Equal(t, 0.35, set.Front().Primary.Weight)
}

func TestSnapshot(t *testing.T) {
	set := pane.NewSet(pane.DefaultMetrics())
	set.Front().Shift = 12
	f := Snapshot(set)
	require.Equal(t, 1.0, f.Primary.Weight)
	require.Equal(t, 12.0, f.Front.Shift)
	require.Equal(t, 1.0, f.Back.Alpha)
}
