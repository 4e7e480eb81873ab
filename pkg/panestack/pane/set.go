package pane

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
)

// Metrics are the density-dependent drawing parameters of a Set.
type Metrics struct {
	Density         float64 // pixels per logical unit
	ShadowRampDP    float64 // gap over which a shadow fades in, logical units
	ShadowWidthDP   float64 // shadow strip width, logical units
	ScrimMaxOpacity float64 // cap on the scrim opacity, 0..1
}

// DefaultMetrics returns the metrics used at baseline density.
func DefaultMetrics() Metrics {
	return Metrics{
		Density:         1,
		ShadowRampDP:    constants.DefaultShadowRampDP,
		ShadowWidthDP:   constants.DefaultShadowWidthDP,
		ScrimMaxOpacity: constants.DefaultScrimMaxOpacity,
	}
}

// OverlayKind distinguishes the two decorations a Set produces.
type OverlayKind int

const (
	OverlayShadow OverlayKind = iota // directional drop shadow left of a pane edge
	OverlayScrim                     // darkening layer over the back group
)

// Overlay is a decoration rectangle in container coordinates.
type Overlay struct {
	Kind    OverlayKind
	Rect    Rect
	Opacity float64
}

// Alpha converts the opacity to an 8-bit alpha for drawing. Scrims are
// scaled by their base colour alpha.
func (o Overlay) Alpha() uint8 {
	base := 255.0
	if o.Kind == OverlayScrim {
		base = constants.ScrimBaseAlpha
	}
	return uint8(base * clamp(o.Opacity, 0, 1))
}

// Placement is a pane rectangle in container coordinates.
type Placement struct {
	Pane *Pane
	Rect Rect
}

// GroupLayout is the drawable state of one group.
type GroupLayout struct {
	Visible    bool
	Alpha      float64
	Placements []Placement
	Shadows    []Overlay
}

// Layout is the drawable state of a Set, back group first.
type Layout struct {
	Width, Height int32
	Back          GroupLayout
	Front         GroupLayout
	// Scrim and EdgeShadow are set while the front group is dragged over
	// the back group.
	Scrim      *Overlay
	EdgeShadow *Overlay
}

// Set holds the front and back groups and lays them out.
type Set struct {
	front *Group
	back  *Group

	metrics Metrics
	width   int32
	height  int32

	// Underlay enables the scrim and edge shadow drawn while the front
	// group is dragged off its position.
	Underlay bool
}

// NewSet creates a Set with a visible front group and a hidden back group.
func NewSet(m Metrics) *Set {
	if m.Density <= 0 {
		m.Density = 1
	}
	back := NewGroup()
	back.Visible = false
	return &Set{
		front:   NewGroup(),
		back:    back,
		metrics: m,
	}
}

// Front returns the front group.
func (s *Set) Front() *Group {
	return s.front
}

// Back returns the back group.
func (s *Set) Back() *Group {
	return s.back
}

// SwapGroups exchanges the front and back groups.
func (s *Set) SwapGroups() {
	s.front, s.back = s.back, s.front
}

// Metrics returns the drawing metrics.
func (s *Set) Metrics() Metrics {
	return s.metrics
}

// SetMetrics replaces the drawing metrics.
func (s *Set) SetMetrics(m Metrics) {
	if m.Density <= 0 {
		m.Density = 1
	}
	s.metrics = m
}

// Width returns the width of the last measure pass.
func (s *Set) Width() int32 {
	return s.width
}

// Height returns the height of the last measure pass.
func (s *Set) Height() int32 {
	return s.height
}

// Measure computes pane widths for both groups.
func (s *Set) Measure(width, height int32) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.front.Measure(s.width)
	s.back.Measure(s.width)
}

// Locate returns the group and pane hosting root, if any.
func (s *Set) Locate(root VisualRoot) (*Group, *Pane) {
	for _, g := range []*Group{s.front, s.back} {
		for _, p := range g.Panes() {
			if p.Hosts(root) {
				return g, p
			}
		}
	}
	return nil, nil
}

// DetachEverywhere removes root from whichever pane hosts it. It reports
// whether any pane hosted the root.
func (s *Set) DetachEverywhere(root VisualRoot) bool {
	found := false
	for _, g := range []*Group{s.front, s.back} {
		for _, p := range g.Panes() {
			if p.Detach(root) == nil {
				found = true
			}
		}
	}
	return found
}

// Layout places every pane, assigns content frames with the given top
// inset, and computes the shadow and scrim overlays.
func (s *Set) Layout(statusBarHeight int32) Layout {
	out := Layout{Width: s.width, Height: s.height}
	out.Back = s.layoutGroup(s.back, statusBarHeight)
	out.Front = s.layoutGroup(s.front, statusBarHeight)

	shift := s.front.Shift
	if s.Underlay && shift != 0 && s.back.Visible {
		dp := s.metrics.Density
		w := float64(s.width)
		edge := px(shift)

		remaining := 0.0
		if w > 0 {
			remaining = (w - shift) / w
		}
		out.Scrim = &Overlay{
			Kind:    OverlayScrim,
			Rect:    Rect{X: 0, Y: 0, W: edge + px(dp), H: s.height},
			Opacity: clamp(remaining, 0, s.metrics.ScrimMaxOpacity),
		}

		sw := px(s.metrics.ShadowWidthDP * dp)
		out.EdgeShadow = &Overlay{
			Kind:    OverlayShadow,
			Rect:    Rect{X: edge - sw, Y: 0, W: sw, H: s.height},
			Opacity: clamp((w-shift)/(s.metrics.ShadowRampDP*dp), 0, 1),
		}
	}
	return out
}

func (s *Set) layoutGroup(g *Group, statusBarHeight int32) GroupLayout {
	gl := GroupLayout{Visible: g.Visible, Alpha: g.Alpha}
	if !g.Visible {
		return gl
	}

	dp := s.metrics.Density
	shift := px(g.Shift)
	sw := px(s.metrics.ShadowWidthDP * dp)
	w := float64(s.width)

	for _, p := range g.Place(s.height) {
		r := p.rect
		r.X += shift
		gl.Placements = append(gl.Placements, Placement{Pane: p, Rect: r})
		layoutContent(p, r, statusBarHeight)

		if p.Weight <= constants.SplitPrimaryWeight || p.width <= 0 || p.rect.X <= 0 {
			continue
		}
		left := float64(p.rect.X)
		gl.Shadows = append(gl.Shadows, Overlay{
			Kind:    OverlayShadow,
			Rect:    Rect{X: r.X - sw, Y: r.Y, W: sw, H: r.H},
			Opacity: clamp((w-left)/(s.metrics.ShadowRampDP*dp), 0, 1),
		})
	}
	return gl
}

// layoutContent frames the action bar as a top strip and the content roots
// below it. Roots are inset by the status bar when there is no bar and they
// do not handle system windows themselves.
func layoutContent(p *Pane, r Rect, statusBarHeight int32) {
	var barHeight int32
	if p.bar != nil {
		barHeight = min(p.bar.Height(), r.H)
		p.bar.SetFrame(Rect{X: r.X, Y: r.Y, W: r.W, H: barHeight})
	}
	for _, root := range p.roots {
		top := barHeight
		if barHeight == 0 {
			if f, ok := root.(SystemWindowFitter); !ok || !f.FitsSystemWindows() {
				top = statusBarHeight
			}
		}
		top = min(top, r.H)
		root.SetFrame(Rect{X: r.X, Y: r.Y + top, W: r.W, H: r.H - top})
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
