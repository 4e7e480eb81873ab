// Package pane holds the geometry side of the navigation controller: panes
// with weight and offset parameters, the groups that arrange up to three of
// them side by side, and the layout policy that turns weights into rectangles
// plus shadow and scrim overlays.
//
// Panes are plain values manipulated by the transition engine. They never
// render anything; a platform host draws the rectangles this package places.
package pane

import (
	"errors"
	"slices"
)

// ErrNotHosted is returned when detaching a root from a pane that does not
// currently host it, typically because it was re-parented in the meantime.
var ErrNotHosted = errors.New("pane: visual root not hosted here")

// Rect is an axis-aligned rectangle in pixels. Field names follow sdl.Rect.
type Rect struct {
	X, Y, W, H int32
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int32 {
	return r.X + r.W
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// VisualRoot is the top-level visual of a screen, owned by the screen and
// referenced by a pane while attached. Implementations must be comparable;
// pointer types are the norm.
type VisualRoot interface {
	SetFrame(r Rect)
}

// ActionBar is the optional companion shown above a screen's root.
type ActionBar interface {
	VisualRoot
	Height() int32
	// AddToContainer reports whether the bar is hosted by the pane
	// rather than by the screen's own root.
	AddToContainer() bool
	// SetIndicator moves the active indicator; 0 is inactive, 1 active.
	SetIndicator(progress float64)
}

// SystemWindowFitter is implemented by roots that handle the status-bar
// inset themselves.
type SystemWindowFitter interface {
	FitsSystemWindows() bool
}

// Surface is a minimal VisualRoot that records its last frame.
type Surface struct {
	Frame Rect
}

// SetFrame records the frame.
func (s *Surface) SetFrame(r Rect) {
	s.Frame = r
}

// Pane is one geometric slot. Weight is its share of the container width
// and LeftOffset a pixel bias applied by orderings that honor it.
type Pane struct {
	Weight     float64
	LeftOffset float64

	attached bool
	roots    []VisualRoot
	bar      ActionBar
	width    int32
	rect     Rect
}

// NewPane creates a detached pane with the given parameters.
func NewPane(weight, leftOffset float64) *Pane {
	return &Pane{Weight: weight, LeftOffset: leftOffset}
}

// UpdateParams sets weight and offset together.
func (p *Pane) UpdateParams(weight, leftOffset float64) {
	p.Weight = weight
	p.LeftOffset = leftOffset
}

// Attached reports whether the pane takes part in layout.
func (p *Pane) Attached() bool {
	return p.attached
}

// Attach adds a root to the pane. Attaching a root twice is a no-op.
func (p *Pane) Attach(root VisualRoot) {
	if root == nil || slices.Contains(p.roots, root) {
		return
	}
	p.roots = append(p.roots, root)
}

// AttachBar hosts an action bar; a previous bar is replaced.
func (p *Pane) AttachBar(bar ActionBar) {
	p.bar = bar
}

// Detach removes a root. It returns ErrNotHosted if the pane does not host it.
func (p *Pane) Detach(root VisualRoot) error {
	idx := slices.Index(p.roots, root)
	if idx < 0 {
		return ErrNotHosted
	}
	p.roots = slices.Delete(p.roots, idx, idx+1)
	return nil
}

// DetachBar removes the action bar if it is the hosted one.
func (p *Pane) DetachBar(bar ActionBar) error {
	if p.bar == nil || p.bar != bar {
		return ErrNotHosted
	}
	p.bar = nil
	return nil
}

// Hosts reports whether root is attached to this pane.
func (p *Pane) Hosts(root VisualRoot) bool {
	return slices.Contains(p.roots, root)
}

// Roots returns the hosted roots in attach order.
func (p *Pane) Roots() []VisualRoot {
	return slices.Clone(p.roots)
}

// Bar returns the hosted action bar, or nil.
func (p *Pane) Bar() ActionBar {
	return p.bar
}

// IsEmpty reports whether the pane hosts nothing.
func (p *Pane) IsEmpty() bool {
	return len(p.roots) == 0 && p.bar == nil
}

// Clear drops every hosted root and the action bar.
func (p *Pane) Clear() {
	p.roots = p.roots[:0]
	p.bar = nil
}

// Rect returns the rectangle assigned by the last layout pass, in group
// coordinates.
func (p *Pane) Rect() Rect {
	return p.rect
}

// MeasuredWidth returns the width computed by the last measure pass.
func (p *Pane) MeasuredWidth() int32 {
	return p.width
}
