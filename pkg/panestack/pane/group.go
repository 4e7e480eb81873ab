package pane

import (
	"math"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
)

// Order is the left-to-right arrangement of a group's panes while a
// transition is running.
type Order int

const (
	OrderFromRight Order = iota // primary, secondary, transient; primary offset applies
	OrderFromLeft               // transient at its offset, primary, secondary
	OrderFloating               // primary and secondary fixed, transient overlays at its offset
)

func (o Order) String() string {
	switch o {
	case OrderFromRight:
		return "from-right"
	case OrderFromLeft:
		return "from-left"
	case OrderFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// Role names one of the three panes of a group.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
	RoleTransient
)

func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	case RoleTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Group is one layer of up to three panes. Role pointers are swapped on
// transition commit instead of re-creating panes.
type Group struct {
	Primary   *Pane
	Secondary *Pane
	Transient *Pane

	// Shift translates the whole layer horizontally, in pixels.
	Shift float64
	// Alpha is the layer opacity in [0,1].
	Alpha   float64
	Visible bool

	// Animating switches measure from the idle rule to proportional weights.
	Animating bool
	Order     Order
}

// NewGroup returns a visible group with a full-width primary pane.
func NewGroup() *Group {
	g := &Group{
		Primary:   NewPane(constants.FullWeight, 0),
		Secondary: NewPane(0, 0),
		Transient: NewPane(0, 0),
		Alpha:     1,
		Visible:   true,
	}
	g.Primary.attached = true
	return g
}

// Pane returns the pane playing role r.
func (g *Group) Pane(r Role) *Pane {
	switch r {
	case RoleSecondary:
		return g.Secondary
	case RoleTransient:
		return g.Transient
	default:
		return g.Primary
	}
}

// RoleOf returns the role of p within the group.
func (g *Group) RoleOf(p *Pane) (Role, bool) {
	switch p {
	case g.Primary:
		return RolePrimary, true
	case g.Secondary:
		return RoleSecondary, true
	case g.Transient:
		return RoleTransient, true
	}
	return 0, false
}

// Panes returns the three panes in role order.
func (g *Group) Panes() []*Pane {
	return []*Pane{g.Primary, g.Secondary, g.Transient}
}

// Reset returns the group to a single full-width primary pane with nothing
// hosted. Callers detach entries first so lifecycle callbacks fire.
func (g *Group) Reset() {
	for _, p := range g.Panes() {
		p.Clear()
		p.UpdateParams(0, 0)
		p.attached = false
	}
	g.Primary.UpdateParams(constants.FullWeight, 0)
	g.Primary.attached = true
	g.Shift = 0
	g.Alpha = 1
	g.Animating = false
	g.Order = OrderFromRight
}

// IsSplit reports whether the primary pane shares the width.
func (g *Group) IsSplit() bool {
	return g.Secondary.attached && g.Primary.Weight <= 0.5
}

// EnsureSecondary attaches the secondary pane.
func (g *Group) EnsureSecondary() {
	g.Secondary.attached = true
}

// AttachTransient attaches the transient pane with the given parameters.
func (g *Group) AttachTransient(weight, leftOffset float64) {
	g.Transient.UpdateParams(weight, leftOffset)
	g.Transient.attached = true
}

// DetachTransient takes the transient pane out of layout. It must be empty.
func (g *Group) DetachTransient() {
	g.Transient.UpdateParams(0, 0)
	g.Transient.attached = false
}

// RotateForward makes the secondary the primary and the transient the
// secondary; the old primary becomes the transient.
func (g *Group) RotateForward() {
	g.Primary, g.Secondary, g.Transient = g.Secondary, g.Transient, g.Primary
	g.fixAttachment()
}

// RotateBackward makes the transient the primary and the primary the
// secondary; the old secondary becomes the transient.
func (g *Group) RotateBackward() {
	g.Primary, g.Secondary, g.Transient = g.Transient, g.Primary, g.Secondary
	g.fixAttachment()
}

// SwapPrimarySecondary exchanges the first two roles.
func (g *Group) SwapPrimarySecondary() {
	g.Primary, g.Secondary = g.Secondary, g.Primary
	g.fixAttachment()
}

// SwapWithTransient exchanges role r with the transient pane.
func (g *Group) SwapWithTransient(r Role) {
	switch r {
	case RolePrimary:
		g.Primary, g.Transient = g.Transient, g.Primary
	case RoleSecondary:
		g.Secondary, g.Transient = g.Transient, g.Secondary
	}
	g.fixAttachment()
}

func (g *Group) fixAttachment() {
	g.Primary.attached = true
	g.Secondary.attached = true
}

// Measure computes pane widths for a container of the given width.
func (g *Group) Measure(width int32) {
	w := float64(width)
	for _, p := range g.Panes() {
		p.width = 0
	}

	if !g.Animating {
		if g.Primary.Weight > 0.5 || !g.Secondary.attached {
			g.Primary.width = width
			return
		}
		g.Primary.width = px(w * constants.SplitPrimaryWeight)
		g.Secondary.width = width - g.Primary.width
		return
	}

	available := width
	switch g.Order {
	case OrderFromRight:
		g.Primary.width = px(w * g.Primary.Weight)
		// Panes parked left of the edge only use their visible part.
		available -= max(g.Primary.width+px(g.Primary.LeftOffset), 0)
		if g.Secondary.attached {
			if !g.Transient.attached || g.Transient.Weight == 0 {
				g.Secondary.width = max(available, 0)
			} else {
				g.Secondary.width = px(w * g.Secondary.Weight)
			}
		}
		if g.Transient.attached {
			g.Transient.width = px(w * g.Transient.Weight)
		}
	case OrderFromLeft:
		if g.Transient.attached {
			g.Transient.width = px(w * g.Transient.Weight)
			available -= max(g.Transient.width+px(g.Transient.LeftOffset), 0)
		}
		if !g.Secondary.attached || g.Secondary.Weight == 0 {
			g.Primary.width = max(available, 0)
		} else {
			g.Primary.width = px(w * g.Primary.Weight)
		}
		if g.Secondary.attached {
			g.Secondary.width = px(w * g.Secondary.Weight)
		}
	case OrderFloating:
		g.Primary.width = px(w * g.Primary.Weight)
		if g.Secondary.attached {
			g.Secondary.width = max(width-g.Primary.width, 0)
		}
		if g.Transient.attached {
			g.Transient.width = px(w * g.Transient.Weight)
		}
	}
}

// Place assigns each attached pane its rectangle in group coordinates,
// following the current order, and returns the attached panes left to right.
func (g *Group) Place(height int32) []*Pane {
	put := func(p *Pane, x int32) {
		p.rect = Rect{X: x, Y: 0, W: p.width, H: height}
	}

	if !g.Animating {
		put(g.Primary, 0)
		placed := []*Pane{g.Primary}
		if g.Secondary.attached {
			put(g.Secondary, g.Primary.width)
			placed = append(placed, g.Secondary)
		}
		return placed
	}

	var placed []*Pane
	switch g.Order {
	case OrderFromRight:
		left := px(g.Primary.LeftOffset)
		put(g.Primary, left)
		placed = append(placed, g.Primary)
		left += g.Primary.width
		if g.Secondary.attached {
			put(g.Secondary, left)
			placed = append(placed, g.Secondary)
			left += g.Secondary.width
		}
		if g.Transient.attached {
			put(g.Transient, left)
			placed = append(placed, g.Transient)
		}
	case OrderFromLeft:
		var left int32
		if g.Transient.attached {
			left = px(g.Transient.LeftOffset)
			put(g.Transient, left)
			placed = append(placed, g.Transient)
			left += g.Transient.width
		}
		put(g.Primary, left)
		placed = append(placed, g.Primary)
		left += g.Primary.width
		if g.Secondary.attached {
			put(g.Secondary, left)
			placed = append(placed, g.Secondary)
		}
	case OrderFloating:
		put(g.Primary, 0)
		placed = append(placed, g.Primary)
		if g.Secondary.attached {
			put(g.Secondary, g.Primary.width)
			placed = append(placed, g.Secondary)
		}
		if g.Transient.attached {
			put(g.Transient, px(g.Transient.LeftOffset))
			placed = append(placed, g.Transient)
		}
	}
	return placed
}

func px(v float64) int32 {
	return int32(math.Round(v))
}
