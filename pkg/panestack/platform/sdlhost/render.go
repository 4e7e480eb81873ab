package sdlhost

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/veandco/go-sdl2/sdl"
)

// Drawer is implemented by visual roots and action bars that draw
// themselves. Frames are set by the container before every draw.
type Drawer interface {
	Draw(r *sdl.Renderer, alpha float64)
}

// Panel is a visual root that fills its frame with one colour.
type Panel struct {
	pane.Surface
	Color sdl.Color
}

func (p *Panel) Draw(r *sdl.Renderer, alpha float64) {
	fill(r, p.Color, alpha, p.Frame)
}

// Bar is an action bar drawn as a coloured strip whose active marker
// follows the indicator progress.
type Bar struct {
	pane.Surface
	H         int32
	Color     sdl.Color
	Indicator sdl.Color
	progress  float64
}

func (b *Bar) Height() int32 { return b.H }

func (b *Bar) AddToContainer() bool { return true }

func (b *Bar) SetIndicator(p float64) { b.progress = p }

// IndicatorProgress returns the last indicator value.
func (b *Bar) IndicatorProgress() float64 { return b.progress }

func (b *Bar) Draw(r *sdl.Renderer, alpha float64) {
	fill(r, b.Color, alpha, b.Frame)
	marker := b.Frame
	marker.H = max(b.Frame.H/10, 2)
	marker.Y = b.Frame.Y + b.Frame.H - marker.H
	marker.W = int32(float64(b.Frame.W) * b.progress)
	if marker.W > 0 {
		fill(r, b.Indicator, alpha, marker)
	}
}

func toSDL(r pane.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func fill(r *sdl.Renderer, c sdl.Color, alpha float64, rect pane.Rect) {
	if rect.Empty() {
		return
	}
	_ = r.SetDrawColor(c.R, c.G, c.B, uint8(float64(c.A)*alpha))
	_ = r.FillRect(toSDL(rect))
}

func (h *Host) draw(l pane.Layout) {
	r := h.window.Renderer
	bg := h.palette.Background
	_ = r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	_ = r.Clear()

	h.drawGroup(l.Back)
	if l.Scrim != nil {
		s := h.palette.Scrim
		_ = r.SetDrawColor(s.R, s.G, s.B, l.Scrim.Alpha())
		_ = r.FillRect(toSDL(l.Scrim.Rect))
	}
	if l.EdgeShadow != nil {
		h.drawShadow(*l.EdgeShadow)
	}
	h.drawGroup(l.Front)
}

func (h *Host) drawGroup(gl pane.GroupLayout) {
	if !gl.Visible || gl.Alpha <= 0 {
		return
	}
	r := h.window.Renderer
	for _, p := range gl.Placements {
		fill(r, h.palette.Pane, gl.Alpha, p.Rect)
		for _, root := range p.Pane.Roots() {
			if d, ok := root.(Drawer); ok {
				d.Draw(r, gl.Alpha)
			}
		}
		if bar := p.Pane.Bar(); bar != nil {
			if d, ok := bar.(Drawer); ok {
				d.Draw(r, gl.Alpha)
			}
		}
	}
	for _, s := range gl.Shadows {
		h.drawShadow(s)
	}
}

func (h *Host) drawShadow(o pane.Overlay) {
	if o.Rect.Empty() || o.Opacity <= 0 {
		return
	}
	t, err := h.shadowTexture(o.Rect.W, o.Rect.H)
	if err != nil {
		h.logger.Debug("shadow texture unavailable", "error", err)
		return
	}
	_ = t.SetAlphaMod(o.Alpha())
	_ = h.window.Renderer.Copy(t, nil, toSDL(o.Rect))
}
