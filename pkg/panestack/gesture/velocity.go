package gesture

import (
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
)

type sample struct {
	t    time.Duration
	x, y float64
}

// VelocityTracker estimates pointer velocity with a least-squares line fit
// over the samples inside a rolling time window.
type VelocityTracker struct {
	window  time.Duration
	samples []sample
}

// NewVelocityTracker creates a tracker; a non-positive window uses the default.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	if window <= 0 {
		window = constants.DefaultVelocityWindow
	}
	return &VelocityTracker{window: window, samples: make([]sample, 0, 16)}
}

// Add records a sample and forgets samples older than the window.
func (v *VelocityTracker) Add(t time.Duration, x, y float64) {
	if n := len(v.samples); n > 0 && t < v.samples[n-1].t {
		// Clock went backwards; start over.
		v.samples = v.samples[:0]
	}
	v.samples = append(v.samples, sample{t: t, x: x, y: y})

	cutoff := t - v.window
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].t < cutoff {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}

// Reset forgets every sample.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Velocity returns the estimated velocity in pixels per second.
func (v *VelocityTracker) Velocity() (vx, vy float64) {
	n := len(v.samples)
	if n < 2 {
		return 0, 0
	}

	var mt, mx, my float64
	for _, s := range v.samples {
		mt += s.t.Seconds()
		mx += s.x
		my += s.y
	}
	mt /= float64(n)
	mx /= float64(n)
	my /= float64(n)

	var stt, stx, sty float64
	for _, s := range v.samples {
		dt := s.t.Seconds() - mt
		stt += dt * dt
		stx += dt * (s.x - mx)
		sty += dt * (s.y - my)
	}
	if stt == 0 {
		return 0, 0
	}
	return stx / stt, sty / stt
}
