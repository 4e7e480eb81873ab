package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVelocityLinearMotion(t *testing.T) {
	v := NewVelocityTracker(100 * time.Millisecond)
	for i := 0; i <= 5; i++ {
		ms := time.Duration(i*10) * time.Millisecond
		v.Add(ms, float64(i*10), float64(-i*5))
	}

	vx, vy := v.Velocity()
	require.InDelta(t, 1000, vx, 1e-6)
	require.InDelta(t, -500, vy, 1e-6)
}

func TestVelocityWindowDropsOldSamples(t *testing.T) {
	v := NewVelocityTracker(100 * time.Millisecond)
	v.Add(0, 0, 0)
	v.Add(200*time.Millisecond, 0, 0)
	v.Add(210*time.Millisecond, 20, 0)

	vx, _ := v.Velocity()
	require.InDelta(t, 2000, vx, 1e-6)
}

func TestVelocityNeedsTwoSamples(t *testing.T) {
	v := NewVelocityTracker(0)
	vx, vy := v.Velocity()
	require.Zero(t, vx)
	require.Zero(t, vy)

	v.Add(10*time.Millisecond, 5, 5)
	vx, _ = v.Velocity()
	require.Zero(t, vx)
}

func TestVelocityClockReset(t *testing.T) {
	v := NewVelocityTracker(time.Second)
	v.Add(500*time.Millisecond, 0, 0)
	v.Add(510*time.Millisecond, 100, 0)
	v.Add(10*time.Millisecond, 0, 0)

	vx, _ := v.Velocity()
	require.Zero(t, vx)

	v.Reset()
	v.Add(0, 0, 0)
	v.Add(0, 10, 0)
	vx, _ = v.Velocity()
	require.Zero(t, vx)
}
