//go:build linux

package evinput

import (
	"syscall"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/holoplot/go-evdev"
)

// axis is the reported range of one absolute axis.
type axis struct {
	min, max int32
}

func (a axis) scale(v int32, size float64) float64 {
	if a.max <= a.min {
		return float64(v)
	}
	return float64(v-a.min) / float64(a.max-a.min) * size
}

// decoder folds evdev events into pointer events, emitting at most one per
// SYN_REPORT. Only the first contact is followed.
type decoder struct {
	axes          map[evdev.EvCode]axis
	width, height float64

	x, y     float64
	touching bool
	reported bool
	moved    bool
	id       int64
}

func newDecoder(axes map[evdev.EvCode]axis, width, height int32) *decoder {
	return &decoder{axes: axes, width: float64(width), height: float64(height)}
}

func (d *decoder) feed(ev *evdev.InputEvent) (gesture.PointerEvent, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			d.x = d.axes[ev.Code].scale(ev.Value, d.width)
			d.moved = true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			d.y = d.axes[ev.Code].scale(ev.Value, d.height)
			d.moved = true
		case evdev.ABS_MT_TRACKING_ID:
			if ev.Value >= 0 {
				d.id = int64(ev.Value)
				d.touching = true
			} else {
				d.touching = false
			}
		}

	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.touching = ev.Value != 0
		}

	case evdev.EV_SYN:
		if ev.Code != evdev.SYN_REPORT {
			break
		}
		at := timestamp(ev.Time)
		switch {
		case d.touching && !d.reported:
			d.reported, d.moved = true, false
			return d.event(gesture.ActionDown, at), true
		case !d.touching && d.reported:
			d.reported, d.moved = false, false
			return d.event(gesture.ActionUp, at), true
		case d.touching && d.moved:
			d.moved = false
			return d.event(gesture.ActionMove, at), true
		}
	}
	return gesture.PointerEvent{}, false
}

func (d *decoder) event(action gesture.Action, at time.Duration) gesture.PointerEvent {
	return gesture.PointerEvent{
		Action:    action,
		PointerID: d.id,
		X:         d.x,
		Y:         d.y,
		Time:      at,
	}
}

func timestamp(tv syscall.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
