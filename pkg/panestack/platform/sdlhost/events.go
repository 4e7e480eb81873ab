package sdlhost

import (
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/veandco/go-sdl2/sdl"
)

// Input is the result of translating one SDL event.
type Input struct {
	Pointer *gesture.PointerEvent
	Back    bool
	Quit    bool
	Resized bool
}

// translator turns SDL events into pointer events. Finger coordinates are
// normalised by SDL and scaled to the logical size here.
type translator struct {
	width, height int32
	touchOnly     bool
	mouseDown     bool
	finger        sdl.FingerID
	fingerDown    bool
}

func ticks(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func (t *translator) translate(event sdl.Event) Input {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Input{Quit: true}

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_LOST, sdl.WINDOWEVENT_HIDDEN, sdl.WINDOWEVENT_MINIMIZED:
			t.mouseDown, t.fingerDown = false, false
			ev := gesture.CancelEvent(ticks(e.Timestamp))
			return Input{Pointer: &ev}
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return Input{Resized: true}
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_AC_BACK, sdl.K_BACKSPACE:
				return Input{Back: true}
			}
		}

	case *sdl.MouseButtonEvent:
		if t.touchOnly || e.Button != sdl.BUTTON_LEFT {
			break
		}
		action := gesture.ActionDown
		if e.Type == sdl.MOUSEBUTTONUP {
			if !t.mouseDown {
				break
			}
			action = gesture.ActionUp
		}
		t.mouseDown = e.Type == sdl.MOUSEBUTTONDOWN
		return t.pointer(action, 0, float64(e.X), float64(e.Y), e.Timestamp)

	case *sdl.MouseMotionEvent:
		if t.touchOnly || !t.mouseDown {
			break
		}
		return t.pointer(gesture.ActionMove, 0, float64(e.X), float64(e.Y), e.Timestamp)

	case *sdl.TouchFingerEvent:
		x := float64(e.X) * float64(t.width)
		y := float64(e.Y) * float64(t.height)
		switch e.Type {
		case sdl.FINGERDOWN:
			if t.fingerDown {
				break
			}
			t.finger, t.fingerDown = e.FingerID, true
			return t.pointer(gesture.ActionDown, int64(e.FingerID), x, y, e.Timestamp)
		case sdl.FINGERMOTION:
			if t.fingerDown && e.FingerID == t.finger {
				return t.pointer(gesture.ActionMove, int64(e.FingerID), x, y, e.Timestamp)
			}
		case sdl.FINGERUP:
			if t.fingerDown && e.FingerID == t.finger {
				t.fingerDown = false
				return t.pointer(gesture.ActionUp, int64(e.FingerID), x, y, e.Timestamp)
			}
		}
	}
	return Input{}
}

func (t *translator) pointer(action gesture.Action, id int64, x, y float64, ts uint32) Input {
	return Input{Pointer: &gesture.PointerEvent{
		Action:    action,
		PointerID: id,
		X:         x,
		Y:         y,
		Time:      ticks(ts),
	}}
}
