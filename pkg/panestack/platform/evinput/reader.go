//go:build linux

package evinput

import (
	"log/slog"

	"github.com/BrandonKowalski/panestack/pkg/panestack"
	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const eventBuffer = 64

// Reader pumps pointer events from a touchscreen device into a channel the
// control thread drains once per frame.
type Reader struct {
	dev     *evdev.InputDevice
	decoder *decoder
	out     chan gesture.PointerEvent
	running *atomic.Bool
	logger  *slog.Logger
}

// Open opens the device at path and scales its axes to width×height.
func Open(path string, width, height int32) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, panestack.NewHostError("open_device", err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		_ = dev.Close()
		return nil, panestack.NewHostError("read_abs_info", err)
	}
	axes := make(map[evdev.EvCode]axis, len(infos))
	for code, info := range infos {
		axes[code] = axis{min: info.Minimum, max: info.Maximum}
	}

	name, _ := dev.Name()
	logger := panestack.GetLogger().With("component", "evinput", "device", path)
	logger.Debug("touch device opened", "name", name, "axes", len(axes))

	return &Reader{
		dev:     dev,
		decoder: newDecoder(axes, width, height),
		out:     make(chan gesture.PointerEvent, eventBuffer),
		running: atomic.NewBool(false),
		logger:  logger,
	}, nil
}

// Events returns the pointer event stream. It is closed when the reader
// stops.
func (r *Reader) Events() <-chan gesture.PointerEvent {
	return r.out
}

// Start begins reading on a new goroutine.
func (r *Reader) Start() {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	go r.loop()
}

// Running reports whether the read loop is active.
func (r *Reader) Running() bool {
	return r.running.Load()
}

func (r *Reader) loop() {
	defer close(r.out)
	for r.running.Load() {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.running.Load() {
				r.logger.Error("touch device read failed", "error", err)
			}
			r.running.Store(false)
			return
		}
		if pe, ok := r.decoder.feed(ev); ok {
			select {
			case r.out <- pe:
			default:
				r.logger.Debug("pointer event dropped; consumer is behind", "action", pe.Action.String())
			}
		}
	}
}

// Close stops the loop and closes the device.
func (r *Reader) Close() error {
	r.running.Store(false)
	return r.dev.Close()
}
