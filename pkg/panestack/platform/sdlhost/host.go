// Package sdlhost runs a panestack Container in an SDL window: it turns SDL
// input into pointer events and back presses, drives frame ticks and draws
// the pane layout with its shadows and scrim.
package sdlhost

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack"
	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/veandco/go-sdl2/sdl"
)

// Host owns the SDL window and implements the keyboard and announcement
// collaborators of a Container.
type Host struct {
	window   *Window
	palette  Palette
	textures *textureCache
	input    translator
	logger   *slog.Logger
}

// New initialises SDL video and opens the window.
func New(opts Options) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, panestack.NewHostError("sdl_init", err)
	}
	// Touch is read from finger events only.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	if opts.WindowOptions.IsZero() {
		opts.WindowOptions = WindowOptions{Resizable: true, AllowHighDPI: true}
	}
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}

	window, err := openWindow(opts.Title, opts.WindowOptions)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	h := &Host{
		window:   window,
		palette:  opts.Palette,
		textures: newTextureCache(defaultMaxCacheSize),
		input:    translator{touchOnly: opts.TouchOnly},
		logger:   panestack.GetLogger().With("component", "sdlhost"),
	}
	h.input.width, h.input.height = window.Size()
	return h, nil
}

// Window returns the SDL window wrapper.
func (h *Host) Window() *Window {
	return h.window
}

// Collaborators returns the Container host bundle backed by this window.
func (h *Host) Collaborators() panestack.Host {
	return panestack.Host{Keyboard: h, Announcer: h}
}

// HideKeyboard stops SDL text input, which hides the on-screen keyboard.
func (h *Host) HideKeyboard() {
	sdl.StopTextInput()
}

// Announce logs the text; SDL has no screen-reader bridge.
func (h *Host) Announce(text string) {
	h.logger.Info("announcement", "text", text)
}

// Run drives c until the window closes or a back press empties the stack.
// Events from extra (an evinput reader, for example) are handled alongside
// SDL input; pass nil when there is none.
func (h *Host) Run(c *panestack.Container, extra <-chan gesture.PointerEvent) error {
	w, ht := h.window.Size()
	c.Measure(w, ht)

	last := sdl.GetTicks64()
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			in := h.input.translate(event)
			switch {
			case in.Quit:
				return nil
			case in.Back:
				if !c.BackPressed() {
					return nil
				}
			case in.Resized:
				w, ht = h.window.Size()
				h.input.width, h.input.height = w, ht
				c.Measure(w, ht)
			case in.Pointer != nil:
				c.HandlePointer(in.Pointer)
			}
		}

	drain:
		for extra != nil {
			select {
			case ev, ok := <-extra:
				if !ok {
					extra = nil
					break drain
				}
				c.HandlePointer(&ev)
			default:
				break drain
			}
		}

		c.SetKeyboardVisible(sdl.IsScreenKeyboardShown(h.window.Window))

		now := sdl.GetTicks64()
		c.Tick(time.Duration(now-last) * time.Millisecond)
		last = now

		if c.Len() == 0 {
			return nil
		}

		h.draw(c.Layout())
		h.window.Present()
	}
}

// Close releases the textures, the window and SDL.
func (h *Host) Close() {
	h.textures.destroy()
	h.window.close()
	sdl.Quit()
}
