package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AllowHighDPI      bool // Request a high-DPI drawable (SDL_WINDOW_ALLOW_HIGHDPI)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AllowHighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}

	return flags
}

// Palette holds the colours used to draw panes and overlays.
type Palette struct {
	Background sdl.Color // behind both groups
	Pane       sdl.Color // fill of a pane with no drawable content
	Bar        sdl.Color // action-bar strip
	Indicator  sdl.Color // active-pane marker drawn on the bar
	Scrim      sdl.Color // alpha is taken from the layout
}

// DefaultPalette returns a neutral dark palette.
func DefaultPalette() Palette {
	return Palette{
		Background: sdl.Color{R: 0x10, G: 0x10, B: 0x12, A: 0xff},
		Pane:       sdl.Color{R: 0x24, G: 0x26, B: 0x2b, A: 0xff},
		Bar:        sdl.Color{R: 0x33, G: 0x36, B: 0x3d, A: 0xff},
		Indicator:  sdl.Color{R: 0x4f, G: 0x9d, B: 0xff, A: 0xff},
		Scrim:      sdl.Color{R: 0, G: 0, B: 0, A: 0xff},
	}
}

// Options configures a Host.
type Options struct {
	Title         string
	WindowOptions WindowOptions
	Palette       Palette
	// TouchOnly ignores mouse events, for devices whose touch panel is also
	// reported as a mouse.
	TouchOnly bool
}
