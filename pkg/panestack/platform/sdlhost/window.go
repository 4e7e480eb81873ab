package sdlhost

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/panestack/pkg/panestack"
	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the host draws into.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		panestack.GetLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = 1024, 768
	}
	return openWindowWithSize(title, displayMode.W, displayMode.H, winOpts)
}

func openWindowWithSize(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, 1024)
		height = envSize(constants.WindowHeightEnvVar, 768)
	}

	panestack.GetLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, panestack.NewHostError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, panestack.NewHostError("create_renderer", err)
	}
	_ = renderer.SetLogicalSize(width, height)
	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envSize(key string, fallback int32) int32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		panestack.GetLogger().Warn("Invalid window size override; using default", "key", key, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size returns the logical drawing size.
func (w *Window) Size() (int32, int32) {
	width, height := w.Renderer.GetLogicalSize()
	if width == 0 || height == 0 {
		return w.Window.GetSize()
	}
	return width, height
}

// DPI returns the diagonal density of the window's display, or fallback
// when SDL cannot tell.
func (w *Window) DPI(fallback float64) float64 {
	idx, err := w.Window.GetDisplayIndex()
	if err != nil {
		return fallback
	}
	ddpi, _, _, err := sdl.GetDisplayDPI(idx)
	if err != nil || ddpi <= 0 {
		return fallback
	}
	return float64(ddpi)
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
