package sdlhost

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"slices"
	"unsafe"

	"github.com/BrandonKowalski/panestack/pkg/panestack"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/edge_shadow.svg
var edgeShadowSVG []byte

const defaultMaxCacheSize = 8

// textureCache keeps rasterised overlay textures keyed by their pixel size,
// evicting the least recently used one when full.
type textureCache struct {
	textures map[string]*sdl.Texture
	order    []string
	maxSize  int
}

func newTextureCache(maxSize int) *textureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache) get(key string) *sdl.Texture {
	texture, ok := c.textures[key]
	if ok {
		c.touch(key)
	}
	return texture
}

func (c *textureCache) put(key string, texture *sdl.Texture) {
	if _, ok := c.textures[key]; ok {
		c.textures[key].Destroy()
		c.textures[key] = texture
		c.touch(key)
		return
	}
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache) touch(key string) {
	if i := slices.Index(c.order, key); i >= 0 {
		c.order = append(slices.Delete(c.order, i, i+1), key)
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textureCache) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

// shadowTexture returns the edge-shadow gradient rasterised at w×h.
func (h *Host) shadowTexture(w, ht int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("shadow:%dx%d", w, ht)
	if t := h.textures.get(key); t != nil {
		return t, nil
	}

	img, err := rasterizeSVG(edgeShadowSVG, int(w), int(ht))
	if err != nil {
		return nil, panestack.NewHostError("rasterize_shadow", err)
	}
	t, err := textureFromRGBA(h.window.Renderer, img)
	if err != nil {
		return nil, panestack.NewHostError("create_texture", err)
	}
	h.textures.put(key, t)
	return t, nil
}

func rasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

func textureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, img.Stride,
		0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000,
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	_ = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
