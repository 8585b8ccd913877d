package canvas

import (
	"image"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/state"
)

// Cache keeps the last rendered committed layer. The primitive list only
// grows by appending or is emptied, so its length and last ID identify it.
type Cache struct {
	image      image.Image
	key        cacheKey
	generation uint64
}

type cacheKey struct {
	size       state.Size
	pixelScale float32
	count      int
	lastID     string
	generation uint64
}

// Clear invalidates the cached layer.
func (c *Cache) Clear() {
	c.image = nil
	c.generation++
}

// Draw returns the cached layer for the list, calling draw when it is stale.
func (c *Cache) Draw(size state.Size, pixelScale float32, primitives []state.Primitive, draw func() image.Image) image.Image {
	key := cacheKey{size: size, pixelScale: pixelScale, count: len(primitives), generation: c.generation}
	if n := len(primitives); n > 0 {
		key.lastID = primitives[n-1].Metadata().ID
	}

	if c.image != nil && c.key == key {
		return c.image
	}
	c.image = draw()
	c.key = key
	return c.image
}

// composedFrame remembers the last overlay drawn over a content image, so
// pointer moves that leave the preview unchanged reuse it.
type composedFrame struct {
	image      image.Image
	base       image.Image
	pixelScale float32
	overlay    gesture.Overlay
}

func (f *composedFrame) Draw(base image.Image, pixelScale float32, o gesture.Overlay, draw func() image.Image) image.Image {
	if f.image != nil && f.base == base && f.pixelScale == pixelScale && f.overlay.Equal(o) {
		return f.image
	}
	f.image = draw()
	f.base = base
	f.pixelScale = pixelScale
	f.overlay = o
	return f.image
}
