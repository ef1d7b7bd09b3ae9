// Package ui holds the cabinet widgets: the background, the reel frame and the start button.
// Widgets draw through a shared gfx.Canvas they do not own.
package ui

import (
	"fmt"

	"slotmachine/internal/gfx"
)

// Background stretches one image over the whole window, or a flat colour when there is none.
type Background struct {
	canvas  gfx.Canvas
	palette Palette
	image   *gfx.Sprite
}

func NewBackground(canvas gfx.Canvas, loader gfx.Loader, palette Palette) *Background {
	return &Background{canvas: canvas, palette: palette, image: gfx.NewSprite(canvas, loader)}
}

// Load replaces the background image with the one at path.
func (b *Background) Load(path string) error {
	if err := b.image.LoadFromFile(path); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// HasTexture reports whether an image was loaded.
func (b *Background) HasTexture() bool { return b.image.Loaded() }

func (b *Background) Render() {
	w, h := b.canvas.Size()
	full := gfx.NewRect(0, 0, w, h)
	if !b.image.Loaded() {
		b.canvas.FillRect(full, b.palette.Backdrop)
		return
	}
	b.image.RenderTo(full)
}

func (b *Background) Close() {
	b.image.Free()
}
