package ui

import (
	"fmt"

	"slotmachine/internal/gfx"
)

const (
	// DefaultBottomHeight is the height of the section under the reels.
	DefaultBottomHeight = 198
	headerHeight        = 50
	// headerDrop moves the header down from one bottom-height above the frame to just over its top edge.
	headerDrop = 150

	borderThickness = 20
	sideExtension   = 5
	// verticalMargin is how far the frame is pushed above the window centre to leave room for the bottom section.
	verticalMargin = 100
)

// Frame is the cabinet around the reels: a metallic border, a dark window, golden
// separators between reel columns, a bottom section and a header. The bottom and header
// draw from optional textures and fall back to a black fill with a golden outline.
type Frame struct {
	canvas       gfx.Canvas
	palette      Palette
	rect         gfx.Rect
	columns      int
	bottomHeight int32
	bottom       *gfx.Sprite
	header       *gfx.Sprite
}

// NewFrame returns a 100x100 frame at the origin split into columns reel columns.
func NewFrame(canvas gfx.Canvas, loader gfx.Loader, palette Palette, columns int) *Frame {
	if columns < 1 {
		columns = 1
	}
	return &Frame{
		canvas:       canvas,
		palette:      palette,
		rect:         gfx.NewRect(0, 0, 100, 100),
		columns:      columns,
		bottomHeight: DefaultBottomHeight,
		bottom:       gfx.NewSprite(canvas, loader),
		header:       gfx.NewSprite(canvas, loader),
	}
}

// SetDimensions resizes the frame and centres it horizontally, leaving room below for the bottom section.
func (f *Frame) SetDimensions(w, h int32) {
	sw, sh := f.canvas.Size()
	f.rect = gfx.Rect{
		X: (sw - w) / 2,
		Y: (sh - h - verticalMargin) / 2,
		W: w,
		H: h,
	}
}

// LoadBottomTexture replaces the bottom section image.
func (f *Frame) LoadBottomTexture(path string) error {
	if err := f.bottom.LoadFromFile(path); err != nil {
		return fmt.Errorf("frame bottom: %w", err)
	}
	return nil
}

// LoadHeaderTexture replaces the header section image.
func (f *Frame) LoadHeaderTexture(path string) error {
	if err := f.header.LoadFromFile(path); err != nil {
		return fmt.Errorf("frame header: %w", err)
	}
	return nil
}

func (f *Frame) Rect() gfx.Rect      { return f.rect }
func (f *Frame) X() int32            { return f.rect.X }
func (f *Frame) Y() int32            { return f.rect.Y }
func (f *Frame) Width() int32        { return f.rect.W }
func (f *Frame) Height() int32       { return f.rect.H }
func (f *Frame) BottomHeight() int32 { return f.bottomHeight }
func (f *Frame) Columns() int        { return f.columns }

// ColumnRect returns the bounds of reel column i.
func (f *Frame) ColumnRect(i int) gfx.Rect {
	w := f.rect.W / int32(f.columns)
	return gfx.NewRect(f.rect.X+int32(i)*w, f.rect.Y, w, f.rect.H)
}

// BorderRect is the metallic surround, wider than the frame and reaching below it.
func (f *Frame) BorderRect() gfx.Rect {
	return gfx.Rect{
		X: f.rect.X - sideExtension,
		Y: f.rect.Y - sideExtension*4,
		W: f.rect.W + 2*sideExtension,
		H: f.rect.H + borderThickness,
	}
}

// BottomRect is the section directly under the frame.
func (f *Frame) BottomRect() gfx.Rect {
	const extraW, extraH = 12, 1
	return gfx.Rect{
		X: f.rect.X - extraW/2,
		Y: f.rect.Y + f.rect.H - extraH/2,
		W: f.rect.W + extraW,
		H: f.bottomHeight + extraH,
	}
}

// HeaderRect is the strip across the top edge of the frame.
func (f *Frame) HeaderRect() gfx.Rect {
	const extraW, extraH = 10, 1
	return gfx.Rect{
		X: f.rect.X - extraW/2,
		Y: f.rect.Y - f.bottomHeight - extraH + headerDrop,
		W: f.rect.W + extraW,
		H: headerHeight,
	}
}

// Render draws the border, the dark window and the bottom and header sections.
// Separators are drawn by RenderSeparators so they can go on top of the reels.
func (f *Frame) Render() {
	f.canvas.FillRect(f.BorderRect(), f.palette.FrameBorder)
	f.canvas.FillRect(f.rect, f.palette.FrameFill)
	f.drawSection(f.bottom, f.BottomRect())
	f.drawSection(f.header, f.HeaderRect())
}

// RenderSeparators draws the golden lines between reel columns.
func (f *Frame) RenderSeparators() {
	const inset = 1
	partW := f.rect.W / int32(f.columns)
	for i := 1; i < f.columns; i++ {
		x := f.rect.X + int32(i)*partW
		f.canvas.DrawLine(x, f.rect.Y+inset, x, f.rect.Y+f.rect.H-inset, f.palette.FrameTrim)
	}
}

func (f *Frame) drawSection(image *gfx.Sprite, r gfx.Rect) {
	if image.Loaded() {
		image.RenderTo(r)
		return
	}
	f.canvas.FillRect(r, f.palette.SectionFill)
	f.canvas.StrokeRect(r, f.palette.FrameTrim)
}

func (f *Frame) Close() {
	f.bottom.Free()
	f.header.Free()
}
