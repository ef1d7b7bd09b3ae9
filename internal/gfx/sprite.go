package gfx

import "image/color"

// Sprite owns at most one texture, loaded from a file or rendered from text, and draws it.
// A successful load releases the previous texture; a failed one keeps it.
type Sprite struct {
	canvas Canvas
	loader Loader
	tex    Texture
}

func NewSprite(canvas Canvas, loader Loader) *Sprite {
	return &Sprite{canvas: canvas, loader: loader}
}

// LoadFromFile loads the image at path.
func (s *Sprite) LoadFromFile(path string) error {
	tex, err := s.loader.LoadTexture(path)
	if err != nil {
		return err
	}
	s.set(tex)
	return nil
}

// LoadFromRenderedText renders text with f in colour c.
func (s *Sprite) LoadFromRenderedText(text string, c color.RGBA, f Font) error {
	tex, err := s.loader.RenderText(text, f, c)
	if err != nil {
		return err
	}
	s.set(tex)
	return nil
}

func (s *Sprite) set(tex Texture) {
	s.Free()
	s.tex = tex
}

// Loaded reports whether the sprite holds a texture.
func (s *Sprite) Loaded() bool { return s.tex != nil }

// Texture returns the held texture, or nil.
func (s *Sprite) Texture() Texture { return s.tex }

func (s *Sprite) Width() int32 {
	if s.tex == nil {
		return 0
	}
	return s.tex.Width()
}

func (s *Sprite) Height() int32 {
	if s.tex == nil {
		return 0
	}
	return s.tex.Height()
}

// Render draws the texture at its natural size with its top-left corner at (x, y).
func (s *Sprite) Render(x, y int32) {
	if s.tex == nil {
		return
	}
	s.canvas.DrawTexture(s.tex, NewRect(x, y, s.tex.Width(), s.tex.Height()))
}

// RenderTo stretches the texture over dst.
func (s *Sprite) RenderTo(dst Rect) {
	if s.tex == nil {
		return
	}
	s.canvas.DrawTexture(s.tex, dst)
}

// Free releases the texture.
func (s *Sprite) Free() {
	if s.tex != nil {
		s.tex.Unload()
		s.tex = nil
	}
}
