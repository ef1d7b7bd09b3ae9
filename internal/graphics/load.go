package graphics

import (
	"fmt"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slotmachine/internal/gfx"
)

// textSpacing is the extra space between glyphs when rendering text to a texture.
const textSpacing = 1

type texture struct {
	t rl.Texture2D
}

func (t *texture) Width() int32  { return t.t.Width }
func (t *texture) Height() int32 { return t.t.Height }

func (t *texture) Unload() {
	if t.t.ID != 0 {
		rl.UnloadTexture(t.t)
		t.t = rl.Texture2D{}
	}
}

type font struct {
	f    rl.Font
	size int32
}

func (f *font) Size() int32 { return f.size }

func (f *font) Unload() {
	if f.f.Texture.ID != 0 {
		rl.UnloadFont(f.f)
		f.f = rl.Font{}
	}
}

// exists checks the file before handing it to raylib, which logs and returns a default
// (or zero) resource instead of failing on missing files.
func exists(kind, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s %s: %w: %v", kind, path, gfx.ErrLoad, err)
	}
	return nil
}

// LoadTexture loads an image file (png, jpeg, ...) onto the GPU.
func (r *Renderer) LoadTexture(path string) (gfx.Texture, error) {
	if err := exists("texture", path); err != nil {
		return nil, err
	}
	t := rl.LoadTexture(path)
	if !rl.IsTextureValid(t) {
		return nil, fmt.Errorf("texture %s: %w", path, gfx.ErrLoad)
	}
	return &texture{t: t}, nil
}

// LoadFont loads a TTF/OTF file rasterised at size pixels.
func (r *Renderer) LoadFont(path string, size int32) (gfx.Font, error) {
	if err := exists("font", path); err != nil {
		return nil, err
	}
	f := rl.LoadFontEx(path, size, nil)
	if !rl.IsFontValid(f) || f.Texture.ID == rl.GetFontDefault().Texture.ID {
		return nil, fmt.Errorf("font %s: %w", path, gfx.ErrLoad)
	}
	return &font{f: f, size: size}, nil
}

// LoadFontFromMemory loads font data such as an embedded TTF. fileType includes the dot (".ttf").
func (r *Renderer) LoadFontFromMemory(fileType string, data []byte, size int32) (gfx.Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s font: empty data: %w", fileType, gfx.ErrLoad)
	}
	f := rl.LoadFontFromMemory(fileType, data, size, nil)
	if !rl.IsFontValid(f) {
		return nil, fmt.Errorf("%s font from memory: %w", fileType, gfx.ErrLoad)
	}
	return &font{f: f, size: size}, nil
}

// RenderText rasterises text with f into a new texture.
func (r *Renderer) RenderText(text string, f gfx.Font, c color.RGBA) (gfx.Texture, error) {
	ft, ok := f.(*font)
	if !ok || ft == nil {
		return nil, fmt.Errorf("text %q: no font: %w", text, gfx.ErrLoad)
	}
	img := rl.ImageTextEx(ft.f, text, float32(ft.size), textSpacing, c)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("text %q: %w", text, gfx.ErrLoad)
	}
	t := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(t) {
		return nil, fmt.Errorf("text %q texture: %w", text, gfx.ErrLoad)
	}
	return &texture{t: t}, nil
}
