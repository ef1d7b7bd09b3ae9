// Package gfxtest provides an in-memory gfx.Platform that records draw calls and asset loads.
package gfxtest

import (
	"fmt"
	"image/color"

	"slotmachine/internal/gfx"
)

// Op is one recorded draw call.
type Op struct {
	Name    string // "clear", "fill", "stroke", "line", "texture", "clip", "unclip", "present"
	Rect    gfx.Rect
	Color   color.RGBA
	Texture *Texture
}

// Texture is a fake texture with a fixed size.
type Texture struct {
	Path     string
	W, H     int32
	Unloaded bool
}

func (t *Texture) Width() int32  { return t.W }
func (t *Texture) Height() int32 { return t.H }
func (t *Texture) Unload()       { t.Unloaded = true }

// Font is a fake font.
type Font struct {
	Path     string
	Px       int32
	Unloaded bool
}

func (f *Font) Size() int32 { return f.Px }
func (f *Font) Unload()     { f.Unloaded = true }

// Sound counts plays.
type Sound struct {
	Path     string
	Plays    int
	Unloaded bool
}

func (s *Sound) Play()   { s.Plays++ }
func (s *Sound) Unload() { s.Unloaded = true }

// Music records playback state.
type Music struct {
	Path     string
	Playing  bool
	Looping  bool
	Volume   float32
	Updates  int
	Unloaded bool
}

func (m *Music) Play(loop bool)      { m.Playing, m.Looping = true, loop }
func (m *Music) SetVolume(v float32) { m.Volume = v }
func (m *Music) Update()             { m.Updates++ }
func (m *Music) Unload()             { m.Unloaded = true }

// Platform is a recording gfx.Platform. Paths listed in Missing fail to load.
type Platform struct {
	W, H int32
	// TextureSize is the size given to every loaded image texture.
	TextureSize [2]int32
	Missing     map[string]bool
	Ops         []Op
	Events      []gfx.Event
	Presents    int

	Textures []*Texture
	Fonts    []*Font
	Sounds   []*Sound
	Musics   []*Music
	Texts    []string

	clips int
}

// New returns a w x h platform where every asset loads as a 64x64 texture.
func New(w, h int32) *Platform {
	return &Platform{W: w, H: h, TextureSize: [2]int32{64, 64}, Missing: map[string]bool{}}
}

// Miss marks paths as failing to load.
func (p *Platform) Miss(paths ...string) {
	for _, path := range paths {
		p.Missing[path] = true
	}
}

// Push queues events for the next PollEvents.
func (p *Platform) Push(evs ...gfx.Event) {
	p.Events = append(p.Events, evs...)
}

// Reset forgets recorded draw calls.
func (p *Platform) Reset() {
	p.Ops = p.Ops[:0]
}

// Count returns how many recorded ops have the given name.
func (p *Platform) Count(name string) int {
	n := 0
	for _, op := range p.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// OpsNamed returns the recorded ops with the given name in order.
func (p *Platform) OpsNamed(name string) []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// ClipDepth returns the number of PushClip calls without a matching PopClip.
func (p *Platform) ClipDepth() int { return p.clips }

func (p *Platform) Size() (int32, int32) { return p.W, p.H }

func (p *Platform) Clear(c color.RGBA) { p.Ops = append(p.Ops, Op{Name: "clear", Color: c}) }

func (p *Platform) FillRect(r gfx.Rect, c color.RGBA) {
	p.Ops = append(p.Ops, Op{Name: "fill", Rect: r, Color: c})
}

func (p *Platform) StrokeRect(r gfx.Rect, c color.RGBA) {
	p.Ops = append(p.Ops, Op{Name: "stroke", Rect: r, Color: c})
}

func (p *Platform) DrawLine(x1, y1, x2, y2 int32, c color.RGBA) {
	p.Ops = append(p.Ops, Op{Name: "line", Rect: gfx.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, Color: c})
}

func (p *Platform) DrawTexture(t gfx.Texture, dst gfx.Rect) {
	ft, _ := t.(*Texture)
	p.Ops = append(p.Ops, Op{Name: "texture", Rect: dst, Texture: ft})
}

func (p *Platform) PushClip(r gfx.Rect) {
	p.clips++
	p.Ops = append(p.Ops, Op{Name: "clip", Rect: r})
}

func (p *Platform) PopClip() {
	p.clips--
	p.Ops = append(p.Ops, Op{Name: "unclip"})
}

func (p *Platform) Present() {
	p.Presents++
	p.Ops = append(p.Ops, Op{Name: "present"})
}

func (p *Platform) PollEvents(dst []gfx.Event) []gfx.Event {
	dst = append(dst, p.Events...)
	p.Events = p.Events[:0]
	return dst
}

func (p *Platform) missing(path string) error {
	if p.Missing[path] {
		return fmt.Errorf("%s: %w", path, gfx.ErrLoad)
	}
	return nil
}

func (p *Platform) LoadTexture(path string) (gfx.Texture, error) {
	if err := p.missing(path); err != nil {
		return nil, err
	}
	t := &Texture{Path: path, W: p.TextureSize[0], H: p.TextureSize[1]}
	p.Textures = append(p.Textures, t)
	return t, nil
}

func (p *Platform) LoadFont(path string, size int32) (gfx.Font, error) {
	if err := p.missing(path); err != nil {
		return nil, err
	}
	f := &Font{Path: path, Px: size}
	p.Fonts = append(p.Fonts, f)
	return f, nil
}

func (p *Platform) LoadFontFromMemory(fileType string, data []byte, size int32) (gfx.Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty %s font: %w", fileType, gfx.ErrLoad)
	}
	f := &Font{Path: "memory" + fileType, Px: size}
	p.Fonts = append(p.Fonts, f)
	return f, nil
}

// RenderText makes a texture 10px wide per byte of text and as tall as the font.
func (p *Platform) RenderText(text string, f gfx.Font, c color.RGBA) (gfx.Texture, error) {
	if f == nil {
		return nil, fmt.Errorf("render %q: no font: %w", text, gfx.ErrLoad)
	}
	t := &Texture{Path: "text:" + text, W: int32(len(text)) * 10, H: f.Size()}
	p.Textures = append(p.Textures, t)
	p.Texts = append(p.Texts, text)
	return t, nil
}

func (p *Platform) LoadSound(path string) (gfx.Sound, error) {
	if err := p.missing(path); err != nil {
		return nil, err
	}
	s := &Sound{Path: path}
	p.Sounds = append(p.Sounds, s)
	return s, nil
}

func (p *Platform) LoadMusic(path string) (gfx.Music, error) {
	if err := p.missing(path); err != nil {
		return nil, err
	}
	m := &Music{Path: path}
	p.Musics = append(p.Musics, m)
	return m, nil
}

var _ gfx.Platform = (*Platform)(nil)
