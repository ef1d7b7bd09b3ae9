// Package graphics is the raylib implementation of gfx.Platform: the window, 2D drawing,
// texture/font/text loading, audio and input polling.
package graphics

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slotmachine/internal/gfx"
	"slotmachine/internal/logger"
)

// ErrWindow is returned when the window or its GL context could not be created.
var ErrWindow = errors.New("graphics: window could not be created")

// Options configures the window.
type Options struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
}

// Renderer owns the window and the audio device. It must outlive every texture, font and
// sound it loads; Close it last.
type Renderer struct {
	log     *logger.Logger
	drawing bool
	audio   bool
	clips   []gfx.Rect
}

// New opens the window and the audio device. A missing audio device is logged and leaves
// the renderer silent; a missing window is fatal.
func New(opts Options, log *logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Discard()
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	if !rl.IsWindowReady() {
		return nil, ErrWindow
	}
	// ESC is handled by the game as quit; close via window button also quits.
	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	r := &Renderer{log: log}
	rl.InitAudioDevice()
	if rl.IsAudioDeviceReady() {
		r.audio = true
	} else {
		log.Warnf("audio device unavailable, running silent")
	}
	log.Infof("window %dx%d %q ready", opts.Width, opts.Height, opts.Title)
	return r, nil
}

// Size returns the window size in pixels.
func (r *Renderer) Size() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (r *Renderer) begin() {
	if !r.drawing {
		rl.BeginDrawing()
		r.drawing = true
	}
}

// Clear starts a frame and fills it with c.
func (r *Renderer) Clear(c color.RGBA) {
	r.begin()
	rl.ClearBackground(c)
}

// Present ends the frame and swaps buffers. raylib also polls input and waits out the
// target frame time here.
func (r *Renderer) Present() {
	r.begin()
	for len(r.clips) > 0 {
		r.PopClip()
	}
	rl.EndDrawing()
	r.drawing = false
}

func (r *Renderer) FillRect(rect gfx.Rect, c color.RGBA) {
	r.begin()
	rl.DrawRectangle(rect.X, rect.Y, rect.W, rect.H, c)
}

func (r *Renderer) StrokeRect(rect gfx.Rect, c color.RGBA) {
	r.begin()
	rl.DrawRectangleLines(rect.X, rect.Y, rect.W, rect.H, c)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2 int32, c color.RGBA) {
	r.begin()
	rl.DrawLine(x1, y1, x2, y2, c)
}

// DrawTexture stretches t over dst. t must come from this renderer.
func (r *Renderer) DrawTexture(t gfx.Texture, dst gfx.Rect) {
	tex, ok := t.(*texture)
	if !ok || tex == nil {
		return
	}
	r.begin()
	src := rl.NewRectangle(0, 0, float32(tex.t.Width), float32(tex.t.Height))
	to := rl.NewRectangle(float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H))
	rl.DrawTexturePro(tex.t, src, to, rl.NewVector2(0, 0), 0, rl.White)
}

// PushClip restricts drawing to rect. raylib scissor modes do not nest, so the stack is
// kept here and the innermost rectangle is the one applied.
func (r *Renderer) PushClip(rect gfx.Rect) {
	r.begin()
	if len(r.clips) > 0 {
		rl.EndScissorMode()
	}
	r.clips = append(r.clips, rect)
	rl.BeginScissorMode(rect.X, rect.Y, rect.W, rect.H)
}

func (r *Renderer) PopClip() {
	if len(r.clips) == 0 {
		return
	}
	rl.EndScissorMode()
	r.clips = r.clips[:len(r.clips)-1]
	if n := len(r.clips); n > 0 {
		top := r.clips[n-1]
		rl.BeginScissorMode(top.X, top.Y, top.W, top.H)
	}
}

// Close shuts down audio and then the window. Everything loaded must be released first.
func (r *Renderer) Close() {
	if r.drawing {
		rl.EndDrawing()
		r.drawing = false
	}
	if r.audio {
		rl.CloseAudioDevice()
		r.audio = false
	}
	rl.CloseWindow()
	r.log.Infof("window closed")
}

var _ gfx.Platform = (*Renderer)(nil)
