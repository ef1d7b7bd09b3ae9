// Package gfx defines the drawing, asset loading, input and audio surface that the widgets,
// reels and game loop draw against. internal/graphics implements it with raylib; gfxtest
// implements it in memory for tests. Colours are color.RGBA, which raylib's Color aliases.
package gfx

import (
	"errors"
	"image/color"
)

// ErrLoad is returned (wrapped) by Loader methods when an asset cannot be loaded.
var ErrLoad = errors.New("asset load failed")

// Rect is an integer screen rectangle.
type Rect struct {
	X, Y, W, H int32
}

// NewRect returns Rect{x, y, w, h}.
func NewRect(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether (x, y) lies inside r. Right and bottom edges are inclusive.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Texture is a GPU image owned by whoever loaded it.
type Texture interface {
	Width() int32
	Height() int32
	Unload()
}

// Font is a loaded typeface at a fixed size.
type Font interface {
	Size() int32
	Unload()
}

// Sound is a short effect that can be played over itself.
type Sound interface {
	Play()
	Unload()
}

// Music is a streamed track. Update must be called every frame while it plays.
type Music interface {
	Play(loop bool)
	SetVolume(v float32)
	Update()
	Unload()
}

// Canvas is the per-frame drawing surface.
type Canvas interface {
	Size() (w, h int32)
	Clear(c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	DrawLine(x1, y1, x2, y2 int32, c color.RGBA)
	// DrawTexture stretches t over dst.
	DrawTexture(t Texture, dst Rect)
	// PushClip restricts drawing to r until the matching PopClip.
	PushClip(r Rect)
	PopClip()
}

// Loader creates textures, fonts and audio from files.
type Loader interface {
	LoadTexture(path string) (Texture, error)
	LoadFont(path string, size int32) (Font, error)
	LoadFontFromMemory(fileType string, data []byte, size int32) (Font, error)
	RenderText(text string, f Font, c color.RGBA) (Texture, error)
	LoadSound(path string) (Sound, error)
	LoadMusic(path string) (Music, error)
}

// Input drains pending window and device events.
type Input interface {
	// PollEvents appends every event since the last call to dst and returns it.
	PollEvents(dst []Event) []Event
}

// EventKind identifies an input event.
type EventKind int

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
	EventMouseDown
)

// Key is a keyboard key. Only the keys the game interprets are named.
type Key int32

const (
	KeyUnknown Key = 0
	KeyEscape  Key = 256
	KeySpace   Key = 32
)

// Event is a single input event. X and Y are the pointer position for EventMouseDown.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y int32
}

// Platform is everything the game needs from the window system.
type Platform interface {
	Canvas
	Loader
	Input
	// Present shows the frame drawn since the previous Present.
	Present()
}
