package ui

import (
	"fmt"
	"image/color"
	"time"

	"slotmachine/internal/clock"
	"slotmachine/internal/gfx"
	"slotmachine/internal/logger"
)

// HighlightPeriod is how long the active button holds each of its two colours.
const HighlightPeriod = 500 * time.Millisecond

// Button is a clickable rectangle with a centred label. While active it blinks between its
// base and highlight colours; while inactive it shows the inactive colour and ignores clicks.
// A click sets a one-shot flag the caller clears with ResetClick.
type Button struct {
	canvas  gfx.Canvas
	clk     clock.Clock
	log     *logger.Logger
	palette Palette
	rect    gfx.Rect
	label   string

	labelTex *gfx.Sprite
	click    gfx.Sound

	active      bool
	clicked     bool
	highlighted bool
	animStart   time.Duration
	current     color.RGBA
}

// NewButton returns an active button showing the base colour.
func NewButton(canvas gfx.Canvas, loader gfx.Loader, clk clock.Clock, log *logger.Logger, palette Palette, rect gfx.Rect, label string) *Button {
	if log == nil {
		log = logger.Discard()
	}
	return &Button{
		canvas:    canvas,
		clk:       clk,
		log:       log,
		palette:   palette,
		rect:      rect,
		label:     label,
		labelTex:  gfx.NewSprite(canvas, loader),
		active:    true,
		animStart: clk.Now(),
		current:   palette.ButtonBase,
	}
}

// SetFont renders the label with font. The previous label texture is released.
func (b *Button) SetFont(font gfx.Font) error {
	if err := b.labelTex.LoadFromRenderedText(b.label, b.palette.ButtonText, font); err != nil {
		return fmt.Errorf("button label: %w", err)
	}
	return nil
}

// SetClickSound sets the effect played on a click. The button takes ownership of s.
func (b *Button) SetClickSound(s gfx.Sound) {
	if b.click != nil {
		b.click.Unload()
	}
	b.click = s
}

func (b *Button) Rect() gfx.Rect    { return b.rect }
func (b *Button) Label() string     { return b.label }
func (b *Button) Active() bool      { return b.active }
func (b *Button) Color() color.RGBA { return b.current }
func (b *Button) Clicked() bool     { return b.clicked }
func (b *Button) ResetClick()       { b.clicked = false }

// SetActive enables or disables the button. Activating restarts from the base colour.
func (b *Button) SetActive(active bool) {
	b.active = active
	if active {
		b.current = b.palette.ButtonBase
		b.highlighted = false
		b.animStart = b.clk.Now()
	}
}

// HandleEvent registers a pointer press inside the button while it is active.
func (b *Button) HandleEvent(ev gfx.Event) {
	if ev.Kind != gfx.EventMouseDown || !b.active {
		return
	}
	if !b.rect.Contains(ev.X, ev.Y) {
		return
	}
	b.clicked = true
	b.log.Infof("button %q clicked", b.label)
	if b.click != nil {
		b.click.Play()
	}
}

// animate toggles between base and highlight once per HighlightPeriod.
func (b *Button) animate() {
	now := b.clk.Now()
	if now-b.animStart <= HighlightPeriod {
		return
	}
	b.animStart = now
	if b.highlighted {
		b.current = b.palette.ButtonBase
	} else {
		b.current = b.palette.ButtonHighlight
	}
	b.highlighted = !b.highlighted
}

func (b *Button) Render() {
	if b.active {
		b.animate()
	} else {
		b.current = b.palette.ButtonInactive
	}
	b.canvas.FillRect(b.rect, b.current)
	if !b.labelTex.Loaded() {
		return
	}
	cx := b.rect.X + b.rect.W/2
	cy := b.rect.Y + b.rect.H/2
	b.labelTex.Render(cx-b.labelTex.Width()/2, cy-b.labelTex.Height()/2)
}

func (b *Button) Close() {
	b.labelTex.Free()
	if b.click != nil {
		b.click.Unload()
		b.click = nil
	}
}
