// Package reel implements one vertically scrolling strip of slot machine icons: its spin/stop
// timing, the wraparound of its scroll position and the layout of the icons inside it.
//
// A reel is Idle until StartSpin, then Spinning until Update sees both the spin duration
// elapsed and the stop time reached (or StopSpin forces it). On every stop it snaps to a
// uniformly random icon slot. There is no payline or win evaluation.
package reel

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"slotmachine/internal/clock"
	"slotmachine/internal/gfx"
	"slotmachine/internal/logger"
)

const (
	// IconInset is the border kept between the reel edge and its icons.
	IconInset = 22

	DefaultSpinDuration = 2000 * time.Millisecond
	DefaultSpeedMin     = 0.5
	DefaultSpeedMax     = 0.9
)

var backdrop = color.RGBA{0, 0, 0, 255}

// Options configures a Reel. Zero durations and speeds take the defaults; a nil Rand is
// seeded from the clock.
type Options struct {
	SpinDuration time.Duration
	// SpeedMin and SpeedMax bound the random spin speed in pixels per millisecond.
	SpeedMin float64
	SpeedMax float64
	Clock    clock.Clock
	Rand     *rand.Rand
	Log      *logger.Logger
}

// Reel is one column of icons. Icons are owned by the reel and released by Close.
type Reel struct {
	canvas gfx.Canvas
	rect   gfx.Rect
	clip   gfx.Rect
	icons  []gfx.Texture

	clk clock.Clock
	rng *rand.Rand
	log *logger.Logger

	spinning     bool
	position     float64
	spinStart    time.Duration
	spinDuration time.Duration
	stopDelay    time.Duration
	stopTime     time.Duration
	speed        float64
	speedMin     float64
	speedMax     float64
}

// New returns an idle reel at position 0 drawing icons into rect on canvas.
func New(canvas gfx.Canvas, rect gfx.Rect, icons []gfx.Texture, opts Options) *Reel {
	if opts.SpinDuration <= 0 {
		opts.SpinDuration = DefaultSpinDuration
	}
	if opts.SpeedMin <= 0 {
		opts.SpeedMin = DefaultSpeedMin
	}
	if opts.SpeedMax < opts.SpeedMin {
		opts.SpeedMax = opts.SpeedMin
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}
	return &Reel{
		canvas:       canvas,
		rect:         rect,
		clip:         rect,
		icons:        icons,
		clk:          opts.Clock,
		rng:          opts.Rand,
		log:          opts.Log,
		spinDuration: opts.SpinDuration,
		speed:        opts.SpeedMin,
		speedMin:     opts.SpeedMin,
		speedMax:     opts.SpeedMax,
	}
}

// LoadIcons loads every path with loader. Paths that fail are skipped and their errors returned,
// so a reel can still run with the icons that did load.
func LoadIcons(loader gfx.Loader, paths []string) ([]gfx.Texture, []error) {
	var icons []gfx.Texture
	var errs []error
	for _, p := range paths {
		tex, err := loader.LoadTexture(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("reel icon: %w", err))
			continue
		}
		icons = append(icons, tex)
	}
	return icons, errs
}

// Rect returns the reel bounds.
func (r *Reel) Rect() gfx.Rect { return r.rect }

// IconCount returns the number of icons on the strip.
func (r *Reel) IconCount() int { return len(r.icons) }

// IconHeight returns the height of one icon slot, or 0 for an empty reel.
func (r *Reel) IconHeight() int32 {
	if len(r.icons) == 0 {
		return 0
	}
	return r.rect.H / int32(len(r.icons))
}

// Position returns the scroll offset, always in [0, height).
func (r *Reel) Position() float64 { return r.position }

// Speed returns the speed chosen for the current or last spin, in pixels per millisecond.
func (r *Reel) Speed() float64 { return r.speed }

// StopTime returns when the current spin is allowed to end.
func (r *Reel) StopTime() time.Duration { return r.stopTime }

// StopDelay returns the extra delay given to the current spin.
func (r *Reel) StopDelay() time.Duration { return r.stopDelay }

// IsSpinning reports whether the reel is scrolling.
func (r *Reel) IsSpinning() bool { return r.spinning }

// SetClipRect sets the region drawing is restricted to. Defaults to the reel bounds.
func (r *Reel) SetClipRect(clip gfx.Rect) { r.clip = clip }

// SetPosition moves the strip to p, wrapped into [0, height).
func (r *Reel) SetPosition(p float64) {
	r.position = wrap(p, float64(r.rect.H))
}

// StartSpin starts scrolling with a fresh random speed. startOffset shifts the strip before
// it moves; stopDelay is added to the spin duration so reels started together stop in turn.
func (r *Reel) StartSpin(startOffset int32, stopDelay time.Duration) {
	if stopDelay < 0 {
		stopDelay = 0
	}
	r.speed = r.randomSpeed()
	r.SetPosition(r.position + float64(startOffset))
	r.spinStart = r.clk.Now()
	r.stopDelay = stopDelay
	r.stopTime = r.spinStart + r.spinDuration + stopDelay
	r.spinning = true
}

// ShouldStop reports whether now has reached the stop time of the current spin.
func (r *Reel) ShouldStop(now time.Duration) bool {
	return now >= r.stopTime
}

// Update scrolls the strip by delta at the spin speed and stops the reel once the spin
// duration has elapsed and its stop time has come. It does nothing while idle.
func (r *Reel) Update(delta time.Duration) {
	if !r.spinning {
		return
	}
	if delta < 0 {
		delta = 0
	}
	ms := float64(delta) / float64(time.Millisecond)
	r.SetPosition(r.position - ms*r.speed)

	now := r.clk.Now()
	if now-r.spinStart >= r.spinDuration && r.ShouldStop(now) {
		r.spinning = false
		r.setRandomPosition()
		r.log.Infof("reel stopped at position %.0f", r.position)
	}
}

// StopSpin stops the reel immediately at a random icon slot.
func (r *Reel) StopSpin() {
	r.spinning = false
	r.setRandomPosition()
}

func (r *Reel) randomSpeed() float64 {
	if r.speedMax <= r.speedMin {
		return r.speedMin
	}
	return r.speedMin + r.rng.Float64()*(r.speedMax-r.speedMin)
}

func (r *Reel) setRandomPosition() {
	if len(r.icons) == 0 {
		return
	}
	k := r.rng.IntN(len(r.icons))
	r.position = float64(int32(k) * r.IconHeight())
}

// wrap is floored modulo: the result is in [0, h) for any x, negative included.
func wrap(x, h float64) float64 {
	if h <= 0 {
		return 0
	}
	m := math.Mod(x, h)
	if m < 0 {
		m += h
	}
	if m >= h {
		m = 0
	}
	return m
}

// Placement is where one icon is drawn.
type Placement struct {
	Icon int
	Rect gfx.Rect
}

// Layout returns the icon placements for the current position. The strip is laid out three
// times (one reel height above, in place and below) so the visible window never shows a gap
// while scrolling; the clip rect hides the rest. Each icon is scaled to fit its slot inside
// the inset, keeping aspect ratio, and centred horizontally.
func (r *Reel) Layout() []Placement {
	n := len(r.icons)
	if n == 0 || r.rect.Empty() {
		return nil
	}
	slotH := r.IconHeight()
	drawW := r.rect.W - 2*IconInset
	if slotH <= 0 || drawW <= 0 {
		return nil
	}
	pos := int32(r.position)
	out := make([]Placement, 0, 3*n)
	for lap := int32(-1); lap <= 1; lap++ {
		yOffset := lap*r.rect.H - pos
		for j, icon := range r.icons {
			tw, th := icon.Width(), icon.Height()
			if tw <= 0 || th <= 0 {
				continue
			}
			scale := math.Min(float64(drawW)/float64(tw), float64(slotH)/float64(th))
			w := int32(float64(tw) * scale)
			h := int32(float64(th) * scale)
			out = append(out, Placement{
				Icon: j,
				Rect: gfx.Rect{
					X: r.rect.X + IconInset + (drawW-w)/2,
					Y: r.rect.Y + yOffset + int32(j)*slotH + IconInset,
					W: w,
					H: h,
				},
			})
		}
	}
	return out
}

// Render fills the clip rect black and draws the visible icons clipped to it.
func (r *Reel) Render() {
	r.canvas.FillRect(r.clip, backdrop)
	if len(r.icons) == 0 {
		return
	}
	r.canvas.PushClip(r.clip)
	for _, p := range r.Layout() {
		r.canvas.DrawTexture(r.icons[p.Icon], p.Rect)
	}
	r.canvas.PopClip()
}

// Close releases the icon textures.
func (r *Reel) Close() {
	for _, icon := range r.icons {
		icon.Unload()
	}
	r.icons = nil
}
