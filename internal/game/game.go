// Package game runs the slot machine: it loads the cabinet, polls input, advances the reels
// and draws every frame. Game owns every widget and reel; the platform is borrowed and must
// outlive the Game.
package game

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"slotmachine/internal/assets"
	"slotmachine/internal/clock"
	"slotmachine/internal/config"
	"slotmachine/internal/debug"
	"slotmachine/internal/gfx"
	"slotmachine/internal/logger"
	"slotmachine/internal/reel"
	"slotmachine/internal/ui"
)

// ErrNoIcons is returned by Load when a reel has no icon to show.
var ErrNoIcons = errors.New("no reel icons could be loaded")

// FPS meter placement relative to the bottom-left corner.
const (
	fpsX      = 10
	fpsBottom = 30
)

var clearColor = color.RGBA{255, 255, 255, 255}

// NewRand returns the reel PRNG. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Game struct {
	cfg      config.Config
	platform gfx.Platform
	clk      clock.Clock
	rng      *rand.Rand
	log      *logger.Logger
	assets   *assets.Resolver
	palette  ui.Palette

	background *ui.Background
	frame      *ui.Frame
	button     *ui.Button
	fps        *debug.FPSMeter
	reels      []*reel.Reel
	music      gfx.Music
	fonts      []gfx.Font

	spinning bool
	quit     bool
	lastTime time.Duration
	events   []gfx.Event
}

// New returns a game drawing on platform. Nothing is loaded until Load. A nil rng is
// seeded from cfg.Seed.
func New(cfg config.Config, platform gfx.Platform, clk clock.Clock, rng *rand.Rand, log *logger.Logger, res *assets.Resolver) *Game {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	if log == nil {
		log = logger.Discard()
	}
	if res == nil {
		res = assets.NewResolver("")
	}
	return &Game{
		cfg:      cfg,
		platform: platform,
		clk:      clk,
		rng:      rng,
		log:      log,
		assets:   res,
		palette:  ui.DefaultPalette(),
	}
}

// Load builds the cabinet. Missing textures, fonts and sounds are logged and drawn with
// fallbacks; only a reel without icons fails. Close releases whatever was loaded either way.
func (g *Game) Load() error {
	if rejected := g.palette.Override(g.cfg.Colors); len(rejected) > 0 {
		g.log.Warnf("ignoring colours %v", rejected)
	}
	w, h := g.platform.Size()

	g.background = ui.NewBackground(g.platform, g.platform, g.palette)
	if err := g.background.Load(g.assets.Path(g.cfg.Assets.Background)); err != nil {
		g.log.Warnf("%v", err)
	}

	g.frame = ui.NewFrame(g.platform, g.platform, g.palette, g.cfg.Reels.Count)
	g.frame.SetDimensions(g.cfg.Reels.FrameWidth, g.cfg.Reels.FrameHeight)
	if err := g.frame.LoadBottomTexture(g.assets.Path(g.cfg.Assets.FrameBottom)); err != nil {
		g.log.Warnf("%v", err)
	}
	if err := g.frame.LoadHeaderTexture(g.assets.Path(g.cfg.Assets.FrameHeader)); err != nil {
		g.log.Warnf("%v", err)
	}

	fpsFont := g.loadFont(g.cfg.Assets.FPSFont, g.cfg.FPSFontSize, assets.FallbackFont())
	g.fps = debug.NewFPSMeter(g.platform, g.platform, fpsFont, g.clk, g.log)
	g.fps.ShowMemAlloc = g.cfg.ShowMemAlloc
	g.fps.Start()

	bc := g.cfg.Button
	rect := gfx.NewRect(w/2+bc.OffsetX, h-bc.OffsetY, bc.Width, bc.Height)
	g.button = ui.NewButton(g.platform, g.platform, g.clk, g.log, g.palette, rect, bc.Label)
	if err := g.button.SetFont(g.loadFont(g.cfg.Assets.ButtonFont, bc.FontSize, assets.FallbackBoldFont())); err != nil {
		g.log.Warnf("%v", err)
	}
	if s, err := g.platform.LoadSound(g.assets.Path(g.cfg.Assets.ClickSound)); err != nil {
		g.log.Warnf("click sound: %v", err)
	} else {
		g.button.SetClickSound(s)
	}

	if err := g.loadReels(); err != nil {
		return err
	}

	if m, err := g.platform.LoadMusic(g.assets.Path(g.cfg.Assets.Music)); err != nil {
		g.log.Warnf("background music: %v", err)
	} else {
		g.music = m
		g.music.SetVolume(g.cfg.MusicVolume)
		g.music.Play(true)
	}

	g.lastTime = g.clk.Now()
	g.log.Infof("loaded %d reels, frame %v", len(g.reels), g.frame.Rect())
	return nil
}

// loadFont tries the configured font, then the embedded one. A nil result is tolerated by
// the widgets, which then draw no text.
func (g *Game) loadFont(rel string, size int32, fallback []byte) gfx.Font {
	f, err := g.platform.LoadFont(g.assets.Path(rel), size)
	if err == nil {
		g.fonts = append(g.fonts, f)
		return f
	}
	g.log.Warnf("font: %v, using embedded font", err)
	f, err = g.platform.LoadFontFromMemory(".ttf", fallback, size)
	if err != nil {
		g.log.Errorf("embedded font: %v", err)
		return nil
	}
	g.fonts = append(g.fonts, f)
	return f
}

// loadReels creates one reel per frame column. Each reel owns its own icon textures.
func (g *Game) loadReels() error {
	paths := make([]string, len(g.cfg.Assets.Icons))
	for i, rel := range g.cfg.Assets.Icons {
		paths[i] = g.assets.Path(rel)
	}
	opts := reel.Options{
		SpinDuration: g.cfg.Reels.SpinDuration,
		SpeedMin:     g.cfg.Reels.SpeedMin,
		SpeedMax:     g.cfg.Reels.SpeedMax,
		Clock:        g.clk,
		Rand:         g.rng,
		Log:          g.log,
	}
	for i := 0; i < g.cfg.Reels.Count; i++ {
		icons, errs := reel.LoadIcons(g.platform, paths)
		if i == 0 {
			for _, err := range errs {
				g.log.Warnf("%v", err)
			}
		}
		if len(icons) == 0 {
			return fmt.Errorf("reel %d: %w", i, ErrNoIcons)
		}
		g.reels = append(g.reels, reel.New(g.platform, g.frame.ColumnRect(i), icons, opts))
	}
	return nil
}

func (g *Game) Reels() []*reel.Reel       { return g.reels }
func (g *Game) Button() *ui.Button        { return g.button }
func (g *Game) Frame() *ui.Frame          { return g.frame }
func (g *Game) FPSMeter() *debug.FPSMeter { return g.fps }

// Spinning reports whether a spin started by the button is still in progress.
func (g *Game) Spinning() bool { return g.spinning }

// Quit reports whether the window was closed or Escape pressed.
func (g *Game) Quit() bool { return g.quit }

// HandleEvents drains pending input. Every event reaches the button; a click while the
// reels are idle starts a spin.
func (g *Game) HandleEvents() {
	g.events = g.platform.PollEvents(g.events[:0])
	for _, ev := range g.events {
		switch {
		case ev.Kind == gfx.EventQuit:
			g.quit = true
		case ev.Kind == gfx.EventKeyDown && ev.Key == gfx.KeyEscape:
			g.quit = true
		}
		g.button.HandleEvent(ev)
	}
	if !g.button.Clicked() {
		return
	}
	if !g.spinning {
		g.startSpin()
	}
	g.button.ResetClick()
}

// startSpin starts every reel, each stopping one stagger later than the one to its left.
func (g *Game) startSpin() {
	for i, r := range g.reels {
		r.StartSpin(0, time.Duration(i)*g.cfg.Reels.StopStagger)
	}
	g.spinning = true
	g.button.SetActive(false)
	g.log.Infof("spin started")
}

// Update advances the reels by delta and re-enables the button once the last reel stops.
func (g *Game) Update(delta time.Duration) {
	for _, r := range g.reels {
		r.Update(delta)
	}
	if g.spinning && g.allStopped() {
		g.spinning = false
		g.button.SetActive(true)
		g.log.Infof("all reels stopped")
	}
	if g.music != nil {
		g.music.Update()
	}
}

func (g *Game) allStopped() bool {
	for _, r := range g.reels {
		if r.IsSpinning() {
			return false
		}
	}
	return true
}

// Render draws one frame and presents it. Separators go over the reels so the icons never
// cover them.
func (g *Game) Render() {
	_, h := g.platform.Size()
	g.platform.Clear(clearColor)
	g.background.Render()
	g.frame.Render()
	for _, r := range g.reels {
		r.Render()
	}
	g.frame.RenderSeparators()
	g.button.Render()
	g.fps.Update()
	g.fps.Render(fpsX, h-fpsBottom)
	g.platform.Present()
}

// Step runs one loop iteration and reports whether the game should keep running.
func (g *Game) Step() bool {
	now := g.clk.Now()
	delta := now - g.lastTime
	g.lastTime = now

	g.HandleEvents()
	g.Update(delta)
	g.Render()
	return !g.quit
}

// Run steps until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	for g.Step() {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases everything Load created, in reverse dependency order. The platform itself
// is left to its owner.
func (g *Game) Close() {
	for _, r := range g.reels {
		r.Close()
	}
	g.reels = nil
	if g.music != nil {
		g.music.Unload()
		g.music = nil
	}
	if g.button != nil {
		g.button.Close()
		g.button = nil
	}
	if g.frame != nil {
		g.frame.Close()
		g.frame = nil
	}
	if g.background != nil {
		g.background.Close()
		g.background = nil
	}
	if g.fps != nil {
		g.fps.Close()
		g.fps = nil
	}
	for _, f := range g.fonts {
		f.Unload()
	}
	g.fonts = nil
}
