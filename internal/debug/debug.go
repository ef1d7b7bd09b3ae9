package debug

import (
	"fmt"
	"image/color"
	"runtime"
	"time"

	"slotmachine/internal/clock"
	"slotmachine/internal/gfx"
	"slotmachine/internal/logger"
)

// sampleWindow is how long frames are counted before the FPS text is refreshed.
const sampleWindow = time.Second

var textColor = color.RGBA{255, 255, 255, 255}

// FPSMeter counts frames and shows the rate as "FPS: N", refreshed once per second.
// With ShowMemAlloc it also shows the Go heap size above the rate.
// Text textures are only re-rendered on refresh to keep per-frame work to a draw call.
type FPSMeter struct {
	ShowMemAlloc bool

	font gfx.Font
	clk  clock.Clock
	log  *logger.Logger

	frameCount int
	start      time.Duration
	fps        int
	fpsText    *gfx.Sprite
	memText    *gfx.Sprite
	memStats   runtime.MemStats
}

// NewFPSMeter returns a meter drawing with font. Call Start before the first Update.
func NewFPSMeter(canvas gfx.Canvas, loader gfx.Loader, font gfx.Font, clk clock.Clock, log *logger.Logger) *FPSMeter {
	if log == nil {
		log = logger.Discard()
	}
	return &FPSMeter{
		font:    font,
		clk:     clk,
		log:     log,
		fpsText: gfx.NewSprite(canvas, loader),
		memText: gfx.NewSprite(canvas, loader),
	}
}

// Start resets the frame count and the sample window.
func (m *FPSMeter) Start() {
	m.start = m.clk.Now()
	m.frameCount = 0
}

// FPS returns the rate measured over the last complete window.
func (m *FPSMeter) FPS() int { return m.fps }

// Update counts one frame. Once a full window has elapsed the rate is recomputed and the
// window restarts.
func (m *FPSMeter) Update() {
	m.frameCount++
	now := m.clk.Now()
	elapsed := now - m.start
	if elapsed < sampleWindow {
		return
	}
	m.fps = int(float64(m.frameCount) / elapsed.Seconds())
	m.start = now
	m.frameCount = 0
	m.refresh()
}

func (m *FPSMeter) refresh() {
	if err := m.fpsText.LoadFromRenderedText(fmt.Sprintf("FPS: %d", m.fps), textColor, m.font); err != nil {
		m.log.Warnf("fps meter: %v", err)
	}
	if !m.ShowMemAlloc {
		return
	}
	runtime.ReadMemStats(&m.memStats)
	mb := float64(m.memStats.Alloc) / (1024 * 1024)
	if err := m.memText.LoadFromRenderedText(fmt.Sprintf("Mem: %.2f MiB", mb), textColor, m.font); err != nil {
		m.log.Warnf("fps meter: %v", err)
	}
}

// Render draws the rate with its top-left corner at (x, y). Nothing is drawn before the
// first window completes.
func (m *FPSMeter) Render(x, y int32) {
	m.fpsText.Render(x, y)
	if m.ShowMemAlloc && m.memText.Loaded() {
		// Above the rate; the meter sits at the bottom of the window.
		m.memText.Render(x, y-m.memText.Height()-4)
	}
}

func (m *FPSMeter) Close() {
	m.fpsText.Free()
	m.memText.Free()
}
