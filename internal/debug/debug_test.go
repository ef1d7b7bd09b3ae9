package debug

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotmachine/internal/clock"
	"slotmachine/internal/gfx"
	"slotmachine/internal/gfx/gfxtest"
	"slotmachine/internal/logger"
)

func newMeter(t *testing.T) (*FPSMeter, *gfxtest.Platform, *clock.Manual) {
	t.Helper()
	p := gfxtest.New(1024, 768)
	font, err := p.LoadFont("arial.ttf", 28)
	require.NoError(t, err)
	clk := clock.NewManual(0)
	m := NewFPSMeter(p, p, font, clk, logger.Discard())
	m.Start()
	return m, p, clk
}

func TestFPSMeterRefreshesOncePerSecond(t *testing.T) {
	m, p, clk := newMeter(t)

	for i := 0; i < 59; i++ {
		clk.Advance(16 * time.Millisecond)
		m.Update()
	}
	assert.Equal(t, 0, m.FPS())
	assert.Empty(t, p.Texts)

	m.Render(10, 738)
	assert.Equal(t, 0, p.Count("texture"))

	// 60 frames over 16*60 = 960ms is still inside the window.
	clk.Advance(16 * time.Millisecond)
	m.Update()
	assert.Empty(t, p.Texts)

	clk.Advance(40 * time.Millisecond)
	m.Update()
	assert.Equal(t, 61, m.FPS())
	assert.Equal(t, []string{"FPS: 61"}, p.Texts)

	m.Render(10, 738)
	tex := p.OpsNamed("texture")
	require.Len(t, tex, 1)
	assert.Equal(t, gfx.NewRect(10, 738, 70, 28), tex[0].Rect)
}

func TestFPSMeterReplacesTexture(t *testing.T) {
	m, p, clk := newMeter(t)
	clk.Advance(time.Second)
	m.Update()
	clk.Advance(2 * time.Second)
	m.Update()
	m.Update()

	assert.Equal(t, []string{"FPS: 1", "FPS: 0"}, p.Texts)
	// p.Textures[0] is the first FPS text.
	assert.True(t, p.Textures[0].Unloaded)
	assert.False(t, p.Textures[1].Unloaded)

	m.Close()
	assert.True(t, p.Textures[1].Unloaded)
}

func TestFPSMeterMemAlloc(t *testing.T) {
	m, p, clk := newMeter(t)
	m.ShowMemAlloc = true
	clk.Advance(time.Second)
	m.Update()

	require.Len(t, p.Texts, 2)
	assert.True(t, strings.HasPrefix(p.Texts[1], "Mem: "))
	assert.True(t, strings.HasSuffix(p.Texts[1], " MiB"))

	m.Render(10, 738)
	tex := p.OpsNamed("texture")
	require.Len(t, tex, 2)
	assert.Equal(t, int32(738-28-4), tex[1].Rect.Y)
}

func TestFPSMeterWithoutFontKeepsRunning(t *testing.T) {
	p := gfxtest.New(800, 600)
	clk := clock.NewManual(0)
	log := logger.Discard()
	m := NewFPSMeter(p, p, nil, clk, log)
	m.Start()
	clk.Advance(time.Second)
	m.Update()
	assert.Equal(t, 1, m.FPS())
	m.Render(0, 0)
	assert.Equal(t, 0, p.Count("texture"))
	require.Len(t, log.Lines(), 1)
	assert.Contains(t, log.Lines()[0], "WARN fps meter")
}
