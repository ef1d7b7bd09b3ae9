package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFileEchoAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.txt")
	l := New(path)
	var echo bytes.Buffer
	l.SetEcho(&echo)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	l.Infof("reel %d stopped", 3)
	l.Warnf("missing %s", "top.jpg")

	want := []string{
		"[2024-05-01 12:30:00] INFO reel 3 stopped",
		"[2024-05-01 12:30:00] WARN missing top.jpg",
	}
	assert.Equal(t, want, l.Lines())
	assert.Equal(t, strings.Join(want, "\n")+"\n", echo.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestDiscardKeepsLinesOnly(t *testing.T) {
	l := Discard()
	l.Errorf("boom")
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ERROR boom")
	assert.Equal(t, "", l.Path())
}

func TestLinesKeepsMostRecent(t *testing.T) {
	l := Discard()
	l.max = 3
	for i := 0; i < 5; i++ {
		l.Infof("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "line 2"))
	assert.True(t, strings.HasSuffix(lines[2], "line 4"))
}

func TestFileKeepsFullHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	l := New(path)
	l.SetEcho(nil)
	l.max = 2
	for i := 0; i < 4; i++ {
		l.Warnf("w%d", i)
	}
	assert.Len(t, l.Lines(), 2)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "WARN"))
}

func TestLinesReturnsCopy(t *testing.T) {
	l := Discard()
	l.Infof("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}
