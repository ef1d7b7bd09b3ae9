package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverPrefersExplicitRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "icons"), 0755))
	icon := filepath.Join(root, "icons", "apple.png")
	require.NoError(t, os.WriteFile(icon, []byte("png"), 0644))

	r := NewResolver(root)
	assert.Equal(t, root, r.Roots()[0])
	assert.Equal(t, icon, r.Path("icons/apple.png"))
	assert.True(t, r.Exists("icons/apple.png"))
}

func TestResolverMissingPointsAtFirstRoot(t *testing.T) {
	root := t.TempDir()
	r := NewResolver(root)
	assert.Equal(t, filepath.Join(root, "sounds", "jazz.mp3"), r.Path("sounds/jazz.mp3"))
	assert.False(t, r.Exists("sounds/jazz.mp3"))
	assert.Equal(t, "", r.Path("  "))
}

func TestResolverAbsolutePassesThrough(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.png")
	assert.Equal(t, abs, NewResolver("").Path(abs))
}

func TestResolverDefaultRoots(t *testing.T) {
	assert.Equal(t, BaseDirs(), NewResolver("").Roots())
	assert.Equal(t, BaseDirs(), NewResolver("assets").Roots())
}

func TestFallbackFontsAreTrueType(t *testing.T) {
	for _, data := range [][]byte{FallbackFont(), FallbackBoldFont()} {
		require.Greater(t, len(data), 4)
		assert.Equal(t, []byte{0, 1, 0, 0}, data[:4])
	}
}
