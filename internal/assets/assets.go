// Package assets finds asset files on disk and supplies the embedded fallback fonts.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// BaseDirs returns candidate asset roots (relative to process cwd), tried in order so assets
// are found whether run from the repo root or from cmd/slotmachine.
func BaseDirs() []string {
	return []string{"assets", "../../assets"}
}

// Resolver maps asset-relative paths ("icons/apple.png") to files on disk.
type Resolver struct {
	roots []string
}

// NewResolver returns a Resolver over root (if non-empty) followed by BaseDirs.
func NewResolver(root string) *Resolver {
	var roots []string
	if root = strings.TrimSpace(root); root != "" {
		roots = append(roots, root)
	}
	for _, d := range BaseDirs() {
		if d != root {
			roots = append(roots, d)
		}
	}
	return &Resolver{roots: roots}
}

// Roots returns the directories searched by Path.
func (r *Resolver) Roots() []string {
	out := make([]string, len(r.roots))
	copy(out, r.roots)
	return out
}

// Path returns the first existing file for rel under the roots. An absolute rel, or a rel
// that already exists as given, is returned unchanged. When nothing exists the path under the
// first root is returned so the loader's error names a sensible location.
func (r *Resolver) Path(rel string) string {
	rel = filepath.FromSlash(strings.TrimSpace(rel))
	if rel == "" {
		return ""
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	if _, err := os.Stat(rel); err == nil {
		return rel
	}
	for _, root := range r.roots {
		p := filepath.Join(root, rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if len(r.roots) == 0 {
		return rel
	}
	return filepath.Join(r.roots[0], rel)
}

// Exists reports whether rel resolves to an existing file.
func (r *Resolver) Exists(rel string) bool {
	p := r.Path(rel)
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}

// FallbackFont is the TTF used when a configured font cannot be loaded.
func FallbackFont() []byte {
	return goregular.TTF
}

// FallbackBoldFont is the bold TTF used for button labels when their font is missing.
func FallbackBoldFont() []byte {
	return gobold.TTF
}
