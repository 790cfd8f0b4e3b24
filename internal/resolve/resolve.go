// Package resolve picks the first existing path from a ranked candidate list.
package resolve

import (
	"path/filepath"

	"github.com/firefly-engineering/viberbox/internal/logging"
)

// ExistsFunc reports whether a candidate path is usable.
type ExistsFunc func(path string) bool

// First returns the first candidate for which exists reports true.
// Order is significant: earlier candidates win.
func First(candidates []string, exists ExistsFunc) (string, bool) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if exists(c) {
			logging.Debug("resolved candidate", "path", c)
			return c, true
		}
		logging.Debug("candidate missing", "path", c)
	}
	return "", false
}

// Candidates accumulates a ranked list of paths.
type Candidates struct {
	paths []string
	seen  map[string]bool
}

// Add appends literal paths, ignoring empty and repeated entries.
func (c *Candidates) Add(paths ...string) *Candidates {
	for _, p := range paths {
		if p == "" {
			continue
		}
		c.add(filepath.Clean(p))
	}
	return c
}

// Under appends base joined with rel. Symlinks below base are left for the
// OS to follow. An empty base is skipped, which lets callers pass unset
// environment variables directly.
func (c *Candidates) Under(base string, rel ...string) *Candidates {
	if base == "" {
		return c
	}
	c.add(filepath.Join(append([]string{base}, rel...)...))
	return c
}

func (c *Candidates) add(p string) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	if c.seen[p] {
		return
	}
	c.seen[p] = true
	c.paths = append(c.paths, p)
}

// Paths returns the candidates in rank order.
func (c *Candidates) Paths() []string {
	return append([]string(nil), c.paths...)
}

// First resolves the accumulated candidates.
func (c *Candidates) First(exists ExistsFunc) (string, bool) {
	return First(c.paths, exists)
}
