//go:build darwin || linux

// Path helpers for locating libvlc.

package vlc

import (
	"os"
	"path/filepath"
)

// findModuleRoot walks up the directory tree from the current working directory
// to find the module root (directory containing go.mod).
func findModuleRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// existingPaths keeps the candidates that exist on disk, preserving order.
// Bare library names are kept so the dynamic loader can search for them.
func existingPaths(candidates []string) []string {
	out := candidates[:0:0]
	for _, p := range candidates {
		if !filepath.IsAbs(p) {
			out = append(out, p)
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}
