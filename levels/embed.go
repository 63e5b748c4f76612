// Package levels ships the built-in level files and watches user level
// directories for edits.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/override/shared/leveldata"
)

//go:embed *.yaml *.tmx
var FS embed.FS

// Builtin loads every embedded level, ordered by ID.
func Builtin() ([]*leveldata.Descriptor, error) {
	return leveldata.LoadAllLevels(FS, ".")
}

// Load returns the built-in levels, or the levels found in dir when dir is
// non-empty.
func Load(dir string) ([]*leveldata.Descriptor, error) {
	if dir == "" {
		return Builtin()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("levels dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels dir %s is not a directory", dir)
	}
	return leveldata.LoadAllLevels(os.DirFS(dir), ".")
}

// Find returns the level with the given ID.
func Find(all []*leveldata.Descriptor, id int) (*leveldata.Descriptor, bool) {
	for _, d := range all {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Source returns the filesystem a descriptor was loaded from.
func Source(dir string) fs.FS {
	if dir == "" {
		return FS
	}
	return os.DirFS(dir)
}
