package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/ochairo/symscrape/internal/domain/interfaces"
)

// ArtifactFinder provides utilities for locating build artifacts in search directories
type ArtifactFinder struct {
	logger interfaces.Logger
}

// NewArtifactFinder creates a new artifact finder
func NewArtifactFinder(logger interfaces.Logger) *ArtifactFinder {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ArtifactFinder{logger: logger}
}

// Locate lists files directly inside each directory whose name matches any pattern.
// Matching is case-insensitive, as file names on Windows are.
// Directories are visited in the given order and entries within a directory in
// lexical order, so repeated runs enumerate artifacts identically.
// Empty entries are ignored; unreadable or missing directories are skipped.
func (f *ArtifactFinder) Locate(dirs []string, patterns []string) ([]string, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	var artifacts []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		// os.ReadDir returns entries sorted by file name
		entries, err := os.ReadDir(dir)
		if err != nil {
			f.logger.Debug("skipping search directory", interfaces.F("dir", dir), interfaces.F("error", err))
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if matchesAny(strings.ToLower(entry.Name()), globs) {
				artifacts = append(artifacts, joinUncleaned(dir, entry.Name()))
			}
		}
	}

	return artifacts, nil
}

// joinUncleaned appends name to dir as written, so "." stays "./name"
// and a full path never collapses to a bare base name
func joinUncleaned(dir, name string) string {
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

func matchesAny(name string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
