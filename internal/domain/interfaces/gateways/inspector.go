// Package gateways defines the contracts for external tools and the file system.
package gateways

import (
	"context"

	"github.com/ochairo/symscrape/internal/domain/entities"
)

// Inspector runs the binary inspection tool against a single artifact.
// A non-empty Stderr is a warning, not a failure.
type Inspector interface {
	Inspect(ctx context.Context, artifactPath string, mode entities.InspectMode) (*entities.InspectionReport, error)
}

// ArtifactLocator enumerates candidate artifacts in a set of search directories
type ArtifactLocator interface {
	// Locate returns matching files directly inside each directory (non-recursive),
	// directories in the given order and files in lexical order within a directory
	Locate(dirs []string, patterns []string) ([]string, error)
}
