// Package entities defines core domain models and data structures.
package entities

import "path/filepath"

// ArtifactRecord represents one inspected artifact and the symbols it defines
type ArtifactRecord struct {
	FullPath string
	BaseName string
	Symbols  []string
}

// NewArtifactRecord creates a record for the artifact at fullPath
func NewArtifactRecord(fullPath string, symbols []string) *ArtifactRecord {
	return &ArtifactRecord{
		FullPath: fullPath,
		BaseName: filepath.Base(fullPath),
		Symbols:  symbols,
	}
}

// InspectionReport holds the raw output of one inspector run
type InspectionReport struct {
	Stdout string
	Stderr string
}
