// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/symscrape/internal/domain/entities"
)

// IndexRepository defines the interface for persisting symbol indices
type IndexRepository interface {
	// SaveIndex writes the index for its artifact class, replacing any previous file
	SaveIndex(ctx context.Context, index *entities.SymbolIndex) error

	// LoadIndex reads the index previously written for class
	LoadIndex(ctx context.Context, class entities.ArtifactClass) (*entities.SymbolIndex, error)
}
