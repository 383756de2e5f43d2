// Package services defines interfaces for domain service contracts.
package services

import (
	"github.com/ochairo/symscrape/internal/domain/entities"
)

// SymbolService defines the business logic for turning inspector reports into indices
type SymbolService interface {
	// ParseReport extracts symbol names from a raw report produced in the given mode
	ParseReport(mode entities.InspectMode, report string) ([]string, error)

	// NewIndexBuilder starts an empty index for one artifact class
	NewIndexBuilder(class entities.ArtifactClass) IndexBuilder

	// FindSymbol returns every artifact across indices that defines symbol
	FindSymbol(indices []*entities.SymbolIndex, symbol string) []entities.SymbolMatch
}

// IndexBuilder owns one index under construction and applies the key collision policy
type IndexBuilder interface {
	Insert(record *entities.ArtifactRecord) entities.InsertOutcome
	Index() *entities.SymbolIndex
}
