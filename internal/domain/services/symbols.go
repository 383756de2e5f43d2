// Package services implements domain business logic and use cases.
package services

import (
	"fmt"
	"slices"

	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/domain/interfaces"
	"github.com/ochairo/symscrape/internal/domain/interfaces/services"
)

// symbolService implements SymbolService with pure business logic
type symbolService struct {
	logger interfaces.Logger
}

// NewSymbolService creates a new symbol service with dependency injection
func NewSymbolService(logger interfaces.Logger) services.SymbolService {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &symbolService{logger: logger}
}

// ParseReport dispatches a report to the parser for its inspect mode
func (s *symbolService) ParseReport(mode entities.InspectMode, report string) ([]string, error) {
	switch mode {
	case entities.InspectSymbols:
		return ParseObjectSymbols(report), nil
	case entities.InspectLinkerMember:
		return ParseArchiveSymbols(report), nil
	case entities.InspectExports:
		return ParseExportSymbols(report), nil
	default:
		return nil, fmt.Errorf("unsupported inspect mode: %s", mode)
	}
}

// NewIndexBuilder starts an empty index for class
func (s *symbolService) NewIndexBuilder(class entities.ArtifactClass) services.IndexBuilder {
	return NewIndexBuilder(class, s.logger)
}

// FindSymbol returns every artifact that defines symbol, in index and key order
func (s *symbolService) FindSymbol(indices []*entities.SymbolIndex, symbol string) []entities.SymbolMatch {
	var matches []entities.SymbolMatch

	for _, index := range indices {
		if index == nil {
			continue
		}
		for _, key := range index.Keys() {
			record, _ := index.Get(key)
			if !slices.Contains(record.Symbols, symbol) {
				continue
			}
			matches = append(matches, entities.SymbolMatch{
				Symbol:   symbol,
				Class:    index.Class.Name,
				Key:      key,
				FullPath: record.FullPath,
			})
		}
	}

	return matches
}
