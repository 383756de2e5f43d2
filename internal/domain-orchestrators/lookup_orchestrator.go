package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/domain/interfaces"
	"github.com/ochairo/symscrape/internal/domain/interfaces/repositories"
	"github.com/ochairo/symscrape/internal/domain/interfaces/services"
)

// LookupOrchestrator answers which artifacts define a symbol from previously written indices
type LookupOrchestrator struct {
	repo          repositories.IndexRepository
	symbolService services.SymbolService
	logger        interfaces.Logger
}

// NewLookupOrchestrator creates a new lookup orchestrator
func NewLookupOrchestrator(repo repositories.IndexRepository, symbolService services.SymbolService, logger interfaces.Logger) *LookupOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &LookupOrchestrator{
		repo:          repo,
		symbolService: symbolService,
		logger:        logger,
	}
}

// FindSymbols loads the index of every class and looks up each symbol.
// Classes that have not been indexed yet are skipped.
func (o *LookupOrchestrator) FindSymbols(ctx context.Context, classes []entities.ArtifactClass, symbols []string) ([]entities.SymbolMatch, error) {
	var indices []*entities.SymbolIndex

	for _, class := range classes {
		index, err := o.repo.LoadIndex(ctx, class)
		if errors.Is(err, fs.ErrNotExist) {
			o.logger.Debug("no index for class", interfaces.F("class", class.Name))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s index: %w", class.Name, err)
		}
		indices = append(indices, index)
	}

	if len(indices) == 0 {
		return nil, fmt.Errorf("no symbol indices found; run an indexing pass first")
	}

	var matches []entities.SymbolMatch
	for _, symbol := range symbols {
		matches = append(matches, o.symbolService.FindSymbol(indices, symbol)...)
	}
	return matches, nil
}
