// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/domain/interfaces"
	"github.com/ochairo/symscrape/internal/domain/interfaces/gateways"
	"github.com/ochairo/symscrape/internal/domain/interfaces/repositories"
	"github.com/ochairo/symscrape/internal/domain/interfaces/services"
)

// maxToolWarningLen caps how much of the tool's stderr is echoed per artifact
const maxToolWarningLen = 100

// SearchPathResolver supplies the directories for a search path set
type SearchPathResolver interface {
	SearchDirs(set entities.SearchPathSet) ([]string, error)
}

// IndexOrchestrator coordinates locating, inspecting, parsing and indexing artifacts
type IndexOrchestrator struct {
	locator       gateways.ArtifactLocator
	inspector     gateways.Inspector
	symbolService services.SymbolService
	logger        interfaces.Logger
	progress      ProgressReporter
}

// NewIndexOrchestrator creates a new index orchestrator
func NewIndexOrchestrator(
	locator gateways.ArtifactLocator,
	inspector gateways.Inspector,
	symbolService services.SymbolService,
	logger interfaces.Logger,
) *IndexOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &IndexOrchestrator{
		locator:       locator,
		inspector:     inspector,
		symbolService: symbolService,
		logger:        logger,
		progress:      &NoOpProgressReporter{},
	}
}

// WithProgress sets the progress reporter used by BuildIndex
func (o *IndexOrchestrator) WithProgress(progress ProgressReporter) *IndexOrchestrator {
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}
	o.progress = progress
	return o
}

// IndexStats counts what happened to each discovered artifact
type IndexStats struct {
	Discovered   int
	ToolFailures int // tool could not be run; artifact contributes nothing
	ToolWarnings int // tool wrote to stderr; artifact still parsed
	Empty        int // no symbols found
	Inserted     int
	FallbackKeys int
	Dropped      int
	Duration     time.Duration
}

// IndexResult contains one artifact class's completed index
type IndexResult struct {
	Class entities.ArtifactClass
	Index *entities.SymbolIndex
	Stats IndexStats
}

// BuildIndex scans dirs for artifacts of class and builds the class's index.
// Artifacts are processed one at a time in enumeration order. Per-artifact
// problems are logged and never abort the run; only a locator failure or a
// cancelled context does.
func (o *IndexOrchestrator) BuildIndex(ctx context.Context, class entities.ArtifactClass, dirs []string) (*IndexResult, error) {
	startTime := time.Now()

	paths, err := o.locator.Locate(dirs, class.Patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s artifacts: %w", class.Name, err)
	}

	result := &IndexResult{Class: class}
	result.Stats.Discovered = len(paths)
	o.progress.OnDiscoveryComplete(class, len(paths))

	builder := o.symbolService.NewIndexBuilder(class)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s indexing interrupted: %w", class.Name, err)
		}

		symbols, err := o.scanArtifact(ctx, class, path, &result.Stats)
		if err != nil {
			return nil, err
		}

		switch builder.Insert(entities.NewArtifactRecord(path, symbols)) {
		case entities.OutcomeInserted:
			result.Stats.Inserted++
		case entities.OutcomeFallbackUsed:
			result.Stats.FallbackKeys++
		case entities.OutcomeDropped:
			result.Stats.Dropped++
		case entities.OutcomeSkipped:
			result.Stats.Empty++
		}

		o.progress.OnArtifactProcessed(path)
	}

	result.Index = builder.Index()
	result.Stats.Duration = time.Since(startTime)
	o.progress.OnComplete(result)

	o.logger.Info("built symbol index",
		interfaces.F("class", class.Name),
		interfaces.F("discovered", result.Stats.Discovered),
		interfaces.F("indexed", result.Index.Len()),
		interfaces.F("empty", result.Stats.Empty),
		interfaces.F("dropped", result.Stats.Dropped),
		interfaces.F("duration", result.Stats.Duration),
	)

	return result, nil
}

// scanArtifact inspects and parses a single artifact
func (o *IndexOrchestrator) scanArtifact(ctx context.Context, class entities.ArtifactClass, path string, stats *IndexStats) ([]string, error) {
	o.logger.Debug("inspecting artifact", interfaces.F("artifact", path))

	report, err := o.inspector.Inspect(ctx, path, class.Mode)
	if err != nil {
		stats.ToolFailures++
		o.logger.Warn("inspection failed", interfaces.F("artifact", path), interfaces.F("error", err))
		return nil, nil
	}

	if report.Stderr != "" {
		stats.ToolWarnings++
		o.logger.Warn("inspection tool warning",
			interfaces.F("artifact", path),
			interfaces.F("stderr", truncate(report.Stderr, maxToolWarningLen)),
		)
	}

	symbols, err := o.symbolService.ParseReport(class.Mode, report.Stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report for %s: %w", path, err)
	}
	return symbols, nil
}

// IndexAndSave builds and persists the index of each class in turn.
// Classes are independent: a failure in one is collected and the remaining
// classes still run. The returned error aggregates every class failure.
func (o *IndexOrchestrator) IndexAndSave(
	ctx context.Context,
	classes []entities.ArtifactClass,
	paths SearchPathResolver,
	repo repositories.IndexRepository,
) ([]*IndexResult, error) {
	var results []*IndexResult
	var errs *multierror.Error

	for _, class := range classes {
		result, err := o.indexAndSaveClass(ctx, class, paths, repo)
		if err != nil {
			o.logger.Error("indexing failed", interfaces.F("class", class.Name), interfaces.F("error", err))
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", class.Token, err))
			continue
		}
		results = append(results, result)
	}

	return results, errs.ErrorOrNil()
}

func (o *IndexOrchestrator) indexAndSaveClass(
	ctx context.Context,
	class entities.ArtifactClass,
	paths SearchPathResolver,
	repo repositories.IndexRepository,
) (*IndexResult, error) {
	dirs, err := paths.SearchDirs(class.PathSet)
	if err != nil {
		return nil, err
	}

	result, err := o.BuildIndex(ctx, class, dirs)
	if err != nil {
		return nil, err
	}

	if err := repo.SaveIndex(ctx, result.Index); err != nil {
		return nil, fmt.Errorf("failed to save index: %w", err)
	}

	return result, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
