package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/symscrape/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/symscrape/internal/domain-orchestrators"
	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/domain/services"
	"github.com/ochairo/symscrape/internal/external-adapters/yaml"
)

func runIndex(ctx context.Context, classes []entities.ArtifactClass) int {
	cfg, logger, err := loadRuntime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	locator := gateways.NewArtifactFinder(logger)
	inspector := gateways.NewDumpbinInspector(gateways.DumpbinInspectorConfig{
		Tool:    cfg.Tool,
		Timeout: cfg.ToolTimeout,
	}, logger)
	repo := yaml.NewIndexRepository(cfg.OutputDir)

	indexOrch := orchestrators.NewIndexOrchestrator(
		locator,
		inspector,
		services.NewSymbolService(logger),
		logger,
	).WithProgress(NewCLIProgressReporter(cfg.Quiet))

	results, err := indexOrch.IndexAndSave(ctx, classes, cfg, repo)

	printSummary(os.Stdout, results, repo)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// printSummary writes one line per written index
func printSummary(w io.Writer, results []*orchestrators.IndexResult, repo *yaml.IndexRepository) {
	for _, result := range results {
		fmt.Fprintf(w, "%-16s %5d artifacts -> %s\n",
			result.Class.Name, result.Index.Len(), repo.PathFor(result.Class))
	}
}
