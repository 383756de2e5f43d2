package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	orchestrators "github.com/ochairo/symscrape/internal/domain-orchestrators"
	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/domain/services"
	"github.com/ochairo/symscrape/internal/external-adapters/yaml"
)

func runFind(ctx context.Context, symbols []string) int {
	if len(symbols) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one symbol is required\n\n")
		printUsage()
		return 1
	}

	cfg, logger, err := loadRuntime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	lookup := orchestrators.NewLookupOrchestrator(
		yaml.NewIndexRepository(cfg.OutputDir),
		services.NewSymbolService(logger),
		logger,
	)

	matches, err := lookup.FindSymbols(ctx, entities.AllClasses(), symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	printMatches(os.Stdout, symbols, matches)
	return 0
}

// printMatches writes one line per match, and a "not found" line for symbols without any
func printMatches(w io.Writer, symbols []string, matches []entities.SymbolMatch) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	for _, symbol := range symbols {
		found := false
		for _, m := range matches {
			if m.Symbol != symbol {
				continue
			}
			found = true
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Symbol, m.Class, m.Key, m.FullPath)
		}
		if !found {
			fmt.Fprintf(tw, "%s\tnot found\t\t\n", symbol)
		}
	}
}
