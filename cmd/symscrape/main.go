// Package main provides the symscrape CLI for indexing the symbols of native build artifacts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ochairo/symscrape/internal/config"
	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/external-adapters/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]

	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	// Dispatch to subcommand; anything else is a list of mode tokens
	var code int
	switch command {
	case "find":
		code = runFind(ctx, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		classes, err := parseModes(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n\n", err)
			printUsage()
			os.Exit(1)
		}
		code = runIndex(ctx, classes)
	}

	stop()
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `symscrape - Index the symbols defined by object files, static libraries and DLLs

Usage:
  symscrape [dll|lib|obj ...]
  symscrape find <symbol>...

Modes:
  dll    Index exports of *.dll found on PATH  -> symbols_dll.yaml
  lib    Index public symbols of *.lib on LIB  -> symbols_lib.yaml
  obj    Index symbols of *.obj and *.o on LIB -> symbols_obj.yaml

With no mode every class is indexed, in the order dll, lib, obj.

Commands:
  find   Look up which indexed artifacts define each symbol
  help   Show this message

Environment:
  LIB                     Library search path (lib, obj)
  PATH                    Executable search path (dll)
  SYMSCRAPE_OUTPUT_DIR    Directory for index files (default: index)
  SYMSCRAPE_TOOL          Inspection tool (default: dumpbin)
  SYMSCRAPE_TOOL_TIMEOUT  Timeout per inspection, e.g. 30s (default: none)
  SYMSCRAPE_LOG_LEVEL     debug, info, warn or error (default: info)
  SYMSCRAPE_QUIET         Disable the progress bar (the summary is always printed)`)
}

// parseModes resolves mode tokens to artifact classes.
// Repeated tokens run once, at their first position.
func parseModes(args []string) ([]entities.ArtifactClass, error) {
	if len(args) == 0 {
		return entities.AllClasses(), nil
	}

	seen := make(map[string]bool)
	var classes []entities.ArtifactClass
	for _, token := range args {
		class, err := entities.ClassByToken(token)
		if err != nil {
			return nil, fmt.Errorf("unknown mode: %s", token)
		}
		if seen[class.Token] {
			continue
		}
		seen[class.Token] = true
		classes = append(classes, class)
	}
	return classes, nil
}

// loadRuntime loads configuration and builds the logger every command shares
func loadRuntime() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	return cfg, logging.New(logCfg), nil
}
