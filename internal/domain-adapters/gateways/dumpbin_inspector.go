// Package gateways provides adapter implementations for external services and tools.
package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/domain/interfaces"
)

// DefaultInspectTool is the binary inspection tool shipped with the MSVC toolchain
const DefaultInspectTool = "dumpbin"

// modeFlags maps an inspect mode to the dumpbin option producing that report
var modeFlags = map[entities.InspectMode]string{
	entities.InspectSymbols:      "/SYMBOLS",
	entities.InspectLinkerMember: "/LINKERMEMBER",
	entities.InspectExports:      "/EXPORTS",
}

// DumpbinInspectorConfig contains configuration for running the inspection tool
type DumpbinInspectorConfig struct {
	// Tool is the executable name or path (default: dumpbin)
	Tool string
	// Timeout bounds a single invocation; zero waits indefinitely
	Timeout time.Duration
}

// DumpbinInspector runs dumpbin (or a compatible tool) against one artifact at a time
type DumpbinInspector struct {
	tool    string
	timeout time.Duration
	logger  interfaces.Logger
}

// NewDumpbinInspector creates a new inspector
func NewDumpbinInspector(config DumpbinInspectorConfig, logger interfaces.Logger) *DumpbinInspector {
	tool := config.Tool
	if tool == "" {
		tool = DefaultInspectTool
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &DumpbinInspector{
		tool:    tool,
		timeout: config.Timeout,
		logger:  logger,
	}
}

// Inspect runs the tool in the given mode and captures both output streams.
// A non-zero exit status is not an error: whatever reached stdout is still
// returned, with the exit status noted in the debug log. An error is returned
// only when the tool could not be run at all.
func (d *DumpbinInspector) Inspect(ctx context.Context, artifactPath string, mode entities.InspectMode) (*entities.InspectionReport, error) {
	flag, ok := modeFlags[mode]
	if !ok {
		return nil, fmt.Errorf("unsupported inspect mode: %s", mode)
	}

	execCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	//nolint:gosec // G204: tool and artifact path come from local configuration and directory listing
	cmd := exec.CommandContext(execCtx, d.tool, flag, artifactPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startTime := time.Now()
	err := cmd.Run()
	duration := time.Since(startTime)

	report := &entities.InspectionReport{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		//nolint:gocritic // ifElseChain: checking different error types, not suitable for switch
		if errors.As(err, &exitErr) && execCtx.Err() == nil {
			d.logger.Debug("inspection tool exited with non-zero status",
				interfaces.F("artifact", artifactPath),
				interfaces.F("exit_code", exitErr.ExitCode()),
			)
		} else if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return report, fmt.Errorf("inspection of %s timed out after %v", artifactPath, d.timeout)
		} else {
			return report, fmt.Errorf("failed to run %s on %s: %w", d.tool, artifactPath, err)
		}
	}

	d.logger.Debug("inspected artifact",
		interfaces.F("artifact", artifactPath),
		interfaces.F("mode", string(mode)),
		interfaces.F("duration", duration),
	)

	return report, nil
}
