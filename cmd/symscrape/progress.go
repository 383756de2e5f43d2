package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	orchestrators "github.com/ochairo/symscrape/internal/domain-orchestrators"
	"github.com/ochairo/symscrape/internal/domain/entities"
)

// CLIProgressReporter implements progress reporting with one progress bar per artifact class.
type CLIProgressReporter struct {
	quiet bool
	out   io.Writer
	bar   *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
// Bars and notes go to stderr so stdout carries only the index summary.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet, out: os.Stderr}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(class entities.ArtifactClass, total int) {
	if c.quiet {
		return
	}
	if c.bar != nil {
		_ = c.bar.Finish()
	}
	c.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(fmt.Sprintf("Indexing %s", class.Name)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.out)
		}),
	)
}

func (c *CLIProgressReporter) OnArtifactProcessed(string) {
	if c.quiet || c.bar == nil {
		return
	}
	_ = c.bar.Add(1)
}

func (c *CLIProgressReporter) OnComplete(result *orchestrators.IndexResult) {
	if c.quiet {
		return
	}
	if c.bar != nil {
		_ = c.bar.Finish()
		c.bar = nil
	}
	if result.Stats.Dropped > 0 || result.Stats.ToolFailures > 0 {
		fmt.Fprintf(c.out, "  %s: %d dropped, %d could not be inspected\n",
			result.Class.Name, result.Stats.Dropped, result.Stats.ToolFailures)
	}
}
