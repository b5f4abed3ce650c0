// Package cli implements the crossbench command-line interface.
//
// This package provides commands for evaluating arrangement algorithms over
// randomly generated layered circuits and for inspecting a single seeded
// sample. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - eval: Sample a crossing-count distribution for an arranger
//   - sample: Show one seed's connectivity and crossing counts
//   - completion: Generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/crossbench/pkg/buildinfo"
	"github.com/matzehuels/crossbench/pkg/errors"
)

// appName is the application name used for display.
const appName = "crossbench"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Crossbench benchmarks layer-ordering heuristics for layered circuits",
		Long:         `Crossbench evaluates the quality of layer-ordering (arrangement) heuristics by generating random connectivity between circuit layers, applying an arrangement, and counting edge crossings across many seeded trials.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.evalCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// parseIntList parses a comma-separated list of integers ("5,5,5").
func parseIntList(flag, s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--%s must not be empty", flag)
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "--%s: %q is not an integer", flag, part)
		}
		out[i] = n
	}
	return out, nil
}
