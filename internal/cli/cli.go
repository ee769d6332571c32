// Package cli implements the dwdec command-line interface.
//
// The main commands are:
//   - export:  read an instance, build a structure-detection graph, and
//     write the partitioning-tool file.
//   - metrics: score a node partition of such a graph with the
//     mincut/SOED/k-metric family.
//   - detect:  build a decomposition from a .dec/.blk file or a
//     master-constraint pattern, aggregate identical blocks, and print
//     block statistics.
//
// All commands support --verbose (-v) for debug-level logging to stderr
// via charmbracelet/log, and --config for a TOML file with graph weights
// and clustering knobs.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI instance logging to w at the given level.
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

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dwdec",
		Short:        "dwdec detects and scores Dantzig-Wolfe decompositions",
		Long:         `dwdec reads MIP instances in MPS format, builds the structure-detection graphs used by Dantzig-Wolfe decomposition, exchanges them with external graph partitioners, and evaluates candidate decompositions.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.metricsCommand())
	root.AddCommand(c.detectCommand())

	return root
}
