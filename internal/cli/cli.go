// Package cli implements the annotick command-line interface.
//
// The CLI renders demonstration charts with deliberately crowded tick labels
// and runs the annotation pipeline over them, writing the result as SVG,
// PDF, or PNG. It is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
//   - demo: render a sample chart with crowded labels, annotated
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so library calls report progress through
// the same sink.
//
// # Example
//
//	import "github.com/matzehuels/annotick/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/annotick/pkg/buildinfo"
)

// appName is the application name used for config discovery and display.
const appName = "annotick"

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
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Annotick untangles overlapping chart tick labels",
		Long:         `Annotick shifts overlapping tick labels along a chart axis until they no longer collide and draws connector lines back to their original tick positions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}
