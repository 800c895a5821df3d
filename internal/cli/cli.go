// Package cli implements the depdag command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depdag/pkg/buildinfo"
	"github.com/matzehuels/depdag/pkg/depdag"
	"github.com/matzehuels/depdag/pkg/manifest"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "depdag"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// failOnCycle forces the eager cycle policy regardless of the manifest.
	failOnCycle bool

	// format overrides manifest format detection when non-empty.
	format string
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
		Use:   appName,
		Short: "depdag tracks dependency graphs and reports what is resolved",
		Long: `depdag loads a dependency graph from a TOML, JSON or HCL manifest, checks it
for cycles, and reports which vertices are resolved: provided with a payload
and supported only by resolved vertices.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVar(&c.failOnCycle, "fail-on-cycle", false,
		"reject the manifest as soon as a declaration closes a cycle")
	root.PersistentFlags().StringVar(&c.format, "format", "",
		"manifest format: toml, json or hcl (default: from file extension)")
	_ = root.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		formats := make([]string, len(manifest.Formats))
		for i, f := range manifest.Formats {
			formats[i] = string(f)
		}
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.statusCommand())
	root.AddCommand(c.supportersCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Graph Loading
// =============================================================================

// manifestFormat returns the --format override, or the format detected
// from path.
func (c *CLI) manifestFormat(path string) (manifest.Format, error) {
	if c.format != "" {
		return manifest.ParseFormat(c.format)
	}
	return manifest.FormatFromPath(path)
}

// openGraph loads the manifest at path and builds its graph, honoring
// --format and --fail-on-cycle.
func (c *CLI) openGraph(ctx context.Context, path string) (*depdag.Graph[string], *manifest.Manifest, error) {
	prog := newProgress(c.Logger)

	format, err := c.manifestFormat(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := manifest.LoadFormat(ctx, path, format)
	if err != nil {
		return nil, nil, err
	}

	var opts []depdag.Option
	if c.failOnCycle {
		opts = append(opts, depdag.WithFailOnCycle())
	}
	g, err := m.Build(opts...)
	if err != nil {
		return nil, nil, err
	}

	prog.done(fmt.Sprintf("Loaded %s as %s, %d vertices", path, format, g.Len()))
	return g, m, nil
}
