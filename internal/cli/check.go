package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/depdag/pkg/errors"
	"github.com/matzehuels/depdag/pkg/query"
)

// checkCommand creates the check command, which verifies a manifest is acyclic.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>",
		Short: "Verify that a manifest describes an acyclic graph",
		Long: `Load a manifest, build its graph and report whether any vertex transitively
depends on itself. The command exits non-zero when a cycle is found.`,
		Example: `  # Check a TOML manifest
  depdag check graph.toml

  # Reject the manifest at the first declaration that closes a cycle
  depdag check --fail-on-cycle graph.hcl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			w := cmd.OutOrStdout()

			g, _, err := c.openGraph(cmd.Context(), path)
			if err != nil {
				return err
			}

			if query.CheckCycles(cmd.Context(), g) {
				printError(w, "%s contains a cycle", path)
				printStats(w, g.Len(), g.EdgeCount())
				if !g.FailOnCycle() {
					printDetail(w, "Rerun with --fail-on-cycle to stop at the declaration that closes it")
				}
				return errors.New(errors.ErrCodeCycleDetected, "%s contains a cycle", path)
			}

			printSuccess(w, "%s is acyclic", path)
			printStats(w, g.Len(), g.EdgeCount())
			printNewline(w)
			printNextStep(w, "Show resolution status", appName+" status "+path)
			return nil
		},
	}
}
