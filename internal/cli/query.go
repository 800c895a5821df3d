package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depdag/pkg/query"
)

// queryCommand creates the query command, which runs a single named
// operation and prints its raw result.
func (c *CLI) queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <manifest> <operation> [vertex]",
		Short: "Run a named graph operation",
		Long: `Run a single named operation against the manifest's graph and print the
result on stdout: booleans and counts as-is, vertex lists one name per line.

Operations:
` + operationList(),
		Example: `  depdag query graph.toml is-cyclic
  depdag query graph.toml is-resolved deploy
  depdag query graph.toml all-supporters deploy`,
		Args: cobra.RangeArgs(2, 3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return nil, cobra.ShellCompDirectiveDefault
			case 1:
				return query.Operations(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.openGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := query.Run(cmd.Context(), g, args[1], args[2:]...)
			if err != nil {
				return err
			}

			if out := res.String(); out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	return cmd
}

// operationList formats the operation table for help output.
func operationList() string {
	var b strings.Builder
	for _, op := range query.Operations() {
		use := op
		if query.NeedsVertex(op) {
			use += " <vertex>"
		}
		fmt.Fprintf(&b, "  %-28s %s\n", use, query.Help(op))
	}
	return b.String()
}
