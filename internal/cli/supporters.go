package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/depdag/pkg/query"
)

// supportersCommand creates the supporters command, which lists the vertices
// a vertex depends on.
func (c *CLI) supportersCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "supporters <manifest> <vertex>",
		Short: "List the vertices a vertex depends on",
		Long: `List the direct supporters of a vertex in declaration order.

With --all, list every vertex reachable through supporter edges in
depth-first order. A vertex reachable along several paths is listed once per
path.`,
		Example: `  # Direct dependencies
  depdag supporters graph.toml deploy

  # Transitive dependencies
  depdag supporters graph.toml deploy --all`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			name := args[1]

			g, _, err := c.openGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			op := "direct-supporters"
			if all {
				op = "all-supporters"
			}
			res, err := query.Run(cmd.Context(), g, op, name)
			if err != nil {
				return err
			}

			names, _ := res.Value.([]string)
			if len(names) == 0 {
				printInfo(w, "%s has no supporters", StyleHighlight.Render(name))
				return nil
			}

			printInfo(w, "%s depends on %s", StyleHighlight.Render(name), plural(len(names), "vertex", "vertices"))
			for _, s := range names {
				printItem(w, s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include transitive supporters")

	return cmd
}
