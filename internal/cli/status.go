package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depdag/pkg/query"
)

// statusCommand creates the status command, which tabulates payload and
// resolution state for every vertex.
func (c *CLI) statusCommand() *cobra.Command {
	var onlyUnresolved bool

	cmd := &cobra.Command{
		Use:   "status <manifest>",
		Short: "Show payload and resolution state for each vertex",
		Long: `Show one row per vertex: its payload kind, whether the payload is provided,
whether the vertex is resolved and which vertices it depends on directly.

Resolution is not computed for cyclic graphs.`,
		Example: `  # Full status table
  depdag status graph.toml

  # Only vertices that still block something
  depdag status graph.toml --unresolved`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			g, m, err := c.openGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cyclic := query.CheckCycles(cmd.Context(), g)
			rows := vertexRows(g, cyclic)

			resolved := 0
			for _, r := range rows {
				if r.Resolved {
					resolved++
				}
			}

			if onlyUnresolved {
				if cyclic {
					printWarning(w, "Graph is cyclic; resolution cannot be computed")
					return nil
				}
				filtered := rows[:0]
				for _, r := range rows {
					if !r.Resolved {
						filtered = append(filtered, r)
					}
				}
				rows = filtered
			}

			title := args[0]
			if m.Name != "" {
				title = m.Name
			}
			fmt.Fprintln(w, StyleTitle.Render(title))

			if len(rows) == 0 {
				printSuccess(w, "All %d vertices are resolved", g.Len())
				return nil
			}

			fmt.Fprintln(w, renderVertexTable(rows, -1, 0, len(rows)))

			if cyclic {
				printWarning(w, "Graph is cyclic; resolution was not computed")
			} else {
				printInfo(w, "%s of %s resolved",
					StyleNumber.Render(fmt.Sprint(resolved)),
					StyleNumber.Render(fmt.Sprint(g.Len())))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyUnresolved, "unresolved", false, "only list unresolved vertices")

	return cmd
}
