package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depdag/pkg/query"
)

// inspectCommand creates the inspect command, which summarizes a manifest.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Summarize a manifest and its graph",
		Long: `Print the manifest's name, format and content digest together with vertex
and edge counts, the cycle policy and whether the graph is cyclic.

The digest does not depend on the file format: the same graph written as
TOML, JSON or HCL has the same digest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			path := args[0]

			format, err := c.manifestFormat(path)
			if err != nil {
				return err
			}
			g, m, err := c.openGraph(cmd.Context(), path)
			if err != nil {
				return err
			}

			policy := "lazy"
			if g.FailOnCycle() {
				policy = "fail-on-cycle"
			}

			name := m.Name
			if name == "" {
				name = "—"
			}

			printKeyValue(w, "Name", name)
			printKeyValue(w, "Format", string(format))
			printKeyValue(w, "Digest", m.Digest())
			printKeyValue(w, "Vertices", fmt.Sprint(g.Len()))
			printKeyValue(w, "Edges", fmt.Sprint(g.EdgeCount()))
			printKeyValue(w, "Cycle policy", policy)
			printKeyValue(w, "Cyclic", yesNo(query.CheckCycles(cmd.Context(), g)))
			return nil
		},
	}
}
