package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// exploreCommand creates the explore command, an interactive view in which
// payloads can be toggled and resolution is recomputed on every change.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <manifest>",
		Short: "Interactively toggle payloads and watch resolution",
		Long: `Open an interactive table of the manifest's vertices. Move with the arrow
keys or j/k, press space to toggle the payload of the selected vertex and r to
restore the payloads from the manifest. Resolution is recomputed on every
redraw, so ready_file and ready_env conditions are re-checked as well.

Changes are not written back to the manifest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, m, err := c.openGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			title := m.Name
			if title == "" {
				title = args[0]
			}

			p := tea.NewProgram(NewExploreModel(title, g),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
