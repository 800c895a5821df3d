package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/depdag/pkg/manifest"
)

// convertCommand creates the convert command, which rewrites a manifest in
// another format.
func (c *CLI) convertCommand() *cobra.Command {
	var to string
	var output string

	cmd := &cobra.Command{
		Use:   "convert <manifest>",
		Short: "Rewrite a manifest as TOML, JSON or HCL",
		Long: `Decode a manifest and write it in another format. The converted manifest
declares the same graph and has the same digest.

The target format is taken from --to, else from the extension of --output,
else it is the source format.`,
		Example: `  # Print a TOML manifest as HCL
  depdag convert graph.toml --to hcl

  # Write JSON to a file
  depdag convert graph.hcl -o graph.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := c.manifestFormat(args[0])
			if err != nil {
				return err
			}
			m, err := manifest.LoadFormat(cmd.Context(), args[0], source)
			if err != nil {
				return err
			}

			target := source
			switch {
			case to != "":
				target, err = manifest.ParseFormat(to)
			case output != "":
				target, err = manifest.FormatFromPath(output)
			}
			if err != nil {
				return err
			}

			if output == "" {
				return manifest.Encode(m, cmd.OutOrStdout(), target)
			}

			if err := manifest.WriteFile(m, output, target); err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "Converted %s to %s", args[0], target)
			printItem(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target format: toml, json or hcl")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
