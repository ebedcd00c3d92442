package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtree/pkg/errors"
)

// treeCommand creates the tree command for visualizing a permutation tree.
func (c *CLI) treeCommand() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "tree <alphabet>",
		Short: "Render the permutation tree of an alphabet",
		Long: `Render the permutation tree of an alphabet with Graphviz.

Each root-to-leaf path spells one permutation; leaves are annotated with their
1-based rank. Trees grow factorially, so alphabets beyond 5 symbols produce
very large drawings.`,
		Example: `  # DOT source on stdout
  permtree tree abc

  # SVG file
  permtree tree abcd --format svg -o tree.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, formatDOT, formatSVG); err != nil {
				return err
			}
			tree, err := buildTree(args[0])
			if err != nil {
				return err
			}

			var data []byte
			if format == formatSVG {
				data, err = tree.RenderSVG(cmd.Context())
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
			} else {
				data = []byte(tree.ToDOT())
			}

			if err := writeOutput(cmd.OutOrStdout(), data, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if output != "" {
				printSuccess("Permutation tree generated")
				printStats(tree.Size(), tree.NodeCount(), tree.Count())
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg")

	return cmd
}
