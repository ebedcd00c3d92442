package cli

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permtree/pkg/permtree"
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var start int64

	cmd := &cobra.Command{
		Use:   "browse <alphabet>",
		Short: "Step through the permutations of an alphabet interactively",
		Long: `Step through the permutations of an alphabet interactively.

Rows are decoded directly from their rank, so alphabets of up to 20 symbols can
be browsed. Pressing enter prints the selected permutation and its rank.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := parseAlphabet(args[0], permtree.MaxFactorialInput)
			if err != nil {
				return err
			}
			slices.Sort(alphabet)

			model := NewBrowseModel(alphabet)
			model.moveTo(start)

			p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			if m, ok := final.(BrowseModel); ok && m.Chosen != nil {
				printKeyValue("Rank", fmt.Sprintf("%d", m.Cursor))
				printKeyValue("Permutation", m.Chosen.String())
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&start, "start", 1, "initial rank")

	return cmd
}
