package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/permtree"
)

// enumeration is the json/yaml shape of the enumerate output.
type enumeration struct {
	Alphabet     string   `json:"alphabet" yaml:"alphabet"`
	Total        int64    `json:"total" yaml:"total"`
	Permutations []string `json:"permutations" yaml:"permutations"`
}

// enumerateCommand creates the enumerate command.
func (c *CLI) enumerateCommand() *cobra.Command {
	var format string
	var limit int
	var ranks bool

	cmd := &cobra.Command{
		Use:   "enumerate <alphabet>",
		Short: "List every permutation of an alphabet in lexicographic order",
		Long: `List every permutation of an alphabet in lexicographic order.

The alphabet is a string; each character is one symbol. Symbols are sorted
before the tree is built, and repeated symbols count as distinct positions.`,
		Example: `  # All 6 orderings of three symbols
  permtree enumerate cab

  # First 5 of 5040, as JSON
  permtree enumerate abcdefg --limit 5 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			if limit < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "limit must be >= 0, got %d", limit)
			}
			tree, err := buildTree(args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			perms := collect(tree, limit)
			prog.done(fmt.Sprintf("Enumerated %d of %d permutations", len(perms), tree.Count()))

			return writeEnumeration(cmd.OutOrStdout(), tree, perms, format, ranks)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many permutations (0 for all)")
	cmd.Flags().BoolVar(&ranks, "ranks", false, "prefix each text line with its 1-based rank")

	return cmd
}

// collect streams at most limit permutations from tree; limit 0 means all.
func collect(tree *permtree.Tree, limit int) []permtree.Permutation {
	if limit == 0 {
		return tree.Enumerate()
	}
	var out []permtree.Permutation
	for rank, p := range tree.All() {
		if rank > int64(limit) {
			break
		}
		out = append(out, p)
	}
	return out
}

func writeEnumeration(w io.Writer, tree *permtree.Tree, perms []permtree.Permutation, format string, ranks bool) error {
	switch format {
	case formatJSON, formatYAML:
		e := enumeration{
			Alphabet:     string(tree.Alphabet()),
			Total:        tree.Count(),
			Permutations: make([]string, len(perms)),
		}
		for i, p := range perms {
			e.Permutations[i] = p.String()
		}
		if format == formatYAML {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(e); err != nil {
				return err
			}
			return enc.Close()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	default:
		for i, p := range perms {
			var err error
			if ranks {
				_, err = fmt.Fprintf(w, "%d %s\n", i+1, p)
			} else {
				_, err = fmt.Fprintln(w, p)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}
