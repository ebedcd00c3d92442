package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/permtree"
)

// Lookup strategies.
const (
	methodBoth        = "both"
	methodEnumeration = "enumeration"
	methodDirect      = "direct"
)

// lookupCommand creates the lookup command.
func (c *CLI) lookupCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "lookup <alphabet> <rank>",
		Short: "Print the permutation at a 1-based rank",
		Long: `Print the permutation at a 1-based rank in lexicographic order.

Methods:
  enumeration  enumerate the whole tree and index into the result
  direct       decode the rank in the factorial number system
  both         run both and fail if they disagree (default)

The direct method does not build a tree and accepts up to 20 symbols.`,
		Example: `  permtree lookup abc 4
  permtree lookup abcdefghijklmnopqrst 2432902008176640000 --method direct`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(method, methodBoth, methodEnumeration, methodDirect); err != nil {
				return err
			}
			rank, err := errors.ParseRank(args[1])
			if err != nil {
				return err
			}

			p, err := lookup(args[0], rank, method)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("lookup", "rank", rank, "method", method)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
			return err
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", methodBoth, "lookup method: both, enumeration, direct")

	return cmd
}

// lookup resolves rank within alphabet s using method.
func lookup(s string, rank int64, method string) (permtree.Permutation, error) {
	if method == methodDirect {
		alphabet, err := parseAlphabet(s, permtree.MaxFactorialInput)
		if err != nil {
			return nil, err
		}
		slices.Sort(alphabet)
		p := permtree.Unrank(alphabet, rank)
		if p == nil {
			return nil, outOfRange(rank, len(alphabet))
		}
		return p, nil
	}

	tree, err := buildTree(s)
	if err != nil {
		return nil, err
	}

	var p permtree.Permutation
	switch method {
	case methodEnumeration:
		p = tree.LookupByEnumeration(rank)
	default:
		p = tree.LookupByEnumeration(rank)
		direct := tree.LookupByDirectRank(rank)
		if !slices.Equal(p, direct) {
			return nil, errors.New(errors.ErrCodeInternal,
				"lookup strategies disagree at rank %d: enumeration %q, direct %q", rank, p, direct)
		}
	}
	if p == nil {
		return nil, outOfRange(rank, tree.Size())
	}
	return p, nil
}

// rankCommand creates the rank command, the inverse of lookup.
func (c *CLI) rankCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rank <alphabet> <permutation>",
		Short:   "Print the 1-based rank of a permutation",
		Example: `  permtree rank abc bca`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := parseAlphabet(args[0], permtree.MaxFactorialInput)
			if err != nil {
				return err
			}
			slices.Sort(alphabet)

			rank := permtree.Rank(alphabet, permtree.Permutation(args[1]))
			if rank == 0 {
				return errors.New(errors.ErrCodeNotFound,
					"%q is not a permutation of %q", args[1], string(alphabet))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rank)
			return err
		},
	}
}

// factorialCommand creates the factorial command.
func (c *CLI) factorialCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Print n! or -1 when it does not fit in a signed 64-bit integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "n must be an integer: %q", args[0])
			}
			v := permtree.SafeFactorial(n)
			if v == -1 {
				loggerFromContext(cmd.Context()).Warn("factorial overflows int64", "n", n)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}
