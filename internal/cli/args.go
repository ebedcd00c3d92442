package cli

import (
	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/permtree"
)

// Output formats shared by several commands.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatCSV   = "csv"
	formatTable = "table"
	formatDOT   = "dot"
	formatSVG   = "svg"
)

// parseAlphabet splits s into symbols. Commands that build a tree pass
// permtree.MaxTreeSize, direct lookups pass permtree.MaxFactorialInput.
func parseAlphabet(s string, maxSize int) ([]permtree.Symbol, error) {
	if err := errors.ValidateAlphabet(s, maxSize); err != nil {
		return nil, err
	}
	return []permtree.Symbol(s), nil
}

// buildTree validates s and builds its permutation tree.
func buildTree(s string) (*permtree.Tree, error) {
	alphabet, err := parseAlphabet(s, permtree.MaxTreeSize)
	if err != nil {
		return nil, err
	}
	return permtree.New(alphabet), nil
}

// outOfRange reports a rank with no permutation.
func outOfRange(rank int64, n int) error {
	return errors.RankOutOfRange(rank, n, permtree.SafeFactorial(n))
}
