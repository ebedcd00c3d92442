package api

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/permtree"
)

// alphabetParam decodes and validates the {alphabet} path segment.
// maxSize < 0 disables the size check.
func alphabetParam(r *http.Request, maxSize int) ([]permtree.Symbol, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, "alphabet"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidAlphabet, err, "invalid alphabet encoding")
	}
	if err := errors.ValidateAlphabet(raw, maxSize); err != nil {
		return nil, err
	}
	return []permtree.Symbol(raw), nil
}

func sortedCopy(alphabet []permtree.Symbol) []permtree.Symbol {
	out := slices.Clone(alphabet)
	slices.Sort(out)
	return out
}
