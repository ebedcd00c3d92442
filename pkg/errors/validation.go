package errors

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateAlphabet checks that s can be used as an alphabet of at most max
// symbols. An empty alphabet is valid. Control characters and invalid UTF-8
// are rejected because they cannot be printed back unambiguously.
//
// Repeated symbols are allowed; they are treated as distinct positions.
func ValidateAlphabet(s string, max int) error {
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidAlphabet, "alphabet is not valid UTF-8")
	}

	n := utf8.RuneCountInString(s)
	if max >= 0 && n > max {
		return New(ErrCodeInvalidAlphabet, "alphabet has %d symbols (max %d)", n, max)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAlphabet, "alphabet contains control character %U", r)
		}
	}
	return nil
}

// ParseRank parses a 1-based rank. Only syntax is checked here; whether the
// rank falls inside [1, N!] is decided by the lookup itself.
func ParseRank(s string) (int64, error) {
	rank, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidRank, err, "rank must be an integer: %q", s)
	}
	return rank, nil
}

// RankOutOfRange reports a rank with no permutation over n symbols, where
// total is n! or -1 when n! does not fit in an int64.
func RankOutOfRange(rank int64, n int, total int64) error {
	switch {
	case n == 0:
		return New(ErrCodeRankOutOfRange, "an empty alphabet has no permutations")
	case total == -1:
		return New(ErrCodeOverflow, "%d symbols have more than 2^63-1 permutations", n)
	}
	return New(ErrCodeRankOutOfRange, "rank %d is outside [1, %d]", rank, total)
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}
