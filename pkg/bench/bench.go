package bench

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/observability"
	"github.com/matzehuels/permtree/pkg/permtree"
)

// Default sweep: sizes 1 through 9, 100 samples per size.
const (
	DefaultMinN    = 1
	DefaultMaxN    = 9
	DefaultSamples = 100
)

// Config controls a benchmark run.
type Config struct {
	MinN    int    `json:"min_n" yaml:"min_n" toml:"min"`
	MaxN    int    `json:"max_n" yaml:"max_n" toml:"max"`
	Samples int    `json:"samples" yaml:"samples" toml:"samples"`
	Seed    uint64 `json:"seed" yaml:"seed" toml:"seed"`
}

// SetDefaults fills zero fields, so zero always means unset. MinN and MaxN
// both zero select the default sweep; a run over only the empty alphabet
// cannot be requested. A zero Seed is replaced by a time-derived seed so that
// the chosen value is recorded in the report.
func (c *Config) SetDefaults() {
	if c.MinN == 0 && c.MaxN == 0 {
		c.MinN, c.MaxN = DefaultMinN, DefaultMaxN
	}
	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.MinN < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "min size must be >= 0, got %d", c.MinN)
	case c.MaxN < c.MinN:
		return errors.New(errors.ErrCodeInvalidConfig, "max size %d is below min size %d", c.MaxN, c.MinN)
	case c.MaxN > permtree.MaxTreeSize:
		return errors.New(errors.ErrCodeInvalidConfig, "max size %d exceeds %d", c.MaxN, permtree.MaxTreeSize)
	case c.Samples <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "samples must be > 0, got %d", c.Samples)
	}
	return nil
}

// Row holds the measurements for one alphabet size. Times are microseconds.
// When n! overflows, Permutations and both averages are -1.
type Row struct {
	N                          int     `json:"n" yaml:"n"`
	Permutations               int64   `json:"permutations" yaml:"permutations"`
	EnumerateMicros            int64   `json:"enumerate_us" yaml:"enumerate_us"`
	AvgEnumerationLookupMicros float64 `json:"avg_enumeration_lookup_us" yaml:"avg_enumeration_lookup_us"`
	AvgDirectLookupMicros      float64 `json:"avg_direct_lookup_us" yaml:"avg_direct_lookup_us"`
	Mismatches                 int     `json:"mismatches" yaml:"mismatches"`
}

// Report is the result of one benchmark run.
type Report struct {
	ID         string    `json:"id" yaml:"id"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	Config     Config    `json:"config" yaml:"config"`
	Rows       []Row     `json:"rows" yaml:"rows"`
}

// Mismatches returns the total number of disagreeing samples in the report.
func (r *Report) Mismatches() int {
	total := 0
	for _, row := range r.Rows {
		total += row.Mismatches
	}
	return total
}

// Run executes a benchmark. cfg is defaulted and validated first. Context
// cancellation is checked between samples; a cancelled run returns the
// context error and no report.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (*Report, error) {
	if logger == nil {
		logger = log.Default()
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Config:    cfg,
	}
	hooks := observability.Bench()
	hooks.OnRunStart(ctx, report.ID, cfg.MinN, cfg.MaxN)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1))
	for n := cfg.MinN; n <= cfg.MaxN; n++ {
		hooks.OnSizeStart(ctx, n)
		start := time.Now()
		row, err := measure(ctx, n, cfg.Samples, rng)
		hooks.OnSizeComplete(ctx, n, time.Since(start), err)
		if err != nil {
			hooks.OnRunComplete(ctx, report.ID, time.Since(report.StartedAt), err)
			return nil, err
		}

		logger.Debug("measured size",
			"n", n,
			"enumerate_us", row.EnumerateMicros,
			"lookup1_us", row.AvgEnumerationLookupMicros,
			"lookup2_us", row.AvgDirectLookupMicros)
		if row.Mismatches > 0 {
			logger.Warn("lookup strategies disagree", "n", n, "mismatches", row.Mismatches)
		}
		report.Rows = append(report.Rows, row)
	}

	report.FinishedAt = time.Now().UTC()
	hooks.OnRunComplete(ctx, report.ID, report.FinishedAt.Sub(report.StartedAt), nil)
	return report, nil
}

// measure times both strategies for an alphabet of n symbols.
func measure(ctx context.Context, n, samples int, rng *rand.Rand) (Row, error) {
	tree := permtree.New(Alphabet(n))
	row := Row{N: n}

	start := time.Now()
	tree.Enumerate()
	row.EnumerateMicros = time.Since(start).Microseconds()

	total := permtree.SafeFactorial(n)
	row.Permutations = total
	if total == -1 {
		row.AvgEnumerationLookupMicros = -1
		row.AvgDirectLookupMicros = -1
		return row, nil
	}

	var byEnum, byRank time.Duration
	for i := 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return Row{}, err
		}
		rank := rng.Int64N(total) + 1

		start = time.Now()
		a := tree.LookupByEnumeration(rank)
		byEnum += time.Since(start)

		start = time.Now()
		b := tree.LookupByDirectRank(rank)
		byRank += time.Since(start)

		if !slices.Equal(a, b) {
			row.Mismatches++
			observability.Bench().OnMismatch(ctx, n, rank)
		}
	}

	row.AvgEnumerationLookupMicros = micros(byEnum) / float64(samples)
	row.AvgDirectLookupMicros = micros(byRank) / float64(samples)
	return row, nil
}

// Alphabet returns the first n lowercase letters, continuing past 'z' into
// the following code points for n > 26.
func Alphabet(n int) []permtree.Symbol {
	out := make([]permtree.Symbol, n)
	for i := range out {
		out[i] = permtree.Symbol('a' + i)
	}
	return out
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
