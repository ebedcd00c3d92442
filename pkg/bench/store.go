package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/permtree/pkg/cache"
	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/observability"
)

// DefaultTTL is how long stored reports are kept.
const DefaultTTL = 30 * 24 * time.Hour

// Store persists reports in a cache.Cache. Each report is written under its
// own key and under the "latest" key.
type Store struct {
	Cache cache.Cache
	Keyer cache.Keyer
	TTL   time.Duration
}

// NewStore creates a store. A nil keyer uses cache.DefaultKeyer, a nil cache
// stores nothing, and a zero ttl uses DefaultTTL.
func NewStore(c cache.Cache, keyer cache.Keyer, ttl time.Duration) *Store {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Store{Cache: c, Keyer: keyer, TTL: ttl}
}

// Save writes r under its ID and as the latest report.
func (s *Store) Save(ctx context.Context, r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	for _, key := range []string{s.Keyer.ReportKey(r.ID), s.Keyer.LatestReportKey()} {
		if err := s.Cache.Set(ctx, key, data, s.TTL); err != nil {
			return fmt.Errorf("store report %s: %w", r.ID, err)
		}
		observability.Cache().OnCacheSet(ctx, "bench", len(data))
	}
	return nil
}

// Load returns the report with the given ID, or the latest report when id is
// empty. A missing report is an ErrCodeNotFound error.
func (s *Store) Load(ctx context.Context, id string) (*Report, error) {
	key := s.Keyer.LatestReportKey()
	if id != "" {
		key = s.Keyer.ReportKey(id)
	}

	data, hit, err := s.Cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "bench")
		if id == "" {
			return nil, errors.New(errors.ErrCodeNotFound, "no stored benchmark reports")
		}
		return nil, errors.New(errors.ErrCodeNotFound, "no stored report with id %q", id)
	}
	observability.Cache().OnCacheHit(ctx, "bench")
	return Decode(data)
}
