package cache

// Keyer builds cache keys for stored benchmark reports.
type Keyer interface {
	// ReportKey is the key of the report with the given run ID.
	ReportKey(id string) string

	// LatestReportKey is the key that always holds the most recent report.
	LatestReportKey() string
}

// DefaultKeyer produces unprefixed keys such as "bench:<id>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ReportKey returns "bench:<id>".
func (DefaultKeyer) ReportKey(id string) string {
	return "bench:" + id
}

// LatestReportKey returns "bench:latest".
func (DefaultKeyer) LatestReportKey() string {
	return "bench:latest"
}

// ScopedKeyer wraps a Keyer with a prefix so several machines or users can
// share one Redis instance without overwriting each other's "latest" report.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "permtree:ci-runner-3:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ReportKey returns the prefixed report key.
func (k *ScopedKeyer) ReportKey(id string) string {
	return k.prefix + k.inner.ReportKey(id)
}

// LatestReportKey returns the prefixed latest-report key.
func (k *ScopedKeyer) LatestReportKey() string {
	return k.prefix + k.inner.LatestReportKey()
}
