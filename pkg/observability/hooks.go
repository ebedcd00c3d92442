// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about benchmark runs, report storage, and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The permutation algorithms in pkg/permtree never call hooks; only the
// harness and surfaces around them do, so timing concerns stay out of the
// algorithms.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBenchHooks(&myBenchHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bench().OnSizeStart(ctx, n)
//	// ... time both strategies ...
//	observability.Bench().OnSizeComplete(ctx, n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Bench Hooks
// =============================================================================

// BenchHooks receives events from the benchmark harness.
type BenchHooks interface {
	// Run events
	OnRunStart(ctx context.Context, runID string, minN, maxN int)
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)

	// Per-alphabet-size events
	OnSizeStart(ctx context.Context, n int)
	OnSizeComplete(ctx context.Context, n int, duration time.Duration, err error)

	// OnMismatch records a rank where the two lookup strategies disagreed.
	OnMismatch(ctx context.Context, n int, rank int64)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from report store operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBenchHooks is a no-op implementation of BenchHooks.
type NoopBenchHooks struct{}

func (NoopBenchHooks) OnRunStart(context.Context, string, int, int)                {}
func (NoopBenchHooks) OnRunComplete(context.Context, string, time.Duration, error) {}
func (NoopBenchHooks) OnSizeStart(context.Context, int)                            {}
func (NoopBenchHooks) OnSizeComplete(context.Context, int, time.Duration, error)   {}
func (NoopBenchHooks) OnMismatch(context.Context, int, int64)                      {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	benchHooks BenchHooks = NoopBenchHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetBenchHooks registers custom benchmark hooks.
// This should be called once at application startup before any benchmark runs.
func SetBenchHooks(h BenchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		benchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Bench returns the registered benchmark hooks.
func Bench() BenchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return benchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	benchHooks = NoopBenchHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
