// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about manifest loading, queries and cycle checks. The graph
// engine in pkg/depdag never calls hooks itself; the layers above it do.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetManifestHooks(&myManifestHooks{})
//	    observability.SetQueryHooks(&myQueryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Manifest().OnLoadStart(ctx, path)
//	// ... decode and build ...
//	observability.Manifest().OnLoadComplete(ctx, path, len(m.Vertices), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Manifest Hooks
// =============================================================================

// ManifestHooks receives events from manifest loading.
type ManifestHooks interface {
	// OnLoadStart records the start of reading path.
	OnLoadStart(ctx context.Context, path string)

	// OnLoadComplete records the end of a load. vertexCount is the number of
	// declared vertices, or 0 when err is set.
	OnLoadComplete(ctx context.Context, path string, vertexCount int, duration time.Duration, err error)
}

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events from graph queries.
type QueryHooks interface {
	// OnQuery records a named query operation.
	OnQuery(ctx context.Context, op string, duration time.Duration, err error)

	// OnCycleCheck records a whole-graph cycle check.
	OnCycleCheck(ctx context.Context, vertexCount int, cyclic bool, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopManifestHooks is a no-op implementation of ManifestHooks.
type NoopManifestHooks struct{}

func (NoopManifestHooks) OnLoadStart(context.Context, string) {}
func (NoopManifestHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
}

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnQuery(context.Context, string, time.Duration, error)  {}
func (NoopQueryHooks) OnCycleCheck(context.Context, int, bool, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	manifestHooks ManifestHooks = NoopManifestHooks{}
	queryHooks    QueryHooks    = NoopQueryHooks{}
	hooksMu       sync.RWMutex
)

// SetManifestHooks registers custom manifest hooks.
// This should be called once at application startup before any manifest is loaded.
func SetManifestHooks(h ManifestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		manifestHooks = h
	}
}

// SetQueryHooks registers custom query hooks.
// This should be called once at application startup before any query runs.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// Manifest returns the registered manifest hooks.
func Manifest() ManifestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return manifestHooks
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	manifestHooks = NoopManifestHooks{}
	queryHooks = NoopQueryHooks{}
}
