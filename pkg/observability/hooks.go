// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about render and display operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Hosts call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, height)
//	// ... compute and display ...
//	observability.Render().OnRenderComplete(ctx, height, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from tree render and display operations.
type RenderHooks interface {
	// OnRenderStart records the start of a render request.
	OnRenderStart(ctx context.Context, height int)

	// OnRenderComplete records the end of a render request, including the
	// display step.
	OnRenderComplete(ctx context.Context, height, rows int, duration time.Duration, err error)

	// OnDisplay records a completed display write.
	OnDisplay(ctx context.Context, format string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, int, int, time.Duration, error) {}
func (NoopRenderHooks) OnDisplay(context.Context, string, int)                           {}

// =============================================================================
// Registry
// =============================================================================

var (
	hooksMu     sync.RWMutex
	renderHooks RenderHooks = NoopRenderHooks{}
)

// SetRenderHooks registers custom render hooks. Pass nil to restore the
// no-op default.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h == nil {
		renderHooks = NoopRenderHooks{}
		return
	}
	renderHooks = h
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
