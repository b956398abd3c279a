package observability

import (
	"context"
	"testing"
	"time"
)

type testRenderHooks struct {
	starts    int
	completes int
	displays  int
}

func (h *testRenderHooks) OnRenderStart(context.Context, int) { h.starts++ }
func (h *testRenderHooks) OnRenderComplete(context.Context, int, int, time.Duration, error) {
	h.completes++
}
func (h *testRenderHooks) OnDisplay(context.Context, string, int) { h.displays++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopRenderHooks{}
	h.OnRenderStart(ctx, 10)
	h.OnRenderComplete(ctx, 10, 12, time.Second, nil)
	h.OnDisplay(ctx, "text", 120)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify default is noop
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	if Render() != custom {
		t.Error("SetRenderHooks should set custom hooks")
	}

	ctx := context.Background()
	Render().OnRenderStart(ctx, 3)
	Render().OnRenderComplete(ctx, 3, 5, time.Millisecond, nil)
	Render().OnDisplay(ctx, "text", 20)

	if custom.starts != 1 || custom.completes != 1 || custom.displays != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/1/1", custom.starts, custom.completes, custom.displays)
	}

	// nil restores the noop default
	SetRenderHooks(nil)
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("SetRenderHooks(nil) should restore NoopRenderHooks")
	}

	// Reset restores the noop default
	SetRenderHooks(custom)
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}
