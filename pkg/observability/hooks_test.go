package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Engine hooks
	e := NoopEngineHooks{}
	e.OnOperationStart(ctx, "optimize", 20)
	e.OnOperationComplete(ctx, "optimize", 20, time.Second, nil)
	e.OnRenderStart(ctx, "svg")
	e.OnRenderComplete(ctx, "svg", time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "result")
	c.OnCacheMiss(ctx, "result")
	c.OnCacheSet(ctx, "result", 1024)

	// Server hooks
	s := NoopServerHooks{}
	s.OnRequest(ctx, "POST", "/v1/layouts/dashboard/ops")
	s.OnResponse(ctx, "POST", "/v1/layouts/dashboard/ops", 200, time.Second)
}

type testEngineHooks struct {
	NoopEngineHooks
	started, completed int
}

func (h *testEngineHooks) OnOperationStart(context.Context, string, int) { h.started++ }
func (h *testEngineHooks) OnOperationComplete(context.Context, string, int, time.Duration, error) {
	h.completed++
}

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// Verify defaults are noop
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	// Set custom hooks
	customEngine := &testEngineHooks{}
	SetEngineHooks(customEngine)
	if Engine() != customEngine {
		t.Error("SetEngineHooks should set custom hooks")
	}
	Engine().OnOperationStart(context.Background(), "compact", 3)
	if customEngine.started != 1 {
		t.Error("custom engine hooks should receive events")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	Cache().OnCacheHit(context.Background(), "result")
	if customCache.hits != 1 {
		t.Error("custom cache hooks should receive events")
	}

	// Nil registration is ignored
	SetEngineHooks(nil)
	if Engine() != customEngine {
		t.Error("SetEngineHooks(nil) should keep previous hooks")
	}

	// Reset restores noops
	Reset()
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset should restore noop engine hooks")
	}
}
