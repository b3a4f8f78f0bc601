package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRegistryHooks{}
	r.OnConverterLookup("integer", "float", true)
	r.OnModelCreate("Addition", false)

	p := NoopRenderHooks{}
	p.OnPaint(PassGradient)
	p.OnRenderComplete(ctx, "svg", 3, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Registry().(NoopRegistryHooks); !ok {
		t.Error("Registry() should return NoopRegistryHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customRegistry := &testRegistryHooks{}
	SetRegistryHooks(customRegistry)
	if Registry() != customRegistry {
		t.Error("SetRegistryHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// nil is ignored
	SetRenderHooks(nil)
	if Render() != customRender {
		t.Error("SetRenderHooks(nil) should keep the previous hooks")
	}

	Reset()
	if _, ok := Registry().(NoopRegistryHooks); !ok {
		t.Error("Reset should restore NoopRegistryHooks")
	}
}

type testRegistryHooks struct{ NoopRegistryHooks }

type testRenderHooks struct{ NoopRenderHooks }
