package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/portwire/pkg/observability"
)

func TestMetricsCount(t *testing.T) {
	m := New(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnConverterLookup("integer", "float", true)
	m.OnConverterLookup("text", "float", false)
	m.OnConverterLookup("text", "float", false)
	m.OnModelCreate("Addition", true)
	m.OnPaint(observability.PassGradient)
	m.OnRenderComplete(ctx, "svg", 3, 2*time.Millisecond, nil)
	m.OnRenderComplete(ctx, "png", 0, time.Millisecond, errors.New("boom"))
	m.OnCacheHit(ctx, "artifact")
	m.OnCacheMiss(ctx, "artifact")
	m.OnCacheSet(ctx, "artifact", 128)

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"lookup found", m.converterLookups.WithLabelValues("found"), 1},
		{"lookup missing", m.converterLookups.WithLabelValues("missing"), 2},
		{"create found", m.modelCreates.WithLabelValues("found"), 1},
		{"gradient pass", m.paintPasses.WithLabelValues(observability.PassGradient), 1},
		{"svg success", m.renders.WithLabelValues("svg", "success"), 1},
		{"png error", m.renders.WithLabelValues("png", "error"), 1},
		{"cache hit", m.cacheRequests.WithLabelValues("artifact", "hit"), 1},
		{"cache miss", m.cacheRequests.WithLabelValues("artifact", "miss"), 1},
		{"cache bytes", m.cacheBytes.WithLabelValues("artifact"), 128},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(tt.c); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInstall(t *testing.T) {
	defer observability.Reset()

	m := New(prometheus.NewRegistry())
	m.Install()
	observability.Render().OnPaint(observability.PassHalo)

	if got := testutil.ToFloat64(m.paintPasses.WithLabelValues(observability.PassHalo)); got != 1 {
		t.Errorf("halo passes = %v, want 1", got)
	}
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering twice on one registry should panic")
		}
	}()
	New(reg)
}
