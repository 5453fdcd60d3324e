package observability

import (
	"context"
	"testing"
	"time"
)

type countingRenderHooks struct {
	NoopRenderHooks
	chartStarts int
}

func (h *countingRenderHooks) OnChartStart(ctx context.Context, chartID, format string) {
	h.chartStarts++
}

type countingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *countingCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.hits++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// None of these should panic
	Render().OnBatchStart(ctx, "run-1", 8, []string{"html", "png"})
	Render().OnChartStart(ctx, "roi_disaster_type", "png")
	Render().OnChartComplete(ctx, "roi_disaster_type", "png", 1024, time.Second, nil)
	Render().OnBatchComplete(ctx, "run-1", 0, time.Second)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
}

func TestSetAndResetHooks(t *testing.T) {
	t.Cleanup(Reset)
	ctx := context.Background()

	rh := &countingRenderHooks{}
	ch := &countingCacheHooks{}
	SetRenderHooks(rh)
	SetCacheHooks(ch)

	Render().OnChartStart(ctx, "donut", "html")
	Render().OnChartStart(ctx, "donut", "png")
	Cache().OnCacheHit(ctx, "artifact")

	if rh.chartStarts != 2 {
		t.Errorf("chartStarts = %d, want 2", rh.chartStarts)
	}
	if ch.hits != 1 {
		t.Errorf("hits = %d, want 1", ch.hits)
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset should restore noop render hooks")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rh := &countingRenderHooks{}
	SetRenderHooks(rh)
	SetRenderHooks(nil)
	if Render() != RenderHooks(rh) {
		t.Error("SetRenderHooks(nil) should keep the current hooks")
	}
}
