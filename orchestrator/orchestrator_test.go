package orchestrator

import (
	"errors"
	"testing"

	"github.com/flga/colorfield/colorspace"
	"github.com/flga/colorfield/palette"
	"github.com/flga/colorfield/render"
	"github.com/flga/colorfield/space"
)

func mustRgb(t *testing.T, r, g, b float64) colorspace.RgbColor {
	t.Helper()
	c, err := colorspace.NewRgbColor(r, g, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

type fakeCanvas struct {
	width, height int
	presented     []byte
	presentErr    error
	presentCount  int
}

func (c *fakeCanvas) Size() (int, int) { return c.width, c.height }

func (c *fakeCanvas) Present(pixels []byte, width, height int) error {
	c.presentCount++
	c.presented = pixels
	return c.presentErr
}

// fakeScheduler captures the most recently deferred callback instead of
// running it on a timer, so tests can control exactly when (and
// whether) it fires. cancelCount tracks every cancel call across every
// Defer, independent of which callback is currently pending.
type fakeScheduler struct {
	fn          func()
	live        bool
	cancelCount int
}

func (s *fakeScheduler) Defer(fn func()) (cancel func()) {
	s.fn = fn
	s.live = true
	return func() {
		s.cancelCount++
		s.live = false
	}
}

func (s *fakeScheduler) fire() {
	if s.fn != nil && s.live {
		s.fn()
	}
}

func rgbSliceRequest() Request {
	cs, _ := space.ByID("RGB")
	m, _ := palette.MetricByID(palette.RgbEuclidean)
	return Request{RenderRequest: render.RenderRequest{
		ColorSpace:            cs,
		AxisSlices:            render.AxisSlices{"r": {128, 128}},
		Mode:                  render.Slice2D,
		Metric:                m,
		HighlightPaletteIndex: render.NoHighlight,
		ShowUnmatched:         true,
	}}
}

func TestNewRejectsNilCanvas(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Fatal("expected an error for a nil canvas")
	}
}

func TestRenderNowPresentsAndUpdatesColorAt(t *testing.T) {
	canvas := &fakeCanvas{width: 9, height: 9}
	o, err := New(canvas, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := o.RenderNow(rgbSliceRequest()); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}
	if canvas.presentCount != 1 {
		t.Fatalf("expected exactly one Present call, got %d", canvas.presentCount)
	}

	rgb, _ := o.ColorAt(0, 0)
	if rgb == nil {
		t.Fatal("expected a decoded color after a render")
	}
}

func TestWaitForRenderAlreadyClosedWhenIdle(t *testing.T) {
	canvas := &fakeCanvas{width: 4, height: 4}
	o, _ := New(canvas, Options{})

	select {
	case <-o.WaitForRender():
	default:
		t.Fatal("expected WaitForRender to be immediately ready on an idle Orchestrator")
	}
}

func TestRenderDeferredCoalescesToLastRequest(t *testing.T) {
	canvas := &fakeCanvas{width: 4, height: 4}
	sched := &fakeScheduler{}
	o, err := New(canvas, Options{Scheduler: sched})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	o.RenderDeferred(rgbSliceRequest())
	o.RenderDeferred(rgbSliceRequest())

	if sched.cancelCount != 1 {
		t.Fatalf("expected the first deferred render to have been cancelled once, got %d cancellations", sched.cancelCount)
	}

	sched.fire()
	if canvas.presentCount != 1 {
		t.Fatalf("expected exactly one Present call after coalescing, got %d", canvas.presentCount)
	}
}

func TestRenderNowCancelsPendingDeferred(t *testing.T) {
	canvas := &fakeCanvas{width: 4, height: 4}
	sched := &fakeScheduler{}
	o, _ := New(canvas, Options{Scheduler: sched})

	o.RenderDeferred(rgbSliceRequest())
	if err := o.RenderNow(rgbSliceRequest()); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}
	if sched.cancelCount != 1 {
		t.Fatalf("expected RenderNow to cancel the pending deferred render, got %d cancellations", sched.cancelCount)
	}
	if canvas.presentCount != 1 {
		t.Fatalf("expected exactly one Present call, got %d", canvas.presentCount)
	}
}

func TestFieldPassFailureIsDiagnosedNotFatal(t *testing.T) {
	canvas := &fakeCanvas{width: 4, height: 4}
	o, _ := New(canvas, Options{})

	cs, _ := space.ByID("RGB")
	invalid := Request{RenderRequest: render.RenderRequest{
		ColorSpace:            cs,
		AxisSlices:            render.AxisSlices{}, // Slice2D requires exactly one entry
		Mode:                  render.Slice2D,
		HighlightPaletteIndex: render.NoHighlight,
	}}

	if err := o.RenderNow(invalid); err != nil {
		t.Fatalf("RenderNow should not surface render-time failures directly: %v", err)
	}
	if canvas.presentCount != 0 {
		t.Fatalf("expected no Present call for an aborted render, got %d", canvas.presentCount)
	}

	select {
	case err := <-o.Diagnostics():
		if err == nil {
			t.Fatal("expected a non-nil diagnostic error")
		}
	default:
		t.Fatal("expected a diagnostic to have been pushed")
	}
}

func TestResolveHighlightIndex(t *testing.T) {
	pal := palette.Palette{
		{Name: "Black", Rgb: mustRgb(t, 0, 0, 0)},
		{Name: "White", Rgb: mustRgb(t, 1, 1, 1)},
	}
	if got := resolveHighlightIndex(pal, mustRgb(t, 1, 1, 1)); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := resolveHighlightIndex(pal, mustRgb(t, 0.5, 0.5, 0.5)); got != render.NoHighlight {
		t.Errorf("got %d, want NoHighlight for an unmatched color", got)
	}
}

func TestDiagnosticsChannelDoesNotBlockOnFullBuffer(t *testing.T) {
	canvas := &fakeCanvas{width: 4, height: 4}
	o, _ := New(canvas, Options{})
	for i := 0; i < cap(o.diagnostics)+5; i++ {
		o.pushDiagnostic(errors.New("boom"))
	}
	// Must not have deadlocked to reach this point.
}
