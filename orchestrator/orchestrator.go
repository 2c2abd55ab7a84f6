// Package orchestrator ties the Shape Generator, Field Renderer, and
// Display Renderer into the single entry point a host hands
// RenderRequests to: it snapshots the palette, resolves highlight
// references, drives both rendering passes, and presents the result to
// a Canvas, all while keeping the previous frame available to the
// Pixel Oracle until the next render completes.
package orchestrator

import (
	"sync"
	"time"

	"github.com/flga/colorfield/cferr"
	"github.com/flga/colorfield/colorspace"
	"github.com/flga/colorfield/meter"
	"github.com/flga/colorfield/oracle"
	"github.com/flga/colorfield/palette"
	"github.com/flga/colorfield/render"
)

// Canvas is the presentation surface the Orchestrator blits finished
// frames to. It owns no rendering logic of its own: Present receives a
// tightly-packed RGBA8 buffer, row 0 at the top (display convention),
// sized width*height*4.
type Canvas interface {
	Size() (width, height int)
	Present(pixels []byte, width, height int) error
}

// Request is the unit of work submitted to the Orchestrator. It wraps
// a RenderRequest; HighlightColor, when set, is resolved against the
// palette snapshot in place of a caller-supplied index.
type Request struct {
	render.RenderRequest
	HighlightColor *colorspace.RgbColor
}

// Options configures a new Orchestrator. A nil Scheduler gets a
// TickerScheduler at ~60Hz.
type Options struct {
	Scheduler FrameScheduler
}

// RenderStats is a read-only snapshot of the Orchestrator's timing
// meters, for host-side HUDs, each an average in milliseconds.
// GeometryMs covers the palette snapshot and highlight resolution;
// geometry generation runs inside render.FieldPass and is counted in
// FieldMs. WaitMs covers a whole render, from snapshot to Present, and
// Rate is the reciprocal of that average.
type RenderStats struct {
	GeometryMs float64
	FieldMs    float64
	DisplayMs  float64
	WaitMs     float64
	Rate       int
}

// Orchestrator owns the classified framebuffer, the palette snapshot,
// and the render pipeline's timing meters across requests. A single
// render runs at a time; RenderDeferred calls coalesce down to the
// last one scheduled within a frame.
type Orchestrator struct {
	canvas    Canvas
	scheduler FrameScheduler

	geometryMeter *meter.Meter
	fieldMeter    *meter.Meter
	displayMeter  *meter.Meter
	waitMeter     *meter.Meter

	diagnostics chan error

	mu             sync.Mutex
	cancelDeferred func()
	pendingDone    chan struct{}

	fb      *render.Framebuffer
	palette palette.Palette
}

// New prepares the Orchestrator; the canvas size is read afresh at each
// render. A nil canvas is the software-pipeline equivalent of a GPU context
// that could not be obtained: the constructor fails and no partial
// Orchestrator is returned.
func New(canvas Canvas, opts Options) (*Orchestrator, error) {
	if canvas == nil {
		return nil, cferr.ErrUnsupportedGPU
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = NewTickerScheduler(time.Second / 60)
	}

	return &Orchestrator{
		canvas:        canvas,
		scheduler:     scheduler,
		geometryMeter: meter.New(meter.DefaultBufferLen),
		fieldMeter:    meter.New(meter.DefaultBufferLen),
		displayMeter:  meter.New(meter.DefaultBufferLen),
		waitMeter:     meter.New(meter.DefaultBufferLen),
		diagnostics:   make(chan error, 16),
	}, nil
}

// RenderNow submits req for synchronous, uncoalesced execution. A
// pending RenderDeferred call, if any, is cancelled first, since a
// newer render invocation implicitly cancels pending coalesced renders.
func (o *Orchestrator) RenderNow(req Request) error {
	o.mu.Lock()
	if o.cancelDeferred != nil {
		o.cancelDeferred()
		o.cancelDeferred = nil
	}
	doneCh := o.ensurePendingLocked()
	o.mu.Unlock()

	return o.execute(req, doneCh)
}

// RenderDeferred schedules req through the FrameScheduler. If another
// deferred render is already pending, it is cancelled first, so only
// the last request submitted within a frame actually runs.
func (o *Orchestrator) RenderDeferred(req Request) {
	o.mu.Lock()
	if o.cancelDeferred != nil {
		o.cancelDeferred()
	}
	doneCh := o.ensurePendingLocked()
	o.cancelDeferred = o.scheduler.Defer(func() {
		_ = o.execute(req, doneCh)
	})
	o.mu.Unlock()
}

// ensurePendingLocked returns the channel WaitForRender should wait on
// for the render currently being submitted, creating one if the
// Orchestrator is otherwise idle. Callers must hold o.mu.
func (o *Orchestrator) ensurePendingLocked() chan struct{} {
	if o.pendingDone == nil {
		o.pendingDone = make(chan struct{})
	}
	return o.pendingDone
}

// WaitForRender returns a channel that closes once the most recently
// submitted render (RenderNow or RenderDeferred) has completed. If
// nothing is pending, the returned channel is already closed.
func (o *Orchestrator) WaitForRender() <-chan struct{} {
	o.mu.Lock()
	ch := o.pendingDone
	o.mu.Unlock()
	if ch == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return ch
}

// execute runs the full pipeline for req: palette snapshot, highlight
// resolution, Pass A, Pass B, and presentation. Render-time failures
// abort silently, leaving the previous classified framebuffer and
// palette snapshot in place, and are pushed to Diagnostics.
func (o *Orchestrator) execute(req Request, doneCh chan struct{}) error {
	o.mu.Lock()
	defer func() {
		if o.pendingDone == doneCh {
			o.pendingDone = nil
		}
		o.mu.Unlock()
		close(doneCh)
	}()

	start := time.Now()
	palSnapshot := req.Palette.Clone()

	rr := req.RenderRequest
	rr.Palette = palSnapshot
	if req.HighlightColor != nil {
		rr.HighlightPaletteIndex = resolveHighlightIndex(palSnapshot, *req.HighlightColor)
	}
	o.geometryMeter.Record(time.Since(start))

	width, height := o.canvas.Size()

	fieldStart := time.Now()
	fb, err := render.FieldPass(rr, width, height)
	o.fieldMeter.Record(time.Since(fieldStart))
	if err != nil {
		o.pushDiagnostic(err)
		return nil
	}

	displayStart := time.Now()
	wf := render.BuildWireframe(rr, width, height)
	img := render.DisplayPass(fb, rr, wf)
	o.displayMeter.Record(time.Since(displayStart))

	o.fb = fb
	o.palette = palSnapshot

	if err := o.canvas.Present(toRGBA(img), img.Width, img.Height); err != nil {
		o.pushDiagnostic(err)
	}

	o.waitMeter.Record(time.Since(start))
	return nil
}

// pushDiagnostic posts a non-fatal render-time error without blocking;
// when the channel is full, this error is dropped, not the render.
func (o *Orchestrator) pushDiagnostic(err error) {
	select {
	case o.diagnostics <- err:
	default:
	}
}

// Diagnostics surfaces non-fatal render-time failures: GPU-equivalent
// errors that aborted a render but left the previous frame intact.
func (o *Orchestrator) Diagnostics() <-chan error {
	return o.diagnostics
}

// ColorAt reads back the classified framebuffer and palette snapshot
// from the most recently completed render.
func (o *Orchestrator) ColorAt(x, y int) (*colorspace.RgbColor, *palette.NamedColor) {
	o.mu.Lock()
	fb, pal := o.fb, o.palette
	o.mu.Unlock()
	if fb == nil {
		return nil, nil
	}
	return oracle.ColorAt(fb, pal, x, y)
}

// Stats returns a read-only snapshot of the pipeline's timing meters.
func (o *Orchestrator) Stats() RenderStats {
	return RenderStats{
		GeometryMs: o.geometryMeter.Ms(),
		FieldMs:    o.fieldMeter.Ms(),
		DisplayMs:  o.displayMeter.Ms(),
		WaitMs:     o.waitMeter.Ms(),
		Rate:       o.waitMeter.Rate(),
	}
}

// resolveHighlightIndex performs the linear lookup in palette,
// returning render.NoHighlight if no entry's RGB matches color exactly.
func resolveHighlightIndex(pal palette.Palette, color colorspace.RgbColor) int {
	for i, nc := range pal {
		if nc.Rgb == color {
			return i
		}
	}
	return render.NoHighlight
}

// toRGBA flattens a DisplayImage into a tightly-packed RGBA8 buffer,
// flipping from the classified framebuffer's bottom-origin row order to
// the top-origin order a Canvas expects to blit directly.
func toRGBA(img *render.DisplayImage) []byte {
	out := make([]byte, img.Width*img.Height*4)
	for y := 0; y < img.Height; y++ {
		srcRow := img.Height - 1 - y
		for x := 0; x < img.Width; x++ {
			p := img.Pixels[srcRow*img.Width+x]
			i := (y*img.Width + x) * 4
			out[i+0] = p.R
			out[i+1] = p.G
			out[i+2] = p.B
			out[i+3] = p.A
		}
	}
	return out
}
