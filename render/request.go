// Package render implements the two-pass field renderer: Pass A
// rasterizes the generated geometry into a classified offscreen
// buffer, Pass B derives the visible image from it.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/flga/colorfield/cferr"
	"github.com/flga/colorfield/errlist"
	"github.com/flga/colorfield/palette"
	"github.com/flga/colorfield/space"
)

// Mode selects whether the Shape Generator builds a flat 2D face or a
// 3D volume (cube or, with Polar set, cylinder).
type Mode int

const (
	Slice2D Mode = iota
	Volume3D
)

// HighlightMode selects how Pass B treats the highlighted palette
// index relative to every other region.
type HighlightMode int

const (
	DimOther HighlightMode = iota
	HideOther
	Boundary
)

// NoHighlight is the sentinel for RenderRequest.HighlightPaletteIndex
// meaning "no highlight selected."
const NoHighlight = -1

// AxisSlices maps an axis key to its [lo, hi] integer range. A 2D
// request carries exactly one entry with lo == hi; a 3D request
// carries all three of the color space's axes.
type AxisSlices map[string][2]int

// RenderRequest is the unit of work handed to the Orchestrator.
type RenderRequest struct {
	ColorSpace            space.ColorSpace
	AxisSlices            AxisSlices
	Mode                  Mode
	Polar                 bool
	ShowBoundaries        bool
	Palette               palette.Palette
	Metric                palette.DistanceMetric
	DistanceThreshold     float64
	HighlightMode         HighlightMode
	HighlightPaletteIndex int
	ShowUnmatched         bool
	RotationMatrix        mgl32.Mat4
}

// Validate checks the invariants from the data model: axis-slice
// shape for the chosen mode, polar eligibility, and highlight-index
// range. It does not mutate req.
func (req RenderRequest) Validate() error {
	var errs errlist.List

	axes := req.ColorSpace.Axes()
	for _, a := range axes {
		if rng, ok := req.AxisSlices[a.Key]; ok {
			if !a.InRange(rng[0]) || !a.InRange(rng[1]) || rng[0] > rng[1] {
				errs = errs.Add(cferr.ErrAxisValueOutOfRange)
			}
		}
	}

	switch req.Mode {
	case Slice2D:
		if len(req.AxisSlices) != 1 {
			errs = errs.Add(cferr.ErrAxisCountMismatch)
		}
		for _, rng := range req.AxisSlices {
			if rng[0] != rng[1] {
				errs = errs.Add(cferr.ErrAxisValueOutOfRange)
			}
		}
	case Volume3D:
		if len(req.AxisSlices) != 3 {
			errs = errs.Add(cferr.ErrAxisCountMismatch)
		}
	}

	// Polar eligibility only depends on whether the color space has a
	// polar axis at all. A 2D request currently fixing that would-be
	// polar axis is not an error: buildRequestContext leaves the polar
	// remap inactive for it, which is the spec's silent Cartesian
	// fallback, not a rejected request.
	if req.Polar && !req.ColorSpace.HasPolarAxis() {
		errs = errs.Add(cferr.ErrAxisValueOutOfRange)
	}

	if req.HighlightPaletteIndex != NoHighlight {
		if req.HighlightPaletteIndex < 0 || req.HighlightPaletteIndex >= len(req.Palette) {
			errs = errs.Add(cferr.ErrAxisValueOutOfRange)
		}
	}

	return errs.Err()
}

// currentAxis returns the single fixed axis of a 2D request (the one
// with lo == hi), used by buildRequestContext to resolve the polar
// remap's angular axis.
func (req RenderRequest) currentAxis() (space.Axis, bool) {
	for _, a := range req.ColorSpace.Axes() {
		if rng, ok := req.AxisSlices[a.Key]; ok && rng[0] == rng[1] && len(req.AxisSlices) == 1 {
			return a, true
		}
	}
	return space.Axis{}, false
}
