package palette

import (
	"github.com/soypat/geometry/ms3"

	"github.com/flga/colorfield/colorspace"
)

// Compiled is a palette pre-converted into the vector form the
// per-fragment classifier scans: RGB always, Lab lazily (only the
// metrics that need it pay for the conversion).
type Compiled struct {
	Rgb []ms3.Vec
	Lab []ms3.Vec
}

// Compile converts a Palette into its per-fragment scan form. Called
// once per render by the Orchestrator, never per-fragment.
func Compile(p Palette, metric MetricID) Compiled {
	c := Compiled{Rgb: make([]ms3.Vec, len(p))}
	for i, nc := range p {
		c.Rgb[i] = ms3.Vec{X: float32(nc.Rgb.R), Y: float32(nc.Rgb.G), Z: float32(nc.Rgb.B)}
	}
	if metric == DeltaE {
		c.Lab = make([]ms3.Vec, len(p))
		for i, v := range c.Rgb {
			c.Lab[i] = colorspace.Lab32(v)
		}
	}
	return c
}

// Classify32 is the GPU-precision form of Classify, run once per
// fragment by the Field Renderer. The fragment's own color is converted
// to Lab exactly once (when metric is ΔE) and reused across the whole
// palette scan.
func Classify32(color ms3.Vec, compiled Compiled, metric MetricID, threshold float32) int {
	if len(compiled.Rgb) == 0 {
		return NoMatch
	}

	var colorLab ms3.Vec
	useLab := metric == DeltaE
	if useLab {
		colorLab = colorspace.Lab32(color)
	}

	best := NoMatch
	var bestDist float32
	for i := range compiled.Rgb {
		var d float32
		if useLab {
			d = colorspace.DeltaE32(colorLab, compiled.Lab[i])
		} else {
			d = colorspace.RgbEuclidean32(color, compiled.Rgb[i])
		}
		if best == NoMatch || d < bestDist {
			best = i
			bestDist = d
		}
	}

	if bestDist > threshold {
		return NoMatch
	}
	return best
}
