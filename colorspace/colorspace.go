// Package colorspace implements the color algebra: conversions between
// RGB, HSV and HSL, and the sRGB -> linear -> XYZ -> CIE L*a*b* chain
// used for perceptual (ΔE) distance.
//
// All three color value types hold normalized coordinates in [0, 1];
// an Axis' Max (from package space) recovers the displayed integer
// value. The hue-bearing types keep hue normalized to [0, 1) rather
// than degrees, wrapping on overflow.
package colorspace

import (
	"fmt"
	"math"

	"github.com/flga/colorfield/cferr"
)

// RgbColor is an immutable, normalized (R, G, B) triple in [0, 1].
type RgbColor struct{ R, G, B float64 }

// HsvColor is an immutable, normalized (H, S, V) triple in [0, 1]; H
// wraps in [0, 1) representing a full turn of hue.
type HsvColor struct{ H, S, V float64 }

// HslColor is an immutable, normalized (H, S, L) triple in [0, 1]; H
// wraps in [0, 1) representing a full turn of hue.
type HslColor struct{ H, S, L float64 }

func checkUnit(name string, vs ...float64) error {
	for _, v := range vs {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("colorspace: %s: %w: %v not in [0, 1]", name, cferr.ErrInvalidCoordinate, v)
		}
	}
	return nil
}

// NewRgbColor validates r, g, b are in [0, 1].
func NewRgbColor(r, g, b float64) (RgbColor, error) {
	if err := checkUnit("RgbColor", r, g, b); err != nil {
		return RgbColor{}, err
	}
	return RgbColor{R: r, G: g, B: b}, nil
}

// NewHsvColor validates h, s, v are in [0, 1].
func NewHsvColor(h, s, v float64) (HsvColor, error) {
	if err := checkUnit("HsvColor", h, s, v); err != nil {
		return HsvColor{}, err
	}
	return HsvColor{H: h, S: s, V: v}, nil
}

// NewHslColor validates h, s, l are in [0, 1].
func NewHslColor(h, s, l float64) (HslColor, error) {
	if err := checkUnit("HslColor", h, s, l); err != nil {
		return HslColor{}, err
	}
	return HslColor{H: h, S: s, L: l}, nil
}

func (c RgbColor) Array() [3]float64 { return [3]float64{c.R, c.G, c.B} }
func (c HsvColor) Array() [3]float64 { return [3]float64{c.H, c.S, c.V} }
func (c HslColor) Array() [3]float64 { return [3]float64{c.H, c.S, c.L} }

// triangle implements p(h) = clamp(|fract(h+k)*6 - 3| - 1, 0, 1), the
// shared triangle-wave building block for both HSV->RGB and HSL->RGB,
// required so the CPU path matches the GPU fragment shader exactly.
func triangle(h, k float64) float64 {
	t := h + k
	frac := t - math.Floor(t)
	v := math.Abs(frac*6-3) - 1
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	return h
}

// HueToRgb returns the fully-saturated, fully-valued color at hue h
// (wrapped to [0, 1)), i.e. HsvColor{h, 1, 1}.ToRgb().
func HueToRgb(h float64) RgbColor {
	return HsvColor{H: wrapHue(h), S: 1, V: 1}.ToRgb()
}

// ToRgb converts HSV to RGB using the triangle-wave formulation:
// HSV = v * (p*s - s + 1).
func (c HsvColor) ToRgb() RgbColor {
	h := wrapHue(c.H)
	pr := triangle(h, 1)
	pg := triangle(h, 2.0/3)
	pb := triangle(h, 1.0/3)
	return RgbColor{
		R: c.V * (pr*c.S - c.S + 1),
		G: c.V * (pg*c.S - c.S + 1),
		B: c.V * (pb*c.S - c.S + 1),
	}
}

// ToRgb converts HSL to RGB using the triangle-wave formulation:
// HSL = l + chroma*(p - 0.5), chroma = (1 - |2l-1|)*s.
func (c HslColor) ToRgb() RgbColor {
	h := wrapHue(c.H)
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	pr := triangle(h, 1)
	pg := triangle(h, 2.0/3)
	pb := triangle(h, 1.0/3)
	return RgbColor{
		R: c.L + chroma*(pr-0.5),
		G: c.L + chroma*(pg-0.5),
		B: c.L + chroma*(pb-0.5),
	}
}

// ToHsv converts RGB to HSV via the standard min/max-of-components
// formulation. Achromatic inputs yield hue 0.
func (c RgbColor) ToHsv() HsvColor {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	delta := max - min

	h := hueFromMinMax(c, max, delta)

	var s float64
	if max > 0 {
		s = delta / max
	}
	return HsvColor{H: h, S: s, V: max}
}

// ToHsl converts RGB to HSL via the standard min/max-of-components
// formulation. Achromatic inputs yield hue 0.
func (c RgbColor) ToHsl() HslColor {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	delta := max - min

	h := hueFromMinMax(c, max, delta)

	l := (max + min) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}
	return HslColor{H: h, S: s, L: l}
}

func hueFromMinMax(c RgbColor, max, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	var h float64
	switch max {
	case c.R:
		h = math.Mod((c.G-c.B)/delta, 6)
	case c.G:
		h = (c.B-c.R)/delta + 2
	default: // max == c.B
		h = (c.R-c.G)/delta + 4
	}
	return wrapHue(h / 6)
}
