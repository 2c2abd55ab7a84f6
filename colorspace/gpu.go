package colorspace

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// This file mirrors colorspace.go and lab.go in float32, using the same
// vector/matrix primitives the GPU fragment shader would: this is the
// code path the Field Renderer (Pass A) actually runs per-pixel, kept
// separate from the float64 CPU path so readback/test code can assert
// the two agree within the tolerances in the testable properties.

var linSRGBToXYZ32 = ms3.NewMat3([]float32{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
})

var whitePoint32 = ms3.Vec{X: 0.95047, Y: 1.00000, Z: 1.08883}

// TriangleWave32 implements p(h) = clamp(|fract(h+k)*6 - 3| - 1, 0, 1).
func TriangleWave32(h, k float32) float32 {
	t := h + k
	frac := t - math32.Floor(t)
	v := math32.Abs(frac*6-3) - 1
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wrapHue32(h float32) float32 {
	h = math32.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	return h
}

// HsvToRgb32 converts HSV to RGB, matching HsvColor.ToRgb bit-for-bit
// in formulation (float32 instead of float64).
func HsvToRgb32(h, s, v float32) ms3.Vec {
	h = wrapHue32(h)
	pr := TriangleWave32(h, 1)
	pg := TriangleWave32(h, 2.0/3)
	pb := TriangleWave32(h, 1.0/3)
	return ms3.Vec{
		X: v * (pr*s - s + 1),
		Y: v * (pg*s - s + 1),
		Z: v * (pb*s - s + 1),
	}
}

// HslToRgb32 converts HSL to RGB, matching HslColor.ToRgb bit-for-bit
// in formulation (float32 instead of float64).
func HslToRgb32(h, s, l float32) ms3.Vec {
	h = wrapHue32(h)
	chroma := (1 - math32.Abs(2*l-1)) * s
	pr := TriangleWave32(h, 1)
	pg := TriangleWave32(h, 2.0/3)
	pb := TriangleWave32(h, 1.0/3)
	return ms3.Vec{
		X: l + chroma*(pr-0.5),
		Y: l + chroma*(pg-0.5),
		Z: l + chroma*(pb-0.5),
	}
}

func srgbToLinear32(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// Linear32 converts a gamma-encoded sRGB vector to linear light.
func Linear32(rgb ms3.Vec) ms3.Vec {
	return ms3.Vec{
		X: srgbToLinear32(rgb.X),
		Y: srgbToLinear32(rgb.Y),
		Z: srgbToLinear32(rgb.Z),
	}
}

func labF32(t float32) float32 {
	const eps = 6.0 / 29.0
	if t > eps*eps*eps {
		return math32.Pow(t, 1.0/3.0)
	}
	return (903.3*t + 16) / 116
}

// Lab32 converts gamma-encoded sRGB straight to CIE L*a*b*, the
// per-fragment path the classifier's GPU form runs.
func Lab32(rgb ms3.Vec) ms3.Vec {
	xyz := ms3.MulMatVec(linSRGBToXYZ32, Linear32(rgb))
	fx := labF32(xyz.X / whitePoint32.X)
	fy := labF32(xyz.Y / whitePoint32.Y)
	fz := labF32(xyz.Z / whitePoint32.Z)
	return ms3.Vec{
		X: 116*fy - 16,
		Y: 500 * (fx - fy),
		Z: 200 * (fy - fz),
	}
}

// DeltaE32 is the CIE76 Euclidean distance between two already-Lab
// vectors (callers cache Lab once per fragment, per the classifier
// design).
func DeltaE32(labA, labB ms3.Vec) float32 {
	d := ms3.Sub(labA, labB)
	return math32.Sqrt(ms3.Dot(d, d))
}

// RgbEuclidean32 is the straight L2 distance on [0,1]^3 components.
func RgbEuclidean32(a, b ms3.Vec) float32 {
	d := ms3.Sub(a, b)
	return math32.Sqrt(ms3.Dot(d, d))
}
