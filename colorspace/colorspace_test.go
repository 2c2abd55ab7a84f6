package colorspace

import (
	"math"
	"testing"

	"github.com/soypat/geometry/ms3"
)

func TestConstructionValidation(t *testing.T) {
	if _, err := NewRgbColor(1.5, 0, 0); err == nil {
		t.Fatalf("expected error for out-of-range component")
	}
	if _, err := NewRgbColor(0, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRoundTripHSV(t *testing.T) {
	samples := []RgbColor{
		{0, 0, 0}, {1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0.2, 0.6, 0.9}, {0.73, 0.12, 0.44}, {0.5, 0.5, 0.5},
	}
	for _, rgb := range samples {
		got := rgb.ToHsv().ToRgb()
		if math.Abs(got.R-rgb.R) > 1e-6 || math.Abs(got.G-rgb.G) > 1e-6 || math.Abs(got.B-rgb.B) > 1e-6 {
			t.Errorf("HSV round trip for %+v: got %+v", rgb, got)
		}
	}
}

func TestRoundTripHSL(t *testing.T) {
	samples := []RgbColor{
		{0, 0, 0}, {1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0.2, 0.6, 0.9}, {0.73, 0.12, 0.44}, {0.5, 0.5, 0.5},
	}
	for _, rgb := range samples {
		got := rgb.ToHsl().ToRgb()
		if math.Abs(got.R-rgb.R) > 1e-6 || math.Abs(got.G-rgb.G) > 1e-6 || math.Abs(got.B-rgb.B) > 1e-6 {
			t.Errorf("HSL round trip for %+v: got %+v", rgb, got)
		}
	}
}

func TestAchromaticHueIsZero(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		rgb := RgbColor{R: v, G: v, B: v}
		if h := rgb.ToHsv().H; h != 0 {
			t.Errorf("ToHsv().H for gray %v = %v, want 0", v, h)
		}
		if h := rgb.ToHsl().H; h != 0 {
			t.Errorf("ToHsl().H for gray %v = %v, want 0", v, h)
		}
	}
}

func TestCpuGpuAgreement(t *testing.T) {
	const tol = 1.0 / 255
	hsvs := []HsvColor{
		{H: 0, S: 1, V: 1}, {H: 0.33, S: 0.5, V: 0.8}, {H: 0.9, S: 1, V: 0.2},
	}
	for _, hsv := range hsvs {
		cpu := hsv.ToRgb()
		gpu := HsvToRgb32(float32(hsv.H), float32(hsv.S), float32(hsv.V))
		if math.Abs(cpu.R-float64(gpu.X)) > tol || math.Abs(cpu.G-float64(gpu.Y)) > tol || math.Abs(cpu.B-float64(gpu.Z)) > tol {
			t.Errorf("HSV CPU/GPU mismatch for %+v: cpu=%+v gpu=%+v", hsv, cpu, gpu)
		}
	}

	hsls := []HslColor{
		{H: 0, S: 1, L: 0.5}, {H: 0.6, S: 0.3, L: 0.9}, {H: 0.1, S: 1, L: 0.1},
	}
	for _, hsl := range hsls {
		cpu := hsl.ToRgb()
		gpu := HslToRgb32(float32(hsl.H), float32(hsl.S), float32(hsl.L))
		if math.Abs(cpu.R-float64(gpu.X)) > tol || math.Abs(cpu.G-float64(gpu.Y)) > tol || math.Abs(cpu.B-float64(gpu.Z)) > tol {
			t.Errorf("HSL CPU/GPU mismatch for %+v: cpu=%+v gpu=%+v", hsl, cpu, gpu)
		}
	}
}

func TestDeltaEAgreesWithGpu(t *testing.T) {
	a := RgbColor{R: 1, G: 0, B: 0}
	b := RgbColor{R: 0, G: 1, B: 0}

	cpu := DeltaE(a, b)

	av := ms3.Vec{X: 1, Y: 0, Z: 0}
	bv := ms3.Vec{X: 0, Y: 1, Z: 0}
	gpu := DeltaE32(Lab32(av), Lab32(bv))

	if math.Abs(cpu-float64(gpu)) > 1.0 {
		t.Errorf("deltaE CPU/GPU mismatch: cpu=%v gpu=%v", cpu, gpu)
	}
}

func TestRgbEuclidean(t *testing.T) {
	d := RgbEuclidean(RgbColor{R: 0, G: 0, B: 0}, RgbColor{R: 1, G: 0, B: 0})
	if math.Abs(d-1) > 1e-12 {
		t.Errorf("got %v want 1", d)
	}
}

func TestHueToRgb(t *testing.T) {
	red := HueToRgb(0)
	if math.Abs(red.R-1) > 1e-6 || red.G > 1e-6 || red.B > 1e-6 {
		t.Errorf("HueToRgb(0) = %+v, want pure red", red)
	}
}
