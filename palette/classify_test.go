package palette

import (
	"testing"

	"github.com/soypat/geometry/ms3"

	"github.com/flga/colorfield/colorspace"
)

func mustRgb(t *testing.T, r, g, b float64) colorspace.RgbColor {
	t.Helper()
	c, err := colorspace.NewRgbColor(r, g, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func primaries(t *testing.T) Palette {
	return Palette{
		{Name: "Red", Rgb: mustRgb(t, 1, 0, 0)},
		{Name: "Green", Rgb: mustRgb(t, 0, 1, 0)},
		{Name: "Blue", Rgb: mustRgb(t, 0, 0, 1)},
	}
}

func TestClassifyEmptyPalette(t *testing.T) {
	got := Classify(mustRgb(t, 1, 1, 1), nil, metrics[RgbEuclidean], 100)
	if got != NoMatch {
		t.Fatalf("got %d want NoMatch", got)
	}
}

func TestClassifyIdempotence(t *testing.T) {
	p := primaries(t)
	m := metrics[RgbEuclidean]
	for i, nc := range p {
		got := Classify(nc.Rgb, p, m, 2.0)
		if got != i {
			t.Errorf("Classify(palette[%d]) = %d, want %d", i, got, i)
		}
	}
}

func TestClassifyThreshold(t *testing.T) {
	p := primaries(t)
	m := metrics[RgbEuclidean]
	white := mustRgb(t, 1, 1, 1)
	if got := Classify(white, p, m, 0.1); got != NoMatch {
		t.Fatalf("got %d want NoMatch for tiny threshold", got)
	}
	if got := Classify(white, p, m, 10); got == NoMatch {
		t.Fatalf("expected a match with large threshold")
	}
}

func TestClassifyTieBreakLowestIndex(t *testing.T) {
	p := Palette{
		{Name: "A", Rgb: mustRgb(t, 0, 0, 0)},
		{Name: "B", Rgb: mustRgb(t, 1, 1, 1)},
	}
	m := metrics[RgbEuclidean]
	mid := mustRgb(t, 0.5, 0.5, 0.5)
	got := Classify(mid, p, m, 10)
	if got != 0 {
		t.Fatalf("expected tie broken toward lowest index 0, got %d", got)
	}
}

func TestClassify32AgreesWithCpu(t *testing.T) {
	p := primaries(t)
	for _, mid := range []MetricID{RgbEuclidean, DeltaE} {
		m := metrics[mid]
		compiled := Compile(p, mid)
		for _, c := range []colorspace.RgbColor{
			mustRgb(t, 1, 0, 0),
			mustRgb(t, 0.9, 0.05, 0.05),
			mustRgb(t, 0.5, 0.5, 0.5),
		} {
			cpu := Classify(c, p, m, m.DefaultThreshold)
			gpuColor := ms3.Vec{X: float32(c.R), Y: float32(c.G), Z: float32(c.B)}
			gpu := Classify32(gpuColor, compiled, mid, float32(m.DefaultThreshold))
			if cpu != gpu {
				t.Errorf("metric %s: cpu=%d gpu=%d for %+v", mid, cpu, gpu, c)
			}
		}
	}
}
