package palette

import (
	"fmt"

	"github.com/flga/colorfield/colorspace"
)

// MetricID names a distance metric.
type MetricID string

const (
	DeltaE       MetricID = "deltaE"
	RgbEuclidean MetricID = "rgbEuclidean"
)

// DistanceMetric describes a distance function and its valid threshold
// range, for UI range sliders and for validating a RenderRequest's
// threshold.
type DistanceMetric struct {
	ID               MetricID
	MinThreshold     float64
	MaxThreshold     float64
	DefaultThreshold float64
}

var metrics = map[MetricID]DistanceMetric{
	DeltaE:       {ID: DeltaE, MinThreshold: 0, MaxThreshold: 100, DefaultThreshold: 20},
	RgbEuclidean: {ID: RgbEuclidean, MinThreshold: 0, MaxThreshold: 1.7320508075688772, DefaultThreshold: 0.2}, // sqrt(3) is the RGB cube's diagonal
}

// MetricByID looks up a registered distance metric.
func MetricByID(id MetricID) (DistanceMetric, bool) {
	m, ok := metrics[id]
	return m, ok
}

// ThresholdDisplayString formats a threshold value for display, per the
// metric's own convention (ΔE as a bare number, RGB-Euclidean as a
// percentage of the cube diagonal).
func (m DistanceMetric) ThresholdDisplayString(threshold float64) string {
	switch m.ID {
	case RgbEuclidean:
		pct := threshold / m.MaxThreshold * 100
		return fmt.Sprintf("%.0f%%", pct)
	default:
		return fmt.Sprintf("%.1f", threshold)
	}
}

// distance dispatches to the metric's underlying distance function.
func (m DistanceMetric) distance(a, b colorspace.RgbColor) float64 {
	switch m.ID {
	case DeltaE:
		return colorspace.DeltaE(a, b)
	default:
		return colorspace.RgbEuclidean(a, b)
	}
}
