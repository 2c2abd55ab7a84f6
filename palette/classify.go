package palette

import "github.com/flga/colorfield/colorspace"

// Classify returns the nearest palette index under metric within
// threshold, NoMatch if the palette is empty or no entry lies within
// threshold. Ties are broken by lowest index.
func Classify(color colorspace.RgbColor, p Palette, metric DistanceMetric, threshold float64) int {
	if len(p) == 0 {
		return NoMatch
	}

	best := NoMatch
	bestDist := 0.0
	for i, nc := range p {
		d := metric.distance(color, nc.Rgb)
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
