// Package space holds the immutable descriptors for each color space:
// its three axes, units, integer ranges, and which axis (if any) may be
// displayed as a polar angle. These are pure data — no color values are
// stored here, only the shape of a color space.
package space

import "fmt"

// Axis is one semantic dimension of a color space, e.g. hue.
//
// Invariant: Min <= Default <= Max.
type Axis struct {
	Key         string
	DisplayName string
	Unit        string
	Min         int
	Max         int
	Default     int
}

// NewAxis validates Min <= Default <= Max before returning the Axis.
func NewAxis(key, displayName, unit string, min, max, def int) (Axis, error) {
	if !(min <= def && def <= max) {
		return Axis{}, fmt.Errorf("space: axis %q invariant violated: want min(%d) <= default(%d) <= max(%d)", key, min, def, max)
	}
	return Axis{
		Key:         key,
		DisplayName: displayName,
		Unit:        unit,
		Min:         min,
		Max:         max,
		Default:     def,
	}, nil
}

// InRange reports whether v is a valid integer value for this axis.
func (a Axis) InRange(v int) bool {
	return v >= a.Min && v <= a.Max
}

// Normalize maps an integer axis value to its [0, 1] coordinate.
func (a Axis) Normalize(v int) float64 {
	span := a.Max - a.Min
	if span == 0 {
		return 0
	}
	return float64(v-a.Min) / float64(span)
}

// Denormalize maps a [0, 1] coordinate back to the nearest integer axis
// value, used by the shared color serializer.
func (a Axis) Denormalize(c float64) int {
	return a.Min + int(roundHalfAwayFromZero(c*float64(a.Max-a.Min)))
}

func roundHalfAwayFromZero(v float64) float64 {
	if v < 0 {
		return -roundHalfAwayFromZero(-v)
	}
	frac := v - float64(int(v))
	if frac >= 0.5 {
		return float64(int(v)) + 1
	}
	return float64(int(v))
}
