package space

import "fmt"

// ID names one of the three supported color spaces.
type ID string

const (
	RGB ID = "RGB"
	HSV ID = "HSV"
	HSL ID = "HSL"
)

// ColorSpace is an immutable descriptor of a color space: exactly three
// axes in a fixed order, a default axis, and (for HSV/HSL) which axis
// may be displayed as a polar angle.
//
// Invariant: axes are uniquely keyed and DefaultAxisKey names one of
// them.
type ColorSpace struct {
	id             ID
	axes           [3]Axis
	defaultAxisKey string
	polarAxisKey   string // "" if this space has no polar axis
}

func newColorSpace(id ID, axes [3]Axis, defaultAxisKey, polarAxisKey string) ColorSpace {
	seen := make(map[string]bool, 3)
	for _, a := range axes {
		if seen[a.Key] {
			panic(fmt.Sprintf("space: duplicate axis key %q in color space %s", a.Key, id))
		}
		seen[a.Key] = true
	}
	if !seen[defaultAxisKey] {
		panic(fmt.Sprintf("space: default axis %q not found in color space %s", defaultAxisKey, id))
	}
	if polarAxisKey != "" && !seen[polarAxisKey] {
		panic(fmt.Sprintf("space: polar axis %q not found in color space %s", polarAxisKey, id))
	}
	return ColorSpace{id: id, axes: axes, defaultAxisKey: defaultAxisKey, polarAxisKey: polarAxisKey}
}

func (s ColorSpace) ID() ID { return s.id }

// Axes returns the three axes in their canonical order.
func (s ColorSpace) Axes() [3]Axis { return s.axes }

// DefaultAxis returns the axis named by DefaultAxisKey.
func (s ColorSpace) DefaultAxis() Axis {
	a, _ := s.AxisByKey(s.defaultAxisKey)
	return a
}

// AxisByKey looks up an axis by its key.
func (s ColorSpace) AxisByKey(key string) (Axis, bool) {
	for _, a := range s.axes {
		if a.Key == key {
			return a, true
		}
	}
	return Axis{}, false
}

// AxisIndex returns the position (0, 1 or 2) of axis within this space,
// or -1 if it does not belong to this space.
func (s ColorSpace) AxisIndex(axis Axis) int {
	for i, a := range s.axes {
		if a.Key == axis.Key {
			return i
		}
	}
	return -1
}

// AvailablePolarAxis returns the space's hue-equivalent axis when one
// exists AND it differs from current — so the polar remap retains two
// free axes to work with. Returns false otherwise, including when the
// UI is currently fixing the would-be polar axis.
func (s ColorSpace) AvailablePolarAxis(current Axis) (Axis, bool) {
	if s.polarAxisKey == "" {
		return Axis{}, false
	}
	if current.Key == s.polarAxisKey {
		return Axis{}, false
	}
	return s.AxisByKey(s.polarAxisKey)
}

// HasPolarAxis reports whether this space declares any polar axis at all.
func (s ColorSpace) HasPolarAxis() bool { return s.polarAxisKey != "" }

var registry = buildRegistry()

func buildRegistry() map[ID]ColorSpace {
	r := func(key, name, unit string, min, max, def int) Axis {
		a, err := NewAxis(key, name, unit, min, max, def)
		if err != nil {
			panic(err)
		}
		return a
	}

	rgb := newColorSpace(RGB, [3]Axis{
		r("r", "Red", "", 0, 255, 128),
		r("g", "Green", "", 0, 255, 128),
		r("b", "Blue", "", 0, 255, 128),
	}, "r", "")

	hsv := newColorSpace(HSV, [3]Axis{
		r("h", "Hue", "°", 0, 360, 0),
		r("s", "Saturation", "%", 0, 100, 100),
		r("v", "Value", "%", 0, 100, 100),
	}, "v", "h")

	hsl := newColorSpace(HSL, [3]Axis{
		r("h", "Hue", "°", 0, 360, 0),
		r("s", "Saturation", "%", 0, 100, 100),
		r("l", "Lightness", "%", 0, 100, 50),
	}, "l", "h")

	return map[ID]ColorSpace{RGB: rgb, HSV: hsv, HSL: hsl}
}

// AllSpaces returns all registered color spaces, in a stable order.
func AllSpaces() []ColorSpace {
	return []ColorSpace{registry[RGB], registry[HSV], registry[HSL]}
}

// ByID looks up a color space by its string id ("RGB", "HSV", "HSL").
func ByID(id string) (ColorSpace, bool) {
	cs, ok := registry[ID(id)]
	return cs, ok
}

// Format renders coords (each in [0, 1], in axis order) the way the
// shared color serializer does: "<SPACE>: n1<u1> n2<u2> n3<u3>" with
// n_i = round(coords[i] * axis_i.Max).
func Format(cs ColorSpace, coords [3]float64) string {
	axes := cs.Axes()
	return fmt.Sprintf("%s: %d%s %d%s %d%s",
		cs.id,
		axes[0].Denormalize(coords[0]), axes[0].Unit,
		axes[1].Denormalize(coords[1]), axes[1].Unit,
		axes[2].Denormalize(coords[2]), axes[2].Unit,
	)
}
