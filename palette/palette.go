// Package palette holds named color palettes and the nearest-color
// classifier used to shade palette-membership regions of a rendered
// color field.
package palette

import (
	"fmt"

	"github.com/flga/colorfield/cferr"
	"github.com/flga/colorfield/colorspace"
)

// MaxPaletteColors is the hard ceiling on Palette length. Two indices
// (254, 255) are reserved by the classified-pixel encoding, so the
// encoding itself could carry at most 254 entries; 200 leaves headroom
// below that for whatever the host UI ever actually exposes.
const MaxPaletteColors = 200

// NoMatch is the reserved palette index meaning "no palette entry lies
// within the distance threshold."
const NoMatch = 254

// OutsideColorSpace is the reserved alpha byte meaning "this fragment
// does not lie within the coordinate space being visualized."
const OutsideColorSpace = 255

// NamedColor pairs a display name with an RGB value.
type NamedColor struct {
	Name string
	Rgb  colorspace.RgbColor
}

// Palette is an ordered list of named colors; position in the list is
// the palette index exposed to the classifier and to pixel readback.
type Palette []NamedColor

// New validates length <= MaxPaletteColors before returning the
// palette.
func New(colors ...NamedColor) (Palette, error) {
	if len(colors) > MaxPaletteColors {
		return nil, fmt.Errorf("palette: %w: %d entries exceeds max %d", cferr.ErrPaletteTooLarge, len(colors), MaxPaletteColors)
	}
	p := make(Palette, len(colors))
	copy(p, colors)
	return p, nil
}

// Clone returns an independent copy, used by the Orchestrator to
// snapshot the palette for the duration of a render.
func (p Palette) Clone() Palette {
	c := make(Palette, len(p))
	copy(c, p)
	return c
}
