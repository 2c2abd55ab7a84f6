// Package oracle implements pixel-accurate readback from the
// classified framebuffer: translating a canvas coordinate into the
// color that was rendered there and, if any, the palette entry it was
// classified against.
package oracle

import (
	"github.com/flga/colorfield/colorspace"
	"github.com/flga/colorfield/palette"
	"github.com/flga/colorfield/render"
)

// ColorAt reads back the pixel at canvas coordinate (x, y): (None,
// None) outside canvas bounds or outside the color space; otherwise
// the rendered RGB color and, if the palette still has that many
// entries, the matching NamedColor.
func ColorAt(fb *render.Framebuffer, pal palette.Palette, x, y int) (*colorspace.RgbColor, *palette.NamedColor) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return nil, nil
	}

	flip := fb.Height - 1 - y
	px := fb.At(x, flip)
	if px.A == render.OutsideColorSpace {
		return nil, nil
	}

	idx := int(px.A)
	rgb, err := colorspace.NewRgbColor(float64(px.R)/255, float64(px.G)/255, float64(px.B)/255)
	if err != nil {
		return nil, nil
	}

	var named *palette.NamedColor
	if idx < len(pal) {
		named = &pal[idx]
	}
	return &rgb, named
}
