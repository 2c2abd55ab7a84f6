package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/flga/colorfield/geom"
)

// DisplayImage is Pass B's output: a straightforward RGBA8 image, row
// 0 at the bottom to match the classified framebuffer's convention.
type DisplayImage struct {
	Width, Height int
	Pixels        []Pixel // alpha here is real display alpha, not a classifier index
}

func newDisplayImage(width, height int) *DisplayImage {
	return &DisplayImage{Width: width, Height: height, Pixels: make([]Pixel, width*height)}
}

func (d *DisplayImage) at(x, y int) Pixel {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return Pixel{}
	}
	return d.Pixels[y*d.Width+x]
}

func (d *DisplayImage) set(x, y int, p Pixel) {
	d.Pixels[y*d.Width+x] = p
}

// DisplayPass derives the visible image from the classified framebuffer:
// transparency rules, highlight dimming, boundary stroking, and (for
// volume mode) the blended wireframe overlay.
func DisplayPass(fb *Framebuffer, req RenderRequest, wireframe *wireframeGeometry) *DisplayImage {
	img := newDisplayImage(fb.Width, fb.Height)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			px := fb.At(x, y)
			img.set(x, y, shadePixel(fb, req, x, y, px))
		}
	}

	if req.Mode == Volume3D && wireframe != nil {
		overlayWireframe(img, fb, req, wireframe)
	}

	return img
}

func shadePixel(fb *Framebuffer, req RenderRequest, x, y int, px Pixel) Pixel {
	if px.A == OutsideColorSpace {
		return Pixel{}
	}
	idx := int(px.A)
	if idx == NoMatch && !req.ShowUnmatched {
		return Pixel{}
	}
	if req.HighlightMode == HideOther && req.HighlightPaletteIndex != NoHighlight && idx != req.HighlightPaletteIndex {
		return Pixel{}
	}

	base := applyHighlight(px, idx, req)

	if isBoundary(fb, req, x, y, idx) {
		return boundaryColor(base)
	}

	return Pixel{R: base.R, G: base.G, B: base.B, A: 255}
}

func applyHighlight(px Pixel, idx int, req RenderRequest) Pixel {
	if req.HighlightMode != DimOther {
		return px
	}
	if req.HighlightPaletteIndex == NoHighlight || idx == req.HighlightPaletteIndex {
		return px
	}
	return Pixel{
		R: uint8(float64(px.R) * 0.4),
		G: uint8(float64(px.G) * 0.4),
		B: uint8(float64(px.B) * 0.4),
		A: px.A,
	}
}

// isBoundary reports whether (x,y) sits on a classifier-region
// boundary against its left or bottom neighbor.
func isBoundary(fb *Framebuffer, req RenderRequest, x, y, idx int) bool {
	if req.HighlightMode == HideOther {
		return false
	}

	left := fb.At(x-1, y)
	bottom := fb.At(x, y-1)
	differs := func(n Pixel) bool {
		return n.A != OutsideColorSpace && int(n.A) != idx
	}
	boundary := (x > 0 && differs(left)) || (y > 0 && differs(bottom))
	if !boundary {
		return false
	}

	if req.HighlightMode == Boundary && req.HighlightPaletteIndex != NoHighlight {
		hi := req.HighlightPaletteIndex
		leftIdx, bottomIdx := int(left.A), int(bottom.A)
		matches := idx == hi || (x > 0 && differs(left) && leftIdx == hi) || (y > 0 && differs(bottom) && bottomIdx == hi)
		return matches
	}

	return req.ShowBoundaries
}

// boundaryColor contrasts with base's luminance: white below 0.3, black
// above 0.7, and a smoothstep-blended gray in between.
func boundaryColor(base Pixel) Pixel {
	l := 0.299*float64(base.R) + 0.587*float64(base.G) + 0.114*float64(base.B)
	l /= 255
	t := smoothstep(0.3, 0.7, l)
	v := uint8(255 * (1 - t))
	return Pixel{R: v, G: v, B: v, A: 255}
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// wireframeGeometry bundles the cube or cylinder wireframe with the
// MVP it should be rendered under, produced once per render alongside
// the surface geometry.
type wireframeGeometry struct {
	wire geom.Wireframe
	mvp  mgl32.Mat4
}

func overlayWireframe(img *DisplayImage, fb *Framebuffer, req RenderRequest, wf *wireframeGeometry) {
	const epsilon = float32(0.0001)
	const alpha = float32(0.1)
	white := Pixel{R: 255, G: 255, B: 255}

	// The overlay framebuffer borrows Pass A's depth (for occlusion) but
	// starts its color plane from the display image, so blending composes
	// over what Pass B already decided rather than the raw classified
	// buffer.
	overlay := NewFramebuffer(fb.Width, fb.Height)
	overlay.Depth = append([]float32(nil), fb.Depth...)
	for i := range overlay.Color {
		x, y := i%fb.Width, i/fb.Width
		overlay.Color[i] = img.at(x, y)
	}

	rasterizeWireframeOverlay(overlay, wf.wire, wf.mvp, white, alpha, epsilon)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.set(x, y, overlay.At(x, y))
		}
	}
}
