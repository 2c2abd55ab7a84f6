package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"

	"github.com/flga/colorfield/colorspace"
	"github.com/flga/colorfield/geom"
	"github.com/flga/colorfield/palette"
	"github.com/flga/colorfield/space"
)

// FieldPass runs Pass A: it generates the request's geometry, rasterizes
// it under the request's camera, and returns the classified framebuffer.
func FieldPass(req RenderRequest, width, height int) (*Framebuffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rc := buildRequestContext(req)
	mesh := buildSurfaceGeometry(req, rc)
	mvp := buildMVP(req, float32(width)/float32(height))
	compiled := palette.Compile(req.Palette, req.Metric.ID)

	fb := NewFramebuffer(width, height)
	shade := fieldShader(req, rc, compiled)
	rasterizeMesh(fb, mesh, mvp, shade)
	return fb, nil
}

func buildSurfaceGeometry(req RenderRequest, rc requestContext) geom.Mesh {
	if req.Mode == Slice2D {
		return geom.Face2D(rc.box, rc.fixedAxis)
	}

	if req.Polar {
		return geom.CylinderSurface(rc.box, rc.cylinderAxes)
	}

	mesh := geom.CubeSurface(rc.box)
	if !req.ShowUnmatched || req.HighlightMode == HideOther {
		rotation := rotationRowMajor3x3(effectiveRotation(req))
		mesh.Append(geom.CrossSections(rc.box, rotation))
	}
	return mesh
}

// fieldShader closes over the request and returns the per-fragment
// function the rasterizer calls with an interpolated color_coord.
func fieldShader(req RenderRequest, rc requestContext, compiled palette.Compiled) shadeFunc {
	return func(coord mgl32.Vec3) (Pixel, bool) {
		if rc.polar.active {
			var outside bool
			coord, outside = polarRemapFragment(coord, rc.polar)
			if outside {
				return Outside, true
			}
		}

		rgb := evaluateColor(req.ColorSpace, coord)
		idx := palette.Classify32(rgb, compiled, req.Metric.ID, float32(req.DistanceThreshold))

		if idx == palette.NoMatch && !req.ShowUnmatched {
			return Outside, true
		}
		if req.HighlightMode == HideOther && req.HighlightPaletteIndex != NoHighlight && idx != req.HighlightPaletteIndex {
			return Outside, true
		}

		return Pixel{
			R: toByte(float64(rgb.X)),
			G: toByte(float64(rgb.Y)),
			B: toByte(float64(rgb.Z)),
			A: uint8(idx),
		}, true
	}
}

// polarRemapFragment implements the per-fragment polar remap: the two
// free-axis placeholder values are reinterpreted as a screen-space
// position, converted to (radius, angle), and written back onto the
// radial and angular axes.
func polarRemapFragment(coord mgl32.Vec3, p polarRemap) (remapped mgl32.Vec3, outside bool) {
	xRole, yRole := p.angularAxis, p.radialAxis
	if xRole > yRole {
		xRole, yRole = yRole, xRole
	}
	vx := coord[xRole]*2 - 1
	vy := coord[yRole]*2 - 1
	radius := math32.Sqrt(vx*vx + vy*vy)
	if radius > 1 {
		return coord, true
	}
	angle := math32.Atan2(vy, vx) / (2 * math32.Pi)
	if angle < 0 {
		angle += 1
	}
	coord[p.radialAxis] = radius
	coord[p.angularAxis] = angle
	return coord, false
}

func evaluateColor(cs space.ColorSpace, coord mgl32.Vec3) ms3.Vec {
	switch cs.ID() {
	case space.HSV:
		return colorspace.HsvToRgb32(coord[0], coord[1], coord[2])
	case space.HSL:
		return colorspace.HslToRgb32(coord[0], coord[1], coord[2])
	default:
		return ms3.Vec{X: coord[0], Y: coord[1], Z: coord[2]}
	}
}
