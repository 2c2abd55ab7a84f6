package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/flga/colorfield/geom"
)

// screenPoint is a mesh vertex after the model-view-projection
// transform and viewport mapping: integer-ish pixel coordinates plus
// the depth and color_coord to interpolate across a triangle or line.
type screenPoint struct {
	x, y       float32
	depth      float32
	colorCoord mgl32.Vec3
	ok         bool
}

func project(mvp mgl32.Mat4, v geom.Vertex, width, height int) screenPoint {
	clip := mvp.Mul4x1(mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], 1})
	if clip[3] <= 1e-6 {
		return screenPoint{}
	}
	invW := 1 / clip[3]
	ndcX, ndcY, ndcZ := clip[0]*invW, clip[1]*invW, clip[2]*invW
	return screenPoint{
		x:          (ndcX*0.5 + 0.5) * float32(width),
		y:          (ndcY*0.5 + 0.5) * float32(height),
		depth:      ndcZ,
		colorCoord: v.ColorCoord,
		ok:         true,
	}
}

func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// shadeFunc computes a fragment's final pixel from its interpolated
// color_coord, or reports keep=false to leave the framebuffer
// untouched. The field shader always keeps its fragments: masked ones
// (such as out-of-disk polar pixels) are written as the Outside
// sentinel, with depth.
type shadeFunc func(colorCoord mgl32.Vec3) (p Pixel, keep bool)

// rasterizeMesh draws mesh's triangles into fb under mvp, with a
// standard nearer-wins depth test and depth write.
func rasterizeMesh(fb *Framebuffer, mesh geom.Mesh, mvp mgl32.Mat4, shade shadeFunc) {
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := project(mvp, mesh.Vertices[mesh.Indices[i]], fb.Width, fb.Height)
		v1 := project(mvp, mesh.Vertices[mesh.Indices[i+1]], fb.Width, fb.Height)
		v2 := project(mvp, mesh.Vertices[mesh.Indices[i+2]], fb.Width, fb.Height)
		if !v0.ok || !v1.ok || !v2.ok {
			continue
		}
		rasterizeTriangle(fb, v0, v1, v2, shade)
	}
}

func rasterizeTriangle(fb *Framebuffer, v0, v1, v2 screenPoint, shade shadeFunc) {
	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}

	minX := minF(v0.x, v1.x, v2.x)
	maxX := maxF(v0.x, v1.x, v2.x)
	minY := minF(v0.y, v1.y, v2.y)
	maxY := maxF(v0.y, v1.y, v2.y)

	x0 := clampInt(int(minX), 0, fb.Width-1)
	x1 := clampInt(int(maxX)+1, 0, fb.Width-1)
	y0 := clampInt(int(minY), 0, fb.Height-1)
	y1 := clampInt(int(maxY)+1, 0, fb.Height-1)

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			fx, fy := float32(px)+0.5, float32(py)+0.5
			w0 := edgeFn(v1.x, v1.y, v2.x, v2.y, fx, fy)
			w1 := edgeFn(v2.x, v2.y, v0.x, v0.y, fx, fy)
			w2 := edgeFn(v0.x, v0.y, v1.x, v1.y, fx, fy)
			inside := (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)
			if !inside {
				continue
			}
			w0, w1, w2 = w0/area, w1/area, w2/area

			depth := w0*v0.depth + w1*v1.depth + w2*v2.depth
			if depth >= fb.DepthAt(px, py) {
				continue
			}

			cc := mgl32.Vec3{
				w0*v0.colorCoord[0] + w1*v1.colorCoord[0] + w2*v2.colorCoord[0],
				w0*v0.colorCoord[1] + w1*v1.colorCoord[1] + w2*v2.colorCoord[1],
				w0*v0.colorCoord[2] + w1*v1.colorCoord[2] + w2*v2.colorCoord[2],
			}
			p, keep := shade(cc)
			if !keep {
				continue
			}
			fb.Set(px, py, p, depth)
		}
	}
}

// rasterizeWireframeOverlay draws wf as 1px lines blended over fb,
// respecting a depth test against the stored Pass-A depth with
// epsilon slack, without writing depth itself.
func rasterizeWireframeOverlay(fb *Framebuffer, wf geom.Wireframe, mvp mgl32.Mat4, color Pixel, alpha float32, epsilon float32) {
	for i := 0; i+1 < len(wf.Indices); i += 2 {
		a := projectWire(mvp, wf.Vertices[wf.Indices[i]], fb.Width, fb.Height)
		b := projectWire(mvp, wf.Vertices[wf.Indices[i+1]], fb.Width, fb.Height)
		if !a.ok || !b.ok {
			continue
		}
		drawLine(fb, a, b, color, alpha, epsilon)
	}
}

func projectWire(mvp mgl32.Mat4, v geom.WireVertex, width, height int) screenPoint {
	return project(mvp, geom.Vertex{Position: v.Position}, width, height)
}

// drawLine walks the segment in whichever axis has the larger extent,
// interpolating depth, and blends into fb where the depth test passes.
func drawLine(fb *Framebuffer, a, b screenPoint, color Pixel, alpha, epsilon float32) {
	dx, dy := b.x-a.x, b.y-a.y
	steps := int(maxF(absF(dx), absF(dy)))
	if steps == 0 {
		blendPixel(fb, int(a.x), int(a.y), a.depth, color, alpha, epsilon)
		return
	}
	for s := 0; s <= steps; s++ {
		t := float32(s) / float32(steps)
		x := a.x + dx*t
		y := a.y + dy*t
		depth := a.depth + (b.depth-a.depth)*t
		blendPixel(fb, int(x), int(y), depth, color, alpha, epsilon)
	}
}

// blendPixel composes color (alpha straight, (SRC_ALPHA,
// ONE_MINUS_SRC_ALPHA)) over the existing display pixel at (x,y),
// updating its alpha too so the wire remains visible even over an
// otherwise fully-transparent (culled) region.
func blendPixel(fb *Framebuffer, x, y int, depth float32, color Pixel, srcAlpha, epsilon float32) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	if depth > fb.DepthAt(x, y)+epsilon {
		return
	}
	dst := fb.At(x, y)
	dstAlpha := float32(dst.A) / 255
	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)

	out := Pixel{A: uint8(outAlpha*255 + 0.5)}
	if outAlpha > 0 {
		out.R = blendChannel(dst.R, dstAlpha, color.R, srcAlpha, outAlpha)
		out.G = blendChannel(dst.G, dstAlpha, color.G, srcAlpha, outAlpha)
		out.B = blendChannel(dst.B, dstAlpha, color.B, srcAlpha, outAlpha)
	}
	fb.Set(x, y, out, fb.DepthAt(x, y))
}

func blendChannel(dst uint8, dstAlpha float32, src uint8, srcAlpha, outAlpha float32) uint8 {
	v := (float32(src)*srcAlpha + float32(dst)*dstAlpha*(1-srcAlpha)) / outAlpha
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

func minF(vs ...float32) float32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxF(vs ...float32) float32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
