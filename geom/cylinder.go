package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CylinderRadialSegments is the polygon resolution used to approximate
// the cylinder's circular cross-section.
const CylinderRadialSegments = 16

// CylinderAxes declares which of the three color-space axes plays
// which geometric role in polar (cylinder) mode.
type CylinderAxes struct {
	Angular int
	Radial  int
	Height  int
}

// sagitta returns 1 - cos(halfSegmentAngle) for CylinderRadialSegments
// equal divisions of a full turn.
func sagitta() float32 {
	angle := 2 * math32.Pi / float32(CylinderRadialSegments)
	return 1 - math32.Cos(angle/2)
}

// RadialAxisOffset returns how far inward a vertex at the given
// diameter must be shifted so the segmented polygon's outer vertices
// stay within the true circle of that diameter.
func RadialAxisOffset(diameter float32) float32 {
	return diameter * sagitta()
}

// polarToXY converts a (theta, diameter) pair to the [0,1]^2 Cartesian
// position of a point on the corrected circle, per the polar
// conversion formula.
func polarToXY(theta, r float32) (x, y float32) {
	rPos := r - RadialAxisOffset(r)
	x = math32.Sin(2*math32.Pi*theta)*rPos/2 + 0.5
	y = math32.Cos(2*math32.Pi*theta)*rPos/2 + 0.5
	return x, y
}

func cylinderColorCoord(theta, r, height float32, axes CylinderAxes) mgl32.Vec3 {
	var c [3]float32
	c[axes.Angular] = theta
	c[axes.Radial] = r
	c[axes.Height] = height
	return mgl32.Vec3{c[0], c[1], c[2]}
}

func cylinderVertex(theta, r, height, size float32, axes CylinderAxes) Vertex {
	x, y := polarToXY(theta, r)
	return Vertex{
		Position:   ColorCoordToPosition(mgl32.Vec3{x, y, height}, size),
		ColorCoord: cylinderColorCoord(theta, r, height, axes),
	}
}

// isFullTurn reports whether [lo,hi] spans a complete wrap of the
// angular axis.
func isFullTurn(lo, hi float32) bool {
	return hi-lo >= 1-1e-6
}

// ringThetas returns the sampled angular positions across [lo, hi]: a
// closed ring of CylinderRadialSegments points for a full turn, or an
// open strip of CylinderRadialSegments+1 points (including both
// endpoints) for a wedge.
func ringThetas(lo, hi float32) []float32 {
	n := CylinderRadialSegments
	full := isFullTurn(lo, hi)
	count := n
	if !full {
		count = n + 1
	}
	out := make([]float32, count)
	for i := 0; i < count; i++ {
		out[i] = lo + float32(i)/float32(n)*(hi-lo)
	}
	return out
}

// ringPairs returns adjacent-index pairs spanning thetas, wrapping
// around for a closed ring.
func ringPairs(thetas []float32, full bool) [][2]int {
	n := len(thetas)
	pairs := make([][2]int, 0, n)
	limit := n - 1
	if full {
		limit = n
	}
	for i := 0; i < limit; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % n})
	}
	return pairs
}

func quad(v0, v1, v2, v3 Vertex) Mesh {
	return Mesh{
		Vertices: []Vertex{v0, v1, v2, v3},
		Indices:  []uint16{0, 1, 2, 1, 2, 3},
	}
}

// CylinderSurface builds the shaded surface of a sliced cylinder:
// top/bottom annular faces, outer band, inner band (if the radial
// range doesn't reach the axis), and wedge faces (if the angular range
// is less than a full turn). World size follows CubeSize3D.
func CylinderSurface(box Box, axes CylinderAxes) Mesh {
	const size = CubeSize3D
	thetaLo, thetaHi := box.Lo[axes.Angular], box.Hi[axes.Angular]
	rLo, rHi := box.Lo[axes.Radial], box.Hi[axes.Radial]
	hLo, hHi := box.Lo[axes.Height], box.Hi[axes.Height]
	full := isFullTurn(thetaLo, thetaHi)

	thetas := ringThetas(thetaLo, thetaHi)
	pairs := ringPairs(thetas, full)

	var m Mesh
	for _, p := range pairs {
		ti, tj := thetas[p[0]], thetas[p[1]]

		// top and bottom annular faces
		m.Append(quad(
			cylinderVertex(ti, rLo, hHi, size, axes),
			cylinderVertex(ti, rHi, hHi, size, axes),
			cylinderVertex(tj, rLo, hHi, size, axes),
			cylinderVertex(tj, rHi, hHi, size, axes),
		))
		m.Append(quad(
			cylinderVertex(ti, rLo, hLo, size, axes),
			cylinderVertex(ti, rHi, hLo, size, axes),
			cylinderVertex(tj, rLo, hLo, size, axes),
			cylinderVertex(tj, rHi, hLo, size, axes),
		))

		// outer band
		m.Append(quad(
			cylinderVertex(ti, rHi, hLo, size, axes),
			cylinderVertex(ti, rHi, hHi, size, axes),
			cylinderVertex(tj, rHi, hLo, size, axes),
			cylinderVertex(tj, rHi, hHi, size, axes),
		))

		// inner band, only if the radial range doesn't reach the axis
		if rLo > 0 {
			m.Append(quad(
				cylinderVertex(ti, rLo, hLo, size, axes),
				cylinderVertex(ti, rLo, hHi, size, axes),
				cylinderVertex(tj, rLo, hLo, size, axes),
				cylinderVertex(tj, rLo, hHi, size, axes),
			))
		}
	}

	if !full {
		m.Append(quad(
			cylinderVertex(thetaLo, rLo, hLo, size, axes),
			cylinderVertex(thetaLo, rHi, hLo, size, axes),
			cylinderVertex(thetaLo, rLo, hHi, size, axes),
			cylinderVertex(thetaLo, rHi, hHi, size, axes),
		))
		m.Append(quad(
			cylinderVertex(thetaHi, rLo, hLo, size, axes),
			cylinderVertex(thetaHi, rHi, hLo, size, axes),
			cylinderVertex(thetaHi, rLo, hHi, size, axes),
			cylinderVertex(thetaHi, rHi, hHi, size, axes),
		))
	}

	return m
}

// CylinderWireframe builds top/bottom circle (or arc) polylines for
// both the sliced wedge and the full cylinder, wedge-face outlines
// when wedged, and four generator lines spaced 90 degrees apart along
// the body.
func CylinderWireframe(box Box, axes CylinderAxes) Wireframe {
	const size = CubeSize3D
	thetaLo, thetaHi := box.Lo[axes.Angular], box.Hi[axes.Angular]
	rLo, rHi := box.Lo[axes.Radial], box.Hi[axes.Radial]
	hLo, hHi := box.Lo[axes.Height], box.Hi[axes.Height]
	full := isFullTurn(thetaLo, thetaHi)

	var w Wireframe
	w.Append(circlePolyline(thetaLo, thetaHi, rHi, hHi, size))
	w.Append(circlePolyline(thetaLo, thetaHi, rHi, hLo, size))
	w.Append(circlePolyline(0, 1, 1, 1, size))
	w.Append(circlePolyline(0, 1, 1, 0, size))

	if !full {
		for _, theta := range []float32{thetaLo, thetaHi} {
			a := ColorCoordToPositionFromPolar(theta, rLo, hLo, size)
			b := ColorCoordToPositionFromPolar(theta, rHi, hLo, size)
			c := ColorCoordToPositionFromPolar(theta, rHi, hHi, size)
			d := ColorCoordToPositionFromPolar(theta, rLo, hHi, size)
			w.addSegment(a, b)
			w.addSegment(b, c)
			w.addSegment(c, d)
			w.addSegment(d, a)
		}
	}

	for i := 0; i < 4; i++ {
		theta := float32(i) / 4
		a := ColorCoordToPositionFromPolar(theta, rHi, hLo, size)
		b := ColorCoordToPositionFromPolar(theta, rHi, hHi, size)
		w.addSegment(a, b)
	}

	return w
}

// ColorCoordToPositionFromPolar is the position-only half of
// cylinderVertex, exposed for wireframe construction which doesn't
// need a color_coord.
func ColorCoordToPositionFromPolar(theta, r, height, size float32) mgl32.Vec3 {
	x, y := polarToXY(theta, r)
	return ColorCoordToPosition(mgl32.Vec3{x, y, height}, size)
}

func circlePolyline(lo, hi, r, height, size float32) Wireframe {
	full := isFullTurn(lo, hi)
	thetas := ringThetas(lo, hi)
	pairs := ringPairs(thetas, full)

	var w Wireframe
	for _, p := range pairs {
		a := ColorCoordToPositionFromPolar(thetas[p[0]], r, height, size)
		b := ColorCoordToPositionFromPolar(thetas[p[1]], r, height, size)
		w.addSegment(a, b)
	}
	return w
}
