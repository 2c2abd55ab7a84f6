// Package geom is the shape generator: it produces vertex+index buffers
// for the 2D slice face, the sliced 3D cube and cylinder (with
// wireframes), and the camera-aligned internal cross-sections used to
// shade the cube's interior when outer fragments are culled.
//
// All position and color-coordinate math is float32, matching the
// precision the Field Renderer's software fragment stage runs at.
package geom

import "github.com/go-gl/mathgl/mgl32"

// CubeSize3D is the world-space size of the rendered cube in volume
// mode; color coordinates in [0, 1] are centered on the origin at this
// size.
const CubeSize3D = 1.1

// Vertex is one point of a shaded mesh: its camera-space position and
// the color-space coordinate (each in [0, 1]) it represents.
type Vertex struct {
	Position   mgl32.Vec3
	ColorCoord mgl32.Vec3
}

// WireVertex is one endpoint of a wireframe line segment; wireframe
// geometry carries no color coordinate.
type WireVertex struct {
	Position mgl32.Vec3
}

// Mesh is a vertex+index buffer of shaded triangles.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Append merges other's vertices and (index-shifted) indices into m.
func (m *Mesh) Append(other Mesh) {
	base := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+base)
	}
}

// Wireframe is a vertex+index buffer of line segments (index pairs).
type Wireframe struct {
	Vertices []WireVertex
	Indices  []uint16
}

// Append merges other's vertices and (index-shifted) indices into w.
func (w *Wireframe) Append(other Wireframe) {
	base := uint16(len(w.Vertices))
	w.Vertices = append(w.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		w.Indices = append(w.Indices, idx+base)
	}
}

func (w *Wireframe) addSegment(a, b mgl32.Vec3) {
	base := uint16(len(w.Vertices))
	w.Vertices = append(w.Vertices, WireVertex{Position: a}, WireVertex{Position: b})
	w.Indices = append(w.Indices, base, base+1)
}

// Box is a sub-box of the unit cube: per-axis [lo, hi] ranges, each in
// [0, 1], axis-ordered (0=first axis, 1=second, 2=third).
type Box struct {
	Lo, Hi [3]float32
}

// UnitBox is the full [0,1]^3 cube.
var UnitBox = Box{Lo: [3]float32{0, 0, 0}, Hi: [3]float32{1, 1, 1}}

// otherAxes returns the two axis indices other than axis, ascending.
func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// cornerIndex composes a 3-bit corner index from per-axis bits (1 = hi,
// 0 = lo), per the convention bit k selects hi[k] vs lo[k].
func cornerIndex(bit0, bit1, bit2 int) int {
	return bit0 | bit1<<1 | bit2<<2
}

// cornerCoord returns the color-space coordinate of corner i of box.
func cornerCoord(i int, box Box) mgl32.Vec3 {
	var c [3]float32
	for k := 0; k < 3; k++ {
		if (i>>uint(k))&1 == 1 {
			c[k] = box.Hi[k]
		} else {
			c[k] = box.Lo[k]
		}
	}
	return mgl32.Vec3{c[0], c[1], c[2]}
}

// ColorCoordToPosition centers a [0,1]^3 color coordinate on the origin
// at the requested world size: (c - 0.5) * size.
func ColorCoordToPosition(c mgl32.Vec3, size float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(c[0] - 0.5) * size,
		(c[1] - 0.5) * size,
		(c[2] - 0.5) * size,
	}
}
