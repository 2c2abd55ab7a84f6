package geom

import "github.com/go-gl/mathgl/mgl32"

// Face2D builds the single camera-facing quad used by the 2D slice
// mode: a unit square spanning clip space directly, with the fixed
// axis held at its slice value and the two free axes (lower index
// first) mapped to screen X and screen Y respectively. The quad
// carries no separate projection; the orchestrator renders it with an
// identity camera.
func Face2D(box Box, fixedAxis int) Mesh {
	u, v := otherAxes(fixedAxis)
	sliceVal := box.Lo[fixedAxis]

	uv := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	verts := make([]Vertex, 4)
	for i, c := range uv {
		var coord [3]float32
		coord[fixedAxis] = sliceVal
		coord[u] = c[0]
		coord[v] = c[1]

		verts[i] = Vertex{
			Position:   mgl32.Vec3{c[0]*2 - 1, c[1]*2 - 1, 0},
			ColorCoord: mgl32.Vec3{coord[0], coord[1], coord[2]},
		}
	}
	return Mesh{
		Vertices: verts,
		Indices:  []uint16{0, 1, 2, 1, 2, 3},
	}
}
