package geom

// CubeSurface builds the 6-face shaded surface of box, scaled into
// world space at CubeSize3D. Each face is emitted as two triangles;
// face winding follows the (lo,lo)-(hi,lo)-(lo,hi)-(hi,hi) quad order
// of its two free axes.
func CubeSurface(box Box) Mesh {
	var m Mesh
	for axis := 0; axis < 3; axis++ {
		for dir := 0; dir < 2; dir++ {
			m.Append(cubeFace(box, axis, dir, CubeSize3D))
		}
	}
	return m
}

// cubeFace builds one axis-aligned face of box: the 4 corners whose
// axis-th bit equals dir.
func cubeFace(box Box, axis, dir int, size float32) Mesh {
	u, v := otherAxes(axis)
	bits := [3]int{}
	bits[axis] = dir

	quad := [4]int{}
	corners := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, c := range corners {
		bits[u] = c[0]
		bits[v] = c[1]
		quad[i] = cornerIndex(bits[0], bits[1], bits[2])
	}

	verts := make([]Vertex, 4)
	for i, ci := range quad {
		coord := cornerCoord(ci, box)
		verts[i] = Vertex{
			Position:   ColorCoordToPosition(coord, size),
			ColorCoord: coord,
		}
	}
	return Mesh{
		Vertices: verts,
		Indices:  []uint16{0, 1, 2, 1, 2, 3},
	}
}

// CubeWireframe builds the 12 edges of the sliced box plus the 12
// edges of the full unit cube, so the viewer can always see the slice
// boundary against the whole color space.
func CubeWireframe(box Box) Wireframe {
	var w Wireframe
	w.Append(cubeEdges(box, CubeSize3D))
	w.Append(cubeEdges(UnitBox, CubeSize3D))
	return w
}

// cubeEdges emits one segment per (corner, axis) pair whose axis bit
// of the corner is 1, connecting it to the corner with that bit
// cleared. This visits each of the cube's 12 edges exactly once.
func cubeEdges(box Box, size float32) Wireframe {
	var w Wireframe
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			if (i>>uint(axis))&1 != 1 {
				continue
			}
			j := i ^ (1 << uint(axis))
			a := ColorCoordToPosition(cornerCoord(i, box), size)
			b := ColorCoordToPosition(cornerCoord(j, box), size)
			w.addSegment(a, b)
		}
	}
	return w
}
