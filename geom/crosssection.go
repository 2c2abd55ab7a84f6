package geom

import "github.com/chewxy/math32"

// CrossSectionScale is the z-step between internal cross-section
// slices, as a fraction of the cube's world size.
const CrossSectionScale = 1.0 / 64.0

// edge is one of the unit cube's 12 edges, named by its two corner
// indices under the 3-bit corner convention.
type edge struct{ a, b int }

func cubeEdgeList() []edge {
	edges := make([]edge, 0, 12)
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			if (i>>uint(axis))&1 != 1 {
				continue
			}
			edges = append(edges, edge{a: i, b: i ^ (1 << uint(axis))})
		}
	}
	return edges
}

// transform applies rotation (a 3x3 matrix stored row-major) to v.
func transform(rotation [9]float32, v [3]float32) [3]float32 {
	return [3]float32{
		rotation[0]*v[0] + rotation[1]*v[1] + rotation[2]*v[2],
		rotation[3]*v[0] + rotation[4]*v[1] + rotation[5]*v[2],
		rotation[6]*v[0] + rotation[7]*v[1] + rotation[8]*v[2],
	}
}

// CrossSections generates camera-aligned slicing quads (as triangle
// fans) through box, one per CrossSectionScale step of the rotated
// cube's camera-space z range, so the interior can be shaded when
// outer surface fragments are culled.
//
// rotation is the current 3x3 camera rotation, row-major.
func CrossSections(box Box, rotation [9]float32) Mesh {
	const size = CubeSize3D

	corners := make([][3]float32, 8)
	rotated := make([][3]float32, 8)
	for i := 0; i < 8; i++ {
		coord := cornerCoord(i, box)
		pos := ColorCoordToPosition(coord, size)
		corners[i] = [3]float32{pos[0], pos[1], pos[2]}
		rotated[i] = transform(rotation, corners[i])
	}

	zMin, zMax := rotated[0][2], rotated[0][2]
	for _, r := range rotated {
		if r[2] < zMin {
			zMin = r[2]
		}
		if r[2] > zMax {
			zMax = r[2]
		}
	}

	edges := cubeEdgeList()
	colorCoords := make([]mgl32FloatVec3, 8)
	for i := 0; i < 8; i++ {
		colorCoords[i] = cornerCoord(i, box)
	}

	step := CrossSectionScale * size
	var m Mesh
	if step <= 0 {
		return m
	}
	for z := zMin + step; z < zMax; z += step {
		m.Append(crossSectionAtZ(z, corners, rotated, edges, colorCoords))
	}
	return m
}

type mgl32FloatVec3 = [3]float32

// crossSectionAtZ intersects all 12 cube edges with the camera-space
// plane Z=z and triangulates the resulting polygon by angular-sort fan
// triangulation around its centroid.
func crossSectionAtZ(z float32, corners, rotated [][3]float32, edges []edge, colorCoords []mgl32FloatVec3) Mesh {
	type hit struct {
		pos   [3]float32 // rotated (camera) space, for angular sort and emitted position
		coord mgl32FloatVec3
	}

	var hits []hit
	for _, e := range edges {
		za, zb := rotated[e.a][2], rotated[e.b][2]
		if (za <= z && zb <= z) || (za >= z && zb >= z) {
			continue
		}
		t := (z - za) / (zb - za)

		var pos [3]float32
		for k := 0; k < 3; k++ {
			pos[k] = rotated[e.a][k] + t*(rotated[e.b][k]-rotated[e.a][k])
		}

		ca, cb := colorCoords[e.a], colorCoords[e.b]
		coord := mgl32FloatVec3{
			ca[0] + t*(cb[0]-ca[0]),
			ca[1] + t*(cb[1]-ca[1]),
			ca[2] + t*(cb[2]-ca[2]),
		}
		hits = append(hits, hit{pos: pos, coord: coord})
	}

	if len(hits) < 3 {
		return Mesh{}
	}

	var cx, cy float32
	for _, h := range hits {
		cx += h.pos[0]
		cy += h.pos[1]
	}
	cx /= float32(len(hits))
	cy /= float32(len(hits))

	order := make([]int, len(hits))
	for i := range order {
		order[i] = i
	}
	angleOf := func(i int) float32 {
		return math32.Atan2(hits[i].pos[1]-cy, hits[i].pos[0]-cx)
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && angleOf(order[j]) < angleOf(order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	verts := make([]Vertex, len(hits))
	for i, oi := range order {
		h := hits[oi]
		verts[i] = Vertex{
			Position:   [3]float32{h.pos[0], h.pos[1], h.pos[2]},
			ColorCoord: h.coord,
		}
	}

	var idx []uint16
	for i := 0; i < len(verts)-2; i++ {
		idx = append(idx, 0, uint16(i+1), uint16(i+2))
	}

	return Mesh{Vertices: verts, Indices: idx}
}
