package geom

import "testing"

func TestCubeSurfaceHasSixFaces(t *testing.T) {
	m := CubeSurface(Box{Lo: [3]float32{0.25, 0, 0}, Hi: [3]float32{0.75, 1, 1}})
	if len(m.Vertices) != 6*4 {
		t.Fatalf("got %d vertices, want %d", len(m.Vertices), 6*4)
	}
	if len(m.Indices) != 6*6 {
		t.Fatalf("got %d indices, want %d", len(m.Indices), 6*6)
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(m.Vertices))
		}
	}
}

func TestCubeWireframeHasTwentyFourEdges(t *testing.T) {
	w := CubeWireframe(Box{Lo: [3]float32{0.25, 0, 0}, Hi: [3]float32{0.75, 1, 1}})
	if len(w.Indices) != 24*2 {
		t.Fatalf("got %d line endpoints, want %d", len(w.Indices), 24*2)
	}
}

func TestFace2DMapsFirstFreeAxisToScreenX(t *testing.T) {
	// RGB slice, red fixed: free axes are green (index 1) then blue
	// (index 2). The bottom-left corner of the quad must carry
	// green=0, blue=0; the top-right must carry green=1, blue=1.
	box := Box{Lo: [3]float32{0.5, 0, 0}, Hi: [3]float32{0.5, 1, 1}}
	m := Face2D(box, 0)

	var bottomLeft, topRight *Vertex
	for i := range m.Vertices {
		v := &m.Vertices[i]
		if v.Position[0] < 0 && v.Position[1] < 0 {
			bottomLeft = v
		}
		if v.Position[0] > 0 && v.Position[1] > 0 {
			topRight = v
		}
	}
	if bottomLeft == nil || topRight == nil {
		t.Fatalf("expected quad to have opposite corners")
	}
	if bottomLeft.ColorCoord[1] != 0 || bottomLeft.ColorCoord[2] != 0 {
		t.Errorf("bottom-left color_coord = %v, want green=0 blue=0", bottomLeft.ColorCoord)
	}
	if topRight.ColorCoord[1] != 1 || topRight.ColorCoord[2] != 1 {
		t.Errorf("top-right color_coord = %v, want green=1 blue=1", topRight.ColorCoord)
	}
	for _, v := range m.Vertices {
		if v.ColorCoord[0] != 0.5 {
			t.Errorf("fixed axis leaked: color_coord.r = %v, want 0.5", v.ColorCoord[0])
		}
	}
}

func TestCylinderFullTurnHasNoWedgeFaces(t *testing.T) {
	box := Box{Lo: [3]float32{0, 0, 0}, Hi: [3]float32{1, 1, 1}}
	axes := CylinderAxes{Angular: 0, Radial: 1, Height: 2}
	full := CylinderSurface(box, axes)

	wedged := CylinderSurface(Box{Lo: [3]float32{0.25, 0, 0}, Hi: [3]float32{0.75, 1, 1}}, axes)
	if len(wedged.Vertices) <= len(full.Vertices) {
		t.Fatalf("expected wedge mesh to carry extra wedge-face vertices over a full turn")
	}
}

func TestCylinderWedgeWireframeHasFourGeneratorLines(t *testing.T) {
	box := Box{Lo: [3]float32{0.25, 0, 0}, Hi: [3]float32{0.75, 1, 1}}
	axes := CylinderAxes{Angular: 0, Radial: 1, Height: 2}
	w := CylinderWireframe(box, axes)
	// 4 generator segments are always appended last, 2 endpoints each.
	n := len(w.Indices)
	if n < 8 {
		t.Fatalf("wireframe has too few segments: %d indices", n)
	}
}

func TestRadialAxisOffsetGrowsWithDiameter(t *testing.T) {
	if RadialAxisOffset(1) <= RadialAxisOffset(0.5) {
		t.Errorf("expected larger diameter to have larger offset")
	}
	if RadialAxisOffset(0) != 0 {
		t.Errorf("zero diameter should have zero offset")
	}
}

func TestCrossSectionsProduceTriangles(t *testing.T) {
	box := Box{Lo: [3]float32{0, 0, 0}, Hi: [3]float32{1, 1, 1}}
	identity := [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	m := CrossSections(box, identity)
	if len(m.Indices)%3 != 0 {
		t.Fatalf("indices must form whole triangles, got %d", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(m.Vertices))
		}
	}
}

// TestCrossSectionsFanWindingIsConsistent guards the angular sort that
// orders each slice's polygon before fanning it into triangles: a
// correctly sorted convex polygon fans into triangles that all wind the
// same way, a desynced sort produces a mix of signs.
func TestCrossSectionsFanWindingIsConsistent(t *testing.T) {
	box := Box{Lo: [3]float32{0, 0, 0}, Hi: [3]float32{1, 1, 1}}
	identity := [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	m := CrossSections(box, identity)
	if len(m.Indices) == 0 {
		t.Fatal("expected at least one cross-section slice")
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position
		cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
		if cross <= 0 {
			t.Fatalf("triangle %d has non-positive signed area %f: fan triangulation should wind consistently", i/3, cross)
		}
	}
}
