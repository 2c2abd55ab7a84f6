package render

import (
	"github.com/flga/colorfield/geom"
)

// polarRemap describes a 2D polar-slice request: which axis index (of
// the color space's 3) receives the angle and which receives the
// radius, computed from the screen-UV position of a fragment.
type polarRemap struct {
	active      bool
	angularAxis int
	radialAxis  int
}

// requestContext is the render request's configuration resolved into
// the concrete indices and box the Shape Generator and Pass A need,
// computed once per render.
type requestContext struct {
	box          geom.Box
	fixedAxis    int // meaningful only for Slice2D
	polar        polarRemap
	cylinderAxes geom.CylinderAxes // meaningful only for Volume3D && Polar
}

func buildRequestContext(req RenderRequest) requestContext {
	axes := req.ColorSpace.Axes()
	var box geom.Box
	for i, a := range axes {
		if rng, ok := req.AxisSlices[a.Key]; ok {
			box.Lo[i] = float32(a.Normalize(rng[0]))
			box.Hi[i] = float32(a.Normalize(rng[1]))
		} else {
			box.Lo[i], box.Hi[i] = 0, 1
		}
	}

	rc := requestContext{box: box}

	if req.Mode == Slice2D {
		current, _ := req.currentAxis()
		fixedIdx := req.ColorSpace.AxisIndex(current)
		rc.fixedAxis = fixedIdx

		if req.Polar {
			if angular, ok := req.ColorSpace.AvailablePolarAxis(current); ok {
				angularIdx := req.ColorSpace.AxisIndex(angular)
				radialIdx := 3 - fixedIdx - angularIdx
				rc.polar = polarRemap{active: true, angularAxis: angularIdx, radialAxis: radialIdx}
			}
		}
		return rc
	}

	// Volume3D: the default axis is never the polar (hue) axis for any
	// registered space, so it is safe to probe polar eligibility with it.
	if req.Polar {
		if angular, ok := req.ColorSpace.AvailablePolarAxis(req.ColorSpace.DefaultAxis()); ok {
			angularIdx := req.ColorSpace.AxisIndex(angular)
			heightIdx := req.ColorSpace.AxisIndex(req.ColorSpace.DefaultAxis())
			radialIdx := 3 - angularIdx - heightIdx
			rc.cylinderAxes = geom.CylinderAxes{Angular: angularIdx, Radial: radialIdx, Height: heightIdx}
		}
	}
	return rc
}
