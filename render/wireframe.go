package render

import "github.com/flga/colorfield/geom"

// BuildWireframe produces the volume-mode wireframe (cube or cylinder,
// matching the request's polar setting) under the same camera Pass A
// used, or nil for a 2D request.
func BuildWireframe(req RenderRequest, width, height int) *wireframeGeometry {
	if req.Mode != Volume3D {
		return nil
	}

	rc := buildRequestContext(req)
	var wire geom.Wireframe
	if req.Polar {
		wire = geom.CylinderWireframe(rc.box, rc.cylinderAxes)
	} else {
		wire = geom.CubeWireframe(rc.box)
	}

	return &wireframeGeometry{
		wire: wire,
		mvp:  buildMVP(req, float32(width)/float32(height)),
	}
}
