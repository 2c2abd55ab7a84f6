package render

import "github.com/go-gl/mathgl/mgl32"

// cameraDistance and fovDegrees fix the volume-mode camera: far enough
// back, and wide enough, that a unit cube of CubeSize3D stays inside
// the viewport across any rotation.
const (
	cameraDistance = 3.0
	fovDegrees     = 45.0
	nearPlane      = 0.1
	farPlane       = 100.0
)

// buildMVP composes the model-view-projection matrix for req: identity
// for the flat 2D face (its vertices are already in clip space), or a
// perspective camera looking at the origin with the request's rotation
// applied, for the 3D volume.
func buildMVP(req RenderRequest, aspect float32) mgl32.Mat4 {
	if req.Mode == Slice2D {
		return mgl32.Ident4()
	}
	proj := mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, cameraDistance},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	return proj.Mul4(view).Mul4(effectiveRotation(req))
}

// effectiveRotation treats the zero matrix (an unset RotationMatrix
// field) as identity, since mgl32.Mat4's zero value is not a valid
// rotation.
func effectiveRotation(req RenderRequest) mgl32.Mat4 {
	if req.RotationMatrix == (mgl32.Mat4{}) {
		return mgl32.Ident4()
	}
	return req.RotationMatrix
}

// rotationRowMajor3x3 extracts the upper-left 3x3 of a column-major
// mgl32.Mat4 into a row-major [9]float32, the convention geom's
// cross-section generator expects.
func rotationRowMajor3x3(m mgl32.Mat4) [9]float32 {
	at := func(row, col int) float32 { return m[col*4+row] }
	return [9]float32{
		at(0, 0), at(0, 1), at(0, 2),
		at(1, 0), at(1, 1), at(1, 2),
		at(2, 0), at(2, 1), at(2, 2),
	}
}
