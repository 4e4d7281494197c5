package vecmath

import "math"

// Mat4Perspective returns an OpenGL-style perspective projection.
//
// fovy is the vertical field of view in radians and aspect is width/height.
// View-space z in [-znear, -zfar] maps to NDC z in [-1, 1].
func Mat4Perspective(fovy, aspect, znear, zfar float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovy)/2))
	nf := zfar - znear

	var m Mat4
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = -(zfar + znear) / nf
	m[2][3] = -1
	m[3][2] = -(2 * zfar * znear) / nf
	return m
}

// Mat4Ortho returns an OpenGL-style orthographic projection of the given box.
func Mat4Ortho(left, right, bottom, top, znear, zfar float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zfar - znear
	return Mat4{
		{2 / rl, 0, 0, 0},
		{0, 2 / tb, 0, 0},
		{0, 0, -2 / fn, 0},
		{-(right + left) / rl, -(top + bottom) / tb, -(zfar + znear) / fn, 1},
	}
}

// Viewport returns the rectangle (x, y, width, height) in the form Project expects.
func Viewport(x, y, width, height float32) Vec4 { return Vec4{x, y, width, height} }

// Project maps the object-space point obj to window coordinates.
//
// The returned x and y are in viewport pixels; z is depth in [0, 1].
func Project(obj Vec3, modelview, proj Mat4, viewport Vec4) Vec3 {
	clip := Mat4MulV4(Mat4Mul(proj, modelview), obj.Extend(1))
	ndc := clip.Truncate().Div(clip[3])
	return Vec3{
		(ndc[0]*0.5+0.5)*viewport[2] + viewport[0],
		(ndc[1]*0.5+0.5)*viewport[3] + viewport[1],
		ndc[2]*0.5 + 0.5,
	}
}

// Unproject maps window coordinates back to object space. It inverts
// proj*modelview once; a singular chain gives NaN components.
func Unproject(win Vec3, modelview, proj Mat4, viewport Vec4) Vec3 {
	inv := Mat4Mul(proj, modelview).Inverse()
	ndc := Vec4{
		(win[0]-viewport[0])/viewport[2]*2 - 1,
		(win[1]-viewport[1])/viewport[3]*2 - 1,
		win[2]*2 - 1,
		1,
	}
	obj := Mat4MulV4(inv, ndc)
	return obj.Truncate().Div(obj[3])
}
