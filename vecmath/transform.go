package vecmath

import "math"

// Mat4Translate returns a translation by v: Mat4Translate(v)*p == p+v for a point p (w=1).
func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = v[0]
	m[3][1] = v[1]
	m[3][2] = v[2]
	return m
}

// Translate returns m*Mat4Translate(v). The translation happens in m's local space.
func (m Mat4) Translate(v Vec3) Mat4 {
	m[3] = m[0].Mul(v[0]).Add(m[1].Mul(v[1])).Add(m[2].Mul(v[2])).Add(m[3])
	return m
}

// Mat4Rotate returns a rotation of angle radians about axis (Rodrigues' formula).
//
// axis must be unit length. Looking from the tip of axis toward the origin, positive
// angles rotate counter-clockwise.
func Mat4Rotate(angle float32, axis Vec3) Mat4 {
	s, c := sincos(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	return Mat4{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// Rotate returns m*Mat4Rotate(angle, axis), rotating in m's local space.
func (m Mat4) Rotate(angle float32, axis Vec3) Mat4 {
	return Mat4Mul(m, Mat4Rotate(angle, axis))
}

func Mat4RotateX(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotateY(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotateZ(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Scale returns the diagonal matrix (v.x, v.y, v.z, 1).
func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = v[0]
	m[1][1] = v[1]
	m[2][2] = v[2]
	return m
}

// Scale returns m*Mat4Scale(v): m's first three columns scaled by v.
func (m Mat4) Scale(v Vec3) Mat4 {
	m[0] = m[0].Mul(v[0])
	m[1] = m[1].Mul(v[1])
	m[2] = m[2].Mul(v[2])
	return m
}

// Mat4LookAt returns a right-handed view matrix for a camera at eye looking at center.
//
// Rows 0..2 hold the camera side, up and backward axes. up must not be parallel
// to center-eye; if it is, the side axis has zero length and the result is NaN.
func Mat4LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

func sincos(angle float32) (s, c float32) {
	s64, c64 := math.Sincos(float64(angle))
	return float32(s64), float32(c64)
}
