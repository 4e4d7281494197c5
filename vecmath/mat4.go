package vecmath

// Mat4 is a 4x4 matrix stored as four columns.
//
// m[c][r] is row r of column c. The sixteen floats are contiguous and
// column-major, which is the layout OpenGL-style uniform uploads expect.
type Mat4 [4]Vec4

// Mat4Identity returns the multiplicative identity.
func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Zero returns the additive identity. It is the same as Mat4{}.
func Mat4Zero() Mat4 { return Mat4{} }

// Mat4FromCols builds a matrix from four column vectors.
func Mat4FromCols(c0, c1, c2, c3 Vec4) Mat4 { return Mat4{c0, c1, c2, c3} }

func (m Mat4) Add(n Mat4) Mat4 {
	for c := 0; c < 4; c++ {
		m[c] = m[c].Add(n[c])
	}
	return m
}

func (m Mat4) Sub(n Mat4) Mat4 {
	for c := 0; c < 4; c++ {
		m[c] = m[c].Sub(n[c])
	}
	return m
}

// MulScalar scales every element by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	for c := 0; c < 4; c++ {
		m[c] = m[c].Mul(s)
	}
	return m
}

// Mat4Mul returns the product a*b. Column c of the result is the combination of
// a's columns weighted by column c of b.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col][row] =
				a[0][row]*b[col][0] +
					a[1][row]*b[col][1] +
					a[2][row]*b[col][2] +
					a[3][row]*b[col][3]
		}
	}
	return out
}

// Mat4MulV4 transforms the column vector v by m.
func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2] + m[3][0]*v[3],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2] + m[3][1]*v[3],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2] + m[3][2]*v[3],
		m[0][3]*v[0] + m[1][3]*v[1] + m[2][3]*v[2] + m[3][3]*v[3],
	}
}

// Mul returns m*n.
func (m Mat4) Mul(n Mat4) Mat4 { return Mat4Mul(m, n) }

// MulVec4 returns m*v.
func (m Mat4) MulVec4(v Vec4) Vec4 { return Mat4MulV4(m, v) }

// MulPoint transforms p as a homogeneous point (w=1) and drops w without dividing.
// It is meant for affine matrices.
func (m Mat4) MulPoint(p Vec3) Vec3 { return Mat4MulV4(m, p.Extend(1)).Truncate() }

// MulDir transforms d as a direction (w=0).
func (m Mat4) MulDir(d Vec3) Vec3 { return Mat4MulV4(m, d.Extend(0)).Truncate() }

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Row returns row i as a vector.
func (m Mat4) Row(i int) Vec4 { return Vec4{m[0][i], m[1][i], m[2][i], m[3][i]} }

// Col returns column i.
func (m Mat4) Col(i int) Vec4 { return m[i] }

// ApproxEqual reports whether every element of m is within eps of n.
func (m Mat4) ApproxEqual(n Mat4, eps float32) bool {
	for c := 0; c < 4; c++ {
		if !m[c].ApproxEqual(n[c], eps) {
			return false
		}
	}
	return true
}
