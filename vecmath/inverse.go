package vecmath

// minors holds the twelve 2x2 sub-determinants shared by Det and Inverse:
// six from columns 0-1 and six from columns 2-3.
type minors [12]float32

func (m Mat4) minors() minors {
	return minors{
		m[0][0]*m[1][1] - m[0][1]*m[1][0],
		m[0][0]*m[1][2] - m[0][2]*m[1][0],
		m[0][0]*m[1][3] - m[0][3]*m[1][0],
		m[0][1]*m[1][2] - m[0][2]*m[1][1],
		m[0][1]*m[1][3] - m[0][3]*m[1][1],
		m[0][2]*m[1][3] - m[0][3]*m[1][2],
		m[2][0]*m[3][1] - m[2][1]*m[3][0],
		m[2][0]*m[3][2] - m[2][2]*m[3][0],
		m[2][0]*m[3][3] - m[2][3]*m[3][0],
		m[2][1]*m[3][2] - m[2][2]*m[3][1],
		m[2][1]*m[3][3] - m[2][3]*m[3][1],
		m[2][2]*m[3][3] - m[2][3]*m[3][2],
	}
}

func (b *minors) det() float32 {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Det returns the determinant of m.
func (m Mat4) Det() float32 {
	b := m.minors()
	return b.det()
}

// Inverse returns the inverse of m, computed as adjugate/determinant.
//
// The determinant is not checked. For a singular (or nearly singular) matrix
// the division poisons the result with Inf/NaN; callers that cannot rule this
// out should test Det first.
func (m Mat4) Inverse() Mat4 {
	b := m.minors()
	inv := 1 / b.det()

	var out Mat4
	out[0][0] = (m[1][1]*b[11] - m[1][2]*b[10] + m[1][3]*b[9]) * inv
	out[0][1] = (m[0][2]*b[10] - m[0][1]*b[11] - m[0][3]*b[9]) * inv
	out[0][2] = (m[3][1]*b[5] - m[3][2]*b[4] + m[3][3]*b[3]) * inv
	out[0][3] = (m[2][2]*b[4] - m[2][1]*b[5] - m[2][3]*b[3]) * inv
	out[1][0] = (m[1][2]*b[8] - m[1][0]*b[11] - m[1][3]*b[7]) * inv
	out[1][1] = (m[0][0]*b[11] - m[0][2]*b[8] + m[0][3]*b[7]) * inv
	out[1][2] = (m[3][2]*b[2] - m[3][0]*b[5] - m[3][3]*b[1]) * inv
	out[1][3] = (m[2][0]*b[5] - m[2][2]*b[2] + m[2][3]*b[1]) * inv
	out[2][0] = (m[1][0]*b[10] - m[1][1]*b[8] + m[1][3]*b[6]) * inv
	out[2][1] = (m[0][1]*b[8] - m[0][0]*b[10] - m[0][3]*b[6]) * inv
	out[2][2] = (m[3][0]*b[4] - m[3][1]*b[2] + m[3][3]*b[0]) * inv
	out[2][3] = (m[2][1]*b[2] - m[2][0]*b[4] - m[2][3]*b[0]) * inv
	out[3][0] = (m[1][1]*b[7] - m[1][0]*b[9] - m[1][2]*b[6]) * inv
	out[3][1] = (m[0][0]*b[9] - m[0][1]*b[7] + m[0][2]*b[6]) * inv
	out[3][2] = (m[3][1]*b[1] - m[3][0]*b[3] - m[3][2]*b[0]) * inv
	out[3][3] = (m[2][0]*b[3] - m[2][1]*b[1] + m[2][2]*b[0]) * inv
	return out
}
