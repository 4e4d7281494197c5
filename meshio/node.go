package meshio

import (
	"github.com/qmuntal/gltf"

	"gel/vecmath"
)

// NodeTransform returns the local matrix of a glTF node.
//
// A non-identity Matrix wins; otherwise the node's TRS properties are composed
// as T*R*S. Zero-valued Rotation and Scale (a node built in code without
// defaults) mean identity rotation and unit scale.
func NodeTransform(n *gltf.Node) vecmath.Mat4 {
	if n == nil {
		return vecmath.Mat4Identity()
	}
	if n.Matrix != ([16]float32{}) {
		m := vecmath.Mat4FromFloats(n.Matrix)
		if m != vecmath.Mat4Identity() {
			return m
		}
	}

	scale := vecmath.Vec3(n.Scale)
	if scale == (vecmath.Vec3{}) {
		scale = vecmath.V3(1, 1, 1)
	}
	rot := vecmath.Mat4Identity()
	if q := vecmath.Vec4(n.Rotation); q != (vecmath.Vec4{}) {
		rot = QuatMat4(q)
	}
	return vecmath.Mat4Mul(vecmath.Mat4Translate(vecmath.Vec3(n.Translation)), rot).Scale(scale)
}

// QuatMat4 returns the rotation matrix of the unit quaternion q stored as
// (x, y, z, w), the glTF component order. q is normalized first.
func QuatMat4(q vecmath.Vec4) vecmath.Mat4 {
	q = q.Normalize()
	x, y, z, w := q[0], q[1], q[2], q[3]
	return vecmath.Mat4{
		{1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0},
		{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0},
		{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}
}
