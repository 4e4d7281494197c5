// Package vecmath is a small single-precision linear algebra kernel for 3D graphics.
//
// It provides fixed-size vectors (Vec2, Vec3, Vec4), a 4x4 homogeneous matrix (Mat4)
// and the transform builders used to assemble a model-view-projection chain:
// translation, axis-angle rotation, scale, look-at, perspective and orthographic
// projection, inverse, and world/screen projection.
//
// Conventions (fixed across the package):
//
//	Storage:     column-major. Mat4 is [4]Vec4 and m[c][r] is row r of column c.
//	Vectors:     column vectors transformed by left multiplication (M*v).
//	Handedness:  right-handed view space, camera looks down -Z.
//	Clip depth:  OpenGL style, z in [-w, w]; near plane maps to NDC -1.
//	Rotation:    positive angles rotate counter-clockwise about the axis.
//
// Every operation is a pure function over values. Nothing allocates, blocks or
// returns an error. Degenerate input (normalizing a zero vector, inverting a
// singular matrix, a look-at whose up is parallel to the view direction) is a
// caller precondition violation and yields NaN/Inf-contaminated results.
package vecmath

//go:generate go run ../cmd/genvec -out vec_gen.go
