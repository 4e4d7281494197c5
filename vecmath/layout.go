package vecmath

import "unsafe"

// The sizes below are part of the API: a Mat4 is read by uniform uploads as
// sixteen packed float32s. These declarations fail to compile if padding ever
// creeps into the types.
var (
	_ [unsafe.Sizeof(Vec2{}) - 8]struct{}
	_ [8 - unsafe.Sizeof(Vec2{})]struct{}
	_ [unsafe.Sizeof(Vec3{}) - 12]struct{}
	_ [12 - unsafe.Sizeof(Vec3{})]struct{}
	_ [unsafe.Sizeof(Vec4{}) - 16]struct{}
	_ [16 - unsafe.Sizeof(Vec4{})]struct{}
	_ [unsafe.Sizeof(Mat4{}) - 64]struct{}
	_ [64 - unsafe.Sizeof(Mat4{})]struct{}
)

// Uniform is implemented by values that can be uploaded as a mat4 uniform.
type Uniform interface {
	Floats() [16]float32
}

var _ Uniform = Mat4{}

// Floats returns the sixteen elements in column-major order: column 0 occupies
// indices 0..3, column 1 indices 4..7, and so on.
func (m Mat4) Floats() [16]float32 {
	var a [16]float32
	for c := 0; c < 4; c++ {
		copy(a[c*4:c*4+4], m[c][:])
	}
	return a
}

// AppendFloats appends the column-major elements of m to dst.
func (m Mat4) AppendFloats(dst []float32) []float32 {
	for c := 0; c < 4; c++ {
		dst = append(dst, m[c][:]...)
	}
	return dst
}

// Mat4FromFloats builds a matrix from sixteen column-major elements.
func Mat4FromFloats(a [16]float32) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		copy(m[c][:], a[c*4:c*4+4])
	}
	return m
}
