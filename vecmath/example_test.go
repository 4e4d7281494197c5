package vecmath_test

import (
	"fmt"

	"gel/vecmath"
)

func ExampleMat4Mul() {
	x := vecmath.Mat4Identity().MulScalar(3)
	y := vecmath.Mat4Identity()
	y[3][0] = 3
	y[3][1] = 2
	y[3][2] = 4

	z := vecmath.Mat4Mul(x, y)
	fmt.Println(z)
	// Output: [[3 0 0 0] [0 3 0 0] [0 0 3 0] [9 6 12 3]]
}

func ExampleMat4Translate() {
	m := vecmath.Mat4Mul(vecmath.Mat4Translate(vecmath.V3(3, 2, 4)), vecmath.Mat4Identity())
	fmt.Println(vecmath.Mat4MulV4(m, vecmath.V4(0, 0, 0, 1)))
	// Output: [3 2 4 1]
}

func ExampleProject() {
	view := vecmath.Mat4LookAt(vecmath.V3(0, 0, 5), vecmath.V3(0, 0, 0), vecmath.V3(0, 1, 0))
	proj := vecmath.Mat4Perspective(vecmath.DegToRad(90), 1, 0.1, 100)
	win := vecmath.Project(vecmath.V3(0, 0, 0), view, proj, vecmath.Viewport(0, 0, 640, 640))
	fmt.Printf("%.1f %.1f\n", win[0], win[1])
	// Output: 320.0 320.0
}
