package quarkgl

import (
	"math"

	"gel/vecmath"
)

// maxPitch keeps the eye off the poles, where the look-at side axis flips.
const maxPitch = math.Pi/2 - 1e-3

// OrbitController provides basic orbit/zoom/pan interactions for a camera.
//
// It does not depend on any input system; callers feed it deltas.
type OrbitController struct {
	Target vecmath.Vec3
	Yaw    float32 // radians, around +Y
	Pitch  float32 // radians, around +X
	Radius float32

	MinRadius float32
	MaxRadius float32
}

func (c *OrbitController) radius() float32 {
	r := c.Radius
	if r == 0 {
		r = 3
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}

func (c *OrbitController) rotation() vecmath.Mat4 {
	return vecmath.Mat4Mul(vecmath.Mat4RotateY(c.Yaw), vecmath.Mat4RotateX(c.Pitch))
}

// Eye returns the camera position implied by the controller state.
func (c *OrbitController) Eye() vecmath.Vec3 {
	p := c.rotation().MulVec4(vecmath.V4(0, 0, c.radius(), 1))
	return c.Target.Add(p.Truncate())
}

// Apply writes the controller state into cam.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	cam.Position = c.Eye()
	cam.Target = c.Target
	if cam.Up == (vecmath.Vec3{}) {
		cam.Up = vecmath.V3(0, 1, 0)
	}
}

// Rotate adds the deltas to yaw and pitch. Pitch is clamped to just short of
// straight up or down.
func (c *OrbitController) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

func (c *OrbitController) Zoom(delta float32) {
	c.Radius = c.radius() + delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

// Pan moves the orbit target in the camera's screen plane.
func (c *OrbitController) Pan(dx, dy float32) {
	rot := c.rotation()
	right := rot.MulDir(vecmath.V3(1, 0, 0))
	up := rot.MulDir(vecmath.V3(0, 1, 0))
	c.Target = c.Target.Add(right.Mul(dx)).Add(up.Mul(dy))
}
