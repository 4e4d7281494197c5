package vecmath

// Perspective is a perspective projection together with its parameters.
//
// The matrix is computed once and cached; SetAspect recomputes it in place,
// which is what a window resize needs.
type Perspective struct {
	fovy, aspect, znear, zfar float32

	mat Mat4
}

// NewPerspective returns a projection with vertical field of view fovy (radians).
func NewPerspective(fovy, aspect, znear, zfar float32) Perspective {
	p := Perspective{fovy: fovy, aspect: aspect, znear: znear, zfar: zfar}
	p.update()
	return p
}

func (p *Perspective) update() {
	p.mat = Mat4Perspective(p.fovy, p.aspect, p.znear, p.zfar)
}

// SetAspect changes the aspect ratio (width/height) and recomputes the matrix.
func (p *Perspective) SetAspect(aspect float32) {
	if p.aspect == aspect {
		return
	}
	p.aspect = aspect
	p.update()
}

func (p Perspective) Fovy() float32   { return p.fovy }
func (p Perspective) Aspect() float32 { return p.aspect }
func (p Perspective) Znear() float32  { return p.znear }
func (p Perspective) Zfar() float32   { return p.zfar }

// Mat4 returns the cached projection matrix.
func (p Perspective) Mat4() Mat4 { return p.mat }
