package quarkgl

import (
	"math"

	"gel/vecmath"
)

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32

	// Cached perspective of the last frame; resizes only touch the aspect.
	persp   vecmath.Perspective
	perspOK bool
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 2
	}
}

// DepthAt returns the stored window depth at (x, y), or false when depth
// testing is off or the pixel is outside the buffer.
func (r *Renderer) DepthAt(w, x, y int) (float32, bool) {
	if r == nil || !r.Depth || x < 0 || y < 0 || x >= w {
		return 0, false
	}
	idx := y*w + x
	if idx >= len(r.depthBuf) {
		return 0, false
	}
	return r.depthBuf[idx], true
}

// projection returns the camera projection for the given aspect, reusing the
// cached perspective when only the aspect changed.
func (r *Renderer) projection(cam Camera, aspect float32) vecmath.Mat4 {
	if cam.Type != CameraPerspective {
		return cam.Projection(aspect)
	}
	p := &r.persp
	if !r.perspOK || p.Fovy() != cam.fovy() || p.Znear() != cam.Near || p.Zfar() != cam.Far {
		r.persp = cam.Perspective(aspect)
		r.perspOK = true
	} else {
		p.SetAspect(aspect)
	}
	return r.persp.Mat4()
}

func aspectOf(w, h int) float32 {
	if h == 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	view := s.Camera.View()
	proj := r.projection(s.Camera, aspectOf(w, h))
	vp := vecmath.Viewport(0, 0, float32(w), float32(h))

	s.eachMesh(func(_ int, m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, vp, proj, view, m, s.Light)
	})
}

// screenPoint is a vertex in window space: x, y in pixels with y up, z in [0, 1].
type screenPoint = vecmath.Vec3

// toWindow runs the same mapping as vecmath.Project on a point already in clip
// space. Points on or behind the eye plane (w <= 0) are rejected.
func toWindow(clip vecmath.Vec4, vp vecmath.Vec4) (screenPoint, bool) {
	if !(clip[3] > 0) {
		return screenPoint{}, false
	}
	ndc := clip.Truncate().Div(clip[3])
	return screenPoint{
		(ndc[0]*0.5+0.5)*vp[2] + vp[0],
		(ndc[1]*0.5+0.5)*vp[3] + vp[1],
		ndc[2]*0.5 + 0.5,
	}, true
}

// rasterXY converts a window point to raster coordinates (y down).
func rasterXY(p screenPoint, h int) (x, y int) {
	return int(math.Floor(float64(p[0]))), int(math.Floor(float64(float32(h) - p[1])))
}

// guard keeps rasterization loops bounded for points far outside the target.
func inGuardBand(p screenPoint, w, h int) bool {
	gw, gh := float32(4*w), float32(4*h)
	return p[0] > -gw && p[0] < float32(w)+gw && p[1] > -gh && p[1] < float32(h)+gh
}

func (r *Renderer) renderMesh(t Target, w, h int, vp vecmath.Vec4, proj, view vecmath.Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (vecmath.Mat4{}) {
		model = vecmath.Mat4Identity()
	}

	mvp := vecmath.Mat4Mul(proj, vecmath.Mat4Mul(view, model))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		s0, ok0 := toWindow(mvp.MulVec4(v0.Pos.Extend(1)), vp)
		s1, ok1 := toWindow(mvp.MulVec4(v1.Pos.Extend(1)), vp)
		s2, ok2 := toWindow(mvp.MulVec4(v2.Pos.Extend(1)), vp)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		if !inGuardBand(s0, w, h) || !inGuardBand(s1, w, h) || !inGuardBand(s2, w, h) {
			continue
		}

		x0, y0 := rasterXY(s0, h)
		x1, y1 := rasterXY(s1, h)
		x2, y2 := rasterXY(s2, h)

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			n := triangleNormal(model.MulPoint(v0.Pos), model.MulPoint(v1.Pos), model.MulPoint(v2.Pos))
			base = base.MulScalar(lightIntensity(light, n))
		}

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, x0, y0, x1, y1, base)
			r.drawLine(t, x1, y1, x2, y2, base)
			r.drawLine(t, x2, y2, x0, y0, base)
		case RenderSolidVertexColor:
			r.fillTriangle(t, w, h, x0, y0, s0[2], v0.Color, x1, y1, s1[2], v1.Color, x2, y2, s2[2], v2.Color)
		default:
			r.fillTriangleFlat(t, w, h, x0, y0, s0[2], x1, y1, s1[2], x2, y2, s2[2], base)
		}
	}
}

func triangleNormal(a, b, c vecmath.Vec3) vecmath.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n == (vecmath.Vec3{}) {
		return n
	}
	return n.Normalize()
}

func lightIntensity(l Light, n vecmath.Vec3) float32 {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	if l.Dir == (vecmath.Vec3{}) || n == (vecmath.Vec3{}) {
		return amb
	}
	d := n.Dot(l.Dir.Normalize().Neg())
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// Window depth, already in [0,1] for points inside the frustum.
	d := z
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangleFlat(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, c0 Color, x1, y1 int, z1 float32, c1 Color, x2, y2 int, z2 float32, c2 Color) {
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	r0, g0, b0 := float32(c0.R), float32(c0.G), float32(c0.B)
	r1, g1, b1 := float32(c1.R), float32(c1.G), float32(c1.B)
	r2, g2, b2 := float32(c2.R), float32(c2.G), float32(c2.B)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			rr := uint8(clampF32(a0*r0+a1*r1+a2*r2, 0, 255))
			gg := uint8(clampF32(a0*g0+a1*g1+a2*g2, 0, 255))
			bb := uint8(clampF32(a0*b0+a1*b1+a2*b2, 0, 255))
			t.SetPixel(x, y, Color{R: rr, G: gg, B: bb, A: 0xFF})
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
