package quarkgl

import "gel/vecmath"

// Ray is a half-line Origin + t*Dir, t >= 0.
type Ray struct {
	Origin vecmath.Vec3
	Dir    vecmath.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) vecmath.Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }

// Hit describes the closest triangle under a pick ray.
type Hit struct {
	MeshID   int
	Triangle int // index of the first vertex index of the triangle in Mesh.Indices
	Point    vecmath.Vec3
	T        float32 // distance along the normalized ray
}

// PickRay returns the world-space ray through raster pixel (x, y) of a w*h
// target. It unprojects the pixel centre at window depth 0 and 1.
func (r *Renderer) PickRay(x, y int, s *Scene, w, h int) (Ray, bool) {
	if s == nil || w <= 0 || h <= 0 {
		return Ray{}, false
	}
	view := s.Camera.View()
	var proj vecmath.Mat4
	if r != nil {
		proj = r.projection(s.Camera, aspectOf(w, h))
	} else {
		proj = s.Camera.Projection(aspectOf(w, h))
	}
	vp := vecmath.Viewport(0, 0, float32(w), float32(h))

	wx := float32(x) + 0.5
	wy := float32(h) - (float32(y) + 0.5)
	near := vecmath.Unproject(vecmath.V3(wx, wy, 0), view, proj, vp)
	far := vecmath.Unproject(vecmath.V3(wx, wy, 1), view, proj, vp)
	dir := far.Sub(near)
	if !(dir.LenSqr() > 0) {
		return Ray{}, false
	}
	return Ray{Origin: near, Dir: dir.Normalize()}, true
}

// Pick returns the closest enabled mesh triangle under raster pixel (x, y).
func (r *Renderer) Pick(x, y int, s *Scene, w, h int) (Hit, bool) {
	ray, ok := r.PickRay(x, y, s, w, h)
	if !ok {
		return Hit{}, false
	}
	best := Hit{MeshID: -1}
	found := false
	s.eachMesh(func(id int, m *Mesh) {
		if !m.Enabled {
			return
		}
		model := m.Transform
		if model == (vecmath.Mat4{}) {
			model = vecmath.Mat4Identity()
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			i0, i1, i2 := int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])
			if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
				continue
			}
			t, ok := intersectTriangle(ray,
				model.MulPoint(m.Vertices[i0].Pos),
				model.MulPoint(m.Vertices[i1].Pos),
				model.MulPoint(m.Vertices[i2].Pos))
			if !ok || (found && t >= best.T) {
				continue
			}
			best = Hit{MeshID: id, Triangle: i, Point: ray.At(t), T: t}
			found = true
		}
	})
	return best, found
}

const pickEpsilon = 1e-7

// intersectTriangle is the Möller–Trumbore test. Both windings hit.
func intersectTriangle(r Ray, a, b, c vecmath.Vec3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if det > -pickEpsilon && det < pickEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
