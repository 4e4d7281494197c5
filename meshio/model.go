// Package meshio turns model files and procedural shapes into quarkgl meshes.
package meshio

import (
	"math"

	"gel/quarkgl"
	"gel/vecmath"
)

// Model is a set of meshes with their vertices already in model space.
type Model struct {
	Name   string
	Meshes []quarkgl.Mesh
}

// Bounds returns the axis-aligned bounding box of all vertices. An empty model
// returns ok=false.
func (m *Model) Bounds() (lo, hi vecmath.Vec3, ok bool) {
	inf := float32(math.Inf(1))
	lo = vecmath.V3(inf, inf, inf)
	hi = lo.Neg()
	for _, mesh := range m.Meshes {
		for _, v := range mesh.Vertices {
			for i := 0; i < 3; i++ {
				lo[i] = min(lo[i], v.Pos[i])
				hi[i] = max(hi[i], v.Pos[i])
			}
			ok = true
		}
	}
	return lo, hi, ok
}

// Fit returns a transform that centres the model at the origin and scales its
// largest extent to size.
func (m *Model) Fit(size float32) vecmath.Mat4 {
	lo, hi, ok := m.Bounds()
	if !ok {
		return vecmath.Mat4Identity()
	}
	ext := hi.Sub(lo)
	longest := max(ext[0], ext[1], ext[2])
	s := float32(1)
	if longest > 0 {
		s = size / longest
	}
	centre := lo.Add(hi).Mul(0.5)
	return vecmath.Mat4Scale(vecmath.V3(s, s, s)).Translate(centre.Neg())
}

// VertexCount returns the total number of vertices.
func (m *Model) VertexCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Vertices)
	}
	return n
}

// TriangleCount returns the total number of triangles.
func (m *Model) TriangleCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Indices) / 3
	}
	return n
}
