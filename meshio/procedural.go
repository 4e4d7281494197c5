package meshio

import (
	"math"

	"gel/quarkgl"
	"gel/vecmath"
)

// Cube returns an axis-aligned cube with edge length size centred at the
// origin. Each face has its own four vertices so normals stay flat; triangles
// wind counter-clockwise seen from outside.
func Cube(size float32) quarkgl.Mesh {
	h := size / 2
	faces := [6][3]vecmath.Vec3{
		// normal, u, v with u x v = normal
		{vecmath.V3(1, 0, 0), vecmath.V3(0, 1, 0), vecmath.V3(0, 0, 1)},
		{vecmath.V3(-1, 0, 0), vecmath.V3(0, 0, 1), vecmath.V3(0, 1, 0)},
		{vecmath.V3(0, 1, 0), vecmath.V3(0, 0, 1), vecmath.V3(1, 0, 0)},
		{vecmath.V3(0, -1, 0), vecmath.V3(1, 0, 0), vecmath.V3(0, 0, 1)},
		{vecmath.V3(0, 0, 1), vecmath.V3(1, 0, 0), vecmath.V3(0, 1, 0)},
		{vecmath.V3(0, 0, -1), vecmath.V3(0, 1, 0), vecmath.V3(1, 0, 0)},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	m := quarkgl.Mesh{
		Vertices: make([]quarkgl.Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		base := uint16(len(m.Vertices))
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(h)
			m.Vertices = append(m.Vertices, quarkgl.Vertex{Pos: p, Normal: n})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Torus returns a ring around the Y axis. major is the distance from the centre
// to the tube centre, minor the tube radius; segU and segV (at least 3) are
// the segment counts around the ring and around the tube.
func Torus(major, minor float32, segU, segV int) quarkgl.Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]quarkgl.Vertex, 0, segU*segV)
	indices := make([]uint16, 0, segU*segV*6)

	twoPi := 2 * math.Pi
	for u := 0; u < segU; u++ {
		st, ct := math.Sincos(twoPi * float64(u) / float64(segU))
		for v := 0; v < segV; v++ {
			sp, cp := math.Sincos(twoPi * float64(v) / float64(segV))

			r := float64(major) + float64(minor)*cp
			verts = append(verts, quarkgl.Vertex{
				Pos:    vecmath.V3(float32(r*ct), float32(float64(minor)*sp), float32(r*st)),
				Normal: vecmath.V3(float32(cp*ct), float32(sp), float32(cp*st)),
			})
		}
	}

	idx := func(u, v int) uint16 {
		return uint16((u%segU)*segV + v%segV)
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			i0 := idx(u, v)
			i1 := idx(u+1, v)
			i2 := idx(u+1, v+1)
			i3 := idx(u, v+1)
			indices = append(indices, i0, i2, i1)
			indices = append(indices, i0, i3, i2)
		}
	}

	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}
