package meshio

import (
	"testing"

	"gel/quarkgl"
	"gel/vecmath"
)

func triangleNormal(m quarkgl.Mesh, i int) (n, centroid vecmath.Vec3) {
	a := m.Vertices[m.Indices[i]].Pos
	b := m.Vertices[m.Indices[i+1]].Pos
	c := m.Vertices[m.Indices[i+2]].Pos
	return b.Sub(a).Cross(c.Sub(a)), a.Add(b).Add(c).Div(3)
}

func TestCube(t *testing.T) {
	m := Cube(2)
	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Fatalf("Cube() has %d vertices and %d indices, want 24 and 36", len(m.Vertices), len(m.Indices))
	}
	for _, v := range m.Vertices {
		for i := 0; i < 3; i++ {
			if v.Pos[i] != 1 && v.Pos[i] != -1 {
				t.Fatalf("vertex %v is not a corner of the unit-2 cube", v.Pos)
			}
		}
	}
	for i := 0; i < len(m.Indices); i += 3 {
		n, c := triangleNormal(m, i)
		if n.Dot(c) <= 0 {
			t.Fatalf("triangle %d winds inward: normal %v at %v", i/3, n, c)
		}
		if want := m.Vertices[m.Indices[i]].Normal; !n.Normalize().ApproxEqual(want, 1e-6) {
			t.Fatalf("triangle %d normal = %v, vertex normal %v", i/3, n.Normalize(), want)
		}
	}
}

func TestTorus(t *testing.T) {
	const major, minor = 1, 0.25
	m := Torus(major, minor, 12, 8)
	if len(m.Vertices) != 96 || len(m.Indices) != 12*8*6 {
		t.Fatalf("Torus() has %d vertices and %d indices", len(m.Vertices), len(m.Indices))
	}
	for _, v := range m.Vertices {
		ring := vecmath.V3(v.Pos[0], 0, v.Pos[2]).Normalize().Mul(major)
		if d := v.Pos.Sub(ring).Len(); d < minor-1e-5 || d > minor+1e-5 {
			t.Fatalf("vertex %v is %v from the tube centre, want %v", v.Pos, d, minor)
		}
		if !v.Pos.Sub(ring).Div(minor).ApproxEqual(v.Normal, 1e-4) {
			t.Fatalf("vertex %v normal = %v", v.Pos, v.Normal)
		}
	}
	for i := 0; i < len(m.Indices); i += 3 {
		n, c := triangleNormal(m, i)
		ring := vecmath.V3(c[0], 0, c[2]).Normalize().Mul(major)
		if n.Dot(c.Sub(ring)) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}

func TestTorusClampsSegments(t *testing.T) {
	m := Torus(1, 0.5, 0, 1)
	if len(m.Vertices) != 9 {
		t.Fatalf("Torus(…, 0, 1) has %d vertices, want 9", len(m.Vertices))
	}
}

func TestModelFit(t *testing.T) {
	mesh := Cube(2)
	for i := range mesh.Vertices {
		mesh.Vertices[i].Pos = mesh.Vertices[i].Pos.Add(vecmath.V3(3, 0, 0))
	}
	m := &Model{Meshes: []quarkgl.Mesh{mesh}}

	lo, hi, ok := m.Bounds()
	if !ok || lo != vecmath.V3(2, -1, -1) || hi != vecmath.V3(4, 1, 1) {
		t.Fatalf("Bounds() = %v, %v, %v", lo, hi, ok)
	}
	fit := m.Fit(1)
	if got := fit.MulPoint(vecmath.V3(4, 1, 1)); !got.ApproxEqual(vecmath.V3(0.5, 0.5, 0.5), 1e-6) {
		t.Fatalf("Fit(1) maps max corner to %v", got)
	}
	if got := fit.MulPoint(vecmath.V3(3, 0, 0)); !got.ApproxEqual(vecmath.Vec3{}, 1e-6) {
		t.Fatalf("Fit(1) maps centre to %v", got)
	}
	if m.VertexCount() != 24 || m.TriangleCount() != 12 {
		t.Fatalf("counts = %d, %d", m.VertexCount(), m.TriangleCount())
	}

	var empty Model
	if _, _, ok := empty.Bounds(); ok {
		t.Fatalf("empty Bounds() ok")
	}
	if empty.Fit(1) != vecmath.Mat4Identity() {
		t.Fatalf("empty Fit() not identity")
	}
}
