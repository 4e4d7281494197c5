package quarkgl

import (
	"testing"

	"gel/vecmath"
)

func TestAddMeshDefaults(t *testing.T) {
	s := CreateScene(2)
	id := s.AddMesh(Mesh{})
	if id != 0 {
		t.Fatalf("AddMesh() = %d, want 0", id)
	}
	if got := s.MeshTransform(id); got != vecmath.Mat4Identity() {
		t.Fatalf("MeshTransform() = %v, want identity", got)
	}
	m := s.meshes[id]
	if !m.Enabled || m.Material.Opacity != 0xFF || m.Material.BaseColor != RGB(0xCC, 0xCC, 0xCC) {
		t.Fatalf("defaults not applied: %+v", m)
	}
}

func TestSceneCapacity(t *testing.T) {
	s := CreateScene(1)
	if id := s.AddMesh(Mesh{}); id != 0 {
		t.Fatalf("AddMesh() = %d, want 0", id)
	}
	if id := s.AddMesh(Mesh{}); id != -1 {
		t.Fatalf("AddMesh() on full scene = %d, want -1", id)
	}
	s.RemoveMesh(0)
	if n := s.MeshCount(); n != 0 {
		t.Fatalf("MeshCount() = %d, want 0", n)
	}
	if id := s.AddMesh(Mesh{}); id != 0 {
		t.Fatalf("AddMesh() after remove = %d, want 0", id)
	}
	var nilScene *Scene
	if id := nilScene.AddMesh(Mesh{}); id != -1 {
		t.Fatalf("nil AddMesh() = %d, want -1", id)
	}
}

func TestCameraUniforms(t *testing.T) {
	cam := CreateScene(0).Camera
	model := vecmath.Mat4Translate(vecmath.V3(1, 2, 3))
	u := cam.Uniforms(model, 1.5)

	if u.Model[12] != 1 || u.Model[13] != 2 || u.Model[14] != 3 || u.Model[15] != 1 {
		t.Fatalf("Model translation = %v, want elements 12..15 = 1 2 3 1", u.Model[12:])
	}
	if u.View != cam.View().Floats() {
		t.Fatalf("View = %v, want %v", u.View, cam.View().Floats())
	}
	proj := cam.Projection(1.5)
	if u.Projection[11] != -1 {
		t.Fatalf("Projection[11] = %v, want -1", u.Projection[11])
	}
	want := vecmath.Mat4Mul(proj, vecmath.Mat4Mul(cam.View(), model))
	if vecmath.Mat4FromFloats(u.MVP) != want {
		t.Fatalf("MVP = %v, want %v", u.MVP, want.Floats())
	}
}

func TestCameraOrthoProjection(t *testing.T) {
	cam := Camera{Type: CameraOrtho, OrthoSize: 2, Near: 1, Far: 10}
	got := cam.Projection(2)
	want := vecmath.Mat4Ortho(-4, 4, -2, 2, 1, 10)
	if got != want {
		t.Fatalf("Projection() = %v, want %v", got, want)
	}
}

func TestRenderModeString(t *testing.T) {
	for _, m := range []RenderMode{RenderWireframe, RenderSolidFlat, RenderSolidVertexColor} {
		got, ok := ParseRenderMode(m.String())
		if !ok || got != m {
			t.Fatalf("ParseRenderMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseRenderMode("phong"); ok {
		t.Fatalf("ParseRenderMode(phong) accepted")
	}
}

func TestRGB565Pack(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0xFF, 0, 0, 0xF800},
		{0, 0xFF, 0, 0x07E0},
		{0, 0, 0xFF, 0x001F},
	}
	for _, tt := range tests {
		if got := RGB565(tt.r, tt.g, tt.b); got != tt.want {
			t.Fatalf("RGB565(%d,%d,%d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
	var target RGB565Target
	target.SetPixel(0, 0, RGB(1, 2, 3))
	if got := target.Pixel(0, 0); got != 0 {
		t.Fatalf("Pixel() on empty target = %#04x", got)
	}
}

func TestColorMulScalar(t *testing.T) {
	c := RGBA(200, 100, 50, 7)
	if got := c.MulScalar(0); got != RGBA(0, 0, 0, 7) {
		t.Fatalf("MulScalar(0) = %+v", got)
	}
	if got := c.MulScalar(1); got != c {
		t.Fatalf("MulScalar(1) = %+v", got)
	}
	if got := c.MulScalar(2); got != RGBA(200, 100, 50, 7) {
		t.Fatalf("MulScalar(2) = %+v, want clamp to 1", got)
	}
}
