package meshio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"gel/vecmath"
)

func newDoc() *gltf.Document {
	doc := gltf.NewDocument()
	doc.Scene = gltf.Index(0)
	doc.Scenes = []*gltf.Scene{{Name: "test"}}
	return doc
}

// triangleDoc returns a document with one triangle mesh and no nodes.
func triangleDoc() *gltf.Document {
	doc := newDoc()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	nrm := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	idx := modeler.WriteIndices(doc, []uint32{0, 1, 2})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": pos, "NORMAL": nrm},
			Indices:    gltf.Index(idx),
		}},
	})
	return doc
}

func withNodes(doc *gltf.Document, nodes ...*gltf.Node) *gltf.Document {
	doc.Nodes = append(doc.Nodes, nodes...)
	doc.Scenes[0].Nodes = []uint32{0}
	return doc
}

func TestFromDocumentTranslation(t *testing.T) {
	doc := withNodes(triangleDoc(), &gltf.Node{Mesh: gltf.Index(0), Translation: [3]float32{1, 2, 3}})
	m, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if len(m.Meshes) != 1 {
		t.Fatalf("FromDocument() meshes = %d, want 1", len(m.Meshes))
	}
	want := []vecmath.Vec3{{1, 2, 3}, {2, 2, 3}, {1, 3, 3}}
	for i, v := range m.Meshes[0].Vertices {
		if v.Pos != want[i] {
			t.Fatalf("vertex %d = %v, want %v", i, v.Pos, want[i])
		}
		if v.Normal != vecmath.V3(0, 0, 1) {
			t.Fatalf("normal %d = %v, want (0,0,1)", i, v.Normal)
		}
	}
	if got := m.Meshes[0].Indices; len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("indices = %v", got)
	}
}

func TestFromDocumentHierarchy(t *testing.T) {
	s := float32(math.Sqrt2 / 2)
	doc := withNodes(triangleDoc(),
		&gltf.Node{Name: "parent", Rotation: [4]float32{0, s, 0, s}, Children: []uint32{1}},
		&gltf.Node{Name: "child", Mesh: gltf.Index(0), Translation: [3]float32{1, 0, 0}},
	)
	m, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	// A quarter turn about +Y takes +X to -Z.
	if got := m.Meshes[0].Vertices[0].Pos; !got.ApproxEqual(vecmath.V3(0, 0, -1), 1e-6) {
		t.Fatalf("vertex 0 = %v, want (0,0,-1)", got)
	}
	if got := m.Meshes[0].Vertices[0].Normal; !got.ApproxEqual(vecmath.V3(1, 0, 0), 1e-6) {
		t.Fatalf("normal 0 = %v, want (1,0,0)", got)
	}
}

func TestFromDocumentMatrix(t *testing.T) {
	node := &gltf.Node{Mesh: gltf.Index(0)}
	node.Matrix = vecmath.Mat4Translate(vecmath.V3(5, 6, 7)).Floats()
	m, err := FromDocument(withNodes(triangleDoc(), node))
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if got := m.Meshes[0].Vertices[1].Pos; got != vecmath.V3(6, 6, 7) {
		t.Fatalf("vertex 1 = %v, want (6,6,7)", got)
	}
}

func TestFromDocumentMirrorFlipsWinding(t *testing.T) {
	doc := withNodes(triangleDoc(), &gltf.Node{Mesh: gltf.Index(0), Scale: [3]float32{-1, 1, 1}})
	m, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if got := m.Meshes[0].Indices; got[0] != 0 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("indices = %v, want [0 2 1]", got)
	}
}

func TestFromDocumentNoMesh(t *testing.T) {
	doc := newDoc()
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "empty"})
	doc.Scenes[0].Nodes = []uint32{0}
	if _, err := FromDocument(doc); err != ErrNoMesh {
		t.Fatalf("FromDocument() error = %v, want ErrNoMesh", err)
	}
}

func TestFromDocumentBadNode(t *testing.T) {
	doc := triangleDoc()
	doc.Scenes[0].Nodes = []uint32{4}
	if _, err := FromDocument(doc); err == nil {
		t.Fatalf("FromDocument() with dangling node succeeded")
	}
}

func TestFromDocumentBadAccessor(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(doc *gltf.Document)
		wantS string
	}{
		{
			name: "position",
			edit: func(doc *gltf.Document) {
				doc.Meshes[0].Primitives = append(doc.Meshes[0].Primitives, &gltf.Primitive{
					Attributes: map[string]uint32{"POSITION": 99},
				})
			},
			wantS: "POSITION accessor 99",
		},
		{
			name: "normal",
			edit: func(doc *gltf.Document) {
				doc.Meshes[0].Primitives[0].Attributes["NORMAL"] = 77
			},
			wantS: "NORMAL accessor 77",
		},
		{
			name: "indices",
			edit: func(doc *gltf.Document) {
				doc.Meshes[0].Primitives[0].Indices = gltf.Index(55)
			},
			wantS: "indices accessor",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := withNodes(triangleDoc(), &gltf.Node{Mesh: gltf.Index(0)})
			tt.edit(doc)
			_, err := FromDocument(doc)
			if err == nil || !strings.Contains(err.Error(), tt.wantS) {
				t.Fatalf("FromDocument() error = %v, want mention of %q", err, tt.wantS)
			}
		})
	}
}

func TestFromDocumentNonUniformScaleNormals(t *testing.T) {
	doc := newDoc()
	// Sloped triangle with normal (0,-1,1)/sqrt2.
	pts := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 1}}
	s := float32(math.Sqrt2 / 2)
	pos := modeler.WritePosition(doc, pts)
	nrm := modeler.WriteNormal(doc, [][3]float32{{0, -s, s}, {0, -s, s}, {0, -s, s}})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "slope",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": pos, "NORMAL": nrm},
		}},
	})
	withNodes(doc, &gltf.Node{Mesh: gltf.Index(0), Scale: [3]float32{1, 4, 1}})

	m, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	vs := m.Meshes[0].Vertices
	e1 := vs[1].Pos.Sub(vs[0].Pos)
	e2 := vs[2].Pos.Sub(vs[0].Pos)
	for i, v := range vs {
		n := v.Normal
		if d := n.Dot(e1); math.Abs(float64(d)) > 1e-5 {
			t.Fatalf("normal %d = %v not perpendicular to edge %v (dot %v)", i, n, e1, d)
		}
		if d := n.Dot(e2); math.Abs(float64(d)) > 1e-5 {
			t.Fatalf("normal %d = %v not perpendicular to edge %v (dot %v)", i, n, e2, d)
		}
		if l := n.Len(); math.Abs(float64(l-1)) > 1e-5 {
			t.Fatalf("normal %d length = %v, want 1", i, l)
		}
	}
	// (0,-1,4)/sqrt17, pointing the same side as the file normal.
	want := vecmath.V3(0, -1, 4).Normalize()
	if got := vs[0].Normal; !got.ApproxEqual(want, 1e-5) {
		t.Fatalf("normal 0 = %v, want %v", got, want)
	}
}

func TestFromDocumentZeroNormalUsesFace(t *testing.T) {
	doc := newDoc()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	nrm := modeler.WriteNormal(doc, [][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 0, 1}})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": pos, "NORMAL": nrm},
		}},
	})
	withNodes(doc, &gltf.Node{Mesh: gltf.Index(0)})

	m, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if got := m.Meshes[0].Vertices[0].Normal; got != vecmath.V3(0, 0, 1) {
		t.Fatalf("normal 0 = %v, want face normal (0,0,1)", got)
	}
	if got := m.Meshes[0].Vertices[1].Normal; got != vecmath.V3(0, 0, 1) {
		t.Fatalf("normal 1 = %v, want (0,0,1)", got)
	}
}

func encodeGLB(t *testing.T, doc *gltf.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecodeGLTF(t *testing.T) {
	doc := withNodes(triangleDoc(), &gltf.Node{Mesh: gltf.Index(0), Translation: [3]float32{0, 0, -2}})
	m, err := DecodeGLTF(bytes.NewReader(encodeGLB(t, doc)))
	if err != nil {
		t.Fatalf("DecodeGLTF() error = %v", err)
	}
	if got := m.Meshes[0].Vertices[2].Pos; got != vecmath.V3(0, 1, -2) {
		t.Fatalf("vertex 2 = %v, want (0,1,-2)", got)
	}
}

func TestLoadGLTF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.glb")
	doc := withNodes(triangleDoc(), &gltf.Node{Mesh: gltf.Index(0)})
	if err := os.WriteFile(path, encodeGLB(t, doc), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	m, err := LoadGLTF(path)
	if err != nil {
		t.Fatalf("LoadGLTF() error = %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("TriangleCount() = %d, want 1", m.TriangleCount())
	}

	if _, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Fatalf("LoadGLTF(missing) succeeded")
	}
}

func TestQuatMat4MatchesMathgl(t *testing.T) {
	axes := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, mgl32.Vec3{1, 2, 3}.Normalize()}
	for _, axis := range axes {
		for _, angle := range []float32{0.3, -1.2, 2.5} {
			q := mgl32.QuatRotate(angle, axis)
			got := QuatMat4(vecmath.V4(q.V[0], q.V[1], q.V[2], q.W))
			want := vecmath.Mat4FromFloats(q.Mat4())
			if !got.ApproxEqual(want, 1e-5) {
				t.Fatalf("QuatMat4(%v about %v) = %v, want %v", angle, axis, got, want)
			}
			rot := vecmath.Mat4Rotate(angle, vecmath.Vec3(axis))
			if !got.ApproxEqual(rot, 1e-5) {
				t.Fatalf("QuatMat4(%v about %v) = %v, Mat4Rotate = %v", angle, axis, got, rot)
			}
		}
	}
}

func TestNodeTransformDefaults(t *testing.T) {
	if got := NodeTransform(nil); got != vecmath.Mat4Identity() {
		t.Fatalf("NodeTransform(nil) = %v", got)
	}
	n := &gltf.Node{
		Matrix:   vecmath.Mat4Identity().Floats(),
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{2, 2, 2},
	}
	want := vecmath.Mat4Scale(vecmath.V3(2, 2, 2))
	if got := NodeTransform(n); got != want {
		t.Fatalf("NodeTransform() = %v, want %v", got, want)
	}
}

func TestFromDocumentWithoutScene(t *testing.T) {
	doc := triangleDoc()
	doc.Scene = nil
	doc.Scenes = nil
	doc.Nodes = []*gltf.Node{
		{Name: "root", Children: []uint32{1}},
		{Name: "leaf", Mesh: gltf.Index(0)},
	}
	m, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if len(m.Meshes) != 1 {
		t.Fatalf("FromDocument() meshes = %d, want 1", len(m.Meshes))
	}
}
