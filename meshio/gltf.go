package meshio

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"gel/quarkgl"
	"gel/vecmath"
)

// ErrNoMesh is returned when a document has no drawable triangles.
var ErrNoMesh = errors.New("no triangle mesh in document")

// ErrTooManyVertices is returned when a primitive does not fit 16-bit indices.
var ErrTooManyVertices = errors.New("primitive exceeds 65536 vertices")

// LoadGLTF reads a .gltf or .glb file, resolving external buffers relative to it.
func LoadGLTF(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open gltf %q", path)
	}
	m, err := FromDocument(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return m, nil
}

// DecodeGLTF reads a self-contained glTF stream (GLB or JSON with embedded buffers).
func DecodeGLTF(r io.Reader) (*Model, error) {
	doc := &gltf.Document{}
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decode gltf")
	}
	return FromDocument(doc)
}

// FromDocument bakes the default scene of doc into a Model. Every triangle
// primitive becomes one mesh whose vertices are in scene space.
func FromDocument(doc *gltf.Document) (*Model, error) {
	roots, name := sceneRoots(doc)
	m := &Model{Name: name}

	visited := make(map[uint32]bool, len(doc.Nodes))
	var walk func(id uint32, parent vecmath.Mat4) error
	walk = func(id uint32, parent vecmath.Mat4) error {
		if int(id) >= len(doc.Nodes) {
			return errors.Errorf("node %d out of range", id)
		}
		if visited[id] {
			return errors.Errorf("node %d visited twice", id)
		}
		visited[id] = true

		node := doc.Nodes[id]
		world := vecmath.Mat4Mul(parent, NodeTransform(node))
		if node.Mesh != nil {
			if err := m.addMesh(doc, *node.Mesh, world); err != nil {
				return errors.Wrapf(err, "node %d (%q)", id, node.Name)
			}
		}
		for _, c := range node.Children {
			if err := walk(c, world); err != nil {
				return err
			}
		}
		return nil
	}
	for _, id := range roots {
		if err := walk(id, vecmath.Mat4Identity()); err != nil {
			return nil, err
		}
	}

	if len(m.Meshes) == 0 {
		return nil, ErrNoMesh
	}
	return m, nil
}

// sceneRoots returns the root nodes of the default scene. Documents without
// scenes are treated as if every parentless node were a root.
func sceneRoots(doc *gltf.Document) ([]uint32, string) {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
			idx = int(*doc.Scene)
		}
		return doc.Scenes[idx].Nodes, doc.Scenes[idx].Name
	}
	child := make(map[uint32]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []uint32
	for i := range doc.Nodes {
		if !child[uint32(i)] {
			roots = append(roots, uint32(i))
		}
	}
	return roots, ""
}

func (m *Model) addMesh(doc *gltf.Document, meshID uint32, world vecmath.Mat4) error {
	if int(meshID) >= len(doc.Meshes) {
		return errors.Errorf("mesh %d out of range", meshID)
	}
	mesh := doc.Meshes[meshID]
	normalMat := world.Inverse().Transpose()

	for i, prim := range mesh.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posID, ok := prim.Attributes["POSITION"]
		if !ok {
			continue
		}
		if int(posID) >= len(doc.Accessors) {
			return errors.Errorf("mesh %q primitive %d: POSITION accessor %d out of range", mesh.Name, i, posID)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posID], nil)
		if err != nil {
			return errors.Wrapf(err, "mesh %q primitive %d: read positions", mesh.Name, i)
		}
		if len(positions) > math.MaxUint16+1 {
			return errors.Wrapf(ErrTooManyVertices, "mesh %q primitive %d", mesh.Name, i)
		}

		var normals [][3]float32
		if nID, ok := prim.Attributes["NORMAL"]; ok {
			if int(nID) >= len(doc.Accessors) {
				return errors.Errorf("mesh %q primitive %d: NORMAL accessor %d out of range", mesh.Name, i, nID)
			}
			normals, err = modeler.ReadNormal(doc, doc.Accessors[nID], nil)
			if err != nil {
				return errors.Wrapf(err, "mesh %q primitive %d: read normals", mesh.Name, i)
			}
		}

		var indices []uint32
		if prim.Indices != nil {
			if int(*prim.Indices) >= len(doc.Accessors) {
				return errors.Errorf("mesh %q primitive %d: indices accessor out of range", mesh.Name, i)
			}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return errors.Wrapf(err, "mesh %q primitive %d: read indices", mesh.Name, i)
			}
		} else {
			indices = make([]uint32, len(positions))
			for j := range indices {
				indices[j] = uint32(j)
			}
		}

		out := quarkgl.Mesh{
			Vertices: make([]quarkgl.Vertex, len(positions)),
			Indices:  make([]uint16, 0, len(indices)),
		}
		for j, p := range positions {
			v := quarkgl.Vertex{Pos: world.MulPoint(vecmath.Vec3(p))}
			if j < len(normals) && vecmath.Vec3(normals[j]).LenSqr() > 0 {
				v.Normal = normalMat.MulDir(vecmath.Vec3(normals[j])).Normalize()
			}
			out.Vertices[j] = v
		}
		for j := 0; j+2 < len(indices); j += 3 {
			a, b, c := indices[j], indices[j+1], indices[j+2]
			if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
				return errors.Errorf("mesh %q primitive %d: index out of range", mesh.Name, i)
			}
			out.Indices = append(out.Indices, uint16(a), uint16(b), uint16(c))
		}
		if len(out.Indices) == 0 {
			continue
		}
		// A negative determinant mirrors the geometry and flips the winding.
		if world.Det() < 0 {
			for j := 0; j+2 < len(out.Indices); j += 3 {
				out.Indices[j+1], out.Indices[j+2] = out.Indices[j+2], out.Indices[j+1]
			}
		}
		if len(normals) > 0 {
			fillFaceNormals(&out)
		}
		m.Meshes = append(m.Meshes, out)
	}
	return nil
}

// fillFaceNormals gives vertices left without a normal (zero-length in the
// file) the normal of the first non-degenerate triangle that uses them.
func fillFaceNormals(mesh *quarkgl.Mesh) {
	vs := mesh.Vertices
	for j := 0; j+2 < len(mesh.Indices); j += 3 {
		a, b, c := mesh.Indices[j], mesh.Indices[j+1], mesh.Indices[j+2]
		if vs[a].Normal != (vecmath.Vec3{}) && vs[b].Normal != (vecmath.Vec3{}) && vs[c].Normal != (vecmath.Vec3{}) {
			continue
		}
		n := vs[b].Pos.Sub(vs[a].Pos).Cross(vs[c].Pos.Sub(vs[a].Pos))
		if n.LenSqr() == 0 {
			continue
		}
		n = n.Normalize()
		for _, k := range [3]uint16{a, b, c} {
			if vs[k].Normal == (vecmath.Vec3{}) {
				vs[k].Normal = n
			}
		}
	}
}
