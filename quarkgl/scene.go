package quarkgl

import "gel/vecmath"

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	Opacity   uint8 // 0..255. 255 means opaque.
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   float32      // 0..1
	Dir       vecmath.Vec3 // direction *towards* the scene
	DirAmount float32      // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position vecmath.Vec3
	Target   vecmath.Vec3
	Up       vecmath.Vec3

	// Perspective.
	FOVYRad float32

	// Orthographic (half-height).
	OrthoSize float32

	Near float32
	Far  float32
}

func (c Camera) up() vecmath.Vec3 {
	if c.Up == (vecmath.Vec3{}) {
		return vecmath.V3(0, 1, 0)
	}
	return c.Up
}

func (c Camera) fovy() float32 {
	if c.FOVYRad == 0 {
		return 1
	}
	return c.FOVYRad
}

// View returns the camera view matrix.
func (c Camera) View() vecmath.Mat4 {
	return vecmath.Mat4LookAt(c.Position, c.Target, c.up())
}

// Perspective returns the perspective projection object for a target aspect.
func (c Camera) Perspective(aspect float32) vecmath.Perspective {
	return vecmath.NewPerspective(c.fovy(), aspect, c.Near, c.Far)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) vecmath.Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		top := size
		bottom := -size
		right := size * aspect
		left := -right
		return vecmath.Mat4Ortho(left, right, bottom, top, c.Near, c.Far)
	default:
		return c.Perspective(aspect).Mat4()
	}
}

// Uniforms is the per-draw matrix block in the flat column-major layout a GPU
// uniform upload reads.
type Uniforms struct {
	Model      [16]float32
	View       [16]float32
	Projection [16]float32
	MVP        [16]float32
}

// Uniforms returns the matrix block for drawing model with this camera.
func (c Camera) Uniforms(model vecmath.Mat4, aspect float32) Uniforms {
	view := c.View()
	proj := c.Projection(aspect)
	return Uniforms{
		Model:      model.Floats(),
		View:       view.Floats(),
		Projection: proj.Floats(),
		MVP:        vecmath.Mat4Mul(proj, vecmath.Mat4Mul(view, model)).Floats(),
	}
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    vecmath.Vec3
	Normal vecmath.Vec3
	Color  Color
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform vecmath.Mat4
	Material  Material
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  vecmath.V3(0, 0, 3),
			Target:    vecmath.V3(0, 0, 0),
			Up:        vecmath.V3(0, 1, 0),
			FOVYRad:   1.0,
			Near:      0.05,
			Far:       100,
			OrthoSize: 1,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       vecmath.V3(1, 1, 1).Normalize(),
			DirAmount: 0.75,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (vecmath.Mat4{}) {
			m.Transform = vecmath.Mat4Identity()
		}
		if m.Material.Opacity == 0 {
			m.Material.Opacity = 0xFF
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m vecmath.Mat4) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Transform = m
}

// MeshTransform returns the transform of a mesh, or identity for an unknown id.
func (s *Scene) MeshTransform(id int) vecmath.Mat4 {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return vecmath.Mat4Identity()
	}
	return s.meshes[id].Transform
}

// MeshCount returns the number of live meshes.
func (s *Scene) MeshCount() int {
	n := 0
	for i := range s.alive {
		if s.alive[i] {
			n++
		}
	}
	return n
}

func (s *Scene) eachMesh(fn func(id int, m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(i, &s.meshes[i])
	}
}
