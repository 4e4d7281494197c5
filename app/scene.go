package app

import (
	"fmt"
	"math"

	"gel/config"
	"gel/meshio"
	"gel/quarkgl"
	"gel/vecmath"
)

func (v *viewer) loadModel() (*meshio.Model, error) {
	mc := v.cfg.View.Model
	switch {
	case v.cfg.Model != nil:
		return v.cfg.Model, nil
	case mc.Path != "":
		m, err := meshio.LoadGLTF(mc.Path)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		v.logf("viewer: loaded %s: %d meshes, %d vertices, %d triangles",
			mc.Path, len(m.Meshes), m.VertexCount(), m.TriangleCount())
		return m, nil
	case mc.Shape == "cube":
		return &meshio.Model{Name: "cube", Meshes: []quarkgl.Mesh{meshio.Cube(1)}}, nil
	default:
		return &meshio.Model{Name: "torus", Meshes: []quarkgl.Mesh{meshio.Torus(1.0, 0.38, 32, 16)}}, nil
	}
}

func rgb(c [3]uint8) quarkgl.Color { return quarkgl.RGB(c[0], c[1], c[2]) }

func (v *viewer) buildScene(model *meshio.Model) error {
	vc := v.cfg.View
	mode, err := vc.Render.RenderMode()
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	v.r = quarkgl.NewRenderer(v.target.W, v.target.H, vc.Render.Depth)
	v.r.ClearColor = rgb(vc.Render.Clear)
	v.r.SetRenderMode(mode)

	v.s = quarkgl.CreateScene(len(model.Meshes))
	v.s.Camera = camera(vc.Camera)
	v.s.Light = light(vc.Light)

	for _, m := range model.Meshes {
		m.Material.BaseColor = rgb(vc.Model.Color)
		id := v.s.AddMesh(m)
		if id < 0 {
			return fmt.Errorf("app: scene full at %d meshes", len(v.meshIDs))
		}
		v.meshIDs = append(v.meshIDs, id)
	}

	v.fit = model.Fit(vc.Model.Size)
	v.tilt = vecmath.Mat4RotateX(vecmath.DegToRad(vc.Model.TiltDeg))

	v.orbit = orbitFrom(vc.Camera)
	v.home = v.orbit
	v.advance(0)
	return nil
}

func camera(c config.Camera) quarkgl.Camera {
	cam := quarkgl.Camera{
		Type:      quarkgl.CameraPerspective,
		Position:  c.Eye,
		Target:    c.Target,
		Up:        c.Up,
		FOVYRad:   vecmath.DegToRad(c.FovyDeg),
		OrthoSize: c.OrthoSize,
		Near:      c.Near,
		Far:       c.Far,
	}
	if c.Ortho {
		cam.Type = quarkgl.CameraOrtho
	}
	return cam
}

func light(l config.Light) quarkgl.Light {
	if l.Off {
		return quarkgl.Light{Mode: quarkgl.LightOff}
	}
	ql := quarkgl.Light{
		Mode:      quarkgl.LightAmbientDirectional,
		Ambient:   l.Ambient,
		DirAmount: l.Directional,
	}
	if l.Dir != (vecmath.Vec3{}) {
		ql.Dir = l.Dir.Normalize()
	}
	return ql
}

// orbitFrom recovers yaw, pitch and radius from the configured eye so the
// first frame matches the file.
func orbitFrom(c config.Camera) quarkgl.OrbitController {
	off := c.Eye.Sub(c.Target)
	r := off.Len()
	o := quarkgl.OrbitController{
		Target:    c.Target,
		Radius:    r,
		MinRadius: c.Near * 2,
		MaxRadius: c.Far / 2,
	}
	if r > 0 {
		o.Yaw = float32(math.Atan2(float64(off[0]), float64(off[2])))
		o.Pitch = -float32(math.Asin(float64(off[1] / r)))
	}
	return o
}
