package config

import (
	"github.com/pkg/errors"

	"gel/quarkgl"
	"gel/vecmath"
)

// Validate reports the first setting that cannot produce a sensible view.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("size %dx%d must be positive", c.Width, c.Height)
	case c.Hz <= 0:
		return errors.Errorf("hz must be positive, got %d", c.Hz)
	}
	if err := c.Camera.validate(); err != nil {
		return errors.Wrap(err, "camera")
	}
	if err := c.Light.validate(); err != nil {
		return errors.Wrap(err, "light")
	}
	if _, err := c.Render.RenderMode(); err != nil {
		return errors.Wrap(err, "render")
	}
	if err := c.Model.validate(); err != nil {
		return errors.Wrap(err, "model")
	}
	return nil
}

func (c Camera) validate() error {
	switch {
	case !(c.Near > 0):
		return errors.Errorf("near must be > 0, got %v", c.Near)
	case !(c.Far > c.Near):
		return errors.Errorf("far (%v) must be > near (%v)", c.Far, c.Near)
	case !c.Ortho && !(c.FovyDeg > 0 && c.FovyDeg < 180):
		return errors.Errorf("fovy_deg must be in (0, 180), got %v", c.FovyDeg)
	case c.Ortho && !(c.OrthoSize > 0):
		return errors.Errorf("ortho_size must be > 0, got %v", c.OrthoSize)
	}
	fwd := c.Target.Sub(c.Eye)
	if fwd == (vecmath.Vec3{}) {
		return errors.New("eye and target coincide")
	}
	if c.Up.Cross(fwd) == (vecmath.Vec3{}) {
		return errors.New("up is parallel to the view direction")
	}
	return nil
}

func (l Light) validate() error {
	if l.Off {
		return nil
	}
	if l.Ambient < 0 || l.Ambient > 1 || l.Directional < 0 || l.Directional > 1 {
		return errors.Errorf("ambient (%v) and directional (%v) must be in [0, 1]", l.Ambient, l.Directional)
	}
	if l.Directional > 0 && l.Dir == (vecmath.Vec3{}) {
		return errors.New("dir must be non-zero")
	}
	return nil
}

// RenderMode returns the parsed render mode.
func (r Render) RenderMode() (quarkgl.RenderMode, error) {
	m, ok := quarkgl.ParseRenderMode(r.Mode)
	if !ok {
		return m, errors.Errorf("unknown mode %q", r.Mode)
	}
	return m, nil
}

func (m Model) validate() error {
	if m.Path == "" && m.Shape != "torus" && m.Shape != "cube" {
		return errors.Errorf("unknown shape %q", m.Shape)
	}
	if !(m.Size > 0) {
		return errors.Errorf("size must be > 0, got %v", m.Size)
	}
	return nil
}
