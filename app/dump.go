package app

import (
	"strings"

	"github.com/davecgh/go-spew/spew"

	"gel/hal"
	"gel/preview"
)

var spewConfig = func() *spew.ConfigState {
	c := spew.NewDefaultConfig()
	c.DisableCapacities = true
	c.DisablePointerAddresses = true
	return c
}()

// dump logs the camera and the flat uniform block of the first mesh, the
// arrays a GPU upload would read.
func (v *viewer) dump() {
	if v.log == nil || len(v.meshIDs) == 0 {
		return
	}
	aspect := float32(v.target.W) / float32(v.target.H)
	u := v.s.Camera.Uniforms(v.s.MeshTransform(v.meshIDs[0]), aspect)
	out := spewConfig.Sdump(v.s.Camera, u)
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		v.log.WriteLineString(line)
	}
}

// publish hands the back buffer and the first mesh's uniforms to the
// preview server.
func (v *viewer) publish() {
	img, err := hal.Image(v.fb)
	if err != nil {
		v.logf("viewer: preview: %v", err)
		return
	}
	f := preview.Frame{
		Seq:    v.frames,
		Image:  img,
		Eye:    v.s.Camera.Position,
		Status: v.status,
	}
	if len(v.meshIDs) > 0 {
		aspect := float32(v.target.W) / float32(v.target.H)
		f.Uniforms = v.s.Camera.Uniforms(v.s.MeshTransform(v.meshIDs[0]), aspect)
	}
	v.cfg.Preview.Publish(f)
}
