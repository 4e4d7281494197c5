// Package app is the model viewer: it turns key events and ticks from a HAL
// into a rendered frame per step.
package app

import (
	"fmt"

	"gel/config"
	"gel/hal"
	"gel/meshio"
	"gel/preview"
	"gel/quarkgl"
	"gel/vecmath"
)

// Config is what the viewer needs besides the HAL.
type Config struct {
	View config.Config

	// Model, when set, is shown instead of loading View.Model.Path or
	// building View.Model.Shape.
	Model *meshio.Model

	// Dump enables spew dumps of the matrix chain to the HAL logger on the
	// first frame and on the 'u' key.
	Dump bool

	// Preview, when set, receives every rendered frame.
	Preview Publisher
}

// Publisher receives rendered frames, e.g. a *preview.Server.
type Publisher interface {
	Publish(preview.Frame)
}

type viewer struct {
	h   hal.HAL
	log hal.Logger
	cfg Config

	fb     hal.Framebuffer
	target *quarkgl.RGB565Target

	r     *quarkgl.Renderer
	s     *quarkgl.Scene
	orbit quarkgl.OrbitController
	home  quarkgl.OrbitController

	meshIDs []int
	fit     vecmath.Mat4
	tilt    vecmath.Mat4

	lastTick uint64
	angle    float32
	paused   bool
	frames   uint64
	status   string

	err error
}

// New builds the viewer and returns its per-tick step function. Setup errors
// (no framebuffer, unreadable model) are returned by the first step.
func New(h hal.HAL, cfg Config) func() error {
	return newViewer(h, cfg).step
}

func newViewer(h hal.HAL, cfg Config) *viewer {
	v := &viewer{h: h, cfg: cfg}
	v.err = v.init()
	if v.err != nil && v.log != nil {
		v.log.WriteLineString("viewer: " + v.err.Error())
	}
	return v
}

func (v *viewer) init() error {
	if v.h == nil {
		return fmt.Errorf("app: nil HAL")
	}
	v.log = v.h.Logger()
	if err := v.cfg.View.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	disp := v.h.Display()
	if disp == nil {
		return fmt.Errorf("app: no display: %w", hal.ErrNotImplemented)
	}
	v.fb = disp.Framebuffer()
	if v.fb == nil || v.fb.Format() != hal.PixelFormatRGB565 {
		return fmt.Errorf("app: need an RGB565 framebuffer: %w", hal.ErrNotImplemented)
	}
	v.target = &quarkgl.RGB565Target{
		Buf:    v.fb.Buffer(),
		Stride: v.fb.StrideBytes(),
		W:      v.fb.Width(),
		H:      v.fb.Height(),
	}

	model, err := v.loadModel()
	if err != nil {
		return err
	}
	return v.buildScene(model)
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (v *viewer) step() error {
	if v.err != nil {
		return v.err
	}

	if err := v.handleInput(); err != nil {
		return err
	}
	v.advance(v.drainTicks())

	v.orbit.Apply(&v.s.Camera)
	v.r.Render(v.target, v.s)
	v.drawOverlay()
	v.frames++

	if v.cfg.Dump && v.frames == 1 {
		v.dump()
	}
	if v.cfg.Preview != nil {
		v.publish()
	}
	return v.fb.Present()
}

// drainTicks reads every pending tick and returns the milliseconds elapsed
// since the previous step.
func (v *viewer) drainTicks() uint64 {
	t := v.h.Time()
	if t == nil {
		return 0
	}
	ch := t.Ticks()
	latest := v.lastTick
	for {
		select {
		case seq, ok := <-ch:
			if !ok {
				return v.since(latest)
			}
			if seq > latest {
				latest = seq
			}
			continue
		default:
		}
		return v.since(latest)
	}
}

func (v *viewer) since(latest uint64) uint64 {
	if v.lastTick == 0 {
		v.lastTick = latest
		return 0
	}
	dt := latest - v.lastTick
	v.lastTick = latest
	return dt
}

// advance spins the model by dtMillis of simulated time.
func (v *viewer) advance(dtMillis uint64) {
	if !v.paused && dtMillis > 0 {
		v.angle += vecmath.DegToRad(v.cfg.View.Model.SpinDeg) * float32(dtMillis) / 1000
	}
	model := vecmath.Mat4RotateY(v.angle).Mul(v.tilt).Mul(v.fit)
	for _, id := range v.meshIDs {
		v.s.UpdateMeshTransform(id, model)
	}
}
