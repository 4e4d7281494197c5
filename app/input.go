package app

import (
	"fmt"

	"gel/hal"
	"gel/quarkgl"
)

const (
	orbitStep = 0.1  // radians per arrow press
	zoomStep  = 0.25 // world units per +/- press
	panStep   = 0.1
)

// handleInput drains pending key events. It returns hal.ErrQuit on q/Escape.
func (v *viewer) handleInput() error {
	in := v.h.Input()
	if in == nil {
		return nil
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return nil
	}
	ch := kbd.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if !ev.Press {
				continue
			}
			if err := v.key(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) key(ev hal.KeyEvent) error {
	switch ev.Code {
	case hal.KeyLeft:
		v.orbit.Rotate(-orbitStep, 0)
	case hal.KeyRight:
		v.orbit.Rotate(orbitStep, 0)
	case hal.KeyUp:
		v.orbit.Rotate(0, -orbitStep)
	case hal.KeyDown:
		v.orbit.Rotate(0, orbitStep)
	case hal.KeyHome:
		v.orbit = v.home
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyUnknown:
		return v.rune(ev.Rune)
	}
	return nil
}

func (v *viewer) rune(r rune) error {
	switch r {
	case 'q':
		return hal.ErrQuit
	case '+', '=':
		v.orbit.Zoom(-zoomStep)
	case '-', '_':
		v.orbit.Zoom(zoomStep)
	case 'j':
		v.orbit.Pan(-panStep, 0)
	case 'l':
		v.orbit.Pan(panStep, 0)
	case 'i':
		v.orbit.Pan(0, panStep)
	case 'k':
		v.orbit.Pan(0, -panStep)
	case ' ':
		v.paused = !v.paused
	case 'w':
		if v.r.Mode == quarkgl.RenderWireframe {
			v.r.SetRenderMode(quarkgl.RenderSolidFlat)
		} else {
			v.r.SetRenderMode(quarkgl.RenderWireframe)
		}
	case 'p':
		v.pickCentre()
	case 'u':
		v.dump()
	}
	return nil
}

func (v *viewer) pickCentre() {
	// Apply orbit changes from this batch of keys before casting.
	v.orbit.Apply(&v.s.Camera)
	x, y := v.target.W/2, v.target.H/2
	hit, ok := v.r.Pick(x, y, v.s, v.target.W, v.target.H)
	if !ok {
		v.status = "pick: miss"
	} else {
		v.status = fmt.Sprintf("pick: mesh %d tri %d at %.2f %.2f %.2f",
			hit.MeshID, hit.Triangle/3, hit.Point[0], hit.Point[1], hit.Point[2])
	}
	v.logf("viewer: %s", v.status)
}
