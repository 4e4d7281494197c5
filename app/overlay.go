package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"gel/hal"
	"gel/quarkgl"
)

var overlayFont = &proggy.TinySZ8pt7b

const overlayLineHeight = 10

var (
	overlayTitle = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	overlayHint  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

func (v *viewer) drawOverlay() {
	cam := v.s.Camera.Position
	v.drawText(4, 2, fmt.Sprintf("%s  %s", v.r.Mode, v.modelName()), overlayTitle)
	v.drawText(4, 2+overlayLineHeight, fmt.Sprintf("eye %.1f %.1f %.1f", cam[0], cam[1], cam[2]), overlayHint)
	if v.status != "" {
		v.drawText(4, v.target.H-overlayLineHeight-2, v.status, overlayHint)
	}
}

func (v *viewer) modelName() string {
	if v.cfg.Model != nil && v.cfg.Model.Name != "" {
		return v.cfg.Model.Name
	}
	if v.cfg.View.Model.Path != "" {
		return v.cfg.View.Model.Path
	}
	return v.cfg.View.Model.Shape
}

// drawText writes s with its top-left corner at (x, y).
func (v *viewer) drawText(x, y int, s string, c color.RGBA) {
	d := &fbDisplayer{fb: v.fb}
	tinyfont.WriteLine(d, overlayFont, int16(x), int16(y+overlayLineHeight-2), s, c)
}

// fbDisplayer lets tinyfont draw straight into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := quarkgl.RGB565(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
