package quarkgl

import "image"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
	RenderSolidVertexColor
)

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	case RenderSolidFlat:
		return "flat"
	case RenderSolidVertexColor:
		return "vertex-color"
	default:
		return "unknown"
	}
}

// ParseRenderMode is the inverse of RenderMode.String.
func ParseRenderMode(s string) (RenderMode, bool) {
	for _, m := range []RenderMode{RenderWireframe, RenderSolidFlat, RenderSolidVertexColor} {
		if m.String() == s {
			return m, true
		}
	}
	return RenderSolidFlat, false
}

// RGBATarget renders into an *image.RGBA, mostly for snapshots and tests.
type RGBATarget struct {
	Img *image.RGBA
}

func NewRGBATarget(w, h int) *RGBATarget {
	return &RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	pix := t.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	off := t.Img.PixOffset(b.Min.X+x, b.Min.Y+y)
	t.Img.Pix[off+0] = c.R
	t.Img.Pix[off+1] = c.G
	t.Img.Pix[off+2] = c.B
	t.Img.Pix[off+3] = c.A
}
