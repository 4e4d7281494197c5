package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// expandRGB565 converts a packed little-endian RGB565 buffer with the given
// row stride into dst, an opaque RGBA image of the same size.
func expandRGB565(dst *image.RGBA, src []byte, stride int) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		row := src[min(y*stride, len(src)):]
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < w && x*2+1 < len(row); x++ {
			r, g, bb := rgb888From565(uint16(row[x*2]) | uint16(row[x*2+1])<<8)
			j := x * 4
			out[j+0] = r
			out[j+1] = g
			out[j+2] = bb
			out[j+3] = 0xFF
		}
	}
}

// Image returns a copy of fb as an RGBA image. Only RGB565 framebuffers are
// supported; other formats yield ErrNotImplemented.
func Image(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil, ErrNotImplemented
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	expandRGB565(img, fb.Buffer(), fb.StrideBytes())
	return img, nil
}
