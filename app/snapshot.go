package app

import (
	"image/png"
	"os"

	"github.com/pkg/errors"

	"gel/hal"
)

// WritePNG saves the current framebuffer of h as a PNG file.
func WritePNG(h hal.HAL, path string) error {
	disp := h.Display()
	if disp == nil {
		return errors.Wrap(hal.ErrNotImplemented, "snapshot: no display")
	}
	img, err := hal.Image(disp.Framebuffer())
	if err != nil {
		return errors.Wrap(err, "snapshot")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "snapshot %q", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %q", path)
	}
	return errors.Wrapf(f.Close(), "close %q", path)
}
