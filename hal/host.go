//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DefaultWidth and DefaultHeight size the host framebuffer when the caller
// passes zero.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL with a width*height framebuffer, logging to stdout.
func New(width, height int) HAL {
	return newHost(width, height, os.Stdout)
}

func newHost(width, height int, logw io.Writer) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		logger: &hostLogger{w: logw},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// NewLogger returns a Logger that writes whole lines to w. Concurrent writers
// never interleave within a line.
func NewLogger(w io.Writer) Logger { return &hostLogger{w: w} }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
