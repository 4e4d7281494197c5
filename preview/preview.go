// Package preview serves the viewer's latest frame over HTTP: the image as
// PNG, the camera matrices as JSON, and a websocket feed of frame summaries.
package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"gel/hal"
	"gel/quarkgl"
	"gel/vecmath"
)

// Frame is one published view.
type Frame struct {
	Seq      uint64
	Image    *image.RGBA
	Eye      vecmath.Vec3
	Status   string
	Uniforms quarkgl.Uniforms
}

// frameInfo is the JSON form of a Frame without the pixels. Matrices are the
// flat column-major arrays a uniform upload reads.
type frameInfo struct {
	Seq        uint64      `json:"seq"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Eye        [3]float32  `json:"eye"`
	Status     string      `json:"status,omitempty"`
	Model      [16]float32 `json:"model"`
	View       [16]float32 `json:"view"`
	Projection [16]float32 `json:"projection"`
	MVP        [16]float32 `json:"mvp"`
}

func (f *Frame) info() frameInfo {
	fi := frameInfo{
		Seq:        f.Seq,
		Eye:        f.Eye,
		Status:     f.Status,
		Model:      f.Uniforms.Model,
		View:       f.Uniforms.View,
		Projection: f.Uniforms.Projection,
		MVP:        f.Uniforms.MVP,
	}
	if f.Image != nil {
		b := f.Image.Bounds()
		fi.Width, fi.Height = b.Dx(), b.Dy()
	}
	return fi
}

// Server holds the last published frame and the websocket subscribers.
type Server struct {
	log hal.Logger

	mu       sync.Mutex
	last     *Frame
	lastInfo []byte
	clients  map[*client]bool

	upgrader websocket.Upgrader
}

// New returns a server that logs requests to log (which may be nil).
func New(log hal.Logger) *Server {
	return &Server{
		log:     log,
		clients: make(map[*client]bool),
	}
}

// Publish replaces the current frame and notifies subscribers. The server
// keeps f.Image; callers must not modify it afterwards. Slow subscribers
// miss updates rather than blocking the caller.
func (s *Server) Publish(f Frame) {
	data, err := json.Marshal(f.info())
	if err != nil {
		s.logf("preview: marshal frame: " + err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &f
	s.lastInfo = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

func (s *Server) logf(msg string) {
	if s.log != nil {
		s.log.WriteLineString(msg)
	}
}

// Handler returns the HTTP routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/frame.png", s.handleFramePNG).Methods(http.MethodGet)
	r.HandleFunc("/frame.json", s.handleFrameJSON).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS)

	var h http.Handler = r
	if s.log != nil {
		h = handlers.LoggingHandler(lineWriter{s.log}, h)
	}
	return handlers.RecoveryHandler()(h)
}

func (s *Server) current() (*Frame, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.lastInfo
}

func (s *Server) handleFramePNG(w http.ResponseWriter, r *http.Request) {
	f, _ := s.current()
	if f == nil || f.Image == nil {
		http.Error(w, "no frame yet", http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, f.Image); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (s *Server) handleFrameJSON(w http.ResponseWriter, r *http.Request) {
	_, data := s.current()
	if data == nil {
		http.Error(w, "no frame yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// ListenAndServe serves Handler on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		srv.Close()
		s.Close()
	}()
	s.logf("preview: listening on " + addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close disconnects every websocket subscriber.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
}

// lineWriter adapts a hal.Logger to the io.Writer the logging handler wants.
type lineWriter struct {
	log hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	w.log.WriteLineBytes(bytes.TrimRight(p, "\n"))
	return len(p), nil
}
