// Package config loads the viewer settings from YAML.
//
// A file only needs the keys it changes: Parse decodes on top of Default.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gel/quarkgl"
	"gel/vecmath"
)

// Config is the full viewer configuration.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Hz     int `yaml:"hz"`

	Camera Camera `yaml:"camera"`
	Light  Light  `yaml:"light"`
	Render Render `yaml:"render"`
	Model  Model  `yaml:"model"`
}

type Camera struct {
	Eye     vecmath.Vec3 `yaml:"eye"`
	Target  vecmath.Vec3 `yaml:"target"`
	Up      vecmath.Vec3 `yaml:"up"`
	FovyDeg float32      `yaml:"fovy_deg"`
	Near    float32      `yaml:"near"`
	Far     float32      `yaml:"far"`

	// Ortho switches to an orthographic projection of half-height OrthoSize.
	Ortho     bool    `yaml:"ortho"`
	OrthoSize float32 `yaml:"ortho_size"`
}

type Light struct {
	Off         bool         `yaml:"off"`
	Ambient     float32      `yaml:"ambient"`
	Dir         vecmath.Vec3 `yaml:"dir"`
	Directional float32      `yaml:"directional"`
}

type Render struct {
	Mode  string   `yaml:"mode"` // wireframe, flat or vertex-color
	Depth bool     `yaml:"depth"`
	Clear [3]uint8 `yaml:"clear"`
}

type Model struct {
	// Path is a .gltf or .glb file. When empty, Shape is drawn instead.
	Path  string   `yaml:"path"`
	Shape string   `yaml:"shape"` // torus or cube
	Color [3]uint8 `yaml:"color"`

	// SpinDeg is the model rotation about +Y per second; TiltDeg a fixed
	// rotation about +X.
	SpinDeg float32 `yaml:"spin_deg"`
	TiltDeg float32 `yaml:"tilt_deg"`

	// Size is the extent the model is scaled to fit.
	Size float32 `yaml:"size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  320,
		Height: 240,
		Hz:     30,
		Camera: Camera{
			Eye:       vecmath.V3(0, 0.2, 3.2),
			Up:        vecmath.V3(0, 1, 0),
			FovyDeg:   57.3,
			Near:      0.05,
			Far:       20,
			OrthoSize: 1.2,
		},
		Light: Light{
			Ambient:     0.18,
			Dir:         vecmath.V3(-0.4, 0.9, 0.3),
			Directional: 0.85,
		},
		Render: Render{
			Mode:  quarkgl.RenderSolidFlat.String(),
			Depth: true,
			Clear: [3]uint8{0x05, 0x08, 0x12},
		},
		Model: Model{
			Shape:   "torus",
			Color:   [3]uint8{0xFF, 0x99, 0x33},
			SpinDeg: 90,
			TiltDeg: 37,
			Size:    2,
		},
	}
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are an error.
func Parse(b []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %q", path)
	}
	c, err := Parse(b)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	return c, nil
}

// Marshal encodes c as YAML with two-space indentation.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&c); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "close config encoder")
	}
	return buf.Bytes(), nil
}
