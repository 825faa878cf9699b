package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"spinwire/internal/raster"
)

// EnvConfig names the config file when no -config flag is given.
const EnvConfig = "SPINWIRE_CONFIG"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Defaults match the classic 80x24 spinning pyramid.
const (
	DefaultWidth    = 80
	DefaultHeight   = 24
	DefaultFOV      = 40.0
	DefaultDistance = 5.0
	DefaultAxis     = "y"
	DefaultStep     = 0.05
	DefaultDelay    = 16 * time.Millisecond
	DefaultShape    = "pyramid"
	DefaultDriver   = "plain"
	DefaultEdge     = "#"
	DefaultVertex   = "@"
)

// Config holds all tunables. Zero fields are filled by Resolve.
type Config struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	FOV      float64       `yaml:"fov"`
	Distance float64       `yaml:"distance"`
	Axis     string        `yaml:"axis"`
	Step     float64       `yaml:"angle_step"`
	Delay    time.Duration `yaml:"frame_delay"`
	Frames   int           `yaml:"frames"`
	Shape    string        `yaml:"shape"`
	Driver   string        `yaml:"driver"`
	Snapshot string        `yaml:"snapshot"`
	Glyphs   Glyphs        `yaml:"glyphs"`
}

// Glyphs are the characters drawn for edges and vertices.
type Glyphs struct {
	Edge   string `yaml:"edge"`
	Vertex string `yaml:"vertex"`
}

// Flags holds CLI values that override the config file. A value overrides
// when it is non-zero or its flag name is in Set, so "-frames 0" can clear
// a file's frame limit.
type Flags struct {
	Width    int
	Height   int
	FOV      float64
	Distance float64
	Axis     string
	Step     float64
	Delay    time.Duration
	Frames   int
	Shape    string
	Driver   string
	Snapshot string

	Set map[string]bool
}

func (f Flags) given(name string, nonzero bool) bool {
	return nonzero || f.Set[name]
}

// Load reads a YAML config. An empty path falls back to $SPINWIRE_CONFIG;
// with neither set it returns an empty Config for Resolve to fill.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
		if path == "" {
			return Config{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides, then defaults for anything still unset.
func (c *Config) Resolve(f Flags) {
	if f.given("width", f.Width > 0) {
		c.Width = f.Width
	}
	if f.given("height", f.Height > 0) {
		c.Height = f.Height
	}
	if f.given("fov", f.FOV > 0) {
		c.FOV = f.FOV
	}
	if f.given("distance", f.Distance > 0) {
		c.Distance = f.Distance
	}
	if f.given("axis", f.Axis != "") {
		c.Axis = f.Axis
	}
	if f.given("step", f.Step != 0) {
		c.Step = f.Step
	}
	if f.given("delay", f.Delay > 0) {
		c.Delay = f.Delay
	}
	if f.given("frames", f.Frames > 0) {
		c.Frames = f.Frames
	}
	if f.given("shape", f.Shape != "") {
		c.Shape = f.Shape
	}
	if f.given("driver", f.Driver != "") {
		c.Driver = f.Driver
	}
	if f.given("snapshot", f.Snapshot != "") {
		c.Snapshot = f.Snapshot
	}

	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.FOV == 0 {
		c.FOV = DefaultFOV
	}
	if c.Distance == 0 {
		c.Distance = DefaultDistance
	}
	if c.Axis == "" {
		c.Axis = DefaultAxis
	}
	if c.Step == 0 {
		c.Step = DefaultStep
	}
	if c.Delay == 0 {
		c.Delay = DefaultDelay
	}
	if c.Shape == "" {
		c.Shape = DefaultShape
	}
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.Glyphs.Edge == "" {
		c.Glyphs.Edge = DefaultEdge
	}
	if c.Glyphs.Vertex == "" {
		c.Glyphs.Vertex = DefaultVertex
	}
}

// Validate rejects values the renderer cannot honor.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: size %dx%d: %w", c.Width, c.Height, ErrInvalid)
	case c.FOV <= 0 || !finite(c.FOV):
		return fmt.Errorf("config: fov %v: %w", c.FOV, ErrInvalid)
	case c.Distance <= raster.NearPlane || !finite(c.Distance):
		return fmt.Errorf("config: distance %v must exceed the near plane: %w", c.Distance, ErrInvalid)
	case !finite(c.Step):
		return fmt.Errorf("config: angle step %v: %w", c.Step, ErrInvalid)
	case c.Delay <= 0:
		return fmt.Errorf("config: frame delay %v: %w", c.Delay, ErrInvalid)
	case c.Frames < 0:
		return fmt.Errorf("config: frames %d: %w", c.Frames, ErrInvalid)
	}
	switch c.Axis {
	case "x", "y", "z", "xyz":
	default:
		return fmt.Errorf("config: axis %q: %w", c.Axis, ErrInvalid)
	}
	switch c.Driver {
	case "auto", "tui", "plain":
	default:
		return fmt.Errorf("config: driver %q: %w", c.Driver, ErrInvalid)
	}
	if _, err := glyph(c.Glyphs.Edge); err != nil {
		return fmt.Errorf("config: edge glyph: %w", err)
	}
	if _, err := glyph(c.Glyphs.Vertex); err != nil {
		return fmt.Errorf("config: vertex glyph: %w", err)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// EdgeGlyph returns the edge character. Call after Validate.
func (c Config) EdgeGlyph() rune {
	r, _ := glyph(c.Glyphs.Edge)
	return r
}

// VertexGlyph returns the vertex character. Call after Validate.
func (c Config) VertexGlyph() rune {
	r, _ := glyph(c.Glyphs.Vertex)
	return r
}

// glyph accepts exactly one printable rune occupying one terminal cell, so
// every row stays exactly Width columns wide.
func glyph(s string) (rune, error) {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, fmt.Errorf("%q is not a single character: %w", s, ErrInvalid)
	}
	r := rs[0]
	if !unicode.IsPrint(r) || runewidth.RuneWidth(r) != 1 {
		return 0, fmt.Errorf("%q is not one cell wide: %w", s, ErrInvalid)
	}
	return r, nil
}
