package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.Resolve(Flags{})
	return c
}

func TestResolveDefaults(t *testing.T) {
	c := defaults()
	assert.Equal(t, 80, c.Width)
	assert.Equal(t, 24, c.Height)
	assert.Equal(t, 40.0, c.FOV)
	assert.Equal(t, 5.0, c.Distance)
	assert.Equal(t, "y", c.Axis)
	assert.Equal(t, 0.05, c.Step)
	assert.Equal(t, 16*time.Millisecond, c.Delay)
	assert.Equal(t, 0, c.Frames)
	assert.Equal(t, "pyramid", c.Shape)
	assert.Equal(t, "plain", c.Driver)
	assert.Equal(t, '#', c.EdgeGlyph())
	assert.Equal(t, '@', c.VertexGlyph())
	require.NoError(t, c.Validate())
}

func TestLoadYAMLAndFlagOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "spinwire.yaml")
	body := `width: 40
height: 12
fov: 20
axis: xyz
frame_delay: 50ms
shape: cube
glyphs:
  edge: "*"
  vertex: "o"
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Width)
	assert.Equal(t, 50*time.Millisecond, c.Delay)

	c.Resolve(Flags{Width: 60, Shape: "pyramid", Frames: 3})
	assert.Equal(t, 60, c.Width)
	assert.Equal(t, 12, c.Height)
	assert.Equal(t, 20.0, c.FOV)
	assert.Equal(t, "xyz", c.Axis)
	assert.Equal(t, "pyramid", c.Shape)
	assert.Equal(t, 3, c.Frames)
	assert.Equal(t, '*', c.EdgeGlyph())
	assert.Equal(t, 'o', c.VertexGlyph())
	require.NoError(t, c.Validate())
}

func TestLoadNonFiniteRejected(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nan.yaml")
	require.NoError(t, os.WriteFile(p, []byte("fov: .nan\ndistance: .inf\n"), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	c.Resolve(Flags{})
	assert.ErrorIs(t, c.Validate(), ErrInvalid)
}

func TestExplicitZeroFlagsOverride(t *testing.T) {
	c := Config{Frames: 10, Step: 0.2, Shape: "cube"}
	c.Resolve(Flags{Set: map[string]bool{"frames": true}})
	assert.Equal(t, 0, c.Frames)
	assert.Equal(t, 0.2, c.Step)
	assert.Equal(t, "cube", c.Shape)

	c = Config{Frames: 10}
	c.Resolve(Flags{})
	assert.Equal(t, 10, c.Frames)
}

func TestLoadFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(p, []byte("height: 7\n"), 0o644))
	t.Setenv(EnvConfig, p)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Height)
}

func TestLoadNothing(t *testing.T) {
	t.Setenv(EnvConfig, "")
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("width: [1, 2\n"), 0o644))
	_, err = Load(p)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width", func(c *Config) { c.Width = -1 }},
		{"height", func(c *Config) { c.Height = -5 }},
		{"fov", func(c *Config) { c.FOV = -1 }},
		{"distance at near plane", func(c *Config) { c.Distance = 0.1 }},
		{"nan fov", func(c *Config) { c.FOV = math.NaN() }},
		{"infinite distance", func(c *Config) { c.Distance = math.Inf(1) }},
		{"infinite step", func(c *Config) { c.Step = math.Inf(-1) }},
		{"delay", func(c *Config) { c.Delay = -time.Second }},
		{"frames", func(c *Config) { c.Frames = -2 }},
		{"axis", func(c *Config) { c.Axis = "w" }},
		{"driver", func(c *Config) { c.Driver = "gui" }},
		{"multi-rune glyph", func(c *Config) { c.Glyphs.Edge = "##" }},
		{"wide glyph", func(c *Config) { c.Glyphs.Vertex = "世" }},
		{"control glyph", func(c *Config) { c.Glyphs.Edge = "\t" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
