package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abey79/rusteroid/generator"
	"github.com/abey79/rusteroid/parameter"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	res := cfg.Resource()
	assert.Equal(t, parameter.FieldWidth, res.FieldWidth)
	assert.Equal(t, parameter.MaxCategory, res.MaxCategory)
	assert.Equal(t, parameter.MissileTimeToLive, res.MissileTimeToLive)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())
}

func TestParse_Overrides(t *testing.T) {
	src := `
seed: 1234
field:
  width: 1000
asteroid:
  max_category: 4
  generators: [voronoi_fracture]
missile:
  time_to_live: 2s
log:
  enabled: true
  format: json
`
	cfg, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 1000.0, cfg.Field.Width)
	assert.Equal(t, parameter.FieldHeight, cfg.Field.Height, "untouched keys keep defaults")
	assert.Equal(t, 4, cfg.Asteroid.MaxCategory)
	assert.Equal(t, 2*time.Second, cfg.Missile.TimeToLive)
	assert.Equal(t, "json", cfg.Log.Format)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{generator.NameVoronoiFracture}, reg.Names())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"zero category", "asteroid:\n  max_category: 0\n"},
		{"unknown generator", "asteroid:\n  generators: [spiral]\n"},
		{"no generators", "asteroid:\n  generators: []\n"},
		{"negative field", "field:\n  width: -1\n"},
		{"momentum above one", "missile:\n  momentum_transfer: 1.5\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"loud audio", "audio:\n  volume: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("seed: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse(strings.NewReader("unknown_key: 1\n"))
	assert.Error(t, err)
}

// The fan-out of a destroyed asteroid is fixed, so the key is rejected like any unknown one
func TestParse_SplitCountRejected(t *testing.T) {
	cfg, err := Parse(strings.NewReader("asteroid:\n  split_count: 5\n"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "split_count")
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "rusteroid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
