package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/state"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bg, err := cfg.Background()
	require.NoError(t, err)
	assert.Equal(t, state.IvoryBackground, bg)

	a, err := cfg.Action()
	require.NoError(t, err)
	assert.Equal(t, state.DefaultAction(), a)
}

func TestParseOverridesOnlyWhatIsSet(t *testing.T) {
	cfg := Default()
	doc := `
[window]
title = "Sketch"

[canvas]
background = "#102030"

[defaults]
action = "shape:hexagon"
scale = 2.5

[log]
level = "debug"
`
	require.NoError(t, Parse(doc, &cfg))

	assert.Equal(t, "Sketch", cfg.Window.Title)
	assert.Equal(t, float32(1024), cfg.Window.Width)
	assert.Equal(t, float32(2.5), cfg.Defaults.Scale)
	assert.Equal(t, float32(1), cfg.Defaults.Opacity)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	bg, err := cfg.Background()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, bg)

	a, err := cfg.Action()
	require.NoError(t, err)
	assert.Equal(t, state.ShapeAction(state.ShapeHexagon), a)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "[canvas]\nborder = 3\n"},
		{"short background", "[canvas]\nbackground = \"#fff\"\n"},
		{"bad hex", "[canvas]\nbackground = \"#zz0000\"\n"},
		{"unknown action", "[defaults]\naction = \"tool:spray\"\n"},
		{"opacity", "[defaults]\nopacity = 1.5\n"},
		{"scale", "[defaults]\nscale = -1.0\n"},
		{"window", "[window]\nwidth = 0.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			assert.ErrorIs(t, Parse(tt.doc, &cfg), ErrInvalid)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	cfg := Default()
	err := Parse("[window\n", &cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "paint.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nheight = 500.0\n"), 0o600))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(500), cfg.Window.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
