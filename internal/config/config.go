// Package config loads the paint settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"LocalPaint/internal/state"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window   Window   `toml:"window"`
	Canvas   Canvas   `toml:"canvas"`
	Defaults Defaults `toml:"defaults"`
	Log      Log      `toml:"log"`
}

type Window struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Canvas struct {
	// Background is a #rrggbb color.
	Background string  `toml:"background"`
	MinWidth   float32 `toml:"min_width"`
	MinHeight  float32 `toml:"min_height"`
}

type Defaults struct {
	Action  string  `toml:"action"`
	Opacity float32 `toml:"opacity"`
	Scale   float32 `toml:"scale"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Window: Window{Title: "Local Paint", Width: 1024, Height: 768},
		Canvas: Canvas{Background: "#f0ead6", MinWidth: 300, MinHeight: 300},
		Defaults: Defaults{
			Action:  state.DefaultAction().String(),
			Opacity: 1,
			Scale:   1,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, keeping values the document does not set,
// and validates the result.
func Parse(doc string, cfg *Config) error {
	md, err := toml.Decode(doc, cfg)
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %gx%g", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := c.Background(); err != nil {
		return err
	}
	if _, err := c.Action(); err != nil {
		return err
	}
	if c.Defaults.Opacity < 0 || c.Defaults.Opacity > 1 {
		return fmt.Errorf("%w: opacity %g outside [0,1]", ErrInvalid, c.Defaults.Opacity)
	}
	if c.Defaults.Scale < 0 || c.Defaults.Scale > 3 {
		return fmt.Errorf("%w: scale %g outside [0,3]", ErrInvalid, c.Defaults.Scale)
	}
	return nil
}

// Action is the parsed default action.
func (c Config) Action() (state.Action, error) {
	a, err := state.ParseAction(c.Defaults.Action)
	if err != nil {
		return a, fmt.Errorf("%w: defaults.action: %w", ErrInvalid, err)
	}
	return a, nil
}

// Background is the parsed canvas background.
func (c Config) Background() (color.NRGBA, error) {
	var r, g, b uint8
	s := c.Canvas.Background
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: canvas.background %q", ErrInvalid, s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: canvas.background %q: %w", ErrInvalid, s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
