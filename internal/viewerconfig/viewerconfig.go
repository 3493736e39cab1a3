// Package viewerconfig loads the viewer's YAML configuration. A missing
// file is fine and yields defaults; a present file only needs to name
// the fields it changes.
package viewerconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything about the viewer that is not a per-run CLI
// flag: window, overlays, pipe color, and camera feel.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`

	GridVisible  bool `yaml:"grid_visible"`
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`

	// PipeColor accepts "#rrggbb" or "r,g,b".
	PipeColor string `yaml:"pipe_color"`

	Camera CameraConfig `yaml:"camera"`
}

// CameraConfig tunes the pan-orbit rig.
type CameraConfig struct {
	OrbitSensitivity float32 `yaml:"orbit_sensitivity"`
	PanSensitivity   float32 `yaml:"pan_sensitivity"`
	ZoomSensitivity  float32 `yaml:"zoom_sensitivity"`
	Radius           float32 `yaml:"radius"`
	ReversedZoom     bool    `yaml:"reversed_zoom"`
	AllowUpsideDown  bool    `yaml:"allow_upside_down"`
}

// Default returns the stock configuration: 1280x720 window, grid on,
// overlays off, red pipes, and the standard camera feel.
func Default() Config {
	return Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "pipeworks viewer",
		GridVisible:  true,
		PipeColor:    "#ff0000",
		Camera: CameraConfig{
			OrbitSensitivity: 1.5,
			PanSensitivity:   0.5,
			ZoomSensitivity:  0.5,
			Radius:           5,
			ReversedZoom:     true,
			AllowUpsideDown:  true,
		},
	}
}

// Load reads the config at path, layered over Default. A missing file
// returns defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("viewer config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("viewer config: %w", err)
	}
	return cfg, nil
}

// Normalize fills zeroed numeric fields with their defaults so a file
// that only sets, say, the pipe color keeps sane camera values.
func (c *Config) Normalize() {
	def := Default()
	if c.WindowWidth == 0 {
		c.WindowWidth = def.WindowWidth
	}
	if c.WindowHeight == 0 {
		c.WindowHeight = def.WindowHeight
	}
	if strings.TrimSpace(c.WindowTitle) == "" {
		c.WindowTitle = def.WindowTitle
	}
	if strings.TrimSpace(c.PipeColor) == "" {
		c.PipeColor = def.PipeColor
	}
	if c.Camera.OrbitSensitivity == 0 {
		c.Camera.OrbitSensitivity = def.Camera.OrbitSensitivity
	}
	if c.Camera.PanSensitivity == 0 {
		c.Camera.PanSensitivity = def.Camera.PanSensitivity
	}
	if c.Camera.ZoomSensitivity == 0 {
		c.Camera.ZoomSensitivity = def.Camera.ZoomSensitivity
	}
	if c.Camera.Radius == 0 {
		c.Camera.Radius = def.Camera.Radius
	}
}

// Validate rejects values the renderer cannot work with.
func (c Config) Validate() error {
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.Camera.OrbitSensitivity < 0 || c.Camera.PanSensitivity < 0 || c.Camera.ZoomSensitivity < 0 {
		return fmt.Errorf("camera sensitivities must not be negative")
	}
	if c.Camera.Radius < 0 {
		return fmt.Errorf("camera radius must not be negative")
	}
	if _, err := ParseColor(c.PipeColor); err != nil {
		return err
	}
	return nil
}

// ParseColor parses "#rrggbb" (hash optional) or "r,g,b" into an RGB
// triple.
func ParseColor(s string) ([3]uint8, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return [3]uint8{}, fmt.Errorf("color %q: want r,g,b", s)
		}
		var c [3]uint8
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return [3]uint8{}, fmt.Errorf("color %q: component %q out of range", s, p)
			}
			c[i] = uint8(n)
		}
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return [3]uint8{}, fmt.Errorf("color %q: want #rrggbb or r,g,b", s)
	}
	var c [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return [3]uint8{}, fmt.Errorf("color %q: bad hex digit", s)
		}
		c[i] = uint8(n)
	}
	return c, nil
}
