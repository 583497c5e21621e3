// Package config loads run settings from defaults, an optional YAML file and
// command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shuriken/anim"
	"shuriken/internal/logging"
)

var ErrInvalid = errors.New("invalid config")

// Render surfaces.
const (
	SurfaceWindow   = "window"
	SurfaceTerminal = "terminal"
	SurfaceHeadless = "headless"
)

type Config struct {
	Mode    string `yaml:"mode"`
	Surface string `yaml:"surface"`

	// Framebuffer size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for initial travel signs and collision colors; 0 picks one at startup.
	Seed uint64 `yaml:"seed"`

	HUD   bool   `yaml:"hud"`
	Audio bool   `yaml:"audio"`
	SVG   string `yaml:"svg"`

	Window   WindowConfig   `yaml:"window"`
	Headless HeadlessConfig `yaml:"headless"`
	Log      logging.Config `yaml:"log"`
}

type WindowConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

type HeadlessConfig struct {
	Hz          int    `yaml:"hz"`
	Frames      uint64 `yaml:"frames"`       // 0 = run until interrupted
	DigestEvery uint64 `yaml:"digest_every"` // 0 = only at exit
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:    anim.ModeStar.String(),
		Surface: SurfaceWindow,
		Width:   320,
		Height:  320,
		HUD:     true,
		Audio:   true,
		Window:  WindowConfig{Scale: 2, TPS: 60},
		Headless: HeadlessConfig{
			Hz:          60,
			DigestEvery: 60,
		},
		Log: logging.Default(),
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// AnimMode returns the parsed animation mode.
func (c Config) AnimMode() (anim.Mode, error) {
	m, err := anim.ParseMode(c.Mode)
	if err != nil {
		return m, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return m, nil
}

// Validate reports the first setting that cannot run.
func (c Config) Validate() error {
	if _, err := c.AnimMode(); err != nil {
		return err
	}
	switch c.Surface {
	case SurfaceWindow, SurfaceTerminal, SurfaceHeadless:
	default:
		return fmt.Errorf("%w: unknown surface %q", ErrInvalid, c.Surface)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: framebuffer %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window tps %d", ErrInvalid, c.Window.TPS)
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("%w: headless hz %d", ErrInvalid, c.Headless.Hz)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Log.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log encoding %q", ErrInvalid, c.Log.Encoding)
	}
	return nil
}

// Flags holds command-line overrides. Only flags the user actually set are applied.
type Flags struct {
	Path string

	mode, surface, svg, logLevel, logOutput string
	headless, terminal, hud, audio          bool
	hz, width, height                       int
	frames, seed                            uint64
}

// Register defines the flags on fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	d := Default()
	fs.StringVar(&f.Path, "config", "", "YAML config file.")
	fs.StringVar(&f.mode, "mode", d.Mode, "Shape to animate: star or logo.")
	fs.StringVar(&f.surface, "surface", d.Surface, "Render surface: window, terminal or headless.")
	fs.BoolVar(&f.headless, "headless", false, "Run without a window (same as -surface headless).")
	fs.BoolVar(&f.terminal, "term", false, "Render in the terminal (same as -surface terminal).")
	fs.IntVar(&f.hz, "hz", d.Headless.Hz, "Frame rate in headless mode.")
	fs.Uint64Var(&f.frames, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	fs.IntVar(&f.width, "width", d.Width, "Framebuffer width.")
	fs.IntVar(&f.height, "height", d.Height, "Framebuffer height.")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed (0 = time based).")
	fs.BoolVar(&f.hud, "hud", d.HUD, "Draw the status overlay.")
	fs.BoolVar(&f.audio, "audio", d.Audio, "Play a chime on collisions.")
	fs.StringVar(&f.svg, "svg", "", "Write the last frame as SVG to this path on exit.")
	fs.StringVar(&f.logLevel, "log-level", d.Log.Level, "Log level.")
	fs.StringVar(&f.logOutput, "log-output", d.Log.Output, "Log destination: stderr, stdout or a file.")
}

// Apply copies every flag that was set on the command line into cfg.
func (f *Flags) Apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			cfg.Mode = f.mode
		case "surface":
			cfg.Surface = f.surface
		case "headless":
			if f.headless {
				cfg.Surface = SurfaceHeadless
			}
		case "term":
			if f.terminal {
				cfg.Surface = SurfaceTerminal
			}
		case "hz":
			cfg.Headless.Hz = f.hz
		case "ticks":
			cfg.Headless.Frames = f.frames
		case "width":
			cfg.Width = f.width
		case "height":
			cfg.Height = f.height
		case "seed":
			cfg.Seed = f.seed
		case "hud":
			cfg.HUD = f.hud
		case "audio":
			cfg.Audio = f.audio
		case "svg":
			cfg.SVG = f.svg
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "log-output":
			cfg.Log.Output = f.logOutput
		}
	})
}
