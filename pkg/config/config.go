// Package config parses the command line flags shared by every demo.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/exp/slices"
)

// Window defaults
const (
	DefaultWidth  = 1600
	DefaultHeight = 900
	DefaultTitle  = "GL"
)

// Oldest context the v4.6-core function loader can initialize against
const (
	MinGLMajor = 4
	MinGLMinor = 6
)

// Config holds the settings of a demo run
type Config struct {
	Demo      string
	Width     int
	Height    int
	Title     string
	VSync     bool
	Debug     bool
	GLMajor   int
	GLMinor   int
	AssetDir  string
	ShowHUD   bool
	Captured  bool
	ListDemos bool
}

// Default returns the configuration used when no flags are given
func Default(demo string) Config {
	return Config{
		Demo:     demo,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Title:    DefaultTitle,
		VSync:    true,
		Debug:    true,
		GLMajor:  MinGLMajor,
		GLMinor:  MinGLMinor,
		AssetDir: "assets",
		Captured: true,
	}
}

// Parse parses args on top of the defaults for demo. Usage and flag errors
// are written to output.
func Parse(demo string, args []string, output io.Writer) (Config, error) {
	cfg := Default(demo)

	fs := flag.NewFlagSet(demo, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Demo, "demo", cfg.Demo, "Demo to run")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "Wait for vertical sync when presenting")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Request a debug context and log GL debug output")
	fs.IntVar(&cfg.GLMajor, "gl-major", cfg.GLMajor, "OpenGL context major version")
	fs.IntVar(&cfg.GLMinor, "gl-minor", cfg.GLMinor, "OpenGL context minor version")
	fs.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "Directory holding shaders/ and textures/")
	fs.BoolVar(&cfg.ShowHUD, "hud", cfg.ShowHUD, "Show the stats overlay at startup (toggle with F1)")
	fs.BoolVar(&cfg.Captured, "capture", cfg.Captured, "Capture the cursor at startup (toggle with C)")
	fs.BoolVar(&cfg.ListDemos, "list", cfg.ListDemos, "List available demos and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration against the known demo names
func (c Config) Validate(known []string) error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if c.GLMajor < MinGLMajor || (c.GLMajor == MinGLMajor && c.GLMinor < MinGLMinor) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is older than %d.%d core", c.GLMajor, c.GLMinor, MinGLMajor, MinGLMinor))
	}
	if !slices.Contains(known, c.Demo) {
		errs = append(errs, fmt.Errorf("unknown demo %q", c.Demo))
	}
	return errors.Join(errs...)
}

// Shader returns the path of a shader file inside the asset directory
func (c Config) Shader(name string) string {
	return filepath.Join(c.AssetDir, "shaders", name)
}

// Texture returns the path of a texture file inside the asset directory
func (c Config) Texture(name string) string {
	return filepath.Join(c.AssetDir, "textures", name)
}
