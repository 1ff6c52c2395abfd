package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fosdem/glsteps/lib/log"
	"github.com/fosdem/glsteps/lib/tutorial"
	"github.com/fosdem/glsteps/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window      WindowCfg
	ClearColour string  `yaml:"clear_colour"`
	FlatColour  string  `yaml:"flat_colour"`
	StartStep   string  `yaml:"start_step"`
	ShadersDir  CfgPath `yaml:"shaders_dir"`
	Texture     TextureCfg
	Api         *ApiCfg
	LogLevel    string `yaml:"log_level"`
}

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	VSync     bool `yaml:"vsync"`
}

type TextureCfg struct {
	Path CfgPath
	// Flip turns the image upside down on load, since GL puts the texture
	// origin at the bottom left.
	Flip  bool
	Watch bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default is the configuration used for everything a config file leaves
// out.
func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Title:     "glsteps",
			Width:     1280,
			Height:    720,
			Resizable: true,
			VSync:     true,
		},
		ClearColour: "#1a1a1aff",
		FlatColour:  "#ff0000ff",
		StartStep:   tutorial.StepNames[0],
		Texture: TextureCfg{
			Flip: true,
		},
	}
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer closeLogged(f, filename)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := Default()
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func closeLogged(c io.Closer, filename string) {
	err := c.Close()
	if err != nil {
		log.Module("config").Warn(fmt.Sprintf("could not close %s: %s", filename, err))
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("clear_colour %s is not a valid RGBA hex colour", c.ClearColour)
	}
	if !utils.ColourValidate(c.FlatColour) {
		return fmt.Errorf("flat_colour %s is not a valid RGBA hex colour", c.FlatColour)
	}
	if !slices.Contains(tutorial.StepNames, c.StartStep) {
		return fmt.Errorf("start_step %s does not exist (known steps: %s)", c.StartStep, strings.Join(tutorial.StepNames, ", "))
	}
	err = c.Texture.Validate()
	if err != nil {
		return fmt.Errorf("texture is invalid: %w", err)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}
	_, err = log.ParseLevel(c.LogLevel)
	return err
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", w.Width, w.Height)
	}
	return nil
}

func (t *TextureCfg) Validate() error {
	if t.Path == "" && t.Watch {
		return fmt.Errorf("cannot watch a texture without path")
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Window: %q %dx%d\n", c.Window.Title, c.Window.Width, c.Window.Height))
	b.WriteString(fmt.Sprintf("Start step: %s\n", c.StartStep))

	b.WriteString("\nTexture:\n")
	if c.Texture.Path == "" {
		b.WriteString("  (generated checkerboard)\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s (flip: %t, watch: %t)\n", c.Texture.Path, c.Texture.Flip, c.Texture.Watch))
	}

	b.WriteString("\nShaders:\n")
	if c.ShadersDir == "" {
		b.WriteString("  (built-in)\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s\n", c.ShadersDir))
	}

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi: %s\n", c.Api.Bind))
	}

	return b.String()
}
