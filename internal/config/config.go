package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/palette"
	"github.com/san-kum/intseq/internal/plot"
	"github.com/san-kum/intseq/internal/render"
	"github.com/san-kum/intseq/internal/schedule"
	"github.com/san-kum/intseq/internal/wave"
)

var ErrInvalidRule = errors.New("config: rule must be in 0..255")

type Config struct {
	Sequence string           `yaml:"sequence,omitempty"`
	Render   RenderConfig     `yaml:"render"`
	Wave     wave.Params      `yaml:"wave"`
	Schedule schedule.Options `yaml:"schedule"`
	Plot     plot.Options     `yaml:"plot"`
}

// RenderConfig is the on-disk form of render.Config. Color bounds use -1 to
// mean "inherit".
type RenderConfig struct {
	Width       int     `yaml:"width" json:"width"`
	Height      int     `yaml:"height" json:"height"`
	Mode        string  `yaml:"mode" json:"mode"`
	Rule        int     `yaml:"rule" json:"rule"`
	ColorOffset float64 `yaml:"color_offset" json:"color_offset"`
	Colors      Colors  `yaml:"colors" json:"colors"`
	AngleScale  float64 `yaml:"angle_scale" json:"angle_scale"`
	LengthScale float64 `yaml:"length_scale" json:"length_scale"`
	LineWidth   int     `yaml:"line_width" json:"line_width"`
	StartX      float64 `yaml:"start_x" json:"start_x"`
	StartY      float64 `yaml:"start_y" json:"start_y"`
	Boundary    string  `yaml:"boundary" json:"boundary"`
}

type Colors struct {
	ValueMin float64 `yaml:"value_min" json:"value_min"`
	ValueMax float64 `yaml:"value_max" json:"value_max"`
	RedMin   float64 `yaml:"red_min" json:"red_min"`
	RedMax   float64 `yaml:"red_max" json:"red_max"`
	GreenMin float64 `yaml:"green_min" json:"green_min"`
	GreenMax float64 `yaml:"green_max" json:"green_max"`
	BlueMin  float64 `yaml:"blue_min" json:"blue_min"`
	BlueMax  float64 `yaml:"blue_max" json:"blue_max"`
}

func unsetColors() Colors {
	return Colors{
		ValueMin: palette.Sentinel, ValueMax: palette.Sentinel,
		RedMin: palette.Sentinel, RedMax: palette.Sentinel,
		GreenMin: palette.Sentinel, GreenMax: palette.Sentinel,
		BlueMin: palette.Sentinel, BlueMax: palette.Sentinel,
	}
}

func DefaultRender() RenderConfig {
	return RenderConfig{
		Width:       render.DefaultWidth,
		Height:      render.DefaultHeight,
		Mode:        render.ModeRGB.String(),
		Rule:        render.DefaultRule,
		ColorOffset: render.DefaultColorOffset,
		Colors:      unsetColors(),
		AngleScale:  render.DefaultAngleScale,
		LengthScale: render.DefaultLengthScale,
		LineWidth:   render.DefaultLineWidth,
		Boundary:    boundary.Clamp.String(),
	}
}

func DefaultConfig() *Config {
	return &Config{
		Render:   DefaultRender(),
		Wave:     wave.DefaultParams(),
		Schedule: schedule.DefaultOptions(),
		Plot:     plot.DefaultOptions(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bounds converts the sentinel form into optional bounds.
func (c Colors) Bounds() palette.Bounds {
	return palette.Bounds{
		ValueMin: palette.FromSentinel(c.ValueMin),
		ValueMax: palette.FromSentinel(c.ValueMax),
		RedMin:   palette.FromSentinel(c.RedMin),
		RedMax:   palette.FromSentinel(c.RedMax),
		GreenMin: palette.FromSentinel(c.GreenMin),
		GreenMax: palette.FromSentinel(c.GreenMax),
		BlueMin:  palette.FromSentinel(c.BlueMin),
		BlueMax:  palette.FromSentinel(c.BlueMax),
	}
}

// ToRender resolves names and sentinels and validates the result.
func (r RenderConfig) ToRender() (render.Config, error) {
	mode, err := render.ParseMode(r.Mode)
	if err != nil {
		return render.Config{}, err
	}
	policy, err := boundary.Parse(r.Boundary)
	if err != nil {
		return render.Config{}, err
	}
	if r.Rule < 0 || r.Rule > 255 {
		return render.Config{}, fmt.Errorf("%w: %d", ErrInvalidRule, r.Rule)
	}

	cfg := render.Config{
		Width:       r.Width,
		Height:      r.Height,
		Mode:        mode,
		Rule:        uint8(r.Rule),
		ColorOffset: r.ColorOffset,
		Colors:      r.Colors.Bounds().Resolve(),
		AngleScale:  r.AngleScale,
		LengthScale: r.LengthScale,
		LineWidth:   r.LineWidth,
		StartX:      r.StartX,
		StartY:      r.StartY,
		Boundary:    policy,
	}
	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}
