package config

import (
	"sort"

	"github.com/san-kum/intseq/internal/wave"
)

const (
	primes    = "2,3,5,7,11,13,17,19,23,29,31,37,41,43,47,53,59,61,67,71,73,79,83,89,97,101,103,107,109,113,127,131,137,139,149,151,157,163,167,173,179,181,191,193,197,199"
	fibonacci = "0,1,1,2,3,5,8,13,21,34,55,89,144,233,377,610,987,1597,2584,4181,6765"
	recaman   = "0,1,3,6,2,7,13,20,12,21,11,22,10,23,9,24,8,25,43,62,42,63,41,18,42,17,43,16,44,15,45,14,46,79,113,78,114,77,39,78,38,79,37,80,36,81,35,82,34,83,33,84,32,85,31,86,30,87,29,88,28,89,27,90,26,91"
	digitsPi  = "3,1,4,1,5,9,2,6,5,3,5,8,9,7,9,3,2,3,8,4,6,2,6,4,3,3,8,3,2,7,9,5,0,2,8,8,4,1,9,7,1,6,9,3,9,9,3,7,5,1,0,5,8,2,0,9,7,4,9,4,4,5,9,2,3,0,7,8,1,6,4,0,6,2,8,6,2,0,8,9,9,8,6,2,8,0,3,4,8,2,5,3,4,2,1,1,7,0,6,7"
)

func preset(sequence string, edit func(r *RenderConfig)) *Config {
	cfg := DefaultConfig()
	cfg.Sequence = sequence
	edit(&cfg.Render)
	return cfg
}

var Presets = map[string]*Config{
	"primes-rgb": preset(primes, func(r *RenderConfig) {
		r.Width, r.Height = 64, 64
	}),
	"rule30": preset(digitsPi, func(r *RenderConfig) {
		r.Mode = "cellular_automaton"
		r.Rule = 30
		r.Width, r.Height = 200, 100
	}),
	"rule110": preset(primes, func(r *RenderConfig) {
		r.Mode = "cellular_automaton"
		r.Rule = 110
		r.Width, r.Height = 256, 128
		r.ColorOffset = 0.5
	}),
	"recaman-walk": preset(recaman, func(r *RenderConfig) {
		r.Mode = "angle and length"
		r.AngleScale = 15
		r.LengthScale = 0.5
		r.StartX, r.StartY = 256, 256
		r.LineWidth = 2
		r.Boundary = "bounce"
	}),
	"pi-run-turn": preset(digitsPi, func(r *RenderConfig) {
		r.Mode = "run and turn"
		r.AngleScale = 36
		r.LengthScale = 4
		r.StartX, r.StartY = 256, 256
		r.Boundary = "wrap"
	}),
	"fibonacci-meander": preset(fibonacci, func(r *RenderConfig) {
		r.Mode = "meander"
		r.StartX, r.StartY = 128, 128
		r.Width, r.Height = 256, 256
		r.Boundary = "wrap"
		r.Colors.ValueMax = 100
	}),
	"sine-walk": func() *Config {
		cfg := preset("", func(r *RenderConfig) {
			r.Mode = "angle and length"
			r.AngleScale = 10
			r.LengthScale = 8
			r.StartX, r.StartY = 100, 256
			r.Colors.ValueMin, r.Colors.ValueMax = -1.5, 1.5
			r.Boundary = "none"
		})
		cfg.Wave = wave.Params{Type: wave.Sine, Length: 200, Amplitude: 1, Frequency: 3}
		return cfg
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UsesWave reports whether the preset's sequence comes from the wave
// synthesizer rather than literal text.
func (c *Config) UsesWave() bool {
	return c.Sequence == ""
}
