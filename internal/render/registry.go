package render

import (
	"fmt"
	"sort"

	"github.com/san-kum/intseq/internal/seq"
)

// Renderer draws a sequence onto a fresh canvas sized by cfg.
type Renderer interface {
	Mode() Mode
	Render(s seq.Sequence, cfg Config) *Canvas
}

type Registry struct {
	renderers map[Mode]func() Renderer
}

func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[Mode]func() Renderer)}

	r.Register(ModeRGB, func() Renderer { return Raster{} })
	r.Register(ModeAngleLength, func() Renderer { return NewWalk(Cumulative) })
	r.Register(ModeRunTurn, func() Renderer { return NewWalk(Absolute) })
	r.Register(ModeMeander, func() Renderer { return Meander{} })
	r.Register(ModeAutomaton, func() Renderer { return Automaton{} })

	return r
}

func (r *Registry) Get(m Mode) (Renderer, error) {
	fn, ok := r.renderers[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}
	return fn(), nil
}

// Register replaces or adds the renderer for a mode.
func (r *Registry) Register(m Mode, fn func() Renderer) {
	r.renderers[m] = fn
}

func (r *Registry) Modes() []Mode {
	modes := make([]Mode, 0, len(r.renderers))
	for m := range r.renderers {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

var defaultRegistry = NewRegistry()

// Render validates cfg and draws s with the mode's renderer. An empty
// sequence yields a black canvas of the configured size.
func Render(s seq.Sequence, cfg Config) (*Canvas, error) {
	return defaultRegistry.Render(s, cfg)
}

func (r *Registry) Render(s seq.Sequence, cfg Config) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return NewCanvas(cfg.Width, cfg.Height), nil
	}
	rd, err := r.Get(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return rd.Render(s, cfg), nil
}

// RenderText parses text and renders it. A parse failure aborts the render.
func RenderText(text string, cfg Config) (*Canvas, error) {
	s, err := seq.Parse(text)
	if err != nil {
		return nil, err
	}
	return Render(s, cfg)
}
