// Package wave synthesizes periodic lookup tables that feed the renderers as
// ordinary sequences.
package wave

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/intseq/internal/numeric"
	"github.com/san-kum/intseq/internal/seq"
)

type Type int

const (
	Sine Type = iota
	Cosine
	Tangent
	Cotangent
	Sawtooth
	Triangle
	Sigmoid
	Square
)

var (
	ErrUnknownType   = errors.New("wave: unknown wave type")
	ErrInvalidLength = errors.New("wave: length must be at least 1")
)

var typeNames = [...]string{
	Sine:      "sine",
	Cosine:    "cosine",
	Tangent:   "tangent",
	Cotangent: "cotangent",
	Sawtooth:  "sawtooth",
	Triangle:  "triangle",
	Sigmoid:   "sigmoid",
	Square:    "square",
}

func (t Type) String() string {
	if t >= Sine && t <= Square {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range typeNames {
		if s == n {
			return Type(i), nil
		}
	}
	return Sine, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func Types() []string {
	return typeNames[:]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < Sine || t > Square {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Params describes one table. Phase is in degrees. Slope only affects
// Sigmoid; DutyCycle affects Sawtooth, Triangle and Square.
type Params struct {
	Type           Type    `yaml:"type"`
	Length         int     `yaml:"length"`
	Amplitude      float64 `yaml:"amplitude"`
	Frequency      float64 `yaml:"frequency"`
	Phase          float64 `yaml:"phase_offset"`
	VerticalOffset float64 `yaml:"vertical_offset"`
	Slope          float64 `yaml:"slope"`
	DutyCycle      float64 `yaml:"duty_cycle"`
}

func DefaultParams() Params {
	return Params{
		Type:      Sine,
		Length:    100,
		Amplitude: 1,
		Frequency: 1,
	}
}

// Generate evaluates the table. Samples that come out NaN or infinite are
// replaced by 0; the number replaced is returned so callers can warn.
func Generate(p Params) (seq.Sequence, int, error) {
	if p.Length < 1 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidLength, p.Length)
	}
	if _, err := p.Type.MarshalText(); err != nil {
		return nil, 0, err
	}

	out := make(seq.Sequence, p.Length)
	phase := p.Phase * math.Pi / 180
	sanitized := 0
	for i := range out {
		t := float64(i)/float64(p.Length)*(2*math.Pi*p.Frequency) + phase
		v := p.sample(t)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
			sanitized++
		}
		out[i] = v
	}
	return out, sanitized, nil
}

func (p Params) sample(t float64) float64 {
	a, off, duty := p.Amplitude, p.VerticalOffset, p.DutyCycle
	switch p.Type {
	case Sine:
		return a*math.Sin(t) + off
	case Cosine:
		return a*math.Cos(t) + off
	case Tangent:
		return a*math.Atan(math.Tan(t))*(2/math.Pi) + off
	case Cotangent:
		tan := math.Tan(t)
		if tan == 0 {
			return math.NaN()
		}
		return a*math.Atan(1/tan)*(2/math.Pi) + off
	case Sawtooth:
		nt := cycle(t)
		if nt < duty {
			return a*(nt/duty) - a/2 + off
		}
		return a*((nt-duty)/(1-duty)) - a/2 + off
	case Triangle:
		nt := cycle(t)
		if nt < duty {
			return a*(2*nt/duty-1) + off
		}
		return a*(1-2*(nt-duty)/(1-duty)) + off
	case Sigmoid:
		x := numeric.Remap(t, 0, 2*math.Pi*p.Frequency, -6*p.Frequency, 6*p.Frequency) * p.Slope
		return a*(1/(1+math.Exp(-x))) + off - a/2
	case Square:
		if cycle(t) < duty {
			return a + off
		}
		return -a + off
	}
	return 0
}

// cycle is the position of t within its period, in [0, 1).
func cycle(t float64) float64 {
	return numeric.FloorMod(t/(2*math.Pi), 1)
}
