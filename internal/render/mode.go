package render

import (
	"fmt"
	"strings"
)

// Mode selects one of the renderers.
type Mode int

const (
	ModeRGB Mode = iota
	ModeAngleLength
	ModeRunTurn
	ModeMeander
	ModeAutomaton
)

var modeNames = [...]string{
	ModeRGB:         "RGB",
	ModeAngleLength: "angle and length",
	ModeRunTurn:     "run and turn",
	ModeMeander:     "meander",
	ModeAutomaton:   "cellular_automaton",
}

var modeAliases = map[string]Mode{
	"rgb":                ModeRGB,
	"raster":             ModeRGB,
	"angle and length":   ModeAngleLength,
	"angle_and_length":   ModeAngleLength,
	"angle-length":       ModeAngleLength,
	"run and turn":       ModeRunTurn,
	"run_and_turn":       ModeRunTurn,
	"run-turn":           ModeRunTurn,
	"meander":            ModeMeander,
	"cellular_automaton": ModeAutomaton,
	"cellular-automaton": ModeAutomaton,
	"automaton":          ModeAutomaton,
	"ca":                 ModeAutomaton,
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) Valid() bool {
	return m >= ModeRGB && m <= ModeAutomaton
}

// Paths reports whether the mode moves a cursor and so uses a boundary policy.
func (m Mode) Paths() bool {
	return m == ModeAngleLength || m == ModeRunTurn || m == ModeMeander
}

func ParseMode(name string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return ModeRGB, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeRGB, ModeAngleLength, ModeRunTurn, ModeMeander, ModeAutomaton}
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
