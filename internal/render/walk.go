package render

import (
	"math"

	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/numeric"
	"github.com/san-kum/intseq/internal/palette"
	"github.com/san-kum/intseq/internal/seq"
)

// AnglePolicy chooses how a walk turns the second value of each pair into a
// direction.
type AnglePolicy int

const (
	// Cumulative adds turn*AngleScale to a running heading ("angle and length").
	Cumulative AnglePolicy = iota
	// Absolute remaps turn*AngleScale from the value range onto a 0-360
	// bearing for that step only ("run and turn").
	Absolute
)

func (p AnglePolicy) String() string {
	if p == Absolute {
		return "absolute"
	}
	return "cumulative"
}

// WalkStep draws one (length, turn) pair starting at st. It returns the
// segment to stroke and the state the next pair starts from.
func WalkStep(st DrawState, length, turn float64, policy AnglePolicy, cfg Config) (DrawState, Segment) {
	return walkStep(st, length, turn, policy, cfg, cfg.Mapper())
}

func walkStep(st DrawState, length, turn float64, policy AnglePolicy, cfg Config, m palette.Mapper) (DrawState, Segment) {
	var theta float64
	seg := Segment{X0: st.X, Y0: st.Y}

	switch policy {
	case Absolute:
		theta = numeric.Remap(turn*cfg.AngleScale, cfg.Colors.Value.Min, cfg.Colors.Value.Max, 0, 360)
		seg.Color = m.Color(length)
	default:
		theta = st.Heading + turn*cfg.AngleScale
		seg.Color = m.Color(turn)
	}

	dist := length * cfg.LengthScale
	rad := theta * math.Pi / 180
	seg.X1 = st.X + dist*math.Cos(rad)
	seg.Y1 = st.Y + dist*math.Sin(rad)

	w, h := cfg.Width, cfg.Height
	switch cfg.Boundary {
	case boundary.Clamp:
		st.X, st.Y = boundary.ClampPoint(seg.X1, seg.Y1, w, h)
	case boundary.Wrap:
		st.X, st.Y = boundary.WrapPoint(seg.X1, seg.Y1, w, h)
	case boundary.Bounce:
		bounced := false
		if boundary.OutX(seg.X1, w) {
			theta = 180 - theta
			bounced = true
		}
		if boundary.OutY(seg.Y1, h) {
			theta = 360 - theta
			bounced = true
		}
		if bounced {
			st.X, st.Y = boundary.ClampPoint(seg.X1, seg.Y1, w, h)
		} else {
			st.X, st.Y = seg.X1, seg.Y1
		}
	default:
		st.X, st.Y = seg.X1, seg.Y1
	}

	// For Absolute this is the step's (possibly reflected) bearing; the next
	// step computes a fresh one.
	st.Heading = theta
	return st, seg
}

// Walk consumes the sequence pairwise as (length, turn) and draws a line per
// pair. A trailing unpaired value is ignored.
type Walk struct {
	Policy AnglePolicy
}

func NewWalk(p AnglePolicy) Walk {
	return Walk{Policy: p}
}

func (w Walk) Mode() Mode {
	if w.Policy == Absolute {
		return ModeRunTurn
	}
	return ModeAngleLength
}

func (w Walk) Render(s seq.Sequence, cfg Config) *Canvas {
	c := NewCanvas(cfg.Width, cfg.Height)
	m := cfg.Mapper()
	st := cfg.Start()
	for i := 0; i+1 < len(s); i += 2 {
		var seg Segment
		st, seg = walkStep(st, s[i], s[i+1], w.Policy, cfg, m)
		c.DrawLine(seg.X0, seg.Y0, seg.X1, seg.Y1, cfg.LineWidth, seg.Color)
	}
	return c
}
