package boundary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/intseq/internal/numeric"
)

// Policy decides what happens to a drawing position that leaves the canvas.
type Policy int

const (
	Clamp Policy = iota
	Wrap
	Bounce
	None
)

var ErrUnknownPolicy = errors.New("boundary: unknown policy")

var names = map[Policy]string{
	Clamp:  "clamp",
	Wrap:   "wrap",
	Bounce: "bounce",
	None:   "none",
}

func (p Policy) String() string {
	if n, ok := names[p]; ok {
		return n
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func Parse(name string) (Policy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for p, s := range names {
		if s == n {
			return p, nil
		}
	}
	return Clamp, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

func Names() []string {
	return []string{"clamp", "wrap", "bounce", "none"}
}

func (p Policy) MarshalText() ([]byte, error) {
	if _, ok := names[p]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ClampPoint clamps each coordinate into [0, w-1] x [0, h-1].
func ClampPoint(x, y float64, w, h int) (float64, float64) {
	return numeric.Clamp(x, 0, float64(w-1)), numeric.Clamp(y, 0, float64(h-1))
}

// WrapPoint reduces each coordinate modulo the canvas extent.
func WrapPoint(x, y float64, w, h int) (float64, float64) {
	return numeric.FloorMod(x, float64(w)), numeric.FloorMod(y, float64(h))
}

// OutX and OutY also report NaN coordinates as outside.
func OutX(x float64, w int) bool { return !(x >= 0 && x < float64(w)) }

func OutY(y float64, h int) bool { return !(y >= 0 && y < float64(h)) }

func In(x, y float64, w, h int) bool { return !OutX(x, w) && !OutY(y, h) }
