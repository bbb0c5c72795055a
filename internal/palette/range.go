package palette

import (
	"errors"
	"fmt"
)

// Sentinel is the external marker for a bound that should inherit its default.
const Sentinel = -1

const (
	DefaultValueMin = 0
	DefaultValueMax = 255
)

var ErrInvalidRange = errors.New("palette: value max must not be below value min")

// Bound is an optional range endpoint.
type Bound struct {
	v   float64
	set bool
}

func Set(v float64) Bound { return Bound{v: v, set: true} }

func Unset() Bound { return Bound{} }

// FromSentinel converts an external value where -1 means unset.
func FromSentinel(v float64) Bound {
	if v == Sentinel {
		return Unset()
	}
	return Set(v)
}

func (b Bound) IsSet() bool { return b.set }

func (b Bound) Or(def float64) float64 {
	if b.set {
		return b.v
	}
	return def
}

// Sentinel reports the bound back in the external form.
func (b Bound) Sentinel() float64 {
	return b.Or(Sentinel)
}

// Bounds is the unresolved form of a ColorRange as users configure it.
type Bounds struct {
	ValueMin, ValueMax Bound
	RedMin, RedMax     Bound
	GreenMin, GreenMax Bound
	BlueMin, BlueMax   Bound
}

// Span is a closed [Min, Max] interval.
type Span struct {
	Min, Max float64
}

// ColorRange is the resolved domain and per-channel codomain of a Mapper.
type ColorRange struct {
	Value, Red, Green, Blue Span
}

// Resolve fills unset value bounds with 0/255 and unset channel bounds with
// the resolved value bounds.
func (b Bounds) Resolve() ColorRange {
	lv := b.ValueMin.Or(DefaultValueMin)
	mv := b.ValueMax.Or(DefaultValueMax)
	return ColorRange{
		Value: Span{lv, mv},
		Red:   Span{b.RedMin.Or(lv), b.RedMax.Or(mv)},
		Green: Span{b.GreenMin.Or(lv), b.GreenMax.Or(mv)},
		Blue:  Span{b.BlueMin.Or(lv), b.BlueMax.Or(mv)},
	}
}

func DefaultRange() ColorRange {
	return Bounds{}.Resolve()
}

func (r ColorRange) Validate() error {
	if r.Value.Max < r.Value.Min {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, r.Value.Min, r.Value.Max)
	}
	return nil
}
