// Package schedule turns a sequence into a monotone-or-not noise schedule
// rescaled into a target range.
package schedule

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/san-kum/intseq/internal/numeric"
	"github.com/san-kum/intseq/internal/seq"
)

type SortOrder int

const (
	NoSort SortOrder = iota
	Descending
	Ascending
)

var ErrUnknownSort = errors.New("schedule: unknown sort order")

var sortNames = map[SortOrder]string{
	NoSort:     "no sort",
	Descending: "highest to lowest",
	Ascending:  "lowest to highest",
}

var sortAliases = map[string]SortOrder{
	"none": NoSort,
	"desc": Descending,
	"asc":  Ascending,
}

func (o SortOrder) String() string {
	if s, ok := sortNames[o]; ok {
		return s
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

func ParseSortOrder(name string) (SortOrder, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for o, s := range sortNames {
		if s == n {
			return o, nil
		}
	}
	if o, ok := sortAliases[n]; ok {
		return o, nil
	}
	return NoSort, fmt.Errorf("%w: %q", ErrUnknownSort, name)
}

func (o SortOrder) MarshalText() ([]byte, error) {
	s, ok := sortNames[o]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSort, int(o))
	}
	return []byte(s), nil
}

func (o *SortOrder) UnmarshalText(b []byte) error {
	v, err := ParseSortOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

type Options struct {
	// Count limits the schedule to the first Count values. Zero, or a count
	// past the end, keeps everything.
	Count   int       `yaml:"count"`
	NewMin  float64   `yaml:"new_min"`
	NewMax  float64   `yaml:"new_max"`
	Reverse bool      `yaml:"reverse"`
	Sort    SortOrder `yaml:"sort"`
}

func DefaultOptions() Options {
	return Options{NewMin: 0, NewMax: 20, Reverse: true, Sort: NoSort}
}

// Map takes the subset, sorts it, reverses it, then remaps it from its own
// range onto [NewMin, NewMax]. The input is not modified.
func Map(s seq.Sequence, opts Options) (seq.Sequence, error) {
	if _, ok := sortNames[opts.Sort]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSort, int(opts.Sort))
	}
	if s.Len() == 0 {
		return seq.Sequence{}, nil
	}

	subset := s
	if opts.Count > 0 && opts.Count <= s.Len() {
		subset = s[:opts.Count]
	}
	out := subset.Clone()

	switch opts.Sort {
	case Ascending:
		slices.Sort(out)
	case Descending:
		slices.Sort(out)
		slices.Reverse(out)
	}
	if opts.Reverse {
		slices.Reverse(out)
	}

	lo, hi := numeric.MinMax(out)
	for i, v := range out {
		out[i] = numeric.Remap(v, lo, hi, opts.NewMin, opts.NewMax)
	}
	return out, nil
}
