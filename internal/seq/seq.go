// Package seq parses and formats the comma-separated numeric sequences that
// drive every renderer and companion unit.
package seq

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/intseq/internal/numeric"
)

// ErrMalformed is wrapped by every ParseError.
var ErrMalformed = errors.New("seq: could not parse all values, expected a comma-separated list of numbers")

// Sequence is an ordered list of values. Renderers treat it as read-only.
type Sequence []float64

// ParseError reports the first token that is not a number.
type ParseError struct {
	Source string
	Index  int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	src := e.Source
	if src == "" {
		src = "sequence"
	}
	return fmt.Sprintf("%s: token %d %q: %v", src, e.Index, e.Token, ErrMalformed)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

// Parse splits text on commas, trims each token and parses the non-empty ones.
// Empty or blank input yields an empty Sequence and no error.
func Parse(text string) (Sequence, error) {
	return ParseNamed("", text)
}

// ParseNamed is Parse with a source label that is carried into ParseError.
func ParseNamed(source, text string) (Sequence, error) {
	parts := strings.Split(text, ",")
	out := make(Sequence, 0, len(parts))
	for i, p := range parts {
		tok := strings.TrimSpace(p)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ParseError{Source: source, Index: i, Token: tok, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Format joins values with "," using the shortest representation that
// parses back to the same float.
func Format(s Sequence) string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

func (s Sequence) Len() int { return len(s) }

// At returns the value at i, cycling through the sequence.
func (s Sequence) At(i int) float64 {
	return s[i%len(s)]
}

func (s Sequence) MinMax() (float64, float64) {
	return numeric.MinMax(s)
}

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}
