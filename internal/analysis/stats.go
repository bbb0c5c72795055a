package analysis

import (
	"math"

	"github.com/san-kum/intseq/internal/seq"
)

// Summary describes the value distribution of a sequence.
type Summary struct {
	Count    int
	Min, Max float64
	Mean     float64
	StdDev   float64
	Distinct int
}

func Summarize(s seq.Sequence) Summary {
	if len(s) == 0 {
		return Summary{}
	}
	sum := Summary{Count: len(s)}
	sum.Min, sum.Max = s.MinMax()

	seen := make(map[float64]struct{}, len(s))
	total := 0.0
	for _, v := range s {
		total += v
		seen[v] = struct{}{}
	}
	sum.Distinct = len(seen)
	sum.Mean = total / float64(len(s))

	ss := 0.0
	for _, v := range s {
		d := v - sum.Mean
		ss += d * d
	}
	sum.StdDev = math.Sqrt(ss / float64(len(s)))
	return sum
}
