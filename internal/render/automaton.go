package render

import (
	"fmt"

	"github.com/san-kum/intseq/internal/numeric"
	"github.com/san-kum/intseq/internal/seq"
)

// seedCeiling keeps the top of the remapped range just below 2 so that
// truncation yields 0 or 1.
const seedCeiling = 1.99

// RuleTable is the next-state lookup of an elementary automaton, indexed by
// the neighborhood pattern 4*left + 2*center + right.
type RuleTable [8]uint8

func NewRuleTable(rule uint8) RuleTable {
	var t RuleTable
	for p := range t {
		t[p] = (rule >> p) & 1
	}
	return t
}

func (t RuleTable) Next(left, center, right uint8) uint8 {
	return t[left<<2|center<<1|right]
}

func (t RuleTable) Rule() uint8 {
	var r uint8
	for p, bit := range t {
		r |= bit << p
	}
	return r
}

// String is the rule as an MSB-first bit string, e.g. "00011110" for 30.
func (t RuleTable) String() string {
	return fmt.Sprintf("%08b", t.Rule())
}

// SeedRow digitizes the sequence against its own min and max.
func SeedRow(s seq.Sequence, width int) []uint8 {
	lo, hi := s.MinMax()
	row := make([]uint8, width)
	for x := range row {
		v := numeric.Remap(s.At(x), lo, hi, 0, seedCeiling)
		row[x] = uint8(int(v) % 2)
	}
	return row
}

// Evolve computes the next generation with wraparound neighbors.
func Evolve(row []uint8, t RuleTable) []uint8 {
	w := len(row)
	next := make([]uint8, w)
	for x := 0; x < w; x++ {
		left := row[(x-1+w)%w]
		right := row[(x+1)%w]
		next[x] = t.Next(left, row[x], right)
	}
	return next
}

// Automaton paints one generation per row, seeded from the sequence. It
// always wraps at the row ends and ignores the boundary policy.
type Automaton struct{}

func (Automaton) Mode() Mode { return ModeAutomaton }

func (Automaton) Render(s seq.Sequence, cfg Config) *Canvas {
	c := NewCanvas(cfg.Width, cfg.Height)
	m := cfg.Mapper()
	off, on := m.Low(), m.High()
	table := NewRuleTable(cfg.Rule)

	row := SeedRow(s, cfg.Width)
	for y := 0; y < cfg.Height; y++ {
		for x, state := range row {
			if state == 1 {
				c.Set(x, y, on)
			} else {
				c.Set(x, y, off)
			}
		}
		if y < cfg.Height-1 {
			row = Evolve(row, table)
		}
	}
	return c
}
