package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/intseq/internal/seq"
)

// Spectrum is the one-sided magnitude spectrum of a zero-padded sequence.
type Spectrum struct {
	// Power holds |X[k]| for k in [0, Padded/2).
	Power  []float64
	Padded int
	Length int
}

// Peak is the strongest non-DC bin of a spectrum.
type Peak struct {
	Bin    int
	Power  float64
	Cycles float64 // periods per unpadded sequence length
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// PowerSpectrum zero-pads s to a power of two before the transform.
func PowerSpectrum(s seq.Sequence) Spectrum {
	if len(s) == 0 {
		return Spectrum{}
	}
	n := nextPow2(len(s))
	padded := make([]float64, n)
	copy(padded, s)

	coeffs := fft.FFTReal(padded)
	half := n / 2
	if half == 0 {
		half = 1
	}
	ps := make([]float64, half)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return Spectrum{Power: ps, Padded: n, Length: len(s)}
}

// Dominant finds the peak bin, skipping DC. ok is false when there is no
// bin besides DC.
func (sp Spectrum) Dominant() (Peak, bool) {
	if len(sp.Power) < 2 {
		return Peak{}, false
	}
	best := 1
	for i := 2; i < len(sp.Power); i++ {
		if sp.Power[i] > sp.Power[best] {
			best = i
		}
	}
	return Peak{
		Bin:    best,
		Power:  sp.Power[best],
		Cycles: float64(best) * float64(sp.Length) / float64(sp.Padded),
	}, true
}

func Dominant(s seq.Sequence) (Peak, bool) {
	return PowerSpectrum(s).Dominant()
}
