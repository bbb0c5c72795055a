// Package analysis characterizes integer sequences before they are rendered.
//
// The package includes:
//
//   - [PowerSpectrum]: FFT magnitudes of the zero-padded sequence
//   - [Dominant]: the strongest periodic component, in cycles per sequence
//   - [NewReturnMap]: pairs (s[i], s[i+lag]) for spotting recurrences
//   - [Summarize]: count, range, mean and spread
//
// # Periodicity
//
// A sequence that repeats every p terms has its peak near len(s)/p cycles:
//
//	if peak, ok := analysis.Dominant(s); ok {
//	    fmt.Printf("period ~ %.1f terms\n", float64(len(s))/peak.Cycles)
//	}
package analysis
