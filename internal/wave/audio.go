package wave

import (
	"errors"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/san-kum/intseq/internal/seq"
)

const DefaultSampleRate = beep.SampleRate(44100)

var ErrEmptyTable = errors.New("wave: cannot play an empty table")

// AudioOptions controls how a table is played back as a wavetable oscillator.
type AudioOptions struct {
	Frequency float64
	Duration  time.Duration
	Rate      beep.SampleRate
}

func DefaultAudioOptions() AudioOptions {
	return AudioOptions{Frequency: 220, Duration: 2 * time.Second, Rate: DefaultSampleRate}
}

// tableOsc steps through a peak-normalized table at a fixed pitch.
type tableOsc struct {
	table    []float64
	step     float64
	phase    float64
	position int
	duration int
}

// NewStreamer plays s as one period of a wavetable, repeated at opts.Frequency.
func NewStreamer(s seq.Sequence, opts AudioOptions) (beep.Streamer, error) {
	if len(s) == 0 {
		return nil, ErrEmptyTable
	}
	peak := 0.0
	for _, v := range s {
		peak = math.Max(peak, math.Abs(v))
	}
	table := make([]float64, len(s))
	for i, v := range s {
		if peak > 0 {
			table[i] = v / peak
		}
	}
	return &tableOsc{
		table:    table,
		step:     opts.Frequency / float64(opts.Rate),
		duration: opts.Rate.N(opts.Duration),
	}, nil
}

func (o *tableOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := o.table[int(o.phase*float64(len(o.table)))%len(o.table)]
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.step
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tableOsc) Err() error { return nil }

// WriteWAV encodes the table as 16-bit stereo PCM.
func WriteWAV(w io.WriteSeeker, s seq.Sequence, opts AudioOptions) error {
	st, err := NewStreamer(s, opts)
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: opts.Rate, NumChannels: 2, Precision: 2}
	return wav.Encode(w, st, format)
}
