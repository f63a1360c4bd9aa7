package synth

import (
	"fmt"
	"math"
)

// FilterKind selects the filter response.
type FilterKind int

const (
	LowPass FilterKind = iota
	HighPass
)

func (k FilterKind) String() string {
	switch k {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	}
	return "unknown"
}

// FilterSpec configures a single-pole IIR filter. LowPass attenuates
// frequencies above Cutoff, HighPass below it. The cutoff must lie
// strictly between 0 and the Nyquist frequency.
type FilterSpec struct {
	Kind   FilterKind
	Cutoff float64 // Hz
}

func (f FilterSpec) validate(op, track string, sampleRate int) error {
	if f.Kind != LowPass && f.Kind != HighPass {
		return &ConfigError{Op: op, Track: track, Field: "filter kind", Got: int(f.Kind), Want: "LowPass or HighPass"}
	}
	nyquist := float64(sampleRate) / 2
	if f.Cutoff <= 0 || f.Cutoff >= nyquist {
		return &ConfigError{Op: op, Track: track, Field: "cutoff", Got: f.Cutoff, Want: fmt.Sprintf("in (0, %g)", nyquist)}
	}
	return nil
}

// FilterEntry binds a filter to the time it switches on. The filter is
// active from Start to the end of the track's buffer.
type FilterEntry struct {
	Filter FilterSpec
	Start  float64 // seconds
}

// apply runs the filter in place over seg, which is the sub-range of the
// track buffer starting at the filter's start sample. Filter state is
// zero at seg[0] and carries forward only within the segment; samples
// outside it are never read.
func (f FilterSpec) apply(seg []float64, sampleRate int) {
	rc := 1.0 / (2 * math.Pi * f.Cutoff)
	dt := 1.0 / float64(sampleRate)
	switch f.Kind {
	case LowPass:
		alpha := dt / (rc + dt)
		var acc float64
		for i, x := range seg {
			acc += alpha * (x - acc)
			seg[i] = acc
		}
	case HighPass:
		alpha := rc / (rc + dt)
		var prevIn, acc float64
		for i, x := range seg {
			acc = alpha * (acc + x - prevIn)
			prevIn = x
			seg[i] = acc
		}
	}
}
