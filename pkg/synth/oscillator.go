// Package synth implements the additive synthesis engine: oscillators,
// step sequences, one-pole filters, the track compiler and the mixer.
package synth

import "math"

// WaveKind selects the waveform formula used by an oscillator.
type WaveKind int

const (
	Sine WaveKind = iota
	Square
	Triangle
	Sawtooth
)

var waveNames = map[WaveKind]string{
	Sine:     "sine",
	Square:   "square",
	Triangle: "triangle",
	Sawtooth: "sawtooth",
}

func (k WaveKind) String() string {
	if name, ok := waveNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseWaveKind converts a wave name like "sine" to its WaveKind.
func ParseWaveKind(s string) (WaveKind, error) {
	for k, name := range waveNames {
		if name == s {
			return k, nil
		}
	}
	return 0, &ConfigError{Op: "ParseWaveKind", Field: "wave", Got: s, Want: "one of sine, square, triangle, sawtooth"}
}

// OscillatorConfig configures a track's waveform generator. Frequency and
// phase are supplied per note, not per oscillator, since one track renders
// many pitches.
type OscillatorConfig struct {
	Kind       WaveKind
	SampleRate int
}

func (c OscillatorConfig) validate(op, track string) error {
	if _, ok := waveNames[c.Kind]; !ok {
		return &ConfigError{Op: op, Track: track, Field: "wave", Got: int(c.Kind), Want: "a known WaveKind"}
	}
	if c.SampleRate <= 0 {
		return &ConfigError{Op: op, Track: track, Field: "sample rate", Got: c.SampleRate, Want: "> 0"}
	}
	return nil
}

// Sample evaluates one oscillator sample at time t seconds. Frequency 0
// yields silence; a negative frequency is a configuration error. All
// kinds stay within [-1, 1]; Square is exactly +1 or -1, with the zero
// crossing mapped to +1.
func Sample(kind WaveKind, freq, phase, t float64) (float64, error) {
	if _, ok := waveNames[kind]; !ok {
		return 0, &ConfigError{Op: "Sample", Field: "wave", Got: int(kind), Want: "a known WaveKind"}
	}
	if freq < 0 {
		return 0, &ConfigError{Op: "Sample", Field: "frequency", Got: freq, Want: ">= 0"}
	}
	if freq == 0 {
		return 0, nil
	}
	return sampleAt(kind, freq, phase, t), nil
}

func sampleAt(kind WaveKind, freq, phase, t float64) float64 {
	switch kind {
	case Sine:
		return math.Sin(2*math.Pi*freq*t + phase)
	case Square:
		if math.Sin(2*math.Pi*freq*t+phase) >= 0 {
			return 1.0
		}
		return -1.0
	case Triangle:
		return 2 / math.Pi * math.Asin(math.Sin(2*math.Pi*freq*t+phase))
	case Sawtooth:
		x := freq*t + phase/(2*math.Pi)
		return 2 * (x - math.Floor(x+0.5))
	}
	return 0
}

// Generate renders round(duration * sampleRate) samples of a waveform,
// evaluating it at t = i/sampleRate for each index i.
func Generate(kind WaveKind, freq, phase, duration float64, sampleRate int) (*SampleBuffer, error) {
	cfg := OscillatorConfig{Kind: kind, SampleRate: sampleRate}
	if err := cfg.validate("Generate", ""); err != nil {
		return nil, err
	}
	if freq < 0 {
		return nil, &ConfigError{Op: "Generate", Field: "frequency", Got: freq, Want: ">= 0"}
	}
	n := int(math.Round(duration * float64(sampleRate)))
	if n < 0 {
		n = 0
	}
	samples := make([]float64, n)
	if freq > 0 {
		for i := range samples {
			samples[i] = sampleAt(kind, freq, phase, float64(i)/float64(sampleRate))
		}
	}
	return &SampleBuffer{Samples: samples, SampleRate: sampleRate}, nil
}

// accumulate adds amp-scaled waveform samples into dst, with t starting
// at zero for dst[0]. Frequency 0 contributes silence.
func accumulate(dst []float64, kind WaveKind, freq, phase, amp float64, sampleRate int) {
	if freq <= 0 || amp == 0 {
		return
	}
	for i := range dst {
		dst[i] += amp * sampleAt(kind, freq, phase, float64(i)/float64(sampleRate))
	}
}
