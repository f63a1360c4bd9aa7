package synth

import "math"

// Track binds one oscillator config, one step sequence, a filter chain
// and a scalar level. Tracks handed out by a Mixer are snapshots:
// configure tracks through the Mixer itself so that every value is
// validated when it is introduced and changes are serialized with
// in-flight compiles.
type Track struct {
	Name       string
	Oscillator OscillatorConfig
	Steps      StepSequence
	Filters    []FilterEntry
	Level      float64
}

// snapshot returns a deep copy of the track's configuration.
func (t *Track) snapshot() *Track {
	return &Track{
		Name:       t.Name,
		Oscillator: t.Oscillator,
		Steps:      append(StepSequence(nil), t.Steps...),
		Filters:    append([]FilterEntry(nil), t.Filters...),
		Level:      t.Level,
	}
}

// compile renders the track into a fresh buffer: resolve the steps,
// additively accumulate each note at its offset, run the filter chain in
// declared order, then scale by the track level. Pure function of the
// track's current state; two calls on an unmodified track are
// bit-identical.
func (t *Track) compile(sampleRate int) (*SampleBuffer, error) {
	events, err := t.Steps.Resolve(sampleRate)
	if err != nil {
		if ce, ok := err.(*ConfigError); ok && ce.Track == "" {
			ce.Track = t.Name
		}
		return nil, err
	}

	samples := make([]float64, span(events))
	for _, ev := range events {
		end := ev.StartSample + ev.Length
		if end > len(samples) {
			end = len(samples)
		}
		accumulate(samples[ev.StartSample:end], t.Oscillator.Kind, ev.Frequency, 0, ev.Amplitude, sampleRate)
	}

	for _, fe := range t.Filters {
		start := int(math.Round(fe.Start * float64(sampleRate)))
		if start >= len(samples) {
			continue
		}
		if start < 0 {
			start = 0
		}
		fe.Filter.apply(samples[start:], sampleRate)
	}

	for i := range samples {
		samples[i] *= t.Level
		if math.IsNaN(samples[i]) || math.IsInf(samples[i], 0) {
			return nil, &RenderError{Track: t.Name, Sample: i, Value: samples[i]}
		}
	}
	return &SampleBuffer{Samples: samples, SampleRate: sampleRate}, nil
}
