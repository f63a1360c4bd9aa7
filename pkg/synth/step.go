package synth

import (
	"math"
	"sort"
)

// Step is one timed note event. Steps may overlap in time; overlapping
// notes are summed during compilation (polyphony within one track).
type Step struct {
	Frequency float64 // Hz; 0 renders a rest
	Start     float64 // seconds from track start
	Duration  float64 // seconds, must be positive
	Amplitude float64 // 0.0 to 1.0
}

func (s Step) validate(op, track string) error {
	if s.Frequency < 0 {
		return &ConfigError{Op: op, Track: track, Field: "frequency", Got: s.Frequency, Want: ">= 0"}
	}
	if s.Start < 0 {
		return &ConfigError{Op: op, Track: track, Field: "start time", Got: s.Start, Want: ">= 0"}
	}
	if s.Duration <= 0 {
		return &ConfigError{Op: op, Track: track, Field: "duration", Got: s.Duration, Want: "> 0"}
	}
	if s.Amplitude < 0 || s.Amplitude > 1 {
		return &ConfigError{Op: op, Track: track, Field: "amplitude", Got: s.Amplitude, Want: "in [0, 1]"}
	}
	return nil
}

// StepSequence is a collection of steps ordered by start time, ties
// keeping insertion order. Rendering never mutates a sequence.
type StepSequence []Step

// NoteEvent is a step resolved into sample coordinates.
type NoteEvent struct {
	StartSample int
	Length      int
	Frequency   float64
	Amplitude   float64
}

// Resolve converts the sequence into note events at the given sample
// rate, rounding seconds to sample indices. A step whose rounded length
// comes out non-positive is a configuration error.
func (s StepSequence) Resolve(sampleRate int) ([]NoteEvent, error) {
	events := make([]NoteEvent, len(s))
	for i, step := range s {
		length := int(math.Round(step.Duration * float64(sampleRate)))
		if length <= 0 {
			return nil, &ConfigError{Op: "Resolve", Field: "duration", Got: step.Duration, Want: "at least one sample long"}
		}
		events[i] = NoteEvent{
			StartSample: int(math.Round(step.Start * float64(sampleRate))),
			Length:      length,
			Frequency:   step.Frequency,
			Amplitude:   step.Amplitude,
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartSample < events[j].StartSample
	})
	return events, nil
}

// span returns the total length in samples covered by the events.
func span(events []NoteEvent) int {
	var n int
	for _, ev := range events {
		if end := ev.StartSample + ev.Length; end > n {
			n = end
		}
	}
	return n
}
