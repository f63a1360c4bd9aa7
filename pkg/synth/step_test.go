package synth

import (
	"errors"
	"testing"
)

func TestResolveSampleCoordinates(t *testing.T) {
	seq := StepSequence{
		{Frequency: 440, Start: 0.5, Duration: 0.25, Amplitude: 1},
		{Frequency: 220, Start: 0, Duration: 1, Amplitude: 0.5},
	}
	events, err := seq.Resolve(100)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Resolve orders by start time regardless of insertion order.
	if events[0].StartSample != 0 || events[0].Length != 100 || events[0].Frequency != 220 {
		t.Errorf("event 0 = %+v, want start 0, length 100, 220 Hz", events[0])
	}
	if events[1].StartSample != 50 || events[1].Length != 25 || events[1].Frequency != 440 {
		t.Errorf("event 1 = %+v, want start 50, length 25, 440 Hz", events[1])
	}
	if got := span(events); got != 100 {
		t.Errorf("span = %d, want 100", got)
	}
}

func TestResolveTiesKeepInsertionOrder(t *testing.T) {
	seq := StepSequence{
		{Frequency: 100, Start: 0.2, Duration: 0.1, Amplitude: 1},
		{Frequency: 200, Start: 0.2, Duration: 0.1, Amplitude: 1},
		{Frequency: 300, Start: 0.2, Duration: 0.1, Amplitude: 1},
	}
	events, err := seq.Resolve(1000)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{100, 200, 300} {
		if events[i].Frequency != want {
			t.Errorf("event %d frequency = %g, want %g", i, events[i].Frequency, want)
		}
	}
}

func TestResolveEmptySequence(t *testing.T) {
	events, err := StepSequence(nil).Resolve(44100)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events, want none", len(events))
	}
	if got := span(events); got != 0 {
		t.Errorf("span of empty sequence = %d, want 0", got)
	}
}

func TestResolveRejectsZeroLengthStep(t *testing.T) {
	// Positive duration, but too short to cover a single sample.
	seq := StepSequence{{Frequency: 440, Start: 0, Duration: 1e-6, Amplitude: 1}}
	_, err := seq.Resolve(44100)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("Resolve error = %v, want a ConfigError", err)
	}
	if ce.Field != "duration" {
		t.Errorf("error field = %q, want duration", ce.Field)
	}
}

func TestStepValidation(t *testing.T) {
	cases := []struct {
		name string
		step Step
	}{
		{"negative frequency", Step{Frequency: -1, Start: 0, Duration: 1, Amplitude: 1}},
		{"negative start", Step{Frequency: 440, Start: -0.5, Duration: 1, Amplitude: 1}},
		{"zero duration", Step{Frequency: 440, Start: 0, Duration: 0, Amplitude: 1}},
		{"amplitude above one", Step{Frequency: 440, Start: 0, Duration: 1, Amplitude: 1.5}},
		{"negative amplitude", Step{Frequency: 440, Start: 0, Duration: 1, Amplitude: -0.1}},
	}
	for _, c := range cases {
		if err := c.step.validate("test", "tr"); err == nil {
			t.Errorf("%s: validation passed, want error", c.name)
		}
	}
	good := Step{Frequency: 0, Start: 0, Duration: 0.5, Amplitude: 0}
	if err := good.validate("test", "tr"); err != nil {
		t.Errorf("rest step rejected: %v", err)
	}
}
