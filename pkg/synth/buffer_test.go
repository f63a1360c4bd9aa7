package synth

import "testing"

func TestClipIdempotent(t *testing.T) {
	buf := &SampleBuffer{Samples: []float64{1.5, -2.0, 0.3, -1.0, 1.0, 0}, SampleRate: 44100}
	buf.Clip()
	want := []float64{1.0, -1.0, 0.3, -1.0, 1.0, 0}
	if !equalSamples(buf.Samples, want) {
		t.Fatalf("after clip: %v, want %v", buf.Samples, want)
	}
	buf.Clip()
	if !equalSamples(buf.Samples, want) {
		t.Fatalf("second clip changed the buffer: %v", buf.Samples)
	}
}

func TestBufferDuration(t *testing.T) {
	buf := &SampleBuffer{Samples: make([]float64, 22050), SampleRate: 44100}
	if d := buf.Duration(); d != 0.5 {
		t.Errorf("duration = %g, want 0.5", d)
	}
}

func TestBufferPeak(t *testing.T) {
	buf := &SampleBuffer{Samples: []float64{0.1, -0.7, 0.3}, SampleRate: 44100}
	if p := buf.Peak(); p != 0.7 {
		t.Errorf("peak = %g, want 0.7", p)
	}
	empty := &SampleBuffer{SampleRate: 44100}
	if p := empty.Peak(); p != 0 {
		t.Errorf("peak of empty buffer = %g, want 0", p)
	}
}

func TestBufferClone(t *testing.T) {
	buf := &SampleBuffer{Samples: []float64{0.1, 0.2}, SampleRate: 8000}
	dup := buf.Clone()
	dup.Samples[0] = 0.9
	if buf.Samples[0] != 0.1 {
		t.Error("mutating a clone changed the original")
	}
	if dup.SampleRate != 8000 {
		t.Errorf("clone rate = %d, want 8000", dup.SampleRate)
	}
}
