package audio

import (
	"testing"

	"github.com/aditya-marathe/pysyn/pkg/synth"
)

func TestStreamerChunking(t *testing.T) {
	buf := &synth.SampleBuffer{Samples: []float64{0.1, 0.2, 0.3, 0.4, 0.5}, SampleRate: 44100}
	s := NewStreamer(buf)

	if s.Len() != 5 {
		t.Fatalf("Len = %d, want 5", s.Len())
	}

	chunk := make([][2]float64, 3)
	n, ok := s.Stream(chunk)
	if n != 3 || !ok {
		t.Fatalf("first Stream = (%d, %v), want (3, true)", n, ok)
	}
	for i := 0; i < 3; i++ {
		want := buf.Samples[i]
		if chunk[i][0] != want || chunk[i][1] != want {
			t.Errorf("frame %d = %v, want both channels %g", i, chunk[i], want)
		}
	}

	// Partial final fill.
	n, ok = s.Stream(chunk)
	if n != 2 || !ok {
		t.Fatalf("second Stream = (%d, %v), want (2, true)", n, ok)
	}
	if chunk[0][0] != 0.4 || chunk[1][1] != 0.5 {
		t.Errorf("final frames = %v %v, want 0.4 and 0.5", chunk[0], chunk[1])
	}
	if s.Position() != 5 {
		t.Errorf("position = %d, want 5", s.Position())
	}

	n, ok = s.Stream(chunk)
	if n != 0 || ok {
		t.Fatalf("drained Stream = (%d, %v), want (0, false)", n, ok)
	}
}

func TestStreamerSeek(t *testing.T) {
	buf := &synth.SampleBuffer{Samples: []float64{0.1, 0.2, 0.3, 0.4, 0.5}, SampleRate: 44100}
	s := NewStreamer(buf)
	chunk := make([][2]float64, 3)

	if err := s.Seek(1); err != nil {
		t.Fatal(err)
	}
	if s.Position() != 1 {
		t.Fatalf("position after Seek(1) = %d, want 1", s.Position())
	}
	n, ok := s.Stream(chunk)
	if n != 3 || !ok || chunk[0][0] != 0.2 {
		t.Fatalf("after Seek(1): n=%d ok=%v first=%g, want 3 true 0.2", n, ok, chunk[0][0])
	}

	// Seeking to Len is the drained position, not an error.
	if err := s.Seek(s.Len()); err != nil {
		t.Fatalf("Seek(Len): %v", err)
	}
	n, ok = s.Stream(chunk)
	if n != 0 || ok {
		t.Fatalf("Stream after Seek(Len) = (%d, %v), want (0, false)", n, ok)
	}

	if err := s.Seek(-1); err == nil {
		t.Error("Seek(-1) succeeded")
	}
	if err := s.Seek(6); err == nil {
		t.Error("Seek past the end succeeded")
	}
	if s.Position() != 5 {
		t.Errorf("failed seeks moved the position to %d, want 5", s.Position())
	}
}

func TestStreamerEmptyBuffer(t *testing.T) {
	s := NewStreamer(&synth.SampleBuffer{SampleRate: 44100})
	n, ok := s.Stream(make([][2]float64, 4))
	if n != 0 || ok {
		t.Fatalf("Stream of empty buffer = (%d, %v), want (0, false)", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Err = %v, want nil", s.Err())
	}
}
