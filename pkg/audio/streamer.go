package audio

import (
	"github.com/gopxl/beep"

	"github.com/aditya-marathe/pysyn/pkg/synth"
)

// Streamer adapts a compiled buffer to a beep.Streamer so mixes can be
// fed into beep/speaker pipelines. The mono signal is duplicated into
// both output channels.
type Streamer struct {
	buf *synth.SampleBuffer
	pos int
}

var _ beep.StreamSeeker = (*Streamer)(nil)

// NewStreamer wraps buf for streaming. The buffer is read, never
// modified.
func NewStreamer(buf *synth.SampleBuffer) *Streamer {
	return &Streamer{buf: buf}
}

// Stream fills samples with the next chunk of the buffer.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.buf.Len() {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= s.buf.Len() {
			break
		}
		v := s.buf.Samples[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

// Err always returns nil; streaming from memory cannot fail.
func (s *Streamer) Err() error {
	return nil
}

// Len returns the total number of samples.
func (s *Streamer) Len() int {
	return s.buf.Len()
}

// Position returns the current sample offset.
func (s *Streamer) Position() int {
	return s.pos
}

// Seek moves the stream to sample offset p.
func (s *Streamer) Seek(p int) error {
	if p < 0 || p > s.buf.Len() {
		return &synth.ConfigError{Op: "Seek", Field: "position", Got: p, Want: "within the buffer"}
	}
	s.pos = p
	return nil
}
