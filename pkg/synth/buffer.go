package synth

// SampleBuffer holds rendered mono samples tagged with their sample rate.
// Samples are conventionally in [-1, 1] after clipping.
type SampleBuffer struct {
	Samples    []float64
	SampleRate int
}

// Len returns the number of samples.
func (b *SampleBuffer) Len() int {
	return len(b.Samples)
}

// Duration returns the buffer length in seconds.
func (b *SampleBuffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// Clone returns a deep copy of the buffer.
func (b *SampleBuffer) Clone() *SampleBuffer {
	samples := make([]float64, len(b.Samples))
	copy(samples, b.Samples)
	return &SampleBuffer{Samples: samples, SampleRate: b.SampleRate}
}

// Clip clamps every sample to [-1, 1] in place. Applying it twice gives
// the same result as once.
func (b *SampleBuffer) Clip() {
	for i, s := range b.Samples {
		if s > 1.0 {
			b.Samples[i] = 1.0
		} else if s < -1.0 {
			b.Samples[i] = -1.0
		}
	}
}

// Peak returns the largest absolute sample value, 0 for an empty buffer.
func (b *SampleBuffer) Peak() float64 {
	var peak float64
	for _, s := range b.Samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
