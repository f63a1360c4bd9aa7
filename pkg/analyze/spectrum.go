// Package analyze provides frequency-domain inspection of sample buffers.
package analyze

import (
	"math/cmplx"

	"github.com/maddyblue/go-dsp/fft"

	"github.com/aditya-marathe/pysyn/pkg/synth"
)

// Spectrum computes the magnitude spectrum of buf. It returns the center
// frequency and amplitude of each bin from DC up to Nyquist.
func Spectrum(buf *synth.SampleBuffer) (freqs, mags []float64) {
	if buf.Len() == 0 {
		return nil, nil
	}
	coeffs := fft.FFTReal(buf.Samples)
	n := len(coeffs)
	half := n/2 + 1

	freqs = make([]float64, half)
	mags = make([]float64, half)
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) * float64(buf.SampleRate) / float64(n)
		m := cmplx.Abs(coeffs[i]) / float64(n)
		if i > 0 && i < n-i {
			m *= 2 // fold in the conjugate half
		}
		mags[i] = m
	}
	return freqs, mags
}

// Peak returns the frequency of the strongest spectral bin, 0 for an
// empty buffer.
func Peak(buf *synth.SampleBuffer) float64 {
	freqs, mags := Spectrum(buf)
	var peak float64
	var at int
	for i, m := range mags {
		if m > peak {
			peak = m
			at = i
		}
	}
	if len(freqs) == 0 {
		return 0
	}
	return freqs[at]
}
