// Package audio implements output collaborators for compiled buffers:
// WAV export, PCM encoding and realtime playback.
package audio

import (
	"encoding/binary"
	"io"

	"github.com/aditya-marathe/pysyn/pkg/synth"
)

const bytesPerSample = 2 // 16-bit PCM

// pcm16 converts float samples to 16-bit little-endian PCM, clamping to
// [-1, 1] first.
func pcm16(samples []float64) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		if s > 1.0 {
			s = 1.0
		}
		if s < -1.0 {
			s = -1.0
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(s*32767)))
	}
	return out
}

// WAVWriter serializes sample data as a mono 16-bit PCM WAV stream.
type WAVWriter struct {
	w          io.Writer
	sampleRate int
	channels   int
}

// NewWAVWriter creates a WAV writer targeting w.
func NewWAVWriter(w io.Writer, sampleRate, channels int) *WAVWriter {
	return &WAVWriter{w: w, sampleRate: sampleRate, channels: channels}
}

// WriteHeader writes the 44-byte RIFF/WAVE header for dataSize bytes of
// sample data.
func (w *WAVWriter) WriteHeader(dataSize int) error {
	var hdr [44]byte
	copy(hdr[0:], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:], uint32(dataSize+36))
	copy(hdr[8:], "WAVE")

	copy(hdr[12:], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(hdr[20:], 1)  // PCM format
	binary.LittleEndian.PutUint16(hdr[22:], uint16(w.channels))
	binary.LittleEndian.PutUint32(hdr[24:], uint32(w.sampleRate))
	byteRate := w.sampleRate * w.channels * bytesPerSample
	binary.LittleEndian.PutUint32(hdr[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(hdr[32:], uint16(w.channels*bytesPerSample))
	binary.LittleEndian.PutUint16(hdr[34:], 16) // bits per sample

	copy(hdr[36:], "data")
	binary.LittleEndian.PutUint32(hdr[40:], uint32(dataSize))

	_, err := w.w.Write(hdr[:])
	return err
}

// WriteSamples writes float samples as 16-bit PCM.
func (w *WAVWriter) WriteSamples(samples []float64) error {
	_, err := w.w.Write(pcm16(samples))
	return err
}

// Export writes buf to w as a complete mono WAV file.
func Export(w io.Writer, buf *synth.SampleBuffer) error {
	wav := NewWAVWriter(w, buf.SampleRate, 1)
	if err := wav.WriteHeader(buf.Len() * bytesPerSample); err != nil {
		return err
	}
	return wav.WriteSamples(buf.Samples)
}
