package synth

import "math"

// MIDIFreq converts a MIDI note number to its equal-tempered frequency.
// A4 = note 69 = 440 Hz.
func MIDIFreq(note int) float64 {
	return 440.0 * math.Pow(2.0, float64(note-69)/12.0)
}

var semitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NoteFreq converts a note name like "A4" or "C#3" or "Eb2" to a
// frequency in Hz, equal-tempered with A4 = 440 Hz. This is the
// normalization convention expected from the external notation parser.
func NoteFreq(name string) (float64, error) {
	bad := &ConfigError{Op: "NoteFreq", Field: "note", Got: name, Want: "a name like C4, F#3 or Bb2"}
	if len(name) < 2 || len(name) > 3 {
		return 0, bad
	}
	semi, ok := semitones[name[0]]
	if !ok {
		return 0, bad
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		semi++
		rest = rest[1:]
	case 'b':
		semi--
		rest = rest[1:]
	}
	if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, bad
	}
	octave := int(rest[0] - '0')
	return MIDIFreq((octave+1)*12 + semi), nil
}
