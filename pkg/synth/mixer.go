package synth

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Mixer owns a named collection of tracks sharing one sample rate and
// renders them into a single buffer. One mixer per synthesis session:
// construct, configure, compile, discard.
type Mixer struct {
	sampleRate int

	mu     sync.RWMutex
	tracks map[string]*Track
	order  []string // insertion order, for reproducible summation
}

// NewMixer creates an empty mixer at the given sample rate.
func NewMixer(sampleRate int) (*Mixer, error) {
	if sampleRate <= 0 {
		return nil, &ConfigError{Op: "NewMixer", Field: "sample rate", Got: sampleRate, Want: "> 0"}
	}
	return &Mixer{
		sampleRate: sampleRate,
		tracks:     make(map[string]*Track),
	}, nil
}

// SampleRate returns the rate shared by all tracks.
func (m *Mixer) SampleRate() int {
	return m.sampleRate
}

// AddTrack registers a new track with level 1.0 and an empty filter
// chain, returning a snapshot of it. The oscillator must match the
// mixer's sample rate and every step must be valid; names must be
// unique.
func (m *Mixer) AddTrack(name string, osc OscillatorConfig, steps StepSequence) (*Track, error) {
	if err := osc.validate("AddTrack", name); err != nil {
		return nil, err
	}
	if osc.SampleRate != m.sampleRate {
		return nil, &ConfigError{Op: "AddTrack", Track: name, Field: "sample rate", Got: osc.SampleRate, Want: "the mixer's rate"}
	}
	for _, step := range steps {
		if err := step.validate("AddTrack", name); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tracks[name]; ok {
		return nil, &DuplicateNameError{Name: name}
	}
	t := &Track{
		Name:       name,
		Oscillator: osc,
		Steps:      append(StepSequence(nil), steps...),
		Level:      1.0,
	}
	m.tracks[name] = t
	m.order = append(m.order, name)
	return t.snapshot(), nil
}

// SetLevel changes a track's level. On failure the prior level is kept.
func (m *Mixer) SetLevel(name string, level float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tracks[name]
	if !ok {
		return &NotFoundError{Op: "SetLevel", Name: name}
	}
	if level < 0 || level > 1 {
		return &ConfigError{Op: "SetLevel", Track: name, Field: "level", Got: level, Want: "in [0, 1]"}
	}
	t.Level = level
	return nil
}

// AddFilter appends a filter to a track's chain, active from start
// seconds to the end of the track. An out-of-range cutoff or a negative
// start time is rejected here, not at compile time.
func (m *Mixer) AddFilter(name string, spec FilterSpec, start float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tracks[name]
	if !ok {
		return &NotFoundError{Op: "AddFilter", Name: name}
	}
	if err := spec.validate("AddFilter", name, m.sampleRate); err != nil {
		return err
	}
	if start < 0 {
		return &ConfigError{Op: "AddFilter", Track: name, Field: "start time", Got: start, Want: ">= 0"}
	}
	t.Filters = append(t.Filters, FilterEntry{Filter: spec, Start: start})
	return nil
}

// RemoveTrack deletes a track from the mixer.
func (m *Mixer) RemoveTrack(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tracks[name]; !ok {
		return &NotFoundError{Op: "RemoveTrack", Name: name}
	}
	delete(m.tracks, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Track returns a snapshot of the named track, or nil if unknown.
// Mutating the snapshot does not affect the mixer.
func (m *Mixer) Track(name string) *Track {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tracks[name]
	if !ok {
		return nil
	}
	return t.snapshot()
}

// Tracks returns the track names in insertion order.
func (m *Mixer) Tracks() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Compile renders every track in parallel, pads the results with
// trailing zeros to a common length, sums them and hard-clips the mix to
// [-1, 1]. It fails atomically: if any track fails, no buffer is
// returned and the mixer is unchanged. Mutating calls block until the
// render completes, so a compile in progress sees one consistent
// snapshot of all track configurations.
func (m *Mixer) Compile() (*SampleBuffer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bufs := make([]*SampleBuffer, len(m.order))
	var g errgroup.Group
	for i, name := range m.order {
		t := m.tracks[name]
		g.Go(func() error {
			buf, err := t.compile(m.sampleRate)
			if err != nil {
				return err
			}
			bufs[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var n int
	for _, b := range bufs {
		if b.Len() > n {
			n = b.Len()
		}
	}
	mix := make([]float64, n)
	for _, b := range bufs {
		for i, s := range b.Samples {
			mix[i] += s
		}
	}
	out := &SampleBuffer{Samples: mix, SampleRate: m.sampleRate}
	out.Clip()
	return out, nil
}
