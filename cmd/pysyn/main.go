package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/aditya-marathe/pysyn/pkg/analyze"
	"github.com/aditya-marathe/pysyn/pkg/audio"
	"github.com/aditya-marathe/pysyn/pkg/synth"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func main() {
	rate := flag.Int("rate", 44100, "Sample rate in Hz")
	out := flag.String("out", "", "Write the mix to a WAV file")
	play := flag.Bool("play", false, "Play the mix on the default audio device")
	spectrum := flag.Bool("spectrum", false, "Print the strongest frequency in the mix")
	flag.Parse()

	mixer, err := synth.NewMixer(*rate)
	if err != nil {
		fail(err)
	}
	if err := buildDemoMix(mixer, *rate); err != nil {
		fail(err)
	}

	buf, err := mixer.Compile()
	if err != nil {
		fail(err)
	}

	fmt.Println(titleStyle.Render("pysyn demo mix"))
	for _, name := range mixer.Tracks() {
		t := mixer.Track(name)
		fmt.Printf("  %s %s\n",
			trackStyle.Render(name),
			detailStyle.Render(fmt.Sprintf("%s, %d steps, %d filters, level %.2f",
				t.Oscillator.Kind, len(t.Steps), len(t.Filters), t.Level)))
	}
	fmt.Println(detailStyle.Render(fmt.Sprintf("  %d samples, %.2fs at %d Hz, peak %.3f",
		buf.Len(), buf.Duration(), buf.SampleRate, buf.Peak())))

	if *spectrum {
		fmt.Printf("  strongest frequency: %.1f Hz\n", analyze.Peak(buf))
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fail(err)
		}
		if err := audio.Export(f, buf); err != nil {
			f.Close()
			fail(err)
		}
		if err := f.Close(); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", *out)
	}

	if *play {
		if err := audio.Play(buf); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// buildDemoMix configures a three-track demonstration: a triangle lead
// arpeggio, a filtered sawtooth bass line and a soft sine pad chord.
func buildDemoMix(mixer *synth.Mixer, rate int) error {
	lead := synth.StepSequence{
		{Frequency: note("C4"), Start: 0.0, Duration: 0.5, Amplitude: 0.8},
		{Frequency: note("E4"), Start: 0.5, Duration: 0.5, Amplitude: 0.8},
		{Frequency: note("G4"), Start: 1.0, Duration: 0.5, Amplitude: 0.8},
		{Frequency: note("C5"), Start: 1.5, Duration: 0.5, Amplitude: 0.8},
	}
	if _, err := mixer.AddTrack("lead", synth.OscillatorConfig{Kind: synth.Triangle, SampleRate: rate}, lead); err != nil {
		return err
	}
	if err := mixer.AddFilter("lead", synth.FilterSpec{Kind: synth.LowPass, Cutoff: 3000}, 0); err != nil {
		return err
	}
	if err := mixer.SetLevel("lead", 0.9); err != nil {
		return err
	}

	bass := synth.StepSequence{
		{Frequency: note("C2"), Start: 0.0, Duration: 1.0, Amplitude: 0.9},
		{Frequency: note("G2"), Start: 1.0, Duration: 1.0, Amplitude: 0.9},
	}
	if _, err := mixer.AddTrack("bass", synth.OscillatorConfig{Kind: synth.Sawtooth, SampleRate: rate}, bass); err != nil {
		return err
	}
	if err := mixer.AddFilter("bass", synth.FilterSpec{Kind: synth.LowPass, Cutoff: 500}, 0); err != nil {
		return err
	}
	if err := mixer.SetLevel("bass", 0.7); err != nil {
		return err
	}

	// Overlapping steps render polyphonically within the track.
	pad := synth.StepSequence{
		{Frequency: note("C3"), Start: 0.0, Duration: 2.0, Amplitude: 0.3},
		{Frequency: note("E3"), Start: 0.0, Duration: 2.0, Amplitude: 0.3},
		{Frequency: note("G3"), Start: 0.0, Duration: 2.0, Amplitude: 0.3},
	}
	if _, err := mixer.AddTrack("pad", synth.OscillatorConfig{Kind: synth.Sine, SampleRate: rate}, pad); err != nil {
		return err
	}
	if err := mixer.AddFilter("pad", synth.FilterSpec{Kind: synth.HighPass, Cutoff: 100}, 0); err != nil {
		return err
	}
	return mixer.SetLevel("pad", 0.6)
}

func note(name string) float64 {
	freq, err := synth.NoteFreq(name)
	if err != nil {
		fail(err)
	}
	return freq
}
