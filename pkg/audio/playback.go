package audio

import (
	"bytes"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/aditya-marathe/pysyn/pkg/synth"
)

// Play renders buf through the default audio device, blocking until the
// whole buffer has been consumed. The device is released on every return
// path.
func Play(buf *synth.SampleBuffer) error {
	op := &oto.NewContextOptions{
		SampleRate:   buf.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return err
	}
	<-ready

	player := ctx.NewPlayer(bytes.NewReader(pcm16(buf.Samples)))
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}
