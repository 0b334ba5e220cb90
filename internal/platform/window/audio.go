package window

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/tui-invaders/internal/sound"
)

// SampleRate is the rate every clip is resampled to.
const SampleRate = 44100

// AudioBackend decodes wav resources into PCM played through ebiten's
// audio context. Only one may exist per process.
type AudioBackend struct {
	ctx *audio.Context
}

// NewAudioBackend creates the process audio context.
func NewAudioBackend() *AudioBackend {
	return &AudioBackend{ctx: audio.NewContext(SampleRate)}
}

// Prepare implements sound.Backend.
func (b *AudioBackend) Prepare(name string, open func() (io.ReadCloser, error)) (sound.Clip, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("window: read %s: %w", name, err)
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("window: decode %s: %w", name, err)
	}
	return &clip{ctx: b.ctx, pcm: pcm}, nil
}

type clip struct {
	ctx *audio.Context
	pcm []byte
}

// Play starts a fresh player so overlapping effects do not cut each other off.
func (c *clip) Play() {
	p := c.ctx.NewPlayerFromBytes(c.pcm)
	p.Play()
}
