// Package beep synthesizes the constant tone a CHIP-8 sound timer
// expects and plays it when the host observes
// chip8.Cpu.ShouldPlayAudio() turn true. The tone lasts at most one
// second per Play and is not stopped when the flag turns false.
package beep

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	beepHz     = 440
	duration   = time.Second

	volumeStep = 0.2
	volumeMax  = 1.0
	volumeMin  = 0.0
)

// Beep wraps an ebiten audio player holding one second of a
// fixed-pitch tone; the sample does not loop, so playback ends after
// that second. Play rewinds and restarts it; the caller is responsible for
// calling Play only on the rising edge of the sound timer so the tone
// doesn't restart every single cycle it stays nonzero.
type Beep struct {
	p *audio.Player
}

// New synthesizes one second of a beepHz sine wave and wraps it in a
// ready-to-play audio.Player.
func New() (*Beep, error) {
	numSamples := sampleRate * int(duration.Seconds())
	buf := make([]byte, numSamples*2)
	for i := 0; i < numSamples; i++ {
		a := math.Sin(2.0 * math.Pi * float64(beepHz) * float64(i) / float64(sampleRate))
		s := int16(a * math.MaxInt16)
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}

	audioCtx := audio.NewContext(sampleRate)
	player, err := audioCtx.NewPlayer(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("couldn't create an audio player: %w", err)
	}

	return &Beep{
		p: player,
	}, nil
}

func (b *Beep) Play() {
	if err := b.p.Rewind(); err != nil {
		log.Printf("couldn't rewind the audio player: %s\n", err.Error())
		return
	}
	b.p.Play()
}

func (b *Beep) VolumeUp() {
	volume := b.p.Volume()
	volume = min(volume+volumeStep, volumeMax)
	b.p.SetVolume(volume)
}

func (b *Beep) VolumeDown() {
	volume := b.p.Volume()
	volume = max(volume-volumeStep, volumeMin)
	b.p.SetVolume(volume)
}
