// Package audio turns animation cues into short synthesized tones.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"Waystation/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // in halvings, 0 is unchanged
}

// DefaultTones are the click sounds for button cues.
func DefaultTones() map[string]Tone {
	return map[string]Tone{
		"press":   {Freq: 880, Duration: 40 * time.Millisecond, Volume: -1},
		"release": {Freq: 660, Duration: 40 * time.Millisecond, Volume: -1},
	}
}

// CuePlayer plays a tone per cue. Cues without a tone are ignored.
type CuePlayer struct {
	tones map[string]Tone
	sink  func(beep.Streamer)
}

var speakerReady bool

// Init opens the speaker. Callers treat failure as non-fatal and run silent.
func Init() error {
	if speakerReady {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speakerReady = true
	return nil
}

// Close shuts the speaker down. Players made before Close keep their sink and
// must not be used afterwards.
func Close() {
	if !speakerReady {
		return
	}
	speaker.Close()
	speakerReady = false
}

// NewCuePlayer plays through the speaker when it was initialised and drops
// sound otherwise.
func NewCuePlayer(tones map[string]Tone) *CuePlayer {
	sink := func(beep.Streamer) {}
	if speakerReady {
		sink = func(s beep.Streamer) { speaker.Play(s) }
	}
	return NewCuePlayerWithSink(tones, sink)
}

// NewCuePlayerWithSink sends streamers to sink instead of the speaker.
func NewCuePlayerWithSink(tones map[string]Tone, sink func(beep.Streamer)) *CuePlayer {
	return &CuePlayer{tones: tones, sink: sink}
}

func (p *CuePlayer) Play(cue string) {
	tone, ok := p.tones[cue]
	if !ok {
		return
	}
	s, err := toneStreamer(tone)
	if err != nil {
		logger.Log.Warn("Failed to build tone", zap.String("cue", cue), zap.Error(err))
		return
	}
	p.sink(s)
}

func toneStreamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   t.Volume,
	}, nil
}
