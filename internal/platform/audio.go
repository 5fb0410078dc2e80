package platform

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/starlight-duel/starlight/internal/config"
	"github.com/starlight-duel/starlight/internal/logger"
)

// Audio owns the speaker and mixes one engine hum per ship.
type Audio struct {
	sr     beep.SampleRate
	tone   float64
	volume float64
	mixer  *beep.Mixer
	log    *slog.Logger
}

// NewAudio opens the speaker. beep pulls samples on its own goroutine,
// so every change to a playing streamer goes through speaker.Lock.
func NewAudio(cfg config.AudioConfig) (*Audio, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	a := &Audio{
		sr:     sr,
		tone:   cfg.EngineTone,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		log:    logger.L().With("component", "audio"),
	}
	speaker.Play(a.mixer)
	a.log.Info("Speaker ready", "sample_rate", cfg.SampleRate)
	return a, nil
}

// EngineHum starts a looping engine tone at the given pitch.
func (a *Audio) EngineHum(pitch float64) (*EngineHum, error) {
	tone, err := generators.SineTone(a.sr, a.tone)
	if err != nil {
		return nil, fmt.Errorf("engine tone: %w", err)
	}
	h := &EngineHum{pitch: pitch}
	h.resampler = beep.ResampleRatio(4, pitch, tone)
	h.volume = &effects.Volume{Streamer: h.resampler, Base: 2, Volume: a.volume}

	speaker.Lock()
	a.mixer.Add(h.volume)
	speaker.Unlock()
	return h, nil
}

// Silence stops every hum.
func (a *Audio) Silence() {
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
}

// EngineHum is a ship.PitchEmitter backed by a resampled sine tone.
type EngineHum struct {
	resampler *beep.Resampler
	volume    *effects.Volume
	pitch     float64
}

func (h *EngineHum) Pitch() float64 { return h.pitch }

// SetPitch changes the playback ratio. Non-positive pitches are ignored.
func (h *EngineHum) SetPitch(p float64) {
	if p <= 0 || p == h.pitch {
		return
	}
	h.pitch = p
	speaker.Lock()
	h.resampler.SetRatio(p)
	speaker.Unlock()
}

// Mute silences the hum without stopping it, e.g. while paused.
func (h *EngineHum) Mute(on bool) {
	speaker.Lock()
	h.volume.Silent = on
	speaker.Unlock()
}
