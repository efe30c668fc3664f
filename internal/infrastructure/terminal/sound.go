package terminal

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/nagini/internal/infrastructure/config"
)

// Sound plays beeps on the system speaker through beep.
// A nil *Sound is silent.
type Sound struct {
	rate beep.SampleRate
	cfg  config.AudioConfig
}

// NewSound initializes the speaker. Returns nil without error when audio is
// disabled.
func NewSound(cfg config.AudioConfig) (*Sound, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Sound{rate: rate, cfg: cfg}, nil
}

// Eat plays the apple eaten beep
func (s *Sound) Eat() {
	if s == nil {
		return
	}
	s.play(s.cfg.Eat)
}

// GameOver plays the game over beep
func (s *Sound) GameOver() {
	if s == nil {
		return
	}
	s.play(s.cfg.GameOver)
}

// Close releases the speaker
func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Close()
}

func (s *Sound) play(tone config.ToneConfig) {
	st, err := Beep(s.rate, tone, s.cfg.Volume)
	if err != nil {
		log.Printf("[Sound] %v", err)
		return
	}
	speaker.Play(st)
}

// Beep returns a finite sine streamer for tone scaled by volume (0.0 - 1.0)
func Beep(rate beep.SampleRate, tone config.ToneConfig, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, tone.Frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fHz tone: %w", tone.Frequency, err)
	}
	st := beep.Take(rate.N(tone.Duration()), sine)

	if volume <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(math.Min(volume, 1))}, nil
}
