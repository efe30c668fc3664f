package sound

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/nagini/internal/infrastructure/config"
)

// Tone renders a decaying sine beep as 16-bit little-endian stereo PCM,
// the format ebiten audio players consume
func Tone(sampleRate int, freq float64, d time.Duration, volume float64) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-3 * t / d.Seconds())
		v := int16(math.Sin(2*math.Pi*freq*t) * math.MaxInt16 * volume * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

// Beeper plays the eat and game over sounds through ebiten audio.
// A nil *Beeper is silent.
type Beeper struct {
	ctx      *audio.Context
	eat      *audio.Player
	gameOver *audio.Player
}

// NewBeeper creates the audio context and pre-renders both tones.
// Returns nil when audio is disabled.
func NewBeeper(cfg config.AudioConfig) *Beeper {
	if !cfg.Enabled {
		return nil
	}

	ctx := audio.NewContext(cfg.SampleRate)
	b := &Beeper{ctx: ctx}
	b.eat = ctx.NewPlayerFromBytes(Tone(cfg.SampleRate, cfg.Eat.Frequency, cfg.Eat.Duration(), cfg.Volume))
	b.gameOver = ctx.NewPlayerFromBytes(Tone(cfg.SampleRate, cfg.GameOver.Frequency, cfg.GameOver.Duration(), cfg.Volume))
	return b
}

// Eat plays the apple eaten beep
func (b *Beeper) Eat() {
	if b == nil {
		return
	}
	play(b.eat)
}

// GameOver plays the game over beep
func (b *Beeper) GameOver() {
	if b == nil {
		return
	}
	play(b.gameOver)
}

func play(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		log.Printf("[Sound] rewind failed: %v", err)
		return
	}
	p.Play()
}
