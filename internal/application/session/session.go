// Package session hooks recording and sound effects onto a controller's
// callbacks, shared by the window and terminal frontends.
package session

import (
	"log"

	"github.com/younwookim/nagini/internal/application/replay"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// Sounds plays the game's sound effects
type Sounds interface {
	Eat()
	GameOver()
}

// Options configures Attach
type Options struct {
	// RecordPath is where each finished game is written. Empty disables
	// recording. Every game overwrites the previous one.
	RecordPath string
	Sounds     Sounds
}

// Session observes one controller across games
type Session struct {
	grid     entity.Grid
	opts     Options
	recorder *replay.Recorder
	games    int
	saved    int
}

// Attach installs the session's callbacks on ctrl
func Attach(ctrl *system.Controller, opts Options) *Session {
	s := &Session{grid: ctrl.Grid(), opts: opts}

	ctrl.OnStart = s.start
	ctrl.OnSteer = s.steer
	ctrl.OnEat = s.eat
	ctrl.OnGameOver = func(score int) {
		s.gameOver(score, ctrl.Ticks())
	}

	if opts.RecordPath != "" {
		log.Printf("[Session] recording enabled: %s", opts.RecordPath)
	}
	return s
}

// Games returns the number of games started
func (s *Session) Games() int {
	return s.games
}

// Saved returns the number of recordings written
func (s *Session) Saved() int {
	return s.saved
}

// Recorder returns the recorder of the current or last game, nil when not
// recording
func (s *Session) Recorder() *replay.Recorder {
	return s.recorder
}

func (s *Session) start(seed uint64) {
	s.games++
	if s.opts.RecordPath != "" {
		s.recorder = replay.NewRecorder(seed, s.grid)
	}
}

func (s *Session) steer(tick int, h entity.Heading) {
	if s.recorder != nil {
		s.recorder.RecordSteer(tick, h)
	}
}

func (s *Session) eat(score int) {
	if s.opts.Sounds != nil {
		s.opts.Sounds.Eat()
	}
}

func (s *Session) gameOver(score, ticks int) {
	if s.opts.Sounds != nil {
		s.opts.Sounds.GameOver()
	}
	if s.recorder == nil {
		return
	}

	s.recorder.Finish(score, ticks)
	if err := s.recorder.Save(s.opts.RecordPath); err != nil {
		log.Printf("[Session] failed to save recording: %v", err)
		return
	}
	s.saved++
	log.Printf("[Session] saved %s (score=%d ticks=%d events=%d)",
		s.opts.RecordPath, score, ticks, s.recorder.EventCount())
}
