// Package terminal runs the game in a text terminal using tcell, with beep
// for sound.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/nagini/internal/application/system"
)

// FrameInterval is the redraw period, about 60 FPS
const FrameInterval = 16 * time.Millisecond

// Runner feeds terminal events to the controller and redraws every frame
type Runner struct {
	screen tcell.Screen
	ctrl   *system.Controller
	input  *system.QueueInput
	view   *View
	last   time.Time
}

// NewRunner creates a runner drawing ctrl on screen through view
func NewRunner(screen tcell.Screen, ctrl *system.Controller, view *View) *Runner {
	return &Runner{
		screen: screen,
		ctrl:   ctrl,
		input:  system.NewQueueInput(),
		view:   view,
	}
}

// HandleEvent queues key intents. Returns false when the event closes the
// frontend.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsExit(ev) {
			return false
		}
		if in, ok := IntentForKey(ev); ok {
			r.input.Push(in)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

// Frame applies queued intents, advances the controller by the time since
// the previous frame and redraws. Returns false once Quit was chosen.
func (r *Runner) Frame(now time.Time) bool {
	for _, in := range r.input.Poll() {
		r.ctrl.Apply(in, now)
	}
	if r.ctrl.QuitRequested() {
		return false
	}

	if !r.last.IsZero() {
		r.ctrl.Update(now.Sub(r.last))
	}
	r.last = now

	r.view.Render(r.ctrl.Snapshot())
	return true
}

// Run loops until the player quits, an exit key is pressed or ctx is done
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	r.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !r.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if !r.Frame(now) {
				return nil
			}
		}
	}
}
