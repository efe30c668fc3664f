package scene

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/application/system"
)

// Director owns the controller shared by all screens and picks the scene
// that renders each game state
type Director struct {
	ctrl   *system.Controller
	input  system.InputSource
	now    func() time.Time
	scenes map[state.GameState]Scene
}

// NewDirector creates a director for ctrl reading intents from input
func NewDirector(ctrl *system.Controller, input system.InputSource) *Director {
	return &Director{
		ctrl:   ctrl,
		input:  input,
		now:    time.Now,
		scenes: make(map[state.GameState]Scene),
	}
}

// SetClock replaces the time source used to debounce steering
func (d *Director) SetClock(now func() time.Time) {
	d.now = now
}

// Controller returns the shared controller
func (d *Director) Controller() *system.Controller {
	return d.ctrl
}

// Register binds s to the screen shown while the controller is in gs
func (d *Director) Register(gs state.GameState, s Scene) {
	d.scenes[gs] = s
}

// For returns the scene registered for gs, nil if none
func (d *Director) For(gs state.GameState) Scene {
	return d.scenes[gs]
}

// Current returns the scene for the controller's present state
func (d *Director) Current() Scene {
	return d.For(d.ctrl.State())
}

// Handle applies every pending intent to the controller, then routes.
// from is the state the calling scene renders.
func (d *Director) Handle(from state.GameState) (Scene, error) {
	for _, in := range d.input.Poll() {
		d.ctrl.Apply(in, d.now())
	}
	return d.Route(from)
}

// Route returns the scene to switch to when the controller has left from.
// Returns ebiten.Termination once Quit was chosen.
func (d *Director) Route(from state.GameState) (Scene, error) {
	if d.ctrl.QuitRequested() {
		return nil, ebiten.Termination
	}

	cur := d.ctrl.State()
	if cur == from {
		return nil, nil
	}

	next := d.For(cur)
	if next == nil {
		return nil, fmt.Errorf("no scene registered for state %s", cur)
	}
	return next, nil
}
