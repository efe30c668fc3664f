// Package game provides the ebiten.Game that runs the current Scene and
// swaps scenes on transition.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nagini/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// OnTransition is called after the previous scene exits and before the
	// next one enters
	OnTransition func(from, to scene.Scene)
}

// New creates a new Game with the given initial scene, updated tps times per
// second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil && next != g.current {
		prev := g.current
		prev.OnExit()
		g.current = next
		if g.OnTransition != nil {
			g.OnTransition(prev, next)
		}
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// DT returns the delta time passed to each scene update, in seconds
func (g *Game) DT() float64 {
	return g.dt
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
