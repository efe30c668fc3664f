// Package playing provides the main gameplay scene.
package playing

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nagini/internal/application/scene"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/infrastructure/graphics"
)

// Playing renders the board and drives the controller's tick loop
type Playing struct {
	dir       *scene.Director
	fonts     *graphics.Fonts
	showLines bool
}

// New creates a new Playing scene.
// showLines toggles the cell grid overlay.
func New(dir *scene.Director, fonts *graphics.Fonts, showLines bool) *Playing {
	return &Playing{dir: dir, fonts: fonts, showLines: showLines}
}

// Update applies steering input before running the ticks due this frame,
// so a turn pressed this frame takes effect on the next move
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if next, err := p.dir.Handle(state.StatePlaying); next != nil || err != nil {
		return next, err
	}

	p.dir.Controller().Update(time.Duration(dt * float64(time.Second)))

	return p.dir.Route(state.StatePlaying)
}

// Draw renders grid, apple, snake and score
func (p *Playing) Draw(screen *ebiten.Image) {
	ctrl := p.dir.Controller()
	snap := ctrl.Snapshot()
	grid := ctrl.Grid()

	screen.Fill(graphics.ColorBackground)
	if p.showLines {
		graphics.DrawGridLines(screen, grid)
	}
	graphics.DrawApple(screen, snap.Apple, grid.Unit)
	graphics.DrawSnake(screen, snap.Segments, snap.Heading, grid.Unit)
	graphics.DrawCentered(screen, graphics.ScoreText(snap.Score), p.fonts.Heading, 0, graphics.ColorScore)
}

// OnEnter is called when a game starts
func (p *Playing) OnEnter() {
	log.Printf("[Playing] new game seed=%d", p.dir.Controller().Seed())
}

// OnExit is called when the game ends or the player leaves
func (p *Playing) OnExit() {}
