// Package gameover provides the screen shown after the snake dies.
package gameover

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nagini/internal/application/scene"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/infrastructure/graphics"
)

// Prompts shown under the final score
var Prompts = []string{
	"Press 1 to RePlay",
	"Press 4 to get back Home",
}

// GameOver shows the final score and the replay/home prompts
type GameOver struct {
	dir   *scene.Director
	fonts *graphics.Fonts
}

// New creates the game over scene
func New(dir *scene.Director, fonts *graphics.Fonts) *GameOver {
	return &GameOver{dir: dir, fonts: fonts}
}

// Update handles 1 (replay) and 4 (home)
func (g *GameOver) Update(_ float64) (scene.Scene, error) {
	return g.dir.Handle(state.StateGameOver)
}

// Draw renders the banner, the score and the prompts
func (g *GameOver) Draw(screen *ebiten.Image) {
	screen.Fill(graphics.ColorBackground)

	mid := float64(screen.Bounds().Dy()) / 2
	graphics.DrawCentered(screen, "GAME OVER", g.fonts.Title, mid-graphics.SizeTitle, graphics.ColorTitle)
	graphics.DrawCentered(screen, graphics.ScoreText(g.dir.Controller().Score()), g.fonts.Heading, mid+50-graphics.SizeHeading, graphics.ColorScore)
	for i, p := range Prompts {
		graphics.DrawCentered(screen, p, g.fonts.Hint, mid+100+float64(i*40)-graphics.SizeHint, graphics.ColorText)
	}
}

// OnEnter logs the result of the finished game
func (g *GameOver) OnEnter() {
	ctrl := g.dir.Controller()
	log.Printf("[GameOver] score=%d ticks=%d seed=%d", ctrl.Score(), ctrl.Ticks(), ctrl.Seed())
}

func (g *GameOver) OnExit() {}
