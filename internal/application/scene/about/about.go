// Package about provides the about screen.
package about

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nagini/internal/application/scene"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/infrastructure/config"
	"github.com/younwookim/nagini/internal/infrastructure/graphics"
)

// HomeHint is shown at the bottom of the screen
const HomeHint = "Press 4 to get back Home"

const lineHeight = 25

// About shows the configured description text
type About struct {
	dir   *scene.Director
	fonts *graphics.Fonts
	cfg   config.AboutConfig
}

// New creates the about scene
func New(dir *scene.Director, fonts *graphics.Fonts, cfg config.AboutConfig) *About {
	return &About{dir: dir, fonts: fonts, cfg: cfg}
}

// Update returns to the menu on 4; every other key is ignored
func (a *About) Update(_ float64) (scene.Scene, error) {
	return a.dir.Handle(state.StateAbout)
}

// Draw renders the title, the description and the home hint
func (a *About) Draw(screen *ebiten.Image) {
	screen.Fill(graphics.ColorBackground)

	graphics.DrawCentered(screen, a.cfg.Title, a.fonts.Heading, 40, graphics.ColorTitle)
	for i, line := range a.cfg.Lines {
		y := float64(115 + i*lineHeight)
		graphics.DrawCentered(screen, line, a.fonts.Body, y, graphics.ColorText)
	}

	y := float64(screen.Bounds().Dy())/2 + 140 - graphics.SizeHint
	graphics.DrawCentered(screen, HomeHint, a.fonts.Hint, y, graphics.ColorText)
}

func (a *About) OnEnter() {}
func (a *About) OnExit()  {}
