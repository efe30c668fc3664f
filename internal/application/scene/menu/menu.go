// Package menu provides the main menu scene.
package menu

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nagini/internal/application/scene"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/infrastructure/graphics"
)

// Options lists the menu prompts from top to bottom
var Options = []string{
	"Press 1 to Play",
	"Press 2 for About",
	"Press 3 to Quit",
}

// Menu shows the title and the three menu options
type Menu struct {
	dir   *scene.Director
	fonts *graphics.Fonts
	title string
}

// New creates the menu scene
func New(dir *scene.Director, fonts *graphics.Fonts, title string) *Menu {
	return &Menu{dir: dir, fonts: fonts, title: title}
}

// Update applies 1/2/3 and switches scene when the state changes
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	return m.dir.Handle(state.StateMenu)
}

// Draw renders the title with the options below it
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(graphics.ColorBackground)

	mid := float64(screen.Bounds().Dy()) / 2
	graphics.DrawCentered(screen, m.title, m.fonts.Title, mid-100-graphics.SizeTitle, graphics.ColorTitle)
	for i, opt := range Options {
		graphics.DrawCentered(screen, opt, m.fonts.Hint, mid+float64(i*70)-graphics.SizeHint, graphics.ColorText)
	}
}

// OnEnter is called when entering the menu
func (m *Menu) OnEnter() {
	log.Printf("[Menu] entered")
}

// OnExit is called when leaving the menu
func (m *Menu) OnExit() {}
