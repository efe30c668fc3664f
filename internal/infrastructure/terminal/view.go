package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/domain/entity"
	"github.com/younwookim/nagini/internal/infrastructure/config"
	"github.com/younwookim/nagini/internal/infrastructure/graphics"
)

// CellWidth is the number of terminal columns per board cell, which keeps
// cells roughly square
const CellWidth = 2

// boardTop is the first terminal row used by the board; row 0 holds the score
const boardTop = 1

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleTitle   = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleScore   = styleDefault.Foreground(tcell.ColorRed)
	styleBorder  = styleDefault.Foreground(tcell.ColorDarkGray)
	styleHead    = styleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleBody    = styleDefault.Foreground(tcell.ColorGreen)
	styleApple   = styleDefault.Foreground(tcell.ColorRed)
)

var headRunes = map[entity.Heading]rune{
	entity.HeadingUp:    '▲',
	entity.HeadingDown:  '▼',
	entity.HeadingLeft:  '◀',
	entity.HeadingRight: '▶',
}

// View draws controller snapshots on a tcell screen
type View struct {
	screen tcell.Screen
	grid   entity.Grid
	title  string
	about  config.AboutConfig
}

// NewView creates a view for grid
func NewView(screen tcell.Screen, grid entity.Grid, title string, about config.AboutConfig) *View {
	return &View{screen: screen, grid: grid, title: title, about: about}
}

// Render draws the screen for the snapshot's state and shows it
func (v *View) Render(snap system.Snapshot) {
	v.screen.Clear()

	switch snap.State {
	case state.StateMenu:
		v.drawLines(styleTitle, []string{v.title}, 0.3)
		v.drawLines(styleDefault, []string{"Press 1 to Play", "Press 2 for About", "Press 3 to Quit"}, 0.55)
	case state.StateAbout:
		v.drawLines(styleTitle, []string{v.about.Title}, 0.15)
		v.drawLines(styleDefault, v.about.Lines, 0.3)
		v.drawLines(styleDefault, []string{"Press 4 to get back Home"}, 0.85)
	case state.StatePlaying:
		v.drawBoard(snap)
	case state.StateGameOver:
		v.drawLines(styleTitle, []string{"GAME OVER"}, 0.4)
		v.drawLines(styleScore, []string{graphics.ScoreText(snap.Score)}, 0.5)
		v.drawLines(styleDefault, []string{"Press 1 to RePlay", "Press 4 to get back Home"}, 0.65)
	}

	v.screen.Show()
}

// CellOrigin returns the terminal position of the left column of board cell c
func (v *View) CellOrigin(c entity.Cell) (x, y int) {
	return c.X / v.grid.Unit * CellWidth, c.Y/v.grid.Unit + boardTop
}

func (v *View) drawBoard(snap system.Snapshot) {
	w := v.grid.Cols() * CellWidth
	h := v.grid.Rows()

	// Border just outside the board on the right and bottom
	for y := boardTop; y < boardTop+h; y++ {
		v.screen.SetContent(w, y, '│', nil, styleBorder)
	}
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, boardTop+h, '─', nil, styleBorder)
	}
	v.screen.SetContent(w, boardTop+h, '┘', nil, styleBorder)

	v.putCell(snap.Apple, '●', ' ', styleApple)
	for i := len(snap.Segments) - 1; i >= 1; i-- {
		v.putCell(snap.Segments[i], '█', '█', styleBody)
	}
	if len(snap.Segments) > 0 {
		v.putCell(snap.Segments[0], headRunes[snap.Heading], ' ', styleHead)
	}

	v.drawText(0, 0, styleScore, graphics.ScoreText(snap.Score))
}

func (v *View) putCell(c entity.Cell, left, right rune, style tcell.Style) {
	if !v.grid.Contains(c) {
		return
	}
	x, y := v.CellOrigin(c)
	v.screen.SetContent(x, y, left, nil, style)
	v.screen.SetContent(x+1, y, right, nil, style)
}

// drawLines centers lines horizontally starting at the given fraction of
// the screen height
func (v *View) drawLines(style tcell.Style, lines []string, at float64) {
	sw, sh := v.screen.Size()
	y := int(float64(sh) * at)
	for i, line := range lines {
		x := (sw - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		v.drawText(x, y+i, style, line)
	}
}

func (v *View) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
