package entity

import "golang.org/x/exp/rand"

// Apple is the single consumable cell
type Apple struct {
	pos Cell
	rng *rand.Rand
}

// NewApple creates an apple whose placements are drawn from seed
func NewApple(seed uint64) *Apple {
	return &Apple{rng: rand.New(rand.NewSource(seed))}
}

// Pos returns the apple cell
func (a *Apple) Pos() Cell {
	return a.pos
}

// Place puts the apple on c without sampling
func (a *Apple) Place(c Cell) {
	a.pos = c
}

// Relocate samples cells uniformly over the grid until one is not in
// occupied, then moves the apple there.
// Returns false and leaves the apple in place when occupied covers every cell.
func (a *Apple) Relocate(g Grid, occupied map[Cell]struct{}) bool {
	cols, rows := g.Cols(), g.Rows()
	if cols <= 0 || rows <= 0 || boardFull(g, occupied) {
		return false
	}

	for {
		c := g.CellAt(a.rng.Intn(cols), a.rng.Intn(rows))
		if _, taken := occupied[c]; !taken {
			a.pos = c
			return true
		}
	}
}

// boardFull checks if occupied holds every in-bounds cell of g
func boardFull(g Grid, occupied map[Cell]struct{}) bool {
	if len(occupied) < g.CellCount() {
		return false
	}
	inside := 0
	for c := range occupied {
		if g.Contains(c) && c.X%g.Unit == 0 && c.Y%g.Unit == 0 {
			inside++
		}
	}
	return inside >= g.CellCount()
}
