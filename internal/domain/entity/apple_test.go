package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApple_Relocate_AvoidsOccupied(t *testing.T) {
	g := Grid{Unit: 20, Width: 80, Height: 80} // 16 cells
	a := NewApple(42)

	// Leave a single free cell
	free := Cell{40, 60}
	occupied := make(map[Cell]struct{})
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := g.CellAt(col, row)
			if c != free {
				occupied[c] = struct{}{}
			}
		}
	}

	for i := 0; i < 20; i++ {
		require.True(t, a.Relocate(g, occupied))
		assert.Equal(t, free, a.Pos())
	}
}

func TestApple_Relocate_StaysOnGrid(t *testing.T) {
	g := DefaultGrid()
	a := NewApple(7)
	s := NewSnakeAt(20, HeadingRight, Cell{100, 100}, Cell{80, 100}, Cell{60, 100})

	for i := 0; i < 500; i++ {
		require.True(t, a.Relocate(g, s.Occupied()))
		pos := a.Pos()
		assert.True(t, g.Contains(pos), "apple %v outside grid", pos)
		assert.Zero(t, pos.X%g.Unit)
		assert.Zero(t, pos.Y%g.Unit)
		assert.False(t, s.Covers(pos), "apple %v on snake", pos)
	}
}

func TestApple_Relocate_ReachesEveryCell(t *testing.T) {
	g := Grid{Unit: 20, Width: 60, Height: 40} // 3x2
	a := NewApple(1)

	seen := make(map[Cell]bool)
	for i := 0; i < 1000 && len(seen) < g.CellCount(); i++ {
		require.True(t, a.Relocate(g, nil))
		seen[a.Pos()] = true
	}

	assert.Len(t, seen, g.CellCount(), "last row and column must be reachable")
}

func TestApple_Relocate_FullBoard(t *testing.T) {
	g := Grid{Unit: 20, Width: 40, Height: 20}
	a := NewApple(3)
	a.Place(Cell{0, 0})

	occupied := map[Cell]struct{}{
		{0, 0}:  {},
		{20, 0}: {},
	}

	assert.False(t, a.Relocate(g, occupied))
	assert.Equal(t, Cell{0, 0}, a.Pos(), "apple stays put when the board is full")
}

func TestApple_Relocate_OutOfBoundsCellsDoNotCountAsFull(t *testing.T) {
	g := Grid{Unit: 20, Width: 40, Height: 20}
	a := NewApple(3)

	occupied := map[Cell]struct{}{
		{0, 0}:   {},
		{-20, 0}: {},
	}

	require.True(t, a.Relocate(g, occupied))
	assert.Equal(t, Cell{20, 0}, a.Pos())
}

func TestApple_SameSeedSamePlacements(t *testing.T) {
	g := DefaultGrid()
	a := NewApple(99)
	b := NewApple(99)

	for i := 0; i < 10; i++ {
		require.True(t, a.Relocate(g, nil))
		require.True(t, b.Relocate(g, nil))
		assert.Equal(t, a.Pos(), b.Pos())
	}
}
