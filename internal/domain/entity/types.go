package entity

// Default board dimensions in pixels
const (
	UnitSize     = 20
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Cell is a grid-aligned position in pixels (multiples of the unit size)
type Cell struct {
	X int
	Y int
}

// Step returns the neighbouring cell one unit along h
func (c Cell) Step(h Heading, unit int) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx*unit, Y: c.Y + dy*unit}
}

// Heading is the direction of travel
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Delta returns the unit vector for the heading in screen coordinates (y grows downward)
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// IsOpposite reports whether other is the exact reverse of h
func (h Heading) IsOpposite(other Heading) bool {
	return h.Opposite() == other
}

// Valid reports whether h is one of the four headings
func (h Heading) Valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

// String returns the heading name
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "Up"
	case HeadingDown:
		return "Down"
	case HeadingLeft:
		return "Left"
	case HeadingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Grid describes the board: cell size and screen bounds in pixels
type Grid struct {
	Unit   int
	Width  int
	Height int
}

// DefaultGrid returns the 640x480 board with 20 pixel cells
func DefaultGrid() Grid {
	return Grid{Unit: UnitSize, Width: ScreenWidth, Height: ScreenHeight}
}

// Cols returns the number of cells per row
func (g Grid) Cols() int {
	return g.Width / g.Unit
}

// Rows returns the number of cells per column
func (g Grid) Rows() int {
	return g.Height / g.Unit
}

// CellCount returns the number of cells on the board
func (g Grid) CellCount() int {
	return g.Cols() * g.Rows()
}

// Contains checks if c lies inside [0,Width) x [0,Height)
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CellAt returns the cell at column col and row row
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.Unit, Y: row * g.Unit}
}
