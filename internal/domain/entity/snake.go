package entity

// Snake is the player-controlled chain of cells, head first.
//
// Segments have no identity beyond position and order, so the body is a
// plain slice indexed from the head. Advance shifts it using a snapshot of
// the pre-tick positions.
type Snake struct {
	body    []Cell
	prev    []Cell // scratch buffer for Advance
	heading Heading
	unit    int
	eaten   int
}

// NewSnake creates a one-segment snake at the origin heading right
func NewSnake(unit int) *Snake {
	return NewSnakeAt(unit, HeadingRight, Cell{})
}

// NewSnakeAt creates a snake from explicit segments, head first.
// Used by tests that need a particular starting body.
func NewSnakeAt(unit int, heading Heading, segments ...Cell) *Snake {
	body := make([]Cell, len(segments), len(segments)+16)
	copy(body, segments)
	return &Snake{
		body:    body,
		heading: heading,
		unit:    unit,
	}
}

// Advance moves the snake one cell along its heading.
// Every non-head segment takes the position its predecessor held before the tick.
func (s *Snake) Advance() {
	if len(s.body) == 0 {
		return
	}

	s.prev = append(s.prev[:0], s.body...)
	for i := 1; i < len(s.body); i++ {
		s.body[i] = s.prev[i-1]
	}
	s.body[0] = s.prev[0].Step(s.heading, s.unit)
}

// SetHeading changes the heading for the next Advance.
// A request for the reverse of the current heading is ignored.
func (s *Snake) SetHeading(h Heading) bool {
	if !h.Valid() || s.heading.IsOpposite(h) {
		return false
	}
	s.heading = h
	return true
}

// Grow appends a segment one unit behind the tail.
//
// The offset is taken opposite to the current heading, not the direction the
// tail was travelling, so on a bent body the new segment can land on another
// segment.
func (s *Snake) Grow() {
	tail := s.Tail()
	s.body = append(s.body, tail.Step(s.heading.Opposite(), s.unit))
	s.eaten++
}

// SelfCollision checks if the head overlaps any other segment
func (s *Snake) SelfCollision() bool {
	if len(s.body) < 2 {
		return false
	}
	head := s.body[0]
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// OutOfBounds checks if the head lies outside [0,width) x [0,height)
func (s *Snake) OutOfBounds(width, height int) bool {
	head := s.Head()
	return head.X < 0 || head.X >= width || head.Y < 0 || head.Y >= height
}

// Head returns the head cell
func (s *Snake) Head() Cell {
	if len(s.body) == 0 {
		return Cell{}
	}
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Cell {
	if len(s.body) == 0 {
		return Cell{}
	}
	return s.body[len(s.body)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current heading
func (s *Snake) Heading() Heading {
	return s.heading
}

// Eaten returns the number of apples consumed
func (s *Snake) Eaten() int {
	return s.eaten
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Occupied returns the set of cells covered by the body
func (s *Snake) Occupied() map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(s.body))
	for _, c := range s.body {
		set[c] = struct{}{}
	}
	return set
}

// Covers checks if any segment lies on c
func (s *Snake) Covers(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}
