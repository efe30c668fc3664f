package replay

import "github.com/younwookim/nagini/internal/domain/entity"

// FormatVersion is written to every replay file
const FormatVersion = "2.0"

// SteerEvent records an accepted heading change
type SteerEvent struct {
	T int            `json:"t"` // Ticks completed when the change was applied
	H entity.Heading `json:"h"` // 0 up, 1 down, 2 left, 3 right
}

// Board records the grid the session was played on
type Board struct {
	Unit   int `json:"unit"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is the outcome of a finished session
type Result struct {
	Score int `json:"score"`
	Ticks int `json:"ticks"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Seed      uint64       `json:"seed"`
	Board     Board        `json:"board"`
	StartTime string       `json:"startTime"`
	Events    []SteerEvent `json:"events"`
	Result    *Result      `json:"result,omitempty"`
}

// Grid returns the board as a domain grid
func (d ReplayData) Grid() entity.Grid {
	return entity.Grid{Unit: d.Board.Unit, Width: d.Board.Width, Height: d.Board.Height}
}

// BoardOf converts a domain grid for storage
func BoardOf(g entity.Grid) Board {
	return Board{Unit: g.Unit, Width: g.Width, Height: g.Height}
}
