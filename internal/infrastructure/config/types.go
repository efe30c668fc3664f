package config

import (
	"time"

	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Grid    GridConfig    `json:"grid"`
	Timing  TimingConfig  `json:"timing"`
	Audio   AudioConfig   `json:"audio"`
	About   AboutConfig   `json:"about"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type GridConfig struct {
	UnitSize  int  `json:"unitSize"`
	ShowLines bool `json:"showLines"`
}

// TimingConfig configures the game loop
type TimingConfig struct {
	TickMs     int `json:"tickMs"`     // Period between snake moves
	DebounceMs int `json:"debounceMs"` // Minimum gap between accepted direction changes
}

// AudioConfig configures the eat and game over beeps
type AudioConfig struct {
	Enabled    bool       `json:"enabled"`
	SampleRate int        `json:"sampleRate"`
	Volume     float64    `json:"volume"` // 0.0 - 1.0
	Eat        ToneConfig `json:"eat"`
	GameOver   ToneConfig `json:"gameOver"`
}

type ToneConfig struct {
	Frequency  float64 `json:"frequency"`  // Hz
	DurationMs int     `json:"durationMs"` // Length of the beep
}

// Duration returns the tone length
func (t ToneConfig) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

type AboutConfig struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Board returns the grid described by the display and grid sections
func (c *GameConfig) Board() entity.Grid {
	return entity.Grid{
		Unit:   c.Grid.UnitSize,
		Width:  c.Display.ScreenWidth,
		Height: c.Display.ScreenHeight,
	}
}

// LoopTiming returns the tick period and debounce window
func (c *GameConfig) LoopTiming() system.Timing {
	return system.Timing{
		TickPeriod: time.Duration(c.Timing.TickMs) * time.Millisecond,
		Debounce:   time.Duration(c.Timing.DebounceMs) * time.Millisecond,
	}
}

// Default returns the built-in configuration, used when no file overrides it
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  entity.ScreenWidth,
			ScreenHeight: entity.ScreenHeight,
			Scale:        1,
			Framerate:    60,
			Title:        "Hunger Nagini",
		},
		Grid: GridConfig{
			UnitSize:  entity.UnitSize,
			ShowLines: true,
		},
		Timing: TimingConfig{
			TickMs:     int(system.DefaultTickPeriod / time.Millisecond),
			DebounceMs: int(system.DefaultDebounce / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.3,
			Eat:        ToneConfig{Frequency: 880, DurationMs: 80},
			GameOver:   ToneConfig{Frequency: 220, DurationMs: 400},
		},
		About: AboutConfig{
			Title: "About The Game",
			Lines: []string{
				"This is a classic Snake Game, where you guide the snake",
				"to eat apples and grow longer.",
			},
		},
	}
}
