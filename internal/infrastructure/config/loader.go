package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/nagini/configs"
)

// ErrInvalid is returned when a loaded config fails validation
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads game.json from dir, or from the embedded defaults when dir is empty
func Load(dir string) (*GameConfig, error) {
	loader := NewFSLoader(configs.FS, "configs")
	if dir != "" {
		loader = NewLoader(dir)
	}
	return loader.LoadAll()
}

// LoadGame loads game.json on top of the defaults.
// Fields missing from the file keep their default values.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/game.json: %w", l.basePath, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return cfg, nil
}

// LoadAll loads and validates every configuration file
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the board and loop settings are usable
func (c *GameConfig) Validate() error {
	var errs []error

	d := c.Display
	unit := c.Grid.UnitSize
	switch {
	case unit <= 0:
		errs = append(errs, fmt.Errorf("grid.unitSize must be positive, got %d", unit))
	case d.ScreenWidth < unit || d.ScreenHeight < unit:
		errs = append(errs, fmt.Errorf("screen %dx%d is smaller than one cell", d.ScreenWidth, d.ScreenHeight))
	case d.ScreenWidth%unit != 0 || d.ScreenHeight%unit != 0:
		errs = append(errs, fmt.Errorf("screen %dx%d is not a multiple of unit %d", d.ScreenWidth, d.ScreenHeight, unit))
	}

	if d.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display.scale must be positive, got %d", d.Scale))
	}
	if d.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", d.Framerate))
	}
	if c.Timing.TickMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.tickMs must be positive, got %d", c.Timing.TickMs))
	}
	if c.Timing.DebounceMs < 0 {
		errs = append(errs, fmt.Errorf("timing.debounceMs must not be negative, got %d", c.Timing.DebounceMs))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
