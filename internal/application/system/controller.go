package system

import (
	"time"

	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/domain/entity"
)

const (
	DefaultTickPeriod = 100 * time.Millisecond
	DefaultDebounce   = 100 * time.Millisecond
)

// Timing holds the loop period and the steering debounce window
type Timing struct {
	TickPeriod time.Duration
	Debounce   time.Duration
}

// DefaultTiming returns 100ms ticks with a 100ms debounce
func DefaultTiming() Timing {
	return Timing{TickPeriod: DefaultTickPeriod, Debounce: DefaultDebounce}
}

// Snapshot is a read-only view of the controller for renderers
type Snapshot struct {
	State    state.GameState
	Segments []entity.Cell
	Heading  entity.Heading
	Apple    entity.Cell
	Score    int
	Ticks    int
	Seed     uint64
}

// Controller owns the game state machine and the per-tick gameplay loop.
//
// All methods must be called from a single goroutine.
type Controller struct {
	grid     entity.Grid
	state    state.GameState
	snake    *entity.Snake
	apple    *entity.Apple
	ticker   *Ticker
	debounce *Debouncer
	seedFn   func() uint64
	seed     uint64
	ticks    int
	quit     bool

	// Callbacks
	OnStart    func(seed uint64)
	OnSteer    func(tick int, h entity.Heading)
	OnEat      func(score int)
	OnGameOver func(score int)
}

// NewController creates a controller sitting on the menu
func NewController(grid entity.Grid, timing Timing) *Controller {
	return &Controller{
		grid:     grid,
		state:    state.StateMenu,
		snake:    entity.NewSnake(grid.Unit),
		apple:    entity.NewApple(0),
		ticker:   NewTicker(timing.TickPeriod),
		debounce: NewDebouncer(timing.Debounce),
		seedFn:   func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

// SetSeedSource replaces the function that seeds apple placement for each new game
func (c *Controller) SetSeedSource(fn func() uint64) {
	c.seedFn = fn
}

// State returns the active game state
func (c *Controller) State() state.GameState {
	return c.state
}

// QuitRequested reports whether the player chose Quit from the menu
func (c *Controller) QuitRequested() bool {
	return c.quit
}

// Grid returns the board dimensions
func (c *Controller) Grid() entity.Grid {
	return c.grid
}

// Snake returns the current snake
func (c *Controller) Snake() *entity.Snake {
	return c.snake
}

// Apple returns the current apple
func (c *Controller) Apple() *entity.Apple {
	return c.apple
}

// Ticking reports whether the tick source is running
func (c *Controller) Ticking() bool {
	return c.ticker.Running()
}

// Apply routes an intent to Dispatch or Steer.
// Returns whether it changed anything.
func (c *Controller) Apply(in Intent, now time.Time) bool {
	switch in := in.(type) {
	case CommandIntent:
		return c.Dispatch(in.Command)
	case SteerIntent:
		return c.Steer(in.Heading, now)
	}
	return false
}

// Dispatch applies a menu command according to the transition table.
// Commands that have no transition from the current state are ignored.
func (c *Controller) Dispatch(cmd state.Command) bool {
	switch c.state {
	case state.StateMenu:
		switch cmd {
		case state.CommandPlay:
			c.start(c.seedFn())
			return true
		case state.CommandAbout:
			c.state = state.StateAbout
			return true
		case state.CommandQuit:
			c.quit = true
			return true
		case state.CommandHome:
			return true
		}
	case state.StateAbout:
		if cmd == state.CommandHome {
			c.state = state.StateMenu
			return true
		}
	case state.StateGameOver:
		switch cmd {
		case state.CommandPlay:
			c.start(c.seedFn())
			return true
		case state.CommandHome:
			c.state = state.StateMenu
			return true
		}
	}
	return false
}

// StartSeeded begins a new game with a fixed apple seed, from any state
func (c *Controller) StartSeeded(seed uint64) {
	c.start(seed)
}

func (c *Controller) start(seed uint64) {
	c.seed = seed
	c.ticks = 0
	c.snake = entity.NewSnake(c.grid.Unit)
	c.apple = entity.NewApple(seed)
	c.apple.Relocate(c.grid, c.snake.Occupied())
	c.debounce.Reset()
	c.ticker.Start()
	c.state = state.StatePlaying

	if c.OnStart != nil {
		c.OnStart(seed)
	}
}

// Steer applies a directional input received at now.
// Inputs outside Playing, inside the debounce window, or reversing the
// snake are ignored.
func (c *Controller) Steer(h entity.Heading, now time.Time) bool {
	if c.state != state.StatePlaying {
		return false
	}
	if !c.debounce.Allow(now) {
		return false
	}
	return c.Turn(h)
}

// Turn sets the heading without debouncing. Used when replaying recorded input.
func (c *Controller) Turn(h entity.Heading) bool {
	if c.state != state.StatePlaying {
		return false
	}
	if !c.snake.SetHeading(h) {
		return false
	}

	if c.OnSteer != nil {
		c.OnSteer(c.ticks, h)
	}
	return true
}

// Update feeds elapsed wall time to the tick source and runs every tick that
// came due. Returns the number of ticks run.
func (c *Controller) Update(elapsed time.Duration) int {
	due := c.ticker.Advance(elapsed)
	ran := 0
	for i := 0; i < due && c.state == state.StatePlaying; i++ {
		c.Tick()
		ran++
	}
	return ran
}

// Tick runs one step of the gameplay loop: advance, eat, collide.
// No-op outside Playing.
func (c *Controller) Tick() {
	if c.state != state.StatePlaying {
		return
	}
	c.ticks++

	c.snake.Advance()

	if c.snake.Head() == c.apple.Pos() {
		c.snake.Grow()
		placed := c.apple.Relocate(c.grid, c.snake.Occupied())
		if c.OnEat != nil {
			c.OnEat(c.snake.Eaten())
		}
		if !placed {
			c.gameOver()
			return
		}
	}

	if c.snake.SelfCollision() || c.snake.OutOfBounds(c.grid.Width, c.grid.Height) {
		c.gameOver()
	}
}

func (c *Controller) gameOver() {
	c.ticker.Stop()
	c.state = state.StateGameOver

	if c.OnGameOver != nil {
		c.OnGameOver(c.snake.Eaten())
	}
}

// Score returns the number of apples eaten this game
func (c *Controller) Score() int {
	return c.snake.Eaten()
}

// Ticks returns the number of ticks run this game
func (c *Controller) Ticks() int {
	return c.ticks
}

// Seed returns the apple seed of the current game
func (c *Controller) Seed() uint64 {
	return c.seed
}

// Snapshot returns a copy of everything a renderer needs
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:    c.state,
		Segments: c.snake.Segments(),
		Heading:  c.snake.Heading(),
		Apple:    c.apple.Pos(),
		Score:    c.snake.Eaten(),
		Ticks:    c.ticks,
		Seed:     c.seed,
	}
}
