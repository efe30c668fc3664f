package playing

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nagini/internal/application/scene"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// stubScene stands in for the scenes Playing hands over to
type stubScene struct{}

func (s *stubScene) Update(dt float64) (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(screen *ebiten.Image)              {}
func (s *stubScene) OnEnter()                               {}
func (s *stubScene) OnExit()                                {}

// createTestPlaying returns a Playing scene with a game already started.
// Draw is never called, so no fonts are loaded.
func createTestPlaying(t *testing.T) (*Playing, *system.QueueInput, *stubScene) {
	t.Helper()

	ctrl := system.NewController(entity.DefaultGrid(), system.DefaultTiming())
	ctrl.SetSeedSource(func() uint64 { return 99 })
	input := system.NewQueueInput()
	dir := scene.NewDirector(ctrl, input)

	clock := time.Unix(0, 0)
	dir.SetClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	p := New(dir, nil, true)
	over := &stubScene{}
	dir.Register(state.StateMenu, &stubScene{})
	dir.Register(state.StatePlaying, p)
	dir.Register(state.StateGameOver, over)

	require.True(t, ctrl.Dispatch(state.CommandPlay))
	return p, input, over
}

func TestPlaying_UpdateRunsDueTicks(t *testing.T) {
	tests := []struct {
		name   string
		frames []float64
		ticks  int
	}{
		{"under one period", []float64{0.05}, 0},
		{"exactly one period", []float64{0.1}, 1},
		{"two half periods", []float64{0.05, 0.05}, 1},
		{"three periods in one frame", []float64{0.35}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := createTestPlaying(t)

			for _, dt := range tt.frames {
				next, err := p.Update(dt)
				require.NoError(t, err)
				assert.Nil(t, next)
			}
			assert.Equal(t, tt.ticks, p.dir.Controller().Ticks())
		})
	}
}

func TestPlaying_SteerAppliesBeforeTick(t *testing.T) {
	p, input, _ := createTestPlaying(t)

	input.Push(system.SteerIntent{Heading: entity.HeadingDown})
	_, err := p.Update(0.1)
	require.NoError(t, err)

	snake := p.dir.Controller().Snake()
	assert.Equal(t, entity.Cell{X: 0, Y: 20}, snake.Head())
	assert.Equal(t, entity.HeadingDown, snake.Heading())
}

func TestPlaying_IgnoresMenuCommands(t *testing.T) {
	p, input, _ := createTestPlaying(t)

	input.Push(
		system.CommandIntent{Command: state.CommandHome},
		system.CommandIntent{Command: state.CommandAbout},
		system.CommandIntent{Command: state.CommandQuit},
	)
	next, err := p.Update(0.01)

	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.StatePlaying, p.dir.Controller().State())
}

func TestPlaying_WallHitSwitchesToGameOver(t *testing.T) {
	p, input, over := createTestPlaying(t)

	input.Push(system.SteerIntent{Heading: entity.HeadingUp})
	next, err := p.Update(0.1)

	require.NoError(t, err)
	assert.Same(t, over, next)
	assert.Equal(t, state.StateGameOver, p.dir.Controller().State())
	assert.False(t, p.dir.Controller().Ticking())
}

func TestPlaying_StopsTickingAfterGameOver(t *testing.T) {
	p, input, _ := createTestPlaying(t)

	input.Push(system.SteerIntent{Heading: entity.HeadingUp})
	_, err := p.Update(0.5)
	require.NoError(t, err)

	assert.Equal(t, 1, p.dir.Controller().Ticks())
}
