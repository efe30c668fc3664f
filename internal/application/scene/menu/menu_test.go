package menu

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/nagini/internal/application/scene"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/domain/entity"
)

type stubScene struct{}

func (s *stubScene) Update(dt float64) (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(screen *ebiten.Image)              {}
func (s *stubScene) OnEnter()                               {}
func (s *stubScene) OnExit()                                {}

func createTestMenu() (*Menu, *system.QueueInput, map[state.GameState]scene.Scene) {
	ctrl := system.NewController(entity.DefaultGrid(), system.DefaultTiming())
	input := system.NewQueueInput()
	dir := scene.NewDirector(ctrl, input)

	m := New(dir, nil, "Hunger Nagini")
	scenes := map[state.GameState]scene.Scene{
		state.StateMenu:     m,
		state.StateAbout:    &stubScene{},
		state.StatePlaying:  &stubScene{},
		state.StateGameOver: &stubScene{},
	}
	for gs, s := range scenes {
		dir.Register(gs, s)
	}
	return m, input, scenes
}

func TestMenu_Update(t *testing.T) {
	tests := []struct {
		name   string
		intent system.Intent
		want   state.GameState
		stay   bool
	}{
		{"play", system.CommandIntent{Command: state.CommandPlay}, state.StatePlaying, false},
		{"about", system.CommandIntent{Command: state.CommandAbout}, state.StateAbout, false},
		{"home stays", system.CommandIntent{Command: state.CommandHome}, state.StateMenu, true},
		{"arrow ignored", system.SteerIntent{Heading: entity.HeadingUp}, state.StateMenu, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, input, scenes := createTestMenu()
			input.Push(tt.intent)

			next, err := m.Update(1.0 / 60)
			assert.NoError(t, err)
			if tt.stay {
				assert.Nil(t, next)
			} else {
				assert.Same(t, scenes[tt.want], next)
			}
			assert.Equal(t, tt.want, m.dir.Controller().State())
		})
	}
}

func TestMenu_QuitTerminates(t *testing.T) {
	m, input, _ := createTestMenu()
	input.Push(system.CommandIntent{Command: state.CommandQuit})

	_, err := m.Update(1.0 / 60)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestMenu_Options(t *testing.T) {
	assert.Equal(t, []string{"Press 1 to Play", "Press 2 for About", "Press 3 to Quit"}, Options)
}
