package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/nagini/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 640, 480, 60)

	assert.NotNil(t, g)
	assert.Same(t, mockInitial, g.Current())
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestNew_DT(t *testing.T) {
	tests := []struct {
		name string
		tps  int
		want float64
	}{
		{"60 tps", 60, 1.0 / 60},
		{"30 tps", 30, 1.0 / 30},
		{"zero falls back to default", 0, 1.0 / float64(ebiten.DefaultTPS)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockScene{}
			g := New(s, 640, 480, tt.tps)

			assert.InDelta(t, tt.want, g.DT(), 1e-12)
			assert.NoError(t, g.Update())
			assert.InDelta(t, tt.want, s.lastDT, 1e-12)
		})
	}
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 640, 480, 60)

	// The mock never touches the image, so no graphics context is needed
	g.Draw(nil)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 640, 480, 60)

	w, h := g.Layout(1280, 960)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 640, 480, 60)

	var from, to scene.Scene
	g.OnTransition = func(f, t scene.Scene) {
		from, to = f, t
	}

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Same(t, scene1, from)
	assert.Same(t, scene2, to)
	assert.Same(t, scene2, g.Current())

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionToSelf(t *testing.T) {
	s := &mockScene{}
	s.nextScene = s

	g := New(s, 640, 480, 60)
	assert.NoError(t, g.Update())

	assert.Equal(t, 0, s.onExitCalled)
	assert.Equal(t, 1, s.onEnterCalled)
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 640, 480, 60)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: ebiten.Termination}
	g := New(scene1, 640, 480, 60)

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
}
