// internal/state/running_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/system"
)

var _ State = (*RunningState)(nil)

// RunningState pulses the frame source and handles input while the window
// is visible.
type RunningState struct {
	sm    *StateMachine
	scene *Scene
}

func NewRunningState(sm *StateMachine, scene *Scene) *RunningState {
	return &RunningState{sm: sm, scene: scene}
}

func (s *RunningState) Name() string { return "running" }

func (s *RunningState) Enter() {
	s.scene.Indicator.Pulse()
}

func (s *RunningState) Update(deltaTime float64) {
	sc := s.scene
	if sc.Visible != nil && !sc.Visible() {
		s.sm.SetState(NewSuspendedState(s.sm, sc))
		return
	}

	s.handleInput()
	sc.Tilt.Update()
	sc.Stats.Update(deltaTime)
	sc.Frames.Pulse()
}

func (s *RunningState) handleInput() {
	sc := s.scene
	x, y := ebiten.CursorPosition()
	sc.Tilt.Cursor(float64(x), float64(y))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		sc.Stats.Visible = !sc.Stats.Visible
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		reduced := !sc.Overlay.Profile().ReducedMotion
		sc.Overlay.SetReducedMotion(reduced)
		sc.Logger.Info("reduced motion toggled", "on", reduced)
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		sc.Overlay.InvalidateObstacles()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		// ручной всплеск под курсором
		sc.Overlay.SpawnImpact(float64(x), float64(y), system.NormalUp)
	}
}

func (s *RunningState) Draw(screen *ebiten.Image) {
	s.scene.draw(screen)
	s.scene.Indicator.Draw(screen, config.RunningStateColor)
}

func (s *RunningState) Exit() {}
