// internal/state/suspended_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-rain-overlay/internal/config"
)

var _ State = (*SuspendedState)(nil)

var dimColor = color.RGBA{0, 0, 0, 110}

// SuspendedState holds the overlay paused while the window is hidden and
// hands back to RunningState once it is visible again.
type SuspendedState struct {
	sm    *StateMachine
	scene *Scene
}

func NewSuspendedState(sm *StateMachine, scene *Scene) *SuspendedState {
	return &SuspendedState{sm: sm, scene: scene}
}

func (s *SuspendedState) Name() string { return "suspended" }

func (s *SuspendedState) Enter() {
	s.scene.Overlay.Suspend()
	s.scene.Indicator.Pulse()
}

func (s *SuspendedState) Update(deltaTime float64) {
	if s.scene.Visible == nil || s.scene.Visible() {
		s.sm.SetState(NewRunningState(s.sm, s.scene))
	}
}

func (s *SuspendedState) Draw(screen *ebiten.Image) {
	s.scene.draw(screen)
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), dimColor, false)
	s.scene.Indicator.Draw(screen, config.HiddenStateColor)
}

// Exit resumes the overlay; its first frame afterwards only re-primes timing.
func (s *SuspendedState) Exit() {
	s.scene.Overlay.Resume()
}
