// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one mode of the window: the overlay either runs or is suspended.
type State interface {
	Name() string
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine switches between window states. OnChange, when set, observes
// every transition after the new state has been entered; from is nil for the
// first one.
type StateMachine struct {
	current  State
	OnChange func(from, to State)
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из текущего состояния и входит в новое.
func (sm *StateMachine) SetState(next State) {
	prev := sm.current
	if prev != nil {
		prev.Exit()
	}
	sm.current = next
	if next == nil {
		return
	}
	next.Enter()
	if sm.OnChange != nil {
		sm.OnChange(prev, next)
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
