// Package states implements the control mode state machine: walking,
// approaching the vehicle and driving it.
package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/entity"
	"github.com/Faultbox/drivetown/internal/logger"
)

// Mode identifies which entity the player controls and how.
type Mode int

const (
	WalkingFree Mode = iota
	ApproachingVehicle
	DrivingVehicle
)

func (m Mode) String() string {
	switch m {
	case WalkingFree:
		return "walking"
	case ApproachingVehicle:
		return "approaching"
	case DrivingVehicle:
		return "driving"
	}
	return "unknown"
}

// State is one control mode.
type State interface {
	// Mode returns the mode this state implements.
	Mode() Mode

	// Enter is called when the state becomes current.
	Enter()

	// Exit is called when the state is left.
	Exit()

	// Update runs the movement step for one tick.
	Update(held controls.State)

	// HandleAction applies a one-shot action. Actions that mean nothing
	// in this state are ignored.
	HandleAction(a controls.Action)
}

// Manager owns the current state and the entities the states act on.
type Manager struct {
	human    *entity.Human
	vehicle  *entity.Vehicle
	bindings controls.Bindings

	states  map[Mode]State
	current State

	interior bool
}

// NewManager creates a manager in WalkingFree.
func NewManager(human *entity.Human, vehicle *entity.Vehicle, bindings controls.Bindings) *Manager {
	m := &Manager{
		human:    human,
		vehicle:  vehicle,
		bindings: bindings.Normalize(),
	}
	m.states = map[Mode]State{
		WalkingFree:        &walkingState{manager: m},
		ApproachingVehicle: &approachingState{manager: m},
		DrivingVehicle:     &drivingState{manager: m},
	}
	m.current = m.states[WalkingFree]
	m.current.Enter()
	return m
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Mode returns the current mode.
func (m *Manager) Mode() Mode {
	return m.current.Mode()
}

// Human returns the controlled human.
func (m *Manager) Human() *entity.Human {
	return m.human
}

// Vehicle returns the vehicle.
func (m *Manager) Vehicle() *entity.Vehicle {
	return m.vehicle
}

// InteriorView reports whether the in-cabin camera is selected.
// It is only ever true while driving.
func (m *Manager) InteriorView() bool {
	return m.interior
}

// SetBindings replaces the key bindings used by the movement steps.
func (m *Manager) SetBindings(b controls.Bindings) {
	m.bindings = b.Normalize()
}

// Change switches to the given mode immediately, running Exit on the old
// state and Enter on the new one. Changing to the current mode is a no-op.
func (m *Manager) Change(next Mode) {
	from := m.current.Mode()
	if from == next {
		return
	}
	state, ok := m.states[next]
	if !ok {
		return
	}

	m.current.Exit()
	m.current = state
	m.current.Enter()

	logger.Debug("control mode changed",
		zap.Stringer("from", from),
		zap.Stringer("to", next))
}

// Update runs one tick of the current state.
func (m *Manager) Update(held controls.State) {
	m.current.Update(held)
}

// HandleAction forwards a one-shot action to the current state.
func (m *Manager) HandleAction(a controls.Action) {
	m.current.HandleAction(a)
}
