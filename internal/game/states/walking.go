package states

import (
	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/physics"
)

// walkingState lets the player steer the human.
type walkingState struct {
	manager *Manager
}

func (s *walkingState) Mode() Mode { return WalkingFree }

func (s *walkingState) Enter() {}

func (s *walkingState) Exit() {}

func (s *walkingState) Update(held controls.State) {
	physics.StepWalking(s.manager.human, held, s.manager.bindings)
}

func (s *walkingState) HandleAction(a controls.Action) {
	if a == controls.ActionApproach {
		s.manager.Change(ApproachingVehicle)
	}
}
