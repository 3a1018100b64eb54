package states

import (
	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/physics"
)

// approachingState walks the human to the vehicle on its own. Directional
// input is ignored until the human gets in or the approach is cancelled.
type approachingState struct {
	manager *Manager
}

func (s *approachingState) Mode() Mode { return ApproachingVehicle }

func (s *approachingState) Enter() {
	s.manager.human.Animating = true
}

func (s *approachingState) Exit() {
	s.manager.human.Animating = false
}

func (s *approachingState) Update(controls.State) {
	if physics.StepApproach(s.manager.human, *s.manager.vehicle) {
		s.manager.Change(DrivingVehicle)
	}
}

func (s *approachingState) HandleAction(a controls.Action) {
	if a == controls.ActionExit {
		s.manager.Change(WalkingFree)
	}
}
