package states

import (
	gomath "math"

	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/entity"
	"github.com/Faultbox/drivetown/internal/game/physics"
	"github.com/Faultbox/drivetown/pkg/math"
)

// drivingState puts the player in the vehicle. The human rides along at
// the vehicle pose and is neither rendered nor stepped.
type drivingState struct {
	manager *Manager
}

func (s *drivingState) Mode() Mode { return DrivingVehicle }

func (s *drivingState) Enter() {
	s.manager.human.Animating = false
	s.manager.human.SetPose(s.manager.vehicle.Pose)
}

func (s *drivingState) Exit() {
	s.manager.interior = false
	s.manager.vehicle.Moving = false
	s.manager.human.SetPose(ExitPose(s.manager.vehicle.Pose))
}

func (s *drivingState) Update(held controls.State) {
	physics.StepDriving(s.manager.vehicle, held, s.manager.bindings)
	s.manager.human.SetPose(s.manager.vehicle.Pose)
}

func (s *drivingState) HandleAction(a controls.Action) {
	switch a {
	case controls.ActionExit:
		s.manager.Change(WalkingFree)
	case controls.ActionToggleView:
		s.manager.interior = !s.manager.interior
	}
}

// ExitPose returns where the human stands after leaving a vehicle at p.
// The human is placed ExitDistance away along (cos(h+π/2), 0, sin(h+π/2))
// and keeps the vehicle heading. The angle is measured from +X towards +Z,
// unlike Pose.Forward, so at heading 0 the human lands on the +Z side.
func ExitPose(p entity.Pose) entity.Pose {
	side := float64(p.Heading) + gomath.Pi/2
	offset := math.Vec3{
		X: float32(physics.ExitDistance * gomath.Cos(side)),
		Z: float32(physics.ExitDistance * gomath.Sin(side)),
	}
	return entity.Pose{
		Position: p.Position.Add(offset),
		Heading:  p.Heading,
	}
}
