// Package physics implements the fixed-tick movement rules for walking,
// homing onto the vehicle and arcade driving.
package physics

import (
	"time"

	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/entity"
	"github.com/Faultbox/drivetown/pkg/math"
)

// TickInterval is the fixed simulation step.
const TickInterval = 16 * time.Millisecond

// Walking.
const (
	TurnRate = 0.05 // radians per tick, shared by walking and steering
	WalkStep = 0.05 // world units per tick
	// WalkCycleRate advances the walk animation phase per tick.
	WalkCycleRate = 0.3
)

// Driving.
const (
	Acceleration = 0.0009
	MaxSpeed     = 2.0
	MinSpeed     = -1.5
	Friction     = 0.98 // coasting decay
	BrakeFactor  = 0.9  // braking decay
)

// Entering and leaving the vehicle.
const (
	EntryThreshold = 0.5
	ExitDistance   = 1.0
)

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed float32) float32 {
	if speed > MaxSpeed {
		return MaxSpeed
	}
	if speed < MinSpeed {
		return MinSpeed
	}
	return speed
}

// StepWalking applies one tick of player-steered walking. Turning is
// applied before translation so both use the same heading.
func StepWalking(h *entity.Human, in controls.State, b controls.Bindings) {
	if in.Held(b.TurnLeft) {
		h.Heading += TurnRate
	}
	if in.Held(b.TurnRight) {
		h.Heading -= TurnRate
	}

	forward := in.Held(b.WalkForward)
	backward := in.Held(b.WalkBackward)
	if forward {
		h.Advance(WalkStep)
	}
	if backward {
		h.Advance(-WalkStep)
	}

	h.Animating = forward || backward
	animate(h)
}

// StepApproach walks the human one tick towards the vehicle, ignoring
// player input. It reports whether the human is within EntryThreshold of
// the vehicle after the step.
func StepApproach(h *entity.Human, v entity.Vehicle) bool {
	h.Animating = true

	dist := h.PlanarDistance(v.Pose)
	if dist <= EntryThreshold {
		return true
	}

	h.Heading = math.HeadingTo(h.Position, v.Position)
	step := float32(WalkStep)
	if step > dist {
		step = dist
	}
	h.Advance(step)
	animate(h)

	return h.PlanarDistance(v.Pose) <= EntryThreshold
}

// StepDriving applies one tick of arcade driving. Steering is applied
// before translation, so a turn and the move it causes land on the same tick.
func StepDriving(v *entity.Vehicle, in controls.State, b controls.Bindings) {
	throttle := in.Held(b.Throttle)
	reverse := in.Held(b.Reverse)
	left := in.Held(b.SteerLeft)
	right := in.Held(b.SteerRight)
	brake := in.Held(b.Brake)

	if left {
		v.Heading += TurnRate
	}
	if right {
		v.Heading -= TurnRate
	}

	speed := v.Speed
	if throttle {
		speed = ClampSpeed(speed + Acceleration)
	}
	if reverse {
		speed = ClampSpeed(speed - Acceleration)
	}
	// Coasting friction and braking are separate decay paths; braking
	// replaces friction rather than stacking with it.
	if !throttle && !reverse && !brake {
		speed = ClampSpeed(speed * Friction)
	}
	if brake {
		speed = ClampSpeed(speed * BrakeFactor)
	}
	v.Speed = speed

	v.Advance(v.Speed)
	v.Moving = throttle || reverse || left || right
}

func animate(h *entity.Human) {
	if h.Animating {
		h.WalkPhase += WalkCycleRate
	}
}
