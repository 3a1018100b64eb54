// Package entity implements the controllable entities of the scene: the
// human character and the vehicle.
package entity

import (
	"github.com/Faultbox/drivetown/pkg/math"
)

// Pose is a position plus a heading about the vertical axis.
// Heading is in radians and is never normalized.
type Pose struct {
	Position math.Vec3
	Heading  float32
}

// Forward returns the ground-plane direction the pose is facing.
func (p Pose) Forward() math.Vec3 {
	return math.Forward(p.Heading)
}

// Advance moves the pose along its heading by dist (negative moves back).
func (p *Pose) Advance(dist float32) {
	p.Position = p.Position.Add(p.Forward().Scale(dist))
}

// PlanarDistance returns the ground-plane distance between two poses.
func (p Pose) PlanarDistance(other Pose) float32 {
	return p.Position.PlanarDistance(other.Position)
}

// Human is the walking character. It always exists and is only repositioned.
type Human struct {
	Pose

	// Animating is true while the walk cycle should play.
	Animating bool
	// WalkPhase is the walk cycle position in radians, advanced per tick
	// while animating.
	WalkPhase float32
}

// NewHuman creates a human at the given position.
func NewHuman(x, y, z float32) *Human {
	return &Human{Pose: Pose{Position: math.Vec3{X: x, Y: y, Z: z}}}
}

// SetPose places the human, keeping its animation state.
func (h *Human) SetPose(p Pose) {
	h.Pose = p
}

// Vehicle is the drivable car.
type Vehicle struct {
	Pose

	// Speed is signed: positive is forward, negative is reverse.
	Speed float32
	// Moving is true while any steering or throttle control is held.
	Moving bool
}

// NewVehicle creates a stationary vehicle at the given position.
func NewVehicle(x, y, z float32) *Vehicle {
	return &Vehicle{Pose: Pose{Position: math.Vec3{X: x, Y: y, Z: z}}}
}
