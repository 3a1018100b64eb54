// Package camera computes where the chase camera sits and what it looks at.
package camera

import (
	"github.com/Faultbox/drivetown/pkg/math"
)

// Mode is the camera placement derived from the control mode.
type Mode int

const (
	ThirdPersonHuman Mode = iota
	ThirdPersonVehicleExterior
	FirstPersonVehicleInterior
)

func (m Mode) String() string {
	switch m {
	case ThirdPersonHuman:
		return "human"
	case ThirdPersonVehicleExterior:
		return "exterior"
	case FirstPersonVehicleInterior:
		return "interior"
	}
	return "unknown"
}

// Profile places the camera relative to its target.
type Profile struct {
	Offset    float32 // distance behind the target along its heading
	Elevation float32 // height above the target
}

// Default profiles.
var (
	HumanProfile    = Profile{Offset: 3, Elevation: 2}
	ExteriorProfile = Profile{Offset: 5, Elevation: 3}
	InteriorProfile = Profile{Offset: 0.2, Elevation: 1.5}
)

// ChaseCamera follows the controlled entity. It snaps to the computed
// placement every tick without smoothing.
type ChaseCamera struct {
	Human    Profile
	Exterior Profile
	Interior Profile

	// Last computed placement, for the renderer.
	Eye    math.Vec3
	LookAt math.Vec3
	Mode   Mode
}

// NewChaseCamera creates a chase camera with the default profiles.
func NewChaseCamera() *ChaseCamera {
	return &ChaseCamera{
		Human:    HumanProfile,
		Exterior: ExteriorProfile,
		Interior: InteriorProfile,
	}
}

// ModeFor returns the camera mode for the given control state. The interior
// flag only matters while driving.
func ModeFor(driving, interior bool) Mode {
	switch {
	case !driving:
		return ThirdPersonHuman
	case interior:
		return FirstPersonVehicleInterior
	default:
		return ThirdPersonVehicleExterior
	}
}

// Profile returns the profile used for mode.
func (c *ChaseCamera) Profile(mode Mode) Profile {
	switch mode {
	case ThirdPersonVehicleExterior:
		return c.Exterior
	case FirstPersonVehicleInterior:
		return c.Interior
	default:
		return c.Human
	}
}

// Target returns the camera position and look-at point for a target at
// position facing heading. It is a pure function of its arguments.
func (c *ChaseCamera) Target(position math.Vec3, heading float32, mode Mode) (eye, lookAt math.Vec3) {
	p := c.Profile(mode)
	eye = position.
		Sub(math.Forward(heading).Scale(p.Offset)).
		Add(math.Vec3{Y: p.Elevation})
	return eye, position
}

// Follow computes and caches the placement for this tick.
func (c *ChaseCamera) Follow(position math.Vec3, heading float32, driving, interior bool) {
	c.Mode = ModeFor(driving, interior)
	c.Eye, c.LookAt = c.Target(position, heading, c.Mode)
}

// ViewMatrix returns the view matrix for the cached placement.
func (c *ChaseCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.LookAt, math.Vec3{Y: 1})
}
