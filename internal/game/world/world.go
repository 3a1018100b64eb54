// Package world owns the scene state and advances it one fixed tick at a
// time.
package world

import (
	gomath "math"

	"github.com/Faultbox/drivetown/internal/engine/camera"
	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/entity"
	"github.com/Faultbox/drivetown/internal/game/hud"
	"github.com/Faultbox/drivetown/internal/game/states"
	"github.com/Faultbox/drivetown/pkg/math"
)

// Spawn holds the initial placement of the scene objects.
type Spawn struct {
	Human   entity.Pose
	Vehicle entity.Pose
	House   entity.Pose
}

// DefaultSpawn places the car on the origin with the human a few steps
// away and the house off to the side.
func DefaultSpawn() Spawn {
	return Spawn{
		Human: entity.Pose{Position: math.Vec3{X: 5, Y: 0.1, Z: 1}},
		House: entity.Pose{Position: math.Vec3{X: -10, Y: 0, Z: 10}},
	}
}

// WalkBob is the height of the step bounce while walking.
const WalkBob = 0.06

// Snapshot is everything the renderer needs for one tick.
type Snapshot struct {
	Human        entity.Human
	HumanVisible bool
	HumanBob     float32 // vertical step offset for the human mesh
	Vehicle      entity.Vehicle
	House        entity.Pose

	Mode       states.Mode
	CameraMode camera.Mode
	Eye        math.Vec3
	LookAt     math.Vec3

	Speedometer string
	Tick        uint64
}

// World is the whole simulation: entities, mode machine and camera.
type World struct {
	human   *entity.Human
	vehicle *entity.Vehicle
	house   entity.Pose

	modes  *states.Manager
	camera *camera.ChaseCamera

	tick uint64
}

// New creates a world in WalkingFree at the given spawn.
func New(spawn Spawn, bindings controls.Bindings) *World {
	human := &entity.Human{Pose: spawn.Human}
	vehicle := &entity.Vehicle{Pose: spawn.Vehicle}

	w := &World{
		human:   human,
		vehicle: vehicle,
		house:   spawn.House,
		modes:   states.NewManager(human, vehicle, bindings),
		camera:  camera.NewChaseCamera(),
	}
	w.follow()
	return w
}

// SetBindings swaps the key bindings used from the next tick on.
func (w *World) SetBindings(b controls.Bindings) {
	w.modes.SetBindings(b)
}

// Mode returns the current control mode.
func (w *World) Mode() states.Mode {
	return w.modes.Mode()
}

// Tick advances the simulation by one fixed step.
//
// The movement step runs before the frame's actions, so an approach
// requested this tick starts moving on the next one and cannot reach
// DrivingVehicle in the tick it was requested.
func (w *World) Tick(frame controls.Frame) Snapshot {
	w.modes.Update(frame.Held)
	for _, a := range frame.Actions {
		w.modes.HandleAction(a)
	}
	w.follow()
	w.tick++
	return w.Snapshot()
}

// Snapshot returns the current state without advancing it.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Human:        *w.human,
		HumanVisible: w.modes.Mode() != states.DrivingVehicle,
		HumanBob:     bob(w.human),
		Vehicle:      *w.vehicle,
		House:        w.house,
		Mode:         w.modes.Mode(),
		CameraMode:   w.camera.Mode,
		Eye:          w.camera.Eye,
		LookAt:       w.camera.LookAt,
		Speedometer:  hud.FormatSpeed(w.vehicle.Speed),
		Tick:         w.tick,
	}
}

// ViewMatrix returns the camera view for the current tick.
func (w *World) ViewMatrix() math.Mat4 {
	return w.camera.ViewMatrix()
}

func bob(h *entity.Human) float32 {
	if !h.Animating {
		return 0
	}
	return WalkBob * float32(gomath.Abs(gomath.Sin(float64(h.WalkPhase))))
}

func (w *World) follow() {
	if w.modes.Mode() == states.DrivingVehicle {
		w.camera.Follow(w.vehicle.Position, w.vehicle.Heading, true, w.modes.InteriorView())
		return
	}
	w.camera.Follow(w.human.Position, w.human.Heading, false, false)
}
