// Package hud formats the on-screen driving readouts.
package hud

import (
	"fmt"
	"math"
	"strings"

	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/states"
)

// SpeedScale converts internal speed units to the displayed km/h figure.
const SpeedScale = 1000

// FormatSpeed returns the speedometer text for a signed vehicle speed.
// Reverse reads the same as forward.
func FormatSpeed(speed float32) string {
	return fmt.Sprintf("Speed: %.1f km/h", math.Abs(float64(speed)*SpeedScale))
}

// FormatFPS returns the frame rate line shown when ShowFPS is enabled.
func FormatFPS(fps float64) string {
	return fmt.Sprintf("FPS: %.0f", fps)
}

// Hints returns the control help line for the current mode.
func Hints(mode states.Mode, b controls.Bindings) string {
	b = b.Normalize()
	var parts []string
	switch mode {
	case states.WalkingFree:
		parts = []string{
			hint(b.WalkForward+"/"+b.WalkBackward, "walk"),
			hint(b.TurnLeft+"/"+b.TurnRight, "turn"),
			hint(b.Approach, "enter car"),
		}
	case states.ApproachingVehicle:
		parts = []string{hint(b.Exit, "cancel")}
	case states.DrivingVehicle:
		parts = []string{
			hint(b.Throttle+"/"+b.Reverse, "drive"),
			hint(b.SteerLeft+"/"+b.SteerRight, "steer"),
			hint(b.Brake, "brake"),
			hint(b.ToggleView, "view"),
			hint(b.Exit, "exit"),
		}
	}
	return strings.Join(parts, "  ")
}

func hint(keys, what string) string {
	return strings.ToUpper(keys) + ": " + what
}
