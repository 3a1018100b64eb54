package physics

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/entity"
)

func held(keys ...string) controls.State {
	s := make(controls.State, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1.2, 1.2},
		{2.5, MaxSpeed},
		{-1.2, -1.2},
		{-3, MinSpeed},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in); got != tt.want {
			t.Errorf("ClampSpeed(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStepWalking(t *testing.T) {
	b := controls.DefaultBindings()

	tests := []struct {
		name        string
		keys        []string
		wantX       float32
		wantZ       float32
		wantHeading float32
		wantAnim    bool
	}{
		{"idle", nil, 0, 0, 0, false},
		{"forward", []string{"arrowup"}, 0, WalkStep, 0, true},
		{"backward", []string{"arrowdown"}, 0, -WalkStep, 0, true},
		{"turn left in place", []string{"arrowleft"}, 0, 0, TurnRate, false},
		{"turn right in place", []string{"arrowright"}, 0, 0, -TurnRate, false},
		{
			"turn and walk use the new heading",
			[]string{"arrowleft", "arrowup"},
			float32(WalkStep * gomath.Sin(TurnRate)),
			float32(WalkStep * gomath.Cos(TurnRate)),
			TurnRate,
			true,
		},
		{"forward and backward cancel", []string{"arrowup", "arrowdown"}, 0, 0, 0, true},
		{"driving keys are ignored", []string{"w", "a"}, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := entity.NewHuman(0, 0, 0)
			StepWalking(h, held(tt.keys...), b)

			if !near(h.Position.X, tt.wantX) || !near(h.Position.Z, tt.wantZ) {
				t.Errorf("position = %v, want (%v, _, %v)", h.Position, tt.wantX, tt.wantZ)
			}
			if !near(h.Heading, tt.wantHeading) {
				t.Errorf("heading = %v, want %v", h.Heading, tt.wantHeading)
			}
			if h.Animating != tt.wantAnim {
				t.Errorf("animating = %v, want %v", h.Animating, tt.wantAnim)
			}
		})
	}
}

func TestStepWalkingAdvancesWalkPhase(t *testing.T) {
	b := controls.DefaultBindings()
	h := entity.NewHuman(0, 0, 0)

	StepWalking(h, held("arrowup"), b)
	phase := h.WalkPhase
	if phase <= 0 {
		t.Fatalf("walk phase should advance while walking, got %v", phase)
	}

	StepWalking(h, held(), b)
	if h.WalkPhase != phase {
		t.Errorf("walk phase should hold while idle, got %v want %v", h.WalkPhase, phase)
	}
}

func TestStepApproachIsMonotonic(t *testing.T) {
	h := entity.NewHuman(5, 0.1, 1)
	v := entity.NewVehicle(0, 0, 0)

	prev := h.PlanarDistance(v.Pose)
	for tick := 0; tick < 1000; tick++ {
		arrived := StepApproach(h, *v)
		d := h.PlanarDistance(v.Pose)
		if d > prev+1e-6 {
			t.Fatalf("tick %d: distance increased from %v to %v", tick, prev, d)
		}
		if arrived != (d <= EntryThreshold) {
			t.Fatalf("tick %d: arrived=%v at distance %v", tick, arrived, d)
		}
		if arrived {
			return
		}
		prev = d
	}
	t.Fatal("human never reached the vehicle")
}

func TestStepApproachFacesVehicle(t *testing.T) {
	h := entity.NewHuman(0, 0, 10)
	v := entity.NewVehicle(0, 0, 0)

	StepApproach(h, *v)

	// Vehicle is straight down -Z, so the heading is pi (or -pi).
	if !near(float32(gomath.Abs(float64(h.Heading))), gomath.Pi) {
		t.Errorf("heading = %v, want ±pi", h.Heading)
	}
	if !near(h.Position.Z, 10-WalkStep) || !near(h.Position.X, 0) {
		t.Errorf("position = %v, want (0, 0, %v)", h.Position, 10-WalkStep)
	}
	if !h.Animating {
		t.Error("human should animate while approaching")
	}
}

func TestStepApproachAlreadyClose(t *testing.T) {
	h := entity.NewHuman(0.3, 5, 0)
	v := entity.NewVehicle(0, 0, 0)

	if !StepApproach(h, *v) {
		t.Error("expected arrival when already inside the threshold")
	}
	if h.Position.X != 0.3 {
		t.Errorf("human should not move once arrived, got %v", h.Position)
	}
}

func TestStepDrivingThrottle(t *testing.T) {
	b := controls.DefaultBindings()
	v := entity.NewVehicle(0, 0, 0)

	prev := v.Speed
	for tick := 0; tick < 5000; tick++ {
		StepDriving(v, held("w"), b)
		if v.Speed > MaxSpeed {
			t.Fatalf("tick %d: speed %v exceeds max", tick, v.Speed)
		}
		if prev < MaxSpeed && v.Speed <= prev {
			t.Fatalf("tick %d: speed did not increase (%v -> %v)", tick, prev, v.Speed)
		}
		prev = v.Speed
	}
	if v.Speed != MaxSpeed {
		t.Errorf("sustained throttle should reach max speed, got %v", v.Speed)
	}
	if !v.Moving {
		t.Error("vehicle should be moving while throttle held")
	}
}

func TestStepDrivingReverse(t *testing.T) {
	b := controls.DefaultBindings()
	v := entity.NewVehicle(0, 0, 0)

	for tick := 0; tick < 5000; tick++ {
		StepDriving(v, held("s"), b)
		if v.Speed < MinSpeed {
			t.Fatalf("tick %d: speed %v below min", tick, v.Speed)
		}
	}
	if v.Speed != MinSpeed {
		t.Errorf("sustained reverse should reach min speed, got %v", v.Speed)
	}
	if v.Position.Z >= 0 {
		t.Errorf("reversing at heading 0 should move towards -Z, got %v", v.Position)
	}
}

func TestStepDrivingFrictionDecay(t *testing.T) {
	b := controls.DefaultBindings()

	for _, start := range []float32{1.5, -1.0} {
		v := entity.NewVehicle(0, 0, 0)
		v.Speed = start

		prev := v.Speed
		for tick := 0; tick < 500; tick++ {
			StepDriving(v, held(), b)
			if !near(v.Speed, prev*Friction) {
				t.Fatalf("start %v tick %d: speed %v, want %v", start, tick, v.Speed, prev*Friction)
			}
			if (start > 0 && v.Speed < 0) || (start < 0 && v.Speed > 0) {
				t.Fatalf("start %v tick %d: speed changed sign to %v", start, tick, v.Speed)
			}
			prev = v.Speed
		}
		if gomath.Abs(float64(v.Speed)) > 1e-3 {
			t.Errorf("start %v: speed should decay towards zero, got %v", start, v.Speed)
		}
		if v.Moving {
			t.Error("vehicle should not report moving with no controls held")
		}
	}
}

func TestStepDrivingBrake(t *testing.T) {
	b := controls.DefaultBindings()

	tests := []struct {
		name string
		keys []string
		want float32
	}{
		{"brake only", []string{"space"}, 1.0 * BrakeFactor},
		{"brake with throttle", []string{"space", "w"}, (1.0 + Acceleration) * BrakeFactor},
		{"brake with reverse", []string{"space", "s"}, (1.0 - Acceleration) * BrakeFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := entity.NewVehicle(0, 0, 0)
			v.Speed = 1.0
			StepDriving(v, held(tt.keys...), b)
			if !near(v.Speed, tt.want) {
				t.Errorf("speed = %v, want %v", v.Speed, tt.want)
			}
		})
	}
}

func TestStepDrivingSteeringCoupledWithTranslation(t *testing.T) {
	b := controls.DefaultBindings()
	v := entity.NewVehicle(0, 0, 0)
	v.Speed = 1.0

	StepDriving(v, held("a", "w"), b)

	if !near(v.Heading, TurnRate) {
		t.Fatalf("heading = %v, want %v", v.Heading, TurnRate)
	}
	wantX := v.Speed * float32(gomath.Sin(TurnRate))
	wantZ := v.Speed * float32(gomath.Cos(TurnRate))
	if !near(v.Position.X, wantX) || !near(v.Position.Z, wantZ) {
		t.Errorf("position = %v, want (%v, 0, %v)", v.Position, wantX, wantZ)
	}
}

func TestStepDrivingMovingFlag(t *testing.T) {
	b := controls.DefaultBindings()

	tests := []struct {
		keys []string
		want bool
	}{
		{nil, false},
		{[]string{"space"}, false},
		{[]string{"a"}, true},
		{[]string{"d"}, true},
		{[]string{"w"}, true},
		{[]string{"s"}, true},
	}
	for _, tt := range tests {
		v := entity.NewVehicle(0, 0, 0)
		StepDriving(v, held(tt.keys...), b)
		if v.Moving != tt.want {
			t.Errorf("keys %v: moving = %v, want %v", tt.keys, v.Moving, tt.want)
		}
	}
}

func TestStepDrivingSpeedAlwaysInRange(t *testing.T) {
	b := controls.DefaultBindings()
	v := entity.NewVehicle(0, 0, 0)
	patterns := [][]string{{"w"}, {"w", "space"}, {"s"}, {}, {"s", "w"}, {"space"}, {"s", "a"}}

	for tick := 0; tick < 20000; tick++ {
		keys := patterns[(tick/700)%len(patterns)]
		StepDriving(v, held(keys...), b)
		if v.Speed < MinSpeed || v.Speed > MaxSpeed {
			t.Fatalf("tick %d: speed %v out of range", tick, v.Speed)
		}
	}
}
