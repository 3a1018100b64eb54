package controls

import (
	"fmt"
	"strings"
)

// Bindings maps logical controls to key identifiers.
type Bindings struct {
	// Walking
	WalkForward  string `yaml:"walk_forward"`
	WalkBackward string `yaml:"walk_backward"`
	TurnLeft     string `yaml:"turn_left"`
	TurnRight    string `yaml:"turn_right"`

	// Driving
	Throttle   string `yaml:"throttle"`
	Reverse    string `yaml:"reverse"`
	SteerLeft  string `yaml:"steer_left"`
	SteerRight string `yaml:"steer_right"`
	Brake      string `yaml:"brake"`

	// One-shot actions
	Approach   string `yaml:"approach"`
	Exit       string `yaml:"exit"`
	ToggleView string `yaml:"toggle_view"`
	Screenshot string `yaml:"screenshot"`
}

// DefaultBindings returns the stock layout: arrows walk, WASD drives.
func DefaultBindings() Bindings {
	return Bindings{
		WalkForward:  "arrowup",
		WalkBackward: "arrowdown",
		TurnLeft:     "arrowleft",
		TurnRight:    "arrowright",

		Throttle:   "w",
		Reverse:    "s",
		SteerLeft:  "a",
		SteerRight: "d",
		Brake:      "space",

		Approach:   "y",
		Exit:       "f",
		ToggleView: "c",
		Screenshot: "f12",
	}
}

// Normalize lower-cases and trims every key.
func (b Bindings) Normalize() Bindings {
	for _, f := range b.fields() {
		*f.key = NormalizeKey(*f.key)
	}
	return b
}

// Validate reports empty keys and action keys shared with another control.
// Walking and driving controls may share keys since they are never read in
// the same mode; an action key must be unique.
func (b Bindings) Validate() error {
	b = b.Normalize()
	owners := make(map[string]string)
	for _, f := range b.fields() {
		if *f.key == "" {
			return fmt.Errorf("binding %q has no key", f.name)
		}
		if !f.action {
			owners[*f.key] = f.name
		}
	}
	for _, f := range b.fields() {
		if !f.action {
			continue
		}
		if owner, ok := owners[*f.key]; ok {
			return fmt.Errorf("binding %q: key %q already bound to %q", f.name, *f.key, owner)
		}
		owners[*f.key] = f.name
	}
	return nil
}

// actions returns the key to action table.
func (b Bindings) actions() map[string]Action {
	b = b.Normalize()
	return map[string]Action{
		b.Approach:   ActionApproach,
		b.Exit:       ActionExit,
		b.ToggleView: ActionToggleView,
		b.Screenshot: ActionScreenshot,
	}
}

type bindingField struct {
	name   string
	key    *string
	action bool
}

func (b *Bindings) fields() []bindingField {
	return []bindingField{
		{"walk_forward", &b.WalkForward, false},
		{"walk_backward", &b.WalkBackward, false},
		{"turn_left", &b.TurnLeft, false},
		{"turn_right", &b.TurnRight, false},
		{"throttle", &b.Throttle, false},
		{"reverse", &b.Reverse, false},
		{"steer_left", &b.SteerLeft, false},
		{"steer_right", &b.SteerRight, false},
		{"brake", &b.Brake, false},
		{"approach", &b.Approach, true},
		{"exit", &b.Exit, true},
		{"toggle_view", &b.ToggleView, true},
		{"screenshot", &b.Screenshot, true},
	}
}

// NormalizeKey returns the canonical form of a key identifier.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
