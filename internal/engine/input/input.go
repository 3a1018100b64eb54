// Package input handles SDL2 input events.
package input

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusLost
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    string // lower-case key name
	Repeat bool   // OS key repeat
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
func (i *Input) Update() {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				i.events = append(i.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			name := KeyName(e.Keysym.Sym)
			if name == "" {
				continue
			}
			switch e.Type {
			case sdl.KEYDOWN:
				i.events = append(i.events, Event{Type: EventKeyDown, Key: name, Repeat: e.Repeat != 0})
			case sdl.KEYUP:
				i.events = append(i.events, Event{Type: EventKeyUp, Key: name})
			}
		}
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// keyNames overrides SDL's names for keys whose SDL name is ambiguous or
// contains spaces.
var keyNames = map[sdl.Keycode]string{
	sdl.K_UP:        "arrowup",
	sdl.K_DOWN:      "arrowdown",
	sdl.K_LEFT:      "arrowleft",
	sdl.K_RIGHT:     "arrowright",
	sdl.K_SPACE:     "space",
	sdl.K_ESCAPE:    "escape",
	sdl.K_RETURN:    "enter",
	sdl.K_BACKSPACE: "backspace",
	sdl.K_TAB:       "tab",
}

// KeyName returns the binding identifier for an SDL keycode, or "" for
// keys SDL cannot name. Modifiers keep their side ("leftshift",
// "rightctrl") so each side is held and released on its own.
func KeyName(sym sdl.Keycode) string {
	if name, ok := keyNames[sym]; ok {
		return name
	}
	name := sdl.GetKeyName(sym)
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}
