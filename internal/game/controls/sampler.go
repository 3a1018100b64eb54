// Package controls turns raw key events into per-tick input snapshots.
package controls

// Action is a one-shot command fired on the press edge of an action key.
type Action int

const (
	ActionNone Action = iota
	ActionApproach
	ActionExit
	ActionToggleView
	ActionScreenshot
)

var actionNames = [...]string{"none", "approach", "exit", "toggle_view", "screenshot"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// State is the set of held keys. Missing keys are not held.
type State map[string]bool

// Held reports whether key is currently down.
func (s State) Held(key string) bool {
	return s[NormalizeKey(key)]
}

// Frame is the input consumed by one tick.
type Frame struct {
	Held    State
	Actions []Action
}

// Sampler accumulates key events between ticks.
type Sampler struct {
	held    map[string]bool
	actions map[string]Action
	pending []Action
}

// NewSampler creates a sampler using the given bindings.
func NewSampler(b Bindings) *Sampler {
	return &Sampler{
		held:    make(map[string]bool),
		actions: b.actions(),
		pending: make([]Action, 0, 4),
	}
}

// SetBindings swaps the action key table. Held keys are kept.
func (s *Sampler) SetBindings(b Bindings) {
	s.actions = b.actions()
}

// KeyDown records a key press. An action key only fires when it was not
// already held, so OS key repeat never produces a second action.
func (s *Sampler) KeyDown(key string) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	wasHeld := s.held[key]
	s.held[key] = true
	if wasHeld {
		return
	}
	if a, ok := s.actions[key]; ok {
		s.pending = append(s.pending, a)
	}
}

// KeyRepeat records an OS auto-repeat of a held key. It never fires an
// action, even when the press itself was lost to a focus change.
func (s *Sampler) KeyRepeat(key string) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	s.held[key] = true
}

// KeyUp records a key release.
func (s *Sampler) KeyUp(key string) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	s.held[key] = false
}

// Reset releases every key. Actions already queued still reach the next
// tick.
func (s *Sampler) Reset() {
	clear(s.held)
}

// Sample returns a snapshot for the next tick and clears queued actions.
func (s *Sampler) Sample() Frame {
	held := make(State, len(s.held))
	for k, v := range s.held {
		if v {
			held[k] = true
		}
	}
	var actions []Action
	if len(s.pending) > 0 {
		actions = append([]Action(nil), s.pending...)
		s.pending = s.pending[:0]
	}
	return Frame{Held: held, Actions: actions}
}
