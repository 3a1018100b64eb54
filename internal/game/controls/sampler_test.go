package controls

import (
	"testing"
)

func TestSamplerHeldKeys(t *testing.T) {
	s := NewSampler(DefaultBindings())

	s.KeyDown("ArrowUp")
	s.KeyDown("W")
	f := s.Sample()
	if !f.Held.Held("arrowup") || !f.Held.Held("w") {
		t.Errorf("expected arrowup and w held, got %v", f.Held)
	}

	s.KeyUp("arrowup")
	f = s.Sample()
	if f.Held.Held("arrowup") {
		t.Error("arrowup should be released")
	}
	if !f.Held.Held("W") {
		t.Error("w should still be held (lookup is case-insensitive)")
	}
}

func TestSamplerSnapshotIsIsolated(t *testing.T) {
	s := NewSampler(DefaultBindings())
	s.KeyDown("a")
	f := s.Sample()

	s.KeyUp("a")
	s.KeyDown("d")
	if !f.Held.Held("a") || f.Held.Held("d") {
		t.Error("snapshot changed after later key events")
	}
}

func TestSamplerActionFiresOncePerPress(t *testing.T) {
	s := NewSampler(DefaultBindings())

	// Key repeat delivers several downs while the key stays held.
	s.KeyDown("c")
	s.KeyDown("c")
	s.KeyDown("C")
	f := s.Sample()
	if len(f.Actions) != 1 || f.Actions[0] != ActionToggleView {
		t.Fatalf("expected one toggle_view action, got %v", f.Actions)
	}

	// Still held on the next tick: no new action.
	if f = s.Sample(); len(f.Actions) != 0 {
		t.Errorf("expected no actions while held, got %v", f.Actions)
	}

	s.KeyUp("c")
	s.KeyDown("c")
	if f = s.Sample(); len(f.Actions) != 1 {
		t.Errorf("expected a new action after release and press, got %v", f.Actions)
	}
}

func TestSamplerQueuesActionsInOrder(t *testing.T) {
	s := NewSampler(DefaultBindings())
	s.KeyDown("y")
	s.KeyUp("y")
	s.KeyDown("f")
	s.KeyDown("y")

	f := s.Sample()
	want := []Action{ActionApproach, ActionExit, ActionApproach}
	if len(f.Actions) != len(want) {
		t.Fatalf("got %v, want %v", f.Actions, want)
	}
	for i := range want {
		if f.Actions[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, f.Actions[i], want[i])
		}
	}
}

func TestSamplerReset(t *testing.T) {
	s := NewSampler(DefaultBindings())
	s.KeyDown("w")
	s.KeyDown("f")
	s.Reset()

	f := s.Sample()
	if len(f.Held) != 0 {
		t.Errorf("expected no held keys after reset, got %v", f.Held)
	}
	if len(f.Actions) != 1 || f.Actions[0] != ActionExit {
		t.Errorf("action pressed before reset should survive, got %v", f.Actions)
	}

	if f = s.Sample(); len(f.Actions) != 0 {
		t.Errorf("action delivered twice: %v", f.Actions)
	}
}

func TestSamplerKeyRepeat(t *testing.T) {
	tests := []struct {
		name  string
		press bool // real press before the repeat
		reset bool // focus lost between press and repeat
	}{
		{"repeat only", false, false},
		{"after press", true, false},
		{"after focus loss", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(DefaultBindings())
			if tt.press {
				s.KeyDown("y")
				s.Sample()
			}
			if tt.reset {
				s.Reset()
			}
			s.KeyRepeat("Y")
			s.KeyRepeat("y")

			f := s.Sample()
			if len(f.Actions) != 0 {
				t.Errorf("repeat fired actions %v", f.Actions)
			}
			if !f.Held.Held("y") {
				t.Error("repeated key should be held")
			}
		})
	}
}

func TestSamplerModifierSides(t *testing.T) {
	s := NewSampler(DefaultBindings())
	s.KeyDown("leftshift")
	s.KeyDown("rightshift")
	s.KeyUp("leftshift")

	f := s.Sample()
	if f.Held.Held("leftshift") {
		t.Error("leftshift should be released")
	}
	if !f.Held.Held("rightshift") {
		t.Error("rightshift should stay held while only the left side was released")
	}
}

func TestSamplerSetBindings(t *testing.T) {
	s := NewSampler(DefaultBindings())
	b := DefaultBindings()
	b.Approach = "E"
	s.SetBindings(b)

	s.KeyDown("y")
	s.KeyDown("e")
	f := s.Sample()
	if len(f.Actions) != 1 || f.Actions[0] != ActionApproach {
		t.Errorf("expected approach bound to e, got %v", f.Actions)
	}
}

func TestSamplerIgnoresEmptyKey(t *testing.T) {
	s := NewSampler(DefaultBindings())
	s.KeyDown("   ")
	if f := s.Sample(); len(f.Held) != 0 {
		t.Errorf("blank key should be ignored, got %v", f.Held)
	}
}

func TestActionString(t *testing.T) {
	if ActionExit.String() != "exit" {
		t.Errorf("got %q", ActionExit.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("got %q", Action(99).String())
	}
}
