package input

import (
	"strings"
	"testing"
)

func TestVirtualEdges(t *testing.T) {
	v := NewVirtual()

	v.SetButton(ButtonA, true)
	if !v.ButtonPressed(ButtonA) || !v.ButtonHeld(ButtonA) || v.ButtonReleased(ButtonA) {
		t.Fatalf("first tick: want pressed+held, got %+v", ButtonEdge(v, ButtonA))
	}

	v.Advance()
	if v.ButtonPressed(ButtonA) || !v.ButtonHeld(ButtonA) {
		t.Fatalf("second tick: want held only, got %+v", ButtonEdge(v, ButtonA))
	}

	v.Advance()
	v.SetButton(ButtonA, false)
	if e := ButtonEdge(v, ButtonA); e != (Edge{Released: true}) {
		t.Fatalf("release tick: got %+v", e)
	}

	v.Advance()
	if ButtonEdge(v, ButtonA).Any() {
		t.Fatalf("idle tick: expected no edge")
	}
}

func TestVirtualKeysAndSticks(t *testing.T) {
	v := NewVirtual()
	v.SetKey(KeySpace, true)
	if e := KeyEdge(v, KeySpace); !e.Pressed || !e.Held {
		t.Errorf("KeyEdge = %+v, want pressed+held", e)
	}

	v.SetStick(StickLeftY, -3)
	if got := v.StickValue(StickLeftY); got != -1 {
		t.Errorf("StickValue clamped = %v, want -1", got)
	}

	v.Reset()
	if v.KeyHeld(KeySpace) || v.StickValue(StickLeftY) != 0 {
		t.Error("Reset left state behind")
	}
}

func TestDefaultMapValid(t *testing.T) {
	m := DefaultMap()
	if err := m.Validate(); err != nil {
		t.Fatalf("default map invalid: %v", err)
	}
	if !m.InvertY {
		t.Error("default map should invert Y")
	}
	if m.Controller.Boost != ButtonRightTrigger || m.Keyboard.Boost != KeySpace {
		t.Errorf("boost bindings = %q/%q", m.Controller.Boost, m.Keyboard.Boost)
	}
}

func TestMapValidateRejectsUnknown(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Map)
		want   string
	}{
		{"button", func(m *Map) { m.Controller.Boost = "Turbo" }, "controller.boost"},
		{"stick", func(m *Map) { m.Controller.AimX = "ThirdStick" }, "controller.aim_x"},
		{"key", func(m *Map) { m.Keyboard.Pause = "F13" }, "keyboard.pause"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMap()
			tt.mutate(&m)
			err := m.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestMouseKeys(t *testing.T) {
	if !KeyMouse1.IsMouse() || KeySpace.IsMouse() {
		t.Error("IsMouse misclassified")
	}
}
