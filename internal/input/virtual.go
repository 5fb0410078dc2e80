package input

// Virtual is a scriptable device implementing both Controller and
// Keyboard. It stands in for an unplugged controller and drives tests.
//
// Set* changes the current level state; Advance ends the tick so the
// next tick sees the current state as the previous one.
type Virtual struct {
	buttons     map[Button]bool
	prevButtons map[Button]bool
	keys        map[Key]bool
	prevKeys    map[Key]bool
	sticks      map[Stick]float64
}

// NewVirtual creates a device with nothing held.
func NewVirtual() *Virtual {
	return &Virtual{
		buttons:     make(map[Button]bool),
		prevButtons: make(map[Button]bool),
		keys:        make(map[Key]bool),
		prevKeys:    make(map[Key]bool),
		sticks:      make(map[Stick]float64),
	}
}

// SetButton holds or releases a button.
func (v *Virtual) SetButton(b Button, down bool) { v.buttons[b] = down }

// SetKey holds or releases a key.
func (v *Virtual) SetKey(k Key, down bool) { v.keys[k] = down }

// SetStick moves a stick axis. The value is clamped to [-1, 1].
func (v *Virtual) SetStick(s Stick, value float64) {
	v.sticks[s] = max(-1, min(1, value))
}

// Advance commits this tick's state as the previous state.
func (v *Virtual) Advance() {
	for b, down := range v.buttons {
		v.prevButtons[b] = down
	}
	for k, down := range v.keys {
		v.prevKeys[k] = down
	}
}

// Reset releases everything and clears edge history.
func (v *Virtual) Reset() {
	clear(v.buttons)
	clear(v.prevButtons)
	clear(v.keys)
	clear(v.prevKeys)
	clear(v.sticks)
}

func (v *Virtual) ButtonPressed(b Button) bool  { return v.buttons[b] && !v.prevButtons[b] }
func (v *Virtual) ButtonHeld(b Button) bool     { return v.buttons[b] }
func (v *Virtual) ButtonReleased(b Button) bool { return !v.buttons[b] && v.prevButtons[b] }
func (v *Virtual) StickValue(s Stick) float64   { return v.sticks[s] }

func (v *Virtual) KeyPressed(k Key) bool  { return v.keys[k] && !v.prevKeys[k] }
func (v *Virtual) KeyHeld(k Key) bool     { return v.keys[k] }
func (v *Virtual) KeyReleased(k Key) bool { return !v.keys[k] && v.prevKeys[k] }
