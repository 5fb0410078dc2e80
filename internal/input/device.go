package input

// Controller is a polled game controller. Pressed and Released are edge
// states for the current tick; Held is level state.
type Controller interface {
	ButtonPressed(b Button) bool
	ButtonHeld(b Button) bool
	ButtonReleased(b Button) bool
	StickValue(s Stick) float64
}

// Keyboard is a polled keyboard plus mouse buttons.
type Keyboard interface {
	KeyPressed(k Key) bool
	KeyHeld(k Key) bool
	KeyReleased(k Key) bool
}

// Edge is the pressed/held/released triple for one binding in one tick.
type Edge struct {
	Pressed  bool
	Held     bool
	Released bool
}

// Any reports whether any part of the edge is set.
func (e Edge) Any() bool { return e.Pressed || e.Held || e.Released }

// ButtonEdge samples a controller button.
func ButtonEdge(c Controller, b Button) Edge {
	return Edge{
		Pressed:  c.ButtonPressed(b),
		Held:     c.ButtonHeld(b),
		Released: c.ButtonReleased(b),
	}
}

// KeyEdge samples a keyboard key.
func KeyEdge(k Keyboard, key Key) Edge {
	return Edge{
		Pressed:  k.KeyPressed(key),
		Held:     k.KeyHeld(key),
		Released: k.KeyReleased(key),
	}
}
