package ui

import "github.com/starlight-duel/starlight/internal/input"

// Stick deflection that counts as a menu direction.
const stickThreshold = 0.5

// Navigator moves one player's highlight around a menu. Direction input
// is rate limited by the move delay; confirm is not.
type Navigator struct {
	pad  input.Controller
	keys input.Keyboard

	start   Selectable
	current Selectable

	moveDelay float64
	wait      float64
	padding   int
}

// NewNavigator highlights start. moveDelay is in seconds.
func NewNavigator(start Selectable, pad input.Controller, keys input.Keyboard, moveDelay float64, padding int) *Navigator {
	n := &Navigator{pad: pad, keys: keys, start: start, moveDelay: moveDelay, padding: padding}
	n.Reset()
	return n
}

// Attach swaps the input devices, e.g. after a slot swap.
func (n *Navigator) Attach(pad input.Controller, keys input.Keyboard) {
	n.pad, n.keys = pad, keys
}

// Reset returns the highlight to the starting widget, as when the menu
// is shown again.
func (n *Navigator) Reset() {
	n.moveTo(n.start)
}

func (n *Navigator) Current() Selectable { return n.current }

// Highlight is the current widget's bounds grown by the padding.
func (n *Navigator) Highlight() Rect {
	if n.current == nil {
		return Rect{}
	}
	return n.current.Bounds().Grow(n.padding)
}

// Update runs one frame of dt seconds.
func (n *Navigator) Update(dt float64) {
	if n.current == nil {
		return
	}
	if n.confirmed() {
		n.current.Activate()
	}

	if n.wait > 0 {
		n.wait -= dt
		return
	}

	links := n.current.Nav()
	y := -n.pad.StickValue(input.StickLeftY)
	x := n.pad.StickValue(input.StickLeftX)
	switch {
	case n.pad.ButtonPressed(input.ButtonDPadUp) || y > stickThreshold ||
		n.keys.KeyHeld(input.KeyW) || n.keys.KeyHeld(input.KeyArrowUp):
		n.follow(links.Up)
	case n.pad.ButtonPressed(input.ButtonDPadDown) || y < -stickThreshold ||
		n.keys.KeyHeld(input.KeyS) || n.keys.KeyHeld(input.KeyArrowDown):
		n.follow(links.Down)
	case n.pad.ButtonPressed(input.ButtonDPadLeft) || x < -stickThreshold ||
		n.keys.KeyHeld(input.KeyA) || n.keys.KeyHeld(input.KeyArrowLeft):
		n.follow(links.Left)
	case n.pad.ButtonPressed(input.ButtonDPadRight) || x > stickThreshold ||
		n.keys.KeyHeld(input.KeyD) || n.keys.KeyHeld(input.KeyArrowRight):
		n.follow(links.Right)
	}
}

func (n *Navigator) confirmed() bool {
	return n.pad.ButtonPressed(input.ButtonA) ||
		n.keys.KeyPressed(input.KeyEnter) ||
		n.keys.KeyPressed(input.KeySpace) ||
		n.keys.KeyPressed(input.KeyNumpadEnter)
}

func (n *Navigator) follow(next Selectable) {
	if next != nil {
		n.moveTo(next)
	}
}

func (n *Navigator) moveTo(s Selectable) {
	n.current = s
	n.wait = n.moveDelay
}
