package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/starlight-duel/starlight/internal/input"
)

var standardButtons = map[input.Button]ebiten.StandardGamepadButton{
	input.ButtonA:            ebiten.StandardGamepadButtonRightBottom,
	input.ButtonB:            ebiten.StandardGamepadButtonRightRight,
	input.ButtonX:            ebiten.StandardGamepadButtonRightLeft,
	input.ButtonY:            ebiten.StandardGamepadButtonRightTop,
	input.ButtonLeftBumper:   ebiten.StandardGamepadButtonFrontTopLeft,
	input.ButtonRightBumper:  ebiten.StandardGamepadButtonFrontTopRight,
	input.ButtonLeftTrigger:  ebiten.StandardGamepadButtonFrontBottomLeft,
	input.ButtonRightTrigger: ebiten.StandardGamepadButtonFrontBottomRight,
	input.ButtonBack:         ebiten.StandardGamepadButtonCenterLeft,
	input.ButtonStart:        ebiten.StandardGamepadButtonCenterRight,
	input.ButtonLeftStick:    ebiten.StandardGamepadButtonLeftStick,
	input.ButtonRightStick:   ebiten.StandardGamepadButtonRightStick,
	input.ButtonDPadUp:       ebiten.StandardGamepadButtonLeftTop,
	input.ButtonDPadDown:     ebiten.StandardGamepadButtonLeftBottom,
	input.ButtonDPadLeft:     ebiten.StandardGamepadButtonLeftLeft,
	input.ButtonDPadRight:    ebiten.StandardGamepadButtonLeftRight,
}

var standardAxes = map[input.Stick]ebiten.StandardGamepadAxis{
	input.StickLeftX:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	input.StickLeftY:  ebiten.StandardGamepadAxisLeftStickVertical,
	input.StickRightX: ebiten.StandardGamepadAxisRightStickHorizontal,
	input.StickRightY: ebiten.StandardGamepadAxisRightStickVertical,
}

var keys = map[input.Key]ebiten.Key{
	input.KeyA:            ebiten.KeyA,
	input.KeyD:            ebiten.KeyD,
	input.KeyE:            ebiten.KeyE,
	input.KeyI:            ebiten.KeyI,
	input.KeyJ:            ebiten.KeyJ,
	input.KeyK:            ebiten.KeyK,
	input.KeyL:            ebiten.KeyL,
	input.KeyO:            ebiten.KeyO,
	input.KeyP:            ebiten.KeyP,
	input.KeyQ:            ebiten.KeyQ,
	input.KeyS:            ebiten.KeyS,
	input.KeyU:            ebiten.KeyU,
	input.KeyW:            ebiten.KeyW,
	input.KeySpace:        ebiten.KeySpace,
	input.KeyEnter:        ebiten.KeyEnter,
	input.KeyNumpadEnter:  ebiten.KeyNumpadEnter,
	input.KeyEscape:       ebiten.KeyEscape,
	input.KeyBackspace:    ebiten.KeyBackspace,
	input.KeyShiftLeft:    ebiten.KeyShiftLeft,
	input.KeyShiftRight:   ebiten.KeyShiftRight,
	input.KeyControlRight: ebiten.KeyControlRight,
	input.KeyArrowUp:      ebiten.KeyArrowUp,
	input.KeyArrowDown:    ebiten.KeyArrowDown,
	input.KeyArrowLeft:    ebiten.KeyArrowLeft,
	input.KeyArrowRight:   ebiten.KeyArrowRight,
	input.KeyNumpad0:      ebiten.KeyNumpad0,
	input.KeyNumpad1:      ebiten.KeyNumpad1,
	input.KeyNumpad2:      ebiten.KeyNumpad2,
	input.KeyNumpad3:      ebiten.KeyNumpad3,
}

var mouseButtons = map[input.Key]ebiten.MouseButton{
	input.KeyMouse0: ebiten.MouseButtonLeft,
	input.KeyMouse1: ebiten.MouseButtonRight,
	input.KeyMouse2: ebiten.MouseButtonMiddle,
}

// Gamepad reads one ebiten gamepad through the standard layout. An
// unplugged pad reads as idle.
type Gamepad struct {
	id        ebiten.GamepadID
	connected bool
}

func (g *Gamepad) Connected() bool { return g.connected }

func (g *Gamepad) usable() bool {
	return g.connected && ebiten.IsStandardGamepadLayoutAvailable(g.id)
}

func (g *Gamepad) ButtonPressed(b input.Button) bool {
	sb, ok := standardButtons[b]
	return ok && g.usable() && inpututil.IsStandardGamepadButtonJustPressed(g.id, sb)
}

func (g *Gamepad) ButtonHeld(b input.Button) bool {
	sb, ok := standardButtons[b]
	return ok && g.usable() && ebiten.IsStandardGamepadButtonPressed(g.id, sb)
}

func (g *Gamepad) ButtonReleased(b input.Button) bool {
	sb, ok := standardButtons[b]
	return ok && g.usable() && inpututil.IsStandardGamepadButtonJustReleased(g.id, sb)
}

func (g *Gamepad) StickValue(s input.Stick) float64 {
	axis, ok := standardAxes[s]
	if !ok || !g.usable() {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(g.id, axis)
}

// Pads hands out gamepads to player slots in connection order.
type Pads struct {
	pads [2]*Gamepad
	ids  []ebiten.GamepadID
}

func NewPads() *Pads {
	return &Pads{pads: [2]*Gamepad{{}, {}}}
}

// Pad returns the gamepad for seat i (0 or 1).
func (p *Pads) Pad(i int) *Gamepad { return p.pads[i] }

// Update rescans connected gamepads. Call once per frame before input
// is read.
func (p *Pads) Update() {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	for i, pad := range p.pads {
		if i < len(p.ids) {
			pad.id, pad.connected = p.ids[i], true
			continue
		}
		pad.connected = false
	}
}

// Keyboard is the shared keyboard and mouse. Both players may read it
// through different bindings.
type Keyboard struct{}

func (Keyboard) KeyPressed(k input.Key) bool {
	if mb, ok := mouseButtons[k]; ok {
		return inpututil.IsMouseButtonJustPressed(mb)
	}
	ek, ok := keys[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

func (Keyboard) KeyHeld(k input.Key) bool {
	if mb, ok := mouseButtons[k]; ok {
		return ebiten.IsMouseButtonPressed(mb)
	}
	ek, ok := keys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (Keyboard) KeyReleased(k input.Key) bool {
	if mb, ok := mouseButtons[k]; ok {
		return inpututil.IsMouseButtonJustReleased(mb)
	}
	ek, ok := keys[k]
	return ok && inpututil.IsKeyJustReleased(ek)
}
