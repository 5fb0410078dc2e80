package input

// Button names a controller button on a standard (Xbox-style) layout.
type Button string

const (
	ButtonA            Button = "A"
	ButtonB            Button = "B"
	ButtonX            Button = "X"
	ButtonY            Button = "Y"
	ButtonLeftBumper   Button = "LeftBumper"
	ButtonRightBumper  Button = "RightBumper"
	ButtonLeftTrigger  Button = "LeftTrigger"
	ButtonRightTrigger Button = "RightTrigger"
	ButtonBack         Button = "Back"
	ButtonStart        Button = "Start"
	ButtonLeftStick    Button = "LeftStick"
	ButtonRightStick   Button = "RightStick"
	ButtonDPadUp       Button = "DPadUp"
	ButtonDPadDown     Button = "DPadDown"
	ButtonDPadLeft     Button = "DPadLeft"
	ButtonDPadRight    Button = "DPadRight"
)

// Buttons lists every known controller button.
var Buttons = []Button{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonLeftBumper, ButtonRightBumper, ButtonLeftTrigger, ButtonRightTrigger,
	ButtonBack, ButtonStart, ButtonLeftStick, ButtonRightStick,
	ButtonDPadUp, ButtonDPadDown, ButtonDPadLeft, ButtonDPadRight,
}

// Valid reports whether b is a known button.
func (b Button) Valid() bool {
	for _, known := range Buttons {
		if b == known {
			return true
		}
	}
	return false
}

// Stick names one axis of an analog stick. Values are in [-1, 1].
type Stick string

const (
	StickLeftX  Stick = "LeftX"
	StickLeftY  Stick = "LeftY"
	StickRightX Stick = "RightX"
	StickRightY Stick = "RightY"
)

// Sticks lists every known stick axis.
var Sticks = []Stick{StickLeftX, StickLeftY, StickRightX, StickRightY}

// Valid reports whether s is a known stick axis.
func (s Stick) Valid() bool {
	for _, known := range Sticks {
		if s == known {
			return true
		}
	}
	return false
}

// Key names a keyboard key or mouse button. Mouse buttons are treated
// as keys so a binding can point at either.
type Key string

const (
	KeyA            Key = "A"
	KeyD            Key = "D"
	KeyE            Key = "E"
	KeyI            Key = "I"
	KeyJ            Key = "J"
	KeyK            Key = "K"
	KeyL            Key = "L"
	KeyO            Key = "O"
	KeyP            Key = "P"
	KeyQ            Key = "Q"
	KeyS            Key = "S"
	KeyU            Key = "U"
	KeyW            Key = "W"
	KeySpace        Key = "Space"
	KeyEnter        Key = "Enter"
	KeyNumpadEnter  Key = "NumpadEnter"
	KeyEscape       Key = "Escape"
	KeyBackspace    Key = "Backspace"
	KeyShiftLeft    Key = "ShiftLeft"
	KeyShiftRight   Key = "ShiftRight"
	KeyControlRight Key = "ControlRight"
	KeyArrowUp      Key = "ArrowUp"
	KeyArrowDown    Key = "ArrowDown"
	KeyArrowLeft    Key = "ArrowLeft"
	KeyArrowRight   Key = "ArrowRight"
	KeyNumpad0      Key = "Numpad0"
	KeyNumpad1      Key = "Numpad1"
	KeyNumpad2      Key = "Numpad2"
	KeyNumpad3      Key = "Numpad3"
	KeyMouse0       Key = "Mouse0"
	KeyMouse1       Key = "Mouse1"
	KeyMouse2       Key = "Mouse2"
)

// Keys lists every known key.
var Keys = []Key{
	KeyA, KeyD, KeyE, KeyI, KeyJ, KeyK, KeyL, KeyO, KeyP, KeyQ, KeyS, KeyU, KeyW,
	KeySpace, KeyEnter, KeyNumpadEnter, KeyEscape, KeyBackspace,
	KeyShiftLeft, KeyShiftRight, KeyControlRight,
	KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight,
	KeyNumpad0, KeyNumpad1, KeyNumpad2, KeyNumpad3,
	KeyMouse0, KeyMouse1, KeyMouse2,
}

// Valid reports whether k is a known key.
func (k Key) Valid() bool {
	for _, known := range Keys {
		if k == known {
			return true
		}
	}
	return false
}

// IsMouse reports whether k is a mouse button.
func (k Key) IsMouse() bool {
	return k == KeyMouse0 || k == KeyMouse1 || k == KeyMouse2
}
