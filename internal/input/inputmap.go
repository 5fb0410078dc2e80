package input

import "fmt"

// Map holds one player's bindings. Every action has a controller button
// and an independent keyboard/mouse key; both are polled every tick.
type Map struct {
	// InvertY flips vertical movement. Toggled in play by the invert-Y binding.
	InvertY bool `yaml:"invert_y"`

	Controller ControllerBindings `yaml:"controller"`
	Keyboard   KeyboardBindings   `yaml:"keyboard"`
}

// ControllerBindings are the controller half of a Map.
type ControllerBindings struct {
	Pause Button `yaml:"pause"`

	MoveX Stick `yaml:"move_x"`
	MoveY Stick `yaml:"move_y"`
	AimX  Stick `yaml:"aim_x"`
	AimY  Stick `yaml:"aim_y"`

	MainFire      Button `yaml:"main_fire"`
	SecondaryFire Button `yaml:"secondary_fire"`
	Boost         Button `yaml:"boost"`
	Brake         Button `yaml:"brake"`
	RollRight     Button `yaml:"roll_right"`
	RollLeft      Button `yaml:"roll_left"`
	InvertY       Button `yaml:"invert_y"`
}

// KeyboardBindings are the keyboard/mouse half of a Map.
type KeyboardBindings struct {
	Pause Key `yaml:"pause"`

	MoveLeft  Key `yaml:"move_left"`
	MoveRight Key `yaml:"move_right"`
	MoveUp    Key `yaml:"move_up"`
	MoveDown  Key `yaml:"move_down"`

	MainFire      Key `yaml:"main_fire"`
	SecondaryFire Key `yaml:"secondary_fire"`
	Boost         Key `yaml:"boost"`
	Brake         Key `yaml:"brake"`
	RollRight     Key `yaml:"roll_right"`
	RollLeft      Key `yaml:"roll_left"`
	InvertY       Key `yaml:"invert_y"`
}

// DefaultMap returns the stock bindings.
func DefaultMap() Map {
	return Map{
		InvertY: true,
		Controller: ControllerBindings{
			Pause:         ButtonStart,
			MoveX:         StickLeftX,
			MoveY:         StickLeftY,
			AimX:          StickRightX,
			AimY:          StickRightY,
			MainFire:      ButtonA,
			SecondaryFire: ButtonB,
			Boost:         ButtonRightTrigger,
			Brake:         ButtonLeftTrigger,
			RollRight:     ButtonRightBumper,
			RollLeft:      ButtonLeftBumper,
			InvertY:       ButtonBack,
		},
		Keyboard: KeyboardBindings{
			Pause:         KeyEscape,
			MoveLeft:      KeyA,
			MoveRight:     KeyD,
			MoveUp:        KeyW,
			MoveDown:      KeyS,
			MainFire:      KeyMouse0,
			SecondaryFire: KeyMouse1,
			Boost:         KeySpace,
			Brake:         KeyShiftLeft,
			RollRight:     KeyE,
			RollLeft:      KeyQ,
			InvertY:       KeyI,
		},
	}
}

// AltKeyboard is the right-hand keyboard layout for a second player
// sharing the keyboard.
func AltKeyboard() KeyboardBindings {
	return KeyboardBindings{
		Pause:         KeyBackspace,
		MoveLeft:      KeyArrowLeft,
		MoveRight:     KeyArrowRight,
		MoveUp:        KeyArrowUp,
		MoveDown:      KeyArrowDown,
		MainFire:      KeyControlRight,
		SecondaryFire: KeyShiftRight,
		Boost:         KeyNumpad0,
		Brake:         KeyNumpad1,
		RollRight:     KeyP,
		RollLeft:      KeyO,
		InvertY:       KeyU,
	}
}

// Validate checks that every binding names a known button, stick or key.
func (m *Map) Validate() error {
	c := m.Controller
	buttons := map[string]Button{
		"pause": c.Pause, "main_fire": c.MainFire, "secondary_fire": c.SecondaryFire,
		"boost": c.Boost, "brake": c.Brake, "roll_right": c.RollRight,
		"roll_left": c.RollLeft, "invert_y": c.InvertY,
	}
	for name, b := range buttons {
		if !b.Valid() {
			return fmt.Errorf("controller.%s: unknown button %q", name, b)
		}
	}
	sticks := map[string]Stick{"move_x": c.MoveX, "move_y": c.MoveY, "aim_x": c.AimX, "aim_y": c.AimY}
	for name, s := range sticks {
		if !s.Valid() {
			return fmt.Errorf("controller.%s: unknown stick %q", name, s)
		}
	}

	k := m.Keyboard
	keys := map[string]Key{
		"pause": k.Pause, "move_left": k.MoveLeft, "move_right": k.MoveRight,
		"move_up": k.MoveUp, "move_down": k.MoveDown, "main_fire": k.MainFire,
		"secondary_fire": k.SecondaryFire, "boost": k.Boost, "brake": k.Brake,
		"roll_right": k.RollRight, "roll_left": k.RollLeft, "invert_y": k.InvertY,
	}
	for name, key := range keys {
		if !key.Valid() {
			return fmt.Errorf("keyboard.%s: unknown key %q", name, key)
		}
	}
	return nil
}
