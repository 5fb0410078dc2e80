package hangar

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/starlight-duel/starlight/internal/ship"
)

var ErrInvalidFrame = errors.New("invalid ship frame")

// Frame is the JSON definition of a ship: its parts, weapons, flight
// numbers and the sprite the HUD draws it with.
type Frame struct {
	Name      string     `json:"name"`
	Class     string     `json:"class"`
	MaxHealth int        `json:"max_health"`
	Energy    float64    `json:"energy"`
	Shield    PartDef    `json:"shield"`
	Cockpit   PartDef    `json:"cockpit"`
	Wings     []PartDef  `json:"wings"`
	Engines   []PartDef  `json:"engines"`
	Main      WeaponDef  `json:"main"`
	Secondary *WeaponDef `json:"secondary,omitempty"`
	Flight    FlightDef  `json:"flight"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Sprite    []string   `json:"sprite"`
}

// PartDef sizes one sub-actor.
type PartDef struct {
	Health int `json:"health"`
	Charge int `json:"charge,omitempty"`
}

// WeaponDef configures a cannon. Cooldown and charge are in ticks.
type WeaponDef struct {
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	Damage      int    `json:"damage"`
	Cooldown    int    `json:"cooldown"`
	ChargeTicks int    `json:"charge_ticks"`
}

// FlightDef holds the movement model numbers.
type FlightDef struct {
	FreeAccel float64 `json:"free_accel"`
	RailSpeed float64 `json:"rail_speed"`
	RailLane  float64 `json:"rail_lane"`
}

// LoadFrame parses and checks a Frame from JSON bytes.
func LoadFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse ship frame: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("frame %q: %w", f.Name, err)
	}
	return &f, nil
}

func (f *Frame) validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: no name", ErrInvalidFrame)
	}
	if len(f.Sprite) != f.Height {
		return fmt.Errorf("%w: sprite rows (%d) != declared height (%d)", ErrInvalidFrame, len(f.Sprite), f.Height)
	}
	if f.Energy <= 0 {
		return fmt.Errorf("%w: energy %v", ErrInvalidFrame, f.Energy)
	}
	if _, err := f.Main.spec(); err != nil {
		return fmt.Errorf("main: %w", err)
	}
	if f.Secondary != nil {
		if _, err := f.Secondary.spec(); err != nil {
			return fmt.Errorf("secondary: %w", err)
		}
	}
	for y, row := range f.Sprite {
		for x, ch := range row {
			ref, ok := charToPart(ch)
			if !ok {
				continue
			}
			if (ref.Kind == ship.PartWing && ref.Index >= len(f.Wings)) ||
				(ref.Kind == ship.PartEngine && ref.Index >= len(f.Engines)) {
				return fmt.Errorf("%w: sprite (%d,%d) names %s %d", ErrInvalidFrame, x, y, ref.Kind, ref.Index)
			}
		}
	}
	return nil
}

// HullSpec converts the frame's parts for ship.NewHull.
func (f *Frame) HullSpec() ship.HullSpec {
	spec := ship.HullSpec{
		MaxHealth: f.MaxHealth,
		Shield:    f.Shield.spec(),
		Cockpit:   f.Cockpit.spec(),
	}
	for _, w := range f.Wings {
		spec.Wings = append(spec.Wings, w.spec())
	}
	for _, e := range f.Engines {
		spec.Engines = append(spec.Engines, e.spec())
	}
	return spec
}

// PartAt returns the part drawn at sprite cell (x, y).
func (f *Frame) PartAt(x, y int) (ship.PartRef, bool) {
	if y < 0 || y >= len(f.Sprite) || x < 0 {
		return ship.PartRef{}, false
	}
	row := []rune(f.Sprite[y])
	if x >= len(row) || x >= f.Width {
		return ship.PartRef{}, false
	}
	return charToPart(row[x])
}

func (p PartDef) spec() ship.PartSpec {
	return ship.PartSpec{Health: p.Health, ShieldCharge: p.Charge}
}

func (w WeaponDef) spec() (ship.CannonSpec, error) {
	mode, ok := ship.ParseFireMode(w.Mode)
	if !ok {
		return ship.CannonSpec{}, fmt.Errorf("%w: fire mode %q", ErrInvalidFrame, w.Mode)
	}
	if w.Damage <= 0 {
		return ship.CannonSpec{}, fmt.Errorf("%w: damage %d", ErrInvalidFrame, w.Damage)
	}
	return ship.CannonSpec{
		Name:        w.Name,
		Mode:        mode,
		Damage:      w.Damage,
		Cooldown:    w.Cooldown,
		ChargeTicks: w.ChargeTicks,
	}, nil
}

// Sprite legend: C cockpit, a-h wings, 1-9 engines. Anything else is
// plating or empty space.
func charToPart(ch rune) (ship.PartRef, bool) {
	switch {
	case ch == 'C':
		return ship.PartRef{Kind: ship.PartCockpit}, true
	case ch >= 'a' && ch <= 'h':
		return ship.PartRef{Kind: ship.PartWing, Index: int(ch - 'a')}, true
	case ch >= '1' && ch <= '9':
		return ship.PartRef{Kind: ship.PartEngine, Index: int(ch - '1')}, true
	default:
		return ship.PartRef{}, false
	}
}
