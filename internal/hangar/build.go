package hangar

import (
	"log/slog"

	"github.com/starlight-duel/starlight/internal/ship"
)

// Loadout is everything a frame needs from the match to fly.
type Loadout struct {
	Name      string
	Costs     map[ship.EnergyUse]float64
	Tuning    ship.Tuning
	StartMode ship.MovementMode
	Start     ship.Vec
	Heading   ship.Vec // rail direction
	Emitter   ship.PitchEmitter
	Pause     ship.Pauser
	OnFire    func(ship.Shot)
	Logger    *slog.Logger
}

// Build assembles an unbound ship from the frame.
func (f *Frame) Build(l Loadout) (*ship.Coordinator, error) {
	hull, err := ship.NewHull(f.HullSpec())
	if err != nil {
		return nil, err
	}
	mainSpec, err := f.Main.spec()
	if err != nil {
		return nil, err
	}
	cfg := ship.Config{
		Name:      l.Name,
		Hull:      hull,
		Energy:    ship.NewEnergyPool(f.Energy, l.Costs),
		Main:      ship.NewCannon(mainSpec, l.OnFire),
		Free:      ship.NewFreeFlight(l.Start, f.Flight.FreeAccel),
		Rail:      ship.NewRailFlight(l.Start, l.Heading, f.Flight.RailSpeed, f.Flight.RailLane),
		Emitter:   l.Emitter,
		Pause:     l.Pause,
		Tuning:    l.Tuning,
		StartMode: l.StartMode,
		Logger:    l.Logger,
	}
	if f.Secondary != nil {
		spec, err := f.Secondary.spec()
		if err != nil {
			return nil, err
		}
		cfg.Secondary = ship.NewCannon(spec, l.OnFire)
	}
	if cfg.Name == "" {
		cfg.Name = f.Name
	}
	return ship.NewCoordinator(cfg)
}
