package ship

import (
	"fmt"
	"log/slog"

	"github.com/starlight-duel/starlight/internal/input"
	"github.com/starlight-duel/starlight/internal/logger"
	"github.com/starlight-duel/starlight/internal/player"
)

// Pauser reports the match-wide pause switch.
type Pauser interface {
	Paused() bool
}

// ActionState is what the pilot is doing this tick. Boosting and
// Braking are never both set.
type ActionState struct {
	Boosting bool
	Braking  bool
	Tilting  bool
}

func (s ActionState) String() string {
	switch {
	case s.Boosting:
		return "boost"
	case s.Braking:
		return "brake"
	default:
		return "idle"
	}
}

// Tuning holds the per-ship feel numbers.
type Tuning struct {
	BoostPitch float64
	BrakePitch float64
	PitchRate  float64 // (0, 1)

	BoostSpeed float64 // movement multiplier while boosting
	BrakeSpeed float64 // movement multiplier while braking

	// RailZones lets rail-tagged zones switch a ship from free flight
	// back onto the rail. Off unless a level asks for it.
	RailZones bool
}

func DefaultTuning() Tuning {
	return Tuning{
		BoostPitch: 1.5,
		BrakePitch: 0.5,
		PitchRate:  0.8,
		BoostSpeed: 2,
		BrakeSpeed: 0.5,
	}
}

func (t Tuning) Validate() error {
	if !(t.PitchRate > 0 && t.PitchRate < 1) {
		return &ConfigError{Field: "pitch_rate", Err: fmt.Errorf("%w: %v", ErrInvalidTuning, t.PitchRate)}
	}
	if t.BoostSpeed <= 0 {
		return &ConfigError{Field: "boost_speed", Err: fmt.Errorf("%w: %v", ErrInvalidTuning, t.BoostSpeed)}
	}
	if t.BrakeSpeed <= 0 {
		return &ConfigError{Field: "brake_speed", Err: fmt.Errorf("%w: %v", ErrInvalidTuning, t.BrakeSpeed)}
	}
	return nil
}

// Config wires a Coordinator to its sub-actors. Everything but
// Secondary and Logger is required.
type Config struct {
	Name      string
	Hull      *Hull
	Energy    *EnergyPool
	Main      Weapon
	Secondary Weapon
	Free      Movement
	Rail      Movement
	Emitter   PitchEmitter
	Pause     Pauser
	Tuning    Tuning
	StartMode MovementMode
	Logger    *slog.Logger
}

// Coordinator runs one ship's per-tick state machine. A ship does
// nothing until a player.Registry hands it a slot.
type Coordinator struct {
	name      string
	hull      *Hull
	energy    *EnergyPool
	main      Weapon
	secondary Weapon
	free      Movement
	rail      Movement
	emitter   PitchEmitter
	pause     Pauser
	pitch     PitchInterpolator
	tuning    Tuning
	log       *slog.Logger

	binding  player.Binding
	owner    player.AttackerID
	active   bool
	mode     MovementMode
	state    ActionState
	vitals   Vitals
	breached bool
	steer    Steering
}

// NewCoordinator validates cfg and builds an unbound, inactive ship.
func NewCoordinator(cfg Config) (*Coordinator, error) {
	switch {
	case cfg.Hull == nil:
		return nil, missing("hull")
	case cfg.Energy == nil:
		return nil, missing("energy")
	case cfg.Main == nil:
		return nil, missing("main_weapon")
	case cfg.Free == nil:
		return nil, missing("free_movement")
	case cfg.Rail == nil:
		return nil, missing("rail_movement")
	case cfg.Emitter == nil:
		return nil, missing("emitter")
	case cfg.Pause == nil:
		return nil, missing("pauser")
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, err
	}
	pitch, err := NewPitchInterpolator(cfg.Emitter.Pitch(), cfg.Tuning.BoostPitch, cfg.Tuning.BrakePitch, cfg.Tuning.PitchRate)
	if err != nil {
		return nil, &ConfigError{Field: "pitch_rate", Err: err}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.L()
	}

	c := &Coordinator{
		name:      cfg.Name,
		hull:      cfg.Hull,
		energy:    cfg.Energy,
		main:      cfg.Main,
		secondary: cfg.Secondary,
		free:      cfg.Free,
		rail:      cfg.Rail,
		emitter:   cfg.Emitter,
		pause:     cfg.Pause,
		pitch:     pitch,
		tuning:    cfg.Tuning,
		log:       log.With("component", "ship", "ship", cfg.Name),
		mode:      cfg.StartMode,
	}
	c.movement(c.mode).Enable()
	c.movement(c.other()).Disable()
	c.vitals, _ = c.hull.Recompute()
	return c, nil
}

// AssignSlot implements player.Claimant.
func (c *Coordinator) AssignSlot(b player.Binding) {
	c.binding = b
	c.active = true
	c.PropagateOwnership(b.Slot)
	c.log.Info("Ship bound", "slot", b.Slot)
}

// Deactivate implements player.Claimant. The ship leaves play and drops
// its attribution.
func (c *Coordinator) Deactivate() {
	c.active = false
	c.binding = player.Binding{}
	c.state = ActionState{}
	c.PropagateOwnership(player.SlotNone)
	c.log.Info("Ship deactivated")
}

// PropagateOwnership stamps the slot's attacker ID on both weapons and
// every hull part.
func (c *Coordinator) PropagateOwnership(s player.Slot) {
	id := s.Attacker()
	c.owner = id
	c.main.SetOwner(id)
	if c.secondary != nil {
		c.secondary.SetOwner(id)
	}
	c.hull.SetOwner(id)
}

// Tick advances the ship by one frame.
func (c *Coordinator) Tick() {
	if c.pause.Paused() || !c.active {
		return
	}
	pad, keys, m := c.binding.Controller, c.binding.Keyboard, c.binding.Map

	c.main.Update()
	c.main.Fire(input.ButtonEdge(pad, m.Controller.MainFire))
	c.main.Fire(input.KeyEdge(keys, m.Keyboard.MainFire))
	if c.secondary != nil {
		c.secondary.Update()
		c.secondary.Fire(input.ButtonEdge(pad, m.Controller.SecondaryFire))
		c.secondary.Fire(input.KeyEdge(keys, m.Keyboard.SecondaryFire))
	}

	// Boost reads last tick's brake flag, brake reads this tick's boost.
	boost := pad.ButtonHeld(m.Controller.Boost) || keys.KeyHeld(m.Keyboard.Boost)
	c.state.Boosting = boost && !c.state.Braking && c.energy.CanAfford(UseBoost)
	brake := pad.ButtonHeld(m.Controller.Brake) || keys.KeyHeld(m.Keyboard.Brake)
	c.state.Braking = brake && !c.state.Boosting && c.energy.CanAfford(UseBrake)

	rollRight := pad.ButtonHeld(m.Controller.RollRight) || keys.KeyHeld(m.Keyboard.RollRight)
	rollLeft := pad.ButtonHeld(m.Controller.RollLeft) || keys.KeyHeld(m.Keyboard.RollLeft)
	c.state.Tilting = rollRight || rollLeft

	if pad.ButtonPressed(m.Controller.InvertY) || keys.KeyPressed(m.Keyboard.InvertY) {
		m.InvertY = !m.InvertY
		c.log.Debug("Invert Y toggled", "invert", m.InvertY)
	}

	c.vitals, c.breached = c.hull.Recompute()
	if c.breached {
		c.log.Info("Shield breached", "health", c.vitals.CurrentHealth)
	}

	c.emitter.SetPitch(c.pitch.Next(c.emitter.Pitch(), c.state))

	c.steer = c.steering(pad, keys, m, rollLeft, rollRight)
	c.movement(c.mode).Advance(c.steer)
}

func (c *Coordinator) steering(pad input.Controller, keys input.Keyboard, m *input.Map, rollLeft, rollRight bool) Steering {
	x := pad.StickValue(m.Controller.MoveX)
	y := pad.StickValue(m.Controller.MoveY)
	if keys.KeyHeld(m.Keyboard.MoveLeft) {
		x--
	}
	if keys.KeyHeld(m.Keyboard.MoveRight) {
		x++
	}
	if keys.KeyHeld(m.Keyboard.MoveUp) {
		y++
	}
	if keys.KeyHeld(m.Keyboard.MoveDown) {
		y--
	}
	if m.InvertY {
		y = -y
	}

	s := Steering{X: clamp1(x), Y: clamp1(y), Speed: 1}
	switch {
	case rollRight && !rollLeft:
		s.Roll = 1
	case rollLeft && !rollRight:
		s.Roll = -1
	}
	switch {
	case c.state.Boosting:
		s.Speed = c.tuning.BoostSpeed
	case c.state.Braking:
		s.Speed = c.tuning.BrakeSpeed
	}
	return s
}

// OnZoneEnter reacts to the ship entering z and reports whether the
// flight model changed. Rail zones only act when Tuning.RailZones is set.
func (c *Coordinator) OnZoneEnter(z Zone) bool {
	if !c.active || !z.Affects(c.binding.Slot) || z.Mode == c.mode {
		return false
	}
	if z.Mode == ModeRail && !c.tuning.RailZones {
		return false
	}

	from, to := c.movement(c.mode), c.movement(z.Mode)
	from.Teardown()
	from.Disable()
	to.Place(from.Position())
	to.Enable()

	c.log.Info("Movement mode switched", "zone", z.Name, "from", c.mode, "to", z.Mode)
	c.mode = z.Mode
	return true
}

// ToggleIFrames sets invulnerability on the cockpit, wings and engines.
// The shield keeps its own rules.
func (c *Coordinator) ToggleIFrames(on bool) {
	c.hull.ToggleIFrames(on)
}

// Damage routes a hit to one part and returns what it took. Inactive
// ships and friendly fire take nothing.
func (c *Coordinator) Damage(ref PartRef, amount int, from player.AttackerID) int {
	if !c.active {
		return 0
	}
	return c.hull.Damage(ref, amount, from)
}

// RestoreShield recharges the shield.
func (c *Coordinator) RestoreShield() {
	c.hull.RestoreShield()
}

func (c *Coordinator) movement(m MovementMode) Movement {
	if m == ModeRail {
		return c.rail
	}
	return c.free
}

func (c *Coordinator) other() MovementMode {
	if c.mode == ModeRail {
		return ModeFree
	}
	return ModeRail
}

func (c *Coordinator) Name() string             { return c.name }
func (c *Coordinator) Slot() player.Slot        { return c.binding.Slot }
func (c *Coordinator) Owner() player.AttackerID { return c.owner }
func (c *Coordinator) Active() bool             { return c.active }
func (c *Coordinator) Vitals() Vitals           { return c.vitals }
func (c *Coordinator) State() ActionState       { return c.state }
func (c *Coordinator) Mode() MovementMode       { return c.mode }
func (c *Coordinator) Pitch() float64           { return c.emitter.Pitch() }
func (c *Coordinator) Position() Vec            { return c.movement(c.mode).Position() }
func (c *Coordinator) Steering() Steering       { return c.steer }
func (c *Coordinator) Energy() *EnergyPool      { return c.energy }
func (c *Coordinator) Hull() *Hull              { return c.hull }
func (c *Coordinator) Binding() player.Binding  { return c.binding }

// ShieldBreached reports whether the last tick consumed a shield breach.
func (c *Coordinator) ShieldBreached() bool { return c.breached }

func clamp1(v float64) float64 {
	return max(-1, min(1, v))
}
