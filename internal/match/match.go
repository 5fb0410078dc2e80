package match

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/starlight-duel/starlight/internal/hangar"
	"github.com/starlight-duel/starlight/internal/logger"
	"github.com/starlight-duel/starlight/internal/player"
	"github.com/starlight-duel/starlight/internal/ship"
)

var ErrNoOpponent = errors.New("match needs two ships")

// Options are the match rules.
type Options struct {
	Costs     map[ship.EnergyUse]float64
	Tuning    ship.Tuning
	StartMode ship.MovementMode

	SpawnGraceTicks     int
	HitBand             float64 // max lateral distance for a hit
	ShieldRechargeTicks int     // 0 leaves a breached shield down
	EnergyDrain         bool
	EnergyRegen         float64
}

// Spawn places one ship.
type Spawn struct {
	Slot    player.Slot
	Frame   *hangar.Frame
	Emitter ship.PitchEmitter
	At      ship.Vec
	Heading ship.Vec
}

type pilot struct {
	ship       *ship.Coordinator
	frame      *hangar.Frame
	grace      int
	recharge   int
	shieldDown bool
	inside     []bool // per zone volume, last tick
	destroyed  bool
}

// Match is the session context: it owns the slot registry, the pause
// switch, zone volumes and shot resolution for two ships.
type Match struct {
	reg     *player.Registry
	opts    Options
	pilots  [3]*pilot // by slot
	volumes []Volume
	shots   []ship.Shot
	comms   *Comms
	paused  bool
	tick    int
	winner  player.Slot
	over    bool
	log     *slog.Logger
}

func New(reg *player.Registry, opts Options) *Match {
	return &Match{
		reg:   reg,
		opts:  opts,
		comms: NewComms(50, 40),
		log:   logger.L().With("component", "match"),
	}
}

// Paused implements ship.Pauser.
func (m *Match) Paused() bool { return m.paused }

// SetPaused forces the pause switch.
func (m *Match) SetPaused(p bool) {
	if m.paused == p {
		return
	}
	m.paused = p
	if p {
		m.comms.Add(m.tick, "Match paused", PrioritySystem)
	} else {
		m.comms.Add(m.tick, "Match resumed", PrioritySystem)
	}
	m.log.Info("Pause toggled", "paused", p)
}

func (m *Match) Registry() *player.Registry { return m.reg }
func (m *Match) Comms() *Comms              { return m.comms }
func (m *Match) Tick() int                  { return m.tick }

// Over reports whether a ship has been destroyed.
func (m *Match) Over() bool { return m.over }

// Winner is the surviving slot once the match is over, SlotNone on a
// draw.
func (m *Match) Winner() player.Slot { return m.winner }

// Ship returns the ship flying in slot s, if any.
func (m *Match) Ship(s player.Slot) *ship.Coordinator {
	if p := m.pilot(s); p != nil {
		return p.ship
	}
	return nil
}

// Frame returns the frame the ship in slot s was built from.
func (m *Match) Frame(s player.Slot) *hangar.Frame {
	if p := m.pilot(s); p != nil {
		return p.frame
	}
	return nil
}

// AddVolume registers a zone trigger box.
func (m *Match) AddVolume(v Volume) {
	m.volumes = append(m.volumes, v)
	for _, p := range m.pilots {
		if p != nil {
			p.inside = append(p.inside, false)
		}
	}
}

// Join builds a ship from sp.Frame and binds it. The ship may land in
// the other slot if sp.Slot is taken; it starts with spawn i-frames.
func (m *Match) Join(sp Spawn) (*ship.Coordinator, error) {
	emitter := sp.Emitter
	if emitter == nil {
		emitter = ship.NewSilentEmitter(1)
	}
	c, err := sp.Frame.Build(hangar.Loadout{
		Name:      fmt.Sprintf("%s-%s", sp.Frame.Name, sp.Slot),
		Costs:     m.opts.Costs,
		Tuning:    m.opts.Tuning,
		StartMode: m.opts.StartMode,
		Start:     sp.At,
		Heading:   sp.Heading,
		Emitter:   emitter,
		Pause:     m,
		OnFire:    m.queueShot,
	})
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", sp.Frame.Name, err)
	}
	b, err := m.reg.Bind(sp.Slot, c)
	if err != nil {
		return nil, err
	}

	p := &pilot{ship: c, frame: sp.Frame, inside: make([]bool, len(m.volumes))}
	m.pilots[b.Slot] = p
	m.grantGrace(p)
	m.comms.Add(m.tick, fmt.Sprintf("%s launched as %s", sp.Frame.Name, b.Slot), PriorityInfo)
	return c, nil
}

// Swap moves both ships to the opposite slots through Rebind.
func (m *Match) Swap() error {
	a, b := m.pilots[player.P1], m.pilots[player.P2]
	if a == nil || b == nil {
		return fmt.Errorf("swap: %w", ErrNoOpponent)
	}
	// a is evicted by the first rebind and reclaims P2 with the second
	if _, err := m.reg.Rebind(player.P1, b.ship); err != nil {
		return err
	}
	if _, err := m.reg.Rebind(player.P2, a.ship); err != nil {
		return err
	}
	m.pilots[player.P1], m.pilots[player.P2] = b, a
	m.comms.Add(m.tick, "Pilots swapped seats", PrioritySystem)
	return nil
}

// Update runs one match tick.
func (m *Match) Update() {
	m.pollPause()
	if m.paused || m.Over() {
		return
	}
	m.tick++

	for _, s := range player.Slots {
		if p := m.pilot(s); p != nil {
			p.ship.Tick()
		}
	}
	for _, s := range player.Slots {
		p := m.pilot(s)
		if p == nil || !p.ship.Active() {
			continue
		}
		m.checkZones(p)
		m.countdown(p)
		m.spendEnergy(p)
	}
	m.resolveShots()
	m.checkDestroyed()
}

func (m *Match) pollPause() {
	for _, s := range player.Slots {
		b := m.reg.Binding(s)
		if b.Map == nil || m.reg.Holder(s) == nil {
			continue
		}
		if b.Controller.ButtonPressed(b.Map.Controller.Pause) || b.Keyboard.KeyPressed(b.Map.Keyboard.Pause) {
			m.SetPaused(!m.paused)
			return
		}
	}
}

func (m *Match) checkZones(p *pilot) {
	pos := p.ship.Position()
	for i, v := range m.volumes {
		in := v.Contains(pos)
		if in && !p.inside[i] && p.ship.OnZoneEnter(v.Zone) {
			m.comms.Add(m.tick, fmt.Sprintf("%s entered %s, %s flight", p.ship.Slot(), v.Zone.Name, p.ship.Mode()), PriorityInfo)
		}
		p.inside[i] = in
	}
}

func (m *Match) countdown(p *pilot) {
	if p.grace > 0 {
		p.grace--
		if p.grace == 0 {
			p.ship.ToggleIFrames(false)
			m.log.Debug("Spawn grace over", "slot", p.ship.Slot())
		}
	}

	// the shield is down once its charge is gone, whether the last hit
	// pierced it or drained it exactly
	v := p.ship.Vitals()
	down := p.ship.ShieldBreached() || (v.MaxShield > 0 && v.CurrentShield <= 0)
	switch {
	case down && !p.shieldDown:
		p.shieldDown = true
		p.recharge = m.opts.ShieldRechargeTicks
		what := "down"
		if p.ship.ShieldBreached() {
			what = "breached"
		}
		m.comms.Add(m.tick, fmt.Sprintf("%s shield %s", p.ship.Slot(), what), PriorityWarning)
	case p.shieldDown && p.recharge > 0:
		p.recharge--
		if p.recharge == 0 {
			p.ship.RestoreShield()
			p.shieldDown = false
			m.comms.Add(m.tick, fmt.Sprintf("%s shield restored", p.ship.Slot()), PriorityInfo)
		}
	}
}

// spendEnergy is the debit side of boost and brake. Ships only check
// the pool; draining is a match rule.
func (m *Match) spendEnergy(p *pilot) {
	if !m.opts.EnergyDrain {
		return
	}
	pool := p.ship.Energy()
	st := p.ship.State()
	switch {
	case st.Boosting:
		pool.Set(pool.Current() - pool.Cost(ship.UseBoost)/60)
	case st.Braking:
		pool.Set(pool.Current() - pool.Cost(ship.UseBrake)/60)
	default:
		pool.Set(pool.Current() + m.opts.EnergyRegen)
	}
}

func (m *Match) queueShot(s ship.Shot) {
	m.shots = append(m.shots, s)
}

// resolveShots fires each queued shot straight along the shooter's
// lane; the opponent is hit when it sits within the hit band.
func (m *Match) resolveShots() {
	for _, s := range m.shots {
		from := m.pilot(s.Owner.Slot())
		to := m.pilot(s.Owner.Slot().Other())
		if from == nil || to == nil || !to.ship.Active() {
			continue
		}
		if math.Abs(to.ship.Position().Y-from.ship.Position().Y) > m.opts.HitBand {
			continue
		}
		ref := to.ship.Hull().Exposed()
		if n := to.ship.Damage(ref, s.Damage, s.Owner); n > 0 {
			m.log.Debug("Hit", "weapon", s.Weapon, "target", to.ship.Slot(), "part", ref.Kind, "damage", n)
		}
	}
	m.shots = m.shots[:0]
}

// checkDestroyed ends the match once a ship is spent. Both going down
// in the same tick is a draw: the match is over with no winner.
func (m *Match) checkDestroyed() {
	var lost []player.Slot
	for _, s := range player.Slots {
		p := m.pilot(s)
		if p == nil || p.destroyed || !p.ship.Vitals().Destroyed() {
			continue
		}
		p.destroyed = true
		lost = append(lost, s)
		m.log.Info("Ship destroyed", "slot", s, "tick", m.tick)
	}
	switch len(lost) {
	case 0:
		return
	case 1:
		m.winner = lost[0].Other()
		m.comms.Add(m.tick, fmt.Sprintf("%s destroyed. %s wins", lost[0], m.winner), PriorityCritical)
	default:
		m.winner = player.SlotNone
		m.comms.Add(m.tick, "Both ships destroyed. Draw", PriorityCritical)
	}
	m.over = true
}

func (m *Match) grantGrace(p *pilot) {
	if m.opts.SpawnGraceTicks <= 0 {
		return
	}
	p.grace = m.opts.SpawnGraceTicks
	p.ship.ToggleIFrames(true)
}

func (m *Match) pilot(s player.Slot) *pilot {
	if !s.Valid() {
		return nil
	}
	return m.pilots[s]
}
