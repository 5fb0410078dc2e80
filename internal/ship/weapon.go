package ship

import (
	"github.com/starlight-duel/starlight/internal/input"
	"github.com/starlight-duel/starlight/internal/player"
)

// Weapon receives fire requests from the ship. Fire may be called more
// than once per tick, once per input source.
type Weapon interface {
	// Update advances cooldown and charge; called once per tick before Fire.
	Update()
	Fire(e input.Edge)
	SetOwner(id player.AttackerID)
}

// FireMode selects how a Cannon turns input into shots.
type FireMode uint8

const (
	FireSemi   FireMode = iota // one shot per press
	FireAuto                   // shots while held, limited by cooldown
	FireCharge                 // charges while held, fires on release
)

// ParseFireMode maps "semi"/"auto"/"charge" to a mode.
func ParseFireMode(s string) (FireMode, bool) {
	switch s {
	case "semi":
		return FireSemi, true
	case "auto":
		return FireAuto, true
	case "charge":
		return FireCharge, true
	default:
		return FireSemi, false
	}
}

// Shot is one discharge.
type Shot struct {
	Owner  player.AttackerID
	Weapon string
	Damage int
	Charge float64 // 0..1, only for charge weapons
}

// CannonSpec configures a Cannon. Cooldown and ChargeTicks are in ticks.
type CannonSpec struct {
	Name        string
	Mode        FireMode
	Damage      int
	Cooldown    int
	ChargeTicks int
}

// Cannon is the stock Weapon. Shots go to the onFire callback.
type Cannon struct {
	spec     CannonSpec
	owner    player.AttackerID
	cooldown int
	charging bool
	pending  bool // released during cooldown
	charge   int
	fired    int
	onFire   func(Shot)
}

func NewCannon(spec CannonSpec, onFire func(Shot)) *Cannon {
	return &Cannon{spec: spec, onFire: onFire}
}

func (c *Cannon) Name() string                  { return c.spec.Name }
func (c *Cannon) Owner() player.AttackerID      { return c.owner }
func (c *Cannon) SetOwner(id player.AttackerID) { c.owner = id }
func (c *Cannon) Fired() int                    { return c.fired }
func (c *Cannon) Charging() bool                { return c.charging }

func (c *Cannon) Update() {
	if c.cooldown > 0 {
		c.cooldown--
	}
	if c.pending {
		if c.cooldown == 0 {
			c.discharge()
		}
		return
	}
	if c.charging && c.charge < c.spec.ChargeTicks {
		c.charge++
	}
}

func (c *Cannon) Fire(e input.Edge) {
	switch c.spec.Mode {
	case FireSemi:
		if e.Pressed {
			c.shoot(1)
		}
	case FireAuto:
		if e.Held {
			c.shoot(1)
		}
	case FireCharge:
		if e.Pressed && !c.charging {
			c.charging = true
			c.charge = 0
		}
		if e.Released && c.charging {
			c.discharge()
		}
	}
}

// discharge fires the held charge. Released during cooldown, the charge
// is kept and goes out on the first tick the cannon is ready.
func (c *Cannon) discharge() {
	if c.cooldown > 0 {
		c.pending = true
		return
	}
	level := 1.0
	if c.spec.ChargeTicks > 0 {
		level = float64(c.charge) / float64(c.spec.ChargeTicks)
	}
	c.charging = false
	c.pending = false
	c.charge = 0
	c.shoot(level)
}

func (c *Cannon) shoot(level float64) {
	if c.cooldown > 0 {
		return
	}
	c.cooldown = c.spec.Cooldown
	c.fired++
	if c.onFire == nil {
		return
	}
	damage := c.spec.Damage
	if c.spec.Mode == FireCharge {
		damage = int(float64(damage) * level)
	}
	c.onFire(Shot{Owner: c.owner, Weapon: c.spec.Name, Damage: damage, Charge: level})
}
