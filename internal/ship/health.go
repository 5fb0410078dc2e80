package ship

import "github.com/starlight-duel/starlight/internal/player"

// PartKind identifies a ship sub-actor.
type PartKind uint8

const (
	PartShield PartKind = iota
	PartWing
	PartEngine
	PartCockpit
)

func (k PartKind) String() string {
	switch k {
	case PartShield:
		return "shield"
	case PartWing:
		return "wing"
	case PartEngine:
		return "engine"
	case PartCockpit:
		return "cockpit"
	default:
		return "unknown"
	}
}

// PartRef addresses one sub-actor. Index is only meaningful for wings
// and engines.
type PartRef struct {
	Kind  PartKind
	Index int
}

// Health is the damage state of one sub-actor.
type Health struct {
	Current int
	Max     int

	ShieldCharge    int // absorbing capacity; only the shield has any
	MaxShieldCharge int

	Invulnerable bool // i-frames, set externally
	Active       bool // false while the shield covers this part
}

// NewHealth returns a full-health, active part.
func NewHealth(maxHealth, shieldCharge int) Health {
	return Health{
		Current:         maxHealth,
		Max:             maxHealth,
		ShieldCharge:    shieldCharge,
		MaxShieldCharge: shieldCharge,
		Active:          true,
	}
}

// Lost returns the damage this part has taken.
func (h *Health) Lost() int { return h.Max - h.Current }

// Absorb applies a hit and returns how much was taken. Shield charge
// soaks first; the rest comes off Current, which never goes below zero.
func (h *Health) Absorb(amount int) int {
	if amount <= 0 || h.Invulnerable || !h.Active {
		return 0
	}
	soaked := min(amount, h.ShieldCharge)
	h.ShieldCharge -= soaked
	pierced := min(amount-soaked, h.Current)
	h.Current -= pierced
	return soaked + pierced
}

// Part is the ECS tag naming what a hull entity is.
type Part struct {
	Kind  PartKind
	Index int
}

// Owner is the ECS component carrying damage attribution.
type Owner struct {
	ID player.AttackerID
}
