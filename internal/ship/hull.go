package ship

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"github.com/starlight-duel/starlight/internal/player"
)

// PartSpec sizes one sub-actor.
type PartSpec struct {
	Health       int
	ShieldCharge int
}

// HullSpec describes every sub-actor a ship spawns with.
type HullSpec struct {
	MaxHealth int
	Shield    PartSpec
	Cockpit   PartSpec
	Wings     []PartSpec
	Engines   []PartSpec
}

// Hull owns a ship's sub-actors. Each one is an entity in the hull's
// ECS world carrying Health, Part and Owner components.
type Hull struct {
	world  *ecs.World
	health *ecs.Map[Health]
	owners *ecs.Map[Owner]
	byPart *ecs.Filter2[Health, Part]
	all    *ecs.Filter1[Owner]

	shield  ecs.Entity
	cockpit ecs.Entity
	wings   []ecs.Entity
	engines []ecs.Entity

	maxHealth int

	// reused by Recompute so the tick does not allocate
	wingBuf   []*Health
	engineBuf []*Health
}

// NewHull validates spec and spawns the sub-actors.
func NewHull(spec HullSpec) (*Hull, error) {
	if spec.MaxHealth <= 0 {
		return nil, &ConfigError{Field: "hull.max_health", Err: fmt.Errorf("%w: %d", ErrInvalidTuning, spec.MaxHealth)}
	}
	if spec.Shield.Health <= 0 {
		return nil, missing("shield")
	}
	if spec.Cockpit.Health <= 0 {
		return nil, missing("cockpit")
	}
	for i, w := range spec.Wings {
		if w.Health <= 0 {
			return nil, missing(fmt.Sprintf("wings[%d]", i))
		}
	}
	for i, e := range spec.Engines {
		if e.Health <= 0 {
			return nil, missing(fmt.Sprintf("engines[%d]", i))
		}
	}

	w := ecs.NewWorld(16)
	h := &Hull{
		world:     w,
		health:    ecs.NewMap[Health](w),
		owners:    ecs.NewMap[Owner](w),
		byPart:    ecs.NewFilter2[Health, Part](w),
		all:       ecs.NewFilter1[Owner](w),
		maxHealth: spec.MaxHealth,
		wingBuf:   make([]*Health, len(spec.Wings)),
		engineBuf: make([]*Health, len(spec.Engines)),
	}

	spawn := ecs.NewMap3[Health, Part, Owner](w)
	newPart := func(kind PartKind, index int, ps PartSpec) ecs.Entity {
		hp := NewHealth(ps.Health, ps.ShieldCharge)
		return spawn.NewEntity(&hp, &Part{Kind: kind, Index: index}, &Owner{})
	}

	h.shield = newPart(PartShield, 0, spec.Shield)
	for i, ps := range spec.Wings {
		h.wings = append(h.wings, newPart(PartWing, i, ps))
	}
	for i, ps := range spec.Engines {
		h.engines = append(h.engines, newPart(PartEngine, i, ps))
	}
	h.cockpit = newPart(PartCockpit, 0, spec.Cockpit)

	return h, nil
}

// Recompute runs the damage rollup over this hull's parts.
func (h *Hull) Recompute() (Vitals, bool) {
	for i, e := range h.wings {
		h.wingBuf[i] = h.health.Get(e)
	}
	for i, e := range h.engines {
		h.engineBuf[i] = h.health.Get(e)
	}
	return Recompute(h.health.Get(h.shield), h.wingBuf, h.engineBuf, h.health.Get(h.cockpit), h.maxHealth)
}

// SetOwner stamps id on every part, shield included.
func (h *Hull) SetOwner(id player.AttackerID) {
	q := h.all.Query()
	for q.Next() {
		q.Get().ID = id
	}
}

// ToggleIFrames sets invulnerability on the cockpit, wings and engines.
// The shield is left alone.
func (h *Hull) ToggleIFrames(on bool) {
	q := h.byPart.Query()
	for q.Next() {
		hp, part := q.Get()
		if part.Kind == PartShield {
			continue
		}
		hp.Invulnerable = on
	}
}

// Damage applies a hit from attacker to a part and returns the amount
// taken. Hits from the part's own owner are ignored.
func (h *Hull) Damage(ref PartRef, amount int, from player.AttackerID) int {
	e, ok := h.entity(ref)
	if !ok {
		return 0
	}
	if own := h.owners.Get(e).ID; own != player.AttackerNone && own == from {
		return 0
	}
	return h.health.Get(e).Absorb(amount)
}

// RestoreShield recharges the shield and switches it back on.
func (h *Hull) RestoreShield() {
	s := h.health.Get(h.shield)
	s.ShieldCharge = s.MaxShieldCharge
	s.Active = true
}

// Part returns a copy of a part's health.
func (h *Hull) Part(ref PartRef) (Health, bool) {
	e, ok := h.entity(ref)
	if !ok {
		return Health{}, false
	}
	return *h.health.Get(e), true
}

// Owner returns the attribution stamped on a part.
func (h *Hull) Owner(ref PartRef) player.AttackerID {
	e, ok := h.entity(ref)
	if !ok {
		return player.AttackerNone
	}
	return h.owners.Get(e).ID
}

// Exposed picks the part a hit lands on: the shield while it holds
// charge, otherwise the first intact wing, then engine, then the cockpit.
func (h *Hull) Exposed() PartRef {
	if h.health.Get(h.shield).ShieldCharge > 0 {
		return PartRef{Kind: PartShield}
	}
	for i, e := range h.wings {
		if h.health.Get(e).Current > 0 {
			return PartRef{Kind: PartWing, Index: i}
		}
	}
	for i, e := range h.engines {
		if h.health.Get(e).Current > 0 {
			return PartRef{Kind: PartEngine, Index: i}
		}
	}
	return PartRef{Kind: PartCockpit}
}

func (h *Hull) Wings() int   { return len(h.wings) }
func (h *Hull) Engines() int { return len(h.engines) }

func (h *Hull) entity(ref PartRef) (ecs.Entity, bool) {
	switch ref.Kind {
	case PartShield:
		return h.shield, true
	case PartCockpit:
		return h.cockpit, true
	case PartWing:
		if ref.Index >= 0 && ref.Index < len(h.wings) {
			return h.wings[ref.Index], true
		}
	case PartEngine:
		if ref.Index >= 0 && ref.Index < len(h.engines) {
			return h.engines[ref.Index], true
		}
	}
	return ecs.Entity{}, false
}
