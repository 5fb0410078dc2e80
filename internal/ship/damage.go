package ship

// Vitals is the ship-wide health rollup shown on the HUD.
type Vitals struct {
	CurrentHealth int
	MaxHealth     int
	CurrentShield int
	MaxShield     int
}

// Destroyed reports whether the hull is spent. CurrentHealth may be
// negative; it is never clamped.
func (v Vitals) Destroyed() bool { return v.CurrentHealth <= 0 }

// Recompute folds sub-actor damage into ship vitals and updates which
// parts can be hit. It reports whether the shield was breached this call.
//
// A shield that lost health passed damage through: that loss becomes
// hull damage once, the shield is switched off and its health reset.
// Wings, engines and the cockpit are only hittable while the shield has
// no charge left.
func Recompute(shield *Health, wings, engines []*Health, cockpit *Health, maxHealth int) (Vitals, bool) {
	damage := 0
	breached := false

	if shield.Current < shield.Max {
		shield.Active = false
		damage += shield.Max - shield.Current
		shield.Current = shield.Max
		breached = true
	}

	exposed := shield.ShieldCharge <= 0
	for _, w := range wings {
		w.Active = exposed
		damage += w.Lost()
	}
	for _, e := range engines {
		e.Active = exposed
		damage += e.Lost()
	}
	cockpit.Active = exposed
	damage += cockpit.Lost()

	return Vitals{
		CurrentHealth: maxHealth - damage,
		MaxHealth:     maxHealth,
		CurrentShield: shield.ShieldCharge,
		MaxShield:     shield.MaxShieldCharge,
	}, breached
}
