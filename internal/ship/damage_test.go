package ship

import (
	"errors"
	"testing"

	"github.com/starlight-duel/starlight/internal/player"
)

func parts(n, hp int) []*Health {
	out := make([]*Health, n)
	for i := range out {
		h := NewHealth(hp, 0)
		out[i] = &h
	}
	return out
}

func TestRecomputeNoDamageKeepsFullHealth(t *testing.T) {
	shield := NewHealth(100, 50)
	cockpit := NewHealth(40, 0)
	v, breached := Recompute(&shield, parts(2, 20), parts(2, 20), &cockpit, 100)

	if breached {
		t.Error("breached with no damage")
	}
	if v.CurrentHealth != v.MaxHealth || v.MaxHealth != 100 {
		t.Errorf("vitals = %+v, want full health", v)
	}
	if v.CurrentShield != 50 || v.MaxShield != 50 {
		t.Errorf("shield vitals = %d/%d, want 50/50", v.CurrentShield, v.MaxShield)
	}
}

func TestRecomputeActiveFollowsShieldCharge(t *testing.T) {
	for _, charge := range []int{-5, 0, 1, 50} {
		shield := NewHealth(100, 50)
		shield.ShieldCharge = charge
		wings, engines := parts(3, 20), parts(2, 20)
		cockpit := NewHealth(40, 0)

		Recompute(&shield, wings, engines, &cockpit, 100)

		want := charge <= 0
		for i, w := range wings {
			if w.Active != want {
				t.Errorf("charge %d: wing %d active = %v, want %v", charge, i, w.Active, want)
			}
		}
		for i, e := range engines {
			if e.Active != want {
				t.Errorf("charge %d: engine %d active = %v, want %v", charge, i, e.Active, want)
			}
		}
		if cockpit.Active != want {
			t.Errorf("charge %d: cockpit active = %v, want %v", charge, cockpit.Active, want)
		}
	}
}

func TestRecomputeOverDamageGoesNegative(t *testing.T) {
	shield := NewHealth(100, 0)
	wings := parts(2, 60)
	wings[0].Current, wings[1].Current = 0, 0
	cockpit := NewHealth(40, 0)
	cockpit.Current = 0

	v, _ := Recompute(&shield, wings, nil, &cockpit, 100)
	if v.CurrentHealth != -60 {
		t.Errorf("CurrentHealth = %d, want -60", v.CurrentHealth)
	}
	if !v.Destroyed() {
		t.Error("negative health not reported destroyed")
	}
}

func TestRecomputeShieldBreach(t *testing.T) {
	shield := NewHealth(100, 30)
	shield.Current = 50
	shield.ShieldCharge = 0
	wings, engines := parts(2, 20), parts(2, 20)
	cockpit := NewHealth(40, 0)

	v, breached := Recompute(&shield, wings, engines, &cockpit, 100)
	if !breached {
		t.Fatal("breach not reported")
	}
	if v.CurrentHealth != 50 {
		t.Errorf("CurrentHealth = %d, want 50", v.CurrentHealth)
	}
	if shield.Current != 100 || shield.Max != 100 {
		t.Errorf("shield = %d/%d, want reset to 100/100", shield.Current, shield.Max)
	}
	if shield.Active {
		t.Error("breached shield still active")
	}
	// charge is still empty this tick, so everything is exposed
	for _, w := range wings {
		if !w.Active {
			t.Error("wing covered on breach tick")
		}
	}
	if !cockpit.Active {
		t.Error("cockpit covered on breach tick")
	}

	// recharge lands; parts are only covered on the following recompute
	shield.ShieldCharge = shield.MaxShieldCharge
	if !wings[0].Active {
		t.Error("wing covered before recompute")
	}
	v, breached = Recompute(&shield, wings, engines, &cockpit, 100)
	if breached {
		t.Error("breach counted twice")
	}
	if v.CurrentHealth != 100 {
		t.Errorf("CurrentHealth after reset = %d, want 100", v.CurrentHealth)
	}
	for _, w := range wings {
		if w.Active {
			t.Error("wing exposed after shield recharge")
		}
	}
	if cockpit.Active {
		t.Error("cockpit exposed after shield recharge")
	}
}

func TestHealthAbsorb(t *testing.T) {
	tests := []struct {
		name        string
		health      Health
		amount      int
		wantTaken   int
		wantCurrent int
		wantCharge  int
	}{
		{"charge soaks", NewHealth(100, 30), 20, 20, 100, 10},
		{"overflow pierces", NewHealth(100, 30), 50, 50, 80, 0},
		{"no negative hit", NewHealth(100, 30), -4, 0, 100, 30},
		{"clamped at zero", NewHealth(10, 0), 25, 10, 0, 0},
		{"invulnerable", Health{Current: 10, Max: 10, Invulnerable: true, Active: true}, 5, 0, 10, 0},
		{"inactive", Health{Current: 10, Max: 10}, 5, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.health
			if got := h.Absorb(tt.amount); got != tt.wantTaken {
				t.Errorf("Absorb = %d, want %d", got, tt.wantTaken)
			}
			if h.Current != tt.wantCurrent || h.ShieldCharge != tt.wantCharge {
				t.Errorf("after hit = %d hp / %d charge, want %d / %d", h.Current, h.ShieldCharge, tt.wantCurrent, tt.wantCharge)
			}
		})
	}
}

func testHullSpec() HullSpec {
	return HullSpec{
		MaxHealth: 100,
		Shield:    PartSpec{Health: 100, ShieldCharge: 50},
		Cockpit:   PartSpec{Health: 40},
		Wings:     []PartSpec{{Health: 20}, {Health: 20}},
		Engines:   []PartSpec{{Health: 20}, {Health: 20}},
	}
}

func TestNewHullRejectsMissingParts(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*HullSpec)
		field string
	}{
		{"max health", func(s *HullSpec) { s.MaxHealth = 0 }, "hull.max_health"},
		{"shield", func(s *HullSpec) { s.Shield = PartSpec{} }, "shield"},
		{"cockpit", func(s *HullSpec) { s.Cockpit = PartSpec{} }, "cockpit"},
		{"wing", func(s *HullSpec) { s.Wings[1].Health = 0 }, "wings[1]"},
		{"engine", func(s *HullSpec) { s.Engines[0].Health = -1 }, "engines[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := testHullSpec()
			tt.edit(&spec)
			_, err := NewHull(spec)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestHullOwnershipAndFriendlyFire(t *testing.T) {
	h, err := NewHull(testHullSpec())
	if err != nil {
		t.Fatal(err)
	}
	h.SetOwner(player.AttackerPlayer1)

	refs := []PartRef{{Kind: PartShield}, {Kind: PartCockpit}, {Kind: PartWing, Index: 1}, {Kind: PartEngine}}
	for _, ref := range refs {
		if got := h.Owner(ref); got != player.AttackerPlayer1 {
			t.Errorf("%v owner = %v, want P1", ref.Kind, got)
		}
	}

	if got := h.Damage(PartRef{Kind: PartShield}, 10, player.AttackerPlayer1); got != 0 {
		t.Errorf("friendly fire took %d", got)
	}
	if got := h.Damage(PartRef{Kind: PartShield}, 10, player.AttackerPlayer2); got != 10 {
		t.Errorf("enemy fire took %d, want 10", got)
	}
	if got := h.Damage(PartRef{Kind: PartWing, Index: 9}, 10, player.AttackerPlayer2); got != 0 {
		t.Errorf("unknown part took %d", got)
	}
}

func TestHullIFramesSkipShield(t *testing.T) {
	h, err := NewHull(testHullSpec())
	if err != nil {
		t.Fatal(err)
	}
	h.ToggleIFrames(true)

	for _, ref := range []PartRef{{Kind: PartCockpit}, {Kind: PartWing}, {Kind: PartWing, Index: 1}, {Kind: PartEngine, Index: 1}} {
		if p, _ := h.Part(ref); !p.Invulnerable {
			t.Errorf("%v %d not invulnerable", ref.Kind, ref.Index)
		}
	}
	if p, _ := h.Part(PartRef{Kind: PartShield}); p.Invulnerable {
		t.Error("shield got i-frames")
	}

	h.ToggleIFrames(false)
	if p, _ := h.Part(PartRef{Kind: PartCockpit}); p.Invulnerable {
		t.Error("i-frames not cleared")
	}
}

func TestHullExposedOrder(t *testing.T) {
	h, err := NewHull(testHullSpec())
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Exposed(); got.Kind != PartShield {
		t.Fatalf("Exposed = %v, want shield while charged", got.Kind)
	}

	h.Damage(PartRef{Kind: PartShield}, 50, player.AttackerPlayer2)
	h.Recompute()
	if got := h.Exposed(); got != (PartRef{Kind: PartWing}) {
		t.Fatalf("Exposed = %+v, want first wing", got)
	}

	for i := range h.Wings() {
		h.Damage(PartRef{Kind: PartWing, Index: i}, 20, player.AttackerPlayer2)
	}
	if got := h.Exposed(); got != (PartRef{Kind: PartEngine}) {
		t.Fatalf("Exposed = %+v, want first engine", got)
	}

	for i := range h.Engines() {
		h.Damage(PartRef{Kind: PartEngine, Index: i}, 20, player.AttackerPlayer2)
	}
	if got := h.Exposed(); got.Kind != PartCockpit {
		t.Fatalf("Exposed = %+v, want cockpit", got)
	}

	v, _ := h.Recompute()
	if v.CurrentHealth != 20 {
		t.Errorf("CurrentHealth = %d, want 20", v.CurrentHealth)
	}
}

func TestHullRestoreShield(t *testing.T) {
	h, err := NewHull(testHullSpec())
	if err != nil {
		t.Fatal(err)
	}
	h.Damage(PartRef{Kind: PartShield}, 70, player.AttackerPlayer2)
	if _, breached := h.Recompute(); !breached {
		t.Fatal("overflow hit did not breach")
	}
	if p, _ := h.Part(PartRef{Kind: PartShield}); p.Active {
		t.Fatal("shield still active after breach")
	}

	h.RestoreShield()
	p, _ := h.Part(PartRef{Kind: PartShield})
	if !p.Active || p.ShieldCharge != 50 {
		t.Errorf("shield after restore = %+v", p)
	}
}
