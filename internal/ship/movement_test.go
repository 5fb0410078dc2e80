package ship

import (
	"testing"

	"github.com/starlight-duel/starlight/internal/player"
)

func TestFreeFlight(t *testing.T) {
	f := NewFreeFlight(Vec{X: 5, Y: 5}, 1)
	f.Advance(Steering{X: 1, Speed: 1})
	if f.Position() != (Vec{X: 5, Y: 5}) {
		t.Fatal("disabled model moved")
	}

	f.Enable()
	f.Advance(Steering{X: 1, Speed: 1})
	f.Advance(Steering{X: 1, Speed: 1})
	if f.Position().X <= 6 || f.Velocity().X <= 1 {
		t.Errorf("no momentum: pos %+v vel %+v", f.Position(), f.Velocity())
	}

	f.Teardown()
	if f.Velocity() != (Vec{}) {
		t.Error("teardown kept velocity")
	}
}

func TestRailFlightLane(t *testing.T) {
	r := NewRailFlight(Vec{}, Vec{X: 1}, 2, 1.5)
	r.Enable()
	for range 4 {
		r.Advance(Steering{Y: 1, Speed: 1})
	}
	if got := r.Position(); got.X != 8 || got.Y != 1.5 {
		t.Errorf("position = %+v, want {8 1.5}", got)
	}
	if r.Progress() != 8 {
		t.Errorf("progress = %v", r.Progress())
	}

	r.Teardown()
	if r.Progress() != 0 {
		t.Error("teardown kept progress")
	}
}

func TestParseMovementMode(t *testing.T) {
	if m, ok := ParseMovementMode("rail"); !ok || m != ModeRail {
		t.Error("rail")
	}
	if m, ok := ParseMovementMode("free"); !ok || m != ModeFree || m.String() != "free" {
		t.Error("free")
	}
	if _, ok := ParseMovementMode("orbit"); ok {
		t.Error("unknown mode accepted")
	}
}

func TestZoneAffects(t *testing.T) {
	z := Zone{AffectsP2: true}
	if z.Affects(player.P1) || !z.Affects(player.P2) || z.Affects(player.SlotNone) {
		t.Errorf("Affects wrong for %+v", z)
	}
}
