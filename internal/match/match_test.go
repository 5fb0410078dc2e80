package match

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/starlight-duel/starlight/internal/hangar"
	"github.com/starlight-duel/starlight/internal/input"
	"github.com/starlight-duel/starlight/internal/player"
	"github.com/starlight-duel/starlight/internal/ship"
)

func testFrame(t *testing.T, damage int) *hangar.Frame {
	t.Helper()
	data := fmt.Sprintf(`{
  "name": "Dart",
  "max_health": 100,
  "energy": 10,
  "shield": {"health": 100, "charge": 50},
  "cockpit": {"health": 40},
  "wings": [{"health": 20}, {"health": 20}],
  "engines": [{"health": 20}],
  "main": {"name": "gun", "mode": "semi", "damage": %d},
  "flight": {"free_accel": 0.5, "rail_speed": 1, "rail_lane": 2}
}`, damage)
	f, err := hangar.LoadFrame([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

type harness struct {
	m      *Match
	p1, p2 *input.Virtual
}

func defaultOptions() Options {
	return Options{
		Costs:     map[ship.EnergyUse]float64{ship.UseBoost: 2, ship.UseBrake: 1.5},
		Tuning:    ship.DefaultTuning(),
		StartMode: ship.ModeRail,
		HitBand:   1.5,
	}
}

func newHarness(t *testing.T, opts Options, damage int) *harness {
	t.Helper()
	m1, m2 := input.DefaultMap(), input.DefaultMap()
	m2.Keyboard = input.AltKeyboard()
	reg := player.NewRegistry(&m1, &m2)
	h := &harness{m: New(reg, opts), p1: input.NewVirtual(), p2: input.NewVirtual()}
	reg.Attach(player.P1, h.p1, h.p1)
	reg.Attach(player.P2, h.p2, h.p2)

	f := testFrame(t, damage)
	if _, err := h.m.Join(Spawn{Slot: player.P1, Frame: f, Heading: ship.Vec{X: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, err := h.m.Join(Spawn{Slot: player.P2, Frame: f, At: ship.Vec{Y: 1}, Heading: ship.Vec{X: 1}}); err != nil {
		t.Fatal(err)
	}
	return h
}

func (h *harness) update(n int) {
	for range n {
		h.m.Update()
		h.p1.Advance()
		h.p2.Advance()
	}
}

func commsText(c *Comms) string {
	var b strings.Builder
	for _, l := range c.Recent(c.Len()) {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestJoinFallsBackAndRejects(t *testing.T) {
	m1, m2 := input.DefaultMap(), input.DefaultMap()
	m := New(player.NewRegistry(&m1, &m2), defaultOptions())
	f := testFrame(t, 5)

	a, err := m.Join(Spawn{Slot: player.P1, Frame: f, Heading: ship.Vec{X: 1}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Join(Spawn{Slot: player.P1, Frame: f, Heading: ship.Vec{X: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if a.Slot() != player.P1 || b.Slot() != player.P2 {
		t.Fatalf("slots = %v, %v", a.Slot(), b.Slot())
	}
	if m.Ship(player.P2) != b {
		t.Error("match does not track the fallback slot")
	}

	_, err = m.Join(Spawn{Slot: player.P1, Frame: f, Heading: ship.Vec{X: 1}})
	if !errors.Is(err, player.ErrBindingConflict) {
		t.Fatalf("err = %v, want ErrBindingConflict", err)
	}
	if m.Ship(player.P1) != a {
		t.Error("rejected ship replaced the holder")
	}
}

func TestPauseToggle(t *testing.T) {
	h := newHarness(t, defaultOptions(), 5)
	h.p2.SetKey(input.KeyBackspace, true)
	h.update(1)
	if !h.m.Paused() {
		t.Fatal("P2 pause key did not pause")
	}
	before := h.m.Ship(player.P1).Position()
	h.p2.SetKey(input.KeyBackspace, false)
	h.update(5)
	if h.m.Ship(player.P1).Position() != before || h.m.Tick() != 0 {
		t.Error("ships moved while paused")
	}

	h.p1.SetButton(input.ButtonStart, true)
	h.update(1)
	if h.m.Paused() {
		t.Fatal("P1 start did not resume")
	}
	if !strings.Contains(commsText(h.m.Comms()), "Match resumed") {
		t.Error("resume not logged")
	}
}

func TestSpawnGrace(t *testing.T) {
	opts := defaultOptions()
	opts.SpawnGraceTicks = 3
	h := newHarness(t, opts, 5)
	cockpit := ship.PartRef{Kind: ship.PartCockpit}

	if p, _ := h.m.Ship(player.P2).Hull().Part(cockpit); !p.Invulnerable {
		t.Fatal("no spawn i-frames")
	}
	h.update(2)
	if p, _ := h.m.Ship(player.P2).Hull().Part(cockpit); !p.Invulnerable {
		t.Fatal("i-frames ended early")
	}
	h.update(1)
	if p, _ := h.m.Ship(player.P2).Hull().Part(cockpit); p.Invulnerable {
		t.Error("i-frames never ended")
	}
}

func TestShotHitsWithinBand(t *testing.T) {
	h := newHarness(t, defaultOptions(), 5)
	h.p1.SetButton(input.ButtonA, true)
	h.update(1)

	if p, _ := h.m.Ship(player.P2).Hull().Part(ship.PartRef{Kind: ship.PartShield}); p.ShieldCharge != 45 {
		t.Errorf("P2 shield charge = %d, want 45", p.ShieldCharge)
	}
	if p, _ := h.m.Ship(player.P1).Hull().Part(ship.PartRef{Kind: ship.PartShield}); p.ShieldCharge != 50 {
		t.Error("shooter damaged itself")
	}
}

func TestShotMissesOutsideBand(t *testing.T) {
	opts := defaultOptions()
	opts.HitBand = 0.5
	h := newHarness(t, opts, 5)
	h.p1.SetButton(input.ButtonA, true)
	h.update(1)

	if p, _ := h.m.Ship(player.P2).Hull().Part(ship.PartRef{Kind: ship.PartShield}); p.ShieldCharge != 50 {
		t.Errorf("shield charge = %d, want untouched", p.ShieldCharge)
	}
}

func TestDestroyedOnce(t *testing.T) {
	h := newHarness(t, defaultOptions(), 200)
	h.p1.SetButton(input.ButtonA, true)
	h.update(2)

	if !h.m.Over() || h.m.Winner() != player.P1 {
		t.Fatalf("over=%v winner=%v", h.m.Over(), h.m.Winner())
	}
	h.update(5)
	if n := strings.Count(commsText(h.m.Comms()), "destroyed"); n != 1 {
		t.Errorf("destroyed reported %d times", n)
	}
}

func TestBothDestroyedIsDraw(t *testing.T) {
	h := newHarness(t, defaultOptions(), 200)
	h.p1.SetButton(input.ButtonA, true)
	h.p2.SetButton(input.ButtonA, true)
	h.update(2)

	if !h.m.Over() {
		t.Fatal("match not over")
	}
	if w := h.m.Winner(); w != player.SlotNone {
		t.Errorf("winner = %v, want none on a draw", w)
	}
	text := commsText(h.m.Comms())
	if !strings.Contains(text, "Draw") || strings.Contains(text, "wins") {
		t.Errorf("comms = %q", text)
	}
}

func TestShieldRecharge(t *testing.T) {
	opts := defaultOptions()
	opts.ShieldRechargeTicks = 2
	h := newHarness(t, opts, 60)
	h.p1.SetButton(input.ButtonA, true)
	h.update(1)
	h.p1.SetButton(input.ButtonA, false)

	// the breach is consumed on the next tick, the recharge lands two later
	h.update(1)
	if !strings.Contains(commsText(h.m.Comms()), "P2 shield breached") {
		t.Fatal("breach not logged")
	}
	h.update(2)
	p, _ := h.m.Ship(player.P2).Hull().Part(ship.PartRef{Kind: ship.PartShield})
	if !p.Active || p.ShieldCharge != 50 {
		t.Errorf("shield = %+v, want restored", p)
	}
}

func TestShieldDrainedExactlyRecharges(t *testing.T) {
	opts := defaultOptions()
	opts.ShieldRechargeTicks = 2
	h := newHarness(t, opts, 50) // matches the frame's shield charge
	h.p1.SetButton(input.ButtonA, true)
	h.update(1)
	h.p1.SetButton(input.ButtonA, false)

	h.update(1)
	target := h.m.Ship(player.P2)
	if target.ShieldBreached() {
		t.Fatal("an exact drain must not pierce the shield")
	}
	if !strings.Contains(commsText(h.m.Comms()), "P2 shield down") {
		t.Fatal("drained shield not logged")
	}
	h.update(2)
	p, _ := target.Hull().Part(ship.PartRef{Kind: ship.PartShield})
	if !p.Active || p.ShieldCharge != 50 {
		t.Errorf("shield = %+v, want restored", p)
	}

	// restored once, not again while it stays up
	h.update(10)
	if n := strings.Count(commsText(h.m.Comms()), "P2 shield restored"); n != 1 {
		t.Errorf("restored logged %d times, want 1", n)
	}
}

func TestShieldLeftDownWithoutRecharge(t *testing.T) {
	h := newHarness(t, defaultOptions(), 50)
	h.p1.SetButton(input.ButtonA, true)
	h.update(1)
	h.p1.SetButton(input.ButtonA, false)
	h.update(30)

	p, _ := h.m.Ship(player.P2).Hull().Part(ship.PartRef{Kind: ship.PartShield})
	if p.ShieldCharge != 0 {
		t.Errorf("shield charge = %d, want 0 with recharge off", p.ShieldCharge)
	}
	if n := strings.Count(commsText(h.m.Comms()), "P2 shield down"); n != 1 {
		t.Errorf("shield down logged %d times, want 1", n)
	}
}

func TestEnergyDrain(t *testing.T) {
	opts := defaultOptions()
	opts.EnergyDrain = true
	opts.EnergyRegen = 0.5
	h := newHarness(t, opts, 5)
	pool := h.m.Ship(player.P1).Energy()

	h.p1.SetKey(input.KeySpace, true)
	h.update(30)
	if math.Abs(pool.Current()-9) > 1e-9 {
		t.Errorf("energy after 30 boost ticks = %v, want 9", pool.Current())
	}
	h.p1.SetKey(input.KeySpace, false)
	h.update(4)
	if pool.Current() != 10 {
		t.Errorf("energy after regen = %v, want 10", pool.Current())
	}
}

func TestZoneEntry(t *testing.T) {
	h := newHarness(t, defaultOptions(), 5)
	h.m.AddVolume(Volume{
		Zone: ship.Zone{Name: "arena", AffectsP1: true, Mode: ship.ModeFree},
		Min:  ship.Vec{X: 2, Y: -5},
		Max:  ship.Vec{X: 10, Y: 5},
	})
	h.update(1)
	if h.m.Ship(player.P1).Mode() != ship.ModeRail {
		t.Fatal("switched before reaching the zone")
	}
	h.update(2)
	if h.m.Ship(player.P1).Mode() != ship.ModeFree {
		t.Error("P1 did not switch inside the zone")
	}
	if h.m.Ship(player.P2).Mode() != ship.ModeRail {
		t.Error("zone for P1 switched P2")
	}
	if !strings.Contains(commsText(h.m.Comms()), "P1 entered arena") {
		t.Error("zone entry not logged")
	}
}

func TestSwap(t *testing.T) {
	h := newHarness(t, defaultOptions(), 5)
	first := h.m.Ship(player.P1)
	if err := h.m.Swap(); err != nil {
		t.Fatal(err)
	}
	if h.m.Ship(player.P2) != first || first.Slot() != player.P2 || !first.Active() {
		t.Fatalf("first ship slot=%v active=%v", first.Slot(), first.Active())
	}
	if first.Hull().Owner(ship.PartRef{Kind: ship.PartCockpit}) != player.AttackerPlayer2 {
		t.Error("ownership not propagated on swap")
	}

	m1, m2 := input.DefaultMap(), input.DefaultMap()
	empty := New(player.NewRegistry(&m1, &m2), defaultOptions())
	if err := empty.Swap(); !errors.Is(err, ErrNoOpponent) {
		t.Errorf("err = %v", err)
	}
}

func TestCommsWrapAndEvict(t *testing.T) {
	c := NewComms(3, 10)
	c.Add(1, "shield breached on the port wing", PriorityWarning)
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3 wrapped lines", c.Len())
	}
	c.Add(2, "ok", PriorityInfo)
	got := c.Recent(5)
	if len(got) != 3 || got[2].Text != "ok" || got[0].Text != "on the" {
		t.Errorf("recent = %+v", got)
	}
}
