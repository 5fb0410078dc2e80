package player

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/starlight-duel/starlight/internal/input"
	"github.com/starlight-duel/starlight/internal/logger"
)

var (
	ErrBindingConflict = errors.New("both player slots are taken")
	ErrNilClaimant     = errors.New("nil claimant")
	ErrInvalidSlot     = errors.New("invalid player slot")
)

// Claimant is anything that can own a slot (a player ship).
type Claimant interface {
	// AssignSlot hands the claimant its slot, devices and input map.
	AssignSlot(b Binding)
	// Deactivate takes the claimant out of play when it has no slot.
	Deactivate()
}

// Binding is what a claimant receives when it owns a slot.
type Binding struct {
	Slot       Slot
	Controller input.Controller
	Keyboard   input.Keyboard
	Map        *input.Map
}

type seat struct {
	holder     Claimant
	controller input.Controller
	keyboard   input.Keyboard
	inputs     *input.Map
}

// Registry owns slot assignment for one match. It replaces process-wide
// "current ship" pointers: whoever owns the match owns the registry.
type Registry struct {
	seats [3]seat // indexed by Slot; SlotNone unused
	log   *slog.Logger
}

// NewRegistry creates a registry with the given input maps. Each slot
// starts with an idle virtual device until Attach wires real ones.
func NewRegistry(p1, p2 *input.Map) *Registry {
	r := &Registry{log: logger.L().With("component", "slots")}
	for _, s := range Slots {
		idle := input.NewVirtual()
		r.seats[s].controller = idle
		r.seats[s].keyboard = idle
	}
	r.seats[P1].inputs = p1
	r.seats[P2].inputs = p2
	return r
}

// Attach wires physical devices to a slot. Existing holders are not
// re-notified; bind after attaching.
func (r *Registry) Attach(s Slot, c input.Controller, k input.Keyboard) {
	if !s.Valid() {
		return
	}
	if c != nil {
		r.seats[s].controller = c
	}
	if k != nil {
		r.seats[s].keyboard = k
	}
}

// Map returns the slot's input map.
func (r *Registry) Map(s Slot) *input.Map {
	if !s.Valid() {
		return nil
	}
	return r.seats[s].inputs
}

// Binding returns the binding a holder of s would receive.
func (r *Registry) Binding(s Slot) Binding {
	if !s.Valid() {
		return Binding{}
	}
	st := r.seats[s]
	return Binding{Slot: s, Controller: st.controller, Keyboard: st.keyboard, Map: st.inputs}
}

// Holder returns the current owner of s, or nil.
func (r *Registry) Holder(s Slot) Claimant {
	if !s.Valid() {
		return nil
	}
	return r.seats[s].holder
}

// SlotOf returns the slot c owns, or SlotNone.
func (r *Registry) SlotOf(c Claimant) Slot {
	if c == nil {
		return SlotNone
	}
	for _, s := range Slots {
		if r.seats[s].holder == c {
			return s
		}
	}
	return SlotNone
}

// Bind claims a slot for c. The requested slot is used when free,
// otherwise the other slot; if both are taken c is deactivated and
// ErrBindingConflict is returned. SlotNone is a request for P1.
func (r *Registry) Bind(requested Slot, c Claimant) (Binding, error) {
	if c == nil {
		return Binding{}, ErrNilClaimant
	}
	if requested == SlotNone {
		requested = P1
	}
	if !requested.Valid() {
		return Binding{}, fmt.Errorf("bind %d: %w", requested, ErrInvalidSlot)
	}
	if owned := r.SlotOf(c); owned != SlotNone {
		return r.Binding(owned), nil
	}

	target := requested
	if r.seats[target].holder != nil {
		target = requested.Other()
		if r.seats[target].holder != nil {
			r.log.Warn("Slot request rejected", "requested", requested)
			c.Deactivate()
			return Binding{}, fmt.Errorf("bind %s: %w", requested, ErrBindingConflict)
		}
		r.log.Info("Slot reassigned", "requested", requested, "slot", target)
	}

	return r.claim(target, c), nil
}

// Rebind moves c to slot s unconditionally. Any prior holder of s is
// evicted and deactivated; the slot c held before is released.
func (r *Registry) Rebind(s Slot, c Claimant) (Binding, error) {
	if c == nil {
		return Binding{}, ErrNilClaimant
	}
	if !s.Valid() {
		return Binding{}, fmt.Errorf("rebind %d: %w", s, ErrInvalidSlot)
	}

	if prior := r.seats[s].holder; prior != nil && prior != c {
		r.seats[s].holder = nil
		r.log.Info("Slot holder evicted", "slot", s)
		prior.Deactivate()
	}
	if owned := r.SlotOf(c); owned != SlotNone && owned != s {
		r.seats[owned].holder = nil
	}
	return r.claim(s, c), nil
}

// Release frees whatever slot c owns.
func (r *Registry) Release(c Claimant) {
	if s := r.SlotOf(c); s != SlotNone {
		r.seats[s].holder = nil
		r.log.Debug("Slot released", "slot", s)
	}
}

func (r *Registry) claim(s Slot, c Claimant) Binding {
	r.seats[s].holder = c
	b := r.Binding(s)
	c.AssignSlot(b)
	r.log.Debug("Slot bound", "slot", s)
	return b
}
