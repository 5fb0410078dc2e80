package player

// Slot is a logical player identity, independent of the physical device.
type Slot uint8

const (
	SlotNone Slot = iota
	P1
	P2
)

// Slots lists the playable slots in bind order.
var Slots = []Slot{P1, P2}

func (s Slot) String() string {
	switch s {
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return "none"
	}
}

// Valid reports whether s is a playable slot.
func (s Slot) Valid() bool { return s == P1 || s == P2 }

// Other returns the opposing slot. SlotNone has no opponent.
func (s Slot) Other() Slot {
	switch s {
	case P1:
		return P2
	case P2:
		return P1
	default:
		return SlotNone
	}
}

// Attacker returns the damage-attribution ID stamped on everything the
// slot owns.
func (s Slot) Attacker() AttackerID {
	switch s {
	case P1:
		return AttackerPlayer1
	case P2:
		return AttackerPlayer2
	default:
		return AttackerNone
	}
}

// AttackerID tags weapons, shots and ship parts so hit logic can tell
// self from enemy.
type AttackerID uint8

const (
	AttackerNone AttackerID = iota
	AttackerPlayer1
	AttackerPlayer2
	AttackerHazard // environment: asteroids, zone walls
)

func (a AttackerID) String() string {
	switch a {
	case AttackerPlayer1:
		return "Player1"
	case AttackerPlayer2:
		return "Player2"
	case AttackerHazard:
		return "Hazard"
	default:
		return "None"
	}
}

// Slot returns the player slot behind a, or SlotNone for hazards.
func (a AttackerID) Slot() Slot {
	switch a {
	case AttackerPlayer1:
		return P1
	case AttackerPlayer2:
		return P2
	default:
		return SlotNone
	}
}
