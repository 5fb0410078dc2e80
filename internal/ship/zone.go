package ship

import "github.com/starlight-duel/starlight/internal/player"

// Zone is a trigger volume that asks ships to change flight model.
type Zone struct {
	Name      string
	AffectsP1 bool
	AffectsP2 bool
	Mode      MovementMode
}

// Affects reports whether the zone is tagged for slot s.
func (z Zone) Affects(s player.Slot) bool {
	switch s {
	case player.P1:
		return z.AffectsP1
	case player.P2:
		return z.AffectsP2
	default:
		return false
	}
}
