package match

import "github.com/starlight-duel/starlight/internal/ship"

// Volume is an axis-aligned trigger box that raises a zone entry.
type Volume struct {
	Zone     ship.Zone
	Min, Max ship.Vec
}

// Contains reports whether p is inside the box, edges included.
func (v Volume) Contains(p ship.Vec) bool {
	return p.X >= v.Min.X && p.X <= v.Max.X && p.Y >= v.Min.Y && p.Y <= v.Max.Y
}
