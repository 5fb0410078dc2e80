package ship

// MovementMode is the flight model currently driving the ship.
type MovementMode uint8

const (
	ModeFree MovementMode = iota
	ModeRail
)

func (m MovementMode) String() string {
	if m == ModeRail {
		return "rail"
	}
	return "free"
}

// ParseMovementMode maps "free"/"rail" to a mode.
func ParseMovementMode(s string) (MovementMode, bool) {
	switch s {
	case "free":
		return ModeFree, true
	case "rail":
		return ModeRail, true
	default:
		return ModeFree, false
	}
}

// Vec is a 2D position or direction in playfield units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Steering is the per-tick movement request built from input.
type Steering struct {
	X, Y  float64 // [-1, 1], Y already inverted if the player asked for it
	Roll  int     // -1 left, 0 none, 1 right
	Speed float64 // boost/brake multiplier
}

// Movement is one of the ship's two flight models. Exactly one is
// enabled at a time.
type Movement interface {
	Enable()
	Disable()
	// Teardown clears transient state before the model is disabled.
	Teardown()
	Enabled() bool
	Place(p Vec)
	Position() Vec
	Advance(s Steering)
}

// FreeFlight steers in both axes with some momentum.
type FreeFlight struct {
	pos     Vec
	vel     Vec
	accel   float64
	drag    float64
	enabled bool
}

// NewFreeFlight creates a disabled free-flight model at start.
func NewFreeFlight(start Vec, accel float64) *FreeFlight {
	return &FreeFlight{pos: start, accel: accel, drag: 0.85}
}

func (f *FreeFlight) Enable()       { f.enabled = true }
func (f *FreeFlight) Disable()      { f.enabled = false }
func (f *FreeFlight) Teardown()     { f.vel = Vec{} }
func (f *FreeFlight) Enabled() bool { return f.enabled }
func (f *FreeFlight) Place(p Vec)   { f.pos = p }
func (f *FreeFlight) Position() Vec { return f.pos }
func (f *FreeFlight) Velocity() Vec { return f.vel }

func (f *FreeFlight) Advance(s Steering) {
	if !f.enabled {
		return
	}
	push := Vec{s.X, s.Y}.Scale(f.accel * s.Speed)
	f.vel = f.vel.Scale(f.drag).Add(push)
	f.pos = f.pos.Add(f.vel)
}

// RailFlight moves along a fixed heading; input only shifts the ship
// sideways within the rail's lane.
type RailFlight struct {
	pos      Vec
	heading  Vec
	speed    float64
	lane     float64 // max sideways offset
	offset   float64
	progress float64
	enabled  bool
}

// NewRailFlight creates a disabled rail model at start.
func NewRailFlight(start, heading Vec, speed, lane float64) *RailFlight {
	return &RailFlight{pos: start, heading: heading, speed: speed, lane: lane}
}

func (r *RailFlight) Enable()       { r.enabled = true }
func (r *RailFlight) Disable()      { r.enabled = false }
func (r *RailFlight) Enabled() bool { return r.enabled }
func (r *RailFlight) Place(p Vec)   { r.pos = p }
func (r *RailFlight) Position() Vec { return r.pos }

// Progress is the distance travelled since the rail was last torn down.
func (r *RailFlight) Progress() float64 { return r.progress }

func (r *RailFlight) Teardown() {
	r.progress = 0
	r.offset = 0
}

func (r *RailFlight) Advance(s Steering) {
	if !r.enabled {
		return
	}
	step := r.speed * s.Speed
	r.pos = r.pos.Add(r.heading.Scale(step))
	r.progress += step

	// sideways is the heading rotated a quarter turn
	side := Vec{-r.heading.Y, r.heading.X}
	next := max(-r.lane, min(r.lane, r.offset+s.Y))
	r.pos = r.pos.Add(side.Scale(next - r.offset))
	r.offset = next
}
