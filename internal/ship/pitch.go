package ship

import "fmt"

// PitchEmitter is the engine-sound source whose pitch the ship drives.
type PitchEmitter interface {
	Pitch() float64
	SetPitch(p float64)
}

// SilentEmitter is a PitchEmitter with no audio behind it.
type SilentEmitter struct {
	pitch float64
}

func NewSilentEmitter(pitch float64) *SilentEmitter { return &SilentEmitter{pitch: pitch} }

func (s *SilentEmitter) Pitch() float64     { return s.pitch }
func (s *SilentEmitter) SetPitch(p float64) { s.pitch = p }

// Step moves current toward target by rate of the remaining distance.
func Step(current, target, rate float64) float64 {
	return current + (target-current)*rate
}

// PitchInterpolator picks a target pitch from the action state and eases
// toward it once per tick.
type PitchInterpolator struct {
	Default float64
	Boost   float64
	Brake   float64
	Rate    float64
}

// NewPitchInterpolator rejects a rate outside the open interval (0, 1).
func NewPitchInterpolator(def, boost, brake, rate float64) (PitchInterpolator, error) {
	if !(rate > 0 && rate < 1) {
		return PitchInterpolator{}, fmt.Errorf("pitch rate %v: %w", rate, ErrInvalidTuning)
	}
	return PitchInterpolator{Default: def, Boost: boost, Brake: brake, Rate: rate}, nil
}

// Target returns the pitch for s. Both flags set falls back to default.
func (p PitchInterpolator) Target(s ActionState) float64 {
	switch {
	case s.Boosting && !s.Braking:
		return p.Boost
	case s.Braking && !s.Boosting:
		return p.Brake
	default:
		return p.Default
	}
}

// Next returns the pitch after one tick.
func (p PitchInterpolator) Next(current float64, s ActionState) float64 {
	return Step(current, p.Target(s), p.Rate)
}
