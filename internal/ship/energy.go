package ship

// EnergyUse names something that costs energy per tick.
type EnergyUse uint8

const (
	UseBoost EnergyUse = iota
	UseBrake
)

// EnergyPool gates boost and brake. Queries never spend energy;
// draining and recharging belong to whoever calls Set.
type EnergyPool struct {
	current float64
	max     float64
	costs   map[EnergyUse]float64
}

// NewEnergyPool returns a full pool with the given cost table.
func NewEnergyPool(capacity float64, costs map[EnergyUse]float64) *EnergyPool {
	table := make(map[EnergyUse]float64, len(costs))
	for use, cost := range costs {
		table[use] = cost
	}
	return &EnergyPool{current: capacity, max: capacity, costs: table}
}

// CanConsume reports whether cost is available.
func (p *EnergyPool) CanConsume(cost float64) bool {
	return p.current >= cost
}

// CanAfford looks up the cost of use and checks it.
func (p *EnergyPool) CanAfford(use EnergyUse) bool {
	return p.CanConsume(p.costs[use])
}

// Cost returns the table cost of use.
func (p *EnergyPool) Cost(use EnergyUse) float64 { return p.costs[use] }

// Set overwrites the current level, clamped to [0, max].
func (p *EnergyPool) Set(v float64) {
	p.current = max(0, min(v, p.max))
}

func (p *EnergyPool) Current() float64 { return p.current }
func (p *EnergyPool) Max() float64     { return p.max }

// Fraction returns current/max, or 0 for an empty-capacity pool.
func (p *EnergyPool) Fraction() float64 {
	if p.max <= 0 {
		return 0
	}
	return p.current / p.max
}
