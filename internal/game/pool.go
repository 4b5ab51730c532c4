package game

// Survival stat pools. Values are clamped to [0,100]; crossing a threshold
// notifies the owner once per level change. Saturation (>=100) is reported to
// the caller, not acted on here - the pool does not know about death.

var poolThresholds = [3]float64{7, 30, 60}

// PoolSpec defines one stat pool: its passive drift per tick and the message
// and label tables indexed by level (0..3).
type PoolSpec struct {
	Name         string
	RateModifier float64
	Messages     [4]string
	Labels       [4]string
}

var (
	HungerSpec = PoolSpec{
		Name:         "hunger",
		RateModifier: 0.3,
		Messages:     [4]string{"", "You feel hungry.", "You're starving.", "You're gonna die."},
		Labels:       [4]string{"sated", "hungry", "starving", "starving to death"},
	}
	ThirstSpec = PoolSpec{
		Name:         "thirst",
		RateModifier: 1.4,
		Messages:     [4]string{"", "You feel thirsty.", "You're starving for water.", "You're gonna die of thirst."},
		Labels:       [4]string{"quenched", "thirsty", "parched", "dying of thirst"},
	}
	TirednessSpec = PoolSpec{
		Name:         "tiredness",
		RateModifier: 1.0,
		Messages:     [4]string{"", "You feel tired.", "You are exhausted.", "You're about to collapse."},
		Labels:       [4]string{"rested", "tired", "exhausted", "about to collapse"},
	}
)

// Pool is a single bounded survival stat.
type Pool struct {
	spec      PoolSpec
	value     float64
	lastLevel int
	notify    func(text string)
}

// NewPool creates a pool at the given starting value. notify receives
// level-change messages; it may be nil.
func NewPool(spec PoolSpec, value float64, notify func(string)) *Pool {
	p := &Pool{spec: spec, notify: notify}
	p.value = clamp(value, 0, 100)
	p.lastLevel = p.Level()
	return p
}

func (p *Pool) Name() string {
	return p.spec.Name
}

func (p *Pool) Value() float64 {
	return p.value
}

// Level returns 0..3: the count of thresholds at or below the current value.
func (p *Pool) Level() int {
	level := 0
	for _, t := range poolThresholds {
		if p.value >= t {
			level++
		}
	}
	return level
}

// Label returns the display label for the current level.
func (p *Pool) Label() string {
	return p.spec.Labels[p.Level()]
}

// Saturated reports whether the pool has hit its ceiling.
func (p *Pool) Saturated() bool {
	return p.value >= 100
}

// Advance applies the pool's passive per-tick drift.
func (p *Pool) Advance() {
	p.Increase(p.spec.RateModifier)
}

// Increase raises the value by amount, clamped to [0,100].
func (p *Pool) Increase(amount float64) {
	p.set(p.value + amount)
}

// Decrease lowers the value by amount, clamped to [0,100].
func (p *Pool) Decrease(amount float64) {
	p.set(p.value - amount)
}

// Reset zeroes the pool without emitting a notification.
func (p *Pool) Reset() {
	p.value = 0
	p.lastLevel = 0
}

func (p *Pool) set(v float64) {
	p.value = clamp(v, 0, 100)

	level := p.Level()
	if level == p.lastLevel {
		return
	}
	p.lastLevel = level

	msg := p.spec.Messages[level]
	if msg != "" && p.notify != nil {
		p.notify(msg)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
