package game

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/go-mud-survival/internal/scheduler"
)

// DefaultMetabolismInterval is the pool-advance period for a metabolism
// rate of 1.0. Higher rates shorten the period proportionally.
const DefaultMetabolismInterval = 600 * time.Second

// minMetabolismRate guards the interval division; rates below this are
// treated as this value.
const minMetabolismRate = 0.1

// Metabolism drives the three survival pools of one entity on a scheduled
// tick. The tick period scales inversely with the entity's metabolism rate.
type Metabolism struct {
	Hunger    *Pool
	Thirst    *Pool
	Tiredness *Pool

	owner *Living
	sched scheduler.Registrar
	base  time.Duration
	job   scheduler.Handle
}

func newMetabolism(owner *Living, sched scheduler.Registrar, base time.Duration) *Metabolism {
	if base <= 0 {
		base = DefaultMetabolismInterval
	}
	m := &Metabolism{
		owner: owner,
		sched: sched,
		base:  base,
	}
	m.Hunger = NewPool(HungerSpec, owner.Char.Hunger, owner.Msg)
	m.Thirst = NewPool(ThirstSpec, owner.Char.Thirst, owner.Msg)
	m.Tiredness = NewPool(TirednessSpec, owner.Char.Tiredness, owner.Msg)
	return m
}

// Rate returns the entity's metabolism rate.
func (m *Metabolism) Rate() float64 {
	r := m.owner.Char.MetabolismRate
	if r < minMetabolismRate {
		r = minMetabolismRate
	}
	return r
}

// Interval is the current tick period: the base interval divided by the rate.
func (m *Metabolism) Interval() time.Duration {
	return time.Duration(float64(m.base) / m.Rate())
}

// Start arms the metabolism tick. No-op for dead entities. Calling it again
// replaces the existing job, so it is safe after a rate change.
func (m *Metabolism) Start() {
	if m.owner.IsDead() || m.sched == nil {
		return
	}
	m.job = m.sched.Schedule(m.jobKey(), m.Interval(), m.Tick)
}

// Stop disarms the metabolism tick. Idempotent.
func (m *Metabolism) Stop() {
	if m.job != nil {
		m.job.Stop()
		m.job = nil
	}
}

// Tick advances hunger and thirst, and moves tiredness in the direction the
// entity's posture dictates: resting recovers, anything else accrues.
// Recovery speeds up the more exhausted the entity is.
func (m *Metabolism) Tick(ctx context.Context) {
	if m.owner.IsDead() {
		return
	}

	m.Hunger.Advance()
	m.Thirst.Advance()
	if m.owner.IsResting() {
		m.Tiredness.Decrease(1 + m.Tiredness.Value()/20)
	} else {
		m.Tiredness.Advance()
	}

	// The rate may have changed since the job was scheduled.
	if m.job != nil && m.job.Interval() != m.Interval() {
		m.job.SetInterval(m.Interval())
	}

	m.owner.UpdateLivingStatus()
}

// Saturated reports whether any pool has hit its ceiling.
func (m *Metabolism) Saturated() bool {
	return m.Hunger.Saturated() || m.Thirst.Saturated() || m.Tiredness.Saturated()
}

// Reset silently zeroes all pools.
func (m *Metabolism) Reset() {
	m.Hunger.Reset()
	m.Thirst.Reset()
	m.Tiredness.Reset()
}

func (m *Metabolism) jobKey() string {
	return fmt.Sprintf("metabolism-%s", m.owner.CharId)
}
