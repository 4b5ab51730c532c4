package game

import (
	"context"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestMetabolismTickRates(t *testing.T) {
	f := newTestFixture(t)
	m := f.living.Metabolism

	m.Tick(context.Background())

	testutil.AssertEqual(t, "hunger", m.Hunger.Value(), 0.3)
	testutil.AssertEqual(t, "thirst", m.Thirst.Value(), 1.4)
	testutil.AssertEqual(t, "tiredness", m.Tiredness.Value(), 1.0)
}

func TestMetabolismRestingRecovery(t *testing.T) {
	f := newTestFixture(t)
	m := f.living.Metabolism
	m.Tiredness.Increase(40)

	if err := f.living.StartResting(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Tick(context.Background())

	// Recovery is 1 + value/20, so 40 drops by 3.
	testutil.AssertEqual(t, "tiredness", m.Tiredness.Value(), 37.0)
	// Hunger and thirst still accrue while resting.
	testutil.AssertEqual(t, "hunger", m.Hunger.Value(), 0.3)
	testutil.AssertEqual(t, "thirst", m.Thirst.Value(), 1.4)
}

func TestMetabolismInterval(t *testing.T) {
	tests := map[string]struct {
		rate        float64
		expInterval time.Duration
	}{
		"default rate": {rate: 1.0, expInterval: 600 * time.Second},
		"double rate":  {rate: 2.0, expInterval: 300 * time.Second},
		"slow rate":    {rate: 0.5, expInterval: 1200 * time.Second},
		"rate floored": {rate: 0.01, expInterval: 6000 * time.Second},
		"zero rate":    {rate: 0, expInterval: 6000 * time.Second},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTestFixture(t)
			f.living.Char.MetabolismRate = tt.rate
			testutil.AssertEqual(t, "interval", f.living.Metabolism.Interval(), tt.expInterval)
		})
	}
}

func TestMetabolismRescheduleOnRateChange(t *testing.T) {
	f := newTestFixture(t)
	m := f.living.Metabolism

	f.living.Char.MetabolismRate = 2.0
	m.Tick(context.Background())

	job := f.sched.Get("metabolism-ann")
	if job == nil {
		t.Fatal("expected metabolism job to be scheduled")
	}
	testutil.AssertEqual(t, "interval", job.Interval(), 300*time.Second)
}

func TestMetabolismDeathAtSaturation(t *testing.T) {
	f := newTestFixture(t)
	m := f.living.Metabolism
	m.Hunger.Increase(99.5)

	m.Tick(context.Background())
	testutil.AssertEqual(t, "alive before ceiling", f.living.IsDead(), false)

	m.Tick(context.Background())
	testutil.AssertEqual(t, "dead at ceiling", f.living.IsDead(), true)
	testutil.AssertEqual(t, "cmdset", f.swap.last(), CmdSetDead)
	if f.sched.Get("metabolism-ann") != nil {
		t.Error("expected metabolism job to be stopped on death")
	}
}

func TestMetabolismTickIgnoresDead(t *testing.T) {
	f := newTestFixture(t)
	m := f.living.Metabolism
	f.living.Die()

	m.Tick(context.Background())
	testutil.AssertEqual(t, "hunger", m.Hunger.Value(), 0.0)
}

func TestMetabolismScheduledThroughDriver(t *testing.T) {
	f := newTestFixture(t)
	f.living.Char.MetabolismRate = 1.0

	f.sched.Advance(context.Background(), 600*time.Second)
	testutil.AssertEqual(t, "hunger after one period", f.living.Metabolism.Hunger.Value(), 0.3)

	f.sched.Advance(context.Background(), 300*time.Second)
	testutil.AssertEqual(t, "hunger mid-period", f.living.Metabolism.Hunger.Value(), 0.3)

	f.sched.Advance(context.Background(), 300*time.Second)
	testutil.AssertEqual(t, "hunger after two periods", f.living.Metabolism.Hunger.Value(), 0.3+0.3)
}
