package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestPoolClamping(t *testing.T) {
	tests := map[string]struct {
		start    float64
		change   float64
		expValue float64
	}{
		"increase within range": {start: 10, change: 5, expValue: 15},
		"increase past ceiling": {start: 95, change: 20, expValue: 100},
		"decrease within range": {start: 50, change: -30, expValue: 20},
		"decrease past floor":   {start: 5, change: -20, expValue: 0},
		"start above ceiling":   {start: 150, change: 0, expValue: 100},
		"start below floor":     {start: -10, change: 0, expValue: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPool(HungerSpec, tt.start, nil)
			if tt.change > 0 {
				p.Increase(tt.change)
			} else if tt.change < 0 {
				p.Decrease(-tt.change)
			}
			testutil.AssertEqual(t, "value", p.Value(), tt.expValue)
		})
	}
}

func TestPoolLevels(t *testing.T) {
	tests := map[string]struct {
		value    float64
		expLevel int
		expLabel string
	}{
		"below first threshold": {value: 6.9, expLevel: 0, expLabel: "sated"},
		"at first threshold":    {value: 7, expLevel: 1, expLabel: "hungry"},
		"at second threshold":   {value: 30, expLevel: 2, expLabel: "starving"},
		"at third threshold":    {value: 60, expLevel: 3, expLabel: "starving to death"},
		"at ceiling":            {value: 100, expLevel: 3, expLabel: "starving to death"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPool(HungerSpec, tt.value, nil)
			testutil.AssertEqual(t, "level", p.Level(), tt.expLevel)
			testutil.AssertEqual(t, "label", p.Label(), tt.expLabel)
		})
	}
}

func TestPoolNotifiesOncePerLevelChange(t *testing.T) {
	var msgs []string
	p := NewPool(ThirstSpec, 0, func(m string) { msgs = append(msgs, m) })

	// Cross the first threshold, then move within the level.
	p.Increase(10)
	p.Increase(5)
	p.Increase(5)
	testutil.AssertEqual(t, "messages after first crossing", len(msgs), 1)
	testutil.AssertEqual(t, "first message", msgs[0], "You feel thirsty.")

	// Cross the second threshold.
	p.Increase(20)
	testutil.AssertEqual(t, "messages after second crossing", len(msgs), 2)

	// Drop back below the first: level changes, but level 0 has no message.
	p.Decrease(40)
	testutil.AssertEqual(t, "messages after recovery", len(msgs), 2)

	// Climb again: the crossing notifies again.
	p.Increase(10)
	testutil.AssertEqual(t, "messages after re-crossing", len(msgs), 3)
}

func TestPoolResetIsSilent(t *testing.T) {
	var msgs []string
	p := NewPool(TirednessSpec, 80, func(m string) { msgs = append(msgs, m) })

	p.Reset()
	testutil.AssertEqual(t, "value", p.Value(), 0.0)
	testutil.AssertEqual(t, "messages", len(msgs), 0)

	// The next crossing still notifies.
	p.Increase(10)
	testutil.AssertEqual(t, "messages after increase", len(msgs), 1)
}

func TestPoolSaturated(t *testing.T) {
	p := NewPool(HungerSpec, 99.9, nil)
	testutil.AssertEqual(t, "below ceiling", p.Saturated(), false)
	p.Increase(0.3)
	testutil.AssertEqual(t, "at ceiling", p.Saturated(), true)
}
