package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestHeldItemsAdd(t *testing.T) {
	tests := map[string]struct {
		weight   int
		slots    []string
		expSlots int
		expErr   error
	}{
		"light item default slots": {weight: 100, slots: nil, expSlots: 1},
		"heavy item default slots": {weight: 15000, slots: nil, expSlots: 2},
		"explicit slot":            {weight: 100, slots: []string{"off hand"}, expSlots: 1},
		"explicit both hands":      {weight: 15000, slots: []string{"main hand", "off hand"}, expSlots: 2},
		"too heavy for one hand":   {weight: 15000, slots: []string{"main hand"}, expErr: ErrTooHeavy},
		"too heavy for two hands":  {weight: 25000, slots: nil, expErr: ErrTooHeavy},
		"unknown slot":             {weight: 100, slots: []string{"tail"}, expErr: ErrInvalidSlot},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTestFixture(t)
			oi := f.newTestItem(holdableDef("rock", tt.weight))

			changed, err := f.living.Held.Add(oi, tt.slots)

			if tt.expErr != nil {
				assertErrorIs(t, "error", err, tt.expErr)
				testutil.AssertEqual(t, "held", oi.Held(), false)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "changed", changed, true)
			testutil.AssertEqual(t, "slot count", len(oi.HeldSlots), tt.expSlots)
		})
	}
}

func TestHeldItemsAddRefusals(t *testing.T) {
	f := newTestFixture(t)

	t.Run("not in inventory", func(t *testing.T) {
		stray := NewItemInstance("stick", holdableDef("stick", 100))
		_, err := f.living.Held.Add(stray, nil)
		assertErrorIs(t, "error", err, ErrNotInInventory)
	})

	t.Run("not holdable", func(t *testing.T) {
		oi := f.newTestItem(&Item{Aliases: []string{"boulder"}, ShortDesc: "a boulder", Weight: 100})
		_, err := f.living.Held.Add(oi, nil)
		assertErrorIs(t, "error", err, ErrNotHoldable)
	})
}

func TestHeldItemsSlotContention(t *testing.T) {
	f := newTestFixture(t)
	first := f.newTestItem(holdableDef("sword", 100))
	second := f.newTestItem(holdableDef("torch", 100))
	third := f.newTestItem(holdableDef("rock", 100))

	if _, err := f.living.Held.Add(first, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.living.Held.Add(second, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both hands full: a third item is refused.
	_, err := f.living.Held.Add(third, nil)
	assertErrorIs(t, "third item", err, ErrSlotUnavailable)

	// An occupied explicit slot is refused too.
	_, err = f.living.Held.Add(third, []string{"main hand"})
	assertErrorIs(t, "occupied slot", err, ErrAlreadyHolding)
}

func TestHeldItemsReholdIsQuietNoop(t *testing.T) {
	f := newTestFixture(t)
	oi := f.newTestItem(holdableDef("sword", 100))

	if _, err := f.living.Held.Add(oi, []string{"main hand"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	changed, err := f.living.Held.Add(oi, []string{"main hand"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "changed", changed, false)

	// Regripping into a different free slot does change.
	changed, err = f.living.Held.Add(oi, []string{"off hand"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "regrip changed", changed, true)
	testutil.AssertEqual(t, "slot", oi.HeldSlots[0], "off hand")
}

func TestHeldItemsRemove(t *testing.T) {
	f := newTestFixture(t)
	oi := f.newTestItem(holdableDef("sword", 100))

	testutil.AssertEqual(t, "remove unheld", f.living.Held.Remove(oi), false)

	if _, err := f.living.Held.Add(oi, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "remove held", f.living.Held.Remove(oi), true)
	testutil.AssertEqual(t, "held", oi.Held(), false)
	testutil.AssertEqual(t, "item stays in inventory", f.living.Inventory().Contains(oi.InstanceId), true)
}

func TestHeldItemsDisplayLine(t *testing.T) {
	f := newTestFixture(t)
	sword := f.newTestItem(holdableDef("sword", 100))
	anvil := f.newTestItem(holdableDef("anvil", 15000))

	if _, err := f.living.Held.Add(sword, []string{"off hand"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "one hand", f.living.Held.DisplayLine(sword), "off hand")

	f.living.Held.Remove(sword)
	if _, err := f.living.Held.Add(anvil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "both hands", f.living.Held.DisplayLine(anvil), "both hands")
}

func TestHoldReleasesEquipment(t *testing.T) {
	f := newTestFixture(t)
	oi := f.newTestItem(&Item{
		Aliases:   []string{"helm"},
		ShortDesc: "a helm",
		Weight:    500,
		Flags:     []string{ItemFlagHoldable, ItemFlagWearable},
		WearSlot:  "head",
	})

	if err := f.living.Equipment.Add(oi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.living.Held.Add(oi, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "held", oi.Held(), true)
	testutil.AssertEqual(t, "equipped", oi.Equipped(), false)
}
