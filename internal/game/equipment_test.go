package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func wearableDef(alias, slot string) *Item {
	return &Item{
		Aliases:   []string{alias},
		ShortDesc: "a " + alias,
		Weight:    500,
		Flags:     []string{ItemFlagWearable},
		WearSlot:  slot,
	}
}

func TestEquipmentAdd(t *testing.T) {
	f := newTestFixture(t)
	oi := f.newTestItem(wearableDef("helm", "head"))

	if err := f.living.Equipment.Add(oi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "slot", oi.EquipSlot, "head")
	assertSameItem(t, "worn item", f.living.Equipment.ItemIn("head"), oi)
	testutil.AssertEqual(t, "item stays in inventory", f.living.Inventory().Contains(oi.InstanceId), true)
}

func TestEquipmentAddRefusals(t *testing.T) {
	f := newTestFixture(t)

	t.Run("not in inventory", func(t *testing.T) {
		stray := NewItemInstance("helm", wearableDef("helm", "head"))
		assertErrorIs(t, "error", f.living.Equipment.Add(stray), ErrNotInInventory)
	})

	t.Run("not wearable", func(t *testing.T) {
		oi := f.newTestItem(holdableDef("rock", 100))
		assertErrorIs(t, "error", f.living.Equipment.Add(oi), ErrNotEquippable)
	})

	t.Run("slot occupied", func(t *testing.T) {
		first := f.newTestItem(wearableDef("helm", "head"))
		second := f.newTestItem(wearableDef("crown", "head"))
		if err := f.living.Equipment.Add(first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertErrorIs(t, "error", f.living.Equipment.Add(second), ErrAlreadyEquipped)
	})
}

func TestEquipmentRewearIsNoop(t *testing.T) {
	f := newTestFixture(t)
	oi := f.newTestItem(wearableDef("helm", "head"))

	if err := f.living.Equipment.Add(oi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.living.Equipment.Add(oi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "slot", oi.EquipSlot, "head")
}

func TestEquipmentWearingReleasesGrip(t *testing.T) {
	f := newTestFixture(t)
	oi := f.newTestItem(&Item{
		Aliases:   []string{"gauntlets"},
		ShortDesc: "a pair of gauntlets",
		Weight:    500,
		Flags:     []string{ItemFlagHoldable, ItemFlagWearable},
		WearSlot:  "hands",
	})

	if _, err := f.living.Held.Add(oi, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.living.Equipment.Add(oi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "equipped", oi.Equipped(), true)
	testutil.AssertEqual(t, "held", oi.Held(), false)
}

func TestEquipmentRemove(t *testing.T) {
	f := newTestFixture(t)
	oi := f.newTestItem(wearableDef("helm", "head"))

	testutil.AssertEqual(t, "remove unworn", f.living.Equipment.Remove(oi), false)

	if err := f.living.Equipment.Add(oi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "remove worn", f.living.Equipment.Remove(oi), true)
	testutil.AssertEqual(t, "equipped", oi.Equipped(), false)
	testutil.AssertEqual(t, "item stays in inventory", f.living.Inventory().Contains(oi.InstanceId), true)
}

func TestEquipmentDisplayLines(t *testing.T) {
	f := newTestFixture(t)
	boots := f.newTestItem(wearableDef("boots", "feet"))
	helm := f.newTestItem(wearableDef("helm", "head"))
	if err := f.living.Equipment.Add(boots); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.living.Equipment.Add(helm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := f.living.Equipment.DisplayLines()

	testutil.AssertEqual(t, "line count", len(lines), 2)
	// Lines come out in fixed slot order, head before feet.
	testutil.AssertEqual(t, "first line", lines[0], "head: a helm")
	testutil.AssertEqual(t, "second line", lines[1], "feet: a boots")
}

func TestValidEquipmentSlot(t *testing.T) {
	for _, slot := range []string{"head", "body", "legs", "waist", "hands", "feet"} {
		testutil.AssertEqual(t, slot, validEquipmentSlot(slot), true)
	}
	testutil.AssertEqual(t, "tail", validEquipmentSlot("tail"), false)
	testutil.AssertEqual(t, "empty", validEquipmentSlot(""), false)
}
