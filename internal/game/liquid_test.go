package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func liquidContainerDef(alias string, capacity int) *Item {
	return &Item{
		Aliases:        []string{alias},
		ShortDesc:      "a " + alias,
		Weight:         200,
		Flags:          []string{ItemFlagHoldable, ItemFlagLiquidContainer},
		LiquidCapacity: capacity,
	}
}

func waterSourceDef() *Item {
	return &Item{
		Aliases:   []string{"well"},
		ShortDesc: "a well",
		LongDesc:  "A stone well stands here.",
		Flags:     []string{ItemFlagLiquidContainer, ItemFlagWaterSource},
	}
}

func TestFillFrom(t *testing.T) {
	tests := map[string]struct {
		destAmount   int
		destType     string
		srcAmount    int
		srcType      string
		expMoved     int
		expErr       error
		expSrcAmount int
	}{
		"full transfer":       {srcAmount: 300, srcType: "water", expMoved: 300, expSrcAmount: 0},
		"limited by capacity": {destAmount: 800, destType: "water", srcAmount: 500, srcType: "water", expMoved: 200, expSrcAmount: 300},
		"limited by source":   {srcAmount: 100, srcType: "water", expMoved: 100, expSrcAmount: 0},
		"source empty":        {srcAmount: 0, expErr: ErrNoLiquid},
		"type mismatch":       {destAmount: 100, destType: "wine", srcAmount: 300, srcType: "water", expErr: ErrLiquidMismatch},
		"destination full":    {destAmount: 1000, destType: "water", srcAmount: 300, srcType: "water", expErr: ErrContainerFull},
		"mix into empty":      {srcAmount: 300, srcType: "wine", expMoved: 300, expSrcAmount: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dest := NewItemInstance("skin", liquidContainerDef("skin", 1000))
			dest.LiquidAmount = tt.destAmount
			dest.LiquidType = tt.destType
			src := NewItemInstance("jug", liquidContainerDef("jug", 1000))
			src.LiquidAmount = tt.srcAmount
			src.LiquidType = tt.srcType
			total := dest.LiquidAmount + src.LiquidAmount

			moved, err := FillFrom(dest, src)

			if tt.expErr != nil {
				assertErrorIs(t, "error", err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "moved", moved, tt.expMoved)
			testutil.AssertEqual(t, "source amount", src.LiquidAmount, tt.expSrcAmount)
			// Liquid is conserved across the transfer.
			testutil.AssertEqual(t, "total", dest.LiquidAmount+src.LiquidAmount, total)
		})
	}
}

func TestFillFromWaterSource(t *testing.T) {
	well := NewItemInstance("well", waterSourceDef())
	skin := NewItemInstance("skin", liquidContainerDef("skin", 1000))

	moved, err := FillFrom(skin, well)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "moved", moved, 1000)
	testutil.AssertEqual(t, "type", skin.LiquidType, "water")
	// The source never depletes.
	testutil.AssertEqual(t, "well state", well.FillState(), "full")

	// And can never be filled.
	_, err = FillFrom(well, skin)
	assertErrorIs(t, "fill well", err, ErrPerpetualSource)
	assertErrorIs(t, "empty well", Empty(well), ErrPerpetualSource)
}

func TestEmpty(t *testing.T) {
	skin := NewItemInstance("skin", liquidContainerDef("skin", 1000))
	assertErrorIs(t, "already empty", Empty(skin), ErrNoLiquid)

	skin.LiquidAmount = 500
	skin.LiquidType = "wine"
	if err := Empty(skin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "amount", skin.LiquidAmount, 0)
	testutil.AssertEqual(t, "type", skin.LiquidType, "")
}

func TestDrinkFrom(t *testing.T) {
	f := newTestFixture(t)
	f.living.Metabolism.Thirst.Increase(50)
	skin := f.newTestItem(liquidContainerDef("skin", 1000))
	skin.LiquidAmount = 2
	skin.LiquidType = "water"

	liquid, err := f.living.DrinkFrom(skin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "liquid", liquid, "water")
	testutil.AssertEqual(t, "thirst", f.living.Metabolism.Thirst.Value(), 30.0)
	testutil.AssertEqual(t, "amount", skin.LiquidAmount, 1)

	// The last unit clears the liquid type.
	if _, err := f.living.DrinkFrom(skin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "empty amount", skin.LiquidAmount, 0)
	testutil.AssertEqual(t, "empty type", skin.LiquidType, "")

	_, err = f.living.DrinkFrom(skin)
	assertErrorIs(t, "dry", err, ErrNoLiquid)
}

func TestDrinkFromWaterSource(t *testing.T) {
	f := newTestFixture(t)
	f.living.Metabolism.Thirst.Increase(50)
	well := NewItemInstance("well", waterSourceDef())
	f.room.AddObj(well)

	for i := 0; i < 3; i++ {
		if _, err := f.living.DrinkFrom(well); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	testutil.AssertEqual(t, "thirst", f.living.Metabolism.Thirst.Value(), 0.0)
}

func TestDrinkFromNonContainer(t *testing.T) {
	f := newTestFixture(t)
	rock := f.newTestItem(holdableDef("rock", 100))

	_, err := f.living.DrinkFrom(rock)
	assertErrorIs(t, "error", err, ErrNotLiquidContainer)
}

func TestFillState(t *testing.T) {
	tests := map[string]struct {
		amount   int
		expState string
	}{
		"empty":          {amount: 0, expState: "empty"},
		"almost empty":   {amount: 100, expState: "almost empty"},
		"quarter":        {amount: 250, expState: "1/4 full"},
		"half":           {amount: 500, expState: "1/2 full"},
		"three quarters": {amount: 750, expState: "3/4 full"},
		"almost full":    {amount: 950, expState: "almost full"},
		"full":           {amount: 1000, expState: "full"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			skin := NewItemInstance("skin", liquidContainerDef("skin", 1000))
			skin.LiquidAmount = tt.amount
			if tt.amount > 0 {
				skin.LiquidType = "water"
			}
			testutil.AssertEqual(t, "state", skin.FillState(), tt.expState)
		})
	}
}

func TestLiquidCountsTowardWeight(t *testing.T) {
	skin := NewItemInstance("skin", liquidContainerDef("skin", 1000))
	testutil.AssertEqual(t, "empty weight", skin.TotalWeight(), 200)

	skin.LiquidAmount = 600
	skin.LiquidType = "water"
	testutil.AssertEqual(t, "filled weight", skin.TotalWeight(), 800)
}
