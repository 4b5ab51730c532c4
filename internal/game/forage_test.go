package game

import (
	"math"
	"testing"

	"github.com/pixil98/go-testutil"
)

func berryPatchDef(abundance, quality int) *Item {
	return &Item{
		Aliases:      []string{"patch"},
		ShortDesc:    "a berry patch",
		LongDesc:     "A tangle of berry bushes grows here.",
		Flags:        []string{ItemFlagResource},
		ResourceKind: "berries",
		Abundance:    abundance,
		Quality:      quality,
		Yield:        "berries",
	}
}

func TestForageChance(t *testing.T) {
	tests := map[string]struct {
		skill     SkillLevel
		quality   int
		expChance float64
	}{
		"untrained":              {skill: SkillUntrained, quality: 3, expChance: 0.05},
		"novice poor node":       {skill: SkillNovice, quality: 1, expChance: 0.2},
		"novice rich node":       {skill: SkillNovice, quality: 3, expChance: 0.4},
		"journeyman":             {skill: SkillJourneyman, quality: 1, expChance: 0.35},
		"master rich node":       {skill: SkillMaster, quality: 3, expChance: 0.7},
		"quality floored at one": {skill: SkillNovice, quality: 0, expChance: 0.2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ForageChance(tt.skill, tt.quality)
			if math.Abs(got-tt.expChance) > 1e-9 {
				t.Errorf("chance: got %v, want %v", got, tt.expChance)
			}
		})
	}
}

func TestForage(t *testing.T) {
	f := newTestFixture(t)
	f.living.SetSkill(ForageSkill, SkillNovice)
	patch := NewItemInstance("patch", berryPatchDef(2, 2))
	f.room.AddObj(patch)

	// A roll above the chance finds nothing and leaves the node alone.
	res, err := f.living.Forage(patch, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", res.Found, false)
	testutil.AssertEqual(t, "abundance", patch.Abundance, 2)

	// A roll under the chance harvests and depletes.
	res, err = f.living.Forage(patch, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", res.Found, true)
	testutil.AssertEqual(t, "yield", res.Yield, "berries")
	testutil.AssertEqual(t, "calories", res.Calories, 2)
	testutil.AssertEqual(t, "depleted", res.Depleted, false)
	testutil.AssertEqual(t, "abundance", patch.Abundance, 1)

	// The last harvest reports depletion.
	res, err = f.living.Forage(patch, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "last depleted", res.Depleted, true)

	_, err = f.living.Forage(patch, 0.1)
	assertErrorIs(t, "exhausted", err, ErrNothingLeft)
}

func TestForageNonResource(t *testing.T) {
	f := newTestFixture(t)
	rock := f.newTestItem(holdableDef("rock", 100))

	_, err := f.living.Forage(rock, 0.0)
	assertErrorIs(t, "error", err, ErrNotForageable)
}

func TestSkillLevels(t *testing.T) {
	tests := map[string]struct {
		level    SkillLevel
		expValid bool
		expValue int
	}{
		"untrained":  {level: SkillUntrained, expValid: true, expValue: 0},
		"novice":     {level: SkillNovice, expValid: true, expValue: 1},
		"journeyman": {level: SkillJourneyman, expValid: true, expValue: 2},
		"master":     {level: SkillMaster, expValid: true, expValue: 3},
		"unknown":    {level: SkillLevel("wizard"), expValid: false, expValue: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "valid", tt.level.Valid(), tt.expValid)
			testutil.AssertEqual(t, "value", tt.level.Value(), tt.expValue)
		})
	}
}

func TestSetSkill(t *testing.T) {
	f := newTestFixture(t)

	testutil.AssertEqual(t, "default", f.living.SkillLevel("cooking"), SkillUntrained)

	f.living.SetSkill("cooking", SkillJourneyman)
	testutil.AssertEqual(t, "set", f.living.SkillLevel("cooking"), SkillJourneyman)

	f.living.SetSkill("cooking", SkillUntrained)
	testutil.AssertEqual(t, "cleared", f.living.SkillLevel("cooking"), SkillUntrained)
	if _, ok := f.living.Char.Skills["cooking"]; ok {
		t.Error("expected untrained skill entry to be removed")
	}
}
