package game

// Calorie content per bite is clamped to this range regardless of what the
// item definition claims.
const (
	minCalories = 1
	maxCalories = 7
)

// EatItem takes one bite of a food item, relieving hunger by its calorie
// content. Portioned food loses one portion per bite; single-serving food
// is finished in one. Returns whether the item is now used up, in which
// case the caller destroys it.
func (l *Living) EatItem(oi *ItemInstance) (bool, error) {
	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagFood) {
		return false, ErrNotFood
	}

	content := def.Calories
	if oi.Calories > 0 {
		content = oi.Calories
	}
	calories := float64(clampInt(content, minCalories, maxCalories))

	if def.Portions > 1 {
		if oi.PortionsLeft <= 0 {
			return false, ErrNothingLeft
		}
		l.Metabolism.Hunger.Decrease(calories)
		oi.PortionsLeft--
		return oi.PortionsLeft == 0, nil
	}

	l.Metabolism.Hunger.Decrease(calories)
	return true, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
