package game

// drinkRestore is how much thirst a single drink relieves.
const drinkRestore = 20

// drinkAmount is how many units of liquid a single drink consumes.
const drinkAmount = 1

// IsWaterSource reports whether the item is a perpetual water source:
// always full of water, never depleted.
func (oi *ItemInstance) IsWaterSource() bool {
	def := oi.Def()
	return def != nil && def.HasFlag(ItemFlagWaterSource)
}

// LiquidFree is the remaining liquid capacity of a container.
func (oi *ItemInstance) LiquidFree() int {
	def := oi.Def()
	if def == nil {
		return 0
	}
	return def.LiquidCapacity - oi.LiquidAmount
}

// FillFrom transfers liquid from source into dest, as much as fits and as
// much as the source has. Perpetual water sources provide without limit and
// can never be filled. Mixing liquid types is refused.
func FillFrom(dest, source *ItemInstance) (int, error) {
	ddef, sdef := dest.Def(), source.Def()
	if ddef == nil || !ddef.HasFlag(ItemFlagLiquidContainer) {
		return 0, ErrNotLiquidContainer
	}
	if sdef == nil || (!sdef.HasFlag(ItemFlagLiquidContainer) && !source.IsWaterSource()) {
		return 0, ErrNotLiquidContainer
	}
	if dest.IsWaterSource() {
		return 0, ErrPerpetualSource
	}

	srcType := source.LiquidType
	srcAmount := source.LiquidAmount
	if source.IsWaterSource() {
		srcType = "water"
		srcAmount = dest.LiquidFree()
	}

	if srcAmount <= 0 {
		return 0, ErrNoLiquid
	}
	if dest.LiquidAmount > 0 && dest.LiquidType != srcType {
		return 0, ErrLiquidMismatch
	}

	amount := dest.LiquidFree()
	if amount > srcAmount {
		amount = srcAmount
	}
	if amount <= 0 {
		return 0, ErrContainerFull
	}

	dest.LiquidType = srcType
	dest.LiquidAmount += amount
	if !source.IsWaterSource() {
		source.LiquidAmount -= amount
		if source.LiquidAmount == 0 {
			source.LiquidType = ""
		}
	}
	return amount, nil
}

// Empty pours out a container's contents. Perpetual water sources cannot
// be emptied.
func Empty(oi *ItemInstance) error {
	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagLiquidContainer) {
		return ErrNotLiquidContainer
	}
	if oi.IsWaterSource() {
		return ErrPerpetualSource
	}
	if oi.LiquidAmount == 0 {
		return ErrNoLiquid
	}
	oi.LiquidAmount = 0
	oi.LiquidType = ""
	return nil
}

// DrinkFrom drinks from a container or water source, relieving thirst and
// consuming one unit of liquid. Returns the liquid type drunk.
func (l *Living) DrinkFrom(oi *ItemInstance) (string, error) {
	def := oi.Def()
	if def == nil || (!def.HasFlag(ItemFlagLiquidContainer) && !oi.IsWaterSource()) {
		return "", ErrNotLiquidContainer
	}

	if oi.IsWaterSource() {
		l.Metabolism.Thirst.Decrease(drinkRestore)
		return "water", nil
	}

	if oi.LiquidAmount <= 0 {
		return "", ErrNoLiquid
	}

	liquid := oi.LiquidType
	l.Metabolism.Thirst.Decrease(drinkRestore)
	oi.LiquidAmount -= drinkAmount
	if oi.LiquidAmount <= 0 {
		oi.LiquidAmount = 0
		oi.LiquidType = ""
	}
	return liquid, nil
}

// FillState describes how full a liquid container is, in coarse buckets.
func (oi *ItemInstance) FillState() string {
	def := oi.Def()
	if def == nil || def.LiquidCapacity <= 0 {
		return "empty"
	}
	if oi.IsWaterSource() {
		return "full"
	}

	frac := float64(oi.LiquidAmount) / float64(def.LiquidCapacity)
	switch {
	case oi.LiquidAmount == 0:
		return "empty"
	case frac < 0.15:
		return "almost empty"
	case frac < 0.375:
		return "1/4 full"
	case frac < 0.625:
		return "1/2 full"
	case frac < 0.875:
		return "3/4 full"
	case oi.LiquidAmount < def.LiquidCapacity:
		return "almost full"
	default:
		return "full"
	}
}
