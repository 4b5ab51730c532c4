package game

// ContainerReason explains why a container would refuse an item: locked,
// at its item capacity, or past its weight limit. Returns nil when the item
// fits. These are advisory checks; the container itself never blocks an
// insert, the command layer decides whether to honor the refusal.
func (oi *ItemInstance) ContainerReason(item *ItemInstance) error {
	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagContainer) || oi.Contents == nil {
		return ErrNotContainer
	}

	if oi.Locked {
		return ErrContainerLocked
	}
	if def.Capacity > 0 && oi.Contents.Count() >= def.Capacity {
		return ErrContainerFull
	}
	// The limit covers the loaded container, shell included.
	if def.WeightLimit > 0 && oi.TotalWeight()+item.TotalWeight() > def.WeightLimit {
		return ErrContainerTooHeavy
	}
	return nil
}

// CanHoldItem reports whether the container would accept the item.
func (oi *ItemInstance) CanHoldItem(item *ItemInstance) bool {
	return oi.ContainerReason(item) == nil
}
