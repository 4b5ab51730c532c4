package game

import "strings"

// holdingSlots is the fixed set of grips an entity has.
var holdingSlots = []string{"main hand", "off hand"}

func validHoldingSlot(s string) bool {
	for _, slot := range holdingSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// HeldItems manages the in-hand items of one entity. An item may occupy one
// or both hands; heavy items need more hands, since total held weight is
// capped at slots used times the entity's holding strength.
type HeldItems struct {
	owner *Living
}

func newHeldItems(owner *Living) *HeldItems {
	return &HeldItems{owner: owner}
}

// Slots returns the slot names in display order.
func (h *HeldItems) Slots() []string {
	return holdingSlots
}

// ItemIn returns the item held in the given slot, or nil.
func (h *HeldItems) ItemIn(slot string) *ItemInstance {
	for _, oi := range h.owner.Inventory().Objs {
		for _, s := range oi.HeldSlots {
			if s == slot {
				return oi
			}
		}
	}
	return nil
}

// FreeSlots returns the slots not currently occupied.
func (h *HeldItems) FreeSlots() []string {
	var free []string
	for _, slot := range holdingSlots {
		if h.ItemIn(slot) == nil {
			free = append(free, slot)
		}
	}
	return free
}

// Items returns all held items, each once.
func (h *HeldItems) Items() []*ItemInstance {
	var items []*ItemInstance
	for _, oi := range h.owner.Inventory().Objs {
		if oi.Held() {
			items = append(items, oi)
		}
	}
	return items
}

// Add grips an item in the given slots. With no slots given, it picks as
// many free slots as the item's weight requires. Returns whether the grip
// changed; re-holding an item in the slots it already occupies is a quiet
// no-op.
func (h *HeldItems) Add(oi *ItemInstance, slots []string) (bool, error) {
	for _, s := range slots {
		if !validHoldingSlot(s) {
			return false, ErrInvalidSlot
		}
	}
	if !h.owner.Inventory().Contains(oi.InstanceId) {
		return false, ErrNotInInventory
	}

	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagHoldable) {
		return false, ErrNotHoldable
	}

	strength := h.owner.Char.HoldingStrength
	if strength <= 0 {
		strength = DefaultHoldingStrength
	}

	if len(slots) == 0 {
		// Use as many free hands as the weight requires.
		need := 1
		if oi.TotalWeight() > strength {
			need = 2
		}
		free := h.FreeSlots()
		// A slot occupied by this same item counts as free for regripping.
		for _, s := range oi.HeldSlots {
			found := false
			for _, f := range free {
				if f == s {
					found = true
					break
				}
			}
			if !found {
				free = append(free, s)
			}
		}
		if len(free) < need {
			return false, ErrSlotUnavailable
		}
		slots = free[:need]
	}

	if oi.TotalWeight() > len(slots)*strength {
		return false, ErrTooHeavy
	}

	if sameSlots(oi.HeldSlots, slots) {
		return false, nil
	}

	for _, s := range slots {
		if cur := h.ItemIn(s); cur != nil && cur != oi {
			return false, ErrAlreadyHolding
		}
	}

	oi.EquipSlot = ""
	oi.HeldSlots = append([]string{}, slots...)
	return true, nil
}

// Remove releases an item from all slots. Returns false if it was not held.
func (h *HeldItems) Remove(oi *ItemInstance) bool {
	if !oi.Held() {
		return false
	}
	oi.HeldSlots = nil
	return true
}

// DisplayLine describes how an item is gripped: "main hand", "off hand",
// or "both hands".
func (h *HeldItems) DisplayLine(oi *ItemInstance) string {
	if len(oi.HeldSlots) >= len(holdingSlots) {
		return "both hands"
	}
	return strings.Join(oi.HeldSlots, ", ")
}

func sameSlots(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
