package game

import (
	"fmt"
	"sort"
	"strings"
)

// equipmentSlots is the fixed set of wearable body locations.
var equipmentSlots = []string{"head", "body", "legs", "waist", "hands", "feet"}

func validEquipmentSlot(s string) bool {
	for _, slot := range equipmentSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Equipment manages the worn items of one entity. Each slot holds at most
// one item; worn items stay in the inventory with their EquipSlot marker set.
type Equipment struct {
	owner *Living
}

func newEquipment(owner *Living) *Equipment {
	return &Equipment{owner: owner}
}

// ItemIn returns the item worn in the given slot, or nil.
func (e *Equipment) ItemIn(slot string) *ItemInstance {
	for _, oi := range e.owner.Inventory().Objs {
		if oi.EquipSlot == slot {
			return oi
		}
	}
	return nil
}

// Items returns all worn items keyed by slot.
func (e *Equipment) Items() map[string]*ItemInstance {
	worn := map[string]*ItemInstance{}
	for _, oi := range e.owner.Inventory().Objs {
		if oi.EquipSlot != "" {
			worn[oi.EquipSlot] = oi
		}
	}
	return worn
}

// Add wears an item in the slot its definition names. The item must be in
// the inventory and wearable, and the slot must be free. Wearing an item
// releases any held grip on it. Re-wearing an item already in its slot is
// a no-op.
func (e *Equipment) Add(oi *ItemInstance) error {
	if !e.owner.Inventory().Contains(oi.InstanceId) {
		return ErrNotInInventory
	}

	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagWearable) || def.WearSlot == "" {
		return ErrNotEquippable
	}

	if oi.EquipSlot == def.WearSlot {
		return nil
	}

	if cur := e.ItemIn(def.WearSlot); cur != nil {
		return ErrAlreadyEquipped
	}

	oi.HeldSlots = nil
	oi.EquipSlot = def.WearSlot
	return nil
}

// Remove takes off a worn item. Returns false if the item was not worn.
func (e *Equipment) Remove(oi *ItemInstance) bool {
	if oi.EquipSlot == "" {
		return false
	}
	oi.EquipSlot = ""
	return true
}

// RemoveSlot takes off whatever is worn in a slot, returning it or nil.
func (e *Equipment) RemoveSlot(slot string) *ItemInstance {
	oi := e.ItemIn(slot)
	if oi == nil {
		return nil
	}
	oi.EquipSlot = ""
	return oi
}

// DisplayLines renders one "<slot>: <item>" line per worn item, in slot
// order.
func (e *Equipment) DisplayLines() []string {
	worn := e.Items()
	var lines []string
	for _, slot := range equipmentSlots {
		if oi, ok := worn[slot]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", slot, oi.Def().ShortDesc))
		}
	}
	return lines
}

// SlotList is the valid slot names joined for display.
func SlotList() string {
	slots := append([]string{}, equipmentSlots...)
	sort.Strings(slots)
	return strings.Join(slots, ", ")
}
