package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// Item capability flags. An item may carry any combination.
const (
	ItemFlagHoldable        = "holdable"
	ItemFlagWearable        = "wearable"
	ItemFlagContainer       = "container"
	ItemFlagLiquidContainer = "liquid-container"
	ItemFlagFood            = "food"
	ItemFlagLightSource     = "light-source"
	ItemFlagWaterSource     = "water-source"
	ItemFlagResource        = "resource"
)

// Item defines a type of item loaded from asset files. Multiple instances can
// be spawned from one definition.
type Item struct {
	// Aliases are keywords players can use to target this item
	Aliases []string `json:"aliases"`

	// ShortDesc is used in action messages (e.g., "You pick up a rusty sword.")
	ShortDesc string `json:"short_desc"`

	// LongDesc is shown when the item is on the ground in a room
	LongDesc string `json:"long_desc"`

	// DetailedDesc is shown when a player looks at the item
	DetailedDesc string `json:"detailed_desc"`

	// Flags lists the item's capabilities (see ItemFlag* constants)
	Flags []string `json:"flags,omitempty"`

	// Weight of the bare item in grams, excluding contents and liquid
	Weight int `json:"weight"`

	// WearSlot is the equipment slot this item occupies when worn
	WearSlot string `json:"wear_slot,omitempty"`

	// Container limits
	Capacity    int `json:"capacity,omitempty"`
	WeightLimit int `json:"weight_limit,omitempty"`

	// LiquidCapacity is the most liquid the item can hold, in grams
	LiquidCapacity int `json:"liquid_capacity,omitempty"`

	// Food: calories restored per portion. Portions <= 1 means single-shot.
	Calories int `json:"calories,omitempty"`
	Portions int `json:"portions,omitempty"`

	// Light source fuel model
	FuelMax     float64 `json:"fuel_max,omitempty"`
	ConsumeRate float64 `json:"consume_rate,omitempty"`
	LightLevel  int     `json:"light_level,omitempty"`

	// Resource node properties (foraging)
	ResourceKind string             `json:"resource_kind,omitempty"`
	Abundance    int                `json:"abundance,omitempty"`
	Quality      int                `json:"quality,omitempty"`
	Yield        storage.Identifier `json:"yield,omitempty"`

	storage.ExtensionState `json:"ext,omitempty"`
}

// HasFlag reports whether the definition carries the given capability flag.
func (i *Item) HasFlag(flag string) bool {
	for _, f := range i.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// MatchName returns true if name matches any of this item's aliases
// (case-insensitive).
func (i *Item) MatchName(name string) bool {
	for _, alias := range i.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if len(i.Aliases) < 1 {
		el.Add(fmt.Errorf("item alias is required"))
	}
	if i.ShortDesc == "" {
		el.Add(fmt.Errorf("item short description is required"))
	}
	if i.Weight < 0 {
		el.Add(fmt.Errorf("item weight cannot be negative"))
	}
	if i.HasFlag(ItemFlagWearable) && !validEquipmentSlot(i.WearSlot) {
		el.Add(fmt.Errorf("wearable item needs a valid wear_slot, got %q", i.WearSlot))
	}
	if i.HasFlag(ItemFlagContainer) {
		if i.Capacity <= 0 {
			el.Add(fmt.Errorf("container capacity must be positive"))
		}
		if i.WeightLimit <= 0 {
			el.Add(fmt.Errorf("container weight_limit must be positive"))
		}
	}
	if i.HasFlag(ItemFlagLiquidContainer) && !i.HasFlag(ItemFlagWaterSource) && i.LiquidCapacity <= 0 {
		el.Add(fmt.Errorf("liquid container needs a positive liquid_capacity"))
	}
	if i.HasFlag(ItemFlagFood) && i.Calories <= 0 {
		el.Add(fmt.Errorf("food needs positive calories"))
	}
	if i.HasFlag(ItemFlagLightSource) {
		if i.FuelMax <= 0 {
			el.Add(fmt.Errorf("light source needs positive fuel_max"))
		}
		if i.ConsumeRate <= 0 {
			el.Add(fmt.Errorf("light source needs a positive consume_rate"))
		}
	}
	if i.HasFlag(ItemFlagResource) && i.ResourceKind == "" {
		el.Add(fmt.Errorf("resource needs a resource_kind"))
	}

	return el.Err()
}

// ItemInstance is a single spawned instance of an Item definition, carrying
// all per-instance mutable state.
type ItemInstance struct {
	InstanceId string                         `json:"instance_id"`
	Item       storage.SmartIdentifier[*Item] `json:"item"`

	// Container state
	Contents *Inventory `json:"contents,omitempty"`
	Locked   bool       `json:"locked,omitempty"`

	// Liquid state. Amount is in grams; Type is "" when empty.
	LiquidType   string `json:"liquid_type,omitempty"`
	LiquidAmount int    `json:"liquid_amount,omitempty"`

	// Remaining portions for multi-portion food
	PortionsLeft int `json:"portions_left,omitempty"`

	// Per-instance calorie override, set on foraged finds. Zero falls back
	// to the definition's calorie content.
	Calories int `json:"calories,omitempty"`

	// Light source state
	Fuel float64 `json:"fuel,omitempty"`
	On   bool    `json:"on,omitempty"`

	// Holding/equipment markers, set by the owning entity's handlers.
	// An item occupies holding slots or an equipment slot, never both.
	HeldSlots []string `json:"held_slots,omitempty"`
	EquipSlot string   `json:"equip_slot,omitempty"`

	// Remaining harvests for resource nodes
	Abundance int `json:"abundance,omitempty"`
}

// NewItemInstance spawns an instance of the given definition with a fresh id
// and full starting state (fuel, portions, abundance).
func NewItemInstance(id storage.Identifier, def *Item) *ItemInstance {
	oi := &ItemInstance{
		InstanceId:   uuid.New().String(),
		Item:         storage.NewResolvedSmartIdentifier(id, def),
		PortionsLeft: def.Portions,
		Fuel:         def.FuelMax,
		Abundance:    def.Abundance,
	}
	if def.HasFlag(ItemFlagContainer) {
		oi.Contents = NewInventory()
	}
	return oi
}

// Def returns the resolved item definition.
func (oi *ItemInstance) Def() *Item {
	return oi.Item.Get()
}

// TotalWeight is the item's weight contribution to whatever holds it: its own
// weight, plus any liquid, plus the total weight of everything it contains,
// recursively.
func (oi *ItemInstance) TotalWeight() int {
	w := oi.Def().Weight + oi.LiquidAmount
	if oi.Contents != nil {
		for _, ci := range oi.Contents.Objs {
			w += ci.TotalWeight()
		}
	}
	return w
}

// Held reports whether the item currently occupies any holding slot.
func (oi *ItemInstance) Held() bool {
	return len(oi.HeldSlots) > 0
}

// Equipped reports whether the item is currently worn.
func (oi *ItemInstance) Equipped() bool {
	return oi.EquipSlot != ""
}

// ClearCarryMarkers removes held and equipped state. Called when the item
// leaves its owner's inventory.
func (oi *ItemInstance) ClearCarryMarkers() {
	oi.HeldSlots = nil
	oi.EquipSlot = ""
}

// Resolve resolves the definition reference and the contents tree from the
// item store.
func (oi *ItemInstance) Resolve(items storage.Storer[*Item]) error {
	if err := oi.Item.Resolve(items); err != nil {
		return err
	}
	if oi.Def().HasFlag(ItemFlagContainer) && oi.Contents == nil {
		oi.Contents = NewInventory()
	}
	if oi.Contents != nil {
		for _, ci := range oi.Contents.Objs {
			if err := ci.Resolve(items); err != nil {
				return err
			}
		}
	}
	return nil
}
