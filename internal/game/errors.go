package game

import "errors"

// Expected, player-facing failure conditions. The command layer translates
// these into refusal text; none of them indicate a fault.
var (
	ErrPlayerExists   = errors.New("player already exists")
	ErrPlayerNotFound = errors.New("player not found")
	ErrRoomNotFound   = errors.New("room not found")

	// Capability errors: the target can't do that at all.
	ErrNotHoldable        = errors.New("not holdable")
	ErrNotContainer       = errors.New("not a container")
	ErrNotEquippable      = errors.New("not equippable")
	ErrNotFood            = errors.New("not edible")
	ErrNotLiquidContainer = errors.New("not a liquid container")
	ErrNotLightSource     = errors.New("not a light source")
	ErrNotForageable      = errors.New("not forageable")

	// Placement errors: the item isn't where the operation needs it.
	ErrNotInInventory = errors.New("not in inventory")

	// Capacity/slot errors.
	ErrInvalidSlot       = errors.New("invalid slot")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrAlreadyHolding    = errors.New("slot holds another item")
	ErrTooHeavy          = errors.New("too heavy")
	ErrAlreadyEquipped   = errors.New("slot already occupied")
	ErrContainerLocked   = errors.New("container locked")
	ErrContainerFull     = errors.New("container full")
	ErrContainerTooHeavy = errors.New("container weight limit exceeded")

	// State errors: idempotent refusals.
	ErrAlreadyResting = errors.New("already resting")
	ErrNotResting     = errors.New("not resting")
	ErrAlreadyOn      = errors.New("already lit")
	ErrAlreadyOff     = errors.New("not lit")
	ErrDead           = errors.New("dead")

	// Depletion errors.
	ErrNothingLeft     = errors.New("nothing left")
	ErrNoLiquid        = errors.New("no liquid")
	ErrNoFuel          = errors.New("no fuel")
	ErrLiquidMismatch  = errors.New("liquids don't match")
	ErrPerpetualSource = errors.New("perpetual water source")
)
