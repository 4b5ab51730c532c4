package commands

import (
	"errors"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or usage.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// refusalText maps expected game-layer refusals onto player-facing text.
var refusalText = map[error]string{
	game.ErrNotHoldable:        "You can't hold that.",
	game.ErrNotContainer:       "That is not a container.",
	game.ErrNotEquippable:      "You can't wear that.",
	game.ErrNotFood:            "You can't eat that.",
	game.ErrNotLiquidContainer: "You can't drink from that.",
	game.ErrNotLightSource:     "You can't light that.",
	game.ErrNotForageable:      "You can't forage there.",
	game.ErrNotInInventory:     "You aren't carrying that.",
	game.ErrInvalidSlot:        "You don't have a slot like that.",
	game.ErrSlotUnavailable:    "Your hands are full.",
	game.ErrAlreadyHolding:     "You are already holding something in that hand.",
	game.ErrTooHeavy:           "It is too heavy for you to hold.",
	game.ErrAlreadyEquipped:    "You are already wearing something there.",
	game.ErrContainerLocked:    "It is locked.",
	game.ErrContainerFull:      "It is full.",
	game.ErrContainerTooHeavy:  "It can't bear that much weight.",
	game.ErrAlreadyResting:     "You are already resting.",
	game.ErrNotResting:         "You are not resting.",
	game.ErrAlreadyOn:          "It is already lit.",
	game.ErrAlreadyOff:         "It isn't lit.",
	game.ErrDead:               "You are dead and cannot do that.",
	game.ErrNothingLeft:        "There is nothing left of it.",
	game.ErrNoLiquid:           "It is empty.",
	game.ErrNoFuel:             "It has no fuel left.",
	game.ErrLiquidMismatch:     "You don't want to mix those.",
	game.ErrPerpetualSource:    "You can't do that to it.",
}

// asUserError converts expected game-layer refusals into UserErrors and
// passes everything else through unchanged.
func asUserError(err error) error {
	if err == nil {
		return nil
	}
	for sentinel, text := range refusalText {
		if errors.Is(err, sentinel) {
			return NewUserError(text)
		}
	}
	return err
}
