package commands

import (
	"context"
	"errors"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// MoveHandlerFactory creates handlers that walk the actor through room
// exits.
type MoveHandlerFactory struct {
	world *game.WorldState
	pub   game.Publisher
}

func NewMoveHandlerFactory(world *game.WorldState, pub game.Publisher) *MoveHandlerFactory {
	return &MoveHandlerFactory{world: world, pub: pub}
}

func (f *MoveHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *MoveHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		direction := cmdCtx.Input("direction")
		if direction == "" {
			return NewUserError("Go where?")
		}

		if err := f.world.MovePlayer(cmdCtx.Actor, direction); err != nil {
			if errors.Is(err, game.ErrRoomNotFound) {
				return NewUserError("You can't go that way.")
			}
			return err
		}

		if cmdCtx.Actor.Vision.CanSee() {
			room := cmdCtx.Actor.Room()
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(room.Room.Name+"\n"+room.Room.Description))
		}
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte("It is pitch black. You can't see a thing."))
	}, nil
}
