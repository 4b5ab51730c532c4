package commands

import (
	"context"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// QuitHandlerFactory creates handlers that save the actor and remove it
// from the world.
type QuitHandlerFactory struct {
	world *game.WorldState
	pub   game.Publisher
}

func NewQuitHandlerFactory(world *game.WorldState, pub game.Publisher) *QuitHandlerFactory {
	return &QuitHandlerFactory{world: world, pub: pub}
}

func (f *QuitHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *QuitHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *QuitHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		cmdCtx.Actor.Broadcast(cmdCtx.Actor.Name() + " leaves the world.")
		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte("Goodbye.")); err != nil {
			return err
		}
		return f.world.RemovePlayer(cmdCtx.CharId)
	}, nil
}
