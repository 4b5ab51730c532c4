package commands

import (
	"context"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// ReviveHandlerFactory creates handlers that reset an entity's needs and
// bring it back to life. Available in the dead command set.
type ReviveHandlerFactory struct {
	pub game.Publisher
}

func NewReviveHandlerFactory(pub game.Publisher) *ReviveHandlerFactory {
	return &ReviveHandlerFactory{pub: pub}
}

func (f *ReviveHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *ReviveHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *ReviveHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		wasDead := cmdCtx.Actor.IsDead()

		msg := cmdCtx.Actor.ResetAndRevive()
		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
			return err
		}
		if wasDead {
			cmdCtx.Actor.BroadcastVisual(cmdCtx.Actor.Name()+" stirs and rises.", "")
		}
		return nil
	}, nil
}
