package commands

import (
	"context"

	"github.com/pixil98/go-mud-survival/internal/game"
)

const statusBoxWidth = 40

// StatusHandlerFactory creates handlers that display the actor's condition.
type StatusHandlerFactory struct {
	pub game.Publisher
}

func NewStatusHandlerFactory(pub game.Publisher) *StatusHandlerFactory {
	return &StatusHandlerFactory{pub: pub}
}

func (f *StatusHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *StatusHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *StatusHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		output := renderBox(cmdCtx.Actor.StatSections(), statusBoxWidth)
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(output))
	}, nil
}
