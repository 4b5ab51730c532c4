package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// RestHandlerFactory creates handlers that change the actor's resting
// posture.
// Config:
//   - action (required): "rest" or "stand"
type RestHandlerFactory struct {
	pub game.Publisher
}

func NewRestHandlerFactory(pub game.Publisher) *RestHandlerFactory {
	return &RestHandlerFactory{pub: pub}
}

func (f *RestHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *RestHandlerFactory) ValidateConfig(config map[string]any) error {
	action, _ := config["action"].(string)
	switch action {
	case "rest", "stand":
		return nil
	default:
		return fmt.Errorf("action must be \"rest\" or \"stand\", got %q", action)
	}
}

func (f *RestHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	action, _ := config["action"].(string)

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if action == "stand" {
			if err := cmdCtx.Actor.StopResting(); err != nil {
				return asUserError(err)
			}
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte("You get back up."))
		}

		if err := cmdCtx.Actor.StartResting(); err != nil {
			return asUserError(err)
		}
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte("You lie down and rest."))
	}, nil
}
