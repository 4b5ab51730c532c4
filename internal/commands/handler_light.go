package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// LightHandlerFactory creates handlers that light and extinguish light
// sources.
// Config:
//   - action (required): "light" or "extinguish"
type LightHandlerFactory struct {
	pub game.Publisher
}

func NewLightHandlerFactory(pub game.Publisher) *LightHandlerFactory {
	return &LightHandlerFactory{pub: pub}
}

func (f *LightHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory | ScopeRoom, Required: true},
		},
	}
}

func (f *LightHandlerFactory) ValidateConfig(config map[string]any) error {
	action, _ := config["action"].(string)
	switch action {
	case "light", "extinguish":
		return nil
	default:
		return fmt.Errorf("action must be \"light\" or \"extinguish\", got %q", action)
	}
}

func (f *LightHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	action, _ := config["action"].(string)

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		oi := cmdCtx.Targets["item"].Obj.Instance

		if action == "extinguish" {
			if err := cmdCtx.Actor.TurnOff(oi); err != nil {
				return asUserError(err)
			}
			msg := fmt.Sprintf("You extinguish %s.", oi.Def().ShortDesc)
			if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
				return err
			}
			cmdCtx.Actor.BroadcastVisual(fmt.Sprintf("%s extinguishes %s.", cmdCtx.Actor.Name(), oi.Def().ShortDesc), "")
			return nil
		}

		if err := cmdCtx.Actor.TurnOn(oi); err != nil {
			return asUserError(err)
		}
		msg := fmt.Sprintf("You light %s.", oi.Def().ShortDesc)
		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
			return err
		}
		cmdCtx.Actor.BroadcastVisual(fmt.Sprintf("%s lights %s.", cmdCtx.Actor.Name(), oi.Def().ShortDesc), "")
		return nil
	}, nil
}
