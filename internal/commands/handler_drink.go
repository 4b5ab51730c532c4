package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// DrinkHandlerFactory creates handlers that drink from liquid containers
// and water sources.
type DrinkHandlerFactory struct {
	pub game.Publisher
}

func NewDrinkHandlerFactory(pub game.Publisher) *DrinkHandlerFactory {
	return &DrinkHandlerFactory{pub: pub}
}

func (f *DrinkHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory | ScopeRoom, Required: true},
		},
	}
}

func (f *DrinkHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *DrinkHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		oi := cmdCtx.Targets["item"].Obj.Instance

		liquid, err := cmdCtx.Actor.DrinkFrom(oi)
		if err != nil {
			return asUserError(err)
		}

		msg := fmt.Sprintf("You drink %s from %s.", liquid, oi.Def().ShortDesc)
		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
			return err
		}
		cmdCtx.Actor.BroadcastVisual(fmt.Sprintf("%s drinks from %s.", cmdCtx.Actor.Name(), oi.Def().ShortDesc), "")
		return nil
	}, nil
}

// LiquidHandlerFactory creates handlers that fill and empty liquid
// containers.
// Config:
//   - action (required): "fill" or "empty"
type LiquidHandlerFactory struct {
	pub game.Publisher
}

func NewLiquidHandlerFactory(pub game.Publisher) *LiquidHandlerFactory {
	return &LiquidHandlerFactory{pub: pub}
}

func (f *LiquidHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory, Required: true},
			{Name: "source", Input: "source", Type: TargetTypeObject, Scope: ScopeInventory | ScopeRoom},
		},
	}
}

func (f *LiquidHandlerFactory) ValidateConfig(config map[string]any) error {
	action, _ := config["action"].(string)
	switch action {
	case "fill", "empty":
		return nil
	default:
		return fmt.Errorf("action must be \"fill\" or \"empty\", got %q", action)
	}
}

func (f *LiquidHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	action, _ := config["action"].(string)

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		oi := cmdCtx.Targets["item"].Obj.Instance

		if action == "empty" {
			liquid := oi.LiquidType
			if err := game.Empty(oi); err != nil {
				return asUserError(err)
			}
			msg := fmt.Sprintf("You pour the %s out of %s.", liquid, oi.Def().ShortDesc)
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg))
		}

		src := cmdCtx.Targets["source"]
		if src == nil || src.Obj == nil {
			return NewUserError("Fill it from what?")
		}

		if _, err := game.FillFrom(oi, src.Obj.Instance); err != nil {
			return asUserError(err)
		}

		msg := fmt.Sprintf("You fill %s from %s. It is now %s.", oi.Def().ShortDesc, src.Obj.Name, oi.FillState())
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg))
	}, nil
}
