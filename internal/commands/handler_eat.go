package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// EatHandlerFactory creates handlers that consume food items.
type EatHandlerFactory struct {
	pub game.Publisher
}

func NewEatHandlerFactory(pub game.Publisher) *EatHandlerFactory {
	return &EatHandlerFactory{pub: pub}
}

func (f *EatHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory, Required: true},
		},
	}
}

func (f *EatHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *EatHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		item := cmdCtx.Targets["item"].Obj
		oi := item.Instance

		finished, err := cmdCtx.Actor.EatItem(oi)
		if err != nil {
			return asUserError(err)
		}

		var msg string
		if finished {
			// Used up: take it out of the world.
			if item.Source != nil {
				item.Source.RemoveObj(oi.InstanceId)
			}
			if oi.Def().Portions > 1 {
				msg = fmt.Sprintf("You finish the last of %s.", oi.Def().ShortDesc)
			} else {
				msg = fmt.Sprintf("You eat %s.", oi.Def().ShortDesc)
			}
		} else {
			msg = fmt.Sprintf("You take a bite of %s.", oi.Def().ShortDesc)
		}

		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
			return err
		}
		cmdCtx.Actor.BroadcastVisual(fmt.Sprintf("%s eats %s.", cmdCtx.Actor.Name(), oi.Def().ShortDesc), "")
		return nil
	}, nil
}
