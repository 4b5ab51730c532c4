package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// WearHandlerFactory creates handlers that put on wearable items.
type WearHandlerFactory struct {
	pub game.Publisher
}

func NewWearHandlerFactory(pub game.Publisher) *WearHandlerFactory {
	return &WearHandlerFactory{pub: pub}
}

func (f *WearHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory, Required: true},
		},
	}
}

func (f *WearHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *WearHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		oi := cmdCtx.Targets["item"].Obj.Instance

		alreadyWorn := oi.Equipped()
		if err := cmdCtx.Actor.Equipment.Add(oi); err != nil {
			return asUserError(err)
		}
		if alreadyWorn {
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(fmt.Sprintf("You are already wearing %s.", oi.Def().ShortDesc)))
		}

		msg := fmt.Sprintf("You wear %s on your %s.", oi.Def().ShortDesc, oi.EquipSlot)
		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
			return err
		}
		cmdCtx.Actor.BroadcastVisual(fmt.Sprintf("%s wears %s.", cmdCtx.Actor.Name(), oi.Def().ShortDesc), "")
		return nil
	}, nil
}

// RemoveHandlerFactory creates handlers that take off worn items.
type RemoveHandlerFactory struct {
	pub game.Publisher
}

func NewRemoveHandlerFactory(pub game.Publisher) *RemoveHandlerFactory {
	return &RemoveHandlerFactory{pub: pub}
}

func (f *RemoveHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory, Required: true},
		},
	}
}

func (f *RemoveHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *RemoveHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		oi := cmdCtx.Targets["item"].Obj.Instance

		if !cmdCtx.Actor.Equipment.Remove(oi) {
			return NewUserError("You aren't wearing that.")
		}

		msg := fmt.Sprintf("You remove %s.", oi.Def().ShortDesc)
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg))
	}, nil
}
