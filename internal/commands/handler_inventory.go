package commands

import (
	"context"
	"strings"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// InventoryHandlerFactory creates handlers that list carried items.
type InventoryHandlerFactory struct {
	pub game.Publisher
}

func NewInventoryHandlerFactory(pub game.Publisher) *InventoryHandlerFactory {
	return &InventoryHandlerFactory{pub: pub}
}

func (f *InventoryHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *InventoryHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *InventoryHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		items := FormatInventoryItems(cmdCtx.Actor)
		if len(items) == 0 {
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte("You aren't carrying anything."))
		}

		lines := append([]string{"You are carrying:"}, items...)
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(strings.Join(lines, "\n")))
	}, nil
}

// EquipmentHandlerFactory creates handlers that list worn items.
type EquipmentHandlerFactory struct {
	pub game.Publisher
}

func NewEquipmentHandlerFactory(pub game.Publisher) *EquipmentHandlerFactory {
	return &EquipmentHandlerFactory{pub: pub}
}

func (f *EquipmentHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *EquipmentHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *EquipmentHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		worn := cmdCtx.Actor.Equipment.DisplayLines()
		if len(worn) == 0 {
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte("You aren't wearing anything."))
		}

		lines := append([]string{"You are wearing:"}, worn...)
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(strings.Join(lines, "\n")))
	}, nil
}
