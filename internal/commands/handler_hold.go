package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// HoldHandlerFactory creates handlers that grip and release in-hand items.
// Config:
//   - action (required): "hold" or "release"
type HoldHandlerFactory struct {
	pub game.Publisher
}

func NewHoldHandlerFactory(pub game.Publisher) *HoldHandlerFactory {
	return &HoldHandlerFactory{pub: pub}
}

func (f *HoldHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory, Required: true, Keywords: []string{"all"}},
		},
	}
}

func (f *HoldHandlerFactory) ValidateConfig(config map[string]any) error {
	action, _ := config["action"].(string)
	switch action {
	case "hold", "release":
		return nil
	default:
		return fmt.Errorf("action must be \"hold\" or \"release\", got %q", action)
	}
}

func (f *HoldHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	action, _ := config["action"].(string)

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if cmdCtx.Targets["item"] == nil {
			// "all" skipped resolution.
			if action != "release" {
				return NewUserError("You can only hold one thing at a time.")
			}
			items := cmdCtx.Actor.Held.Items()
			if len(items) == 0 {
				return NewUserError("You aren't holding anything.")
			}
			for _, held := range items {
				cmdCtx.Actor.Held.Remove(held)
				if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(fmt.Sprintf("You release %s.", held.Def().ShortDesc))); err != nil {
					return err
				}
			}
			return nil
		}

		oi := cmdCtx.Targets["item"].Obj.Instance

		if action == "release" {
			if !cmdCtx.Actor.Held.Remove(oi) {
				return NewUserError("You aren't holding that.")
			}
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(fmt.Sprintf("You release %s.", oi.Def().ShortDesc)))
		}

		var slots []string
		if slot := cmdCtx.Input("slot"); slot != "" {
			slots = []string{slot}
		}

		changed, err := cmdCtx.Actor.Held.Add(oi, slots)
		if err != nil {
			return asUserError(err)
		}
		if !changed {
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(fmt.Sprintf("You are already holding %s.", oi.Def().ShortDesc)))
		}

		grip := cmdCtx.Actor.Held.DisplayLine(oi)
		msg := fmt.Sprintf("You hold %s in your %s.", oi.Def().ShortDesc, grip)
		if grip == "both hands" {
			msg = fmt.Sprintf("You hold %s in both hands.", oi.Def().ShortDesc)
		}
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg))
	}, nil
}
