package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// moveObjData is what move_obj message templates render against.
type moveObjData struct {
	Actor string
	Item  string
	Place string
}

// MoveObjHandlerFactory creates handlers that move objects between holders:
// picking up, dropping, and putting into containers.
// Config:
//   - destination (required): "inventory", "room", or "container"
//   - message (required): Go template for the actor, e.g. "You get {{.Item}}."
//   - room_message (optional): Go template broadcast to the room
type MoveObjHandlerFactory struct {
	pub game.Publisher
}

func NewMoveObjHandlerFactory(pub game.Publisher) *MoveObjHandlerFactory {
	return &MoveObjHandlerFactory{pub: pub}
}

func (f *MoveObjHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "item", Input: "item", Type: TargetTypeObject, Scope: ScopeInventory | ScopeRoom, Required: true},
			{Name: "container", Input: "container", Type: TargetTypeObject, Scope: ScopeInventory | ScopeRoom},
		},
	}
}

func (f *MoveObjHandlerFactory) ValidateConfig(config map[string]any) error {
	dest, _ := config["destination"].(string)
	switch dest {
	case "inventory", "room", "container":
	default:
		return fmt.Errorf("destination must be \"inventory\", \"room\", or \"container\", got %q", dest)
	}

	msg, _ := config["message"].(string)
	if msg == "" {
		return fmt.Errorf("message is required")
	}
	if _, err := ExpandTemplate(msg, &moveObjData{}); err != nil {
		return fmt.Errorf("message: %w", err)
	}
	if roomMsg, _ := config["room_message"].(string); roomMsg != "" {
		if _, err := ExpandTemplate(roomMsg, &moveObjData{}); err != nil {
			return fmt.Errorf("room_message: %w", err)
		}
	}
	return nil
}

func (f *MoveObjHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	dest, _ := config["destination"].(string)
	message, _ := config["message"].(string)
	roomMessage, _ := config["room_message"].(string)

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		item := cmdCtx.Targets["item"].Obj

		holder, place, err := f.resolveDestination(dest, cmdCtx)
		if err != nil {
			return err
		}

		if item.Source == nil {
			return NewUserError("You can't move that.")
		}
		moved := item.Source.RemoveObj(item.InstanceId)
		if moved == nil {
			return NewUserError("You can't move that.")
		}
		moved.ClearCarryMarkers()
		holder.AddObj(moved)

		data := &moveObjData{
			Actor: cmdCtx.Actor.Name(),
			Item:  moved.Def().ShortDesc,
			Place: place,
		}

		msg, err := ExpandTemplate(message, data)
		if err != nil {
			return err
		}
		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
			return err
		}

		if roomMessage != "" {
			broadcast, err := ExpandTemplate(roomMessage, data)
			if err != nil {
				return err
			}
			cmdCtx.Actor.BroadcastVisual(broadcast, "")
		}
		return nil
	}, nil
}

func (f *MoveObjHandlerFactory) resolveDestination(dest string, cmdCtx *CommandContext) (ObjectHolder, string, error) {
	switch dest {
	case "inventory":
		return cmdCtx.Actor, "", nil

	case "room":
		room := cmdCtx.Actor.Room()
		if room == nil {
			return nil, "", NewUserError("You are in an invalid location.")
		}
		return room, "", nil

	default:
		ref := cmdCtx.Targets["container"]
		if ref == nil || ref.Obj == nil {
			return nil, "", NewUserError("Put it in what?")
		}
		c := ref.Obj.Instance
		if !c.Def().HasFlag(game.ItemFlagContainer) {
			return nil, "", asUserError(game.ErrNotContainer)
		}
		// Container limits are advisory; this is where they get enforced.
		if err := c.ContainerReason(cmdCtx.Targets["item"].Obj.Instance); err != nil {
			return nil, "", asUserError(err)
		}
		return c.Contents, ref.Obj.Name, nil
	}
}
