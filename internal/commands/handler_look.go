package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// LookHandlerFactory creates handlers that display the current room or a
// specific target.
type LookHandlerFactory struct {
	pub game.Publisher
}

func NewLookHandlerFactory(pub game.Publisher) *LookHandlerFactory {
	return &LookHandlerFactory{pub: pub}
}

func (f *LookHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "target", Input: "target", Type: TargetTypePlayer | TargetTypeObject, Scope: ScopeInventory | ScopeRoom},
		},
	}
}

func (f *LookHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *LookHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if !cmdCtx.Actor.Vision.CanSee() {
			return NewUserError("It is pitch black. You can't see a thing.")
		}

		if target := cmdCtx.Targets["target"]; target != nil {
			return f.showTarget(cmdCtx, target)
		}
		return f.showRoom(cmdCtx)
	}, nil
}

// showRoom displays the current room description.
func (f *LookHandlerFactory) showRoom(cmdCtx *CommandContext) error {
	room := cmdCtx.Actor.Room()
	if room == nil {
		return NewUserError("You are in an invalid location.")
	}

	lines := []string{room.Room.Name, room.Room.Description}

	for _, oi := range room.Objects() {
		if oi.Def().LongDesc != "" {
			lines = append(lines, oi.Def().LongDesc)
		}
	}
	for _, other := range room.Players() {
		if other.CharId == cmdCtx.CharId {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s is here.", other.Name()))
	}
	if len(room.Room.Exits) > 0 {
		var dirs []string
		for dir := range room.Room.Exits {
			dirs = append(dirs, dir)
		}
		lines = append(lines, fmt.Sprintf("Exits: %s", strings.Join(dirs, ", ")))
	}

	return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(strings.Join(lines, "\n")))
}

// showTarget displays information about a specific target.
func (f *LookHandlerFactory) showTarget(cmdCtx *CommandContext, target *TargetRef) error {
	var msg string
	switch target.Type {
	case TargetTypePlayer:
		msg = f.describePlayer(target.Player)
	case TargetTypeObject:
		msg = f.describeObj(target.Obj)
	default:
		return NewUserError("You can't look at that.")
	}

	return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg))
}

func (f *LookHandlerFactory) describePlayer(player *PlayerRef) string {
	lines := []string{player.Living.Char.DetailedDesc}
	if player.Living.IsDead() {
		lines = append(lines, fmt.Sprintf("%s is lying here, dead.", player.Name))
	} else if player.Living.IsResting() {
		lines = append(lines, fmt.Sprintf("%s is resting here.", player.Name))
	}
	if eqLines := player.Living.Equipment.DisplayLines(); eqLines != nil {
		lines = append(lines, "", fmt.Sprintf("%s is wearing:", player.Name))
		lines = append(lines, eqLines...)
	}
	return strings.Join(lines, "\n")
}

func (f *LookHandlerFactory) describeObj(obj *ObjectRef) string {
	def := obj.Instance.Def()

	desc := def.DetailedDesc
	if desc == "" {
		desc = fmt.Sprintf("You see nothing special about %s.", obj.Name)
	}
	lines := []string{desc}

	if def.HasFlag(game.ItemFlagContainer) && obj.Instance.Contents != nil {
		if obj.Instance.Locked {
			lines = append(lines, "It is locked.")
		} else if obj.Instance.Contents.Count() == 0 {
			lines = append(lines, "It is empty.")
		} else {
			lines = append(lines, "It contains:")
			for _, ci := range obj.Instance.Contents.Objs {
				lines = append(lines, "  "+ci.Def().ShortDesc)
			}
		}
	}
	if def.HasFlag(game.ItemFlagFood) && def.Portions > 1 {
		lines = append(lines, fmt.Sprintf("It has %d of %d portions left.", obj.Instance.PortionsLeft, def.Portions))
	}
	if def.HasFlag(game.ItemFlagLiquidContainer) {
		state := obj.Instance.FillState()
		if obj.Instance.LiquidType != "" {
			state = fmt.Sprintf("%s of %s", state, obj.Instance.LiquidType)
		}
		lines = append(lines, fmt.Sprintf("It is %s.", state))
	}
	if obj.Instance.On {
		lines = append(lines, "It is burning steadily.")
	}
	return strings.Join(lines, "\n")
}
