package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// SkillsHandlerFactory creates handlers that list and set skill levels.
// Config:
//   - action (required): "list" or "set"
type SkillsHandlerFactory struct {
	pub game.Publisher
}

func NewSkillsHandlerFactory(pub game.Publisher) *SkillsHandlerFactory {
	return &SkillsHandlerFactory{pub: pub}
}

func (f *SkillsHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *SkillsHandlerFactory) ValidateConfig(config map[string]any) error {
	action, _ := config["action"].(string)
	switch action {
	case "list", "set":
		return nil
	default:
		return fmt.Errorf("action must be \"list\" or \"set\", got %q", action)
	}
}

func (f *SkillsHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	action, _ := config["action"].(string)

	if action == "set" {
		return f.createSet(), nil
	}
	return f.createList(), nil
}

func (f *SkillsHandlerFactory) createList() CommandFunc {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		skills := cmdCtx.Actor.Char.Skills
		if len(skills) == 0 {
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte("You have no trained skills."))
		}

		names := make([]string, 0, len(skills))
		for name := range skills {
			names = append(names, name)
		}
		sort.Strings(names)

		lines := []string{"Your skills:"}
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("  %s: %s", name, skills[name]))
		}
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(strings.Join(lines, "\n")))
	}
}

func (f *SkillsHandlerFactory) createSet() CommandFunc {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		name := cmdCtx.Input("skill")
		if name == "" {
			return NewUserError("Set which skill?")
		}

		level, ok := game.ParseSkillLevel(cmdCtx.Input("level"))
		if !ok {
			return NewUserError("Level must be untrained, novice, journeyman, or master.")
		}

		cmdCtx.Actor.SetSkill(name, level)
		msg := fmt.Sprintf("Your %s skill is now %s.", name, level)
		return f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg))
	}
}
