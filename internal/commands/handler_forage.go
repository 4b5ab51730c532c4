package commands

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pixil98/go-mud-survival/internal/game"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// ForageHandlerFactory creates handlers that harvest food from resource
// nodes in the room.
type ForageHandlerFactory struct {
	world *game.WorldState
	pub   game.Publisher
	roll  func() float64
}

func NewForageHandlerFactory(world *game.WorldState, pub game.Publisher) *ForageHandlerFactory {
	return &ForageHandlerFactory{
		world: world,
		pub:   pub,
		roll:  rand.Float64,
	}
}

func (f *ForageHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Targets: []TargetRequirement{
			{Name: "node", Input: "node", Type: TargetTypeObject, Scope: ScopeRoom, Required: true},
		},
	}
}

func (f *ForageHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *ForageHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		node := cmdCtx.Targets["node"].Obj.Instance

		res, err := cmdCtx.Actor.Forage(node, f.roll())
		if err != nil {
			return asUserError(err)
		}

		if !res.Found {
			return f.pub.PublishToPlayer(cmdCtx.CharId, []byte("You search around but find nothing edible."))
		}

		found, err := f.world.SpawnItem(storage.Identifier(res.Yield))
		if err != nil {
			return fmt.Errorf("spawning forage yield: %w", err)
		}
		found.Calories = res.Calories
		cmdCtx.Actor.AddObj(found)

		msg := fmt.Sprintf("You find %s!", found.Def().ShortDesc)
		if res.Depleted {
			msg += fmt.Sprintf(" %s has nothing left.", node.Def().ShortDesc)
		}
		if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
			return err
		}
		cmdCtx.Actor.BroadcastVisual(fmt.Sprintf("%s forages around %s.", cmdCtx.Actor.Name(), node.Def().ShortDesc), "You hear someone rummaging around.")
		return nil
	}, nil
}
