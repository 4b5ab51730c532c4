package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pixil98/go-mud-survival/internal/game"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// CommandContext carries everything a compiled command needs to run.
type CommandContext struct {
	World   *game.WorldState
	CharId  storage.Identifier
	Actor   *game.Living
	Inputs  map[string]any
	Targets map[string]*TargetRef
}

// Input returns a string input by name, or "" if absent.
func (c *CommandContext) Input(name string) string {
	s, _ := c.Inputs[name].(string)
	return s
}

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// TargetRequirement declares a target a handler needs resolved before it runs.
type TargetRequirement struct {
	Name     string     // Key in CommandContext.Targets
	Input    string     // Which input provides the name to resolve
	Type     TargetType // Allowed entity kinds
	Scope    Scope      // Where to search
	Required bool
	Keywords []string // Inputs taken literally instead of resolved; the target stays nil
}

// HandlerSpec describes a handler's runtime requirements.
type HandlerSpec struct {
	Targets []TargetRequirement
}

// HandlerFactory creates CommandFuncs from command configurations.
type HandlerFactory interface {
	// Spec declares the targets the handler needs resolved.
	Spec() *HandlerSpec
	// ValidateConfig validates that the config contains required fields.
	ValidateConfig(config map[string]any) error
	// Create creates a CommandFunc from the validated config.
	Create(config map[string]any) (CommandFunc, error)
}

// compiledCommand holds a command that's been validated and compiled.
type compiledCommand struct {
	cmd     *Command
	spec    *HandlerSpec
	cmdFunc CommandFunc
}

// Handler compiles command definitions against registered factories and
// executes player input. It also tracks each player's active command set,
// satisfying game.CmdSetSwapper.
type Handler struct {
	store     storage.Storer[*Command]
	world     *game.WorldState
	pub       game.Publisher
	factories map[string]HandlerFactory
	compiled  map[storage.Identifier]*compiledCommand

	mu     sync.RWMutex
	active map[storage.Identifier]game.CmdSet
}

func NewHandler(c storage.Storer[*Command], world *game.WorldState, pub game.Publisher) *Handler {
	h := &Handler{
		store:     c,
		world:     world,
		pub:       pub,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[storage.Identifier]*compiledCommand),
		active:    make(map[storage.Identifier]game.CmdSet),
	}

	// Register built-in handlers
	h.RegisterFactory("look", NewLookHandlerFactory(pub))
	h.RegisterFactory("status", NewStatusHandlerFactory(pub))
	h.RegisterFactory("inventory", NewInventoryHandlerFactory(pub))
	h.RegisterFactory("equipment", NewEquipmentHandlerFactory(pub))
	h.RegisterFactory("hold", NewHoldHandlerFactory(pub))
	h.RegisterFactory("wear", NewWearHandlerFactory(pub))
	h.RegisterFactory("remove", NewRemoveHandlerFactory(pub))
	h.RegisterFactory("move_obj", NewMoveObjHandlerFactory(pub))
	h.RegisterFactory("eat", NewEatHandlerFactory(pub))
	h.RegisterFactory("drink", NewDrinkHandlerFactory(pub))
	h.RegisterFactory("liquid", NewLiquidHandlerFactory(pub))
	h.RegisterFactory("rest", NewRestHandlerFactory(pub))
	h.RegisterFactory("light", NewLightHandlerFactory(pub))
	h.RegisterFactory("forage", NewForageHandlerFactory(world, pub))
	h.RegisterFactory("skills", NewSkillsHandlerFactory(pub))
	h.RegisterFactory("revive", NewReviveHandlerFactory(pub))
	h.RegisterFactory("move", NewMoveHandlerFactory(world, pub))
	h.RegisterFactory("message", NewMessageHandlerFactory(pub))
	h.RegisterFactory("quit", NewQuitHandlerFactory(world, pub))
	return h
}

// RegisterFactory registers a handler factory by name.
// The name must match the "handler" field in command JSON definitions.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles all commands from the store.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	for id, cmd := range h.store.GetAll() {
		err := h.compile(id, cmd)
		if err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}
	return nil
}

func (h *Handler) compile(id storage.Identifier, cmd *Command) error {
	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	cmdFunc, err := factory.Create(cmd.Config)
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	h.compiled[id] = &compiledCommand{
		cmd:     cmd,
		spec:    factory.Spec(),
		cmdFunc: cmdFunc,
	}
	return nil
}

// SwapCmdSet installs a command set for a player, satisfying
// game.CmdSetSwapper.
func (h *Handler) SwapCmdSet(charId storage.Identifier, set game.CmdSet) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active[charId] = set
}

// ActiveSet returns the player's current command set.
func (h *Handler) ActiveSet(charId storage.Identifier) game.CmdSet {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if set, ok := h.active[charId]; ok {
		return set
	}
	return game.CmdSetAlive
}

// Exec executes a line of player input.
func (h *Handler) Exec(ctx context.Context, charId storage.Identifier, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmdName := strings.ToLower(fields[0])
	rawArgs := fields[1:]

	compiled, ok := h.compiled[storage.Identifier(cmdName)]
	if !ok {
		return NewUserError(fmt.Sprintf("Unknown command: %s", cmdName))
	}

	set := h.ActiveSet(charId)
	if !compiled.cmd.InSet(set) {
		if set == game.CmdSetDead {
			if cmdName == "look" {
				return NewUserError("Everything is dark. You are dead.")
			}
			return NewUserError("You are dead and cannot do that.")
		}
		return NewUserError(fmt.Sprintf("Unknown command: %s", cmdName))
	}

	actor := h.world.GetPlayer(charId)
	if actor == nil {
		return fmt.Errorf("no living entity for %q", charId)
	}

	inputs, err := h.parseInputs(compiled.cmd.Inputs, rawArgs)
	if err != nil {
		return err
	}

	targets, err := h.resolveTargets(compiled.spec, inputs, actor)
	if err != nil {
		return err
	}

	return compiled.cmdFunc(ctx, &CommandContext{
		World:   h.world,
		CharId:  charId,
		Actor:   actor,
		Inputs:  inputs,
		Targets: targets,
	})
}

// parseInputs validates raw string arguments against input specs.
func (h *Handler) parseInputs(specs []InputSpec, rawArgs []string) (map[string]any, error) {
	requiredCount := 0
	for _, spec := range specs {
		if spec.Required {
			requiredCount++
		}
	}
	if len(rawArgs) < requiredCount {
		return nil, NewUserError(fmt.Sprintf("Expected at least %d argument(s), got %d", requiredCount, len(rawArgs)))
	}

	hasRest := len(specs) > 0 && specs[len(specs)-1].Rest
	if !hasRest && len(rawArgs) > len(specs) {
		return nil, NewUserError(fmt.Sprintf("Expected at most %d argument(s), got %d", len(specs), len(rawArgs)))
	}

	inputs := make(map[string]any, len(specs))
	argIndex := 0

	for i := range specs {
		spec := &specs[i]

		if argIndex >= len(rawArgs) {
			if spec.Required {
				return nil, NewUserError(fmt.Sprintf("Missing required parameter: %s", spec.Name))
			}
			continue
		}

		var raw string
		if spec.Rest {
			raw = strings.Join(rawArgs[argIndex:], " ")
			argIndex = len(rawArgs)
		} else {
			raw = rawArgs[argIndex]
			argIndex++
		}

		switch spec.Type {
		case InputTypeNumber:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, NewUserError(fmt.Sprintf("%q is not a valid number", raw))
			}
			inputs[spec.Name] = n
		default:
			inputs[spec.Name] = raw
		}
	}

	return inputs, nil
}

// resolveTargets resolves the handler's declared targets from the parsed
// inputs.
func (h *Handler) resolveTargets(spec *HandlerSpec, inputs map[string]any, actor *game.Living) (map[string]*TargetRef, error) {
	targets := make(map[string]*TargetRef)
	if spec == nil {
		return targets, nil
	}

	for _, req := range spec.Targets {
		name, _ := inputs[req.Input].(string)
		if name == "" {
			if req.Required {
				return nil, NewUserError(fmt.Sprintf("Missing required parameter: %s", req.Input))
			}
			targets[req.Name] = nil
			continue
		}

		if isKeyword(name, req.Keywords) {
			targets[req.Name] = nil
			continue
		}

		ref, err := FindTarget(name, req.Type, spacesFor(req.Scope, actor))
		if err != nil {
			return nil, err
		}
		targets[req.Name] = ref
	}

	return targets, nil
}

func isKeyword(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.EqualFold(name, k) {
			return true
		}
	}
	return false
}
