package commands

import (
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// InputType represents the type of a command input parameter.
type InputType string

const (
	InputTypeString InputType = "string" // Text input (single word if rest=false, multi-word if rest=true)
	InputTypeNumber InputType = "number" // Integer
)

// InputSpec defines an input parameter that a command accepts from user input.
type InputSpec struct {
	Name     string    `json:"name"`
	Type     InputType `json:"type"`
	Required bool      `json:"required"`
	Rest     bool      `json:"rest"` // If true, captures all remaining input
}

// Command defines a command loaded from JSON. The asset's identifier is the
// verb players type.
type Command struct {
	Handler string         `json:"handler"`
	Config  map[string]any `json:"config"`         // Config passed to handler, may contain templates
	Inputs  []InputSpec    `json:"inputs"`         // User input parameters
	Sets    []string       `json:"sets,omitempty"` // Command sets that include this command; default alive
}

// InSet reports whether the command is available in the given command set.
func (c *Command) InSet(set game.CmdSet) bool {
	if len(c.Sets) == 0 {
		return set == game.CmdSetAlive
	}
	for _, s := range c.Sets {
		if game.CmdSet(s) == set {
			return true
		}
	}
	return false
}

func (c *Command) Validate() error {
	if c.Handler == "" {
		return fmt.Errorf("command handler not set")
	}

	for i, input := range c.Inputs {
		if input.Name == "" {
			return fmt.Errorf("input %d: name is required", i)
		}
		switch input.Type {
		case InputTypeString, InputTypeNumber:
			// Valid
		default:
			return fmt.Errorf("input %q: unknown type %q", input.Name, input.Type)
		}
		// Only the last input can have rest=true
		if input.Rest && i != len(c.Inputs)-1 {
			return fmt.Errorf("input %q: only the last input can have rest=true", input.Name)
		}
	}

	for _, s := range c.Sets {
		switch game.CmdSet(s) {
		case game.CmdSetAlive, game.CmdSetDead:
			// Valid
		default:
			return fmt.Errorf("unknown command set %q", s)
		}
	}

	return nil
}
