package commands

import "github.com/pixil98/go-mud-survival/internal/storage"

// DefaultCommands is the standard verb set. Deployments can override or
// extend it with command assets on disk; the identifiers here are the verbs
// players type.
func DefaultCommands() map[storage.Identifier]*Command {
	itemInput := []InputSpec{
		{Name: "item", Type: InputTypeString, Required: true, Rest: true},
	}

	return map[storage.Identifier]*Command{
		"look": {
			Handler: "look",
			Inputs: []InputSpec{
				{Name: "target", Type: InputTypeString, Rest: true},
			},
		},
		"status": {
			Handler: "status",
		},
		"inventory": {
			Handler: "inventory",
		},
		"equipment": {
			Handler: "equipment",
		},
		"get": {
			Handler: "move_obj",
			Config: map[string]any{
				"destination":  "inventory",
				"message":      "You get {{.Item}}.",
				"room_message": "{{.Actor}} gets {{.Item}}.",
			},
			Inputs: itemInput,
		},
		"drop": {
			Handler: "move_obj",
			Config: map[string]any{
				"destination":  "room",
				"message":      "You drop {{.Item}}.",
				"room_message": "{{.Actor}} drops {{.Item}}.",
			},
			Inputs: itemInput,
		},
		"put": {
			Handler: "move_obj",
			Config: map[string]any{
				"destination":  "container",
				"message":      "You put {{.Item}} in {{.Place}}.",
				"room_message": "{{.Actor}} puts {{.Item}} in {{.Place}}.",
			},
			Inputs: []InputSpec{
				{Name: "item", Type: InputTypeString, Required: true},
				{Name: "container", Type: InputTypeString, Required: true, Rest: true},
			},
		},
		"hold": {
			Handler: "hold",
			Config:  map[string]any{"action": "hold"},
			Inputs: []InputSpec{
				{Name: "item", Type: InputTypeString, Required: true},
				{Name: "slot", Type: InputTypeString, Rest: true},
			},
		},
		"release": {
			Handler: "hold",
			Config:  map[string]any{"action": "release"},
			Inputs:  itemInput,
		},
		"wear": {
			Handler: "wear",
			Inputs:  itemInput,
		},
		"remove": {
			Handler: "remove",
			Inputs:  itemInput,
		},
		"eat": {
			Handler: "eat",
			Inputs:  itemInput,
		},
		"drink": {
			Handler: "drink",
			Inputs:  itemInput,
		},
		"fill": {
			Handler: "liquid",
			Config:  map[string]any{"action": "fill"},
			Inputs: []InputSpec{
				{Name: "item", Type: InputTypeString, Required: true},
				{Name: "source", Type: InputTypeString, Required: true, Rest: true},
			},
		},
		"empty": {
			Handler: "liquid",
			Config:  map[string]any{"action": "empty"},
			Inputs:  itemInput,
		},
		"rest": {
			Handler: "rest",
			Config:  map[string]any{"action": "rest"},
		},
		"stand": {
			Handler: "rest",
			Config:  map[string]any{"action": "stand"},
		},
		"light": {
			Handler: "light",
			Config:  map[string]any{"action": "light"},
			Inputs:  itemInput,
		},
		"extinguish": {
			Handler: "light",
			Config:  map[string]any{"action": "extinguish"},
			Inputs:  itemInput,
		},
		"forage": {
			Handler: "forage",
			Inputs: []InputSpec{
				{Name: "node", Type: InputTypeString, Required: true, Rest: true},
			},
		},
		"skills": {
			Handler: "skills",
			Config:  map[string]any{"action": "list"},
		},
		"setskill": {
			Handler: "skills",
			Config:  map[string]any{"action": "set"},
			Inputs: []InputSpec{
				{Name: "skill", Type: InputTypeString, Required: true},
				{Name: "level", Type: InputTypeString, Required: true},
			},
		},
		"revive": {
			Handler: "revive",
			Sets:    []string{"alive", "dead"},
		},
		"go": {
			Handler: "move",
			Inputs: []InputSpec{
				{Name: "direction", Type: InputTypeString, Required: true},
			},
		},
		"say": {
			Handler: "message",
			Config: map[string]any{
				"sender_message": "You say, \"{{.Inputs.text}}\"",
				"room_message":   "{{.Actor}} says, \"{{.Inputs.text}}\"",
			},
			Inputs: []InputSpec{
				{Name: "text", Type: InputTypeString, Required: true, Rest: true},
			},
		},
		"quit": {
			Handler: "quit",
			Sets:    []string{"alive", "dead"},
		},
	}
}
