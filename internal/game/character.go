package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

const (
	DefaultMetabolismRate  = 1.0
	DefaultLightThreshold  = 20
	DefaultHoldingStrength = 10000 // grams per hand
)

// Character is the persisted state of a living entity. Runtime behavior
// (pools, slot handlers, scheduling) lives on Living, which wraps this.
type Character struct {
	// Name is the character's display name
	Name string `json:"name"`

	// DetailedDesc is shown when a player looks at this character
	DetailedDesc string `json:"detailed_desc,omitempty"`

	// Survival stats
	Hunger         float64 `json:"hunger"`
	Thirst         float64 `json:"thirst"`
	Tiredness      float64 `json:"tiredness"`
	MetabolismRate float64 `json:"metabolism_rate"`
	Dead           bool    `json:"dead,omitempty"`
	Resting        bool    `json:"resting,omitempty"`

	// HoldingStrength is the weight in grams one hand can carry
	HoldingStrength int `json:"holding_strength"`

	// LightThreshold is the minimum ambient light needed to see
	LightThreshold int `json:"light_threshold"`

	// Skills maps skill name to level label
	Skills map[string]SkillLevel `json:"skills,omitempty"`

	// Last known room, saved for restoring on load
	LastRoom storage.Identifier `json:"last_room,omitempty"`

	Inventory *Inventory `json:"inventory,omitempty"`

	storage.ExtensionState `json:"ext,omitempty"`
}

func NewCharacter(name string) *Character {
	return &Character{
		Name:            name,
		DetailedDesc:    "A plain, unremarkable adventurer.",
		MetabolismRate:  DefaultMetabolismRate,
		HoldingStrength: DefaultHoldingStrength,
		LightThreshold:  DefaultLightThreshold,
		Skills:          make(map[string]SkillLevel),
		Inventory:       NewInventory(),
	}
}

func (c *Character) UnmarshalJSON(b []byte) error {
	type Alias Character
	if err := json.Unmarshal(b, (*Alias)(c)); err != nil {
		return err
	}
	if c.Inventory == nil {
		c.Inventory = NewInventory()
	}
	if c.Skills == nil {
		c.Skills = make(map[string]SkillLevel)
	}
	if c.MetabolismRate == 0 {
		c.MetabolismRate = DefaultMetabolismRate
	}
	if c.HoldingStrength == 0 {
		c.HoldingStrength = DefaultHoldingStrength
	}
	if c.LightThreshold == 0 {
		c.LightThreshold = DefaultLightThreshold
	}
	return nil
}

// MatchName returns true if name matches this character's name
// (case-insensitive).
func (c *Character) MatchName(name string) bool {
	return strings.EqualFold(c.Name, name)
}

// Resolve resolves all item definition references in the inventory tree.
func (c *Character) Resolve(items storage.Storer[*Item]) error {
	el := errors.NewErrorList()
	if c.Inventory != nil {
		for _, oi := range c.Inventory.Objs {
			el.Add(oi.Resolve(items))
		}
	}
	return el.Err()
}

// Validate a character definition
func (c *Character) Validate() error {
	el := errors.NewErrorList()
	if c.Name == "" {
		el.Add(fmt.Errorf("character name is required"))
	}
	for name, level := range c.Skills {
		if !level.Valid() {
			el.Add(fmt.Errorf("skill %q has invalid level %q", name, level))
		}
	}
	return el.Err()
}
