package commands

import (
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// TargetType is a bitmask of entity kinds a target may resolve to.
type TargetType int

const (
	TargetTypePlayer TargetType = 1 << iota
	TargetTypeObject
)

// Label returns a display name for error messages.
func (t TargetType) Label() string {
	switch t {
	case TargetTypePlayer:
		return "Player"
	case TargetTypeObject:
		return "Object"
	default:
		return "Target"
	}
}

// Scope defines where to look for targets. Can be combined with bitwise OR.
type Scope int

const (
	ScopeRoom      Scope = 1 << iota // Players and objects in the current room
	ScopeInventory                   // Objects in the actor's inventory
)

// --- Finder interfaces ---

type PlayerFinder interface {
	FindPlayer(string) *game.Living
}

type ObjectFinder interface {
	FindObj(string) *game.ItemInstance
}

// --- Source interfaces ---

// ObjectRemover can have objects removed from it.
// Living, Inventory, and RoomInstance all satisfy this.
type ObjectRemover interface {
	RemoveObj(instanceId string) *game.ItemInstance
}

// ObjectHolder can have objects added and removed.
type ObjectHolder interface {
	ObjectRemover
	AddObj(oi *game.ItemInstance)
}

// --- Ref types ---

// PlayerRef is the resolved view of a player target.
type PlayerRef struct {
	Name   string
	Living *game.Living
}

// ObjectRef is the resolved view of an object target.
type ObjectRef struct {
	InstanceId string
	Name       string
	Source     ObjectRemover
	Instance   *game.ItemInstance
}

// TargetRef is a polymorphic target reference.
type TargetRef struct {
	Type   TargetType
	Player *PlayerRef
	Obj    *ObjectRef
}

// --- SearchSpace and FindTarget ---

// SearchSpace pairs finders with an optional ObjectRemover. The Remover is
// carried into ObjectRef.Source so handlers can take found objects out of
// wherever they were found.
type SearchSpace struct {
	Players PlayerFinder
	Objects ObjectFinder
	Remover ObjectRemover
}

// FindTarget searches spaces in order for the first matching target,
// checking players before objects within each space.
func FindTarget(name string, tt TargetType, spaces []SearchSpace) (*TargetRef, error) {
	for _, sp := range spaces {
		if tt&TargetTypePlayer != 0 && sp.Players != nil {
			if l := sp.Players.FindPlayer(name); l != nil {
				return &TargetRef{
					Type:   TargetTypePlayer,
					Player: &PlayerRef{Name: l.Name(), Living: l},
				}, nil
			}
		}
		if tt&TargetTypeObject != 0 && sp.Objects != nil {
			if oi := sp.Objects.FindObj(name); oi != nil {
				return &TargetRef{
					Type: TargetTypeObject,
					Obj: &ObjectRef{
						InstanceId: oi.InstanceId,
						Name:       oi.Def().ShortDesc,
						Source:     sp.Remover,
						Instance:   oi,
					},
				}, nil
			}
		}
	}
	return nil, NewUserError(fmt.Sprintf("%s %q not found.", tt.Label(), name))
}

// spacesFor maps scope flags to concrete search spaces for an actor.
// Inventory is searched before the room so "drop rock" prefers the one
// being carried.
func spacesFor(scope Scope, actor *game.Living) []SearchSpace {
	var spaces []SearchSpace
	if scope&ScopeInventory != 0 {
		spaces = append(spaces, SearchSpace{
			Objects: actor.Inventory(),
			Remover: actor,
		})
	}
	if scope&ScopeRoom != 0 && actor.Room() != nil {
		room := actor.Room()
		spaces = append(spaces, SearchSpace{
			Players: room,
			Objects: room,
			Remover: room,
		})
	}
	return spaces
}
