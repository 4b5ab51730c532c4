package game

import (
	"fmt"
	"sync"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// Room defines a location loaded from asset files.
type Room struct {
	// Name is the room's short title
	Name string `json:"name"`

	// Description is shown when a player looks at the room
	Description string `json:"description"`

	// LightLevel is the room's base ambient light
	LightLevel int `json:"light_level"`

	// Exits maps direction names to destination room ids
	Exits map[string]storage.Identifier `json:"exits,omitempty"`

	storage.ExtensionState `json:"ext,omitempty"`
}

// Validate a room definition
func (r *Room) Validate() error {
	el := errors.NewErrorList()
	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.LightLevel < 0 {
		el.Add(fmt.Errorf("room light_level cannot be negative"))
	}
	return el.Err()
}

// RoomInstance is the live state of one room: its definition plus the
// entities and items currently in it.
type RoomInstance struct {
	Id   storage.Identifier
	Room *Room

	mu      sync.RWMutex
	players map[storage.Identifier]*Living
	objects *Inventory
}

func NewRoomInstance(id storage.Identifier, room *Room) *RoomInstance {
	return &RoomInstance{
		Id:      id,
		Room:    room,
		players: make(map[storage.Identifier]*Living),
		objects: NewInventory(),
	}
}

func (r *RoomInstance) AddPlayer(l *Living) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[l.CharId] = l
}

func (r *RoomInstance) RemovePlayer(id storage.Identifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
}

// FindPlayer returns the occupant matching name, or nil.
func (r *RoomInstance) FindPlayer(name string) *Living {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.players {
		if l.Char.MatchName(name) {
			return l
		}
	}
	return nil
}

// Players returns a snapshot of the room's occupants.
func (r *RoomInstance) Players() []*Living {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Living, 0, len(r.players))
	for _, l := range r.players {
		out = append(out, l)
	}
	return out
}

func (r *RoomInstance) AddObj(oi *ItemInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects.AddObj(oi)
}

func (r *RoomInstance) RemoveObj(instanceId string) *ItemInstance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.objects.RemoveObj(instanceId)
}

// FindObj returns the first item on the floor matching name, or nil.
func (r *RoomInstance) FindObj(name string) *ItemInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.objects.FindObj(name)
}

// Objects returns a snapshot of the items on the floor.
func (r *RoomInstance) Objects() []*ItemInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ItemInstance, 0, len(r.objects.Objs))
	for _, oi := range r.objects.Objs {
		out = append(out, oi)
	}
	return out
}

// LightLevel is the room's current light: its base level plus everything
// burning in it, whether on the floor or carried by an occupant.
func (r *RoomInstance) LightLevel() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	level := r.Room.LightLevel
	for _, oi := range r.objects.Objs {
		level += oi.EmittedLight()
	}
	for _, l := range r.players {
		for _, oi := range l.Inventory().Objs {
			level += oi.EmittedLight()
		}
	}
	return level
}
