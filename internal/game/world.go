package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-survival/internal/scheduler"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// DefaultAutosaveInterval is how often player state is flushed to storage.
const DefaultAutosaveInterval = 5 * time.Minute

// WorldState tracks the live state of the world: every room instance and
// every connected player.
type WorldState struct {
	mu sync.RWMutex

	pub    Publisher
	sched  scheduler.Registrar
	cmdset CmdSetSwapper

	items storage.Storer[*Item]
	chars storage.Storer[*Character]

	rooms   map[storage.Identifier]*RoomInstance
	players map[storage.Identifier]*Living

	defaultRoom        storage.Identifier
	metabolismInterval time.Duration
}

// NewWorldState builds the world from its room definitions and arms the
// autosave job.
func NewWorldState(
	roomDefs storage.Storer[*Room],
	items storage.Storer[*Item],
	chars storage.Storer[*Character],
	pub Publisher,
	sched scheduler.Registrar,
	defaultRoom storage.Identifier,
	metabolismInterval time.Duration,
) (*WorldState, error) {
	w := &WorldState{
		pub:                pub,
		sched:              sched,
		items:              items,
		chars:              chars,
		rooms:              make(map[storage.Identifier]*RoomInstance),
		players:            make(map[storage.Identifier]*Living),
		defaultRoom:        defaultRoom,
		metabolismInterval: metabolismInterval,
	}

	for id, def := range roomDefs.GetAll() {
		w.rooms[id] = NewRoomInstance(id, def)
	}
	if _, ok := w.rooms[defaultRoom]; !ok {
		return nil, fmt.Errorf("default room %q: %w", defaultRoom, ErrRoomNotFound)
	}

	if sched != nil {
		sched.Schedule("world-autosave", DefaultAutosaveInterval, func(ctx context.Context) {
			if err := w.SaveAll(); err != nil {
				slog.Warn("autosave failed", "error", err)
			}
		})
	}
	return w, nil
}

// SetCmdSetSwapper installs the command-set swapper. The command layer is
// built after the world, so this is wired late.
func (w *WorldState) SetCmdSetSwapper(s CmdSetSwapper) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cmdset = s
}

// CreateCharacter makes and persists a new character record.
func (w *WorldState) CreateCharacter(id storage.Identifier, name string) (*Character, error) {
	if w.chars.Get(id) != nil {
		return nil, ErrPlayerExists
	}
	c := NewCharacter(name)
	if err := w.chars.Save(id, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddCharacter brings a persisted character into the world, placing it in
// its last known room (or the default room) and starting its metabolism if
// it is alive.
func (w *WorldState) AddCharacter(id storage.Identifier) (*Living, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.players[id]; ok {
		return nil, ErrPlayerExists
	}

	char := w.chars.Get(id)
	if char == nil {
		return nil, ErrPlayerNotFound
	}
	if err := char.Resolve(w.items); err != nil {
		return nil, fmt.Errorf("resolving character %q: %w", id, err)
	}

	room, ok := w.rooms[char.LastRoom]
	if !ok {
		room = w.rooms[w.defaultRoom]
	}

	l := NewLiving(id, char, room, w.pub, w.sched, w.cmdset, w.metabolismInterval)
	w.players[id] = l
	room.AddPlayer(l)
	l.RearmLights()

	if char.Dead {
		if w.cmdset != nil {
			w.cmdset.SwapCmdSet(id, CmdSetDead)
		}
	} else {
		l.Metabolism.Start()
		if w.cmdset != nil {
			w.cmdset.SwapCmdSet(id, CmdSetAlive)
		}
	}

	slog.Info("character entered world", "character", id, "room", room.Id)
	return l, nil
}

// RemovePlayer saves a player and takes it out of the world, stopping all
// of its scheduled jobs.
func (w *WorldState) RemovePlayer(id storage.Identifier) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	l, ok := w.players[id]
	if !ok {
		return ErrPlayerNotFound
	}

	if err := w.savePlayerLocked(l); err != nil {
		return err
	}

	l.Metabolism.Stop()
	l.StopLightJobs()
	if w.sched != nil {
		w.sched.StopAll(fmt.Sprintf("metabolism-%s", id))
	}
	if l.Room() != nil {
		l.Room().RemovePlayer(id)
	}
	delete(w.players, id)

	slog.Info("character left world", "character", id)
	return nil
}

// GetPlayer returns the live entity for a connected player, or nil.
func (w *WorldState) GetPlayer(id storage.Identifier) *Living {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.players[id]
}

// GetRoom returns a room instance, or nil.
func (w *WorldState) GetRoom(id storage.Identifier) *RoomInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.rooms[id]
}

// SpawnItem creates an instance of an item definition.
func (w *WorldState) SpawnItem(defId storage.Identifier) (*ItemInstance, error) {
	def := w.items.Get(defId)
	if def == nil {
		return nil, fmt.Errorf("unknown item definition %q", defId)
	}
	return NewItemInstance(defId, def), nil
}

// MovePlayer walks a player through a room exit.
func (w *WorldState) MovePlayer(l *Living, direction string) error {
	from := l.Room()
	if from == nil {
		return ErrRoomNotFound
	}

	destId, ok := from.Room.Exits[direction]
	if !ok {
		return ErrRoomNotFound
	}

	w.mu.RLock()
	dest, ok := w.rooms[destId]
	w.mu.RUnlock()
	if !ok {
		return ErrRoomNotFound
	}

	l.BroadcastVisual(fmt.Sprintf("%s leaves %s.", l.Name(), direction), "You hear someone leave.")
	from.RemovePlayer(l.CharId)
	l.room = dest
	l.Char.LastRoom = destId
	dest.AddPlayer(l)
	l.BroadcastVisual(fmt.Sprintf("%s arrives.", l.Name()), "You hear someone arrive.")
	return nil
}

// SavePlayer flushes one player's state to storage.
func (w *WorldState) SavePlayer(id storage.Identifier) error {
	w.mu.RLock()
	l, ok := w.players[id]
	w.mu.RUnlock()
	if !ok {
		return ErrPlayerNotFound
	}
	return w.savePlayerLocked(l)
}

// SaveAll flushes every connected player's state to storage.
func (w *WorldState) SaveAll() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	el := errors.NewErrorList()
	for _, l := range w.players {
		el.Add(w.savePlayerLocked(l))
	}
	return el.Err()
}

func (w *WorldState) savePlayerLocked(l *Living) error {
	l.SyncToCharacter()
	if l.Room() != nil {
		l.Char.LastRoom = l.Room().Id
	}
	return w.chars.Save(l.CharId, l.Char)
}
