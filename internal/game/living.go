package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-mud-survival/internal/scheduler"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// Living is the runtime form of a character: the persisted record plus the
// survival subsystems that operate on it. All mutation goes through its
// methods; the command layer and the scheduler are the only callers.
type Living struct {
	CharId storage.Identifier
	Char   *Character

	Metabolism *Metabolism
	Vision     *Vision
	Held       *HeldItems
	Equipment  *Equipment

	room   *RoomInstance
	pub    Publisher
	sched  scheduler.Registrar
	cmdset CmdSetSwapper
}

// NewLiving assembles a Living from its persisted character. baseInterval is
// the metabolism pacing constant (injected configuration, typically 600s).
func NewLiving(charId storage.Identifier, char *Character, room *RoomInstance, pub Publisher, sched scheduler.Registrar, cmdset CmdSetSwapper, baseInterval time.Duration) *Living {
	l := &Living{
		CharId: charId,
		Char:   char,
		room:   room,
		pub:    pub,
		sched:  sched,
		cmdset: cmdset,
	}
	l.Metabolism = newMetabolism(l, sched, baseInterval)
	l.Vision = newVision(l)
	l.Held = newHeldItems(l)
	l.Equipment = newEquipment(l)

	if char.Dead {
		l.Vision.Disable()
	}
	return l
}

func (l *Living) Name() string {
	return l.Char.Name
}

func (l *Living) Inventory() *Inventory {
	return l.Char.Inventory
}

func (l *Living) Room() *RoomInstance {
	return l.room
}

func (l *Living) IsDead() bool {
	return l.Char.Dead
}

func (l *Living) IsResting() bool {
	return l.Char.Resting
}

// Msg delivers text directly to this entity.
func (l *Living) Msg(text string) {
	if l.pub == nil {
		return
	}
	_ = l.pub.PublishToPlayer(l.CharId, []byte(text))
}

// MsgVisual delivers a message with separate visual and sound renditions.
// Entities that cannot see receive only the sound part; a message with no
// sound part is dropped for them entirely.
func (l *Living) MsgVisual(visual, sound string) {
	if l.Vision.CanSee() {
		l.Msg(visual)
		return
	}
	if sound != "" {
		l.Msg(sound)
	}
}

// Broadcast sends text to everyone else in the room, sighted or not. Use it
// for speech and sound.
func (l *Living) Broadcast(text string) {
	if l.pub == nil || l.room == nil {
		return
	}
	_ = l.pub.PublishToRoom(l.room.Id, []storage.Identifier{l.CharId}, []byte(text))
}

// BroadcastVisual sends a message others must watch to notice. Occupants
// who cannot see are excluded from the room publish and get the sound
// rendition instead, if the message has one.
func (l *Living) BroadcastVisual(visual, sound string) {
	if l.pub == nil || l.room == nil {
		return
	}
	exclude := []storage.Identifier{l.CharId}
	for _, other := range l.room.Players() {
		if other.CharId == l.CharId {
			continue
		}
		if !other.Vision.CanSee() {
			exclude = append(exclude, other.CharId)
			other.MsgVisual(visual, sound)
		}
	}
	_ = l.pub.PublishToRoom(l.room.Id, exclude, []byte(visual))
}

// Die transitions the entity to the dead state. Calling it on an already
// dead entity is a no-op. Order matters: the death message is broadcast
// before perception shuts off.
func (l *Living) Die() {
	if l.Char.Dead {
		return
	}

	l.Msg("You collapse lifelessly.")
	l.BroadcastVisual(fmt.Sprintf("%s collapses lifelessly.", l.Name()), "You hear a body slump to the ground.")

	l.Char.Dead = true
	l.Char.Resting = false
	l.Metabolism.Stop()
	l.Vision.Disable()
	if l.cmdset != nil {
		l.cmdset.SwapCmdSet(l.CharId, CmdSetDead)
	}
}

// Revive returns a dead entity to life. No-op if already alive.
func (l *Living) Revive() {
	if !l.Char.Dead {
		return
	}

	l.Char.Dead = false
	l.Vision.Enable()
	l.Metabolism.Start()
	if l.cmdset != nil {
		l.cmdset.SwapCmdSet(l.CharId, CmdSetAlive)
	}
}

// ResetAndRevive silently zeroes all survival stats, clears resting, and
// revives the entity if dead. Returns a message describing what happened.
func (l *Living) ResetAndRevive() string {
	l.Metabolism.Reset()
	l.Char.Resting = false

	if l.Char.Dead {
		l.Revive()
		return "You have been revived and your needs are reset."
	}
	l.Metabolism.Start()
	return "Your needs are reset and you feel refreshed."
}

// StartResting lies the entity down. Refused when dead or already resting.
func (l *Living) StartResting() error {
	if l.Char.Dead {
		return ErrDead
	}
	if l.Char.Resting {
		return ErrAlreadyResting
	}
	l.Char.Resting = true
	l.BroadcastVisual(fmt.Sprintf("%s lies down to rest.", l.Name()), "")
	return nil
}

// StopResting gets the entity back up. Refused when not resting.
func (l *Living) StopResting() error {
	if l.Char.Dead {
		return ErrDead
	}
	if !l.Char.Resting {
		return ErrNotResting
	}
	l.Char.Resting = false
	l.BroadcastVisual(fmt.Sprintf("%s gets back up.", l.Name()), "")
	return nil
}

// UpdateLivingStatus applies the saturation rule: any pool at its ceiling
// kills the entity.
func (l *Living) UpdateLivingStatus() {
	if l.Metabolism.Saturated() {
		l.Die()
	}
}

// RemoveObj removes an item from the entity's inventory, clearing any held
// or equipped markers first. This is the leave hook: an item can never exit
// the inventory still flagged as carried.
func (l *Living) RemoveObj(instanceId string) *ItemInstance {
	oi := l.Char.Inventory.RemoveObj(instanceId)
	if oi != nil {
		oi.ClearCarryMarkers()
	}
	return oi
}

// AddObj adds an item to the entity's inventory.
func (l *Living) AddObj(oi *ItemInstance) {
	l.Char.Inventory.AddObj(oi)
}

// FindObj searches the entity's inventory by item name.
func (l *Living) FindObj(name string) *ItemInstance {
	return l.Char.Inventory.FindObj(name)
}

// CarriedWeight is the total weight of everything in the inventory.
func (l *Living) CarriedWeight() int {
	w := 0
	for _, oi := range l.Char.Inventory.Objs {
		w += oi.TotalWeight()
	}
	return w
}

// SyncToCharacter writes runtime pool values back onto the persisted record.
// Called before saving.
func (l *Living) SyncToCharacter() {
	l.Char.Hunger = l.Metabolism.Hunger.Value()
	l.Char.Thirst = l.Metabolism.Thirst.Value()
	l.Char.Tiredness = l.Metabolism.Tiredness.Value()
}

// StatLine is one row of a stat display.
type StatLine struct {
	Label  string
	Value  string
	Center bool
}

// StatSection is a titled group of stat lines.
type StatSection struct {
	Header string
	Lines  []StatLine
}

// StatSections returns the entity's status display sections.
func (l *Living) StatSections() []StatSection {
	state := "alive"
	if l.Char.Dead {
		state = "dead"
	} else if l.Char.Resting {
		state = "resting"
	}

	return []StatSection{
		{
			Lines: []StatLine{
				{Value: l.Name(), Center: true},
				{Value: state, Center: true},
			},
		},
		{
			Header: "Needs",
			Lines: []StatLine{
				{Label: "Hunger", Value: l.Metabolism.Hunger.Label()},
				{Label: "Thirst", Value: l.Metabolism.Thirst.Label()},
				{Label: "Tiredness", Value: l.Metabolism.Tiredness.Label()},
			},
		},
	}
}
