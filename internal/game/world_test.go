package game

import (
	"context"
	"testing"
	"time"

	"github.com/pixil98/go-mud-survival/internal/scheduler"
	"github.com/pixil98/go-mud-survival/internal/storage"
	"github.com/pixil98/go-testutil"
)

func newTestWorld(t *testing.T) (*WorldState, *recordingPublisher, storage.Storer[*Character]) {
	t.Helper()

	rooms := storage.NewMemStore[*Room]()
	if err := rooms.Save("meadow", &Room{Name: "A sunny meadow", LightLevel: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rooms.Save("cave", &Room{Name: "A dark cave", LightLevel: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := storage.NewMemStore[*Item]()
	if err := items.Save("torch", torchDef()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chars := storage.NewMemStore[*Character]()
	pub := newRecordingPublisher()

	w, err := NewWorldState(rooms, items, chars, pub, scheduler.New(), "meadow", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.SetCmdSetSwapper(&recordingSwapper{})
	return w, pub, chars
}

func TestWorldCreateCharacter(t *testing.T) {
	w, _, chars := newTestWorld(t)

	c, err := w.CreateCharacter("ann", "Ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", c.Name, "Ann")
	testutil.AssertEqual(t, "persisted", chars.Get("ann") == c, true)

	_, err = w.CreateCharacter("ann", "Ann")
	assertErrorIs(t, "duplicate", err, ErrPlayerExists)
}

func TestWorldAddCharacter(t *testing.T) {
	w, _, _ := newTestWorld(t)
	if _, err := w.CreateCharacter("ann", "Ann"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l, err := w.AddCharacter("ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "room", l.Room().Id, storage.Identifier("meadow"))
	testutil.AssertEqual(t, "lookup", w.GetPlayer("ann") == l, true)
	testutil.AssertEqual(t, "in room", l.Room().FindPlayer("Ann") == l, true)

	_, err = w.AddCharacter("ann")
	assertErrorIs(t, "already in world", err, ErrPlayerExists)

	_, err = w.AddCharacter("ghost")
	assertErrorIs(t, "unknown character", err, ErrPlayerNotFound)
}

func TestWorldAddCharacterRestoresLastRoom(t *testing.T) {
	w, _, chars := newTestWorld(t)
	c := NewCharacter("Ann")
	c.LastRoom = "cave"
	if err := chars.Save("ann", c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l, err := w.AddCharacter("ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "room", l.Room().Id, storage.Identifier("cave"))
}

func TestWorldRemovePlayerSaves(t *testing.T) {
	w, _, chars := newTestWorld(t)
	if _, err := w.CreateCharacter("ann", "Ann"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, err := w.AddCharacter("ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Metabolism.Hunger.Increase(25)

	if err := w.RemovePlayer("ann"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "gone", w.GetPlayer("ann") == nil, true)
	saved := chars.Get("ann")
	testutil.AssertEqual(t, "saved hunger", saved.Hunger, 25.0)
	testutil.AssertEqual(t, "saved room", saved.LastRoom, storage.Identifier("meadow"))

	assertErrorIs(t, "remove again", w.RemovePlayer("ann"), ErrPlayerNotFound)
}

func TestWorldMovePlayer(t *testing.T) {
	w, _, chars := newTestWorld(t)
	c := NewCharacter("Ann")
	if err := chars.Save("ann", c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	meadow := w.GetRoom("meadow")
	meadow.Room.Exits = map[string]storage.Identifier{"north": "cave"}

	l, err := w.AddCharacter("ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := w.MovePlayer(l, "north"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "room", l.Room().Id, storage.Identifier("cave"))
	testutil.AssertEqual(t, "left meadow", meadow.FindPlayer("Ann") == nil, true)
	testutil.AssertEqual(t, "last room", l.Char.LastRoom, storage.Identifier("cave"))

	assertErrorIs(t, "no exit", w.MovePlayer(l, "up"), ErrRoomNotFound)
}

func TestWorldSpawnItem(t *testing.T) {
	w, _, _ := newTestWorld(t)

	oi, err := w.SpawnItem("torch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "fuel seeded", oi.Fuel, 3.0)

	if _, err := w.SpawnItem("unobtainium"); err == nil {
		t.Error("expected error for unknown definition")
	}
}

func TestWorldRejectsUnknownDefaultRoom(t *testing.T) {
	rooms := storage.NewMemStore[*Room]()
	_, err := NewWorldState(rooms, storage.NewMemStore[*Item](), storage.NewMemStore[*Character](), nil, nil, "nowhere", 0)
	if err == nil {
		t.Error("expected error for unknown default room")
	}
}

func TestWorldRelightsBurningItemsOnLoad(t *testing.T) {
	rooms := storage.NewMemStore[*Room]()
	if err := rooms.Save("meadow", &Room{Name: "A sunny meadow", LightLevel: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := storage.NewMemStore[*Item]()
	if err := items.Save("torch", torchDef()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A character saved mid-burn
	chars := storage.NewMemStore[*Character]()
	c := NewCharacter("Ann")
	torch := NewItemInstance("torch", torchDef())
	torch.On = true
	c.Inventory.AddObj(torch)
	if err := chars.Save("ann", c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sched := scheduler.New()
	w, err := NewWorldState(rooms, items, chars, newRecordingPublisher(), sched, "meadow", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.SetCmdSetSwapper(&recordingSwapper{})

	l, err := w.AddCharacter("ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The burn resumed on load
	sched.Advance(context.Background(), time.Minute)
	loaded := l.Inventory().Get(torch.InstanceId)
	testutil.AssertEqual(t, "fuel burned after load", loaded.Fuel, 2.0)

	// Leaving the world pauses the burn without extinguishing
	if err := w.RemovePlayer("ann"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sched.Advance(context.Background(), time.Minute)
	testutil.AssertEqual(t, "fuel untouched after leave", loaded.Fuel, 2.0)
	testutil.AssertEqual(t, "still lit", loaded.On, true)
}
