package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-mud-survival/internal/scheduler"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// assertErrorIs checks an error against its expected sentinel.
func assertErrorIs(t *testing.T, label string, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Errorf("%s: got %v, want %v", label, err, want)
	}
}

// assertSameItem compares item instances by identity.
func assertSameItem(t *testing.T, label string, got, want *ItemInstance) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", label, got, want)
	}
}

// recordingPublisher captures published messages for assertions.
type recordingPublisher struct {
	player       map[storage.Identifier][]string
	room         []string
	roomExcludes [][]storage.Identifier
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{
		player: make(map[storage.Identifier][]string),
	}
}

func (p *recordingPublisher) PublishToPlayer(charId storage.Identifier, data []byte) error {
	p.player[charId] = append(p.player[charId], string(data))
	return nil
}

func (p *recordingPublisher) PublishToRoom(roomId storage.Identifier, exclude []storage.Identifier, data []byte) error {
	p.room = append(p.room, string(data))
	p.roomExcludes = append(p.roomExcludes, exclude)
	return nil
}

func (p *recordingPublisher) lastExcludes() []storage.Identifier {
	if len(p.roomExcludes) == 0 {
		return nil
	}
	return p.roomExcludes[len(p.roomExcludes)-1]
}

func (p *recordingPublisher) lastTo(charId storage.Identifier) string {
	msgs := p.player[charId]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

// recordingSwapper captures command set swaps.
type recordingSwapper struct {
	swaps []CmdSet
}

func (s *recordingSwapper) SwapCmdSet(charId storage.Identifier, set CmdSet) {
	s.swaps = append(s.swaps, set)
}

func (s *recordingSwapper) last() CmdSet {
	if len(s.swaps) == 0 {
		return ""
	}
	return s.swaps[len(s.swaps)-1]
}

type testFixture struct {
	living *Living
	room   *RoomInstance
	pub    *recordingPublisher
	swap   *recordingSwapper
	sched  *scheduler.Scheduler
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	pub := newRecordingPublisher()
	swap := &recordingSwapper{}
	sched := scheduler.New()
	room := NewRoomInstance("meadow", &Room{Name: "A sunny meadow", LightLevel: 50})

	l := NewLiving("ann", NewCharacter("Ann"), room, pub, sched, swap, 0)
	room.AddPlayer(l)
	l.Metabolism.Start()

	return &testFixture{
		living: l,
		room:   room,
		pub:    pub,
		swap:   swap,
		sched:  sched,
	}
}

// newTestItem spawns an instance of an inline definition and, unless told
// otherwise, puts it in the fixture's inventory.
func (f *testFixture) newTestItem(def *Item) *ItemInstance {
	oi := NewItemInstance(storage.Identifier(def.Aliases[0]), def)
	f.living.AddObj(oi)
	return oi
}

func holdableDef(alias string, weight int) *Item {
	return &Item{
		Aliases:   []string{alias},
		ShortDesc: "a " + alias,
		Weight:    weight,
		Flags:     []string{ItemFlagHoldable},
	}
}
