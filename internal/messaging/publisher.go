package messaging

import (
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/display"
	"github.com/pixil98/go-mud-survival/internal/game"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

// RoomLocator resolves room instances so room-wide messages can fan out to
// their occupants. WorldState satisfies this.
type RoomLocator interface {
	GetRoom(id storage.Identifier) *game.RoomInstance
}

// NatsPublisher delivers game messages over per-player NATS subjects,
// satisfying game.Publisher. Text is word-wrapped before delivery.
type NatsPublisher struct {
	server *NatsServer
	rooms  RoomLocator
	width  int
}

func NewNatsPublisher(server *NatsServer, width int) *NatsPublisher {
	return &NatsPublisher{server: server, width: width}
}

// SetRoomLocator wires the room lookup. The world is built after the
// publisher, so this is wired late.
func (p *NatsPublisher) SetRoomLocator(rooms RoomLocator) {
	p.rooms = rooms
}

func (p *NatsPublisher) PublishToPlayer(charId storage.Identifier, data []byte) error {
	wrapped := display.Wrap(string(data), p.width)
	return p.server.Publish(fmt.Sprintf("player-%s", charId), []byte(wrapped))
}

func (p *NatsPublisher) PublishToRoom(roomId storage.Identifier, exclude []storage.Identifier, data []byte) error {
	if p.rooms == nil {
		return fmt.Errorf("room locator not wired")
	}
	room := p.rooms.GetRoom(roomId)
	if room == nil {
		return game.ErrRoomNotFound
	}

	excludeSet := make(map[storage.Identifier]bool, len(exclude))
	for _, id := range exclude {
		excludeSet[id] = true
	}

	var firstErr error
	for _, l := range room.Players() {
		if excludeSet[l.CharId] {
			continue
		}
		if err := p.PublishToPlayer(l.CharId, data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
