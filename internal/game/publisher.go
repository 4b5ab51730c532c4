package game

import "github.com/pixil98/go-mud-survival/internal/storage"

// Publisher provides methods for publishing messages to game channels.
type Publisher interface {
	PublishToPlayer(charId storage.Identifier, data []byte) error
	PublishToRoom(roomId storage.Identifier, exclude []storage.Identifier, data []byte) error
}

// CmdSetSwapper installs a named command set on an entity, replacing the
// current one. The command layer implements this; living-state transitions
// call it so dead entities only see the dead command set.
type CmdSetSwapper interface {
	SwapCmdSet(charId storage.Identifier, set CmdSet)
}

// CmdSet names a bundle of commands available to an entity.
type CmdSet string

const (
	CmdSetAlive CmdSet = "alive"
	CmdSetDead  CmdSet = "dead"
)
