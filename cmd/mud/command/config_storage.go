package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-survival/internal/commands"
	"github.com/pixil98/go-mud-survival/internal/game"
	"github.com/pixil98/go-mud-survival/internal/storage"
)

type StorageConfig struct {
	Characters AssetConfig[*game.Character]   `json:"characters"`
	Commands   AssetConfig[*commands.Command] `json:"commands"`
	Rooms      AssetConfig[*game.Room]        `json:"rooms"`
	Items      AssetConfig[*game.Item]        `json:"items"`
}

// Stores holds the opened asset stores the rest of the wiring pulls from.
type Stores struct {
	Characters *storage.FileStore[*game.Character]
	Commands   *storage.FileStore[*commands.Command]
	Rooms      *storage.FileStore[*game.Room]
	Items      *storage.FileStore[*game.Item]
}

func (c *StorageConfig) BuildStores() (*Stores, error) {
	chars, err := c.Characters.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating character store: %w", err)
	}
	cmds, err := c.Commands.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating command store: %w", err)
	}
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}

	return &Stores{
		Characters: chars,
		Commands:   cmds,
		Rooms:      rooms,
		Items:      items,
	}, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Characters.Validate("characters"))
	el.Add(c.Commands.Validate("commands"))
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
