package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// MessageHandlerFactory creates handlers that render templated messages to
// the actor and the room. Used for says, emotes, and similar social
// commands.
// Config:
//   - sender_message (optional): template rendered to the actor
//   - room_message (optional): template broadcast to the room
//
// At least one of the two is required.
type MessageHandlerFactory struct {
	pub game.Publisher
}

func NewMessageHandlerFactory(pub game.Publisher) *MessageHandlerFactory {
	return &MessageHandlerFactory{pub: pub}
}

func (f *MessageHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{}
}

func (f *MessageHandlerFactory) ValidateConfig(config map[string]any) error {
	senderMessage, _ := config["sender_message"].(string)
	roomMessage, _ := config["room_message"].(string)
	if senderMessage == "" && roomMessage == "" {
		return fmt.Errorf("at least one of sender_message or room_message is required")
	}

	data := &TemplateData{Inputs: map[string]any{}}
	if senderMessage != "" {
		if _, err := ExpandTemplate(senderMessage, data); err != nil {
			return fmt.Errorf("sender_message: %w", err)
		}
	}
	if roomMessage != "" {
		if _, err := ExpandTemplate(roomMessage, data); err != nil {
			return fmt.Errorf("room_message: %w", err)
		}
	}
	return nil
}

func (f *MessageHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	senderMessage, _ := config["sender_message"].(string)
	roomMessage, _ := config["room_message"].(string)

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		data := &TemplateData{
			Actor:  cmdCtx.Actor.Name(),
			Inputs: cmdCtx.Inputs,
		}

		if senderMessage != "" {
			msg, err := ExpandTemplate(senderMessage, data)
			if err != nil {
				return fmt.Errorf("expanding sender message template: %w", err)
			}
			if err := f.pub.PublishToPlayer(cmdCtx.CharId, []byte(msg)); err != nil {
				return err
			}
		}

		if roomMessage != "" {
			msg, err := ExpandTemplate(roomMessage, data)
			if err != nil {
				return fmt.Errorf("expanding room message template: %w", err)
			}
			cmdCtx.Actor.Broadcast(msg)
		}
		return nil
	}, nil
}
