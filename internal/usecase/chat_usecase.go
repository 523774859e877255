package usecase

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/domain/chat"
	"job-board/internal/ws"
)

var (
	ErrEmptyMessage     = errors.New("message is required")
	ErrMissingRecipient = errors.New("receiver is required")
)

type ChatUsecase interface {
	Send(ctx context.Context, senderID, receiverID, message string) (chat.Message, error)
	History(ctx context.Context, userID, otherID string) ([]chat.Message, error)
}

// Chat is the HTTP path into the relay. The HTTP response acknowledges the
// sender, so no echo frame is emitted.
type Chat struct {
	relay *ws.Relay
}

func NewChatUsecase(relay *ws.Relay) *Chat {
	return &Chat{relay: relay}
}

func (u *Chat) Send(ctx context.Context, senderID, receiverID, message string) (chat.Message, error) {
	if strings.TrimSpace(receiverID) == "" {
		return chat.Message{}, ErrMissingRecipient
	}
	out := u.relay.Send(ctx, "", ws.SendInput{SenderID: senderID, ReceiverID: receiverID, Message: message})
	switch out.Status {
	case ws.StatusDelivered, ws.StatusStored:
		return out.Message, nil
	case ws.StatusRejected:
		switch out.Reason {
		case ws.ReasonMissingSender:
			return chat.Message{}, ErrUnauthorized
		case ws.ReasonMissingReceiver:
			return chat.Message{}, ErrMissingRecipient
		default:
			return chat.Message{}, ErrEmptyMessage
		}
	default:
		return chat.Message{}, ErrInternal
	}
}

func (u *Chat) History(ctx context.Context, userID, otherID string) ([]chat.Message, error) {
	msgs, err := u.relay.History(ctx, userID, otherID)
	if err != nil {
		return nil, ErrInternal
	}
	return msgs, nil
}
