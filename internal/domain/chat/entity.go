package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once stored. Seq is the insertion sequence and breaks
// timestamp ties inside a conversation.
type Message struct {
	ID         uuid.UUID `json:"id"`
	Seq        int64     `json:"-"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}
