package chat

import "context"

type Repository interface {
	// Create stores m and returns it with ID, Seq and Timestamp assigned.
	Create(ctx context.Context, m Message) (Message, error)
	// Conversation returns messages exchanged between a and b in either
	// direction, oldest first.
	Conversation(ctx context.Context, a, b string) ([]Message, error)
}
