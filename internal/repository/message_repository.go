package repository

import (
	"context"
	"fmt"

	"job-board/internal/database"
	"job-board/internal/domain/chat"

	"github.com/google/uuid"
)

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Create assigns the id here and lets the database stamp seq and created_at.
func (r *PostgresMessageRepository) Create(ctx context.Context, m chat.Message) (chat.Message, error) {
	m.ID = uuid.New()
	err := r.db.QueryRow(ctx,
		`INSERT INTO chat_messages (id, sender_id, receiver_id, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING seq, created_at`,
		m.ID, m.SenderID, m.ReceiverID, m.Message,
	).Scan(&m.Seq, &m.Timestamp)
	if err != nil {
		return chat.Message{}, fmt.Errorf("insert chat message: %w", err)
	}
	return m, nil
}

func (r *PostgresMessageRepository) Conversation(ctx context.Context, a, b string) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, seq, sender_id, receiver_id, message, created_at
		 FROM chat_messages
		 WHERE (sender_id = $1 AND receiver_id = $2)
		    OR (sender_id = $2 AND receiver_id = $1)
		 ORDER BY created_at ASC, seq ASC`,
		a, b,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.Seq, &m.SenderID, &m.ReceiverID, &m.Message, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
