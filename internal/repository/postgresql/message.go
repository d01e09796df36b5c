package postgresql

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/message"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type messageRepositoryImpl struct {
	db *database.DB
}

func NewMessageRepository(db *database.DB) message.MessageRepository {
	return &messageRepositoryImpl{db: db}
}

const messageSelect = `
	SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at, su.name, ru.name
	FROM messages m
	JOIN users su ON su.id = m.sender_id
	JOIN users ru ON ru.id = m.receiver_id`

// Create implements message.MessageRepository.
func (r *messageRepositoryImpl) Create(ctx context.Context, m message.Message) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		uuid.NewString(), m.SenderID, m.ReceiverID, m.Content,
	).Scan(&id)
	if err != nil {
		return message.Message{}, err
	}

	var created message.Message
	err = q.QueryRow(ctx, messageSelect+` WHERE m.id = $1`, id).Scan(
		&created.ID, &created.SenderID, &created.ReceiverID, &created.Content,
		&created.CreatedAt, &created.SenderName, &created.ReceiverName,
	)
	return created, err
}

// Conversation implements message.MessageRepository.
func (r *messageRepositoryImpl) Conversation(ctx context.Context, userID, peerID string, page, limit int) ([]message.Message, int64, error) {
	q := GetQuerier(ctx, r.db)

	pair := `(m.sender_id = $1 AND m.receiver_id = $2) OR (m.sender_id = $2 AND m.receiver_id = $1)`

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages m WHERE `+pair,
		userID, peerID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	rows, err := q.Query(ctx,
		messageSelect+` WHERE `+pair+` ORDER BY m.created_at DESC LIMIT $3 OFFSET $4`,
		userID, peerID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []message.Message
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Content,
			&m.CreatedAt, &m.SenderName, &m.ReceiverName,
		); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}
