package repository

import (
	"context"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/group"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, m group.Message) error
	ListByGroup(ctx context.Context, groupID uuid.UUID, limit int) ([]group.Message, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m group.Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO messages (id, group_id, sender_id, content)
		 VALUES ($1, $2, $3, $4)`,
		m.ID, m.GroupID, m.SenderID, m.Content,
	)
	return err
}

// ListByGroup returns the most recent messages in chronological order.
func (r *PostgresMessageRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, limit int) ([]group.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, group_id, sender_id, content, created_at
		 FROM (
			SELECT id, group_id, sender_id, content, created_at
			FROM messages
			WHERE group_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		 ) recent
		 ORDER BY created_at ASC`,
		groupID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]group.Message, 0)
	for rows.Next() {
		var m group.Message
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
