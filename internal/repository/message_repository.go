package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamza-bely/4hybd/internal/domain"
)

// MessageRepository manages direct messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByReceiver(ctx context.Context, userID string) ([]domain.Message, error)
	ListBySender(ctx context.Context, userID string) ([]domain.Message, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository builds repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	const query = `
        INSERT INTO messages (sender_id, receiver_ids, content, media_url, type)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		msg.SenderID,
		msg.ReceiverIDs,
		msg.Content,
		msg.MediaURL,
		msg.Type,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *messageRepository) ListByReceiver(ctx context.Context, userID string) ([]domain.Message, error) {
	const query = `
        SELECT id, sender_id, receiver_ids, content, media_url, type, created_at
        FROM messages WHERE $1 = ANY(receiver_ids) ORDER BY created_at ASC`
	return r.list(ctx, query, userID)
}

func (r *messageRepository) ListBySender(ctx context.Context, userID string) ([]domain.Message, error) {
	const query = `
        SELECT id, sender_id, receiver_ids, content, media_url, type, created_at
        FROM messages WHERE sender_id=$1 ORDER BY created_at ASC`
	return r.list(ctx, query, userID)
}

func (r *messageRepository) list(ctx context.Context, query string, args ...any) ([]domain.Message, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *msg)
	}
	return result, rows.Err()
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var msg domain.Message
	if err := row.Scan(
		&msg.ID,
		&msg.SenderID,
		&msg.ReceiverIDs,
		&msg.Content,
		&msg.MediaURL,
		&msg.Type,
		&msg.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &msg, nil
}
