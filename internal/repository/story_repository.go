package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamza-bely/4hybd/internal/domain"
)

// StoryRepository manages ephemeral stories. Expiry is a read-time filter;
// nothing deletes expired rows.
type StoryRepository interface {
	Create(ctx context.Context, story *domain.Story) error
	Update(ctx context.Context, story *domain.Story) error
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	ListActive(ctx context.Context, now time.Time) ([]domain.Story, error)
}

type storyRepository struct {
	pool *pgxpool.Pool
}

// NewStoryRepository builds repository.
func NewStoryRepository(pool *pgxpool.Pool) StoryRepository {
	return &storyRepository{pool: pool}
}

func (r *storyRepository) Create(ctx context.Context, story *domain.Story) error {
	const query = `
        INSERT INTO stories (user_id, media_url, media_type, latitude, longitude, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		story.UserID,
		story.MediaURL,
		story.MediaType,
		story.Latitude,
		story.Longitude,
		story.ExpiresAt,
	).Scan(&story.ID, &story.CreatedAt)
}

func (r *storyRepository) Update(ctx context.Context, story *domain.Story) error {
	const query = `
        UPDATE stories SET media_url=$1, media_type=$2, latitude=$3, longitude=$4, expires_at=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		story.MediaURL,
		story.MediaType,
		story.Latitude,
		story.Longitude,
		story.ExpiresAt,
		story.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id string) (*domain.Story, error) {
	const query = `
        SELECT id, user_id, media_url, media_type, latitude, longitude, created_at, expires_at
        FROM stories WHERE id=$1`

	var story domain.Story
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&story.ID,
		&story.UserID,
		&story.MediaURL,
		&story.MediaType,
		&story.Latitude,
		&story.Longitude,
		&story.CreatedAt,
		&story.ExpiresAt,
	); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) ListActive(ctx context.Context, now time.Time) ([]domain.Story, error) {
	const query = `
        SELECT id, user_id, media_url, media_type, latitude, longitude, created_at, expires_at
        FROM stories WHERE expires_at > $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Story
	for rows.Next() {
		var story domain.Story
		if err := rows.Scan(
			&story.ID,
			&story.UserID,
			&story.MediaURL,
			&story.MediaType,
			&story.Latitude,
			&story.Longitude,
			&story.CreatedAt,
			&story.ExpiresAt,
		); err != nil {
			return nil, err
		}
		result = append(result, story)
	}
	return result, rows.Err()
}
