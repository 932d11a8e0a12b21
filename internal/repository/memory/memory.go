// Package memory provides in-memory repository implementations, used by
// tests and by local runs without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hamza-bely/4hybd/internal/domain"
	"github.com/hamza-bely/4hybd/internal/repository"
)

// UserRepo is a map-backed repository.UserRepository. It enforces the same
// email uniqueness rule as the Postgres constraint.
type UserRepo struct {
	mu    sync.RWMutex
	items map[string]domain.User
	now   func() time.Time
}

// NewUserRepo builds an empty repo.
func NewUserRepo() *UserRepo {
	return &UserRepo{items: make(map[string]domain.User), now: time.Now}
}

// WithClock overrides the timestamp source.
func (r *UserRepo) WithClock(now func() time.Time) *UserRepo {
	r.now = now
	return r
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	now := r.now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.items[user.ID] = *user
	return nil
}

func (r *UserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.items {
		if id != user.ID && existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.UpdatedAt = r.now()
	r.items[user.ID] = *user
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.items {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *UserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.items {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.User, 0, len(r.items))
	for _, user := range r.items {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

// MessageRepo is a map-backed repository.MessageRepository.
type MessageRepo struct {
	mu    sync.RWMutex
	items []domain.Message
	now   func() time.Time
}

// NewMessageRepo builds an empty repo.
func NewMessageRepo() *MessageRepo {
	return &MessageRepo{now: time.Now}
}

func (r *MessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = uuid.NewString()
	msg.CreatedAt = r.now()
	r.items = append(r.items, *msg)
	return nil
}

func (r *MessageRepo) ListByReceiver(_ context.Context, userID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Message
	for _, msg := range r.items {
		for _, receiver := range msg.ReceiverIDs {
			if receiver == userID {
				result = append(result, msg)
				break
			}
		}
	}
	return result, nil
}

func (r *MessageRepo) ListBySender(_ context.Context, userID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Message
	for _, msg := range r.items {
		if msg.SenderID == userID {
			result = append(result, msg)
		}
	}
	return result, nil
}

// StoryRepo is a map-backed repository.StoryRepository.
type StoryRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Story
	now   func() time.Time
}

// NewStoryRepo builds an empty repo.
func NewStoryRepo() *StoryRepo {
	return &StoryRepo{items: make(map[string]domain.Story), now: time.Now}
}

func (r *StoryRepo) Create(_ context.Context, story *domain.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	story.ID = uuid.NewString()
	story.CreatedAt = r.now()
	r.items[story.ID] = *story
	return nil
}

func (r *StoryRepo) Update(_ context.Context, story *domain.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[story.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.items[story.ID] = *story
	return nil
}

func (r *StoryRepo) GetByID(_ context.Context, id string) (*domain.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	story, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &story, nil
}

func (r *StoryRepo) ListActive(_ context.Context, now time.Time) ([]domain.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Story
	for _, story := range r.items {
		if story.ExpiresAt.After(now) {
			result = append(result, story)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}
