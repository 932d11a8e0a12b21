package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/domain"
	"github.com/hamza-bely/4hybd/internal/events"
	"github.com/hamza-bely/4hybd/internal/media"
	"github.com/hamza-bely/4hybd/internal/repository"
	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// StoryUploadInput describes a story upload.
type StoryUploadInput struct {
	File      io.Reader
	Filename  string
	Latitude  float64
	Longitude float64
}

// StoryService coordinates ephemeral stories. Media bytes go to the external
// host; only the returned URL is persisted.
type StoryService struct {
	stories    repository.StoryRepository
	uploader   media.Uploader
	dispatcher events.Dispatcher
	ttl        time.Duration
	now        func() time.Time
}

// NewStoryService builds the service.
func NewStoryService(stories repository.StoryRepository, uploader media.Uploader, dispatcher events.Dispatcher, ttl time.Duration) *StoryService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &StoryService{
		stories:    stories,
		uploader:   uploader,
		dispatcher: dispatcher,
		ttl:        ttl,
		now:        time.Now,
	}
}

// WithClock overrides the time source. Tests use this to pin "now".
func (s *StoryService) WithClock(now func() time.Time) *StoryService {
	s.now = now
	return s
}

// Upload hosts the media and persists a story owned by userID, expiring
// after the configured TTL.
func (s *StoryService) Upload(ctx context.Context, userID string, input StoryUploadInput) (*domain.Story, error) {
	result, err := s.uploader.Upload(ctx, input.File, input.Filename)
	if err != nil {
		return nil, apperrors.NewValidationError("media upload failed", map[string]any{"reason": err.Error()})
	}

	now := s.now()
	story := &domain.Story{
		UserID:    userID,
		MediaURL:  result.URL,
		MediaType: result.MediaType,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStoryPosted,
			ActorID:   userID,
			Timestamp: now,
			Payload: events.StoryPostedPayload{
				StoryID:   story.ID,
				MediaType: story.MediaType,
				ExpiresAt: story.ExpiresAt,
			},
		})
	}
	return story, nil
}

// Update replaces the story's media and resets its expiry. Only the owner
// may do this.
func (s *StoryService) Update(ctx context.Context, identity *auth.Identity, id string, input StoryUploadInput) (*domain.Story, error) {
	story, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckOwnerID(identity, story.UserID); err != nil {
		return nil, err
	}

	result, err := s.uploader.Upload(ctx, input.File, input.Filename)
	if err != nil {
		return nil, apperrors.NewValidationError("media upload failed", map[string]any{"reason": err.Error()})
	}

	story.MediaURL = result.URL
	story.MediaType = result.MediaType
	story.Latitude = input.Latitude
	story.Longitude = input.Longitude
	story.ExpiresAt = s.now().Add(s.ttl)

	if err := s.stories.Update(ctx, story); err != nil {
		return nil, apperrors.MapError(err)
	}
	return story, nil
}

// Get returns one story by id, expired or not.
func (s *StoryService) Get(ctx context.Context, id string) (*domain.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("story", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return story, nil
}

// ListActive returns only stories whose expiry is still in the future.
func (s *StoryService) ListActive(ctx context.Context) ([]domain.Story, error) {
	stories, err := s.stories.ListActive(ctx, s.now())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stories, nil
}
