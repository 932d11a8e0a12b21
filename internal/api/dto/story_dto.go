package dto

import (
	"time"

	"github.com/hamza-bely/4hybd/internal/domain"
)

// StoryResponse is the outward story shape.
type StoryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	MediaURL  string    `json:"mediaUrl"`
	MediaType string    `json:"mediaType"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewStoryResponse maps a domain story.
func NewStoryResponse(story *domain.Story) StoryResponse {
	return StoryResponse{
		ID:        story.ID,
		UserID:    story.UserID,
		MediaURL:  story.MediaURL,
		MediaType: story.MediaType,
		Latitude:  story.Latitude,
		Longitude: story.Longitude,
		CreatedAt: story.CreatedAt,
		ExpiresAt: story.ExpiresAt,
	}
}

// NewStoryResponses maps a slice.
func NewStoryResponses(stories []domain.Story) []StoryResponse {
	result := make([]StoryResponse, 0, len(stories))
	for i := range stories {
		result = append(result, NewStoryResponse(&stories[i]))
	}
	return result
}
