package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hamza-bely/4hybd/internal/api/dto"
	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/service"
	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// StoriesHandler exposes story endpoints. Uploads are multipart.
type StoriesHandler struct {
	stories *service.StoryService
}

// NewStoriesHandler constructs handler.
func NewStoriesHandler(storyService *service.StoryService) *StoriesHandler {
	return &StoriesHandler{stories: storyService}
}

// Upload handles POST /stories. The owner is the authenticated caller.
func (h *StoriesHandler) Upload(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	input, err := storyInput(c)
	if err != nil {
		return err
	}

	story, err := h.stories.Upload(c.UserContext(), identity.UserID, *input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStoryResponse(story)})
}

// Update handles PUT /stories/:id, replacing the media and resetting expiry.
func (h *StoriesHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	input, err := storyInput(c)
	if err != nil {
		return err
	}

	story, err := h.stories.Update(c.UserContext(), identity, c.Params("id"), *input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStoryResponse(story)})
}

// Get handles GET /stories/:id.
func (h *StoriesHandler) Get(c *fiber.Ctx) error {
	story, err := h.stories.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStoryResponse(story)})
}

// ListActive handles GET /stories, returning only unexpired stories.
func (h *StoriesHandler) ListActive(c *fiber.Ctx) error {
	stories, err := h.stories.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStoryResponses(stories)})
}

func storyInput(c *fiber.Ctx) (*service.StoryUploadInput, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, apperrors.NewValidationError("file required", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("file unreadable", nil)
	}

	latitude, err := strconv.ParseFloat(c.FormValue("latitude", "0"), 64)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid latitude", nil)
	}
	longitude, err := strconv.ParseFloat(c.FormValue("longitude", "0"), 64)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid longitude", nil)
	}

	return &service.StoryUploadInput{
		File:      file,
		Filename:  fileHeader.Filename,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
