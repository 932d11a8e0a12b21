package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/domain"
	"github.com/hamza-bely/4hybd/internal/repository"
	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// UserUpdateInput carries optional profile changes.
type UserUpdateInput struct {
	Name  *string
	Email *string
}

// UserService handles profile reads and owner-only mutations.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all profiles.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// Get returns one profile by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Update applies profile changes to the target account. Only the owner may
// mutate it; an email change re-checks uniqueness.
func (s *UserService) Update(ctx context.Context, identity *auth.Identity, id string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckOwnerEmail(identity, user.Email); err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		newEmail := NormalizeEmail(*input.Email)
		if newEmail != "" && newEmail != user.Email {
			exists, err := s.users.ExistsByEmail(ctx, newEmail)
			if err != nil {
				return nil, apperrors.MapError(err)
			}
			if exists {
				return nil, apperrors.NewDuplicateEmail()
			}
			user.Email = newEmail
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewDuplicateEmail()
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Delete removes the target account. Only the owner may delete it.
func (s *UserService) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CheckOwnerEmail(identity, user.Email); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
