package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/config"
	"github.com/hamza-bely/4hybd/internal/domain"
	"github.com/hamza-bely/4hybd/internal/events"
	"github.com/hamza-bely/4hybd/internal/repository"
	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// AuthResult is returned by register and login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService coordinates registration and login flows. Registration is the
// only mutating operation; login issues a token without touching the store.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	denyList   auth.DenyList
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	TokenMgr   *auth.TokenManager
	DenyList   auth.DenyList
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	tokenMgr := deps.TokenMgr
	if tokenMgr == nil {
		tokenMgr = auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL())
	}
	denyList := deps.DenyList
	if denyList == nil {
		denyList = auth.NewNoopDenyList()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   tokenMgr,
		denyList:   denyList,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// NormalizeEmail applies the store-wide email case rule. Existence checks
// and saves always see the same form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with role USER and issues a token for it.
// The existence pre-check is a fast path; the store's uniqueness constraint
// is the authoritative duplicate signal.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if exists {
		return nil, apperrors.NewDuplicateEmail()
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewDuplicateEmail()
		}
		return nil, apperrors.MapError(err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		ActorID:   user.ID,
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{UserID: user.ID, Email: user.Email},
	})
	return result, nil
}

// Login authenticates an account. Unknown email and wrong password yield
// the same failure, so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.MapError(err)
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.NewInvalidCredentials()
	}
	return s.issueToken(user)
}

// Logout deny-lists the presented token until its natural expiry. With no
// deny-list configured this is a no-op and logout stays client-side.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	claims, err := s.tokenMgr.ParseToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}
	remaining := claims.ExpiresAt.Time.Sub(s.tokenMgr.Now())
	if err := s.denyList.Revoke(ctx, claims.ID, remaining); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issueToken(user *domain.User) (*AuthResult, error) {
	identity := auth.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
	token, exp, err := s.tokenMgr.GenerateToken(identity)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
