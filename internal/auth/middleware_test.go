package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/domain"
	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// mapDenyList is a test double for the Redis deny-list.
type mapDenyList struct {
	mu      sync.Mutex
	revoked map[string]struct{}
}

func newMapDenyList() *mapDenyList {
	return &mapDenyList{revoked: make(map[string]struct{})}
}

func (d *mapDenyList) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[tokenID] = struct{}{}
	return nil
}

func (d *mapDenyList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[tokenID]
	return ok, nil
}

func setupApp(t *testing.T, tm *auth.TokenManager, denyList auth.DenyList) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": de.Code}})
		},
	})
	mw := auth.NewAuthMiddleware(tm, denyList)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		identity, ok := auth.IdentityFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"userId": identity.UserID, "email": identity.Email})
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	app := setupApp(t, auth.NewTokenManager("secret", time.Hour), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	t.Parallel()

	app := setupApp(t, auth.NewTokenManager("secret", time.Hour), nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("secret", time.Hour)
	app := setupApp(t, tm, nil)

	tok, _, err := tm.GenerateToken(auth.Identity{UserID: "u1", Email: "a@x.com", Role: domain.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-2 * time.Hour)
	tm := auth.NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return issued })
	tok, _, err := tm.GenerateToken(auth.Identity{UserID: "u1", Email: "a@x.com", Role: domain.RoleUser})
	require.NoError(t, err)

	app := setupApp(t, auth.NewTokenManager("secret", time.Hour), nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("secret", time.Hour)
	denyList := newMapDenyList()
	app := setupApp(t, tm, denyList)

	tok, _, err := tm.GenerateToken(auth.Identity{UserID: "u1", Email: "a@x.com", Role: domain.RoleUser})
	require.NoError(t, err)

	claims, err := tm.ParseToken(tok)
	require.NoError(t, err)
	require.NoError(t, denyList.Revoke(context.Background(), claims.ID, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNoopDenyList(t *testing.T) {
	t.Parallel()

	d := auth.NewNoopDenyList()
	require.NoError(t, d.Revoke(context.Background(), "jti", time.Hour))
	revoked, err := d.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	require.False(t, revoked)
}
