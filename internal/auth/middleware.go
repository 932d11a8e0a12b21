package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware validates bearer tokens and attaches the caller identity.
// Identity is resolved from the signed claims alone; no lookup against the
// credential store happens per request.
type AuthMiddleware struct {
	tokens   *TokenManager
	denyList DenyList
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, denyList DenyList) *AuthMiddleware {
	if denyList == nil {
		denyList = NewNoopDenyList()
	}
	return &AuthMiddleware{tokens: tokens, denyList: denyList}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, err := BearerToken(c)
	if err != nil {
		return err
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	revoked, err := m.denyList.IsRevoked(c.UserContext(), claims.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if revoked {
		return apperrors.NewUnauthorized("token revoked")
	}

	identity := IdentityFromClaims(claims)
	c.Locals(identityKey, &identity)
	return c.Next()
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.NewUnauthorized("missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}
	return parts[1], nil
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
