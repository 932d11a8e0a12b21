package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// RequireIdentity ensures the request carries an authenticated identity.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// CheckOwnerEmail enforces that the caller owns the targeted resource,
// matching on the recorded owner email. No admin bypass exists.
func CheckOwnerEmail(identity *Identity, ownerEmail string) error {
	if identity == nil || identity.Email != ownerEmail {
		return apperrors.NewForbidden("you can only operate on your own resource")
	}
	return nil
}

// CheckOwnerID enforces ownership by user id, for resources that record the
// owner's id rather than email.
func CheckOwnerID(identity *Identity, ownerID string) error {
	if identity == nil || identity.UserID != ownerID {
		return apperrors.NewForbidden("you can only operate on your own resource")
	}
	return nil
}
