package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/pkg/auth"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/pkg/utils"
)

const (
	localUserID = "user_id"
	localRole   = "role"
)

// Authenticate requires a valid bearer token and stores the caller identity
// in request locals.
func Authenticate(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, tokens)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localRole, claims.Role)
		return c.Next()
	}
}

// OptionalAuthenticate resolves the caller identity when a token is present
// but lets anonymous requests through. Used by the submission endpoint,
// which accepts anonymous candidates.
func OptionalAuthenticate(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}

		claims, err := parseBearer(c, tokens)
		if err != nil {
			// A present but invalid token is rejected, not downgraded to
			// anonymous.
			return utils.SendError(c, err)
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localRole, claims.Role)
		return c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(localRole).(string)
		if role != domain.RoleAdmin {
			return utils.SendError(c, apperrors.ErrForbidden)
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller id, or false for anonymous
// requests.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(localUserID).(int64)
	return id, ok
}

func parseBearer(c *fiber.Ctx, tokens *auth.TokenManager) (*auth.Claims, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, apperrors.ErrUnauthorized
	}

	return tokens.Parse(strings.TrimPrefix(header, "Bearer "))
}
