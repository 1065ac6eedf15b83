package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/auth"
	"github.com/openlistings/realestate-api/internal/types"
)

// Context keys set by RequireAuth.
const (
	LocalsUserID    = "userID"
	LocalsUserEmail = "userEmail"
)

// RequireAuth validates the Authorization bearer token and stashes the
// caller's identity in the request context. Missing, malformed, and
// expired tokens all yield 401.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing Authorization header",
				Type:    "auth.token.missing",
			}
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid Authorization header format",
				Type:    "auth.token.malformed",
			}
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
				Type:    "auth.token.invalid",
			}
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsUserEmail, claims.Email)

		return c.Next()
	}
}
