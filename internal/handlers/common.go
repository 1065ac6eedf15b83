package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/middleware"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/utils"
)

// getUserID extracts the authenticated user id from context (set by the
// auth middleware).
func getUserID(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals(middleware.LocalsUserID).(uint)
	if !ok || userID == 0 {
		return 0, fmt.Errorf("user not found in context")
	}
	return userID, nil
}

// unauthenticatedResponse is the uniform reply when the middleware did
// not populate an identity.
func unauthenticatedResponse(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.identity")
}

// serviceErrorResponse translates a service sentinel error into the
// matching HTTP response. Unknown errors become a 500 with the given
// error type tag.
func serviceErrorResponse(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Not found")
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, "You can only modify your own properties", fiber.StatusForbidden, errorType)
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, "Already exists", fiber.StatusBadRequest, errorType)
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, "Invalid credentials", fiber.StatusUnauthorized, errorType)
	case errors.Is(err, services.ErrOperationFailed):
		return utils.ErrorResponse(c, "Operation failed", fiber.StatusBadRequest, errorType)
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}

// parseIDParam reads a positive integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}
