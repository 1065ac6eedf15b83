package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/utils"
	"gorm.io/gorm"
)

// FavoriteHandler handles favorite routes
type FavoriteHandler struct {
	DB *gorm.DB
}

// ListFavorites handles GET /api/favorites
// @Summary List favorited properties
// @Tags Favorites
// @Produce json
// @Success 200 {array} PropertyResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	properties, err := services.ListFavorites(h.DB, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "favorites.list")
	}

	return c.Status(fiber.StatusOK).JSON(toPropertyResponses(properties))
}

// AddFavorite handles POST /api/favorites/:propertyId
// @Summary Add a favorite
// @Tags Favorites
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /favorites/{propertyId} [post]
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	propertyID, err := parseIDParam(c, "propertyId")
	if err != nil {
		return utils.NotFoundResponse(c, "Property not found")
	}

	if err := services.AddFavorite(h.DB, userID, propertyID); err != nil {
		if errors.Is(err, services.ErrConflict) {
			return utils.ErrorResponse(c, "Property already in favorites", fiber.StatusBadRequest, "favorites.add.conflict")
		}
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Property not found")
		}
		return serviceErrorResponse(c, err, "favorites.add")
	}

	return utils.OKResponse(c, "Added to favorites")
}

// RemoveFavorite handles DELETE /api/favorites/:propertyId
// @Summary Remove a favorite
// @Tags Favorites
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /favorites/{propertyId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	propertyID, err := parseIDParam(c, "propertyId")
	if err != nil {
		return utils.NotFoundResponse(c, "Favorite not found")
	}

	if err := services.RemoveFavorite(h.DB, userID, propertyID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Favorite not found")
		}
		return serviceErrorResponse(c, err, "favorites.remove")
	}

	return utils.OKResponse(c, "Removed from favorites")
}
