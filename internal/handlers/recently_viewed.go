package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/utils"
	"gorm.io/gorm"
)

// RecentlyViewedHandler handles recently-viewed routes
type RecentlyViewedHandler struct {
	DB *gorm.DB
}

// ListRecentlyViewed handles GET /api/recentlyviewed
// @Summary List recently viewed properties
// @Description Up to count properties most recently viewed by the caller, newest first
// @Tags RecentlyViewed
// @Produce json
// @Param count query int false "Maximum results (default 10)"
// @Success 200 {array} PropertyResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /recentlyviewed [get]
func (h *RecentlyViewedHandler) ListRecentlyViewed(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	count := c.QueryInt("count", services.DefaultRecentlyViewedCount)

	properties, err := services.ListRecentlyViewed(h.DB, userID, count)
	if err != nil {
		return serviceErrorResponse(c, err, "recentlyviewed.list")
	}

	return c.Status(fiber.StatusOK).JSON(toPropertyResponses(properties))
}

// RecordView handles POST /api/recentlyviewed/:propertyId
// @Summary Record a property view
// @Description Upsert the last-viewed timestamp for the caller and property
// @Tags RecentlyViewed
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /recentlyviewed/{propertyId} [post]
func (h *RecentlyViewedHandler) RecordView(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	propertyID, err := parseIDParam(c, "propertyId")
	if err != nil {
		return utils.ErrorResponse(c, "Failed to record property view", fiber.StatusBadRequest, "recentlyviewed.record")
	}

	if err := services.RecordView(h.DB, userID, propertyID); err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrOperationFailed) {
			return utils.ErrorResponse(c, "Failed to record property view", fiber.StatusBadRequest, "recentlyviewed.record")
		}
		return serviceErrorResponse(c, err, "recentlyviewed.record")
	}

	return utils.OKResponse(c, "View recorded")
}
