package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/utils"
	"gorm.io/gorm"
)

// PropertyHandler handles listing routes
type PropertyHandler struct {
	DB *gorm.DB
}

// ListProperties handles GET /api/properties
// @Summary List properties
// @Description List properties matching the conjunction of the supplied filters
// @Tags Properties
// @Produce json
// @Param suburb query string false "Substring match against suburb, city, or address"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param bedrooms query int false "Exact bedroom count"
// @Param listingType query string false "Sale or Rent"
// @Success 200 {array} PropertyResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	filter := services.PropertyFilter{
		Suburb:      c.Query("suburb"),
		ListingType: c.Query("listingType"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.ErrorResponse(c, "Invalid minPrice", fiber.StatusBadRequest, "properties.validation.filter")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.ErrorResponse(c, "Invalid maxPrice", fiber.StatusBadRequest, "properties.validation.filter")
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("bedrooms"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return utils.ErrorResponse(c, "Invalid bedrooms", fiber.StatusBadRequest, "properties.validation.filter")
		}
		filter.Bedrooms = &v
	}

	properties, err := services.FilterProperties(h.DB, filter)
	if err != nil {
		return serviceErrorResponse(c, err, "properties.list")
	}

	return c.Status(fiber.StatusOK).JSON(toPropertyResponses(properties))
}

// ListMyProperties handles GET /api/properties/mine
// @Summary List the caller's properties
// @Description List every listing owned by the authenticated user, newest first
// @Tags Properties
// @Produce json
// @Success 200 {array} PropertyResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /properties/mine [get]
func (h *PropertyHandler) ListMyProperties(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	properties, err := services.ListPropertiesByOwner(h.DB, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "properties.mine")
	}

	return c.Status(fiber.StatusOK).JSON(toPropertyResponses(properties))
}

// GetProperty handles GET /api/properties/:id
// @Summary Get a property
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} PropertyResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Property not found")
	}

	property, err := services.GetPropertyByID(h.DB, id)
	if err != nil {
		return serviceErrorResponse(c, err, "properties.get")
	}

	return c.Status(fiber.StatusOK).JSON(toPropertyResponse(*property))
}

// CreateProperty handles POST /api/properties
// @Summary Create a property
// @Description Create a listing owned by the authenticated user
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body propertyInput true "Listing fields"
// @Success 201 {object} PropertyResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	var body propertyInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "properties.validation.input")
	}
	if err := body.validate(); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "properties.validation.input")
	}

	property, err := services.CreateProperty(h.DB, userID, body.toFields())
	if err != nil {
		return serviceErrorResponse(c, err, "properties.create")
	}

	return c.Status(fiber.StatusCreated).JSON(toPropertyResponse(*property))
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update a property
// @Description Replace the mutable fields of a listing owned by the caller
// @Tags Properties
// @Accept json
// @Param id path int true "Property ID"
// @Param body body propertyInput true "Listing fields"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Property not found")
	}

	var body propertyInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "properties.validation.input")
	}
	if err := body.validate(); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "properties.validation.input")
	}

	if err := services.UpdateProperty(h.DB, id, userID, body.toFields()); err != nil {
		return serviceErrorResponse(c, err, "properties.update")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete a property
// @Description Delete a listing owned by the caller
// @Tags Properties
// @Param id path int true "Property ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthenticatedResponse(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Property not found")
	}

	if err := services.DeleteProperty(h.DB, id, userID); err != nil {
		return serviceErrorResponse(c, err, "properties.delete")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
