package handlers

import (
	"fmt"

	"github.com/openlistings/realestate-api/internal/models"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/types"
)

// PropertyResponse is the JSON shape of a listing. ImageUrls is always a
// JSON array regardless of the storage representation.
type PropertyResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Suburb      string   `json:"suburb"`
	Price       float64  `json:"price"`
	ListingType string   `json:"listingType"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	CarSpots    int      `json:"carSpots"`
	ImageUrls   []string `json:"imageUrls"`
}

// propertyInput is the create/update request body. Price tolerates both
// number and string encodings; imageUrls tolerates a bare string.
type propertyInput struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Address     string                 `json:"address"`
	City        string                 `json:"city"`
	Suburb      string                 `json:"suburb"`
	Price       types.FlexFloat64      `json:"price"`
	ListingType string                 `json:"listingType"`
	Bedrooms    int                    `json:"bedrooms"`
	Bathrooms   int                    `json:"bathrooms"`
	CarSpots    int                    `json:"carSpots"`
	ImageUrls   types.FlexList[string] `json:"imageUrls"`
}

// validate enforces the field constraints of the listing model.
func (in *propertyInput) validate() error {
	if in.Title == "" {
		return fmt.Errorf("title is required")
	}
	if in.Address == "" {
		return fmt.Errorf("address is required")
	}
	if in.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	if in.ListingType != models.ListingTypeSale && in.ListingType != models.ListingTypeRent {
		return fmt.Errorf("listingType must be %q or %q", models.ListingTypeSale, models.ListingTypeRent)
	}
	if in.Bedrooms < 0 || in.Bathrooms < 0 || in.CarSpots < 0 {
		return fmt.Errorf("bedrooms, bathrooms, and carSpots must be non-negative")
	}
	return nil
}

// toFields converts the request body to the service-layer command payload.
func (in *propertyInput) toFields() services.PropertyFields {
	return services.PropertyFields{
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		Suburb:      in.Suburb,
		Price:       in.Price.Float64(),
		ListingType: in.ListingType,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		CarSpots:    in.CarSpots,
		ImageUrls:   in.ImageUrls.Slice(),
	}
}

// toPropertyResponse converts a stored row to its API shape.
func toPropertyResponse(p models.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		City:        p.City,
		Suburb:      p.Suburb,
		Price:       p.Price,
		ListingType: p.ListingType,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		CarSpots:    p.CarSpots,
		ImageUrls:   models.ParseImageURLs(p.ImageUrls),
	}
}

// toPropertyResponses converts a result set, always yielding a non-nil
// slice so empty results encode as [].
func toPropertyResponses(properties []models.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}
