package handlers

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	for _, req := range []struct{ method, target string }{
		{fiber.MethodGet, "/api/favorites/"},
		{fiber.MethodPost, "/api/favorites/1"},
		{fiber.MethodDelete, "/api/favorites/1"},
	} {
		resp := doRequest(t, app, req.method, req.target, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", req.method, req.target)
	}
}

func TestAddFavoriteEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	owner, _ := registerUser(t, db, "owner@x.com")
	_, token := registerUser(t, db, "fan@x.com")
	property := seedProperty(t, db, owner.ID, services.PropertyFields{Title: "Wanted"})
	target := fmt.Sprintf("/api/favorites/%d", property.ID)

	resp := doRequest(t, app, fiber.MethodPost, target, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, true, body["ok"])

	// Adding twice reports a conflict
	resp = doRequest(t, app, fiber.MethodPost, target, token, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, "Property already in favorites", body["message"])

	// Unknown listing
	resp = doRequest(t, app, fiber.MethodPost, "/api/favorites/9999", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListFavoritesEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	owner, _ := registerUser(t, db, "owner@x.com")
	_, token := registerUser(t, db, "fan@x.com")

	first := seedProperty(t, db, owner.ID, services.PropertyFields{Title: "First"})
	seedProperty(t, db, owner.ID, services.PropertyFields{Title: "Unfavorited"})

	resp := doRequest(t, app, fiber.MethodGet, "/api/favorites/", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body []PropertyResponse
	decodeBody(t, resp, &body)
	assert.Empty(t, body)

	resp = doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/favorites/%d", first.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/favorites/", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	require.Len(t, body, 1)
	assert.Equal(t, first.ID, body[0].ID)
	assert.Equal(t, "First", body[0].Title)
}

func TestRemoveFavoriteEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	owner, _ := registerUser(t, db, "owner@x.com")
	_, token := registerUser(t, db, "fan@x.com")
	property := seedProperty(t, db, owner.ID, services.PropertyFields{})
	target := fmt.Sprintf("/api/favorites/%d", property.ID)

	// Nothing bookmarked yet
	resp := doRequest(t, app, fiber.MethodDelete, target, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, target, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodDelete, target, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Removed from favorites", body["message"])

	resp = doRequest(t, app, fiber.MethodGet, "/api/favorites/", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []PropertyResponse
	decodeBody(t, resp, &list)
	assert.Empty(t, list)
}
