package handlers

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentlyViewedRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/recentlyviewed/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/api/recentlyviewed/1", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRecordViewEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	owner, _ := registerUser(t, db, "owner@x.com")
	_, token := registerUser(t, db, "viewer@x.com")
	property := seedProperty(t, db, owner.ID, services.PropertyFields{})

	resp := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/recentlyviewed/%d", property.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, true, body["ok"])

	// Unknown listing is a 400, not a silent orphan row
	resp = doRequest(t, app, fiber.MethodPost, "/api/recentlyviewed/9999", token, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, "Failed to record property view", body["message"])
}

func TestListRecentlyViewedEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	owner, _ := registerUser(t, db, "owner@x.com")
	_, token := registerUser(t, db, "viewer@x.com")

	first := seedProperty(t, db, owner.ID, services.PropertyFields{Title: "First"})
	second := seedProperty(t, db, owner.ID, services.PropertyFields{Title: "Second"})
	third := seedProperty(t, db, owner.ID, services.PropertyFields{Title: "Third"})

	for _, p := range []uint{first.ID, second.ID, third.ID} {
		resp := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/recentlyviewed/%d", p), token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		time.Sleep(5 * time.Millisecond)
	}

	// Re-viewing first moves it to the front without duplicating it
	resp := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/recentlyviewed/%d", first.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/recentlyviewed/", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []PropertyResponse
	decodeBody(t, resp, &body)
	require.Len(t, body, 3)
	assert.Equal(t, first.ID, body[0].ID)
	assert.Equal(t, third.ID, body[1].ID)
	assert.Equal(t, second.ID, body[2].ID)

	// count caps the result
	resp = doRequest(t, app, fiber.MethodGet, "/api/recentlyviewed/?count=2", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Len(t, body, 2)

	// Another user's history is empty
	_, otherToken := registerUser(t, db, "other@x.com")
	resp = doRequest(t, app, fiber.MethodGet, "/api/recentlyviewed/", otherToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Empty(t, body)
}
