package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// AssertErrorEnvelope verifies the standard error body shape and message
func AssertErrorEnvelope(t *testing.T, resp *http.Response, expectedMessage string) {
	t.Helper()

	var envelope struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		OK      bool   `json:"ok"`
	}
	ParseJSON(t, resp, &envelope)

	if envelope.OK {
		t.Error("Expected ok=false in error envelope")
	}
	if envelope.Status != resp.StatusCode {
		t.Errorf("Envelope status %d does not match HTTP status %d", envelope.Status, resp.StatusCode)
	}
	if expectedMessage != "" && envelope.Message != expectedMessage {
		t.Errorf("Expected message %q, got %q", expectedMessage, envelope.Message)
	}
}
