package helpers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a 10 character password with a capital and special char
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		numbers = "0123456789"
		all     = lower + upper + special + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = special[randInt(len(special))]
	password[2] = numbers[randInt(len(numbers))]

	for i := 3; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// AcquireAccount registers an account through the API and returns its
// bearer token. Falls back to login when the email is already taken.
func AcquireAccount(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	if token := postCredentials(t, app, "/api/auth/register", email, password); token != "" {
		return token
	}
	token := postCredentials(t, app, "/api/auth/login", email, password)
	if token == "" {
		t.Fatalf("Failed to acquire account for %s", email)
	}
	return token
}

func postCredentials(t *testing.T, app *fiber.App, path, email, password string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		t.Fatalf("Failed to encode credentials: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		return ""
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode auth response: %v", err)
	}
	return out.Token
}
