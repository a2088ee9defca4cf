package controllers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	resp := doJSON(t, "POST", "/api/auth/register", map[string]string{
		"fullName": "New Student",
		"email":    "newstudent@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, true, result["success"])
	assert.NotEmpty(t, result["token"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "New Student", user["fullName"])
	assert.Equal(t, "student", user["role"])
}

func TestRegisterMissingFields(t *testing.T) {
	resp := doJSON(t, "POST", "/api/auth/register", map[string]string{
		"email": "incomplete@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	createTestUser(t, "taken@example.com", "password", "student", true)

	resp := doJSON(t, "POST", "/api/auth/register", map[string]string{
		"fullName": "Someone Else",
		"email":    "taken@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Email already registered", result["message"])
}

func TestLogin(t *testing.T) {
	createTestUser(t, "login@example.com", "correct-horse", "student", true)

	resp := doJSON(t, "POST", "/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.NotEmpty(t, result["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	createTestUser(t, "wrongpw@example.com", "right", "student", true)

	resp := doJSON(t, "POST", "/api/auth/login", map[string]string{
		"email":    "wrongpw@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	resp := doJSON(t, "POST", "/api/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "anything",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	createTestUser(t, "deactivated@example.com", "password", "student", false)

	resp := doJSON(t, "POST", "/api/auth/login", map[string]string{
		"email":    "deactivated@example.com",
		"password": "password",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "Your account has been deactivated", result["message"])
}

func TestGetCurrentUser(t *testing.T) {
	createTestUser(t, "me@example.com", "password", "instructor", true)

	loginResp := doJSON(t, "POST", "/api/auth/login", map[string]string{
		"email":    "me@example.com",
		"password": "password",
	})
	token := decodeBody(t, loginResp)["token"].(string)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "me@example.com", user["email"])
	assert.Equal(t, "instructor", user["role"])
}

func TestGetCurrentUserInvalidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetCurrentUserMissingToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/auth/me", nil)

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
