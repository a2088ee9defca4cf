package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope every endpoint answers with, except the raw
// progress reads which mirror the bare record shape.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a {success:true, data} response.
func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// SuccessMessage sends a {success:true, message, data} response.
func SuccessMessage(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList sends a list response with its count, newest listing shape.
func SuccessList(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Fail sends a {success:false, message} response.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}

// BadRequest sends a 400 Bad Request.
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// NotFound sends a 404 Not Found.
func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message)
}

// Unauthorized sends a 401 Unauthorized.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden.
func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, message)
}

// InternalServerError sends a 500 with the raw error message.
func InternalServerError(c *fiber.Ctx, err error) error {
	return Fail(c, fiber.StatusInternalServerError, err.Error())
}
