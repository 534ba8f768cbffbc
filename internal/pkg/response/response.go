// Package response shapes the JSON envelope every endpoint returns.
package response

import (
	"rentacuartos/internal/pkg/pagination"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the body shared by all endpoints. Data carries the payload on
// success; Error carries the user-facing message otherwise.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a 200 with the given payload
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 for a freshly persisted record
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Paged sends a 200 whose payload is one page of items plus its meta
func Paged(c *fiber.Ctx, message string, data interface{}, meta *pagination.Meta) error {
	return Success(c, message, pagination.Response{Data: data, Meta: meta})
}

// Fail sends the given status with a user-facing error message
func Fail(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Envelope{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 for caller mistakes and validation failures
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 when no valid session is present
func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 when the session lacks the required role
func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 for an id that does not resolve
func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 for unexpected failures
func InternalServerError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message)
}
