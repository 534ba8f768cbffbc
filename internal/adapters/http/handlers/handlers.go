package handlers

import (
	"strconv"

	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// parseID parses the :id path parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	return parseParamID(c, "id")
}

// parseParamID parses a named path parameter as an id.
func parseParamID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// serviceError maps service errors onto HTTP responses: validation errors
// become 400, missing references 404, anything else 500.
func serviceError(c *fiber.Ctx, err error) error {
	if domain.IsValidation(err) {
		return response.BadRequest(c, err.Error())
	}
	if domain.IsNotFound(err) {
		return response.NotFound(c, err.Error())
	}
	return response.InternalServerError(c, "Ocurrio un error inesperado")
}
