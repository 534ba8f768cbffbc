package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FurnitureHandler handles the shared furniture catalog endpoints
type FurnitureHandler struct {
	catalogService *services.FurnitureCatalogService
}

// NewFurnitureHandler creates a new furniture handler
func NewFurnitureHandler(catalogService *services.FurnitureCatalogService) *FurnitureHandler {
	return &FurnitureHandler{catalogService: catalogService}
}

// List lists the full catalog
func (h *FurnitureHandler) List(c *fiber.Ctx) error {
	items, err := h.catalogService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Catalogo recuperado", fiber.Map{"catalog": items})
}

// Get gets a catalog entry by ID
func (h *FurnitureHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	item, err := h.catalogService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if item == nil {
		return response.NotFound(c, "Mueble no encontrado")
	}

	return response.Success(c, "Mueble recuperado", fiber.Map{"item": item})
}

// Create creates a catalog entry
func (h *FurnitureHandler) Create(c *fiber.Ctx) error {
	var input services.FurnitureCatalogInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	item, err := h.catalogService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Mueble agregado al catalogo", fiber.Map{"item": item})
}

// Update updates a catalog entry
func (h *FurnitureHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.FurnitureCatalogInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	item, err := h.catalogService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mueble actualizado", fiber.Map{"item": item})
}

// Delete deletes a catalog entry
func (h *FurnitureHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.catalogService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mueble eliminado del catalogo", nil)
}
