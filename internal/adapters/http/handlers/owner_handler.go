package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OwnerHandler handles owner endpoints
type OwnerHandler struct {
	ownerService *services.OwnerService
	roomService  *services.RoomService
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService *services.OwnerService, roomService *services.RoomService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService, roomService: roomService}
}

// List lists all owners
func (h *OwnerHandler) List(c *fiber.Ctx) error {
	owners, err := h.ownerService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Propietarios recuperados", fiber.Map{"owners": owners})
}

// Get gets an owner by ID
func (h *OwnerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	owner, err := h.ownerService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if owner == nil {
		return response.NotFound(c, "Propietario no encontrado")
	}

	return response.Success(c, "Propietario recuperado", fiber.Map{"owner": owner})
}

// Create creates a new owner
func (h *OwnerHandler) Create(c *fiber.Ctx) error {
	var input services.OwnerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	owner, err := h.ownerService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Propietario creado", fiber.Map{"owner": owner})
}

// Update updates an owner
func (h *OwnerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.OwnerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	owner, err := h.ownerService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Propietario actualizado", fiber.Map{"owner": owner})
}

// Delete deletes an owner
func (h *OwnerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.ownerService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Propietario eliminado", nil)
}

// ListRooms lists the rooms that belong to one owner
func (h *OwnerHandler) ListRooms(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	rooms, err := h.roomService.ListByOwner(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Cuartos recuperados", fiber.Map{"rooms": rooms})
}
