package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceHandler handles maintenance endpoints
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// List lists maintenance tickets, optionally filtered by ?status=
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	if status := c.Query("status"); status != "" {
		tickets, err := h.maintenanceService.ListByStatus(c.Context(), status)
		if err != nil {
			return serviceError(c, err)
		}
		return response.Success(c, "Mantenimientos recuperados", fiber.Map{"maintenances": tickets})
	}

	tickets, err := h.maintenanceService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mantenimientos recuperados", fiber.Map{"maintenances": tickets})
}

// Get gets a maintenance ticket by ID
func (h *MaintenanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	ticket, err := h.maintenanceService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if ticket == nil {
		return response.NotFound(c, "Mantenimiento no encontrado")
	}

	return response.Success(c, "Mantenimiento recuperado", fiber.Map{"maintenance": ticket})
}

// Create registers a maintenance ticket
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var input services.MaintenanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	ticket, err := h.maintenanceService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Mantenimiento registrado", fiber.Map{"maintenance": ticket})
}

// Update updates a maintenance ticket
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.MaintenanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	ticket, err := h.maintenanceService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mantenimiento actualizado", fiber.Map{"maintenance": ticket})
}

// ChangeStatus changes only the ticket status
func (h *MaintenanceHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	ticket, err := h.maintenanceService.ChangeStatus(c.Context(), id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Estado del mantenimiento actualizado", fiber.Map{"maintenance": ticket})
}

// Delete deletes a maintenance ticket
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.maintenanceService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mantenimiento eliminado", nil)
}
