package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/pagination"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List lists all notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notificationService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Notificaciones recuperadas", fiber.Map{"notifications": notifications})
}

// ListByTenant returns one page of a tenant's notifications
func (h *NotificationHandler) ListByTenant(c *fiber.Ctx) error {
	tenantID, err := parseParamID(c, "tenantId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	params := pagination.GetParams(c)
	notifications, meta, err := h.notificationService.ListByTenantPaged(
		c.Context(), tenantID, params.Page, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Paged(c, "Notificaciones recuperadas", notifications, meta)
}

// StatsByTenant returns total and unread counts for one tenant
func (h *NotificationHandler) StatsByTenant(c *fiber.Ctx) error {
	tenantID, err := parseParamID(c, "tenantId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	stats, err := h.notificationService.StatsByTenant(c.Context(), tenantID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Resumen recuperado", fiber.Map{"stats": stats})
}

// Create creates a notification
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var input services.NotificationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	n, err := h.notificationService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Notificacion creada", fiber.Map{"notification": n})
}

// MarkRead flags a notification as read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	n, err := h.notificationService.MarkRead(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Notificacion marcada como leida", fiber.Map{"notification": n})
}

// Delete deletes a notification
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.notificationService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Notificacion eliminada", nil)
}
