package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List lists all payments
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.paymentService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Pagos recuperados", fiber.Map{"payments": payments})
}

// Get gets a payment by ID
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	payment, err := h.paymentService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if payment == nil {
		return response.NotFound(c, "Pago no encontrado")
	}

	return response.Success(c, "Pago recuperado", fiber.Map{"payment": payment})
}

// Create registers a payment
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	payment, err := h.paymentService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Pago registrado", fiber.Map{"payment": payment})
}

// Update updates a payment
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	payment, err := h.paymentService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Pago actualizado", fiber.Map{"payment": payment})
}

// ChangeStatus changes only the payment status
func (h *PaymentHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	payment, err := h.paymentService.ChangeStatus(c.Context(), id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Estado del pago actualizado", fiber.Map{"payment": payment})
}

// Delete deletes a payment
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.paymentService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Pago eliminado", nil)
}

// SumByRange totals the payments inside a date range given as from and to
// query parameters
func (h *PaymentHandler) SumByRange(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		return response.BadRequest(c, "Los parametros from y to son obligatorios")
	}

	total, err := h.paymentService.SumByDateRange(c.Context(), from, to)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Total calculado", fiber.Map{
		"from":  from,
		"to":    to,
		"total": total,
	})
}
