package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContractHandler handles contract endpoints
type ContractHandler struct {
	contractService *services.ContractService
	paymentService  *services.PaymentService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(
	contractService *services.ContractService,
	paymentService *services.PaymentService,
) *ContractHandler {
	return &ContractHandler{contractService: contractService, paymentService: paymentService}
}

// List lists contracts. With ?active=true only the running ones come back.
func (h *ContractHandler) List(c *fiber.Ctx) error {
	var err error
	var contracts interface{}

	if c.Query("active") == "true" {
		contracts, err = h.contractService.ListActive(c.Context())
	} else {
		contracts, err = h.contractService.List(c.Context())
	}
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Contratos recuperados", fiber.Map{"contracts": contracts})
}

// Get gets a contract by ID
func (h *ContractHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	contract, err := h.contractService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if contract == nil {
		return response.NotFound(c, "Contrato no encontrado")
	}

	return response.Success(c, "Contrato recuperado", fiber.Map{"contract": contract})
}

// Create creates a new contract
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var input services.ContractInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	contract, err := h.contractService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Contrato creado", fiber.Map{"contract": contract})
}

// Update updates a contract
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.ContractInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	contract, err := h.contractService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Contrato actualizado", fiber.Map{"contract": contract})
}

// FinalizeRequest carries the optional end date for contract finalization
type FinalizeRequest struct {
	EndDate string `json:"end_date,omitempty"`
}

// Finalize ends a contract
func (h *ContractHandler) Finalize(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req FinalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	contract, err := h.contractService.Finalize(c.Context(), id, req.EndDate)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Contrato finalizado", fiber.Map{"contract": contract})
}

// Delete deletes a contract
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contractService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Contrato eliminado", nil)
}

// ListPayments lists the payments registered against one contract, plus
// their running total
func (h *ContractHandler) ListPayments(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	payments, err := h.paymentService.ListByContract(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	total, err := h.paymentService.SumByContract(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Pagos recuperados", fiber.Map{
		"payments": payments,
		"total":    total,
	})
}
