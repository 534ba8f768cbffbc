package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/pagination"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TenantHandler handles tenant endpoints
type TenantHandler struct {
	tenantService *services.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// List lists tenants, paged. A q query filters across name, email, INE and
// phone before paging.
func (h *TenantHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	if q := c.Query("q"); q != "" {
		tenants, err := h.tenantService.Search(c.Context(), q)
		if err != nil {
			return serviceError(c, err)
		}
		page := pagination.Slice(tenants, params.Page, params.Limit)
		return response.Paged(c, "Inquilinos recuperados", page,
			pagination.GetMeta(params, int64(len(tenants))))
	}

	tenants, meta, err := h.tenantService.ListPaged(c.Context(), params.Page, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Paged(c, "Inquilinos recuperados", tenants, meta)
}

// Get gets a tenant by ID
func (h *TenantHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	tenant, err := h.tenantService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if tenant == nil {
		return response.NotFound(c, "Inquilino no encontrado")
	}

	return response.Success(c, "Inquilino recuperado", fiber.Map{"tenant": tenant})
}

// Create creates a new tenant
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var input services.TenantInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	tenant, err := h.tenantService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Inquilino creado", fiber.Map{"tenant": tenant})
}

// Update updates a tenant
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.TenantInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	tenant, err := h.tenantService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Inquilino actualizado", fiber.Map{"tenant": tenant})
}

// Delete deletes a tenant
func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.tenantService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Inquilino eliminado", nil)
}
