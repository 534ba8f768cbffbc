package handlers

import (
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/pagination"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles role, user and audit-log administration
type AdminHandler struct {
	roleService    *services.RoleService
	userService    *services.UserService
	historyService *services.HistoryService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	roleService *services.RoleService,
	userService *services.UserService,
	historyService *services.HistoryService,
) *AdminHandler {
	return &AdminHandler{
		roleService:    roleService,
		userService:    userService,
		historyService: historyService,
	}
}

// ============================================================
// Roles
// ============================================================

// ListRoles lists all roles
func (h *AdminHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.roleService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Roles recuperados", fiber.Map{"roles": roles})
}

// CreateRole creates a role
func (h *AdminHandler) CreateRole(c *fiber.Ctx) error {
	var input services.RoleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	role, err := h.roleService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Rol creado", fiber.Map{"role": role})
}

// UpdateRole updates a role
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.RoleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	role, err := h.roleService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Rol actualizado", fiber.Map{"role": role})
}

// DeleteRole deletes a role
func (h *AdminHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.roleService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Rol eliminado", nil)
}

// ============================================================
// Users
// ============================================================

// ListUsers lists all staff users
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Usuarios recuperados", fiber.Map{"users": users})
}

// GetUser gets a staff user by ID
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	user, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if user == nil {
		return response.NotFound(c, "Usuario no encontrado")
	}

	return response.Success(c, "Usuario recuperado", fiber.Map{"user": user})
}

// ChangeUserRoleRequest carries the new role for a user
type ChangeUserRoleRequest struct {
	RoleID uint `json:"role_id"`
}

// ChangeUserRole reassigns a user to another role
func (h *AdminHandler) ChangeUserRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req ChangeUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	user, err := h.userService.ChangeRole(c.Context(), id, req.RoleID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Rol del usuario actualizado", fiber.Map{"user": user})
}

// SetUserActiveRequest carries the active flag for a user
type SetUserActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// SetUserActive enables or disables a staff account
func (h *AdminHandler) SetUserActive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req SetUserActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	user, err := h.userService.SetActive(c.Context(), id, req.IsActive)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Usuario actualizado", fiber.Map{"user": user})
}

// DeleteUser deletes a staff user
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Usuario eliminado", nil)
}

// ============================================================
// History
// ============================================================

// ListHistory returns one page of the audit log
func (h *AdminHandler) ListHistory(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	entries, meta, err := h.historyService.List(c.Context(), params.Page, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Paged(c, "Historial recuperado", entries, meta)
}

// ListEntityHistory returns the audit entries for one entity instance
func (h *AdminHandler) ListEntityHistory(c *fiber.Ctx) error {
	entity := c.Params("entity")
	entityID, err := parseParamID(c, "entityId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	entries, err := h.historyService.ListByEntity(c.Context(), entity, entityID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Historial recuperado", fiber.Map{"history": entries})
}
