package handlers

import (
	"errors"

	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles staff and portal authentication endpoints
type AuthHandler struct {
	userService  *services.UserService
	loginService *services.LoginService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *services.UserService, loginService *services.LoginService) *AuthHandler {
	return &AuthHandler{userService: userService, loginService: loginService}
}

// LoginRequest represents a credentials payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents a password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login authenticates a staff user and issues an access token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	auth, err := h.userService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, err.Error())
		}
		return serviceError(c, err)
	}

	return response.Success(c, "Sesion iniciada", auth)
}

// Register creates a new staff user (admin only)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	user, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Usuario creado", fiber.Map{"user": user})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	if user == nil {
		return response.NotFound(c, "Usuario no encontrado")
	}

	return response.Success(c, "Perfil recuperado", fiber.Map{"user": user})
}

// ChangePassword changes the authenticated user's password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	if err := h.userService.ChangePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Contrasena actualizada", nil)
}

// PortalLogin authenticates a portal credential (owner or tenant account)
func (h *AuthHandler) PortalLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	login, err := h.loginService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, err.Error())
		}
		return serviceError(c, err)
	}

	return response.Success(c, "Sesion iniciada", fiber.Map{"login": login})
}

// CreatePortalLogin creates a portal credential (staff only)
func (h *AuthHandler) CreatePortalLogin(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	login, err := h.loginService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Acceso creado", fiber.Map{"login": login})
}

// ListPortalLogins lists portal credentials (staff only)
func (h *AuthHandler) ListPortalLogins(c *fiber.Ctx) error {
	logins, err := h.loginService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Accesos recuperados", fiber.Map{"logins": logins})
}

// ChangePortalPassword changes a portal credential's password
func (h *AuthHandler) ChangePortalPassword(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	if err := h.loginService.ChangePassword(c.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Contrasena actualizada", nil)
}

// DeletePortalLogin deletes a portal credential (staff only)
func (h *AuthHandler) DeletePortalLogin(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.loginService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Acceso eliminado", nil)
}
