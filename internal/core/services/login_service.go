package services

import (
	"context"
	"errors"
	"strings"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/password"

	"gorm.io/gorm"
)

// LoginService handles portal credentials linked to owners or tenants
type LoginService struct {
	loginRepo  repositories.LoginRepository
	roleRepo   repositories.RoleRepository
	ownerRepo  repositories.OwnerRepository
	tenantRepo repositories.TenantRepository
}

// NewLoginService creates a new login service
func NewLoginService(
	loginRepo repositories.LoginRepository,
	roleRepo repositories.RoleRepository,
	ownerRepo repositories.OwnerRepository,
	tenantRepo repositories.TenantRepository,
) *LoginService {
	return &LoginService{
		loginRepo:  loginRepo,
		roleRepo:   roleRepo,
		ownerRepo:  ownerRepo,
		tenantRepo: tenantRepo,
	}
}

// LoginInput represents login create input. OwnerID and TenantID are
// mutually exclusive.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
	OwnerID  *uint  `json:"owner_id,omitempty"`
	TenantID *uint  `json:"tenant_id,omitempty"`
}

func validateLoginInput(input *LoginInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return domain.Validationf("El nombre de usuario es obligatorio")
	}
	if len(input.Username) > 50 {
		return domain.Validationf("El nombre de usuario no puede exceder 50 caracteres")
	}
	if !password.ValidatePassword(input.Password) {
		return domain.Validationf("La contrasena debe tener al menos %d caracteres", password.MinLength)
	}
	if input.RoleID == 0 {
		return domain.Validationf("El rol es obligatorio")
	}
	if input.OwnerID != nil && input.TenantID != nil {
		return domain.Validationf("Un acceso no puede estar ligado a un propietario y a un inquilino a la vez")
	}
	return nil
}

// checkLoginReferences verifies the role and the linked owner or tenant exist.
func (s *LoginService) checkLoginReferences(ctx context.Context, input *LoginInput) error {
	roleExists, err := s.roleRepo.ExistsByID(ctx, input.RoleID)
	if err != nil {
		return err
	}
	if !roleExists {
		return domain.NotFound("rol", input.RoleID)
	}

	if input.OwnerID != nil {
		ownerExists, err := s.ownerRepo.ExistsByID(ctx, *input.OwnerID)
		if err != nil {
			return err
		}
		if !ownerExists {
			return domain.NotFound("propietario", *input.OwnerID)
		}
	}

	if input.TenantID != nil {
		tenantExists, err := s.tenantRepo.ExistsByID(ctx, *input.TenantID)
		if err != nil {
			return err
		}
		if !tenantExists {
			return domain.NotFound("inquilino", *input.TenantID)
		}
	}
	return nil
}

// Create validates and creates a portal login
func (s *LoginService) Create(ctx context.Context, input *LoginInput) (*models.LoginResponse, error) {
	if err := validateLoginInput(input); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	exists, err := s.loginRepo.ExistsByUsername(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("Ya existe un acceso con el nombre %s", username)
	}

	if err := s.checkLoginReferences(ctx, input); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	login := &models.Login{
		Username: username,
		Password: hashed,
		RoleID:   input.RoleID,
		OwnerID:  input.OwnerID,
		TenantID: input.TenantID,
	}

	if err := s.loginRepo.Create(ctx, login); err != nil {
		return nil, err
	}

	saved, err := s.loginRepo.GetByID(ctx, login.ID)
	if err != nil {
		return nil, domain.Consistency("acceso", login.ID)
	}

	return saved.ToResponse(), nil
}

// Authenticate verifies portal credentials and returns the login projection
func (s *LoginService) Authenticate(ctx context.Context, username, pass string) (*models.LoginResponse, error) {
	login, err := s.loginRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, login.Password) {
		return nil, ErrInvalidCredentials
	}

	return login.ToResponse(), nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *LoginService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	login, err := s.loginRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound("acceso", id)
		}
		return err
	}

	if !password.Verify(current, login.Password) {
		return domain.Validationf("La contrasena actual no es correcta")
	}
	if !password.ValidatePassword(next) {
		return domain.Validationf("La contrasena debe tener al menos %d caracteres", password.MinLength)
	}

	hashed, err := password.Hash(next)
	if err != nil {
		return err
	}

	login.Password = hashed
	return s.loginRepo.Update(ctx, login)
}

// GetByID returns a login projection, or nil when the id does not exist
func (s *LoginService) GetByID(ctx context.Context, id uint) (*models.LoginResponse, error) {
	login, err := s.loginRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return login.ToResponse(), nil
}

// List returns projections for all logins
func (s *LoginService) List(ctx context.Context) ([]*models.LoginResponse, error) {
	logins, err := s.loginRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.LoginResponse, 0, len(logins))
	for _, l := range logins {
		responses = append(responses, l.ToResponse())
	}
	return responses, nil
}

// Delete deletes a login
func (s *LoginService) Delete(ctx context.Context, id uint) error {
	return s.loginRepo.Delete(ctx, id)
}
