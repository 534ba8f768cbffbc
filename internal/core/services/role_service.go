package services

import (
	"context"
	"errors"
	"strings"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"gorm.io/gorm"
)

// RoleService handles role business logic
type RoleService struct {
	roleRepo repositories.RoleRepository
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repositories.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// RoleInput represents role create/update input
type RoleInput struct {
	Title string `json:"title"`
}

// normalizeRoleTitle upper-cases and trims a role title. Titles are stored
// upper-case so lookups are case insensitive.
func normalizeRoleTitle(title string) string {
	return strings.ToUpper(strings.TrimSpace(title))
}

func validateRoleInput(input *RoleInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Validationf("El titulo del rol es obligatorio")
	}
	if len(input.Title) > 50 {
		return domain.Validationf("El titulo del rol no puede exceder 50 caracteres")
	}
	return nil
}

// Create validates and creates a new role
func (s *RoleService) Create(ctx context.Context, input *RoleInput) (*models.Role, error) {
	if err := validateRoleInput(input); err != nil {
		return nil, err
	}

	title := normalizeRoleTitle(input.Title)
	exists, err := s.roleRepo.ExistsByTitle(ctx, title, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("Ya existe un rol con el titulo %s", title)
	}

	role := &models.Role{Title: title}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	saved, err := s.roleRepo.GetByID(ctx, role.ID)
	if err != nil {
		return nil, domain.Consistency("rol", role.ID)
	}

	return saved, nil
}

// Update validates and updates an existing role
func (s *RoleService) Update(ctx context.Context, id uint, input *RoleInput) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("rol", id)
		}
		return nil, err
	}

	if err := validateRoleInput(input); err != nil {
		return nil, err
	}

	title := normalizeRoleTitle(input.Title)
	exists, err := s.roleRepo.ExistsByTitle(ctx, title, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("Ya existe un rol con el titulo %s", title)
	}

	role.Title = title
	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// GetByID returns a role, or nil when the id does not exist
func (s *RoleService) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

// GetByTitle returns a role by its title, or nil when it does not exist
func (s *RoleService) GetByTitle(ctx context.Context, title string) (*models.Role, error) {
	role, err := s.roleRepo.GetByTitle(ctx, normalizeRoleTitle(title))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

// List returns all roles
func (s *RoleService) List(ctx context.Context) ([]*models.Role, error) {
	return s.roleRepo.List(ctx)
}

// Delete deletes a role
func (s *RoleService) Delete(ctx context.Context, id uint) error {
	return s.roleRepo.Delete(ctx, id)
}
