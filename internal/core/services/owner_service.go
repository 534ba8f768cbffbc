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

// OwnerService handles owner business logic
type OwnerService struct {
	ownerRepo repositories.OwnerRepository
}

// NewOwnerService creates a new owner service
func NewOwnerService(ownerRepo repositories.OwnerRepository) *OwnerService {
	return &OwnerService{ownerRepo: ownerRepo}
}

// OwnerInput represents owner create/update input
type OwnerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func validateOwnerInput(input *OwnerInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return domain.Validationf("El nombre del propietario es obligatorio")
	}
	if len(input.FirstName) > 100 {
		return domain.Validationf("El nombre no puede exceder 100 caracteres")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return domain.Validationf("El apellido del propietario es obligatorio")
	}
	if len(input.LastName) > 100 {
		return domain.Validationf("El apellido no puede exceder 100 caracteres")
	}
	if strings.TrimSpace(input.Email) == "" {
		return domain.Validationf("El correo del propietario es obligatorio")
	}
	if len(input.Email) > 100 {
		return domain.Validationf("El correo no puede exceder 100 caracteres")
	}
	if !strings.Contains(input.Email, "@") {
		return domain.Validationf("El correo '%s' no es valido", input.Email)
	}
	if len(input.Phone) > 20 {
		return domain.Validationf("El telefono no puede exceder 20 caracteres")
	}
	if len(input.Address) > 255 {
		return domain.Validationf("La direccion no puede exceder 255 caracteres")
	}
	return nil
}

// Create validates and creates a new owner
func (s *OwnerService) Create(ctx context.Context, input *OwnerInput) (*models.Owner, error) {
	if err := validateOwnerInput(input); err != nil {
		return nil, err
	}

	// Check the trimmed value so the lookup matches what gets persisted.
	email := strings.TrimSpace(input.Email)
	exists, err := s.ownerRepo.ExistsByEmail(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("Ya existe un propietario con el correo %s", email)
	}

	owner := &models.Owner{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   strings.TrimSpace(input.Address),
	}

	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}

	// Read back the persisted record so the caller gets the full projection.
	saved, err := s.ownerRepo.GetByID(ctx, owner.ID)
	if err != nil {
		return nil, domain.Consistency("propietario", owner.ID)
	}

	return saved, nil
}

// Update validates and updates an existing owner
func (s *OwnerService) Update(ctx context.Context, id uint, input *OwnerInput) (*models.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("propietario", id)
		}
		return nil, err
	}

	if err := validateOwnerInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	exists, err := s.ownerRepo.ExistsByEmail(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("Ya existe un propietario con el correo %s", email)
	}

	owner.FirstName = strings.TrimSpace(input.FirstName)
	owner.LastName = strings.TrimSpace(input.LastName)
	owner.Email = strings.TrimSpace(input.Email)
	owner.Phone = strings.TrimSpace(input.Phone)
	owner.Address = strings.TrimSpace(input.Address)

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	return owner, nil
}

// GetByID returns an owner, or nil when the id does not exist
func (s *OwnerService) GetByID(ctx context.Context, id uint) (*models.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return owner, nil
}

// List returns all owners
func (s *OwnerService) List(ctx context.Context) ([]*models.Owner, error) {
	return s.ownerRepo.List(ctx)
}

// Delete deletes an owner
func (s *OwnerService) Delete(ctx context.Context, id uint) error {
	return s.ownerRepo.Delete(ctx, id)
}

// ExistsByID reports whether an owner exists
func (s *OwnerService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.ownerRepo.ExistsByID(ctx, id)
}
