package services

import (
	"context"
	"errors"
	"strings"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/pagination"

	"gorm.io/gorm"
)

// TenantService handles tenant business logic
type TenantService struct {
	tenantRepo repositories.TenantRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repositories.TenantRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// TenantInput represents tenant create/update input
type TenantInput struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	INE              string `json:"ine"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`
	Occupation       string `json:"occupation"`
}

func validateTenantInput(input *TenantInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return domain.Validationf("El nombre del inquilino es obligatorio")
	}
	if len(input.FirstName) > 100 {
		return domain.Validationf("El nombre no puede exceder 100 caracteres")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return domain.Validationf("El apellido del inquilino es obligatorio")
	}
	if len(input.LastName) > 100 {
		return domain.Validationf("El apellido no puede exceder 100 caracteres")
	}
	if strings.TrimSpace(input.Email) == "" {
		return domain.Validationf("El correo del inquilino es obligatorio")
	}
	if len(input.Email) > 100 {
		return domain.Validationf("El correo no puede exceder 100 caracteres")
	}
	if !strings.Contains(input.Email, "@") {
		return domain.Validationf("El correo '%s' no es valido", input.Email)
	}
	if strings.TrimSpace(input.INE) == "" {
		return domain.Validationf("El INE del inquilino es obligatorio")
	}
	if len(input.INE) > 20 {
		return domain.Validationf("El INE no puede exceder 20 caracteres")
	}
	if len(input.Phone) > 20 {
		return domain.Validationf("El telefono no puede exceder 20 caracteres")
	}
	return nil
}

// checkTenantUniqueness re-checks email and INE excluding the record itself.
// Values are trimmed first so the check matches what gets persisted.
func (s *TenantService) checkTenantUniqueness(ctx context.Context, input *TenantInput, excludeID uint) error {
	email := strings.TrimSpace(input.Email)
	ine := strings.TrimSpace(input.INE)

	exists, err := s.tenantRepo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.Validationf("Ya existe un inquilino con el correo %s", email)
	}

	exists, err = s.tenantRepo.ExistsByINE(ctx, ine, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.Validationf("Ya existe un inquilino con el INE %s", ine)
	}
	return nil
}

// Create validates and creates a new tenant
func (s *TenantService) Create(ctx context.Context, input *TenantInput) (*models.Tenant, error) {
	if err := validateTenantInput(input); err != nil {
		return nil, err
	}
	if err := s.checkTenantUniqueness(ctx, input, 0); err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		Email:            strings.TrimSpace(input.Email),
		INE:              strings.TrimSpace(input.INE),
		Phone:            strings.TrimSpace(input.Phone),
		EmergencyContact: strings.TrimSpace(input.EmergencyContact),
		Occupation:       strings.TrimSpace(input.Occupation),
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	saved, err := s.tenantRepo.GetByID(ctx, tenant.ID)
	if err != nil {
		return nil, domain.Consistency("inquilino", tenant.ID)
	}

	return saved, nil
}

// Update validates and updates an existing tenant
func (s *TenantService) Update(ctx context.Context, id uint, input *TenantInput) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("inquilino", id)
		}
		return nil, err
	}

	if err := validateTenantInput(input); err != nil {
		return nil, err
	}
	if err := s.checkTenantUniqueness(ctx, input, id); err != nil {
		return nil, err
	}

	tenant.FirstName = strings.TrimSpace(input.FirstName)
	tenant.LastName = strings.TrimSpace(input.LastName)
	tenant.Email = strings.TrimSpace(input.Email)
	tenant.INE = strings.TrimSpace(input.INE)
	tenant.Phone = strings.TrimSpace(input.Phone)
	tenant.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
	tenant.Occupation = strings.TrimSpace(input.Occupation)

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	return tenant, nil
}

// GetByID returns a tenant, or nil when the id does not exist
func (s *TenantService) GetByID(ctx context.Context, id uint) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return tenant, nil
}

// List returns all tenants
func (s *TenantService) List(ctx context.Context) ([]*models.Tenant, error) {
	return s.tenantRepo.List(ctx)
}

// ListPaged returns one page of tenants, slicing the full list in memory.
func (s *TenantService) ListPaged(ctx context.Context, page, limit int) ([]*models.Tenant, *pagination.Meta, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	params := pagination.Normalize(page, limit)
	pageItems := pagination.Slice(tenants, params.Page, params.Limit)
	return pageItems, pagination.GetMeta(params, int64(len(tenants))), nil
}

// Search filters tenants in memory across name, email, INE and phone.
func (s *TenantService) Search(ctx context.Context, query string) ([]*models.Tenant, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tenants, nil
	}

	var matched []*models.Tenant
	for _, t := range tenants {
		haystack := strings.ToLower(strings.Join([]string{
			t.FirstName, t.LastName, t.Email, t.INE, t.Phone,
		}, " "))
		if strings.Contains(haystack, q) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Delete deletes a tenant
func (s *TenantService) Delete(ctx context.Context, id uint) error {
	return s.tenantRepo.Delete(ctx, id)
}

// ExistsByID reports whether a tenant exists
func (s *TenantService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.tenantRepo.ExistsByID(ctx, id)
}
