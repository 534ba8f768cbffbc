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

// FurnitureCatalogService handles the shared furniture catalog
type FurnitureCatalogService struct {
	catalogRepo repositories.FurnitureCatalogRepository
}

// NewFurnitureCatalogService creates a new furniture catalog service
func NewFurnitureCatalogService(catalogRepo repositories.FurnitureCatalogRepository) *FurnitureCatalogService {
	return &FurnitureCatalogService{catalogRepo: catalogRepo}
}

// FurnitureCatalogInput represents catalog create/update input
type FurnitureCatalogInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func validateCatalogInput(input *FurnitureCatalogInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Validationf("El nombre del mueble es obligatorio")
	}
	if len(input.Name) > 100 {
		return domain.Validationf("El nombre del mueble no puede exceder 100 caracteres")
	}
	return nil
}

// Create validates and creates a catalog entry
func (s *FurnitureCatalogService) Create(ctx context.Context, input *FurnitureCatalogInput) (*models.FurnitureCatalog, error) {
	if err := validateCatalogInput(input); err != nil {
		return nil, err
	}

	exists, err := s.catalogRepo.ExistsByName(ctx, strings.TrimSpace(input.Name), 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("Ya existe un mueble llamado '%s' en el catalogo", input.Name)
	}

	item := &models.FurnitureCatalog{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	saved, err := s.catalogRepo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, domain.Consistency("mueble", item.ID)
	}

	return saved, nil
}

// Update validates and updates a catalog entry
func (s *FurnitureCatalogService) Update(ctx context.Context, id uint, input *FurnitureCatalogInput) (*models.FurnitureCatalog, error) {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("mueble", id)
		}
		return nil, err
	}

	if err := validateCatalogInput(input); err != nil {
		return nil, err
	}

	exists, err := s.catalogRepo.ExistsByName(ctx, strings.TrimSpace(input.Name), id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("Ya existe un mueble llamado '%s' en el catalogo", input.Name)
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetByID returns a catalog entry, or nil when the id does not exist
func (s *FurnitureCatalogService) GetByID(ctx context.Context, id uint) (*models.FurnitureCatalog, error) {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// List returns the full catalog
func (s *FurnitureCatalogService) List(ctx context.Context) ([]*models.FurnitureCatalog, error) {
	return s.catalogRepo.List(ctx)
}

// Delete deletes a catalog entry
func (s *FurnitureCatalogService) Delete(ctx context.Context, id uint) error {
	return s.catalogRepo.Delete(ctx, id)
}
