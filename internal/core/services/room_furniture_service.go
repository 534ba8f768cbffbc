package services

import (
	"context"
	"errors"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"gorm.io/gorm"
)

// RoomFurnitureService assigns catalog furniture to rooms
type RoomFurnitureService struct {
	roomFurnitureRepo repositories.RoomFurnitureRepository
	roomRepo          repositories.RoomRepository
	catalogRepo       repositories.FurnitureCatalogRepository
}

// NewRoomFurnitureService creates a new room furniture service
func NewRoomFurnitureService(
	roomFurnitureRepo repositories.RoomFurnitureRepository,
	roomRepo repositories.RoomRepository,
	catalogRepo repositories.FurnitureCatalogRepository,
) *RoomFurnitureService {
	return &RoomFurnitureService{
		roomFurnitureRepo: roomFurnitureRepo,
		roomRepo:          roomRepo,
		catalogRepo:       catalogRepo,
	}
}

// RoomFurnitureInput represents room furniture assignment input
type RoomFurnitureInput struct {
	RoomID    uint   `json:"room_id"`
	CatalogID uint   `json:"catalog_id"`
	Quantity  int    `json:"quantity"`
	Condition string `json:"condition,omitempty"`
}

// validateRoomFurnitureInput checks fields and resolves the condition. An
// empty condition defaults to bueno.
func validateRoomFurnitureInput(input *RoomFurnitureInput) (models.FurnitureCondition, error) {
	if input.RoomID == 0 {
		return "", domain.Validationf("El cuarto es obligatorio")
	}
	if input.CatalogID == 0 {
		return "", domain.Validationf("El mueble del catalogo es obligatorio")
	}
	if input.Quantity < 0 {
		return "", domain.Validationf("La cantidad no puede ser negativa")
	}

	condition := models.ConditionGood
	if input.Condition != "" {
		condition = models.NormalizeCondition(input.Condition)
		if !condition.Valid() {
			return "", domain.Validationf("La condicion '%s' no es valida", input.Condition)
		}
	}
	return condition, nil
}

// checkReferences verifies the room and the catalog entry exist.
func (s *RoomFurnitureService) checkReferences(ctx context.Context, roomID, catalogID uint) error {
	roomExists, err := s.roomRepo.ExistsByID(ctx, roomID)
	if err != nil {
		return err
	}
	if !roomExists {
		return domain.NotFound("cuarto", roomID)
	}

	catalogExists, err := s.catalogRepo.ExistsByID(ctx, catalogID)
	if err != nil {
		return err
	}
	if !catalogExists {
		return domain.NotFound("mueble", catalogID)
	}
	return nil
}

// Assign registers a catalog item in a room. A room holds at most one row
// per catalog item.
func (s *RoomFurnitureService) Assign(ctx context.Context, input *RoomFurnitureInput) (*models.RoomFurniture, error) {
	condition, err := validateRoomFurnitureInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, input.RoomID, input.CatalogID); err != nil {
		return nil, err
	}

	existing, err := s.roomFurnitureRepo.GetByRoomAndCatalog(ctx, input.RoomID, input.CatalogID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Validationf("El cuarto ya tiene este mueble registrado")
	}

	rf := &models.RoomFurniture{
		RoomID:    input.RoomID,
		CatalogID: input.CatalogID,
		Quantity:  input.Quantity,
		Condition: condition,
	}

	if err := s.roomFurnitureRepo.Create(ctx, rf); err != nil {
		return nil, err
	}

	saved, err := s.roomFurnitureRepo.GetByID(ctx, rf.ID)
	if err != nil {
		return nil, domain.Consistency("mueble del cuarto", rf.ID)
	}

	return saved, nil
}

// Update changes the quantity and condition of an assignment. The room and
// catalog pair is fixed; reassigning means delete plus assign.
func (s *RoomFurnitureService) Update(ctx context.Context, id uint, quantity int, condition string) (*models.RoomFurniture, error) {
	rf, err := s.roomFurnitureRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("mueble del cuarto", id)
		}
		return nil, err
	}

	if quantity < 0 {
		return nil, domain.Validationf("La cantidad no puede ser negativa")
	}

	normalized := rf.Condition
	if condition != "" {
		normalized = models.NormalizeCondition(condition)
		if !normalized.Valid() {
			return nil, domain.Validationf("La condicion '%s' no es valida", condition)
		}
	}

	rf.Quantity = quantity
	rf.Condition = normalized

	if err := s.roomFurnitureRepo.Update(ctx, rf); err != nil {
		return nil, err
	}

	return rf, nil
}

// IncrementQuantity adds delta units to an assignment
func (s *RoomFurnitureService) IncrementQuantity(ctx context.Context, id uint, delta int) (*models.RoomFurniture, error) {
	if delta <= 0 {
		return nil, domain.Validationf("El incremento debe ser mayor a cero")
	}

	rf, err := s.roomFurnitureRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("mueble del cuarto", id)
		}
		return nil, err
	}

	rf.Quantity += delta
	if err := s.roomFurnitureRepo.Update(ctx, rf); err != nil {
		return nil, err
	}

	return rf, nil
}

// DecrementQuantity removes delta units from an assignment; the quantity
// never drops below zero.
func (s *RoomFurnitureService) DecrementQuantity(ctx context.Context, id uint, delta int) (*models.RoomFurniture, error) {
	if delta <= 0 {
		return nil, domain.Validationf("El decremento debe ser mayor a cero")
	}

	rf, err := s.roomFurnitureRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("mueble del cuarto", id)
		}
		return nil, err
	}

	rf.Quantity -= delta
	if rf.Quantity < 0 {
		rf.Quantity = 0
	}
	if err := s.roomFurnitureRepo.Update(ctx, rf); err != nil {
		return nil, err
	}

	return rf, nil
}

// GetByID returns an assignment, or nil when the id does not exist
func (s *RoomFurnitureService) GetByID(ctx context.Context, id uint) (*models.RoomFurniture, error) {
	rf, err := s.roomFurnitureRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rf, nil
}

// ListByRoom returns the furniture registered in one room
func (s *RoomFurnitureService) ListByRoom(ctx context.Context, roomID uint) ([]*models.RoomFurniture, error) {
	return s.roomFurnitureRepo.ListByRoom(ctx, roomID)
}

// Delete removes an assignment
func (s *RoomFurnitureService) Delete(ctx context.Context, id uint) error {
	return s.roomFurnitureRepo.Delete(ctx, id)
}
