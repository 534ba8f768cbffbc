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

// RoomService handles room business logic
type RoomService struct {
	roomRepo  repositories.RoomRepository
	ownerRepo repositories.OwnerRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repositories.RoomRepository, ownerRepo repositories.OwnerRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo, ownerRepo: ownerRepo}
}

// RoomInput represents room create/update input
type RoomInput struct {
	OwnerID     uint    `json:"owner_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
}

// validateRoomInput checks fields and resolves the status value. An empty
// status defaults to disponible.
func validateRoomInput(input *RoomInput) (models.RoomStatus, error) {
	if input.OwnerID == 0 {
		return "", domain.Validationf("El propietario del cuarto es obligatorio")
	}
	if strings.TrimSpace(input.Name) == "" {
		return "", domain.Validationf("El nombre del cuarto es obligatorio")
	}
	if len(input.Name) > 100 {
		return "", domain.Validationf("El nombre del cuarto no puede exceder 100 caracteres")
	}
	if input.Price < 0 {
		return "", domain.Validationf("El precio del cuarto no puede ser negativo")
	}

	status := models.RoomAvailable
	if strings.TrimSpace(input.Status) != "" {
		status = models.NormalizeRoomStatus(input.Status)
		if !status.Valid() {
			return "", domain.Validationf("El estado '%s' no es valido para un cuarto", input.Status)
		}
	}
	return status, nil
}

// Create validates and creates a new room
func (s *RoomService) Create(ctx context.Context, input *RoomInput) (*models.Room, error) {
	status, err := validateRoomInput(input)
	if err != nil {
		return nil, err
	}

	ownerExists, err := s.ownerRepo.ExistsByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if !ownerExists {
		return nil, domain.NotFound("propietario", input.OwnerID)
	}

	nameTaken, err := s.roomRepo.ExistsByOwnerAndName(ctx, input.OwnerID, strings.TrimSpace(input.Name), 0)
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, domain.Validationf("El propietario ya tiene un cuarto llamado '%s'", input.Name)
	}

	room := &models.Room{
		OwnerID:     input.OwnerID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Price:       input.Price,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	// Re-fetch so the owner relation comes back populated.
	saved, err := s.roomRepo.GetByID(ctx, room.ID)
	if err != nil {
		return nil, domain.Consistency("cuarto", room.ID)
	}

	return saved, nil
}

// Update validates and updates an existing room
func (s *RoomService) Update(ctx context.Context, id uint, input *RoomInput) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("cuarto", id)
		}
		return nil, err
	}

	status, err := validateRoomInput(input)
	if err != nil {
		return nil, err
	}

	if input.OwnerID != room.OwnerID {
		ownerExists, err := s.ownerRepo.ExistsByID(ctx, input.OwnerID)
		if err != nil {
			return nil, err
		}
		if !ownerExists {
			return nil, domain.NotFound("propietario", input.OwnerID)
		}
	}

	nameTaken, err := s.roomRepo.ExistsByOwnerAndName(ctx, input.OwnerID, strings.TrimSpace(input.Name), id)
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, domain.Validationf("El propietario ya tiene un cuarto llamado '%s'", input.Name)
	}

	room.OwnerID = input.OwnerID
	room.Name = strings.TrimSpace(input.Name)
	room.Description = strings.TrimSpace(input.Description)
	room.Status = status
	room.Price = input.Price

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	saved, err := s.roomRepo.GetByID(ctx, room.ID)
	if err != nil {
		return nil, domain.Consistency("cuarto", room.ID)
	}

	return saved, nil
}

// ChangeStatus updates only the room status
func (s *RoomService) ChangeStatus(ctx context.Context, id uint, status string) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("cuarto", id)
		}
		return nil, err
	}

	normalized := models.NormalizeRoomStatus(status)
	if !normalized.Valid() {
		return nil, domain.Validationf("El estado '%s' no es valido para un cuarto", status)
	}

	room.Status = normalized
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// GetByID returns a room, or nil when the id does not exist
func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return room, nil
}

// List returns all rooms
func (s *RoomService) List(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.List(ctx)
}

// ListByOwner returns the rooms that belong to one owner
func (s *RoomService) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Room, error) {
	return s.roomRepo.ListByOwner(ctx, ownerID)
}

// Delete deletes a room
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	return s.roomRepo.Delete(ctx, id)
}

// ExistsByID reports whether a room exists
func (s *RoomService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.roomRepo.ExistsByID(ctx, id)
}
