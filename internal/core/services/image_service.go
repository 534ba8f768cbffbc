package services

import (
	"context"
	"errors"
	"log"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/upload"

	"gorm.io/gorm"
)

// ImageService handles room image uploads
type ImageService struct {
	imageRepo repositories.ImageRepository
	roomRepo  repositories.RoomRepository
	storage   upload.Storage
}

// NewImageService creates a new image service
func NewImageService(
	imageRepo repositories.ImageRepository,
	roomRepo repositories.RoomRepository,
	storage upload.Storage,
) *ImageService {
	return &ImageService{imageRepo: imageRepo, roomRepo: roomRepo, storage: storage}
}

// Upload stores the file bytes and records the image against a room
func (s *ImageService) Upload(ctx context.Context, roomID uint, originalName string, data []byte) (*models.Image, error) {
	if !upload.ExtensionAllowed(originalName) {
		return nil, domain.Validationf("El archivo '%s' no es una imagen permitida", originalName)
	}
	if len(data) == 0 {
		return nil, domain.Validationf("El archivo de imagen esta vacio")
	}

	roomExists, err := s.roomRepo.ExistsByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !roomExists {
		return nil, domain.NotFound("cuarto", roomID)
	}

	fileName := s.storage.GenerateFileName(originalName)
	if err := s.storage.Save(fileName, data); err != nil {
		return nil, err
	}

	img := &models.Image{
		RoomID:       roomID,
		FileName:     fileName,
		OriginalName: originalName,
		URL:          s.storage.ImageURL(fileName),
		SizeBytes:    int64(len(data)),
	}

	if err := s.imageRepo.Create(ctx, img); err != nil {
		// Clean up the orphaned file; the DB row is the source of truth.
		if rmErr := s.storage.Remove(fileName); rmErr != nil {
			log.Printf("failed to remove orphaned image file %s: %v", fileName, rmErr)
		}
		return nil, err
	}

	saved, err := s.imageRepo.GetByID(ctx, img.ID)
	if err != nil {
		return nil, domain.Consistency("imagen", img.ID)
	}

	return saved, nil
}

// GetByID returns an image, or nil when the id does not exist
func (s *ImageService) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	img, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return img, nil
}

// ListByRoom returns the images attached to one room
func (s *ImageService) ListByRoom(ctx context.Context, roomID uint) ([]*models.Image, error) {
	return s.imageRepo.ListByRoom(ctx, roomID)
}

// Delete removes the image row and its backing file. A missing file is
// logged and swallowed so the row always goes away.
func (s *ImageService) Delete(ctx context.Context, id uint) error {
	img, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound("imagen", id)
		}
		return err
	}

	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.storage.Remove(img.FileName); err != nil {
		log.Printf("failed to remove image file %s: %v", img.FileName, err)
	}

	return nil
}
