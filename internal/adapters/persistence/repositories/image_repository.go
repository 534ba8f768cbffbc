package repositories

import (
	"context"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// imageRepository implements ImageRepository interface
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, img *models.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imageRepository) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	var img models.Image
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) ListByRoom(ctx context.Context, roomID uint) ([]*models.Image, error) {
	var images []*models.Image
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("id").Find(&images).Error
	return images, err
}

func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Image{}, id).Error
}
