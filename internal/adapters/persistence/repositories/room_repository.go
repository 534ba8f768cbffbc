package repositories

import (
	"context"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// roomRepository implements RoomRepository interface
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context) ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.WithContext(ctx).Preload("Owner").Order("id").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Room{}, id).Error
}

func (r *roomRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *roomRepository) ExistsByOwnerAndName(ctx context.Context, ownerID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Room{}).Where("owner_id = ? AND name = ?", ownerID, name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *roomRepository) CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
