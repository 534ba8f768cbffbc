package repositories

import (
	"context"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// furnitureCatalogRepository implements FurnitureCatalogRepository interface
type furnitureCatalogRepository struct {
	db *gorm.DB
}

// NewFurnitureCatalogRepository creates a new furniture catalog repository
func NewFurnitureCatalogRepository(db *gorm.DB) FurnitureCatalogRepository {
	return &furnitureCatalogRepository{db: db}
}

func (r *furnitureCatalogRepository) Create(ctx context.Context, item *models.FurnitureCatalog) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *furnitureCatalogRepository) GetByID(ctx context.Context, id uint) (*models.FurnitureCatalog, error) {
	var item models.FurnitureCatalog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *furnitureCatalogRepository) List(ctx context.Context) ([]*models.FurnitureCatalog, error) {
	var items []*models.FurnitureCatalog
	err := r.db.WithContext(ctx).Order("name").Find(&items).Error
	return items, err
}

func (r *furnitureCatalogRepository) Update(ctx context.Context, item *models.FurnitureCatalog) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *furnitureCatalogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FurnitureCatalog{}, id).Error
}

func (r *furnitureCatalogRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FurnitureCatalog{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *furnitureCatalogRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.FurnitureCatalog{}).Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// roomFurnitureRepository implements RoomFurnitureRepository interface
type roomFurnitureRepository struct {
	db *gorm.DB
}

// NewRoomFurnitureRepository creates a new room furniture repository
func NewRoomFurnitureRepository(db *gorm.DB) RoomFurnitureRepository {
	return &roomFurnitureRepository{db: db}
}

func (r *roomFurnitureRepository) Create(ctx context.Context, rf *models.RoomFurniture) error {
	return r.db.WithContext(ctx).Create(rf).Error
}

func (r *roomFurnitureRepository) GetByID(ctx context.Context, id uint) (*models.RoomFurniture, error) {
	var rf models.RoomFurniture
	err := r.db.WithContext(ctx).Preload("Catalog").Where("id = ?", id).First(&rf).Error
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

func (r *roomFurnitureRepository) GetByRoomAndCatalog(ctx context.Context, roomID, catalogID uint) (*models.RoomFurniture, error) {
	var rf models.RoomFurniture
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND catalog_id = ?", roomID, catalogID).
		First(&rf).Error
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

func (r *roomFurnitureRepository) ListByRoom(ctx context.Context, roomID uint) ([]*models.RoomFurniture, error) {
	var list []*models.RoomFurniture
	err := r.db.WithContext(ctx).Preload("Catalog").Where("room_id = ?", roomID).Order("id").Find(&list).Error
	return list, err
}

func (r *roomFurnitureRepository) Update(ctx context.Context, rf *models.RoomFurniture) error {
	return r.db.WithContext(ctx).Save(rf).Error
}

func (r *roomFurnitureRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.RoomFurniture{}, id).Error
}
