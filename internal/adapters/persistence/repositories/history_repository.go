package repositories

import (
	"context"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// historyRepository implements HistoryRepository interface
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, h *models.History) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historyRepository) List(ctx context.Context, offset, limit int) ([]*models.History, int64, error) {
	var entries []*models.History
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.History{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *historyRepository) ListByEntity(ctx context.Context, entity string, entityID uint) ([]*models.History, error) {
	var entries []*models.History
	err := r.db.WithContext(ctx).
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
