package repositories

import (
	"context"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// maintenanceRepository implements MaintenanceRepository interface
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, m *models.Maintenance) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id uint) (*models.Maintenance, error) {
	var m models.Maintenance
	err := r.db.WithContext(ctx).Preload("Room").Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maintenanceRepository) List(ctx context.Context) ([]*models.Maintenance, error) {
	var list []*models.Maintenance
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *maintenanceRepository) ListByRoom(ctx context.Context, roomID uint) ([]*models.Maintenance, error) {
	var list []*models.Maintenance
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("report_date").Find(&list).Error
	return list, err
}

func (r *maintenanceRepository) ListByStatus(ctx context.Context, status models.MaintenanceStatus) ([]*models.Maintenance, error) {
	var list []*models.Maintenance
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("report_date").Find(&list).Error
	return list, err
}

func (r *maintenanceRepository) Update(ctx context.Context, m *models.Maintenance) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *maintenanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Maintenance{}, id).Error
}

func (r *maintenanceRepository) SumCostByStatus(ctx context.Context, status models.MaintenanceStatus) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Maintenance{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}
