package repositories

import (
	"context"
	"time"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contractRepository implements ContractRepository interface
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Tenant").
		Where("id = ?", id).
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) List(ctx context.Context) ([]*models.Contract, error) {
	var contracts []*models.Contract
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Tenant").
		Order("id").
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) ListByRoom(ctx context.Context, roomID uint) ([]*models.Contract, error) {
	var contracts []*models.Contract
	err := r.db.WithContext(ctx).Preload("Tenant").Where("room_id = ?", roomID).Order("id").Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*models.Contract, error) {
	var contracts []*models.Contract
	err := r.db.WithContext(ctx).Preload("Room").Where("tenant_id = ?", tenantID).Order("id").Find(&contracts).Error
	return contracts, err
}

// ListExpiring returns active contracts whose end date falls inside [from, to].
func (r *contractRepository) ListExpiring(ctx context.Context, from, to time.Time) ([]*models.Contract, error) {
	var contracts []*models.Contract
	err := r.db.WithContext(ctx).
		Preload("Tenant").
		Where("status = ? AND end_date IS NOT NULL AND end_date BETWEEN ? AND ?", models.ContractActive, from, to).
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) Update(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *contractRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Contract{}, id).Error
}

func (r *contractRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contract{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *contractRepository) ExistsActiveByRoom(ctx context.Context, roomID uint, excludeID uint, now time.Time) (bool, error) {
	var count int64
	q := r.activeQuery(ctx, now).Where("room_id = ?", roomID)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *contractRepository) ExistsActiveByTenant(ctx context.Context, tenantID uint, excludeID uint, now time.Time) (bool, error) {
	var count int64
	q := r.activeQuery(ctx, now).Where("tenant_id = ?", tenantID)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *contractRepository) ListActive(ctx context.Context, now time.Time) ([]*models.Contract, error) {
	var contracts []*models.Contract
	err := r.activeQuery(ctx, now).Preload("Room").Preload("Tenant").Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.activeQuery(ctx, now).Count(&count).Error
	return count, err
}

// activeQuery selects contracts that are activo with a null or future end date.
func (r *contractRepository) activeQuery(ctx context.Context, now time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("status = ? AND (end_date IS NULL OR end_date > ?)", models.ContractActive, now)
}
