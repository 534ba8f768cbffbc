package repositories

import (
	"context"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ownerRepository implements OwnerRepository interface
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, owner *models.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) GetByID(ctx context.Context, id uint) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) List(ctx context.Context) ([]*models.Owner, error) {
	var owners []*models.Owner
	err := r.db.WithContext(ctx).Order("id").Find(&owners).Error
	return owners, err
}

func (r *ownerRepository) Update(ctx context.Context, owner *models.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

func (r *ownerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Owner{}, id).Error
}

func (r *ownerRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Owner{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ownerRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Owner{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
