package repositories

import (
	"context"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loginRepository implements LoginRepository interface
type loginRepository struct {
	db *gorm.DB
}

// NewLoginRepository creates a new login repository
func NewLoginRepository(db *gorm.DB) LoginRepository {
	return &loginRepository{db: db}
}

func (r *loginRepository) Create(ctx context.Context, login *models.Login) error {
	return r.db.WithContext(ctx).Create(login).Error
}

func (r *loginRepository) GetByID(ctx context.Context, id uint) (*models.Login, error) {
	var login models.Login
	err := r.db.WithContext(ctx).Preload("Role").Where("id = ?", id).First(&login).Error
	if err != nil {
		return nil, err
	}
	return &login, nil
}

func (r *loginRepository) GetByUsername(ctx context.Context, username string) (*models.Login, error) {
	var login models.Login
	err := r.db.WithContext(ctx).Preload("Role").Where("username = ?", username).First(&login).Error
	if err != nil {
		return nil, err
	}
	return &login, nil
}

func (r *loginRepository) List(ctx context.Context) ([]*models.Login, error) {
	var logins []*models.Login
	err := r.db.WithContext(ctx).Order("id").Find(&logins).Error
	return logins, err
}

func (r *loginRepository) Update(ctx context.Context, login *models.Login) error {
	return r.db.WithContext(ctx).Save(login).Error
}

func (r *loginRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Login{}, id).Error
}

func (r *loginRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Login{}).Where("username = ?", username)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
