package repositories

import (
	"context"
	"time"

	"rentacuartos/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Contract").
		Preload("Tenant").
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).Order("id").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListByContract(ctx context.Context, contractID uint) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).Where("contract_id = ?", contractID).Order("payment_date").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("payment_date").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, id).Error
}

func (r *paymentRepository) SumByContract(ctx context.Context, contractID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("contract_id = ?", contractID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) SumByTenant(ctx context.Context, tenantID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) SumByDateRange(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("payment_date BETWEEN ? AND ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
