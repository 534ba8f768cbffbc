package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"gorm.io/gorm"
)

// PaymentService handles payment business logic
type PaymentService struct {
	paymentRepo  repositories.PaymentRepository
	contractRepo repositories.ContractRepository
	tenantRepo   repositories.TenantRepository
	historyRepo  repositories.HistoryRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	contractRepo repositories.ContractRepository,
	tenantRepo repositories.TenantRepository,
	historyRepo repositories.HistoryRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		tenantRepo:   tenantRepo,
		historyRepo:  historyRepo,
	}
}

// PaymentInput represents payment create/update input
type PaymentInput struct {
	ContractID  uint    `json:"contract_id"`
	TenantID    uint    `json:"tenant_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Status      string  `json:"status,omitempty"`
	PaymentDate string  `json:"payment_date"`
	Reference   string  `json:"reference,omitempty"`
}

// validatePaymentInput checks fields and resolves method, status and date.
// An empty status defaults to pendiente.
func validatePaymentInput(input *PaymentInput) (models.PaymentMethod, models.PaymentStatus, time.Time, error) {
	if input.ContractID == 0 {
		return "", "", time.Time{}, domain.Validationf("El contrato del pago es obligatorio")
	}
	if input.TenantID == 0 {
		return "", "", time.Time{}, domain.Validationf("El inquilino del pago es obligatorio")
	}
	if input.Amount < 0 {
		return "", "", time.Time{}, domain.Validationf("El monto del pago no puede ser negativo")
	}

	method := models.NormalizePaymentMethod(input.Method)
	if !method.Valid() {
		return "", "", time.Time{}, domain.Validationf("El metodo de pago '%s' no es valido", input.Method)
	}

	status := models.PaymentPending
	if input.Status != "" {
		status = models.NormalizePaymentStatus(input.Status)
		if !status.Valid() {
			return "", "", time.Time{}, domain.Validationf("El estado de pago '%s' no es valido", input.Status)
		}
	}

	if input.PaymentDate == "" {
		return "", "", time.Time{}, domain.Validationf("La fecha del pago es obligatoria")
	}
	date, err := parseDate("pago", input.PaymentDate)
	if err != nil {
		return "", "", time.Time{}, err
	}
	if date.After(today()) {
		return "", "", time.Time{}, domain.Validationf("La fecha del pago no puede estar en el futuro")
	}

	return method, status, date, nil
}

// checkPaymentReferences verifies the contract and tenant exist.
func (s *PaymentService) checkPaymentReferences(ctx context.Context, input *PaymentInput) error {
	contractExists, err := s.contractRepo.ExistsByID(ctx, input.ContractID)
	if err != nil {
		return err
	}
	if !contractExists {
		return domain.NotFound("contrato", input.ContractID)
	}

	tenantExists, err := s.tenantRepo.ExistsByID(ctx, input.TenantID)
	if err != nil {
		return err
	}
	if !tenantExists {
		return domain.NotFound("inquilino", input.TenantID)
	}
	return nil
}

// Create validates and registers a payment
func (s *PaymentService) Create(ctx context.Context, input *PaymentInput) (*models.Payment, error) {
	method, status, date, err := validatePaymentInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.checkPaymentReferences(ctx, input); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ContractID:  input.ContractID,
		TenantID:    input.TenantID,
		Amount:      input.Amount,
		Method:      method,
		Status:      status,
		PaymentDate: date,
		Reference:   input.Reference,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	saved, err := s.paymentRepo.GetByID(ctx, payment.ID)
	if err != nil {
		return nil, domain.Consistency("pago", payment.ID)
	}

	s.record(ctx, models.ActionCreate, saved.ID,
		fmt.Sprintf("Pago de %.2f registrado para contrato %d", saved.Amount, saved.ContractID))

	return saved, nil
}

// Update validates and updates an existing payment
func (s *PaymentService) Update(ctx context.Context, id uint, input *PaymentInput) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("pago", id)
		}
		return nil, err
	}

	method, status, date, err := validatePaymentInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.checkPaymentReferences(ctx, input); err != nil {
		return nil, err
	}

	payment.ContractID = input.ContractID
	payment.TenantID = input.TenantID
	payment.Amount = input.Amount
	payment.Method = method
	payment.Status = status
	payment.PaymentDate = date
	payment.Reference = input.Reference

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.record(ctx, models.ActionUpdate, payment.ID, "Pago actualizado")

	return payment, nil
}

// ChangeStatus updates only the payment status
func (s *PaymentService) ChangeStatus(ctx context.Context, id uint, status string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("pago", id)
		}
		return nil, err
	}

	normalized := models.NormalizePaymentStatus(status)
	if !normalized.Valid() {
		return nil, domain.Validationf("El estado de pago '%s' no es valido", status)
	}

	payment.Status = normalized
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetByID returns a payment, or nil when the id does not exist
func (s *PaymentService) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}

// List returns all payments
func (s *PaymentService) List(ctx context.Context) ([]*models.Payment, error) {
	return s.paymentRepo.List(ctx)
}

// ListByContract returns the payments for one contract
func (s *PaymentService) ListByContract(ctx context.Context, contractID uint) ([]*models.Payment, error) {
	return s.paymentRepo.ListByContract(ctx, contractID)
}

// ListByTenant returns the payments made by one tenant
func (s *PaymentService) ListByTenant(ctx context.Context, tenantID uint) ([]*models.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}

// SumByContract totals the payments registered against one contract
func (s *PaymentService) SumByContract(ctx context.Context, contractID uint) (float64, error) {
	return s.paymentRepo.SumByContract(ctx, contractID)
}

// SumByTenant totals the payments made by one tenant
func (s *PaymentService) SumByTenant(ctx context.Context, tenantID uint) (float64, error) {
	return s.paymentRepo.SumByTenant(ctx, tenantID)
}

// SumByDateRange totals the payments dated inside [from, to]
func (s *PaymentService) SumByDateRange(ctx context.Context, from, to string) (float64, error) {
	fromDate, err := parseDate("inicio", from)
	if err != nil {
		return 0, err
	}
	toDate, err := parseDate("fin", to)
	if err != nil {
		return 0, err
	}
	if toDate.Before(fromDate) {
		return 0, domain.Validationf("La fecha final no puede ser anterior a la fecha inicial")
	}
	return s.paymentRepo.SumByDateRange(ctx, fromDate, toDate)
}

// Delete deletes a payment
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, models.ActionDelete, id, "Pago eliminado")
	return nil
}

func (s *PaymentService) record(ctx context.Context, action string, paymentID uint, detail string) {
	if s.historyRepo == nil {
		return
	}
	_ = s.historyRepo.Create(ctx, &models.History{
		Action:   action,
		Entity:   "pago",
		EntityID: paymentID,
		Detail:   detail,
	})
}
