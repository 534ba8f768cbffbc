package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/pagination"

	"gorm.io/gorm"
)

// NotificationService handles tenant notifications
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	tenantRepo       repositories.TenantRepository
	contractRepo     repositories.ContractRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	tenantRepo repositories.TenantRepository,
	contractRepo repositories.ContractRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		tenantRepo:       tenantRepo,
		contractRepo:     contractRepo,
	}
}

// NotificationInput represents notification create input
type NotificationInput struct {
	TenantID   *uint  `json:"tenant_id,omitempty"`
	ContractID *uint  `json:"contract_id,omitempty"`
	Type       string `json:"type,omitempty"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

// NotificationStats summarizes a tenant's inbox.
type NotificationStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

func validateNotificationInput(input *NotificationInput) (models.NotificationType, error) {
	if input.TenantID == nil && input.ContractID == nil {
		return "", domain.Validationf("La notificacion debe referir a un inquilino o a un contrato")
	}
	if strings.TrimSpace(input.Title) == "" {
		return "", domain.Validationf("El titulo de la notificacion es obligatorio")
	}
	if strings.TrimSpace(input.Message) == "" {
		return "", domain.Validationf("El mensaje de la notificacion es obligatorio")
	}

	notifType := models.NotifyGeneral
	if input.Type != "" {
		notifType = models.NotificationType(strings.ToLower(strings.TrimSpace(input.Type)))
		switch notifType {
		case models.NotifyGeneral, models.NotifyPaymentDue, models.NotifyContractExpiry:
		default:
			return "", domain.Validationf("El tipo de notificacion '%s' no es valido", input.Type)
		}
	}
	return notifType, nil
}

// Create validates and creates a notification
func (s *NotificationService) Create(ctx context.Context, input *NotificationInput) (*models.Notification, error) {
	notifType, err := validateNotificationInput(input)
	if err != nil {
		return nil, err
	}

	if input.TenantID != nil {
		tenantExists, err := s.tenantRepo.ExistsByID(ctx, *input.TenantID)
		if err != nil {
			return nil, err
		}
		if !tenantExists {
			return nil, domain.NotFound("inquilino", *input.TenantID)
		}
	}

	if input.ContractID != nil {
		contractExists, err := s.contractRepo.ExistsByID(ctx, *input.ContractID)
		if err != nil {
			return nil, err
		}
		if !contractExists {
			return nil, domain.NotFound("contrato", *input.ContractID)
		}
	}

	n := &models.Notification{
		TenantID:   input.TenantID,
		ContractID: input.ContractID,
		Type:       notifType,
		Title:      strings.TrimSpace(input.Title),
		Message:    strings.TrimSpace(input.Message),
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	saved, err := s.notificationRepo.GetByID(ctx, n.ID)
	if err != nil {
		return nil, domain.Consistency("notificacion", n.ID)
	}

	return saved, nil
}

// CreatePaymentReminder creates a pending-payment notice for one tenant
func (s *NotificationService) CreatePaymentReminder(ctx context.Context, tenantID, contractID uint, amount float64) (*models.Notification, error) {
	return s.Create(ctx, &NotificationInput{
		TenantID:   &tenantID,
		ContractID: &contractID,
		Type:       string(models.NotifyPaymentDue),
		Title:      "Pago pendiente",
		Message:    fmt.Sprintf("Tienes un pago pendiente de %.2f en tu contrato", amount),
	})
}

// CreateContractExpiry creates an expiring-contract notice for one tenant
func (s *NotificationService) CreateContractExpiry(ctx context.Context, tenantID, contractID uint, endDate string) (*models.Notification, error) {
	return s.Create(ctx, &NotificationInput{
		TenantID:   &tenantID,
		ContractID: &contractID,
		Type:       string(models.NotifyContractExpiry),
		Title:      "Contrato por vencer",
		Message:    fmt.Sprintf("Tu contrato vence el %s", endDate),
	})
}

// MarkRead flags a notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id uint) (*models.Notification, error) {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("notificacion", id)
		}
		return nil, err
	}

	if !n.IsRead {
		n.IsRead = true
		if err := s.notificationRepo.Update(ctx, n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// GetByID returns a notification, or nil when the id does not exist
func (s *NotificationService) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

// List returns all notifications
func (s *NotificationService) List(ctx context.Context) ([]*models.Notification, error) {
	return s.notificationRepo.List(ctx)
}

// ListByTenant returns the notifications addressed to one tenant
func (s *NotificationService) ListByTenant(ctx context.Context, tenantID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListByTenant(ctx, tenantID)
}

// ListByTenantPaged returns one page of a tenant's notifications.
func (s *NotificationService) ListByTenantPaged(ctx context.Context, tenantID uint, page, limit int) ([]*models.Notification, *pagination.Meta, error) {
	items, err := s.notificationRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	params := pagination.Normalize(page, limit)
	pageItems := pagination.Slice(items, params.Page, params.Limit)
	return pageItems, pagination.GetMeta(params, int64(len(items))), nil
}

// StatsByTenant returns total and unread counts for one tenant's inbox
func (s *NotificationService) StatsByTenant(ctx context.Context, tenantID uint) (*NotificationStats, error) {
	total, err := s.notificationRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.CountUnreadByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &NotificationStats{Total: total, Unread: unread}, nil
}

// Delete deletes a notification
func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	return s.notificationRepo.Delete(ctx, id)
}
