package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"gorm.io/gorm"
)

// MaintenanceService handles maintenance business logic
type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	roomRepo        repositories.RoomRepository
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepository,
	roomRepo repositories.RoomRepository,
) *MaintenanceService {
	return &MaintenanceService{maintenanceRepo: maintenanceRepo, roomRepo: roomRepo}
}

// MaintenanceInput represents maintenance create/update input
type MaintenanceInput struct {
	RoomID        uint    `json:"room_id"`
	Description   string  `json:"description"`
	ReportDate    string  `json:"report_date"`
	AttentionDate string  `json:"attention_date,omitempty"`
	Cost          float64 `json:"cost"`
	Status        string  `json:"status,omitempty"`
}

// validateMaintenanceInput checks fields and resolves the status and the
// report/attention dates. An empty status defaults to pendiente.
func validateMaintenanceInput(input *MaintenanceInput) (models.MaintenanceStatus, time.Time, *time.Time, error) {
	if input.RoomID == 0 {
		return "", time.Time{}, nil, domain.Validationf("El cuarto del mantenimiento es obligatorio")
	}
	if strings.TrimSpace(input.Description) == "" {
		return "", time.Time{}, nil, domain.Validationf("La descripcion del mantenimiento es obligatoria")
	}
	if input.Cost < 0 {
		return "", time.Time{}, nil, domain.Validationf("El costo del mantenimiento no puede ser negativo")
	}

	status := models.MaintenancePending
	if input.Status != "" {
		status = models.NormalizeMaintenanceStatus(input.Status)
		if !status.Valid() {
			return "", time.Time{}, nil, domain.Validationf("El estado de mantenimiento '%s' no es valido", input.Status)
		}
	}

	if input.ReportDate == "" {
		return "", time.Time{}, nil, domain.Validationf("La fecha de reporte es obligatoria")
	}
	report, err := parseDate("reporte", input.ReportDate)
	if err != nil {
		return "", time.Time{}, nil, err
	}

	var attention *time.Time
	if input.AttentionDate != "" {
		parsed, err := parseDate("atencion", input.AttentionDate)
		if err != nil {
			return "", time.Time{}, nil, err
		}
		if parsed.Before(report) {
			return "", time.Time{}, nil, domain.Validationf("La fecha de atencion no puede ser anterior a la fecha de reporte")
		}
		attention = &parsed
	}

	return status, report, attention, nil
}

// Create validates and registers a maintenance ticket
func (s *MaintenanceService) Create(ctx context.Context, input *MaintenanceInput) (*models.Maintenance, error) {
	status, report, attention, err := validateMaintenanceInput(input)
	if err != nil {
		return nil, err
	}

	roomExists, err := s.roomRepo.ExistsByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if !roomExists {
		return nil, domain.NotFound("cuarto", input.RoomID)
	}

	m := &models.Maintenance{
		RoomID:        input.RoomID,
		Description:   strings.TrimSpace(input.Description),
		ReportDate:    report,
		AttentionDate: attention,
		Cost:          input.Cost,
		Status:        status,
	}

	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	saved, err := s.maintenanceRepo.GetByID(ctx, m.ID)
	if err != nil {
		return nil, domain.Consistency("mantenimiento", m.ID)
	}

	return saved, nil
}

// Update validates and updates an existing maintenance ticket
func (s *MaintenanceService) Update(ctx context.Context, id uint, input *MaintenanceInput) (*models.Maintenance, error) {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("mantenimiento", id)
		}
		return nil, err
	}

	status, report, attention, err := validateMaintenanceInput(input)
	if err != nil {
		return nil, err
	}

	if input.RoomID != m.RoomID {
		roomExists, err := s.roomRepo.ExistsByID(ctx, input.RoomID)
		if err != nil {
			return nil, err
		}
		if !roomExists {
			return nil, domain.NotFound("cuarto", input.RoomID)
		}
	}

	m.RoomID = input.RoomID
	m.Description = strings.TrimSpace(input.Description)
	m.ReportDate = report
	m.AttentionDate = attention
	m.Cost = input.Cost
	m.Status = status

	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ChangeStatus updates only the ticket status. Moving to en proceso or
// completado stamps the attention date when it is still empty.
func (s *MaintenanceService) ChangeStatus(ctx context.Context, id uint, status string) (*models.Maintenance, error) {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("mantenimiento", id)
		}
		return nil, err
	}

	normalized := models.NormalizeMaintenanceStatus(status)
	if !normalized.Valid() {
		return nil, domain.Validationf("El estado de mantenimiento '%s' no es valido", status)
	}

	m.Status = normalized
	if m.AttentionDate == nil &&
		(normalized == models.MaintenanceInProgress || normalized == models.MaintenanceCompleted) {
		now := today()
		m.AttentionDate = &now
	}

	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// GetByID returns a maintenance ticket, or nil when the id does not exist
func (s *MaintenanceService) GetByID(ctx context.Context, id uint) (*models.Maintenance, error) {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// List returns all maintenance tickets
func (s *MaintenanceService) List(ctx context.Context) ([]*models.Maintenance, error) {
	return s.maintenanceRepo.List(ctx)
}

// ListByRoom returns the tickets reported against one room
func (s *MaintenanceService) ListByRoom(ctx context.Context, roomID uint) ([]*models.Maintenance, error) {
	return s.maintenanceRepo.ListByRoom(ctx, roomID)
}

// ListByStatus returns the tickets in one status
func (s *MaintenanceService) ListByStatus(ctx context.Context, status string) ([]*models.Maintenance, error) {
	normalized := models.NormalizeMaintenanceStatus(status)
	if !normalized.Valid() {
		return nil, domain.Validationf("El estado de mantenimiento '%s' no es valido", status)
	}
	return s.maintenanceRepo.ListByStatus(ctx, normalized)
}

// Delete deletes a maintenance ticket
func (s *MaintenanceService) Delete(ctx context.Context, id uint) error {
	return s.maintenanceRepo.Delete(ctx, id)
}
