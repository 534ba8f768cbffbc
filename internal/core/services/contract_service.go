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

// dateLayout is the wire format for all date fields.
const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD date string.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.Validationf("La fecha de %s '%s' no es valida, use el formato AAAA-MM-DD", field, value)
	}
	return t, nil
}

// today truncates the current time to midnight UTC for date-only comparisons.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ContractService handles contract business logic
type ContractService struct {
	contractRepo repositories.ContractRepository
	roomRepo     repositories.RoomRepository
	tenantRepo   repositories.TenantRepository
	historyRepo  repositories.HistoryRepository
}

// NewContractService creates a new contract service
func NewContractService(
	contractRepo repositories.ContractRepository,
	roomRepo repositories.RoomRepository,
	tenantRepo repositories.TenantRepository,
	historyRepo repositories.HistoryRepository,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		roomRepo:     roomRepo,
		tenantRepo:   tenantRepo,
		historyRepo:  historyRepo,
	}
}

// ContractInput represents contract create/update input
type ContractInput struct {
	RoomID    uint    `json:"room_id"`
	TenantID  uint    `json:"tenant_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date,omitempty"`
	Rent      float64 `json:"rent"`
	Deposit   float64 `json:"deposit"`
}

// parseContractDates validates presence, format and ordering of the dates.
func parseContractDates(input *ContractInput) (time.Time, *time.Time, error) {
	if input.StartDate == "" {
		return time.Time{}, nil, domain.Validationf("La fecha de inicio del contrato es obligatoria")
	}
	start, err := parseDate("inicio", input.StartDate)
	if err != nil {
		return time.Time{}, nil, err
	}

	var end *time.Time
	if input.EndDate != "" {
		parsed, err := parseDate("finalizacion", input.EndDate)
		if err != nil {
			return time.Time{}, nil, err
		}
		if parsed.Before(start) {
			return time.Time{}, nil, domain.Validationf("La fecha de finalizacion no puede ser anterior a la fecha de inicio")
		}
		end = &parsed
	}

	return start, end, nil
}

func validateContractInput(input *ContractInput) error {
	if input.RoomID == 0 {
		return domain.Validationf("El cuarto del contrato es obligatorio")
	}
	if input.TenantID == 0 {
		return domain.Validationf("El inquilino del contrato es obligatorio")
	}
	if input.Rent < 0 {
		return domain.Validationf("La renta acordada no puede ser negativa")
	}
	if input.Deposit < 0 {
		return domain.Validationf("El deposito no puede ser negativo")
	}
	return nil
}

// Create validates and creates a new contract. A room or tenant with an
// active contract cannot take another one.
func (s *ContractService) Create(ctx context.Context, input *ContractInput) (*models.Contract, error) {
	if err := validateContractInput(input); err != nil {
		return nil, err
	}

	start, end, err := parseContractDates(input)
	if err != nil {
		return nil, err
	}
	if start.Before(today()) {
		return nil, domain.Validationf("La fecha de inicio no puede estar en el pasado")
	}

	roomExists, err := s.roomRepo.ExistsByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if !roomExists {
		return nil, domain.NotFound("cuarto", input.RoomID)
	}

	tenantExists, err := s.tenantRepo.ExistsByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if !tenantExists {
		return nil, domain.NotFound("inquilino", input.TenantID)
	}

	now := time.Now()
	roomBusy, err := s.contractRepo.ExistsActiveByRoom(ctx, input.RoomID, 0, now)
	if err != nil {
		return nil, err
	}
	if roomBusy {
		return nil, domain.Validationf("El cuarto ya tiene un contrato activo")
	}

	tenantBusy, err := s.contractRepo.ExistsActiveByTenant(ctx, input.TenantID, 0, now)
	if err != nil {
		return nil, err
	}
	if tenantBusy {
		return nil, domain.Validationf("El inquilino ya tiene un contrato activo")
	}

	contract := &models.Contract{
		RoomID:    input.RoomID,
		TenantID:  input.TenantID,
		StartDate: start,
		EndDate:   end,
		Rent:      input.Rent,
		Deposit:   input.Deposit,
		Status:    models.ContractActive,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	// Read back with room and tenant loaded.
	saved, err := s.contractRepo.GetByID(ctx, contract.ID)
	if err != nil {
		return nil, domain.Consistency("contrato", contract.ID)
	}

	s.record(ctx, models.ActionCreate, saved.ID,
		fmt.Sprintf("Contrato creado para cuarto %d e inquilino %d", saved.RoomID, saved.TenantID))

	return saved, nil
}

// Update validates and updates an existing contract. Active-contract
// conflicts are re-checked only when the room or tenant actually changes.
func (s *ContractService) Update(ctx context.Context, id uint, input *ContractInput) (*models.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("contrato", id)
		}
		return nil, err
	}

	if err := validateContractInput(input); err != nil {
		return nil, err
	}

	start, end, err := parseContractDates(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if input.RoomID != contract.RoomID {
		roomExists, err := s.roomRepo.ExistsByID(ctx, input.RoomID)
		if err != nil {
			return nil, err
		}
		if !roomExists {
			return nil, domain.NotFound("cuarto", input.RoomID)
		}

		roomBusy, err := s.contractRepo.ExistsActiveByRoom(ctx, input.RoomID, id, now)
		if err != nil {
			return nil, err
		}
		if roomBusy {
			return nil, domain.Validationf("El cuarto ya tiene un contrato activo")
		}
	}

	if input.TenantID != contract.TenantID {
		tenantExists, err := s.tenantRepo.ExistsByID(ctx, input.TenantID)
		if err != nil {
			return nil, err
		}
		if !tenantExists {
			return nil, domain.NotFound("inquilino", input.TenantID)
		}

		tenantBusy, err := s.contractRepo.ExistsActiveByTenant(ctx, input.TenantID, id, now)
		if err != nil {
			return nil, err
		}
		if tenantBusy {
			return nil, domain.Validationf("El inquilino ya tiene un contrato activo")
		}
	}

	contract.RoomID = input.RoomID
	contract.TenantID = input.TenantID
	contract.StartDate = start
	contract.EndDate = end
	contract.Rent = input.Rent
	contract.Deposit = input.Deposit

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}

	saved, err := s.contractRepo.GetByID(ctx, contract.ID)
	if err != nil {
		return nil, domain.Consistency("contrato", contract.ID)
	}

	s.record(ctx, models.ActionUpdate, saved.ID, "Contrato actualizado")

	return saved, nil
}

// Finalize ends a contract: sets the end date and flips the status.
func (s *ContractService) Finalize(ctx context.Context, id uint, endDate string) (*models.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("contrato", id)
		}
		return nil, err
	}

	if contract.Status == models.ContractFinalized {
		return nil, domain.Validationf("El contrato ya esta finalizado")
	}

	end := today()
	if endDate != "" {
		parsed, err := parseDate("finalizacion", endDate)
		if err != nil {
			return nil, err
		}
		end = parsed
	}
	if end.Before(contract.StartDate) {
		return nil, domain.Validationf("La fecha de finalizacion no puede ser anterior a la fecha de inicio")
	}

	contract.EndDate = &end
	contract.Status = models.ContractFinalized

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}

	s.record(ctx, models.ActionFinalize, contract.ID,
		fmt.Sprintf("Contrato finalizado con fecha %s", end.Format(dateLayout)))

	return contract, nil
}

// GetByID returns a contract, or nil when the id does not exist
func (s *ContractService) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return contract, nil
}

// List returns all contracts
func (s *ContractService) List(ctx context.Context) ([]*models.Contract, error) {
	return s.contractRepo.List(ctx)
}

// ListByRoom returns the contracts for one room
func (s *ContractService) ListByRoom(ctx context.Context, roomID uint) ([]*models.Contract, error) {
	return s.contractRepo.ListByRoom(ctx, roomID)
}

// ListByTenant returns the contracts for one tenant
func (s *ContractService) ListByTenant(ctx context.Context, tenantID uint) ([]*models.Contract, error) {
	return s.contractRepo.ListByTenant(ctx, tenantID)
}

// ListActive returns the contracts that are currently running
func (s *ContractService) ListActive(ctx context.Context) ([]*models.Contract, error) {
	return s.contractRepo.ListActive(ctx, time.Now())
}

// Delete deletes a contract
func (s *ContractService) Delete(ctx context.Context, id uint) error {
	if err := s.contractRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, models.ActionDelete, id, "Contrato eliminado")
	return nil
}

// record appends an audit entry; history is best effort and never blocks
// the main operation.
func (s *ContractService) record(ctx context.Context, action string, contractID uint, detail string) {
	if s.historyRepo == nil {
		return
	}
	_ = s.historyRepo.Create(ctx, &models.History{
		Action:   action,
		Entity:   "contrato",
		EntityID: contractID,
		Detail:   detail,
	})
}
