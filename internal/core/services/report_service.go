package services

import (
	"context"
	"errors"
	"time"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"gorm.io/gorm"
)

// ReportService aggregates management figures from the repositories
type ReportService struct {
	ownerRepo       repositories.OwnerRepository
	roomRepo        repositories.RoomRepository
	contractRepo    repositories.ContractRepository
	paymentRepo     repositories.PaymentRepository
	maintenanceRepo repositories.MaintenanceRepository
}

// NewReportService creates a new report service
func NewReportService(
	ownerRepo repositories.OwnerRepository,
	roomRepo repositories.RoomRepository,
	contractRepo repositories.ContractRepository,
	paymentRepo repositories.PaymentRepository,
	maintenanceRepo repositories.MaintenanceRepository,
) *ReportService {
	return &ReportService{
		ownerRepo:       ownerRepo,
		roomRepo:        roomRepo,
		contractRepo:    contractRepo,
		paymentRepo:     paymentRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// OccupancyReport breaks rooms down by status.
type OccupancyReport struct {
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Maintenance int64 `json:"maintenance"`
	Total       int64 `json:"total"`
}

// IncomeReport totals payments over one calendar month.
type IncomeReport struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// MaintenanceCostReport totals ticket costs by status.
type MaintenanceCostReport struct {
	Pending    float64 `json:"pending"`
	InProgress float64 `json:"in_progress"`
	Completed  float64 `json:"completed"`
}

// OwnerSummary describes one owner's rooms, contracts and collected rent.
type OwnerSummary struct {
	OwnerID          uint    `json:"owner_id"`
	OwnerName        string  `json:"owner_name"`
	TotalRooms       int     `json:"total_rooms"`
	AvailableRooms   int     `json:"available_rooms"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	MaintenanceRooms int     `json:"maintenance_rooms"`
	ActiveContracts  int     `json:"active_contracts"`
	CollectedRent    float64 `json:"collected_rent"`
}

// Dashboard is the combined management summary.
type Dashboard struct {
	Occupancy       *OccupancyReport       `json:"occupancy"`
	ActiveContracts int64                  `json:"active_contracts"`
	MonthlyIncome   *IncomeReport          `json:"monthly_income"`
	MaintenanceCost *MaintenanceCostReport `json:"maintenance_cost"`
}

// Occupancy counts rooms per status
func (s *ReportService) Occupancy(ctx context.Context) (*OccupancyReport, error) {
	available, err := s.roomRepo.CountByStatus(ctx, models.RoomAvailable)
	if err != nil {
		return nil, err
	}
	occupied, err := s.roomRepo.CountByStatus(ctx, models.RoomOccupied)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.roomRepo.CountByStatus(ctx, models.RoomMaintenance)
	if err != nil {
		return nil, err
	}

	return &OccupancyReport{
		Available:   available,
		Occupied:    occupied,
		Maintenance: maintenance,
		Total:       available + occupied + maintenance,
	}, nil
}

// MonthlyIncome totals the payments dated inside one calendar month
func (s *ReportService) MonthlyIncome(ctx context.Context, year int, month time.Month) (*IncomeReport, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-24 * time.Hour)

	total, err := s.paymentRepo.SumByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &IncomeReport{Year: year, Month: int(month), Total: total}, nil
}

// ActiveContracts counts the contracts currently running
func (s *ReportService) ActiveContracts(ctx context.Context) (int64, error) {
	return s.contractRepo.CountActive(ctx, time.Now())
}

// MaintenanceCosts totals ticket costs for the open and completed statuses
func (s *ReportService) MaintenanceCosts(ctx context.Context) (*MaintenanceCostReport, error) {
	pending, err := s.maintenanceRepo.SumCostByStatus(ctx, models.MaintenancePending)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.maintenanceRepo.SumCostByStatus(ctx, models.MaintenanceInProgress)
	if err != nil {
		return nil, err
	}
	completed, err := s.maintenanceRepo.SumCostByStatus(ctx, models.MaintenanceCompleted)
	if err != nil {
		return nil, err
	}

	return &MaintenanceCostReport{
		Pending:    pending,
		InProgress: inProgress,
		Completed:  completed,
	}, nil
}

// ByOwner summarizes one owner's rooms, their active contracts and the rent
// collected on those contracts
func (s *ReportService) ByOwner(ctx context.Context, ownerID uint) (*OwnerSummary, error) {
	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("propietario", ownerID)
		}
		return nil, err
	}

	rooms, err := s.roomRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := &OwnerSummary{
		OwnerID:    owner.ID,
		OwnerName:  owner.FullName(),
		TotalRooms: len(rooms),
	}

	for _, room := range rooms {
		switch room.Status {
		case models.RoomAvailable:
			summary.AvailableRooms++
		case models.RoomOccupied:
			summary.OccupiedRooms++
		case models.RoomMaintenance:
			summary.MaintenanceRooms++
		}

		contracts, err := s.contractRepo.ListByRoom(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		for _, contract := range contracts {
			if contract.Status == models.ContractActive {
				summary.ActiveContracts++
			}
			collected, err := s.paymentRepo.SumByContract(ctx, contract.ID)
			if err != nil {
				return nil, err
			}
			summary.CollectedRent += collected
		}
	}

	return summary, nil
}

// GetDashboard assembles the combined summary for the current month
func (s *ReportService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	occupancy, err := s.Occupancy(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.ActiveContracts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	income, err := s.MonthlyIncome(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}

	costs, err := s.MaintenanceCosts(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Occupancy:       occupancy,
		ActiveContracts: active,
		MonthlyIncome:   income,
		MaintenanceCost: costs,
	}, nil
}
