package services

import (
	"context"
	"log"

	"rentacuartos/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// expiryWindowDays is how far ahead the daily sweep looks for contracts
// about to end.
const expiryWindowDays = 7

// ReminderService runs the daily sweep that turns expiring contracts into
// tenant notifications.
type ReminderService struct {
	contractRepo        repositories.ContractRepository
	notificationService *NotificationService
	cron                *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(
	contractRepo repositories.ContractRepository,
	notificationService *NotificationService,
) *ReminderService {
	return &ReminderService{
		contractRepo:        contractRepo,
		notificationService: notificationService,
		cron:                cron.New(),
	}
}

// Start schedules the daily sweep at 08:00 server time
func (s *ReminderService) Start() error {
	_, err := s.cron.AddFunc("0 8 * * *", func() {
		if err := s.SweepExpiringContracts(context.Background()); err != nil {
			log.Printf("contract expiry sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Reminder scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Reminder scheduler stopped")
}

// SweepExpiringContracts notifies the tenants whose contracts end inside the
// expiry window. Failures on individual contracts are logged and skipped so
// one bad row does not stall the sweep.
func (s *ReminderService) SweepExpiringContracts(ctx context.Context) error {
	from := today()
	to := from.AddDate(0, 0, expiryWindowDays)

	contracts, err := s.contractRepo.ListExpiring(ctx, from, to)
	if err != nil {
		return err
	}

	for _, c := range contracts {
		if c.EndDate == nil {
			continue
		}
		_, err := s.notificationService.CreateContractExpiry(
			ctx, c.TenantID, c.ID, c.EndDate.Format(dateLayout))
		if err != nil {
			log.Printf("failed to notify tenant %d for contract %d: %v", c.TenantID, c.ID, err)
		}
	}

	if len(contracts) > 0 {
		log.Printf("contract expiry sweep notified %d contracts", len(contracts))
	}
	return nil
}
