package services

import (
	"context"
	"strings"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/pagination"
)

// HistoryService exposes the append-only audit log
type HistoryService struct {
	historyRepo repositories.HistoryRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(historyRepo repositories.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// Record appends an audit entry
func (s *HistoryService) Record(ctx context.Context, action, entity string, entityID uint, detail, performedBy string) error {
	if strings.TrimSpace(action) == "" {
		return domain.Validationf("La accion del historial es obligatoria")
	}
	if strings.TrimSpace(entity) == "" {
		return domain.Validationf("La entidad del historial es obligatoria")
	}

	return s.historyRepo.Create(ctx, &models.History{
		Action:      strings.ToUpper(strings.TrimSpace(action)),
		Entity:      strings.ToLower(strings.TrimSpace(entity)),
		EntityID:    entityID,
		Detail:      detail,
		PerformedBy: performedBy,
	})
}

// List returns one page of the audit log, newest first
func (s *HistoryService) List(ctx context.Context, page, limit int) ([]*models.History, *pagination.Meta, error) {
	params := pagination.Normalize(page, limit)
	entries, total, err := s.historyRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, nil, err
	}
	return entries, pagination.GetMeta(params, total), nil
}

// ListByEntity returns every entry recorded for one entity instance
func (s *HistoryService) ListByEntity(ctx context.Context, entity string, entityID uint) ([]*models.History, error) {
	return s.historyRepo.ListByEntity(ctx, strings.ToLower(strings.TrimSpace(entity)), entityID)
}
