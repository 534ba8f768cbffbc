package services

import (
	"fmt"
	"testing"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewTenantRepository(db),
		repositories.NewContractRepository(db),
	)
}

func TestNotificationCreateRequiresReference(t *testing.T) {
	db := setupTestDB(t)
	svc := newNotificationService(db)

	_, err := svc.Create(testCtx(), &NotificationInput{
		Title:   "Aviso",
		Message: "Sin destinatario",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestNotificationCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newNotificationService(db)
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	n, err := svc.Create(testCtx(), &NotificationInput{
		TenantID: &tenant.ID,
		Title:    "Aviso general",
		Message:  "El agua se corta el viernes",
	})
	require.NoError(t, err)

	assert.Equal(t, models.NotifyGeneral, n.Type)
	assert.False(t, n.IsRead)
}

func TestNotificationUnknownTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newNotificationService(db)

	missing := uint(99)
	_, err := svc.Create(testCtx(), &NotificationInput{
		TenantID: &missing,
		Title:    "Aviso",
		Message:  "mensaje",
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestNotificationInvalidType(t *testing.T) {
	db := setupTestDB(t)
	svc := newNotificationService(db)
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	_, err := svc.Create(testCtx(), &NotificationInput{
		TenantID: &tenant.ID,
		Type:     "urgente",
		Title:    "Aviso",
		Message:  "mensaje",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestNotificationMarkReadAndStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newNotificationService(db)
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	first, err := svc.Create(testCtx(), &NotificationInput{
		TenantID: &tenant.ID, Title: "Uno", Message: "m",
	})
	require.NoError(t, err)

	_, err = svc.Create(testCtx(), &NotificationInput{
		TenantID: &tenant.ID, Title: "Dos", Message: "m",
	})
	require.NoError(t, err)

	stats, err := svc.StatsByTenant(testCtx(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(2), stats.Unread)

	read, err := svc.MarkRead(testCtx(), first.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	// Marking twice is idempotent.
	_, err = svc.MarkRead(testCtx(), first.ID)
	require.NoError(t, err)

	stats, err = svc.StatsByTenant(testCtx(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Unread)
}

func TestNotificationListByTenantPaged(t *testing.T) {
	db := setupTestDB(t)
	svc := newNotificationService(db)
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	for i := 0; i < 12; i++ {
		_, err := svc.Create(testCtx(), &NotificationInput{
			TenantID: &tenant.ID,
			Title:    fmt.Sprintf("Aviso %d", i),
			Message:  "m",
		})
		require.NoError(t, err)
	}

	page, meta, err := svc.ListByTenantPaged(testCtx(), tenant.ID, 2, 5)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, int64(12), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	last, _, err := svc.ListByTenantPaged(testCtx(), tenant.ID, 3, 5)
	require.NoError(t, err)
	assert.Len(t, last, 2)
}

func TestNotificationQuickHelpers(t *testing.T) {
	db := setupTestDB(t)
	svc := newNotificationService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")
	contract := seedActiveContract(t, db, room.ID, tenant.ID)

	due, err := svc.CreatePaymentReminder(testCtx(), tenant.ID, contract.ID, 3500)
	require.NoError(t, err)
	assert.Equal(t, models.NotifyPaymentDue, due.Type)

	expiry, err := svc.CreateContractExpiry(testCtx(), tenant.ID, contract.ID, "2026-09-30")
	require.NoError(t, err)
	assert.Equal(t, models.NotifyContractExpiry, expiry.Type)
	assert.Contains(t, expiry.Message, "2026-09-30")
}
