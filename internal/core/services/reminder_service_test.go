package services

import (
	"testing"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReminderService(db *gorm.DB) *ReminderService {
	return NewReminderService(
		repositories.NewContractRepository(db),
		newNotificationService(db),
	)
}

func TestSweepExpiringContracts(t *testing.T) {
	db := setupTestDB(t)
	svc := newReminderService(db)

	owner := seedOwner(t, db, "laura@example.com")
	roomA := seedRoom(t, db, owner.ID, "Cuarto 1")
	roomB := seedRoom(t, db, owner.ID, "Cuarto 2")
	roomC := seedRoom(t, db, owner.ID, "Cuarto 3")
	tenantA := seedTenant(t, db, "carlos@example.com", "INE001")
	tenantB := seedTenant(t, db, "maria@example.com", "INE002")
	tenantC := seedTenant(t, db, "jose@example.com", "INE003")

	// Ends inside the window: should be notified.
	soon := today().AddDate(0, 0, 3)
	expiring := seedActiveContract(t, db, roomA.ID, tenantA.ID)
	require.NoError(t, db.Model(expiring).Update("end_date", soon).Error)

	// Ends far outside the window: ignored.
	far := today().AddDate(0, 0, 60)
	distant := seedActiveContract(t, db, roomB.ID, tenantB.ID)
	require.NoError(t, db.Model(distant).Update("end_date", far).Error)

	// Open ended: ignored.
	seedActiveContract(t, db, roomC.ID, tenantC.ID)

	require.NoError(t, svc.SweepExpiringContracts(testCtx()))

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)

	n := notifications[0]
	assert.Equal(t, models.NotifyContractExpiry, n.Type)
	require.NotNil(t, n.TenantID)
	assert.Equal(t, tenantA.ID, *n.TenantID)
	require.NotNil(t, n.ContractID)
	assert.Equal(t, expiring.ID, *n.ContractID)
}

func TestSweepEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	svc := newReminderService(db)

	require.NoError(t, svc.SweepExpiringContracts(testCtx()))

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}
