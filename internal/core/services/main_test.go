package services

import (
	"context"
	"testing"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

// seedOwner inserts an owner and returns it.
func seedOwner(t *testing.T, db *gorm.DB, email string) *models.Owner {
	t.Helper()

	owner := &models.Owner{
		FirstName: "Laura",
		LastName:  "Mendez",
		Email:     email,
	}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

// seedTenant inserts a tenant and returns it.
func seedTenant(t *testing.T, db *gorm.DB, email, ine string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		FirstName: "Carlos",
		LastName:  "Rivas",
		Email:     email,
		INE:       ine,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

// seedRoom inserts a room owned by ownerID and returns it.
func seedRoom(t *testing.T, db *gorm.DB, ownerID uint, name string) *models.Room {
	t.Helper()

	room := &models.Room{
		OwnerID: ownerID,
		Name:    name,
		Status:  models.RoomAvailable,
		Price:   3500,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

// seedActiveContract inserts an open-ended active contract.
func seedActiveContract(t *testing.T, db *gorm.DB, roomID, tenantID uint) *models.Contract {
	t.Helper()

	contract := &models.Contract{
		RoomID:    roomID,
		TenantID:  tenantID,
		StartDate: today(),
		Rent:      3500,
		Status:    models.ContractActive,
	}
	require.NoError(t, db.Create(contract).Error)
	return contract
}

// newContractService wires a contract service over db with history enabled.
func newContractService(db *gorm.DB) *ContractService {
	return NewContractService(
		repositories.NewContractRepository(db),
		repositories.NewRoomRepository(db),
		repositories.NewTenantRepository(db),
		repositories.NewHistoryRepository(db),
	)
}

func testCtx() context.Context {
	return context.Background()
}

// futureDate formats a date n days from now in the wire format.
func futureDate(days int) string {
	return today().AddDate(0, 0, days).Format(dateLayout)
}
