package services

import (
	"testing"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMaintenanceService(db *gorm.DB) *MaintenanceService {
	return NewMaintenanceService(
		repositories.NewMaintenanceRepository(db),
		repositories.NewRoomRepository(db),
	)
}

func TestMaintenanceCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newMaintenanceService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	ticket, err := svc.Create(testCtx(), &MaintenanceInput{
		RoomID:      room.ID,
		Description: "Fuga en el lavabo",
		ReportDate:  futureDate(0),
		Cost:        450,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MaintenancePending, ticket.Status)
	assert.Nil(t, ticket.AttentionDate)
}

func TestMaintenanceValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newMaintenanceService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	cases := []struct {
		name  string
		input MaintenanceInput
	}{
		{"missing description", MaintenanceInput{RoomID: room.ID, ReportDate: futureDate(0)}},
		{"negative cost", MaintenanceInput{RoomID: room.ID, Description: "x", ReportDate: futureDate(0), Cost: -5}},
		{"missing report date", MaintenanceInput{RoomID: room.ID, Description: "x"}},
		{"attention before report", MaintenanceInput{
			RoomID: room.ID, Description: "x",
			ReportDate: futureDate(5), AttentionDate: futureDate(2),
		}},
		{"unknown status", MaintenanceInput{
			RoomID: room.ID, Description: "x", ReportDate: futureDate(0), Status: "olvidado",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(testCtx(), &tc.input)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}

	_, err := svc.Create(testCtx(), &MaintenanceInput{
		RoomID: 99, Description: "x", ReportDate: futureDate(0),
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestMaintenanceChangeStatusStampsAttention(t *testing.T) {
	db := setupTestDB(t)
	svc := newMaintenanceService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	ticket, err := svc.Create(testCtx(), &MaintenanceInput{
		RoomID:      room.ID,
		Description: "Foco fundido",
		ReportDate:  futureDate(0),
	})
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(testCtx(), ticket.ID, "en proceso")
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceInProgress, updated.Status)
	require.NotNil(t, updated.AttentionDate)

	stamped := *updated.AttentionDate
	updated, err = svc.ChangeStatus(testCtx(), ticket.ID, "completado")
	require.NoError(t, err)
	// The original attention date survives later transitions.
	assert.Equal(t, stamped, *updated.AttentionDate)
}

func TestMaintenanceListByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newMaintenanceService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	_, err := svc.Create(testCtx(), &MaintenanceInput{
		RoomID: room.ID, Description: "a", ReportDate: futureDate(0),
	})
	require.NoError(t, err)

	_, err = svc.Create(testCtx(), &MaintenanceInput{
		RoomID: room.ID, Description: "b", ReportDate: futureDate(0), Status: "completado",
	})
	require.NoError(t, err)

	pending, err := svc.ListByStatus(testCtx(), "pendiente")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = svc.ListByStatus(testCtx(), "archivado")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
