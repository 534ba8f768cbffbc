package services

import (
	"testing"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	contract, err := svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  tenant.ID,
		StartDate: futureDate(0),
		Rent:      3500,
		Deposit:   3500,
	})
	require.NoError(t, err)
	require.NotNil(t, contract)

	assert.Equal(t, models.ContractActive, contract.Status)
	assert.NotNil(t, contract.Room)
	assert.NotNil(t, contract.Tenant)
	assert.Nil(t, contract.EndDate)
}

func TestContractCreateRoomAlreadyActive(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")
	other := seedTenant(t, db, "maria@example.com", "INE002")

	seedActiveContract(t, db, room.ID, tenant.ID)

	_, err := svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  other.ID,
		StartDate: futureDate(0),
		Rent:      3500,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "El cuarto ya tiene un contrato activo", err.Error())
}

func TestContractCreateTenantAlreadyActive(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	roomA := seedRoom(t, db, owner.ID, "Cuarto 1")
	roomB := seedRoom(t, db, owner.ID, "Cuarto 2")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	seedActiveContract(t, db, roomA.ID, tenant.ID)

	_, err := svc.Create(testCtx(), &ContractInput{
		RoomID:    roomB.ID,
		TenantID:  tenant.ID,
		StartDate: futureDate(0),
		Rent:      3500,
	})
	require.Error(t, err)
	assert.Equal(t, "El inquilino ya tiene un contrato activo", err.Error())
}

func TestContractCreateDateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	// Start in the past is rejected.
	_, err := svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  tenant.ID,
		StartDate: "2020-01-01",
		Rent:      3500,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// End before start is rejected.
	_, err = svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  tenant.ID,
		StartDate: futureDate(10),
		EndDate:   futureDate(5),
		Rent:      3500,
	})
	require.Error(t, err)
	assert.Equal(t, "La fecha de finalizacion no puede ser anterior a la fecha de inicio", err.Error())

	// Garbage date format is rejected.
	_, err = svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  tenant.ID,
		StartDate: "01/02/2030",
		Rent:      3500,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestContractCreateMissingReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	_, err := svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  999,
		StartDate: futureDate(0),
		Rent:      3500,
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestContractUpdateKeepsOwnSlot(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")
	contract := seedActiveContract(t, db, room.ID, tenant.ID)

	// Updating without changing room or tenant must not trip the
	// active-contract conflict against itself.
	updated, err := svc.Update(testCtx(), contract.ID, &ContractInput{
		RoomID:    room.ID,
		TenantID:  tenant.ID,
		StartDate: futureDate(0),
		Rent:      4000,
	})
	require.NoError(t, err)
	assert.Equal(t, 4000.0, updated.Rent)
}

func TestContractUpdateRoomChangeConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	roomA := seedRoom(t, db, owner.ID, "Cuarto 1")
	roomB := seedRoom(t, db, owner.ID, "Cuarto 2")
	tenantA := seedTenant(t, db, "carlos@example.com", "INE001")
	tenantB := seedTenant(t, db, "maria@example.com", "INE002")

	contract := seedActiveContract(t, db, roomA.ID, tenantA.ID)
	seedActiveContract(t, db, roomB.ID, tenantB.ID)

	// Moving the contract onto an occupied room must fail.
	_, err := svc.Update(testCtx(), contract.ID, &ContractInput{
		RoomID:    roomB.ID,
		TenantID:  tenantA.ID,
		StartDate: futureDate(0),
		Rent:      3500,
	})
	require.Error(t, err)
	assert.Equal(t, "El cuarto ya tiene un contrato activo", err.Error())
}

func TestContractFinalize(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")
	contract := seedActiveContract(t, db, room.ID, tenant.ID)

	finalized, err := svc.Finalize(testCtx(), contract.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.ContractFinalized, finalized.Status)
	require.NotNil(t, finalized.EndDate)

	// Finalizing twice is rejected.
	_, err = svc.Finalize(testCtx(), contract.ID, "")
	require.Error(t, err)
	assert.Equal(t, "El contrato ya esta finalizado", err.Error())
}

func TestContractFinalizeFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")
	other := seedTenant(t, db, "maria@example.com", "INE002")

	contract := seedActiveContract(t, db, room.ID, tenant.ID)
	_, err := svc.Finalize(testCtx(), contract.ID, "")
	require.NoError(t, err)

	// After finalization the room can take a new contract.
	_, err = svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  other.ID,
		StartDate: futureDate(0),
		Rent:      3800,
	})
	require.NoError(t, err)
}

func TestContractHistoryRecorded(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	contract, err := svc.Create(testCtx(), &ContractInput{
		RoomID:    room.ID,
		TenantID:  tenant.ID,
		StartDate: futureDate(0),
		Rent:      3500,
	})
	require.NoError(t, err)

	var entries []models.History
	require.NoError(t, db.Where("entity = ? AND entity_id = ?", "contrato", contract.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionCreate, entries[0].Action)
}

func TestContractGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newContractService(db)

	contract, err := svc.GetByID(testCtx(), 42)
	require.NoError(t, err)
	assert.Nil(t, contract)
}
