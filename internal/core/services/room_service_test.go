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

func newRoomService(db *gorm.DB) *RoomService {
	return NewRoomService(repositories.NewRoomRepository(db), repositories.NewOwnerRepository(db))
}

func TestRoomCreateDefaultsAvailable(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	owner := seedOwner(t, db, "laura@example.com")

	room, err := svc.Create(testCtx(), &RoomInput{
		OwnerID: owner.ID,
		Name:    "Cuarto 1",
		Price:   3500,
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoomAvailable, room.Status)
	// Create hydrates the owner relation.
	require.NotNil(t, room.Owner)
	assert.Equal(t, owner.Email, room.Owner.Email)
}

func TestRoomCreateUnknownOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)

	_, err := svc.Create(testCtx(), &RoomInput{OwnerID: 77, Name: "Cuarto 1", Price: 100})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestRoomNameUniquePerOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)

	ownerA := seedOwner(t, db, "laura@example.com")
	ownerB := seedOwner(t, db, "pedro@example.com")

	_, err := svc.Create(testCtx(), &RoomInput{OwnerID: ownerA.ID, Name: "Cuarto 1", Price: 100})
	require.NoError(t, err)

	// Same owner, same name: rejected.
	_, err = svc.Create(testCtx(), &RoomInput{OwnerID: ownerA.ID, Name: "Cuarto 1", Price: 100})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Different owner, same name: fine.
	_, err = svc.Create(testCtx(), &RoomInput{OwnerID: ownerB.ID, Name: "Cuarto 1", Price: 100})
	require.NoError(t, err)
}

func TestRoomUpdateKeepsOwnName(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	owner := seedOwner(t, db, "laura@example.com")

	room, err := svc.Create(testCtx(), &RoomInput{OwnerID: owner.ID, Name: "Cuarto 1", Price: 100})
	require.NoError(t, err)

	updated, err := svc.Update(testCtx(), room.ID, &RoomInput{
		OwnerID: owner.ID, Name: "Cuarto 1", Price: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.Price)
}

func TestRoomChangeStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	updated, err := svc.ChangeStatus(testCtx(), room.ID, " Mantenimiento ")
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, updated.Status)

	_, err = svc.ChangeStatus(testCtx(), room.ID, "demolido")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRoomInvalidStatusOnCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	owner := seedOwner(t, db, "laura@example.com")

	_, err := svc.Create(testCtx(), &RoomInput{
		OwnerID: owner.ID, Name: "Cuarto 1", Status: "libre", Price: 100,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
