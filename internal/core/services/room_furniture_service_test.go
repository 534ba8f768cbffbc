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

func newRoomFurnitureService(db *gorm.DB) *RoomFurnitureService {
	return NewRoomFurnitureService(
		repositories.NewRoomFurnitureRepository(db),
		repositories.NewRoomRepository(db),
		repositories.NewFurnitureCatalogRepository(db),
	)
}

func seedCatalogItem(t *testing.T, db *gorm.DB, name string) *models.FurnitureCatalog {
	t.Helper()

	item := &models.FurnitureCatalog{Name: name}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestRoomFurnitureAssign(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomFurnitureService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	item := seedCatalogItem(t, db, "Cama matrimonial")

	rf, err := svc.Assign(testCtx(), &RoomFurnitureInput{
		RoomID:    room.ID,
		CatalogID: item.ID,
		Quantity:  1,
		Condition: " BUENO ",
	})
	require.NoError(t, err)

	// Condition is normalized.
	assert.Equal(t, models.ConditionGood, rf.Condition)
	require.NotNil(t, rf.Catalog)
	assert.Equal(t, "Cama matrimonial", rf.Catalog.Name)
}

func TestRoomFurnitureAssignDuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomFurnitureService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	item := seedCatalogItem(t, db, "Silla")

	_, err := svc.Assign(testCtx(), &RoomFurnitureInput{
		RoomID: room.ID, CatalogID: item.ID, Quantity: 2,
	})
	require.NoError(t, err)

	_, err = svc.Assign(testCtx(), &RoomFurnitureInput{
		RoomID: room.ID, CatalogID: item.ID, Quantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, "El cuarto ya tiene este mueble registrado", err.Error())
}

func TestRoomFurnitureAssignValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomFurnitureService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	item := seedCatalogItem(t, db, "Silla")

	// Negative quantity.
	_, err := svc.Assign(testCtx(), &RoomFurnitureInput{
		RoomID: room.ID, CatalogID: item.ID, Quantity: -1,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Unknown condition.
	_, err = svc.Assign(testCtx(), &RoomFurnitureInput{
		RoomID: room.ID, CatalogID: item.ID, Quantity: 1, Condition: "nuevo",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Unknown catalog item.
	_, err = svc.Assign(testCtx(), &RoomFurnitureInput{
		RoomID: room.ID, CatalogID: 99, Quantity: 1,
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestRoomFurnitureQuantityDeltas(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomFurnitureService(db)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	item := seedCatalogItem(t, db, "Silla")

	rf, err := svc.Assign(testCtx(), &RoomFurnitureInput{
		RoomID: room.ID, CatalogID: item.ID, Quantity: 2,
	})
	require.NoError(t, err)

	rf, err = svc.IncrementQuantity(testCtx(), rf.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, rf.Quantity)

	// Decrement floors at zero.
	rf, err = svc.DecrementQuantity(testCtx(), rf.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, rf.Quantity)

	// Non-positive deltas are rejected.
	_, err = svc.IncrementQuantity(testCtx(), rf.ID, 0)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.DecrementQuantity(testCtx(), rf.ID, -2)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestFurnitureCatalogUniqueName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFurnitureCatalogService(repositories.NewFurnitureCatalogRepository(db))

	created, err := svc.Create(testCtx(), &FurnitureCatalogInput{Name: "Ropero"})
	require.NoError(t, err)

	_, err = svc.Create(testCtx(), &FurnitureCatalogInput{Name: "Ropero"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Renaming onto itself is allowed.
	_, err = svc.Update(testCtx(), created.ID, &FurnitureCatalogInput{Name: "Ropero", Description: "3 puertas"})
	require.NoError(t, err)
}
