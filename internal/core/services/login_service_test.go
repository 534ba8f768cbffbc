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

func newLoginService(db *gorm.DB) *LoginService {
	return NewLoginService(
		repositories.NewLoginRepository(db),
		repositories.NewRoleRepository(db),
		repositories.NewOwnerRepository(db),
		repositories.NewTenantRepository(db),
	)
}

func seedRole(t *testing.T, db *gorm.DB, title string) *models.Role {
	t.Helper()

	role := &models.Role{Title: title}
	require.NoError(t, db.Create(role).Error)
	return role
}

func TestLoginCreateAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoginService(db)

	role := seedRole(t, db, models.RoleViewer)
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	created, err := svc.Create(testCtx(), &LoginInput{
		Username: "carlos.rivas",
		Password: "secreto123",
		RoleID:   role.ID,
		TenantID: &tenant.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.TenantID)
	assert.Nil(t, created.OwnerID)

	auth, err := svc.Authenticate(testCtx(), "carlos.rivas", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, auth.ID)

	// Wrong password and unknown user both map to the same error.
	_, err = svc.Authenticate(testCtx(), "carlos.rivas", "otra")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(testCtx(), "nadie", "secreto123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginOwnerTenantExclusive(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoginService(db)

	role := seedRole(t, db, models.RoleViewer)
	owner := seedOwner(t, db, "laura@example.com")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")

	_, err := svc.Create(testCtx(), &LoginInput{
		Username: "doble",
		Password: "secreto123",
		RoleID:   role.ID,
		OwnerID:  &owner.ID,
		TenantID: &tenant.ID,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestLoginUsernameUnique(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoginService(db)
	role := seedRole(t, db, models.RoleViewer)

	_, err := svc.Create(testCtx(), &LoginInput{
		Username: "portal", Password: "secreto123", RoleID: role.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(testCtx(), &LoginInput{
		Username: "portal", Password: "otrosecreto", RoleID: role.ID,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestLoginChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newLoginService(db)
	role := seedRole(t, db, models.RoleViewer)

	created, err := svc.Create(testCtx(), &LoginInput{
		Username: "portal", Password: "secreto123", RoleID: role.ID,
	})
	require.NoError(t, err)

	// Wrong current password.
	err = svc.ChangePassword(testCtx(), created.ID, "equivocada", "nuevosecreto")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Too-short replacement.
	err = svc.ChangePassword(testCtx(), created.ID, "secreto123", "corta")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, svc.ChangePassword(testCtx(), created.ID, "secreto123", "nuevosecreto"))

	_, err = svc.Authenticate(testCtx(), "portal", "nuevosecreto")
	require.NoError(t, err)
}
