package services

import (
	"testing"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewRoleRepository(db),
		testJWTSecret,
		60,
	)
}

func TestUserRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	role := seedRole(t, db, models.RoleAdmin)

	user, err := svc.Register(testCtx(), &UserInput{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "secreto123",
		RoleID:   role.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.RoleTitle)
	assert.True(t, user.IsActive)

	auth, err := svc.Login(testCtx(), "admin", "secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, auth.AccessToken)

	// The issued token carries the role claim.
	claims, err := jwt.ValidateAccessToken(auth.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestUserLoginFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	role := seedRole(t, db, models.RoleStaff)

	registered, err := svc.Register(testCtx(), &UserInput{
		Username: "staff",
		Email:    "staff@example.com",
		Password: "secreto123",
		RoleID:   role.ID,
	})
	require.NoError(t, err)

	_, err = svc.Login(testCtx(), "staff", "incorrecta")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(testCtx(), "fantasma", "secreto123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Deactivated accounts cannot log in, with the same vague error.
	_, err = svc.SetActive(testCtx(), registered.ID, false)
	require.NoError(t, err)

	_, err = svc.Login(testCtx(), "staff", "secreto123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	role := seedRole(t, db, models.RoleStaff)

	_, err := svc.Register(testCtx(), &UserInput{
		Username: "staff", Email: "staff@example.com", Password: "corta", RoleID: role.ID,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Register(testCtx(), &UserInput{
		Username: "staff", Email: "staff@example.com", Password: "secreto123", RoleID: 99,
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUserUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	role := seedRole(t, db, models.RoleStaff)

	_, err := svc.Register(testCtx(), &UserInput{
		Username: "staff", Email: "staff@example.com", Password: "secreto123", RoleID: role.ID,
	})
	require.NoError(t, err)

	_, err = svc.Register(testCtx(), &UserInput{
		Username: "staff", Email: "otro@example.com", Password: "secreto123", RoleID: role.ID,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Register(testCtx(), &UserInput{
		Username: "otro", Email: "staff@example.com", Password: "secreto123", RoleID: role.ID,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestUserChangeRole(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	staff := seedRole(t, db, models.RoleStaff)
	admin := seedRole(t, db, models.RoleAdmin)

	user, err := svc.Register(testCtx(), &UserInput{
		Username: "staff", Email: "staff@example.com", Password: "secreto123", RoleID: staff.ID,
	})
	require.NoError(t, err)

	promoted, err := svc.ChangeRole(testCtx(), user.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.RoleTitle)

	_, err = svc.ChangeRole(testCtx(), user.ID, 99)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
