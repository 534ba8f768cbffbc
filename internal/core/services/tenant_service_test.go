package services

import (
	"testing"

	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantCreateAndRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(repositories.NewTenantRepository(db))

	created, err := svc.Create(testCtx(), &TenantInput{
		FirstName: "  Carlos ",
		LastName:  "Rivas",
		Email:     "carlos@example.com",
		INE:       "INE001",
		Phone:     "5512345678",
	})
	require.NoError(t, err)

	// Input whitespace is trimmed before persisting.
	assert.Equal(t, "Carlos", created.FirstName)

	fetched, err := svc.GetByID(testCtx(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.Email, fetched.Email)
	assert.Equal(t, "Carlos Rivas", fetched.FullName())
}

func TestTenantUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(repositories.NewTenantRepository(db))

	_, err := svc.Create(testCtx(), &TenantInput{
		FirstName: "Carlos", LastName: "Rivas",
		Email: "carlos@example.com", INE: "INE001",
	})
	require.NoError(t, err)

	// Duplicate email.
	_, err = svc.Create(testCtx(), &TenantInput{
		FirstName: "Otro", LastName: "Rivas",
		Email: "carlos@example.com", INE: "INE002",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Duplicate INE.
	_, err = svc.Create(testCtx(), &TenantInput{
		FirstName: "Otro", LastName: "Rivas",
		Email: "otro@example.com", INE: "INE001",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// A duplicate that only differs by surrounding whitespace is caught by
	// the service, not by the unique index.
	_, err = svc.Create(testCtx(), &TenantInput{
		FirstName: "Otro", LastName: "Rivas",
		Email: " carlos@example.com ", INE: "INE003",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Create(testCtx(), &TenantInput{
		FirstName: "Otro", LastName: "Rivas",
		Email: "otro2@example.com", INE: " INE001 ",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestTenantUpdateKeepsOwnEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(repositories.NewTenantRepository(db))

	created, err := svc.Create(testCtx(), &TenantInput{
		FirstName: "Carlos", LastName: "Rivas",
		Email: "carlos@example.com", INE: "INE001",
	})
	require.NoError(t, err)

	// Re-submitting the same email and INE on update must not collide with
	// the record itself.
	updated, err := svc.Update(testCtx(), created.ID, &TenantInput{
		FirstName: "Carlos", LastName: "Rivas Gomez",
		Email: "carlos@example.com", INE: "INE001",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rivas Gomez", updated.LastName)
}

func TestTenantUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(repositories.NewTenantRepository(db))

	_, err := svc.Update(testCtx(), 99, &TenantInput{
		FirstName: "Carlos", LastName: "Rivas",
		Email: "carlos@example.com", INE: "INE001",
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestTenantValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(repositories.NewTenantRepository(db))

	cases := []struct {
		name  string
		input TenantInput
	}{
		{"missing first name", TenantInput{LastName: "Rivas", Email: "a@b.com", INE: "INE001"}},
		{"missing email", TenantInput{FirstName: "Carlos", LastName: "Rivas", INE: "INE001"}},
		{"bad email", TenantInput{FirstName: "Carlos", LastName: "Rivas", Email: "no-arroba", INE: "INE001"}},
		{"missing ine", TenantInput{FirstName: "Carlos", LastName: "Rivas", Email: "a@b.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(testCtx(), &tc.input)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestTenantSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(repositories.NewTenantRepository(db))

	seedTenant(t, db, "carlos@example.com", "INE001")
	seedTenant(t, db, "maria@example.com", "INE002")

	matches, err := svc.Search(testCtx(), "MARIA")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "maria@example.com", matches[0].Email)

	// Empty query returns everyone.
	all, err := svc.Search(testCtx(), "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTenantListPaged(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(repositories.NewTenantRepository(db))

	for i := 0; i < 25; i++ {
		seedTenant(t, db,
			"tenant"+string(rune('a'+i))+"@example.com",
			"INE"+string(rune('a'+i)))
	}

	// Page 1 carries the first ten records in insertion order.
	first, meta, err := svc.ListPaged(testCtx(), 1, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, "tenanta@example.com", first[0].Email)
	assert.Equal(t, "tenantj@example.com", first[9].Email)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	page, meta, err := svc.ListPaged(testCtx(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	// A page past the end is empty, not an error.
	page, _, err = svc.ListPaged(testCtx(), 9, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}
