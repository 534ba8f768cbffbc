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

func newPaymentService(db *gorm.DB) *PaymentService {
	return NewPaymentService(
		repositories.NewPaymentRepository(db),
		repositories.NewContractRepository(db),
		repositories.NewTenantRepository(db),
		repositories.NewHistoryRepository(db),
	)
}

// seedPaymentFixtures creates owner, room, tenant and an active contract.
func seedPaymentFixtures(t *testing.T, db *gorm.DB) (*models.Contract, *models.Tenant) {
	t.Helper()

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")
	tenant := seedTenant(t, db, "carlos@example.com", "INE001")
	contract := seedActiveContract(t, db, room.ID, tenant.ID)
	return contract, tenant
}

func TestPaymentCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentService(db)
	contract, tenant := seedPaymentFixtures(t, db)

	payment, err := svc.Create(testCtx(), &PaymentInput{
		ContractID:  contract.ID,
		TenantID:    tenant.ID,
		Amount:      3500,
		Method:      "Transferencia",
		Status:      "completado",
		PaymentDate: futureDate(0),
		Reference:   "SPEI-001",
	})
	require.NoError(t, err)

	// Method is normalized to lower case.
	assert.Equal(t, models.MethodTransfer, payment.Method)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
}

func TestPaymentCreateDefaultsToPending(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentService(db)
	contract, tenant := seedPaymentFixtures(t, db)

	payment, err := svc.Create(testCtx(), &PaymentInput{
		ContractID:  contract.ID,
		TenantID:    tenant.ID,
		Amount:      3500,
		Method:      "efectivo",
		PaymentDate: futureDate(0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, payment.Status)
}

func TestPaymentCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentService(db)
	contract, tenant := seedPaymentFixtures(t, db)

	cases := []struct {
		name  string
		input PaymentInput
	}{
		{"negative amount", PaymentInput{
			ContractID: contract.ID, TenantID: tenant.ID,
			Amount: -1, Method: "efectivo", PaymentDate: futureDate(0),
		}},
		{"unknown method", PaymentInput{
			ContractID: contract.ID, TenantID: tenant.ID,
			Amount: 100, Method: "cheque", PaymentDate: futureDate(0),
		}},
		{"unknown status", PaymentInput{
			ContractID: contract.ID, TenantID: tenant.ID,
			Amount: 100, Method: "efectivo", Status: "perdido", PaymentDate: futureDate(0),
		}},
		{"future date", PaymentInput{
			ContractID: contract.ID, TenantID: tenant.ID,
			Amount: 100, Method: "efectivo", PaymentDate: futureDate(3),
		}},
		{"missing date", PaymentInput{
			ContractID: contract.ID, TenantID: tenant.ID,
			Amount: 100, Method: "efectivo",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(testCtx(), &tc.input)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestPaymentCreateMissingContract(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentService(db)
	_, tenant := seedPaymentFixtures(t, db)

	_, err := svc.Create(testCtx(), &PaymentInput{
		ContractID:  999,
		TenantID:    tenant.ID,
		Amount:      100,
		Method:      "efectivo",
		PaymentDate: futureDate(0),
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestPaymentSums(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentService(db)
	contract, tenant := seedPaymentFixtures(t, db)

	for _, amount := range []float64{1000, 2500, 500} {
		_, err := svc.Create(testCtx(), &PaymentInput{
			ContractID:  contract.ID,
			TenantID:    tenant.ID,
			Amount:      amount,
			Method:      "efectivo",
			PaymentDate: futureDate(0),
		})
		require.NoError(t, err)
	}

	total, err := svc.SumByContract(testCtx(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, total)

	total, err = svc.SumByTenant(testCtx(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, total)

	// A contract with no payments sums to zero, not an error.
	total, err = svc.SumByContract(testCtx(), 999)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestPaymentSumByDateRange(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentService(db)
	contract, tenant := seedPaymentFixtures(t, db)

	_, err := svc.Create(testCtx(), &PaymentInput{
		ContractID:  contract.ID,
		TenantID:    tenant.ID,
		Amount:      1200,
		Method:      "deposito",
		PaymentDate: futureDate(0),
	})
	require.NoError(t, err)

	total, err := svc.SumByDateRange(testCtx(), futureDate(-1), futureDate(1))
	require.NoError(t, err)
	assert.Equal(t, 1200.0, total)

	// Reversed range is rejected.
	_, err = svc.SumByDateRange(testCtx(), futureDate(1), futureDate(-1))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPaymentChangeStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentService(db)
	contract, tenant := seedPaymentFixtures(t, db)

	payment, err := svc.Create(testCtx(), &PaymentInput{
		ContractID:  contract.ID,
		TenantID:    tenant.ID,
		Amount:      3500,
		Method:      "tarjeta",
		PaymentDate: futureDate(0),
	})
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(testCtx(), payment.ID, "COMPLETADO")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, updated.Status)

	_, err = svc.ChangeStatus(testCtx(), payment.ID, "extraviado")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
