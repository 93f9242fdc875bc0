package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/models"
)

func TestPaymentRepositoryListAndCreate(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewPaymentRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(listPaymentsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "payment_date", "amount", "student_ssn", "student_name"}).
			AddRow(1, "2024-01-15", []byte("1500.50"), "s1", "Ana"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 1500.50, *list[0].Amount, 0.001)
	assert.Equal(t, "Ana", *list[0].StudentName)

	amount := 99.99
	mock.ExpectExec(regexp.QuoteMeta(insertPaymentQuery)).
		WithArgs(2, "2024-02-01", amount, "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	err = repo.Create(context.Background(), &models.Payment{PaymentID: 2, Date: strPtr("2024-02-01"), Amount: &amount, StudentSSN: strPtr("s1")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
