package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/schema"
)

func TestStatsRepositoryCount(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStatsRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM student")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background(), "student")
	require.NoError(t, err)
	assert.EqualValues(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryCountRejectsUnknownTable(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStatsRepository(store)

	_, err := repo.Count(context.Background(), "student; DROP TABLE student")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryCountsEveryStatsTable(t *testing.T) {
	repo := NewStatsRepository(nil)
	for _, c := range schema.Counted {
		_, ok := repo.allowed[c.Table]
		assert.True(t, ok, c.Table)
	}
}

func TestStatsRepositoryPaymentTotals(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStatsRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(paymentTotalsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total"}).AddRow(3, []byte("250.75")))

	totals, err := repo.PaymentTotals(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, totals.Count)
	assert.InDelta(t, 250.75, totals.Total, 0.001)
}

func TestStatsRepositoryPaymentTotalsEmpty(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStatsRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(paymentTotalsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total"}).AddRow(0, []byte("0")))

	totals, err := repo.PaymentTotals(context.Background())
	require.NoError(t, err)
	assert.Zero(t, totals.Count)
	assert.Zero(t, totals.Total)
}
