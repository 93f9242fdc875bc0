package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

type recordingObserver struct {
	mu     sync.Mutex
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.labels = append(o.labels, label)
}

func newStoreMock(t *testing.T, opts ...StoreOption) (*Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewStore(sqlx.NewDb(db, "sqlmock"), opts...), mock, func() { db.Close() }
}

func TestStoreWithConnClassifiesUniqueViolation(t *testing.T) {
	observer := &recordingObserver{}
	store, mock, cleanup := newStoreMock(t, WithObserver(observer), WithTimeout(time.Second))
	defer cleanup()

	mock.ExpectExec("INSERT INTO enrolled").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := store.WithConn(context.Background(), "enrollments.create", func(ctx context.Context, conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, "INSERT INTO enrolled (student_ssn) VALUES ($1)", "S1")
		return err
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.KindConflict, appErrors.KindOf(err))
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, []string{"enrollments.create"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreWithConnSuccess(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	var count int
	err := store.WithConn(context.Background(), "count", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM department")
	})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreWithoutPool(t *testing.T) {
	var store *Store
	err := store.WithConn(context.Background(), "x", func(context.Context, *sqlx.Conn) error { return nil })
	assert.Equal(t, appErrors.KindConnectionFailure, appErrors.KindOf(err))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind appErrors.Kind
	}{
		{"no rows", sql.ErrNoRows, appErrors.KindNotFound},
		{"unique", &pq.Error{Code: "23505"}, appErrors.KindConflict},
		{"foreign key", &pq.Error{Code: "23503"}, appErrors.KindConstraintViolation},
		{"not null", &pq.Error{Code: "23502"}, appErrors.KindConstraintViolation},
		{"connection", &pq.Error{Code: "08006"}, appErrors.KindConnectionFailure},
		{"statement timeout", &pq.Error{Code: "57014"}, appErrors.KindConnectionFailure},
		{"deadline", context.DeadlineExceeded, appErrors.KindConnectionFailure},
		{"syntax", &pq.Error{Code: "42601"}, appErrors.KindUnknown},
		{"other", errors.New("boom"), appErrors.KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, appErrors.KindOf(Classify(tc.err)))
		})
	}
	assert.NoError(t, Classify(nil))
}
