package repository

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/pkg/database"
)

func newStoreMock(t *testing.T) (*database.Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	store := database.NewStore(sqlx.NewDb(db, "sqlmock"))
	return store, mock, func() { db.Close() }
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
