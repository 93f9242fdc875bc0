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

func TestSchemaRepositoryApply(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewSchemaRepository(store)

	table := schema.Provisioned()[0]
	mock.ExpectExec(regexp.QuoteMeta(table.DDL)).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.Apply(context.Background(), table))

	mock.ExpectExec(regexp.QuoteMeta(table.DDL)).WillReturnError(assert.AnError)
	err := repo.Apply(context.Background(), table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create table Department")
	assert.NoError(t, mock.ExpectationsWereMet())
}
