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

func TestStudentEmailRepository(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStudentEmailRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(listEmailsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"email", "student_ssn", "student_name"}).AddRow("ana@mail.com", "s1", "Ana"))
	mock.ExpectExec(regexp.QuoteMeta(deleteEmailQuery)).
		WithArgs("ana@mail.com", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", *list[0].StudentName)

	_, err = repo.Delete(context.Background(), list[0].StudentEmail)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentPhoneRepository(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStudentPhoneRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(insertPhoneQuery)).
		WithArgs("555-0100", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(listPhonesQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"phone_num", "student_ssn", "student_name"}))

	require.NoError(t, repo.Create(context.Background(), &models.StudentPhone{PhoneNum: "555-0100", StudentSSN: "s1"}))
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}
