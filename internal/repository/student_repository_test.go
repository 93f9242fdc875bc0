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

func TestStudentRepositoryList(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStudentRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(listStudentsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"student_ssn", "sname", "bod", "gender", "teacher_ssn", "teacher_name"}).
			AddRow("s1", "Ana", "2003-04-05", "F", "111", "Dr. X"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dr. X", *list[0].TeacherName)
	assert.Equal(t, "F", *list[0].Gender)
}

func TestStudentRepositoryCreate(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewStudentRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(insertStudentQuery)).
		WithArgs("s1", "Ana", "2003-04-05", "F", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Student{
		StudentSSN: "s1",
		SName:      strPtr("Ana"),
		BOD:        strPtr("2003-04-05"),
		Gender:     strPtr("F"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
