package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/models"
	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

func TestEnrollmentRepositoryCreateDuplicate(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(store)

	enrollment := &models.Enrollment{StudentSSN: "s1", CourseID: 10}
	mock.ExpectExec(regexp.QuoteMeta(insertEnrollmentQuery)).
		WithArgs("s1", 10, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertEnrollmentQuery)).
		WithArgs("s1", 10, nil, nil).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	require.NoError(t, repo.Create(context.Background(), enrollment))
	err := repo.Create(context.Background(), enrollment)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListPendingGrade(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(listEnrollmentsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"student_ssn", "course_id", "enrollment_date", "grade", "student_name", "course_name"}).
			AddRow("s1", 10, "2024-09-01", nil, "Ana", "Databases"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Grade)
	assert.Equal(t, models.GradePending, list[0].GradeLabel())
	assert.Equal(t, "Databases", *list[0].CourseName)
}

func TestEnrollmentRepositoryUpdateAndDelete(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(updateEnrollmentQuery)).
		WithArgs("s1", 10, "2024-09-01", "A").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteEnrollmentQuery)).
		WithArgs("s1", 10).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.Enrollment{StudentSSN: "s1", CourseID: 10, EnrollmentDate: strPtr("2024-09-01"), Grade: strPtr("A")})
	require.NoError(t, err)
	n, err := repo.Delete(context.Background(), models.EnrollmentKey{StudentSSN: "s1", CourseID: 10})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
