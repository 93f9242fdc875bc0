package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/models"
	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

type studentRepoStub struct {
	created []models.Student
}

func (s *studentRepoStub) List(context.Context) ([]models.StudentListing, error) {
	return []models.StudentListing{}, nil
}

func (s *studentRepoStub) Create(_ context.Context, st *models.Student) error {
	s.created = append(s.created, *st)
	return nil
}

func (s *studentRepoStub) Update(context.Context, *models.Student) (int64, error) { return 1, nil }

func (s *studentRepoStub) Delete(context.Context, string) (int64, error) { return 1, nil }

func TestStudentServiceRejectsUnknownGender(t *testing.T) {
	repo := &studentRepoStub{}
	svc := NewStudentService(repo, nil, nil, nil)

	err := svc.Create(context.Background(), &models.Student{StudentSSN: "s1", Gender: strPtr("X")})
	require.Error(t, err)
	assert.Equal(t, "Invalid student payload", appErrors.FromError(err).Message)
	assert.Empty(t, repo.created)
}

func TestStudentServiceCreate(t *testing.T) {
	repo := &studentRepoStub{}
	svc := NewStudentService(repo, nil, nil, nil)

	require.NoError(t, svc.Create(context.Background(), &models.Student{StudentSSN: "s1", SName: strPtr("Ana"), Gender: strPtr("F")}))
	assert.Equal(t, "F", *repo.created[0].Gender)
}

func TestStudentServiceGenderValues(t *testing.T) {
	cases := []struct {
		name   string
		gender *string
		want   *string
	}{
		{name: "male", gender: strPtr("M"), want: strPtr("M")},
		{name: "female", gender: strPtr("F"), want: strPtr("F")},
		{name: "blank", gender: strPtr("  "), want: nil},
		{name: "unset", gender: nil, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &studentRepoStub{}
			svc := NewStudentService(repo, nil, nil, nil)

			require.NoError(t, svc.Create(context.Background(), &models.Student{StudentSSN: "s1", Gender: tc.gender}))
			require.Len(t, repo.created, 1)
			assert.Equal(t, tc.want, repo.created[0].Gender)
		})
	}
}

func TestTeacherServiceDeleteRequiresSSN(t *testing.T) {
	svc := NewTeacherService(nil, nil, nil, nil)
	err := svc.Delete(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, "Invalid teacher identifier", appErrors.FromError(err).Message)
}
