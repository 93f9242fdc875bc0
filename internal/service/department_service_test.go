package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/models"
	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

type departmentRepoStub struct {
	items      []models.Department
	created    []models.Department
	updated    int64
	deletedIDs []int
	err        error
}

func (s *departmentRepoStub) List(context.Context) ([]models.Department, error) {
	return s.items, s.err
}

func (s *departmentRepoStub) Create(_ context.Context, d *models.Department) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, *d)
	return nil
}

func (s *departmentRepoStub) Update(context.Context, *models.Department) (int64, error) {
	return s.updated, s.err
}

func (s *departmentRepoStub) Delete(_ context.Context, id int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return 1, nil
}

func TestDepartmentServiceCreateInvalidatesStats(t *testing.T) {
	repo := &departmentRepoStub{}
	cacheRepo := newFakeCacheRepo()
	svc := NewDepartmentService(repo, nil, newTestCache(cacheRepo), nil)

	err := svc.Create(context.Background(), &models.Department{DepartmentID: 1, DName: strPtr("CS")})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"stats:*"}, cacheRepo.invalidated)
}

func TestDepartmentServiceCreateValidation(t *testing.T) {
	repo := &departmentRepoStub{}
	svc := NewDepartmentService(repo, nil, nil, nil)

	err := svc.Create(context.Background(), &models.Department{DepartmentID: 1, DName: strPtr(strings.Repeat("x", 101))})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Invalid department payload", appErr.Message)
	assert.Empty(t, repo.created)
}

func TestDepartmentServiceCreateAcceptsZeroKey(t *testing.T) {
	repo := &departmentRepoStub{}
	svc := NewDepartmentService(repo, nil, nil, nil)

	require.NoError(t, svc.Create(context.Background(), &models.Department{DepartmentID: 0, DName: strPtr("Admissions")}))
	require.Len(t, repo.created, 1)
	assert.Zero(t, repo.created[0].DepartmentID)
}

func TestDepartmentServiceCreateFailureIsGeneric(t *testing.T) {
	storeErr := appErrors.FromKind(appErrors.KindConflict, errors.New("duplicate key"))
	cacheRepo := newFakeCacheRepo()
	svc := NewDepartmentService(&departmentRepoStub{err: storeErr}, nil, newTestCache(cacheRepo), nil)

	err := svc.Create(context.Background(), &models.Department{DepartmentID: 1})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to add department", appErr.Message)
	assert.Equal(t, appErrors.KindConflict, appErrors.KindOf(err))
	assert.Empty(t, cacheRepo.invalidated)
}

func TestDepartmentServiceUpdateMissingKeySucceeds(t *testing.T) {
	svc := NewDepartmentService(&departmentRepoStub{updated: 0}, nil, nil, nil)
	assert.NoError(t, svc.Update(context.Background(), &models.Department{DepartmentID: 404}))
}

func TestDepartmentServiceListFailure(t *testing.T) {
	svc := NewDepartmentService(&departmentRepoStub{err: errors.New("boom")}, nil, nil, nil)
	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch departments", appErrors.FromError(err).Message)
}

func TestDepartmentServiceDeleteFailure(t *testing.T) {
	storeErr := appErrors.FromKind(appErrors.KindConstraintViolation, errors.New("fk"))
	svc := NewDepartmentService(&departmentRepoStub{err: storeErr}, nil, nil, nil)

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "Failed to delete department", appErrors.FromError(err).Message)
}
