package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.StudentListing, error)
	Create(ctx context.Context, s *models.Student) error
	Update(ctx context.Context, s *models.Student) (int64, error)
	Delete(ctx context.Context, ssn string) (int64, error)
}

// StudentService orchestrates student operations.
type StudentService struct {
	repo studentRepository
	res  resource
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *StudentService {
	return &StudentService{repo: repo, res: newResource("student", "students", validate, cache, logger)}
}

// List returns students with their advisor names.
func (s *StudentService) List(ctx context.Context) ([]models.StudentListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create registers a student.
func (s *StudentService) Create(ctx context.Context, st *models.Student) error {
	st.Gender = blankToNil(st.Gender)
	if err := s.res.validate(st); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Update replaces every non-key field of a student.
func (s *StudentService) Update(ctx context.Context, st *models.Student) error {
	st.Gender = blankToNil(st.Gender)
	if err := s.res.validate(st); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, st)
	if err != nil {
		return s.res.updateFailed(err)
	}
	s.res.written(ctx, "update", n)
	return nil
}

// Delete removes a student by SSN.
func (s *StudentService) Delete(ctx context.Context, ssn string) error {
	if err := s.res.requireKey(ssn); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, ssn)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}
