package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.TeacherListing, error)
	Create(ctx context.Context, t *models.Teacher) error
	Update(ctx context.Context, t *models.Teacher) (int64, error)
	Delete(ctx context.Context, ssn string) (int64, error)
}

// TeacherService orchestrates teacher operations.
type TeacherService struct {
	repo teacherRepository
	res  resource
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *TeacherService {
	return &TeacherService{repo: repo, res: newResource("teacher", "teachers", validate, cache, logger)}
}

// List returns teachers with their department names.
func (s *TeacherService) List(ctx context.Context) ([]models.TeacherListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create registers a teacher.
func (s *TeacherService) Create(ctx context.Context, t *models.Teacher) error {
	if err := s.res.validate(t); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Update replaces every non-key field of a teacher.
func (s *TeacherService) Update(ctx context.Context, t *models.Teacher) error {
	if err := s.res.validate(t); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, t)
	if err != nil {
		return s.res.updateFailed(err)
	}
	s.res.written(ctx, "update", n)
	return nil
}

// Delete removes a teacher by SSN.
func (s *TeacherService) Delete(ctx context.Context, ssn string) error {
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
