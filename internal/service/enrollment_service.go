package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type enrollmentRepository interface {
	List(ctx context.Context) ([]models.EnrollmentListing, error)
	Create(ctx context.Context, e *models.Enrollment) error
	Update(ctx context.Context, e *models.Enrollment) (int64, error)
	Delete(ctx context.Context, key models.EnrollmentKey) (int64, error)
}

// EnrollmentService orchestrates enrollment operations.
type EnrollmentService struct {
	repo enrollmentRepository
	res  resource
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *EnrollmentService {
	return &EnrollmentService{repo: repo, res: newResource("enrollment", "enrollments", validate, cache, logger)}
}

// List returns enrollments with student and course names.
func (s *EnrollmentService) List(ctx context.Context) ([]models.EnrollmentListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create enrolls a student in a course. An empty grade is stored as NULL.
func (s *EnrollmentService) Create(ctx context.Context, e *models.Enrollment) error {
	e.Grade = blankToNil(e.Grade)
	if err := s.res.validate(e); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Update replaces the enrollment date and grade.
func (s *EnrollmentService) Update(ctx context.Context, e *models.Enrollment) error {
	e.Grade = blankToNil(e.Grade)
	if err := s.res.validate(e); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, e)
	if err != nil {
		return s.res.updateFailed(err)
	}
	s.res.written(ctx, "update", n)
	return nil
}

// Delete removes one enrollment.
func (s *EnrollmentService) Delete(ctx context.Context, key models.EnrollmentKey) error {
	if err := s.res.requireKey(key.StudentSSN); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, key)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}
