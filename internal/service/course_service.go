package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.CourseListing, error)
	Create(ctx context.Context, c *models.Course) error
	Update(ctx context.Context, c *models.Course) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// CourseService orchestrates course operations.
type CourseService struct {
	repo courseRepository
	res  resource
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *CourseService {
	return &CourseService{repo: repo, res: newResource("course", "courses", validate, cache, logger)}
}

// List returns courses with department and teacher names.
func (s *CourseService) List(ctx context.Context) ([]models.CourseListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create stores a course.
func (s *CourseService) Create(ctx context.Context, c *models.Course) error {
	if err := s.res.validate(c); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Update replaces every non-key field of a course.
func (s *CourseService) Update(ctx context.Context, c *models.Course) error {
	if err := s.res.validate(c); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, c)
	if err != nil {
		return s.res.updateFailed(err)
	}
	s.res.written(ctx, "update", n)
	return nil
}

// Delete removes a course by id.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}
