package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	Create(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, d *models.Department) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// DepartmentService orchestrates department operations.
type DepartmentService struct {
	repo departmentRepository
	res  resource
}

// NewDepartmentService constructs a DepartmentService.
func NewDepartmentService(repo departmentRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, res: newResource("department", "departments", validate, cache, logger)}
}

// List returns every department.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create stores a new department.
func (s *DepartmentService) Create(ctx context.Context, d *models.Department) error {
	if err := s.res.validate(d); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Update replaces a department. Unknown ids are not an error.
func (s *DepartmentService) Update(ctx context.Context, d *models.Department) error {
	if err := s.res.validate(d); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, d)
	if err != nil {
		return s.res.updateFailed(err)
	}
	s.res.written(ctx, "update", n)
	return nil
}

// Delete removes a department by id.
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}
