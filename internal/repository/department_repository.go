package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listDepartmentsQuery  = `SELECT department_id, dname, location FROM department`
	insertDepartmentQuery = `INSERT INTO department (department_id, dname, location) VALUES ($1, $2, $3)`
	updateDepartmentQuery = `UPDATE department SET dname = $2, location = $3 WHERE department_id = $1`
	deleteDepartmentQuery = `DELETE FROM department WHERE department_id = $1`
)

// DepartmentRepository persists departments.
type DepartmentRepository struct {
	store *database.Store
}

// NewDepartmentRepository constructs the repository.
func NewDepartmentRepository(store *database.Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

// List returns every department.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	items, err := selectAll[models.Department](ctx, r.store, "department.list", listDepartmentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return items, nil
}

// Create inserts a department with its caller-supplied key.
func (r *DepartmentRepository) Create(ctx context.Context, d *models.Department) error {
	if _, err := execAffected(ctx, r.store, "department.create", insertDepartmentQuery, d.DepartmentID, d.DName, d.Location); err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

// Update replaces every non-key column. A missing key affects zero rows.
func (r *DepartmentRepository) Update(ctx context.Context, d *models.Department) (int64, error) {
	n, err := execAffected(ctx, r.store, "department.update", updateDepartmentQuery, d.DepartmentID, d.DName, d.Location)
	if err != nil {
		return 0, fmt.Errorf("update department: %w", err)
	}
	return n, nil
}

// Delete removes a department by id.
func (r *DepartmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	n, err := execAffected(ctx, r.store, "department.delete", deleteDepartmentQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete department: %w", err)
	}
	return n, nil
}
