package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listTeachersQuery = `SELECT t.teacher_ssn, t.tname, t.qualifications, t.phone, t.email,
	TO_CHAR(t.hire_date, 'YYYY-MM-DD') AS hire_date, t.department_id, d.dname AS department_name
FROM teacher t
LEFT JOIN department d ON d.department_id = t.department_id`
	insertTeacherQuery = `INSERT INTO teacher (teacher_ssn, tname, qualifications, phone, email, hire_date, department_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	updateTeacherQuery = `UPDATE teacher SET tname = $2, qualifications = $3, phone = $4, email = $5, hire_date = $6, department_id = $7
WHERE teacher_ssn = $1`
	deleteTeacherQuery = `DELETE FROM teacher WHERE teacher_ssn = $1`
)

// TeacherRepository persists teachers.
type TeacherRepository struct {
	store *database.Store
}

// NewTeacherRepository constructs the repository.
func NewTeacherRepository(store *database.Store) *TeacherRepository {
	return &TeacherRepository{store: store}
}

// List returns teachers with their department name.
func (r *TeacherRepository) List(ctx context.Context) ([]models.TeacherListing, error) {
	items, err := selectAll[models.TeacherListing](ctx, r.store, "teacher.list", listTeachersQuery)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return items, nil
}

// Create inserts a teacher.
func (r *TeacherRepository) Create(ctx context.Context, t *models.Teacher) error {
	_, err := execAffected(ctx, r.store, "teacher.create", insertTeacherQuery,
		t.TeacherSSN, t.TName, t.Qualifications, t.Phone, t.Email, t.HireDate, t.DepartmentID)
	if err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Update replaces every non-key column of a teacher.
func (r *TeacherRepository) Update(ctx context.Context, t *models.Teacher) (int64, error) {
	n, err := execAffected(ctx, r.store, "teacher.update", updateTeacherQuery,
		t.TeacherSSN, t.TName, t.Qualifications, t.Phone, t.Email, t.HireDate, t.DepartmentID)
	if err != nil {
		return 0, fmt.Errorf("update teacher: %w", err)
	}
	return n, nil
}

// Delete removes a teacher by SSN.
func (r *TeacherRepository) Delete(ctx context.Context, ssn string) (int64, error) {
	n, err := execAffected(ctx, r.store, "teacher.delete", deleteTeacherQuery, ssn)
	if err != nil {
		return 0, fmt.Errorf("delete teacher: %w", err)
	}
	return n, nil
}
