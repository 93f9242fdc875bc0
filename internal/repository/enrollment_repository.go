package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listEnrollmentsQuery = `SELECT e.student_ssn, e.course_id, TO_CHAR(e.enrollment_date, 'YYYY-MM-DD') AS enrollment_date, e.grade,
	s.sname AS student_name, c.cname AS course_name
FROM enrolled e
LEFT JOIN student s ON s.student_ssn = e.student_ssn
LEFT JOIN course c ON c.course_id = e.course_id`
	insertEnrollmentQuery = `INSERT INTO enrolled (student_ssn, course_id, enrollment_date, grade) VALUES ($1, $2, $3, $4)`
	updateEnrollmentQuery = `UPDATE enrolled SET enrollment_date = $3, grade = $4 WHERE student_ssn = $1 AND course_id = $2`
	deleteEnrollmentQuery = `DELETE FROM enrolled WHERE student_ssn = $1 AND course_id = $2`
)

// EnrollmentRepository persists rows of the enrolled relation.
type EnrollmentRepository struct {
	store *database.Store
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(store *database.Store) *EnrollmentRepository {
	return &EnrollmentRepository{store: store}
}

// List returns enrollments with student and course names.
func (r *EnrollmentRepository) List(ctx context.Context) ([]models.EnrollmentListing, error) {
	items, err := selectAll[models.EnrollmentListing](ctx, r.store, "enrollment.list", listEnrollmentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return items, nil
}

// Create inserts an enrollment. A duplicate pair fails with a conflict.
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	if _, err := execAffected(ctx, r.store, "enrollment.create", insertEnrollmentQuery, e.StudentSSN, e.CourseID, e.EnrollmentDate, e.Grade); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// Update replaces enrollment date and grade.
func (r *EnrollmentRepository) Update(ctx context.Context, e *models.Enrollment) (int64, error) {
	n, err := execAffected(ctx, r.store, "enrollment.update", updateEnrollmentQuery, e.StudentSSN, e.CourseID, e.EnrollmentDate, e.Grade)
	if err != nil {
		return 0, fmt.Errorf("update enrollment: %w", err)
	}
	return n, nil
}

// Delete removes one enrollment.
func (r *EnrollmentRepository) Delete(ctx context.Context, key models.EnrollmentKey) (int64, error) {
	n, err := execAffected(ctx, r.store, "enrollment.delete", deleteEnrollmentQuery, key.StudentSSN, key.CourseID)
	if err != nil {
		return 0, fmt.Errorf("delete enrollment: %w", err)
	}
	return n, nil
}
