package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listCoursesQuery = `SELECT c.course_id, c.cname, c.credit_hours, c.department_id, c.teacher_ssn,
	d.dname AS department_name, t.tname AS teacher_name
FROM course c
LEFT JOIN department d ON d.department_id = c.department_id
LEFT JOIN teacher t ON t.teacher_ssn = c.teacher_ssn`
	insertCourseQuery = `INSERT INTO course (course_id, cname, credit_hours, department_id, teacher_ssn) VALUES ($1, $2, $3, $4, $5)`
	updateCourseQuery = `UPDATE course SET cname = $2, credit_hours = $3, department_id = $4, teacher_ssn = $5 WHERE course_id = $1`
	deleteCourseQuery = `DELETE FROM course WHERE course_id = $1`
)

// CourseRepository persists courses.
type CourseRepository struct {
	store *database.Store
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(store *database.Store) *CourseRepository {
	return &CourseRepository{store: store}
}

// List returns courses with department and teacher names.
func (r *CourseRepository) List(ctx context.Context) ([]models.CourseListing, error) {
	items, err := selectAll[models.CourseListing](ctx, r.store, "course.list", listCoursesQuery)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return items, nil
}

// Create inserts a course.
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	if _, err := execAffected(ctx, r.store, "course.create", insertCourseQuery, c.CourseID, c.CName, c.CreditHours, c.DepartmentID, c.TeacherSSN); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update replaces every non-key column of a course.
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) (int64, error) {
	n, err := execAffected(ctx, r.store, "course.update", updateCourseQuery, c.CourseID, c.CName, c.CreditHours, c.DepartmentID, c.TeacherSSN)
	if err != nil {
		return 0, fmt.Errorf("update course: %w", err)
	}
	return n, nil
}

// Delete removes a course by id.
func (r *CourseRepository) Delete(ctx context.Context, id int) (int64, error) {
	n, err := execAffected(ctx, r.store, "course.delete", deleteCourseQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete course: %w", err)
	}
	return n, nil
}
