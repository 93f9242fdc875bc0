package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listStudentsQuery = `SELECT s.student_ssn, s.sname, TO_CHAR(s.bod, 'YYYY-MM-DD') AS bod, s.gender, s.teacher_ssn,
	t.tname AS teacher_name
FROM student s
LEFT JOIN teacher t ON t.teacher_ssn = s.teacher_ssn`
	insertStudentQuery = `INSERT INTO student (student_ssn, sname, bod, gender, teacher_ssn) VALUES ($1, $2, $3, $4, $5)`
	updateStudentQuery = `UPDATE student SET sname = $2, bod = $3, gender = $4, teacher_ssn = $5 WHERE student_ssn = $1`
	deleteStudentQuery = `DELETE FROM student WHERE student_ssn = $1`
)

// StudentRepository persists students.
type StudentRepository struct {
	store *database.Store
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(store *database.Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// List returns students with their advisor name.
func (r *StudentRepository) List(ctx context.Context) ([]models.StudentListing, error) {
	items, err := selectAll[models.StudentListing](ctx, r.store, "student.list", listStudentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return items, nil
}

// Create inserts a student.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	if _, err := execAffected(ctx, r.store, "student.create", insertStudentQuery, s.StudentSSN, s.SName, s.BOD, s.Gender, s.TeacherSSN); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update replaces every non-key column of a student.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) (int64, error) {
	n, err := execAffected(ctx, r.store, "student.update", updateStudentQuery, s.StudentSSN, s.SName, s.BOD, s.Gender, s.TeacherSSN)
	if err != nil {
		return 0, fmt.Errorf("update student: %w", err)
	}
	return n, nil
}

// Delete removes a student by SSN.
func (r *StudentRepository) Delete(ctx context.Context, ssn string) (int64, error) {
	n, err := execAffected(ctx, r.store, "student.delete", deleteStudentQuery, ssn)
	if err != nil {
		return 0, fmt.Errorf("delete student: %w", err)
	}
	return n, nil
}
