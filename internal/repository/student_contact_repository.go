package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listEmailsQuery = `SELECT e.email, e.student_ssn, s.sname AS student_name
FROM emails e
LEFT JOIN student s ON s.student_ssn = e.student_ssn`
	insertEmailQuery = `INSERT INTO emails (email, student_ssn) VALUES ($1, $2)`
	deleteEmailQuery = `DELETE FROM emails WHERE email = $1 AND student_ssn = $2`

	listPhonesQuery = `SELECT p.phone_num, p.student_ssn, s.sname AS student_name
FROM phones p
LEFT JOIN student s ON s.student_ssn = p.student_ssn`
	insertPhoneQuery = `INSERT INTO phones (phone_num, student_ssn) VALUES ($1, $2)`
	deletePhoneQuery = `DELETE FROM phones WHERE phone_num = $1 AND student_ssn = $2`
)

// StudentEmailRepository persists the emails junction.
type StudentEmailRepository struct {
	store *database.Store
}

// NewStudentEmailRepository constructs the repository.
func NewStudentEmailRepository(store *database.Store) *StudentEmailRepository {
	return &StudentEmailRepository{store: store}
}

// List returns every email with the owning student's name.
func (r *StudentEmailRepository) List(ctx context.Context) ([]models.StudentEmailListing, error) {
	items, err := selectAll[models.StudentEmailListing](ctx, r.store, "email.list", listEmailsQuery)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	return items, nil
}

// Create adds an email to a student.
func (r *StudentEmailRepository) Create(ctx context.Context, e *models.StudentEmail) error {
	if _, err := execAffected(ctx, r.store, "email.create", insertEmailQuery, e.Email, e.StudentSSN); err != nil {
		return fmt.Errorf("create email: %w", err)
	}
	return nil
}

// Delete removes an email from a student.
func (r *StudentEmailRepository) Delete(ctx context.Context, e models.StudentEmail) (int64, error) {
	n, err := execAffected(ctx, r.store, "email.delete", deleteEmailQuery, e.Email, e.StudentSSN)
	if err != nil {
		return 0, fmt.Errorf("delete email: %w", err)
	}
	return n, nil
}

// StudentPhoneRepository persists the phones junction.
type StudentPhoneRepository struct {
	store *database.Store
}

// NewStudentPhoneRepository constructs the repository.
func NewStudentPhoneRepository(store *database.Store) *StudentPhoneRepository {
	return &StudentPhoneRepository{store: store}
}

// List returns every phone number with the owning student's name.
func (r *StudentPhoneRepository) List(ctx context.Context) ([]models.StudentPhoneListing, error) {
	items, err := selectAll[models.StudentPhoneListing](ctx, r.store, "phone.list", listPhonesQuery)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	return items, nil
}

// Create adds a phone number to a student.
func (r *StudentPhoneRepository) Create(ctx context.Context, p *models.StudentPhone) error {
	if _, err := execAffected(ctx, r.store, "phone.create", insertPhoneQuery, p.PhoneNum, p.StudentSSN); err != nil {
		return fmt.Errorf("create phone: %w", err)
	}
	return nil
}

// Delete removes a phone number from a student.
func (r *StudentPhoneRepository) Delete(ctx context.Context, p models.StudentPhone) (int64, error) {
	n, err := execAffected(ctx, r.store, "phone.delete", deletePhoneQuery, p.PhoneNum, p.StudentSSN)
	if err != nil {
		return 0, fmt.Errorf("delete phone: %w", err)
	}
	return n, nil
}
