package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listPaymentsQuery = `SELECT p.payment_id, TO_CHAR(p.payment_date, 'YYYY-MM-DD') AS payment_date, p.amount, p.student_ssn,
	s.sname AS student_name
FROM payment p
LEFT JOIN student s ON s.student_ssn = p.student_ssn`
	insertPaymentQuery = `INSERT INTO payment (payment_id, payment_date, amount, student_ssn) VALUES ($1, $2, $3, $4)`
	deletePaymentQuery = `DELETE FROM payment WHERE payment_id = $1`
)

// PaymentRepository persists payments. Payments are immutable once recorded.
type PaymentRepository struct {
	store *database.Store
}

// NewPaymentRepository constructs the repository.
func NewPaymentRepository(store *database.Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

// List returns payments with the paying student's name.
func (r *PaymentRepository) List(ctx context.Context) ([]models.PaymentListing, error) {
	items, err := selectAll[models.PaymentListing](ctx, r.store, "payment.list", listPaymentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return items, nil
}

// Create records a payment.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	if _, err := execAffected(ctx, r.store, "payment.create", insertPaymentQuery, p.PaymentID, p.Date, p.Amount, p.StudentSSN); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// Delete removes a payment by id.
func (r *PaymentRepository) Delete(ctx context.Context, id int) (int64, error) {
	n, err := execAffected(ctx, r.store, "payment.delete", deletePaymentQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete payment: %w", err)
	}
	return n, nil
}
