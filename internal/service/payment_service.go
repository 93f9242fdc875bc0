package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type paymentRepository interface {
	List(ctx context.Context) ([]models.PaymentListing, error)
	Create(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id int) (int64, error)
}

// PaymentService records and lists payments.
type PaymentService struct {
	repo paymentRepository
	res  resource
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(repo paymentRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *PaymentService {
	return &PaymentService{repo: repo, res: newResource("payment", "payments", validate, cache, logger)}
}

// List returns payments with student names.
func (s *PaymentService) List(ctx context.Context) ([]models.PaymentListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create records a payment.
func (s *PaymentService) Create(ctx context.Context, p *models.Payment) error {
	if err := s.res.validate(p); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Delete removes a payment by id.
func (s *PaymentService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}
