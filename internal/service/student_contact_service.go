package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type studentEmailRepository interface {
	List(ctx context.Context) ([]models.StudentEmailListing, error)
	Create(ctx context.Context, e *models.StudentEmail) error
	Delete(ctx context.Context, e models.StudentEmail) (int64, error)
}

type studentPhoneRepository interface {
	List(ctx context.Context) ([]models.StudentPhoneListing, error)
	Create(ctx context.Context, p *models.StudentPhone) error
	Delete(ctx context.Context, p models.StudentPhone) (int64, error)
}

// StudentEmailService manages student email addresses.
type StudentEmailService struct {
	repo studentEmailRepository
	res  resource
}

// NewStudentEmailService constructs a StudentEmailService.
func NewStudentEmailService(repo studentEmailRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *StudentEmailService {
	return &StudentEmailService{repo: repo, res: newResource("email", "emails", validate, cache, logger)}
}

// List returns every student email.
func (s *StudentEmailService) List(ctx context.Context) ([]models.StudentEmailListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create adds an email to a student.
func (s *StudentEmailService) Create(ctx context.Context, e *models.StudentEmail) error {
	if err := s.res.validate(e); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Delete removes an email from a student.
func (s *StudentEmailService) Delete(ctx context.Context, e models.StudentEmail) error {
	if err := s.res.requireKey(e.Email, e.StudentSSN); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, e)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}

// StudentPhoneService manages student phone numbers.
type StudentPhoneService struct {
	repo studentPhoneRepository
	res  resource
}

// NewStudentPhoneService constructs a StudentPhoneService.
func NewStudentPhoneService(repo studentPhoneRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *StudentPhoneService {
	return &StudentPhoneService{repo: repo, res: newResource("phone", "phones", validate, cache, logger)}
}

// List returns every student phone number.
func (s *StudentPhoneService) List(ctx context.Context) ([]models.StudentPhoneListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create adds a phone number to a student.
func (s *StudentPhoneService) Create(ctx context.Context, p *models.StudentPhone) error {
	if err := s.res.validate(p); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Delete removes a phone number from a student.
func (s *StudentPhoneService) Delete(ctx context.Context, p models.StudentPhone) error {
	if err := s.res.requireKey(p.PhoneNum, p.StudentSSN); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, p)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}
