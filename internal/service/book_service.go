package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
)

type bookRepository interface {
	List(ctx context.Context) ([]models.BookListing, error)
	Create(ctx context.Context, b *models.Book) error
	Delete(ctx context.Context, id int) (int64, error)
}

type authorRepository interface {
	List(ctx context.Context) ([]models.AuthorListing, error)
	Create(ctx context.Context, a *models.Author) error
	Delete(ctx context.Context, a models.Author) (int64, error)
}

// BookService manages course textbooks.
type BookService struct {
	repo bookRepository
	res  resource
}

// NewBookService constructs a BookService.
func NewBookService(repo bookRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *BookService {
	return &BookService{repo: repo, res: newResource("book", "books", validate, cache, logger)}
}

// List returns books with their course names.
func (s *BookService) List(ctx context.Context) ([]models.BookListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create stores a book.
func (s *BookService) Create(ctx context.Context, b *models.Book) error {
	if err := s.res.validate(b); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Delete removes a book by id.
func (s *BookService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}

// AuthorService manages book authorship.
type AuthorService struct {
	repo authorRepository
	res  resource
}

// NewAuthorService constructs an AuthorService.
func NewAuthorService(repo authorRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *AuthorService {
	return &AuthorService{repo: repo, res: newResource("author", "authors", validate, cache, logger)}
}

// List returns authors with book titles.
func (s *AuthorService) List(ctx context.Context) ([]models.AuthorListing, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.res.listFailed(err)
	}
	return items, nil
}

// Create links an author to a book.
func (s *AuthorService) Create(ctx context.Context, a *models.Author) error {
	if err := s.res.validate(a); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return s.res.createFailed(err)
	}
	s.res.written(ctx, "create", 1)
	return nil
}

// Delete unlinks an author from a book.
func (s *AuthorService) Delete(ctx context.Context, a models.Author) error {
	if err := s.res.requireKey(a.AuthorName); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, a)
	if err != nil {
		return s.res.deleteFailed(err)
	}
	s.res.written(ctx, "delete", n)
	return nil
}
