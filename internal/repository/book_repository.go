package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const (
	listBooksQuery = `SELECT b.book_id, b.title, b.publish_year, b.course_id, c.cname AS course_name
FROM book b
LEFT JOIN course c ON c.course_id = b.course_id`
	insertBookQuery = `INSERT INTO book (book_id, title, publish_year, course_id) VALUES ($1, $2, $3, $4)`
	deleteBookQuery = `DELETE FROM book WHERE book_id = $1`

	listAuthorsQuery = `SELECT a.author_name, a.book_id, b.title AS book_title
FROM authors a
LEFT JOIN book b ON b.book_id = a.book_id`
	insertAuthorQuery = `INSERT INTO authors (author_name, book_id) VALUES ($1, $2)`
	deleteAuthorQuery = `DELETE FROM authors WHERE author_name = $1 AND book_id = $2`
)

// BookRepository persists books.
type BookRepository struct {
	store *database.Store
}

// NewBookRepository constructs the repository.
func NewBookRepository(store *database.Store) *BookRepository {
	return &BookRepository{store: store}
}

// List returns books with their course name.
func (r *BookRepository) List(ctx context.Context) ([]models.BookListing, error) {
	items, err := selectAll[models.BookListing](ctx, r.store, "book.list", listBooksQuery)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return items, nil
}

// Create inserts a book.
func (r *BookRepository) Create(ctx context.Context, b *models.Book) error {
	if _, err := execAffected(ctx, r.store, "book.create", insertBookQuery, b.BookID, b.Title, b.PublishYear, b.CourseID); err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// Delete removes a book by id. Books with authors cannot be deleted.
func (r *BookRepository) Delete(ctx context.Context, id int) (int64, error) {
	n, err := execAffected(ctx, r.store, "book.delete", deleteBookQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete book: %w", err)
	}
	return n, nil
}

// AuthorRepository persists the authors junction.
type AuthorRepository struct {
	store *database.Store
}

// NewAuthorRepository constructs the repository.
func NewAuthorRepository(store *database.Store) *AuthorRepository {
	return &AuthorRepository{store: store}
}

// List returns authors with the title of their book.
func (r *AuthorRepository) List(ctx context.Context) ([]models.AuthorListing, error) {
	items, err := selectAll[models.AuthorListing](ctx, r.store, "author.list", listAuthorsQuery)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return items, nil
}

// Create links an author to a book.
func (r *AuthorRepository) Create(ctx context.Context, a *models.Author) error {
	if _, err := execAffected(ctx, r.store, "author.create", insertAuthorQuery, a.AuthorName, a.BookID); err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	return nil
}

// Delete unlinks an author from a book.
func (r *AuthorRepository) Delete(ctx context.Context, a models.Author) (int64, error) {
	n, err := execAffected(ctx, r.store, "author.delete", deleteAuthorQuery, a.AuthorName, a.BookID)
	if err != nil {
		return 0, fmt.Errorf("delete author: %w", err)
	}
	return n, nil
}
