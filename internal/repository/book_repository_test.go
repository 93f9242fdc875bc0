package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/models"
)

func TestBookRepositoryList(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewBookRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(listBooksQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "title", "publish_year", "course_id", "course_name"}).
			AddRow(5, "SQL Basics", 2019, 10, "Databases"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Databases", *list[0].CourseName)
	assert.Equal(t, 2019, *list[0].PublishYear)
}

func TestAuthorRepositoryCreateAndDelete(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewAuthorRepository(store)

	author := models.Author{AuthorName: "Codd", BookID: 5}
	mock.ExpectExec(regexp.QuoteMeta(insertAuthorQuery)).
		WithArgs("Codd", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteAuthorQuery)).
		WithArgs("Codd", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), &author))
	n, err := repo.Delete(context.Background(), author)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepositoryListMissingBook(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewAuthorRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(listAuthorsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"author_name", "book_id", "book_title"}).AddRow("Codd", 5, nil))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].BookTitle)
}
