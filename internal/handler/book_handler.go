package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// BookHandler serves /books and /authors.
type BookHandler struct {
	books   *service.BookService
	authors *service.AuthorService
}

// NewBookHandler constructs a BookHandler.
func NewBookHandler(books *service.BookService, authors *service.AuthorService) *BookHandler {
	return &BookHandler{books: books, authors: authors}
}

// List godoc
// @Summary List books
// @Tags Books
// @Produce json
// @Success 200 {array} models.BookListing
// @Failure 500 {object} response.ErrorBody
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	items, err := h.books.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create book
// @Tags Books
// @Accept json
// @Produce json
// @Param payload body models.Book true "Book"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var b models.Book
	if !bindPayload(c, &b, "book") {
		return
	}
	if err := h.books.Create(c.Request.Context(), &b); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Book added successfully")
}

// Delete godoc
// @Summary Delete book
// @Tags Books
// @Produce json
// @Param id query int true "Book ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /books [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := intQuery(c, "id", "book")
	if !ok {
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Book deleted successfully")
}

// ListAuthors godoc
// @Summary List book authors
// @Tags Books
// @Produce json
// @Success 200 {array} models.AuthorListing
// @Failure 500 {object} response.ErrorBody
// @Router /authors [get]
func (h *BookHandler) ListAuthors(c *gin.Context) {
	items, err := h.authors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// CreateAuthor godoc
// @Summary Link author to book
// @Tags Books
// @Accept json
// @Produce json
// @Param payload body models.Author true "Author"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /authors [post]
func (h *BookHandler) CreateAuthor(c *gin.Context) {
	var a models.Author
	if !bindPayload(c, &a, "author") {
		return
	}
	if err := h.authors.Create(c.Request.Context(), &a); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Author added successfully")
}

// DeleteAuthor godoc
// @Summary Unlink author from book
// @Tags Books
// @Produce json
// @Param name query string true "Author name"
// @Param bookID query int true "Book ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /authors [delete]
func (h *BookHandler) DeleteAuthor(c *gin.Context) {
	name, ok := stringQuery(c, "name", "author")
	if !ok {
		return
	}
	bookID, ok := intQuery(c, "bookID", "author")
	if !ok {
		return
	}
	if err := h.authors.Delete(c.Request.Context(), models.Author{AuthorName: name, BookID: bookID}); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Author deleted successfully")
}
