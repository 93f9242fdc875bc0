package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

// MessageBody is returned by successful writes.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is returned by every failed call. It never carries store detail.
type ErrorBody struct {
	Error string `json:"error"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON sends data as the bare response body.
func JSON(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, data)
}

// Message sends a {"message": ...} body.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, MessageBody{Message: message})
}

// Created responds with HTTP 201 Created and a confirmation message.
func Created(c *gin.Context, message string) {
	Message(c, http.StatusCreated, message)
}

// Error converts err to its public message and status. The full error is
// attached to the gin context for the access log.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	noStore(c)
	c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
}
