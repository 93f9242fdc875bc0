package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// StudentHandler serves /students and the legacy /student create route.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {array} models.StudentListing
// @Failure 500 {object} response.ErrorBody
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	items, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.Student true "Student"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /students [post]
// @Router /student [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var s models.Student
	if !bindPayload(c, &s, "student") {
		return
	}
	if err := h.students.Create(c.Request.Context(), &s); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Student added successfully")
}

// Update godoc
// @Summary Replace student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.Student true "Student"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /students [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var s models.Student
	if !bindPayload(c, &s, "student") {
		return
	}
	if err := h.students.Update(c.Request.Context(), &s); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Student updated successfully")
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Produce json
// @Param ssn query string true "Student SSN"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /students [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	ssn, ok := stringQuery(c, "ssn", "student")
	if !ok {
		return
	}
	if err := h.students.Delete(c.Request.Context(), ssn); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Student deleted successfully")
}
