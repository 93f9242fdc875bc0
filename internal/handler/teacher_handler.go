package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// TeacherHandler serves /teachers.
type TeacherHandler struct {
	teachers *service.TeacherService
}

// NewTeacherHandler constructs a TeacherHandler.
func NewTeacherHandler(teachers *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Success 200 {array} models.TeacherListing
// @Failure 500 {object} response.ErrorBody
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	items, err := h.teachers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body models.Teacher true "Teacher"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var t models.Teacher
	if !bindPayload(c, &t, "teacher") {
		return
	}
	if err := h.teachers.Create(c.Request.Context(), &t); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Teacher added successfully")
}

// Update godoc
// @Summary Replace teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body models.Teacher true "Teacher"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /teachers [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	var t models.Teacher
	if !bindPayload(c, &t, "teacher") {
		return
	}
	if err := h.teachers.Update(c.Request.Context(), &t); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Teacher updated successfully")
}

// Delete godoc
// @Summary Delete teacher
// @Tags Teachers
// @Produce json
// @Param ssn query string true "Teacher SSN"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /teachers [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	ssn, ok := stringQuery(c, "ssn", "teacher")
	if !ok {
		return
	}
	if err := h.teachers.Delete(c.Request.Context(), ssn); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Teacher deleted successfully")
}
