package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// EnrollmentHandler serves /enrollments.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs an EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List enrollments
// @Tags Enrollments
// @Produce json
// @Success 200 {array} models.EnrollmentListing
// @Failure 500 {object} response.ErrorBody
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	items, err := h.enrollments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Enroll a student in a course
// @Description An empty Grade is stored as NULL and listed as pending.
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body models.Enrollment true "Enrollment"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var e models.Enrollment
	if !bindPayload(c, &e, "enrollment") {
		return
	}
	if err := h.enrollments.Create(c.Request.Context(), &e); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Enrollment added successfully")
}

// Update godoc
// @Summary Replace enrollment date and grade
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body models.Enrollment true "Enrollment"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /enrollments [put]
func (h *EnrollmentHandler) Update(c *gin.Context) {
	var e models.Enrollment
	if !bindPayload(c, &e, "enrollment") {
		return
	}
	if err := h.enrollments.Update(c.Request.Context(), &e); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Enrollment updated successfully")
}

// Delete godoc
// @Summary Delete enrollment
// @Tags Enrollments
// @Produce json
// @Param studentSSN query string true "Student SSN"
// @Param courseID query int true "Course ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /enrollments [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	ssn, ok := stringQuery(c, "studentSSN", "enrollment")
	if !ok {
		return
	}
	courseID, ok := intQuery(c, "courseID", "enrollment")
	if !ok {
		return
	}
	key := models.EnrollmentKey{StudentSSN: ssn, CourseID: courseID}
	if err := h.enrollments.Delete(c.Request.Context(), key); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Enrollment deleted successfully")
}
