package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// CourseHandler serves /courses.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs a CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {array} models.CourseListing
// @Failure 500 {object} response.ErrorBody
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	items, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.Course true "Course"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var course models.Course
	if !bindPayload(c, &course, "course") {
		return
	}
	if err := h.courses.Create(c.Request.Context(), &course); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Course added successfully")
}

// Update godoc
// @Summary Replace course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.Course true "Course"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /courses [put]
func (h *CourseHandler) Update(c *gin.Context) {
	var course models.Course
	if !bindPayload(c, &course, "course") {
		return
	}
	if err := h.courses.Update(c.Request.Context(), &course); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Course updated successfully")
}

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Produce json
// @Param id query int true "Course ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /courses [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := intQuery(c, "id", "course")
	if !ok {
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Course deleted successfully")
}
