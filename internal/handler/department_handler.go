package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// DepartmentHandler serves /departments.
type DepartmentHandler struct {
	departments *service.DepartmentService
}

// NewDepartmentHandler constructs a DepartmentHandler.
func NewDepartmentHandler(departments *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

// List godoc
// @Summary List departments
// @Tags Departments
// @Produce json
// @Success 200 {array} models.Department
// @Failure 500 {object} response.ErrorBody
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	items, err := h.departments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Param payload body models.Department true "Department"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var d models.Department
	if !bindPayload(c, &d, "department") {
		return
	}
	if err := h.departments.Create(c.Request.Context(), &d); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Department added successfully")
}

// Update godoc
// @Summary Replace department
// @Tags Departments
// @Accept json
// @Produce json
// @Param payload body models.Department true "Department"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /departments [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	var d models.Department
	if !bindPayload(c, &d, "department") {
		return
	}
	if err := h.departments.Update(c.Request.Context(), &d); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Department updated successfully")
}

// Delete godoc
// @Summary Delete department
// @Tags Departments
// @Produce json
// @Param id query int true "Department ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /departments [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := intQuery(c, "id", "department")
	if !ok {
		return
	}
	if err := h.departments.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Department deleted successfully")
}
