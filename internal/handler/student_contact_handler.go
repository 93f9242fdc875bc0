package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// StudentContactHandler serves /emails and /phones.
type StudentContactHandler struct {
	emails *service.StudentEmailService
	phones *service.StudentPhoneService
}

// NewStudentContactHandler constructs a StudentContactHandler.
func NewStudentContactHandler(emails *service.StudentEmailService, phones *service.StudentPhoneService) *StudentContactHandler {
	return &StudentContactHandler{emails: emails, phones: phones}
}

// ListEmails godoc
// @Summary List student emails
// @Tags Students
// @Produce json
// @Success 200 {array} models.StudentEmailListing
// @Failure 500 {object} response.ErrorBody
// @Router /emails [get]
func (h *StudentContactHandler) ListEmails(c *gin.Context) {
	items, err := h.emails.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// CreateEmail godoc
// @Summary Add student email
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.StudentEmail true "Email"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /emails [post]
func (h *StudentContactHandler) CreateEmail(c *gin.Context) {
	var e models.StudentEmail
	if !bindPayload(c, &e, "email") {
		return
	}
	if err := h.emails.Create(c.Request.Context(), &e); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Email added successfully")
}

// DeleteEmail godoc
// @Summary Remove student email
// @Tags Students
// @Produce json
// @Param email query string true "Email"
// @Param ssn query string true "Student SSN"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /emails [delete]
func (h *StudentContactHandler) DeleteEmail(c *gin.Context) {
	email, ok := stringQuery(c, "email", "email")
	if !ok {
		return
	}
	ssn, ok := stringQuery(c, "ssn", "email")
	if !ok {
		return
	}
	if err := h.emails.Delete(c.Request.Context(), models.StudentEmail{Email: email, StudentSSN: ssn}); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Email deleted successfully")
}

// ListPhones godoc
// @Summary List student phone numbers
// @Tags Students
// @Produce json
// @Success 200 {array} models.StudentPhoneListing
// @Failure 500 {object} response.ErrorBody
// @Router /phones [get]
func (h *StudentContactHandler) ListPhones(c *gin.Context) {
	items, err := h.phones.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// CreatePhone godoc
// @Summary Add student phone number
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.StudentPhone true "Phone"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /phones [post]
func (h *StudentContactHandler) CreatePhone(c *gin.Context) {
	var p models.StudentPhone
	if !bindPayload(c, &p, "phone") {
		return
	}
	if err := h.phones.Create(c.Request.Context(), &p); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Phone added successfully")
}

// DeletePhone godoc
// @Summary Remove student phone number
// @Tags Students
// @Produce json
// @Param phone query string true "Phone number"
// @Param ssn query string true "Student SSN"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /phones [delete]
func (h *StudentContactHandler) DeletePhone(c *gin.Context) {
	phone, ok := stringQuery(c, "phone", "phone")
	if !ok {
		return
	}
	ssn, ok := stringQuery(c, "ssn", "phone")
	if !ok {
		return
	}
	if err := h.phones.Delete(c.Request.Context(), models.StudentPhone{PhoneNum: phone, StudentSSN: ssn}); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Phone deleted successfully")
}
