package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// PaymentHandler serves /payments. Payments cannot be updated.
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// List godoc
// @Summary List payments
// @Tags Payments
// @Produce json
// @Success 200 {array} models.PaymentListing
// @Failure 500 {object} response.ErrorBody
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	items, err := h.payments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Record payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body models.Payment true "Payment"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var p models.Payment
	if !bindPayload(c, &p, "payment") {
		return
	}
	if err := h.payments.Create(c.Request.Context(), &p); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment added successfully")
}

// Delete godoc
// @Summary Delete payment
// @Tags Payments
// @Produce json
// @Param id query int true "Payment ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /payments [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := intQuery(c, "id", "payment")
	if !ok {
		return
	}
	if err := h.payments.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Payment deleted successfully")
}
