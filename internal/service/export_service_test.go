package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/models"
	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

type paymentListerStub struct {
	items []models.PaymentListing
	err   error
}

func (s paymentListerStub) List(context.Context) ([]models.PaymentListing, error) {
	return s.items, s.err
}

func newPaymentExportService(lister paymentListerStub) *ExportService {
	svc := NewExportService(ExportSources{Payments: lister}, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportServiceCSV(t *testing.T) {
	amount := 1500.5
	svc := newPaymentExportService(paymentListerStub{items: []models.PaymentListing{{
		Payment:     models.Payment{PaymentID: 1, Date: strPtr("2024-01-15"), Amount: &amount, StudentSSN: strPtr("s1")},
		StudentName: strPtr("Ana"),
	}}})

	file, err := svc.Export(context.Background(), "payments", "csv")
	require.NoError(t, err)
	assert.Equal(t, "payments-20240301.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Equal(t, "PaymentID,Date,Amount,StudentSSN,StudentName\n1,2024-01-15,\"1,500.50\",s1,Ana\n", string(file.Content))
}

func TestExportServicePDF(t *testing.T) {
	svc := newPaymentExportService(paymentListerStub{items: []models.PaymentListing{}})

	file, err := svc.Export(context.Background(), "payments", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExportServiceErrors(t *testing.T) {
	svc := newPaymentExportService(paymentListerStub{err: errors.New("down")})

	_, err := svc.Export(context.Background(), "grades", "csv")
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)

	_, err = svc.Export(context.Background(), "payments", "xlsx")
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)

	_, err = svc.Export(context.Background(), "payments", "csv")
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to export payments", appErr.Message)
}

func TestExportServiceResources(t *testing.T) {
	svc := NewExportService(ExportSources{
		Departments: NewDepartmentService(&departmentRepoStub{}, nil, nil, nil),
		Enrollments: NewEnrollmentService(&enrollmentRepoStub{}, nil, nil, nil),
	}, nil)
	assert.ElementsMatch(t, []string{"departments", "enrollments"}, svc.Resources())
}
