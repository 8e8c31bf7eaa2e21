package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meridian_moving/internal/adapter/http/handlers/mocks"
	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/infrastructure/spreadsheet"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_ExportReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mocks.NewMockIJobUseCase(ctrl)
	customers := mocks.NewMockICustomerUseCase(ctrl)
	h := NewExportHandler(jobs, customers, spreadsheet.NewExporter())

	jobs.EXPECT().ListJobs(gomock.Any()).Return([]entities.Job{
		{ID: "job-1", JobNumber: "MV250712-001", Title: "Two bedroom move", Status: entities.JobStatusPaid},
	}, nil)
	customers.EXPECT().ListCustomers(gomock.Any()).Return([]entities.Customer{
		{ID: "cust-1", FirstName: "Ana", LastName: "Silva"},
	}, nil)

	r := gin.New()
	r.GET("/v1/export", h.ExportReport)

	req := httptest.NewRequest(http.MethodGet, "/v1/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "moving-report-") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	if w.Body.Len() == 0 {
		t.Fatal("expected workbook bytes")
	}
}
