package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meridian_moving/internal/adapter/http/handlers/mocks"
	"meridian_moving/internal/domain/tariff"
	"meridian_moving/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	uc.EXPECT().Stats(gomock.Any()).Return(usecase.DashboardStats{
		TotalCustomers: 12,
		TotalJobs:      30,
		ActualRevenue:  tariff.Cents(450000),
	}, nil)

	r := gin.New()
	r.GET("/v1/dashboard/stats", h.GetStats)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["actual_revenue"] != 4500.0 {
		t.Fatalf("expected actual_revenue 4500, got %v", resp["actual_revenue"])
	}
}

func TestDashboardHandler_GetFinancials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	uc.EXPECT().Financials(gomock.Any(), 2025).Return([]usecase.MonthFinancials{
		{Month: "Jan", Revenue: tariff.Cents(100000), Profit: tariff.Cents(80000), Jobs: 2},
	}, nil)

	r := gin.New()
	r.GET("/v1/dashboard/financials", h.GetFinancials)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/financials?year=2025", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp) != 1 || resp[0]["month"] != "Jan" {
		t.Fatalf("unexpected financials payload: %v", resp)
	}
}
