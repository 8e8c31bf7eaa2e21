package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meridian_moving/internal/adapter/http/handlers/mocks"
	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"first_name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx interface{}, c entities.Customer) (entities.Customer, error) {
				c.ID = "cust-1"
				return c, nil
			})

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		body := `{"first_name":"Ana","last_name":"Silva","phone":"555-0100"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["full_name"] != "Ana Silva" {
			t.Fatalf("expected full name, got %v", resp["full_name"])
		}
	})
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().GetCustomer(gomock.Any(), "missing").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

	r := gin.New()
	r.GET("/v1/customers/:id", h.GetCustomer)

	req := httptest.NewRequest(http.MethodGet, "/v1/customers/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked while jobs exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().DeleteCustomer(gomock.Any(), "cust-1").Return(usecase.ErrCustomerHasJobs)

		r := gin.New()
		r.DELETE("/v1/customers/:id", h.DeleteCustomer)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().DeleteCustomer(gomock.Any(), "cust-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/customers/:id", h.DeleteCustomer)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
