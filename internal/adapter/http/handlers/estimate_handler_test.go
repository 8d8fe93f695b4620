package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobdesk/internal/adapter/http/handlers/mocks"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing account header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"name":"Quote"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(AccountHeader, "owner@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"name":"Quote","materials":[{"name":"Tile","quantity":-1,"unit_cost":3}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(AccountHeader, "owner@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().CreateEstimate(gomock.Any(), "owner@x.dev", gomock.Any()).DoAndReturn(
			func(_ context.Context, owner string, in usecase.EstimateInput) (entities.Estimate, error) {
				if in.Name != "Bathroom remodel" || in.JobID != "job-1" || in.LaborHours != 10 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Estimate{ID: "est-1", OwnerContact: owner, Name: in.Name, JobID: in.JobID, Total: 550}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(
			`{"name":"Bathroom remodel","job_id":"job-1","labor_hours":10,"labor_rate":45,"materials":[{"name":"Tile","quantity":20,"unit_cost":3.5},{"name":"Grout","quantity":2,"unit_cost":15}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(AccountHeader, "owner@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["total"] != 550.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("already linked maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().CreateEstimate(gomock.Any(), "owner@x.dev", gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateAlreadyLinked)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"name":"Quote","job_id":"job-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(AccountHeader, "owner@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:estimate_id", h.UpdateEstimate)

		uc.EXPECT().UpdateEstimate(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1", bytes.NewBufferString(`{"labor_hours":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:estimate_id", h.UpdateEstimate)

		uc.EXPECT().UpdateEstimate(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{ID: "est-1", Name: "Quote", Total: 150}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1", bytes.NewBufferString(`{"labor_hours":3,"labor_rate":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.DELETE("/v1/estimates/:estimate_id", h.DeleteEstimate)

	uc.EXPECT().DeleteEstimate(gomock.Any(), "est-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidEstimateID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidEstimateName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateAlreadyLinked); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
