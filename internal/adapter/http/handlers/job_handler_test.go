package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobdesk/internal/adapter/http/handlers/mocks"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing account header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"title":"Deck"}`))
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
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
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
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), "owner@x.dev", gomock.Any()).DoAndReturn(
			func(_ context.Context, owner string, in usecase.JobInput) (entities.Job, error) {
				if in.Title != "Deck repair" || in.EstimatedCost != "300" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Job{ID: "job-1", OwnerContact: owner, Title: in.Title, Status: entities.JobStatusScheduled, EstimatedCost: in.EstimatedCost}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"title":"Deck repair","estimated_cost":"300"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(AccountHeader, "owner@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "job-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_UpdateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("locked cost maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/jobs/:job_id", h.UpdateJob)

		uc.EXPECT().UpdateJob(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrEstimatedCostLocked)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1", bytes.NewBufferString(`{"estimated_cost":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/jobs/:job_id", h.UpdateJob)

		uc.EXPECT().UpdateJob(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1", bytes.NewBufferString(`{"title":"Deck"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobHandler_DeleteJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc, nil)

	r := gin.New()
	r.DELETE("/v1/jobs/:job_id", h.DeleteJob)

	uc.EXPECT().DeleteJob(gomock.Any(), "job-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestJobHandler_Clock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	day := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

	t.Run("clock in with explicit timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/clock-in", h.ClockIn)

		uc.EXPECT().ClockIn(gomock.Any(), "job-1", day).Return(entities.Job{ID: "job-1", Title: "Deck", ClockedIn: true, CurrentSessionStart: day}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/clock-in", bytes.NewBufferString(`{"at":"2026-09-14T08:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("clock in without body means now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/clock-in", h.ClockIn)

		uc.EXPECT().ClockIn(gomock.Any(), "job-1", time.Time{}).Return(entities.Job{ID: "job-1", Title: "Deck", ClockedIn: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/clock-in", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("double clock in maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/clock-in", h.ClockIn)

		uc.EXPECT().ClockIn(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrAlreadyClockedIn)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/clock-in", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("clock out before clock in maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/clock-out", h.ClockOut)

		uc.EXPECT().ClockOut(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrInvalidClockOut)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/clock-out", bytes.NewBufferString(`{"at":"2026-09-14T06:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("clock state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/clock", h.ClockState)

		uc.EXPECT().ClockState(gomock.Any(), "job-1").Return(true, day, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/clock", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["clocked_in"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_LaborSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	labor := mocks.NewMockILaborHoursAggregator(ctrl)
	h := NewJobHandler(uc, labor)

	r := gin.New()
	r.GET("/v1/jobs/:job_id/labor", h.LaborSummary)

	labor.EXPECT().ComputeTotal(gomock.Any(), "job-1").Return(usecase.LaborSummary{
		TotalHours: 10, OwnerHours: 5, CollaboratorHours: 5,
		Breakdown: []usecase.LaborBreakdownEntry{
			{Contact: "owner@x.dev", Hours: 5, IsOwner: true},
			{Contact: "helper@x.dev", Hours: 5},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/labor", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total_hours"] != 10.0 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapJobError(t *testing.T) {
	if got := mapJobError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapJobError(usecase.ErrEstimatedCostLocked); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapJobError(usecase.ErrAlreadyClockedIn); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapJobError(usecase.ErrNotClockedIn); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapJobError(usecase.ErrInvalidClockOut); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
