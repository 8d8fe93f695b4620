package handlers

import (
	"bytes"
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

func TestInvitationHandler_Invite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvitationLifecycle(ctrl)
		h := NewInvitationHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/invitations", h.Invite)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/invitations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvitationLifecycle(ctrl)
		h := NewInvitationHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/invitations", h.Invite)

		uc.EXPECT().Invite(gomock.Any(), "job-1", "helper@x.dev").Return(entities.Invitation{
			ID: "inv-1", JobID: "job-1", OwnerContact: "owner@x.dev",
			CollaboratorContact: "helper@x.dev", Status: entities.InvitationStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/invitations", bytes.NewBufferString(`{"collaborator_contact":"helper@x.dev"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvitationLifecycle(ctrl)
		h := NewInvitationHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/invitations", h.Invite)

		uc.EXPECT().Invite(gomock.Any(), "job-1", "helper@x.dev").Return(entities.Invitation{}, usecase.ErrDuplicateInvitation)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/invitations", bytes.NewBufferString(`{"collaborator_contact":"helper@x.dev"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInvitationHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing account header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvitationLifecycle(ctrl)
		h := NewInvitationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invitations/:invitation_id/accept", h.Accept)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invitations/inv-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the shared copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvitationLifecycle(ctrl)
		h := NewInvitationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invitations/:invitation_id/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "inv-1", "helper@x.dev").Return(usecase.AcceptResult{
			Invitation: entities.Invitation{ID: "inv-1", Status: entities.InvitationStatusAccepted, SharedJobID: "copy-1"},
			SharedJob:  entities.Job{ID: "copy-1", OwnerContact: "helper@x.dev", Title: "Deck", IsSharedCopy: true, SourceJobID: "job-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invitations/inv-1/accept", nil)
		req.Header.Set(AccountHeader, "helper@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Invitation map[string]any `json:"invitation"`
			SharedJob  map[string]any `json:"shared_job"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.SharedJob["id"] != "copy-1" || body.SharedJob["is_shared_copy"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not pending maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvitationLifecycle(ctrl)
		h := NewInvitationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invitations/:invitation_id/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "inv-1", "helper@x.dev").Return(usecase.AcceptResult{}, usecase.ErrInvitationNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invitations/inv-1/accept", nil)
		req.Header.Set(AccountHeader, "helper@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("partial failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvitationLifecycle(ctrl)
		h := NewInvitationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invitations/:invitation_id/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "inv-1", "helper@x.dev").Return(usecase.AcceptResult{}, usecase.ErrPartialFailure)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invitations/inv-1/accept", nil)
		req.Header.Set(AccountHeader, "helper@x.dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestInvitationHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvitationLifecycle(ctrl)
	h := NewInvitationHandler(uc)

	r := gin.New()
	r.PATCH("/v1/invitations/:invitation_id/reject", h.Reject)

	uc.EXPECT().Reject(gomock.Any(), "inv-1").Return(entities.Invitation{ID: "inv-1", Status: entities.InvitationStatusRejected}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/invitations/inv-1/reject", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "rejected" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapInvitationError(t *testing.T) {
	if got := mapInvitationError(usecase.ErrInvalidInvitationID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvitationError(usecase.ErrInvitationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvitationError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvitationError(usecase.ErrDuplicateInvitation); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInvitationError(usecase.ErrInvitationNotPending); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInvitationError(usecase.ErrPartialFailure); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if got := mapInvitationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
