package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "jobdesk/internal/adapter/http/dto/request"
	response "jobdesk/internal/adapter/http/dto/response"
	"jobdesk/internal/usecase"
	"jobdesk/pkg"
)

var (
	errInvalidInvitationPayload = pkg.NewDomainErrorSimple("INVALID_INVITATION_INPUT", "Invalid invitation payload", http.StatusBadRequest)
)

// InvitationHandler handles HTTP requests for the invitation lifecycle:
// invite, accept, reject. Accept and reject act on behalf of the account in
// the request header.

type InvitationHandler struct {
	usecase usecase.IInvitationLifecycle
}

func NewInvitationHandler(uc usecase.IInvitationLifecycle) *InvitationHandler {
	return &InvitationHandler{usecase: uc}
}

// Invite creates a pending invitation on the job in the path.
func (h *InvitationHandler) Invite(c *gin.Context) {
	var payload request.InvitationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvitationPayload.HTTPStatus, errInvalidInvitationPayload.ToHTTPError())
		return
	}

	jobID := c.Param("job_id")
	invitation, err := h.usecase.Invite(c.Request.Context(), jobID, payload.ResolveContact())
	if err != nil {
		log.Printf("[invitation][handler] invite failed job_id=%s err=%v", jobID, err)
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvitation(invitation))
}

// Accept promotes the invitation into a live share for the requesting
// account and returns the restricted copy created for it.
func (h *InvitationHandler) Accept(c *gin.Context) {
	identity, ok := accountContact(c)
	if !ok {
		return
	}

	invitationID := c.Param("invitation_id")
	result, err := h.usecase.Accept(c.Request.Context(), invitationID, identity)
	if err != nil {
		log.Printf("[invitation][handler] accept failed invitation_id=%s err=%v", invitationID, err)
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAcceptResult(result))
}

// Reject moves the invitation to its terminal rejected state.
func (h *InvitationHandler) Reject(c *gin.Context) {
	invitationID := c.Param("invitation_id")
	invitation, err := h.usecase.Reject(c.Request.Context(), invitationID)
	if err != nil {
		log.Printf("[invitation][handler] reject failed invitation_id=%s err=%v", invitationID, err)
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvitation(invitation))
}

func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	invitation, err := h.usecase.GetByID(c.Request.Context(), c.Param("invitation_id"))
	if err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvitation(invitation))
}

// ListInvitations returns the invitations addressed to the requesting
// account.
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	contact, ok := accountContact(c)
	if !ok {
		return
	}

	invitations, err := h.usecase.ListForCollaborator(c.Request.Context(), contact)
	if err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvitations(invitations))
}

func mapInvitationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvitationID), errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidCollaboratorContact), errors.Is(err, usecase.ErrInvalidCollaboratorIdentity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvitationNotFound):
		return pkg.NewDomainErrorSimple("INVITATION_NOT_FOUND", "Invitation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateInvitation):
		return pkg.NewDomainErrorSimple("INVITATION_ALREADY_EXISTS", "A pending invitation already exists for this collaborator", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVITATION_NOT_PENDING", "Invitation is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartialFailure):
		return pkg.NewDomainError("PARTIAL_FAILURE", "Operation failed midway and was rolled back", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
