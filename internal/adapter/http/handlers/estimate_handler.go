package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "jobdesk/internal/adapter/http/dto/request"
	response "jobdesk/internal/adapter/http/dto/response"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase"
	"jobdesk/pkg"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates. Linking an estimate to
// a job happens through the job_id field on the payload; the derived job cost
// reconciles inside the use case.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	owner, ok := accountContact(c)
	if !ok {
		return
	}

	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if err := request.ValidateMaterials(payload.Materials); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), owner, usecase.EstimateInput{
		Name:       payload.ResolveName(),
		Client:     payload.Client,
		Location:   payload.Location,
		JobID:      payload.JobID,
		LaborHours: payload.LaborHours,
		LaborRate:  payload.LaborRate,
		Materials:  materialsFromRequest(payload.Materials),
		Status:     entities.EstimateStatus(payload.Status),
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if err := request.ValidateMaterials(payload.Materials); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateEstimate(c.Request.Context(), c.Param("estimate_id"), usecase.EstimateInput{
		Name:       payload.Name,
		Client:     payload.Client,
		Location:   payload.Location,
		LaborHours: payload.LaborHours,
		LaborRate:  payload.LaborRate,
		Materials:  materialsFromRequest(payload.Materials),
		Status:     entities.EstimateStatus(payload.Status),
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.DeleteEstimate(c.Request.Context(), c.Param("estimate_id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	owner, ok := accountContact(c)
	if !ok {
		return
	}

	estimates, err := h.usecase.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func materialsFromRequest(in []request.MaterialRequest) []entities.Material {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.Material, 0, len(in))
	for _, m := range in {
		out = append(out, entities.Material{Name: m.Name, Quantity: m.Quantity, UnitCost: m.UnitCost})
	}
	return out
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateName),
		errors.Is(err, usecase.ErrInvalidEstimateInput), errors.Is(err, usecase.ErrInvalidOwnerContact),
		errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateAlreadyLinked):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_LINKED", "Estimate already linked to another job", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
