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
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for jobs, including the clock-in/out flow
// and the labor summary.

type JobHandler struct {
	usecase usecase.IJobUseCase
	labor   usecase.ILaborHoursAggregator
}

func NewJobHandler(uc usecase.IJobUseCase, labor usecase.ILaborHoursAggregator) *JobHandler {
	return &JobHandler{usecase: uc, labor: labor}
}

// CreateJob creates a job owned by the requesting account.
func (h *JobHandler) CreateJob(c *gin.Context) {
	owner, ok := accountContact(c)
	if !ok {
		return
	}

	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), owner, jobInputFromCreate(payload))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// UpdateJob applies a partial update; empty fields keep their current value.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.JobUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateJob(c.Request.Context(), c.Param("job_id"), jobInputFromUpdate(payload))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.DeleteJob(c.Request.Context(), c.Param("job_id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListJobs returns every job owned by the requesting account, shared copies
// included.
func (h *JobHandler) ListJobs(c *gin.Context) {
	owner, ok := accountContact(c)
	if !ok {
		return
	}

	jobs, err := h.usecase.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// ClockIn opens a work session on the job. The body is optional; an absent
// timestamp means "now".
func (h *JobHandler) ClockIn(c *gin.Context) {
	var payload request.ClockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = request.ClockRequest{}
	}

	job, err := h.usecase.ClockIn(c.Request.Context(), c.Param("job_id"), payload.At)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ClockOut closes the open work session. The body is optional; an absent
// timestamp means "now".
func (h *JobHandler) ClockOut(c *gin.Context) {
	var payload request.ClockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = request.ClockRequest{}
	}

	job, err := h.usecase.ClockOut(c.Request.Context(), c.Param("job_id"), payload.At)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ClockState reports whether the job currently has an open session.
func (h *JobHandler) ClockState(c *gin.Context) {
	jobID := c.Param("job_id")
	clockedIn, start, err := h.usecase.ClockState(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClockStateResponse{JobID: jobID, ClockedIn: clockedIn, CurrentSessionStart: start})
}

// LaborSummary returns the aggregated worked hours across the owner and all
// accepted collaborators.
func (h *JobHandler) LaborSummary(c *gin.Context) {
	jobID := c.Param("job_id")
	summary, err := h.labor.ComputeTotal(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaborSummary(jobID, summary))
}

func jobInputFromCreate(p request.JobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:         p.Title,
		Client:        p.Client,
		Location:      p.Location,
		Notes:         p.Notes,
		Status:        entities.JobStatus(p.Status),
		ScheduledAt:   p.ScheduledAt,
		EstimatedCost: p.EstimatedCost,
	}
}

func jobInputFromUpdate(p request.JobUpdateRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:         p.Title,
		Client:        p.Client,
		Location:      p.Location,
		Notes:         p.Notes,
		Status:        entities.JobStatus(p.Status),
		ScheduledAt:   p.ScheduledAt,
		EstimatedCost: p.EstimatedCost,
	}
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobTitle), errors.Is(err, usecase.ErrInvalidOwnerContact):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimatedCostLocked):
		return pkg.NewDomainErrorSimple("ESTIMATED_COST_LOCKED", "Estimated cost is derived from linked estimates", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyClockedIn):
		return pkg.NewDomainErrorSimple("ALREADY_CLOCKED_IN", "Job already has an open session", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotClockedIn):
		return pkg.NewDomainErrorSimple("NOT_CLOCKED_IN", "Job has no open session", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidClockOut):
		return pkg.NewDomainErrorSimple("INVALID_CLOCK_OUT", "Clock-out precedes clock-in", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
