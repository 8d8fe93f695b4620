package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "jobdesk/internal/adapter/http/dto/response"
	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase"
	"jobdesk/pkg"
)

// InvoiceHandler handles HTTP requests for invoices. Invoices are derived
// from a job's estimates; the only write operations are synthesizing a draft
// and materializing it.

type InvoiceHandler struct {
	usecase usecase.IInvoiceSynthesizer
}

func NewInvoiceHandler(uc usecase.IInvoiceSynthesizer) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// DraftInvoice previews the invoice a job would produce without persisting
// anything.
func (h *InvoiceHandler) DraftInvoice(c *gin.Context) {
	jobID := c.Param("job_id")
	draft, err := h.usecase.Synthesize(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceDraft(draft))
}

// CreateInvoice synthesizes and materializes the job's invoice in one step.
// A job that already carries an invoice returns it with 200 instead of
// creating a second one.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[invoice][handler] create start job_id=%s", jobID)

	draft, err := h.usecase.Synthesize(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[invoice][handler] synthesize failed job_id=%s err=%v", jobID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Materialize(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, usecase.ErrInvoiceAlreadyMaterialized) {
			if existing, ok := h.existingInvoiceForJob(c, jobID, draft.OwnerContact); ok {
				c.JSON(http.StatusOK, response.FromInvoice(existing))
				return
			}
		}
		log.Printf("[invoice][handler] materialize failed job_id=%s err=%v", jobID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] create success job_id=%s invoice_id=%s number=%d", jobID, invoice.ID, invoice.InvoiceNumber)

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	owner, ok := accountContact(c)
	if !ok {
		return
	}

	invoices, err := h.usecase.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// existingInvoiceForJob resolves the invoice a job already links to.
func (h *InvoiceHandler) existingInvoiceForJob(c *gin.Context, jobID, ownerContact string) (entities.Invoice, bool) {
	invoices, err := h.usecase.ListByOwner(c.Request.Context(), ownerContact)
	if err != nil {
		return entities.Invoice{}, false
	}
	for _, inv := range invoices {
		if inv.JobID == jobID {
			return inv, true
		}
	}
	return entities.Invoice{}, false
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidOwnerContact):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyMaterialized):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Job already has an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyInvoiceDraft):
		return pkg.NewDomainErrorSimple("EMPTY_INVOICE_DRAFT", "Job has nothing to invoice", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
