package routes

import (
	"jobdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs        = "/jobs"
	PathEstimates   = "/estimates"
	PathInvoices    = "/invoices"
	PathInvitations = "/invitations"
)

func addJobdeskRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	estimateHandler *handlers.EstimateHandler,
	invoiceHandler *handlers.InvoiceHandler,
	invitationHandler *handlers.InvitationHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PUT("/:job_id", jobHandler.UpdateJob)
		jobs.DELETE("/:job_id", jobHandler.DeleteJob)

		jobs.POST("/:job_id/clock-in", jobHandler.ClockIn)
		jobs.POST("/:job_id/clock-out", jobHandler.ClockOut)
		jobs.GET("/:job_id/clock", jobHandler.ClockState)
		jobs.GET("/:job_id/labor", jobHandler.LaborSummary)

		jobs.GET("/:job_id/invoice-draft", invoiceHandler.DraftInvoice)
		jobs.POST("/:job_id/invoice", invoiceHandler.CreateInvoice)

		jobs.POST("/:job_id/invitations", invitationHandler.Invite)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.PUT("/:estimate_id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:estimate_id", estimateHandler.DeleteEstimate)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
	}

	invitations := rg.Group(PathInvitations)
	{
		invitations.GET("", invitationHandler.ListInvitations)
		invitations.GET("/:invitation_id", invitationHandler.GetInvitation)
		invitations.PATCH("/:invitation_id/accept", invitationHandler.Accept)
		invitations.PATCH("/:invitation_id/reject", invitationHandler.Reject)
	}
}
