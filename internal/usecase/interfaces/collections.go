package interfaces

// Collection names used on the change feed.
const (
	CollectionJobs        = "jobs"
	CollectionEstimates   = "estimates"
	CollectionInvoices    = "invoices"
	CollectionInvitations = "invitations"
)
