package entities

import "time"

// InvitationStatus represents the invitation state machine. Accepted and
// rejected are terminal.

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
)

// Invitation links a job owner to a prospective collaborator. Unlike the
// other collections it is queried across owners: a collaborator looks up
// invitations by their own contact before they own anything.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//   - GSI2 (collaborator_contact-index): collaborator_contact
//
// An accepted invitation carries the collaborator's resolved identity and the
// id of their shared job copy; it is the sole authorization edge the sync
// manager and the labor aggregator follow to reach that copy.
type Invitation struct {
	ID                     string           `json:"id"`
	JobID                  string           `json:"job_id"`
	OwnerContact           string           `json:"owner_contact"`
	CollaboratorContact    string           `json:"collaborator_contact"`
	Status                 InvitationStatus `json:"status"`
	AcceptedCollaboratorID string           `json:"accepted_collaborator_id,omitempty"`
	SharedJobID            string           `json:"shared_job_id,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// Terminal reports whether the invitation can no longer transition.
func (i Invitation) Terminal() bool {
	return i.Status == InvitationStatusAccepted || i.Status == InvitationStatusRejected
}
