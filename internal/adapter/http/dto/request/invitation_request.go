package request

import "strings"

// InvitationRequest invites a collaborator (by email or phone) to a job.
type InvitationRequest struct {
	CollaboratorContact string `json:"collaborator_contact" binding:"required"`
}

func (r InvitationRequest) ResolveContact() string {
	return strings.TrimSpace(r.CollaboratorContact)
}
