package response

import (
	"time"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase"
)

type InvitationResponse struct {
	ID                  string    `json:"id"`
	JobID               string    `json:"job_id"`
	OwnerContact        string    `json:"owner_contact"`
	CollaboratorContact string    `json:"collaborator_contact"`
	Status              string    `json:"status"`
	SharedJobID         string    `json:"shared_job_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// AcceptResponse carries the accepted invitation together with the shared
// copy created for the collaborator.
type AcceptResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	SharedJob  JobResponse        `json:"shared_job"`
}

func FromInvitation(i entities.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:                  i.ID,
		JobID:               i.JobID,
		OwnerContact:        i.OwnerContact,
		CollaboratorContact: i.CollaboratorContact,
		Status:              string(i.Status),
		SharedJobID:         i.SharedJobID,
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
}

func FromInvitations(invitations []entities.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invitations))
	for _, i := range invitations {
		out = append(out, FromInvitation(i))
	}
	return out
}

func FromAcceptResult(r usecase.AcceptResult) AcceptResponse {
	return AcceptResponse{
		Invitation: FromInvitation(r.Invitation),
		SharedJob:  FromJob(r.SharedJob),
	}
}
