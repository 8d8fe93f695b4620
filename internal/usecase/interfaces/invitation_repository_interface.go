package interfaces

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// IInvitationRepository abstracts DynamoDB persistence for Invitation.
//
// Invitations are the one cross-owner collection: ListByCollaborator looks up
// by the invitee's contact before that invitee owns any record.

type IInvitationRepository interface {
	Create(ctx context.Context, i entities.Invitation) (entities.Invitation, error)
	GetByID(ctx context.Context, id string) (entities.Invitation, error)
	Save(ctx context.Context, i entities.Invitation) (entities.Invitation, error)
	Delete(ctx context.Context, id string) error
	ListByJobID(ctx context.Context, jobID string) ([]entities.Invitation, error)
	ListByCollaborator(ctx context.Context, collaboratorContact string) ([]entities.Invitation, error)
}
