package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"
)

var (
	ErrInvitationNotFound          = errors.New("invitation not found")
	ErrDuplicateInvitation         = errors.New("duplicate invitation")
	ErrInvalidTransition           = errors.New("invalid invitation transition")
	ErrInvalidInvitationID         = errors.New("invalid invitation id")
	ErrInvalidCollaboratorContact  = errors.New("invalid collaborator contact")
	ErrInvalidCollaboratorIdentity = errors.New("invalid collaborator identity")

	// PartialFailure marks a multi-record operation that failed midway;
	// compensating cleanup has been attempted before it is returned.
	ErrPartialFailure = errors.New("partial failure")
)

// ErrInvitationNotPending wraps ErrInvalidTransition: accepted and rejected
// are terminal, so any transition attempt on a non-pending invitation is a
// state-machine violation.
var ErrInvitationNotPending = fmt.Errorf("%w: invitation not pending", ErrInvalidTransition)

// AcceptResult carries both records produced by a successful acceptance.
type AcceptResult struct {
	Invitation entities.Invitation `json:"invitation"`
	SharedJob  entities.Job        `json:"shared_job"`
}

// IInvitationLifecycle drives the invitation state machine:
// pending -> accepted or pending -> rejected, both terminal.
//
// Accept touches three records (shared copy, invitation, owner job). The
// store offers no multi-record transaction, so the steps are ordered
// copy-first and compensated on failure: a failed later step deletes the copy
// and reverts the invitation rather than leaving the unit half-applied.

type IInvitationLifecycle interface {
	Invite(ctx context.Context, jobID, collaboratorContact string) (entities.Invitation, error)
	Accept(ctx context.Context, invitationID, acceptingIdentity string) (AcceptResult, error)
	Reject(ctx context.Context, invitationID string) (entities.Invitation, error)
	GetByID(ctx context.Context, id string) (entities.Invitation, error)
	ListForCollaborator(ctx context.Context, collaboratorContact string) ([]entities.Invitation, error)
}

type InvitationLifecycle struct {
	jobs        interfaces.IJobRepository
	invitations interfaces.IInvitationRepository
	feed        interfaces.IChangeFeed
}

var _ IInvitationLifecycle = (*InvitationLifecycle)(nil)

func NewInvitationLifecycle(jobs interfaces.IJobRepository, invitations interfaces.IInvitationRepository, feed interfaces.IChangeFeed) *InvitationLifecycle {
	return &InvitationLifecycle{jobs: jobs, invitations: invitations, feed: feed}
}

// Invite creates a pending invitation for (job, collaborator). A pending
// invitation for the same pair already on file is a conflict, not a second
// invite.
func (u *InvitationLifecycle) Invite(ctx context.Context, jobID, collaboratorContact string) (entities.Invitation, error) {
	jobID = strings.TrimSpace(jobID)
	collaboratorContact = strings.TrimSpace(collaboratorContact)
	if jobID == "" {
		return entities.Invitation{}, ErrInvalidJobID
	}
	if collaboratorContact == "" {
		return entities.Invitation{}, ErrInvalidCollaboratorContact
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Invitation{}, err
	}
	if job.ID == "" {
		return entities.Invitation{}, ErrJobNotFound
	}

	existing, err := u.invitations.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Invitation{}, err
	}
	for _, inv := range existing {
		if inv.CollaboratorContact == collaboratorContact && !inv.Terminal() {
			return entities.Invitation{}, ErrDuplicateInvitation
		}
	}

	now := time.Now().UTC()
	inv := entities.Invitation{
		ID:                  uuid.NewString(),
		JobID:               job.ID,
		OwnerContact:        job.OwnerContact,
		CollaboratorContact: collaboratorContact,
		Status:              entities.InvitationStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	created, err := u.invitations.Create(ctx, inv)
	if err != nil {
		return entities.Invitation{}, err
	}

	job.InvitedCollaborators = append(job.InvitedCollaborators, entities.CollaboratorLink{
		CollaboratorContact: collaboratorContact,
		Status:              entities.CollaboratorStatusPending,
		InvitationID:        created.ID,
	})
	job.UpdatedAt = now
	if _, err := u.jobs.Save(ctx, job); err != nil {
		if delErr := u.invitations.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[invitations] invite job=%s: rollback of invitation %s failed: %v", jobID, created.ID, delErr)
		}
		return entities.Invitation{}, fmt.Errorf("%w: recording invite on job: %v", ErrPartialFailure, err)
	}

	u.publishInvitationChange(ctx, created.ID)
	u.publishJobChange(ctx, job.ID)
	return created, nil
}

// Accept promotes a pending invitation into a live share. The collaborator's
// copy is restricted: schedule, title, client and location are copied, while
// cost, estimate links, invoice link and notes never leave the owner's
// document. The copy starts with no work sessions.
func (u *InvitationLifecycle) Accept(ctx context.Context, invitationID, acceptingIdentity string) (AcceptResult, error) {
	invitationID = strings.TrimSpace(invitationID)
	acceptingIdentity = strings.TrimSpace(acceptingIdentity)
	if invitationID == "" {
		return AcceptResult{}, ErrInvalidInvitationID
	}
	if acceptingIdentity == "" {
		return AcceptResult{}, ErrInvalidCollaboratorIdentity
	}

	inv, err := u.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return AcceptResult{}, err
	}
	if inv.ID == "" {
		return AcceptResult{}, ErrInvitationNotFound
	}
	if inv.Status != entities.InvitationStatusPending {
		return AcceptResult{}, ErrInvitationNotPending
	}

	ownerJob, err := u.jobs.GetByID(ctx, inv.JobID)
	if err != nil {
		return AcceptResult{}, err
	}
	if ownerJob.ID == "" {
		return AcceptResult{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	shared, err := u.jobs.Create(ctx, restrictedCopy(ownerJob, inv, acceptingIdentity, now))
	if err != nil {
		return AcceptResult{}, err
	}

	inv.Status = entities.InvitationStatusAccepted
	inv.AcceptedCollaboratorID = acceptingIdentity
	inv.SharedJobID = shared.ID
	inv.UpdatedAt = now
	if _, err := u.invitations.Save(ctx, inv); err != nil {
		if delErr := u.jobs.Delete(ctx, shared.ID); delErr != nil {
			log.Printf("[invitations] accept %s: rollback of shared copy %s failed: %v", invitationID, shared.ID, delErr)
		}
		return AcceptResult{}, fmt.Errorf("%w: marking invitation accepted: %v", ErrPartialFailure, err)
	}

	matched := false
	for i := range ownerJob.InvitedCollaborators {
		if ownerJob.InvitedCollaborators[i].InvitationID == inv.ID {
			ownerJob.InvitedCollaborators[i].Status = entities.CollaboratorStatusAccepted
			ownerJob.InvitedCollaborators[i].SharedJobID = shared.ID
			matched = true
		}
	}
	if !matched {
		ownerJob.InvitedCollaborators = append(ownerJob.InvitedCollaborators, entities.CollaboratorLink{
			CollaboratorContact: inv.CollaboratorContact,
			Status:              entities.CollaboratorStatusAccepted,
			SharedJobID:         shared.ID,
			InvitationID:        inv.ID,
		})
	}
	ownerJob.UpdatedAt = now
	if _, err := u.jobs.Save(ctx, ownerJob); err != nil {
		inv.Status = entities.InvitationStatusPending
		inv.AcceptedCollaboratorID = ""
		inv.SharedJobID = ""
		if _, revErr := u.invitations.Save(ctx, inv); revErr != nil {
			log.Printf("[invitations] accept %s: reverting invitation failed: %v", invitationID, revErr)
		}
		if delErr := u.jobs.Delete(ctx, shared.ID); delErr != nil {
			log.Printf("[invitations] accept %s: rollback of shared copy %s failed: %v", invitationID, shared.ID, delErr)
		}
		return AcceptResult{}, fmt.Errorf("%w: recording acceptance on owner job: %v", ErrPartialFailure, err)
	}

	u.publishInvitationChange(ctx, inv.ID)
	u.publishJobChange(ctx, ownerJob.ID)
	u.publishJobChange(ctx, shared.ID)
	return AcceptResult{Invitation: inv, SharedJob: shared}, nil
}

// Reject moves a pending invitation to its terminal rejected state. No job
// copy is created.
func (u *InvitationLifecycle) Reject(ctx context.Context, invitationID string) (entities.Invitation, error) {
	invitationID = strings.TrimSpace(invitationID)
	if invitationID == "" {
		return entities.Invitation{}, ErrInvalidInvitationID
	}

	inv, err := u.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return entities.Invitation{}, err
	}
	if inv.ID == "" {
		return entities.Invitation{}, ErrInvitationNotFound
	}
	if inv.Status != entities.InvitationStatusPending {
		return entities.Invitation{}, ErrInvitationNotPending
	}

	inv.Status = entities.InvitationStatusRejected
	inv.UpdatedAt = time.Now().UTC()
	saved, err := u.invitations.Save(ctx, inv)
	if err != nil {
		return entities.Invitation{}, err
	}

	if job, err := u.jobs.GetByID(ctx, inv.JobID); err == nil && job.ID != "" {
		for i := range job.InvitedCollaborators {
			if job.InvitedCollaborators[i].InvitationID == inv.ID {
				job.InvitedCollaborators[i].Status = entities.CollaboratorStatusRejected
			}
		}
		job.UpdatedAt = time.Now().UTC()
		if _, err := u.jobs.Save(ctx, job); err != nil {
			log.Printf("[invitations] reject %s: recording rejection on job %s failed: %v", invitationID, job.ID, err)
		} else {
			u.publishJobChange(ctx, job.ID)
		}
	}

	u.publishInvitationChange(ctx, saved.ID)
	return saved, nil
}

func (u *InvitationLifecycle) GetByID(ctx context.Context, id string) (entities.Invitation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invitation{}, ErrInvalidInvitationID
	}

	inv, err := u.invitations.GetByID(ctx, id)
	if err != nil {
		return entities.Invitation{}, err
	}
	if inv.ID == "" {
		return entities.Invitation{}, ErrInvitationNotFound
	}
	return inv, nil
}

func (u *InvitationLifecycle) ListForCollaborator(ctx context.Context, collaboratorContact string) ([]entities.Invitation, error) {
	collaboratorContact = strings.TrimSpace(collaboratorContact)
	if collaboratorContact == "" {
		return nil, ErrInvalidCollaboratorContact
	}
	return u.invitations.ListByCollaborator(ctx, collaboratorContact)
}

// restrictedCopy builds the collaborator-side job: a least-privilege subset.
// The collaborator can clock in and see where and when, never what it costs.
func restrictedCopy(ownerJob entities.Job, inv entities.Invitation, acceptingIdentity string, now time.Time) entities.Job {
	return entities.Job{
		ID:                 uuid.NewString(),
		OwnerContact:       acceptingIdentity,
		Title:              ownerJob.Title,
		Client:             ownerJob.Client,
		Location:           ownerJob.Location,
		Status:             ownerJob.Status,
		ScheduledAt:        ownerJob.ScheduledAt,
		IsSharedCopy:       true,
		SourceJobID:        ownerJob.ID,
		SourceInvitationID: inv.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (u *InvitationLifecycle) publishInvitationChange(ctx context.Context, id string) {
	if u.feed == nil {
		return
	}
	event := interfaces.ChangeEvent{
		Collection: interfaces.CollectionInvitations,
		ID:         id,
		Kind:       interfaces.ChangeKindUpdated,
		At:         time.Now().UTC(),
	}
	if err := u.feed.Publish(ctx, event); err != nil {
		log.Printf("[invitations] publish change invitation=%s failed: %v", id, err)
	}
}

func (u *InvitationLifecycle) publishJobChange(ctx context.Context, id string) {
	if u.feed == nil {
		return
	}
	event := interfaces.ChangeEvent{
		Collection: interfaces.CollectionJobs,
		ID:         id,
		Kind:       interfaces.ChangeKindUpdated,
		At:         time.Now().UTC(),
	}
	if err := u.feed.Publish(ctx, event); err != nil {
		log.Printf("[invitations] publish change job=%s failed: %v", id, err)
	}
}
