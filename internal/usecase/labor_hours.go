package usecase

import (
	"context"
	"log"
	"strings"

	"jobdesk/internal/usecase/interfaces"
)

// LaborBreakdownEntry is one party's contribution to a job's worked hours.
type LaborBreakdownEntry struct {
	Contact string  `json:"contact"`
	Hours   float64 `json:"hours"`
	IsOwner bool    `json:"is_owner"`
}

// LaborSummary is the aggregated worked-hours view of a job.
type LaborSummary struct {
	TotalHours        float64               `json:"total_hours"`
	OwnerHours        float64               `json:"owner_hours"`
	CollaboratorHours float64               `json:"collaborator_hours"`
	Breakdown         []LaborBreakdownEntry `json:"breakdown"`
}

// ILaborHoursAggregator folds work sessions recorded independently by the
// owner and every accepted collaborator into one consistent total.
//
// On a shared copy the computation covers only that collaborator's own
// sessions; collaborators never see teammates' totals. A collaborator whose
// invitation cannot be resolved contributes zero and is omitted from the
// breakdown; the failure is logged, not raised.

type ILaborHoursAggregator interface {
	ComputeTotal(ctx context.Context, jobID string) (LaborSummary, error)
	SubscribeTotal(ctx context.Context, jobID string, onUpdate func(LaborSummary)) (func(), error)
}

type LaborHoursAggregator struct {
	jobs        interfaces.IJobRepository
	invitations interfaces.IInvitationRepository
	feed        interfaces.IChangeFeed
}

var _ ILaborHoursAggregator = (*LaborHoursAggregator)(nil)

func NewLaborHoursAggregator(jobs interfaces.IJobRepository, invitations interfaces.IInvitationRepository, feed interfaces.IChangeFeed) *LaborHoursAggregator {
	return &LaborHoursAggregator{jobs: jobs, invitations: invitations, feed: feed}
}

// ComputeTotal re-derives the full summary from source records on every call.
func (u *LaborHoursAggregator) ComputeTotal(ctx context.Context, jobID string) (LaborSummary, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return LaborSummary{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return LaborSummary{}, err
	}
	if job.ID == "" {
		return LaborSummary{}, ErrJobNotFound
	}

	ownHours := job.OwnSessionHours()
	summary := LaborSummary{
		TotalHours: ownHours,
		OwnerHours: ownHours,
		Breakdown: []LaborBreakdownEntry{
			{Contact: job.OwnerContact, Hours: ownHours, IsOwner: true},
		},
	}
	if job.IsSharedCopy {
		return summary, nil
	}

	for _, link := range job.AcceptedCollaborators() {
		inv, err := u.invitations.GetByID(ctx, link.InvitationID)
		if err != nil || inv.ID == "" {
			log.Printf("[labor] job=%s: resolving invitation %s failed: %v", jobID, link.InvitationID, err)
			continue
		}
		if inv.AcceptedCollaboratorID == "" {
			log.Printf("[labor] job=%s: invitation %s has no accepted identity; skipping", jobID, inv.ID)
			continue
		}
		sharedJobID := link.SharedJobID
		if sharedJobID == "" {
			sharedJobID = inv.SharedJobID
		}
		copyJob, err := u.jobs.GetByID(ctx, sharedJobID)
		if err != nil || copyJob.ID == "" {
			log.Printf("[labor] job=%s: shared copy %s unavailable: %v", jobID, sharedJobID, err)
			continue
		}

		hours := copyJob.OwnSessionHours()
		summary.TotalHours += hours
		summary.CollaboratorHours += hours
		summary.Breakdown = append(summary.Breakdown, LaborBreakdownEntry{
			Contact: inv.CollaboratorContact,
			Hours:   hours,
		})
	}
	return summary, nil
}

// SubscribeTotal watches the job's document plus every accepted
// collaborator's shared copy; any change on any of them triggers a full
// recompute. The initial summary is delivered immediately. The returned
// func cancels all held subscriptions.
func (u *LaborHoursAggregator) SubscribeTotal(ctx context.Context, jobID string, onUpdate func(LaborSummary)) (func(), error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ID == "" {
		return nil, ErrJobNotFound
	}

	watched := []string{job.ID}
	if !job.IsSharedCopy {
		for _, link := range job.AcceptedCollaborators() {
			if link.SharedJobID != "" {
				watched = append(watched, link.SharedJobID)
			}
		}
	}

	recompute := func(interfaces.ChangeEvent) {
		summary, err := u.ComputeTotal(ctx, jobID)
		if err != nil {
			log.Printf("[labor] job=%s: recompute failed: %v", jobID, err)
			return
		}
		onUpdate(summary)
	}

	unsubscribes := make([]func(), 0, len(watched))
	unsubscribeAll := func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}
	for _, id := range watched {
		unsubscribe, err := u.feed.Subscribe(ctx, interfaces.CollectionJobs, id, recompute)
		if err != nil {
			unsubscribeAll()
			return nil, err
		}
		unsubscribes = append(unsubscribes, unsubscribe)
	}

	if summary, err := u.ComputeTotal(ctx, jobID); err == nil {
		onUpdate(summary)
	}
	return unsubscribeAll, nil
}
