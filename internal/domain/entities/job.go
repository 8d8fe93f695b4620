package entities

import "time"

// JobStatus represents the scheduling lifecycle of a job.

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
)

// CollaboratorStatus mirrors the invitation state as seen from the owner's job.

type CollaboratorStatus string

const (
	CollaboratorStatusPending  CollaboratorStatus = "pending"
	CollaboratorStatusAccepted CollaboratorStatus = "accepted"
	CollaboratorStatusRejected CollaboratorStatus = "rejected"
)

// WorkSession is a completed clock-in/clock-out interval. A session that is
// still open lives on the Job as CurrentSessionStart + ClockedIn, never as a
// partial entry in WorkSessions.
type WorkSession struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Hours returns the session length in hours, or zero when either endpoint is
// missing.
func (s WorkSession) Hours() float64 {
	if s.Start.IsZero() || s.End.IsZero() {
		return 0
	}
	return s.End.Sub(s.Start).Hours()
}

// CollaboratorLink is one entry in Job.InvitedCollaborators.
type CollaboratorLink struct {
	CollaboratorContact string             `json:"collaborator_contact"`
	Status              CollaboratorStatus `json:"status"`
	SharedJobID         string             `json:"shared_job_id,omitempty"`
	InvitationID        string             `json:"invitation_id"`
}

// Job is the central tracked record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_contact-index): owner_contact
//
// EstimatedCost is a derived aggregate: whenever EstimateIDs is non-empty it
// must equal the sum of the linked estimates' totals, and only the
// aggregator's full recompute writes it. It is a string-encoded decimal so a
// zero value and an absent value stay distinguishable on shared copies.
type Job struct {
	ID            string    `json:"id"`
	OwnerContact  string    `json:"owner_contact"`
	Title         string    `json:"title"`
	Client        string    `json:"client"`
	Location      string    `json:"location"`
	Status        JobStatus `json:"status"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Notes         string    `json:"notes,omitempty"`
	EstimateIDs   []string  `json:"estimate_ids,omitempty"`
	EstimatedCost string    `json:"estimated_cost,omitempty"`
	InvoiceID     string    `json:"invoice_id,omitempty"`

	WorkSessions        []WorkSession `json:"work_sessions,omitempty"`
	ClockedIn           bool          `json:"clocked_in"`
	CurrentSessionStart time.Time     `json:"current_session_start,omitempty"`

	InvitedCollaborators []CollaboratorLink `json:"invited_collaborators,omitempty"`

	// Set only on a collaborator's linked copy.
	IsSharedCopy       bool   `json:"is_shared_copy"`
	SourceJobID        string `json:"source_job_id,omitempty"`
	SourceInvitationID string `json:"source_invitation_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasEstimate reports whether estimateID is already linked.
func (j Job) HasEstimate(estimateID string) bool {
	for _, id := range j.EstimateIDs {
		if id == estimateID {
			return true
		}
	}
	return false
}

// AcceptedCollaborators returns the links whose invitations were accepted.
func (j Job) AcceptedCollaborators() []CollaboratorLink {
	out := make([]CollaboratorLink, 0, len(j.InvitedCollaborators))
	for _, c := range j.InvitedCollaborators {
		if c.Status == CollaboratorStatusAccepted {
			out = append(out, c)
		}
	}
	return out
}

// OwnSessionHours sums the job's completed sessions, skipping any session
// missing an endpoint.
func (j Job) OwnSessionHours() float64 {
	total := 0.0
	for _, s := range j.WorkSessions {
		total += s.Hours()
	}
	return total
}
