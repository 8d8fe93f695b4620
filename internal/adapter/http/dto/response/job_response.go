package response

import (
	"time"

	"jobdesk/internal/domain/entities"
)

type WorkSessionResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Hours float64   `json:"hours"`
}

type CollaboratorLinkResponse struct {
	CollaboratorContact string `json:"collaborator_contact"`
	Status              string `json:"status"`
	SharedJobID         string `json:"shared_job_id,omitempty"`
	InvitationID        string `json:"invitation_id"`
}

type JobResponse struct {
	ID                   string                     `json:"id"`
	OwnerContact         string                     `json:"owner_contact"`
	Title                string                     `json:"title"`
	Client               string                     `json:"client,omitempty"`
	Location             string                     `json:"location,omitempty"`
	Status               string                     `json:"status"`
	ScheduledAt          time.Time                  `json:"scheduled_at,omitempty"`
	Notes                string                     `json:"notes,omitempty"`
	EstimateIDs          []string                   `json:"estimate_ids,omitempty"`
	EstimatedCost        string                     `json:"estimated_cost,omitempty"`
	InvoiceID            string                     `json:"invoice_id,omitempty"`
	WorkSessions         []WorkSessionResponse      `json:"work_sessions,omitempty"`
	ClockedIn            bool                       `json:"clocked_in"`
	CurrentSessionStart  time.Time                  `json:"current_session_start,omitempty"`
	InvitedCollaborators []CollaboratorLinkResponse `json:"invited_collaborators,omitempty"`
	IsSharedCopy         bool                       `json:"is_shared_copy"`
	SourceJobID          string                     `json:"source_job_id,omitempty"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

type ClockStateResponse struct {
	JobID               string    `json:"job_id"`
	ClockedIn           bool      `json:"clocked_in"`
	CurrentSessionStart time.Time `json:"current_session_start,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	sessions := make([]WorkSessionResponse, 0, len(j.WorkSessions))
	for _, s := range j.WorkSessions {
		sessions = append(sessions, WorkSessionResponse{Start: s.Start, End: s.End, Hours: s.Hours()})
	}
	links := make([]CollaboratorLinkResponse, 0, len(j.InvitedCollaborators))
	for _, c := range j.InvitedCollaborators {
		links = append(links, CollaboratorLinkResponse{
			CollaboratorContact: c.CollaboratorContact,
			Status:              string(c.Status),
			SharedJobID:         c.SharedJobID,
			InvitationID:        c.InvitationID,
		})
	}
	return JobResponse{
		ID:                   j.ID,
		OwnerContact:         j.OwnerContact,
		Title:                j.Title,
		Client:               j.Client,
		Location:             j.Location,
		Status:               string(j.Status),
		ScheduledAt:          j.ScheduledAt,
		Notes:                j.Notes,
		EstimateIDs:          j.EstimateIDs,
		EstimatedCost:        j.EstimatedCost,
		InvoiceID:            j.InvoiceID,
		WorkSessions:         sessions,
		ClockedIn:            j.ClockedIn,
		CurrentSessionStart:  j.CurrentSessionStart,
		InvitedCollaborators: links,
		IsSharedCopy:         j.IsSharedCopy,
		SourceJobID:          j.SourceJobID,
		CreatedAt:            j.CreatedAt,
		UpdatedAt:            j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
