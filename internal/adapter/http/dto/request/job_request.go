package request

import (
	"strings"
	"time"
)

// JobRequest is the owner-facing payload for creating a job.
type JobRequest struct {
	Title         string    `json:"title" binding:"required"`
	Client        string    `json:"client"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	EstimatedCost string    `json:"estimated_cost"`
}

// JobUpdateRequest is the partial-update payload; empty fields are kept as-is.
type JobUpdateRequest struct {
	Title         string    `json:"title"`
	Client        string    `json:"client"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	EstimatedCost string    `json:"estimated_cost"`
}

// ClockRequest carries an optional explicit timestamp; a zero value means
// "now".
type ClockRequest struct {
	At time.Time `json:"at"`
}

func (r JobRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}
