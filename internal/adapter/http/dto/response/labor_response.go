package response

import "jobdesk/internal/usecase"

type LaborBreakdownResponse struct {
	Contact string  `json:"contact"`
	Hours   float64 `json:"hours"`
	IsOwner bool    `json:"is_owner"`
}

type LaborSummaryResponse struct {
	JobID             string                   `json:"job_id"`
	TotalHours        float64                  `json:"total_hours"`
	OwnerHours        float64                  `json:"owner_hours"`
	CollaboratorHours float64                  `json:"collaborator_hours"`
	Breakdown         []LaborBreakdownResponse `json:"breakdown"`
}

func FromLaborSummary(jobID string, s usecase.LaborSummary) LaborSummaryResponse {
	breakdown := make([]LaborBreakdownResponse, 0, len(s.Breakdown))
	for _, entry := range s.Breakdown {
		breakdown = append(breakdown, LaborBreakdownResponse{
			Contact: entry.Contact,
			Hours:   entry.Hours,
			IsOwner: entry.IsOwner,
		})
	}
	return LaborSummaryResponse{
		JobID:             jobID,
		TotalHours:        s.TotalHours,
		OwnerHours:        s.OwnerHours,
		CollaboratorHours: s.CollaboratorHours,
		Breakdown:         breakdown,
	}
}
