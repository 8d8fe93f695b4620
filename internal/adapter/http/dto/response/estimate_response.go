package response

import (
	"time"

	"jobdesk/internal/domain/entities"
)

type MaterialResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

type EstimateResponse struct {
	ID           string             `json:"id"`
	OwnerContact string             `json:"owner_contact"`
	JobID        string             `json:"job_id,omitempty"`
	Name         string             `json:"name"`
	Client       string             `json:"client,omitempty"`
	Location     string             `json:"location,omitempty"`
	LaborHours   float64            `json:"labor_hours"`
	LaborRate    float64            `json:"labor_rate"`
	Materials    []MaterialResponse `json:"materials,omitempty"`
	Total        float64            `json:"total"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	materials := make([]MaterialResponse, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, MaterialResponse{Name: m.Name, Quantity: m.Quantity, UnitCost: m.UnitCost})
	}
	return EstimateResponse{
		ID:           e.ID,
		OwnerContact: e.OwnerContact,
		JobID:        e.JobID,
		Name:         e.Name,
		Client:       e.Client,
		Location:     e.Location,
		LaborHours:   e.LaborHours,
		LaborRate:    e.LaborRate,
		Materials:    materials,
		Total:        e.EffectiveTotal(),
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
