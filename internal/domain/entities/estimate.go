package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusSent     EstimateStatus = "sent"
)

// Material is one priced line of an estimate.
type Material struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// Estimate is a priced quote, optionally backreferencing the job it is
// linked to via JobID.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_contact-index): owner_contact
//   - GSI2 (job_id-index): job_id
//
// Total is owner-computed at write time (ComputeTotal) and only changes
// through an explicit update that recomputes it. LegacyEstimatedCost carries
// the pre-migration field for records written before Total existed; readers
// must go through EffectiveTotal rather than touching either field directly.
type Estimate struct {
	ID                  string         `json:"id"`
	OwnerContact        string         `json:"owner_contact"`
	JobID               string         `json:"job_id,omitempty"`
	Name                string         `json:"name"`
	Client              string         `json:"client,omitempty"`
	Location            string         `json:"location,omitempty"`
	LaborHours          float64        `json:"labor_hours"`
	LaborRate           float64        `json:"labor_rate"`
	Materials           []Material     `json:"materials,omitempty"`
	Total               float64        `json:"total"`
	LegacyEstimatedCost float64        `json:"estimated_cost,omitempty"`
	Status              EstimateStatus `json:"status"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// ComputeTotal derives the estimate total from labor and materials.
func (e Estimate) ComputeTotal() float64 {
	total := e.LaborHours * e.LaborRate
	for _, m := range e.Materials {
		total += m.Quantity * m.UnitCost
	}
	return total
}

// EffectiveTotal is the single normalization point for the legacy
// estimated-cost fallback.
func (e Estimate) EffectiveTotal() float64 {
	if e.Total != 0 {
		return e.Total
	}
	return e.LegacyEstimatedCost
}

// LaborAmount is the labor portion of the estimate, collapsed to one amount.
func (e Estimate) LaborAmount() float64 {
	return e.LaborHours * e.LaborRate
}
