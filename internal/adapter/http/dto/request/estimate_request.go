package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMaterial = errors.New("invalid material line")
)

type MaterialRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// EstimateRequest is the payload for creating or updating an estimate. The
// total is never accepted on the wire; it is derived server-side from labor
// and materials.
type EstimateRequest struct {
	Name       string            `json:"name" binding:"required"`
	Client     string            `json:"client"`
	Location   string            `json:"location"`
	JobID      string            `json:"job_id"`
	LaborHours float64           `json:"labor_hours"`
	LaborRate  float64           `json:"labor_rate"`
	Materials  []MaterialRequest `json:"materials"`
	Status     string            `json:"status"`
}

// EstimateUpdateRequest relaxes the required fields for partial updates.
type EstimateUpdateRequest struct {
	Name       string            `json:"name"`
	Client     string            `json:"client"`
	Location   string            `json:"location"`
	LaborHours float64           `json:"labor_hours"`
	LaborRate  float64           `json:"labor_rate"`
	Materials  []MaterialRequest `json:"materials"`
	Status     string            `json:"status"`
}

func (r EstimateRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

// ValidateMaterials rejects negative quantities and costs before the payload
// reaches the use case.
func ValidateMaterials(materials []MaterialRequest) error {
	for _, m := range materials {
		if strings.TrimSpace(m.Name) == "" || m.Quantity < 0 || m.UnitCost < 0 {
			return ErrInvalidMaterial
		}
	}
	return nil
}
