package interfaces

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// ListByJobID serves the aggregator's recompute trigger: it must reflect the
// estimates currently bearing the job backreference, not any cached view.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerContact string) ([]entities.Estimate, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error)
}
