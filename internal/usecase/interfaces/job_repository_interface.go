package interfaces

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Save writes the whole document (conflict policy is last-write-wins at
// document granularity). A missing record is reported as a zero-value Job
// with a nil error; callers map that to their own not-found sentinel.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Save(ctx context.Context, j entities.Job) (entities.Job, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerContact string) ([]entities.Job, error)
}
