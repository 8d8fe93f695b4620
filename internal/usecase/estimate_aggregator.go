package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"
)

var (
	ErrJobNotFound           = errors.New("job not found")
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyLinked = errors.New("estimate already linked")
	ErrInvalidJobID          = errors.New("invalid job id")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
)

// IEstimateAggregator keeps Job.EstimatedCost consistent with the job's
// linked estimate set.
//
// RecomputeJobCost is the only writer of EstimatedCost. It re-derives the
// full sum from source records on every call, so overlapping invocations for
// the same job are idempotent and convergent; the worst race outcome is a
// stale write superseded by the next recompute.

type IEstimateAggregator interface {
	LinkEstimate(ctx context.Context, jobID, estimateID string) (entities.Job, error)
	UnlinkEstimate(ctx context.Context, jobID, estimateID string) (entities.Job, error)
	RecomputeJobCost(ctx context.Context, jobID string) (entities.Job, error)
}

type EstimateAggregator struct {
	jobs      interfaces.IJobRepository
	estimates interfaces.IEstimateRepository
	feed      interfaces.IChangeFeed
}

var _ IEstimateAggregator = (*EstimateAggregator)(nil)

func NewEstimateAggregator(jobs interfaces.IJobRepository, estimates interfaces.IEstimateRepository, feed interfaces.IChangeFeed) *EstimateAggregator {
	return &EstimateAggregator{jobs: jobs, estimates: estimates, feed: feed}
}

// RecomputeJobCost reads the job's current estimate set, sums the totals of
// the estimates that still exist and writes the sum back. Estimates that can
// no longer be resolved contribute zero; they are logged, not raised.
func (u *EstimateAggregator) RecomputeJobCost(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	total := 0.0
	for _, estimateID := range job.EstimateIDs {
		est, err := u.estimates.GetByID(ctx, estimateID)
		if err != nil {
			log.Printf("[aggregator] recompute job=%s: resolving estimate %s failed: %v", jobID, estimateID, err)
			continue
		}
		if est.ID == "" {
			// Deleted while still linked: contributes zero.
			continue
		}
		total += est.EffectiveTotal()
	}

	job.EstimatedCost = decimalString(total)
	job.UpdatedAt = time.Now().UTC()

	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}
	u.publishJobChange(ctx, saved.ID)
	return saved, nil
}

// LinkEstimate appends estimateID to the job's estimate set, sets the
// estimate's backreference and recomputes the job cost. When the linked
// estimate is the job's first, empty display fields are backfilled from the
// estimate; populated fields are never overwritten.
func (u *EstimateAggregator) LinkEstimate(ctx context.Context, jobID, estimateID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	estimateID = strings.TrimSpace(estimateID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if estimateID == "" {
		return entities.Job{}, ErrInvalidEstimateID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.HasEstimate(estimateID) {
		return entities.Job{}, ErrEstimateAlreadyLinked
	}

	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Job{}, err
	}
	if est.ID == "" {
		return entities.Job{}, ErrEstimateNotFound
	}

	job.EstimateIDs = append(job.EstimateIDs, estimateID)
	if len(job.EstimateIDs) == 1 {
		backfillJobDisplayFields(&job, est)
	}
	job.UpdatedAt = time.Now().UTC()
	if _, err := u.jobs.Save(ctx, job); err != nil {
		return entities.Job{}, err
	}

	if est.JobID != job.ID {
		est.JobID = job.ID
		est.UpdatedAt = time.Now().UTC()
		if _, err := u.estimates.Save(ctx, est); err != nil {
			// The backreference is advisory; the estimate set on the job is
			// authoritative and the next recompute still finds the estimate.
			log.Printf("[aggregator] link job=%s estimate=%s: backreference write failed: %v", jobID, estimateID, err)
		}
	}

	return u.RecomputeJobCost(ctx, jobID)
}

// UnlinkEstimate removes estimateID from the job's estimate set and
// recomputes. Removing an id that is not linked is a no-op, not an error.
func (u *EstimateAggregator) UnlinkEstimate(ctx context.Context, jobID, estimateID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	estimateID = strings.TrimSpace(estimateID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if estimateID == "" {
		return entities.Job{}, ErrInvalidEstimateID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !job.HasEstimate(estimateID) {
		return job, nil
	}

	kept := make([]string, 0, len(job.EstimateIDs)-1)
	for _, id := range job.EstimateIDs {
		if id != estimateID {
			kept = append(kept, id)
		}
	}
	job.EstimateIDs = kept
	job.UpdatedAt = time.Now().UTC()
	if _, err := u.jobs.Save(ctx, job); err != nil {
		return entities.Job{}, err
	}

	if est, err := u.estimates.GetByID(ctx, estimateID); err == nil && est.ID != "" && est.JobID == jobID {
		est.JobID = ""
		est.UpdatedAt = time.Now().UTC()
		if _, err := u.estimates.Save(ctx, est); err != nil {
			log.Printf("[aggregator] unlink job=%s estimate=%s: backreference clear failed: %v", jobID, estimateID, err)
		}
	}

	return u.RecomputeJobCost(ctx, jobID)
}

func (u *EstimateAggregator) publishJobChange(ctx context.Context, jobID string) {
	if u.feed == nil {
		return
	}
	event := interfaces.ChangeEvent{
		Collection: interfaces.CollectionJobs,
		ID:         jobID,
		Kind:       interfaces.ChangeKindUpdated,
		At:         time.Now().UTC(),
	}
	if err := u.feed.Publish(ctx, event); err != nil {
		log.Printf("[aggregator] publish job change job=%s failed: %v", jobID, err)
	}
}

func backfillJobDisplayFields(job *entities.Job, est entities.Estimate) {
	if job.Title == "" {
		job.Title = est.Name
	}
	if job.Client == "" {
		job.Client = est.Client
	}
	if job.Location == "" {
		job.Location = est.Location
	}
}

// decimalString renders a money amount the way the records store it: a
// plain decimal with no trailing zeros ("120", "150.5").
func decimalString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
