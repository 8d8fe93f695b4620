package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"
)

var (
	ErrInvalidOwnerContact  = errors.New("invalid owner contact")
	ErrInvalidEstimateName  = errors.New("invalid estimate name")
	ErrInvalidEstimateInput = errors.New("invalid estimate input")
)

// EstimateInput carries the owner-editable fields of an estimate. The total
// is never accepted from callers; it is recomputed on every write.
type EstimateInput struct {
	Name       string
	Client     string
	Location   string
	JobID      string
	LaborHours float64
	LaborRate  float64
	Materials  []entities.Material
	Status     entities.EstimateStatus
}

// IEstimateUseCase exposes owner CRUD over estimates. Every mutation of an
// estimate carrying a job backreference funnels through the aggregator so the
// owning job's derived cost reconciles within the same logical operation.

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, ownerContact string, in EstimateInput) (entities.Estimate, error)
	UpdateEstimate(ctx context.Context, id string, in EstimateInput) (entities.Estimate, error)
	DeleteEstimate(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByOwner(ctx context.Context, ownerContact string) ([]entities.Estimate, error)
}

type EstimateUseCase struct {
	estimates  interfaces.IEstimateRepository
	aggregator IEstimateAggregator
	feed       interfaces.IChangeFeed
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(estimates interfaces.IEstimateRepository, aggregator IEstimateAggregator, feed interfaces.IChangeFeed) *EstimateUseCase {
	return &EstimateUseCase{estimates: estimates, aggregator: aggregator, feed: feed}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, ownerContact string, in EstimateInput) (entities.Estimate, error) {
	ownerContact = strings.TrimSpace(ownerContact)
	if ownerContact == "" {
		return entities.Estimate{}, ErrInvalidOwnerContact
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Estimate{}, ErrInvalidEstimateName
	}
	if in.LaborHours < 0 || in.LaborRate < 0 {
		return entities.Estimate{}, ErrInvalidEstimateInput
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:           uuid.NewString(),
		OwnerContact: ownerContact,
		JobID:        strings.TrimSpace(in.JobID),
		Name:         strings.TrimSpace(in.Name),
		Client:       strings.TrimSpace(in.Client),
		Location:     strings.TrimSpace(in.Location),
		LaborHours:   in.LaborHours,
		LaborRate:    in.LaborRate,
		Materials:    in.Materials,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if e.Status == "" {
		e.Status = entities.EstimateStatusDraft
	}
	e.Total = e.ComputeTotal()

	created, err := u.estimates.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	u.publishChange(ctx, created.ID, interfaces.ChangeKindUpdated)

	if created.JobID != "" {
		if _, err := u.aggregator.LinkEstimate(ctx, created.JobID, created.ID); err != nil {
			if !errors.Is(err, ErrEstimateAlreadyLinked) {
				return entities.Estimate{}, err
			}
			if _, err := u.aggregator.RecomputeJobCost(ctx, created.JobID); err != nil {
				return entities.Estimate{}, err
			}
		}
	}
	return created, nil
}

// UpdateEstimate rewrites the editable fields and recomputes the total. Job
// links are managed through the aggregator, so the existing backreference is
// kept regardless of in.JobID.
func (u *EstimateUseCase) UpdateEstimate(ctx context.Context, id string, in EstimateInput) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if in.LaborHours < 0 || in.LaborRate < 0 {
		return entities.Estimate{}, ErrInvalidEstimateInput
	}

	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		e.Name = name
	}
	if client := strings.TrimSpace(in.Client); client != "" {
		e.Client = client
	}
	if location := strings.TrimSpace(in.Location); location != "" {
		e.Location = location
	}
	if in.Status != "" {
		e.Status = in.Status
	}
	e.LaborHours = in.LaborHours
	e.LaborRate = in.LaborRate
	e.Materials = in.Materials
	e.Total = e.ComputeTotal()
	e.LegacyEstimatedCost = 0
	e.UpdatedAt = time.Now().UTC()

	saved, err := u.estimates.Save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	u.publishChange(ctx, saved.ID, interfaces.ChangeKindUpdated)

	if saved.JobID != "" {
		if _, err := u.aggregator.RecomputeJobCost(ctx, saved.JobID); err != nil {
			return entities.Estimate{}, err
		}
	}
	return saved, nil
}

// DeleteEstimate removes the estimate, first unlinking it from its job so the
// job's derived cost reconciles in the same logical operation.
func (u *EstimateUseCase) DeleteEstimate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrEstimateNotFound
	}

	if e.JobID != "" {
		if _, err := u.aggregator.UnlinkEstimate(ctx, e.JobID, e.ID); err != nil && !errors.Is(err, ErrJobNotFound) {
			return err
		}
	}

	if err := u.estimates.Delete(ctx, id); err != nil {
		return err
	}
	u.publishChange(ctx, id, interfaces.ChangeKindDeleted)
	return nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByOwner(ctx context.Context, ownerContact string) ([]entities.Estimate, error) {
	ownerContact = strings.TrimSpace(ownerContact)
	if ownerContact == "" {
		return nil, ErrInvalidOwnerContact
	}
	return u.estimates.ListByOwner(ctx, ownerContact)
}

func (u *EstimateUseCase) publishChange(ctx context.Context, id string, kind interfaces.ChangeKind) {
	if u.feed == nil {
		return
	}
	event := interfaces.ChangeEvent{
		Collection: interfaces.CollectionEstimates,
		ID:         id,
		Kind:       kind,
		At:         time.Now().UTC(),
	}
	if err := u.feed.Publish(ctx, event); err != nil {
		log.Printf("[estimates] publish change estimate=%s failed: %v", id, err)
	}
}
