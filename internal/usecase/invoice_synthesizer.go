package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound            = errors.New("invoice not found")
	ErrInvoiceAlreadyMaterialized = errors.New("invoice already materialized for job")
	ErrEmptyInvoiceDraft          = errors.New("invoice draft has no line items")
	ErrInvalidInvoiceID           = errors.New("invalid invoice id")
)

// InvoiceDraft is a derived, not yet persisted invoice. Total is recomputed
// from the lines, never copied from the job's aggregate cost; under the
// aggregation invariant the two agree.
type InvoiceDraft struct {
	JobID        string              `json:"job_id"`
	OwnerContact string              `json:"owner_contact"`
	Client       string              `json:"client"`
	Date         time.Time           `json:"date"`
	LineItems    []entities.LineItem `json:"line_items"`
	Total        float64             `json:"total"`
}

// IInvoiceSynthesizer derives invoice drafts from a job's linked estimates
// and materializes them with a per-owner sequence number.

type IInvoiceSynthesizer interface {
	Synthesize(ctx context.Context, jobID string) (InvoiceDraft, error)
	Materialize(ctx context.Context, draft InvoiceDraft) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByOwner(ctx context.Context, ownerContact string) ([]entities.Invoice, error)
}

type InvoiceSynthesizer struct {
	jobs      interfaces.IJobRepository
	estimates interfaces.IEstimateRepository
	invoices  interfaces.IInvoiceRepository
	feed      interfaces.IChangeFeed
}

var _ IInvoiceSynthesizer = (*InvoiceSynthesizer)(nil)

func NewInvoiceSynthesizer(jobs interfaces.IJobRepository, estimates interfaces.IEstimateRepository, invoices interfaces.IInvoiceRepository, feed interfaces.IChangeFeed) *InvoiceSynthesizer {
	return &InvoiceSynthesizer{jobs: jobs, estimates: estimates, invoices: invoices, feed: feed}
}

// Synthesize builds the draft line items for a job: one quantity-1 labor line
// per linked estimate plus one line per material. A job with no linked
// estimates but a nonzero flat cost yields a single line covering the full
// amount. Estimates that can no longer be resolved are skipped.
func (u *InvoiceSynthesizer) Synthesize(ctx context.Context, jobID string) (InvoiceDraft, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return InvoiceDraft{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return InvoiceDraft{}, err
	}
	if job.ID == "" {
		return InvoiceDraft{}, ErrJobNotFound
	}

	lines := make([]entities.LineItem, 0, len(job.EstimateIDs)*2)
	for _, estimateID := range job.EstimateIDs {
		est, err := u.estimates.GetByID(ctx, estimateID)
		if err != nil {
			log.Printf("[invoices] synthesize job=%s: resolving estimate %s failed: %v", jobID, estimateID, err)
			continue
		}
		if est.ID == "" {
			continue
		}
		lines = append(lines, estimateLineItems(est)...)
	}

	if len(lines) == 0 {
		if flat := parseDecimal(job.EstimatedCost); flat > 0 {
			lines = append(lines, entities.LineItem{
				Description: fmt.Sprintf("%s (estimated)", job.Title),
				Quantity:    1,
				Rate:        flat,
			})
		}
	}

	draft := InvoiceDraft{
		JobID:        job.ID,
		OwnerContact: job.OwnerContact,
		Client:       job.Client,
		Date:         time.Now().UTC(),
		LineItems:    lines,
	}
	for _, li := range lines {
		draft.Total += li.Quantity * li.Rate
	}
	return draft, nil
}

// Materialize assigns the owner's next invoice number, persists the invoice
// and links it on the job. A job that already carries an invoice link fails
// with ErrInvoiceAlreadyMaterialized; the caller fetches the existing invoice
// instead. A failed job-link write deletes the persisted invoice again (the
// burned sequence number is not reclaimed).
func (u *InvoiceSynthesizer) Materialize(ctx context.Context, draft InvoiceDraft) (entities.Invoice, error) {
	if strings.TrimSpace(draft.JobID) == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}
	if len(draft.LineItems) == 0 {
		return entities.Invoice{}, ErrEmptyInvoiceDraft
	}

	job, err := u.jobs.GetByID(ctx, draft.JobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if job.ID == "" {
		return entities.Invoice{}, ErrJobNotFound
	}
	if job.InvoiceID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyMaterialized
	}

	number, err := u.invoices.NextInvoiceNumber(ctx, job.OwnerContact)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv := entities.Invoice{
		ID:            uuid.NewString(),
		OwnerContact:  job.OwnerContact,
		JobID:         job.ID,
		InvoiceNumber: number,
		Client:        draft.Client,
		Date:          draft.Date,
		LineItems:     draft.LineItems,
		Status:        entities.InvoiceStatusDraft,
		CreatedAt:     time.Now().UTC(),
	}
	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	job.InvoiceID = created.ID
	job.UpdatedAt = time.Now().UTC()
	if _, err := u.jobs.Save(ctx, job); err != nil {
		if delErr := u.invoices.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[invoices] materialize job=%s: rollback of invoice %s failed: %v", job.ID, created.ID, delErr)
		}
		return entities.Invoice{}, fmt.Errorf("%w: linking invoice to job: %v", ErrPartialFailure, err)
	}

	u.publishChange(ctx, created.ID)
	return created, nil
}

func (u *InvoiceSynthesizer) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceSynthesizer) ListByOwner(ctx context.Context, ownerContact string) ([]entities.Invoice, error) {
	ownerContact = strings.TrimSpace(ownerContact)
	if ownerContact == "" {
		return nil, ErrInvalidOwnerContact
	}
	return u.invoices.ListByOwner(ctx, ownerContact)
}

func (u *InvoiceSynthesizer) publishChange(ctx context.Context, id string) {
	if u.feed == nil {
		return
	}
	event := interfaces.ChangeEvent{
		Collection: interfaces.CollectionInvoices,
		ID:         id,
		Kind:       interfaces.ChangeKindUpdated,
		At:         time.Now().UTC(),
	}
	if err := u.feed.Publish(ctx, event); err != nil {
		log.Printf("[invoices] publish change invoice=%s failed: %v", id, err)
	}
}

// estimateLineItems flattens one estimate into invoice lines. Legacy records
// with neither labor nor materials collapse into a single full-amount line.
func estimateLineItems(est entities.Estimate) []entities.LineItem {
	if est.LaborAmount() == 0 && len(est.Materials) == 0 {
		if flat := est.EffectiveTotal(); flat > 0 {
			return []entities.LineItem{{Description: est.Name, Quantity: 1, Rate: flat}}
		}
		return nil
	}

	lines := make([]entities.LineItem, 0, len(est.Materials)+1)
	if est.LaborAmount() > 0 {
		lines = append(lines, entities.LineItem{
			Description: fmt.Sprintf("%s labor", est.Name),
			Quantity:    1,
			Rate:        est.LaborAmount(),
		})
	}
	for _, m := range est.Materials {
		lines = append(lines, entities.LineItem{
			Description: m.Name,
			Quantity:    m.Quantity,
			Rate:        m.UnitCost,
		})
	}
	return lines
}

func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
