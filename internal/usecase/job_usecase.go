package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"
)

var (
	ErrInvalidJobTitle     = errors.New("invalid job title")
	ErrEstimatedCostLocked = errors.New("estimated cost is derived from linked estimates")
	ErrAlreadyClockedIn    = errors.New("already clocked in")
	ErrNotClockedIn        = errors.New("not clocked in")
	ErrInvalidClockOut     = errors.New("clock-out before clock-in")
)

// JobInput carries the owner-editable job fields.
type JobInput struct {
	Title         string
	Client        string
	Location      string
	Notes         string
	Status        entities.JobStatus
	ScheduledAt   time.Time
	EstimatedCost string
}

// IJobUseCase exposes job CRUD plus the clock-in/clock-out flow.

type IJobUseCase interface {
	CreateJob(ctx context.Context, ownerContact string, in JobInput) (entities.Job, error)
	UpdateJob(ctx context.Context, id string, in JobInput) (entities.Job, error)
	DeleteJob(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByOwner(ctx context.Context, ownerContact string) ([]entities.Job, error)
	ClockIn(ctx context.Context, jobID string, at time.Time) (entities.Job, error)
	ClockOut(ctx context.Context, jobID string, at time.Time) (entities.Job, error)
	ClockState(ctx context.Context, jobID string) (bool, time.Time, error)
}

// JobUseCase owns the jobs collection. Clock-in/out is a two-phase write: the
// in-memory projection is updated first so callers see the new clock state
// immediately, then the authoritative record is written; a failed write rolls
// the projection back.
type JobUseCase struct {
	jobs      interfaces.IJobRepository
	estimates interfaces.IEstimateRepository
	invoices  interfaces.IInvoiceRepository
	feed      interfaces.IChangeFeed

	clockMu sync.Mutex
	clock   map[string]clockState
}

type clockState struct {
	clockedIn bool
	start     time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobRepository, estimates interfaces.IEstimateRepository, invoices interfaces.IInvoiceRepository, feed interfaces.IChangeFeed) *JobUseCase {
	return &JobUseCase{
		jobs:      jobs,
		estimates: estimates,
		invoices:  invoices,
		feed:      feed,
		clock:     make(map[string]clockState),
	}
}

func (u *JobUseCase) CreateJob(ctx context.Context, ownerContact string, in JobInput) (entities.Job, error) {
	ownerContact = strings.TrimSpace(ownerContact)
	if ownerContact == "" {
		return entities.Job{}, ErrInvalidOwnerContact
	}
	if strings.TrimSpace(in.Title) == "" {
		return entities.Job{}, ErrInvalidJobTitle
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:            uuid.NewString(),
		OwnerContact:  ownerContact,
		Title:         strings.TrimSpace(in.Title),
		Client:        strings.TrimSpace(in.Client),
		Location:      strings.TrimSpace(in.Location),
		Notes:         in.Notes,
		Status:        in.Status,
		ScheduledAt:   in.ScheduledAt,
		EstimatedCost: strings.TrimSpace(in.EstimatedCost),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if j.Status == "" {
		j.Status = entities.JobStatusScheduled
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	u.publishChange(ctx, created.ID, interfaces.ChangeKindUpdated)
	return created, nil
}

// UpdateJob rewrites the owner-editable fields. EstimatedCost is accepted
// only while no estimates are linked; once the set is non-empty the field is
// derived and direct edits are rejected.
func (u *JobUseCase) UpdateJob(ctx context.Context, id string, in JobInput) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	if cost := strings.TrimSpace(in.EstimatedCost); cost != "" && cost != j.EstimatedCost {
		if len(j.EstimateIDs) > 0 {
			return entities.Job{}, ErrEstimatedCostLocked
		}
		j.EstimatedCost = cost
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		j.Title = title
	}
	if client := strings.TrimSpace(in.Client); client != "" {
		j.Client = client
	}
	if location := strings.TrimSpace(in.Location); location != "" {
		j.Location = location
	}
	if in.Notes != "" {
		j.Notes = in.Notes
	}
	if in.Status != "" {
		j.Status = in.Status
	}
	if !in.ScheduledAt.IsZero() {
		j.ScheduledAt = in.ScheduledAt
	}
	j.UpdatedAt = time.Now().UTC()

	saved, err := u.jobs.Save(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	u.publishChange(ctx, saved.ID, interfaces.ChangeKindUpdated)
	return saved, nil
}

// DeleteJob removes the job after reconciling reverse references: linked
// estimates lose their backreference and a linked invoice loses its job
// link, but neither record is deleted with the job.
func (u *JobUseCase) DeleteJob(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if j.ID == "" {
		return ErrJobNotFound
	}

	linked, err := u.estimates.ListByJobID(ctx, j.ID)
	if err != nil {
		log.Printf("[jobs] delete %s: listing linked estimates failed: %v", id, err)
	}
	for _, est := range linked {
		est.JobID = ""
		est.UpdatedAt = time.Now().UTC()
		if _, err := u.estimates.Save(ctx, est); err != nil {
			log.Printf("[jobs] delete %s: clearing estimate %s backreference failed: %v", id, est.ID, err)
		}
	}

	if j.InvoiceID != "" {
		if inv, err := u.invoices.GetByID(ctx, j.InvoiceID); err == nil && inv.ID != "" {
			inv.JobID = ""
			if _, err := u.invoices.Save(ctx, inv); err != nil {
				log.Printf("[jobs] delete %s: clearing invoice %s backreference failed: %v", id, inv.ID, err)
			}
		}
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		return err
	}

	u.clockMu.Lock()
	delete(u.clock, id)
	u.clockMu.Unlock()

	u.publishChange(ctx, id, interfaces.ChangeKindDeleted)
	return nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListByOwner(ctx context.Context, ownerContact string) ([]entities.Job, error) {
	ownerContact = strings.TrimSpace(ownerContact)
	if ownerContact == "" {
		return nil, ErrInvalidOwnerContact
	}
	return u.jobs.ListByOwner(ctx, ownerContact)
}

// ClockIn opens a session marker on the job. The projection is applied before
// the persistence call resolves and rolled back if it fails.
func (u *JobUseCase) ClockIn(ctx context.Context, jobID string, at time.Time) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	u.clockMu.Lock()
	prev, hadPrev := u.clock[jobID]
	projected := j.ClockedIn
	if hadPrev {
		projected = prev.clockedIn
	}
	if projected {
		u.clockMu.Unlock()
		return entities.Job{}, ErrAlreadyClockedIn
	}
	u.clock[jobID] = clockState{clockedIn: true, start: at}
	u.clockMu.Unlock()

	j.ClockedIn = true
	j.CurrentSessionStart = at
	j.UpdatedAt = time.Now().UTC()
	saved, err := u.jobs.Save(ctx, j)
	if err != nil {
		u.rollbackClock(jobID, prev, hadPrev)
		return entities.Job{}, err
	}

	u.confirmClock(jobID)
	u.publishChange(ctx, saved.ID, interfaces.ChangeKindUpdated)
	return saved, nil
}

// ClockOut closes the open marker into a completed session appended to
// WorkSessions. Sessions are only ever appended as completed pairs.
func (u *JobUseCase) ClockOut(ctx context.Context, jobID string, at time.Time) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !j.ClockedIn || j.CurrentSessionStart.IsZero() {
		return entities.Job{}, ErrNotClockedIn
	}
	if at.Before(j.CurrentSessionStart) {
		return entities.Job{}, ErrInvalidClockOut
	}

	u.clockMu.Lock()
	prev, hadPrev := u.clock[jobID]
	u.clock[jobID] = clockState{}
	u.clockMu.Unlock()

	j.WorkSessions = append(j.WorkSessions, entities.WorkSession{Start: j.CurrentSessionStart, End: at})
	j.ClockedIn = false
	j.CurrentSessionStart = time.Time{}
	j.UpdatedAt = time.Now().UTC()
	saved, err := u.jobs.Save(ctx, j)
	if err != nil {
		u.rollbackClock(jobID, prev, hadPrev)
		return entities.Job{}, err
	}

	u.confirmClock(jobID)
	u.publishChange(ctx, saved.ID, interfaces.ChangeKindUpdated)
	return saved, nil
}

// ClockState reports the effective clock state: the in-flight projection when
// one exists, the authoritative record otherwise.
func (u *JobUseCase) ClockState(ctx context.Context, jobID string) (bool, time.Time, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return false, time.Time{}, ErrInvalidJobID
	}

	u.clockMu.Lock()
	state, projected := u.clock[jobID]
	u.clockMu.Unlock()
	if projected {
		return state.clockedIn, state.start, nil
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return false, time.Time{}, err
	}
	if j.ID == "" {
		return false, time.Time{}, ErrJobNotFound
	}
	return j.ClockedIn, j.CurrentSessionStart, nil
}

func (u *JobUseCase) rollbackClock(jobID string, prev clockState, hadPrev bool) {
	u.clockMu.Lock()
	if hadPrev {
		u.clock[jobID] = prev
	} else {
		delete(u.clock, jobID)
	}
	u.clockMu.Unlock()
}

// confirmClock drops the projection once the record agrees with it.
func (u *JobUseCase) confirmClock(jobID string) {
	u.clockMu.Lock()
	delete(u.clock, jobID)
	u.clockMu.Unlock()
}

func (u *JobUseCase) publishChange(ctx context.Context, id string, kind interfaces.ChangeKind) {
	if u.feed == nil {
		return
	}
	event := interfaces.ChangeEvent{
		Collection: interfaces.CollectionJobs,
		ID:         id,
		Kind:       kind,
		At:         time.Now().UTC(),
	}
	if err := u.feed.Publish(ctx, event); err != nil {
		log.Printf("[jobs] publish change job=%s failed: %v", id, err)
	}
}
