package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"
)

// SubscriptionHandle identifies one attached job subscription.
type SubscriptionHandle struct {
	jobID string
}

// JobID returns the job the handle is attached to.
func (h SubscriptionHandle) JobID() string { return h.jobID }

// SharedJobSyncManager keeps an owner's job and its collaborators' shared
// copies converged for the lifetime of an active share.
//
// One subscription is held per job identity; re-attaching an attached job is
// a no-op, so running attachment logic on every refresh cannot leak
// subscriptions. Propagation is whole-document last-write-wins: the owner's
// document is authoritative for the shared field subset, and work sessions
// never cross documents (the labor aggregator reads copies directly), so the
// two sides do not contend for the same fields in normal operation.
type SharedJobSyncManager struct {
	jobs interfaces.IJobRepository
	feed interfaces.IChangeFeed

	mu   sync.Mutex
	subs map[string]func()
}

func NewSharedJobSyncManager(jobs interfaces.IJobRepository, feed interfaces.IChangeFeed) *SharedJobSyncManager {
	return &SharedJobSyncManager{
		jobs: jobs,
		feed: feed,
		subs: make(map[string]func()),
	}
}

// Attach opens the live subscription for jobID and runs one immediate
// propagation pass so a fresh share converges without waiting for the next
// change. For an owner's job the subscription watches the job itself and
// pushes shared fields into every accepted copy; for a shared copy it watches
// the source job and refreshes the copy from it.
func (m *SharedJobSyncManager) Attach(ctx context.Context, jobID string) (SubscriptionHandle, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return SubscriptionHandle{}, ErrInvalidJobID
	}

	m.mu.Lock()
	_, held := m.subs[jobID]
	m.mu.Unlock()
	if held {
		return SubscriptionHandle{jobID: jobID}, nil
	}

	job, err := m.jobs.GetByID(ctx, jobID)
	if err != nil {
		return SubscriptionHandle{}, err
	}
	if job.ID == "" {
		return SubscriptionHandle{}, ErrJobNotFound
	}

	watchedID := job.ID
	onChange := func(interfaces.ChangeEvent) {
		if err := m.pushToCopies(ctx, jobID); err != nil {
			log.Printf("[sync] propagate job=%s failed: %v", jobID, err)
		}
	}
	if job.IsSharedCopy {
		watchedID = job.SourceJobID
		onChange = func(interfaces.ChangeEvent) {
			if err := m.refreshFromSource(ctx, jobID); err != nil {
				log.Printf("[sync] refresh shared copy=%s failed: %v", jobID, err)
			}
		}
	}

	unsubscribe, err := m.feed.Subscribe(ctx, interfaces.CollectionJobs, watchedID, onChange)
	if err != nil {
		return SubscriptionHandle{}, err
	}

	m.mu.Lock()
	if _, held := m.subs[jobID]; held {
		// Lost the race against a concurrent Attach for the same job.
		m.mu.Unlock()
		unsubscribe()
		return SubscriptionHandle{jobID: jobID}, nil
	}
	m.subs[jobID] = unsubscribe
	m.mu.Unlock()

	onChange(interfaces.ChangeEvent{Collection: interfaces.CollectionJobs, ID: watchedID, Kind: interfaces.ChangeKindUpdated, At: time.Now().UTC()})
	return SubscriptionHandle{jobID: jobID}, nil
}

// Detach cancels the handle's subscription. Detaching an unknown handle is a
// no-op.
func (m *SharedJobSyncManager) Detach(h SubscriptionHandle) {
	m.mu.Lock()
	unsubscribe, held := m.subs[h.jobID]
	delete(m.subs, h.jobID)
	m.mu.Unlock()
	if held {
		unsubscribe()
	}
}

// Reconcile diffs the wanted job set against the held subscriptions,
// attaching exactly the missing ones and detaching exactly the removed ones.
func (m *SharedJobSyncManager) Reconcile(ctx context.Context, wantedJobIDs []string) error {
	wanted := make(map[string]bool, len(wantedJobIDs))
	for _, id := range wantedJobIDs {
		if id = strings.TrimSpace(id); id != "" {
			wanted[id] = true
		}
	}

	m.mu.Lock()
	stale := make([]string, 0)
	for id := range m.subs {
		if !wanted[id] {
			stale = append(stale, id)
		}
	}
	held := make(map[string]bool, len(m.subs))
	for id := range m.subs {
		held[id] = true
	}
	m.mu.Unlock()

	for _, id := range stale {
		m.Detach(SubscriptionHandle{jobID: id})
	}

	var firstErr error
	for id := range wanted {
		if held[id] {
			continue
		}
		if _, err := m.Attach(ctx, id); err != nil {
			log.Printf("[sync] reconcile attach job=%s failed: %v", id, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// DetachAll tears down every held subscription; used on shutdown of the
// owning session so no background work leaks.
func (m *SharedJobSyncManager) DetachAll() {
	m.mu.Lock()
	subs := m.subs
	m.subs = make(map[string]func())
	m.mu.Unlock()
	for _, unsubscribe := range subs {
		unsubscribe()
	}
}

// Attached returns the currently held job ids.
func (m *SharedJobSyncManager) Attached() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.subs))
	for id := range m.subs {
		out = append(out, id)
	}
	return out
}

// pushToCopies propagates the owner job's shared field subset into every
// accepted collaborator copy. A copy that cannot be resolved is logged and
// skipped; the remaining copies still converge.
func (m *SharedJobSyncManager) pushToCopies(ctx context.Context, jobID string) error {
	job, err := m.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" || job.IsSharedCopy {
		return nil
	}

	for _, link := range job.AcceptedCollaborators() {
		if link.SharedJobID == "" {
			continue
		}
		copyJob, err := m.jobs.GetByID(ctx, link.SharedJobID)
		if err != nil || copyJob.ID == "" {
			log.Printf("[sync] job=%s: shared copy %s unavailable: %v", jobID, link.SharedJobID, err)
			continue
		}
		if !applySharedFields(&copyJob, job) {
			continue
		}
		copyJob.UpdatedAt = time.Now().UTC()
		if _, err := m.jobs.Save(ctx, copyJob); err != nil {
			log.Printf("[sync] job=%s: writing shared copy %s failed: %v", jobID, copyJob.ID, err)
			continue
		}
		m.publishJobChange(ctx, copyJob.ID)
	}
	return nil
}

// refreshFromSource pulls the source job's shared field subset into the copy.
func (m *SharedJobSyncManager) refreshFromSource(ctx context.Context, copyID string) error {
	copyJob, err := m.jobs.GetByID(ctx, copyID)
	if err != nil {
		return err
	}
	if copyJob.ID == "" || !copyJob.IsSharedCopy {
		return nil
	}

	source, err := m.jobs.GetByID(ctx, copyJob.SourceJobID)
	if err != nil {
		return err
	}
	if source.ID == "" {
		// Source gone; the share outlived its job. Leave the copy untouched.
		return nil
	}

	if !applySharedFields(&copyJob, source) {
		return nil
	}
	copyJob.UpdatedAt = time.Now().UTC()
	if _, err := m.jobs.Save(ctx, copyJob); err != nil {
		return err
	}
	m.publishJobChange(ctx, copyJob.ID)
	return nil
}

// applySharedFields copies the owner-writable shared subset onto the copy and
// reports whether anything changed. Cost, estimate links, invoice link and
// notes stay owner-side; work sessions and clock state stay collaborator-side.
func applySharedFields(copyJob *entities.Job, source entities.Job) bool {
	changed := copyJob.Title != source.Title ||
		copyJob.Client != source.Client ||
		copyJob.Location != source.Location ||
		copyJob.Status != source.Status ||
		!copyJob.ScheduledAt.Equal(source.ScheduledAt)
	if !changed {
		return false
	}
	copyJob.Title = source.Title
	copyJob.Client = source.Client
	copyJob.Location = source.Location
	copyJob.Status = source.Status
	copyJob.ScheduledAt = source.ScheduledAt
	return true
}

func (m *SharedJobSyncManager) publishJobChange(ctx context.Context, id string) {
	if m.feed == nil {
		return
	}
	event := interfaces.ChangeEvent{
		Collection: interfaces.CollectionJobs,
		ID:         id,
		Kind:       interfaces.ChangeKindUpdated,
		At:         time.Now().UTC(),
	}
	if err := m.feed.Publish(ctx, event); err != nil {
		log.Printf("[sync] publish change job=%s failed: %v", id, err)
	}
}
