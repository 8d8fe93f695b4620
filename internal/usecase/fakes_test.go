package usecase

import (
	"context"
	"errors"
	"sync"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"
)

// In-memory fakes for multi-step scenario tests. The feed delivers
// synchronously, so propagation is deterministic without sleeps.

type memoryFeed struct {
	mu   sync.Mutex
	subs map[string][]*feedSub
}

type feedSub struct {
	fn func(interfaces.ChangeEvent)
}

func newMemoryFeed() *memoryFeed {
	return &memoryFeed{subs: make(map[string][]*feedSub)}
}

func feedKey(collection, id string) string { return collection + "/" + id }

func (f *memoryFeed) Publish(_ context.Context, event interfaces.ChangeEvent) error {
	f.mu.Lock()
	subs := append([]*feedSub(nil), f.subs[feedKey(event.Collection, event.ID)]...)
	f.mu.Unlock()
	for _, s := range subs {
		s.fn(event)
	}
	return nil
}

func (f *memoryFeed) Subscribe(_ context.Context, collection, id string, onChange func(interfaces.ChangeEvent)) (func(), error) {
	sub := &feedSub{fn: onChange}
	key := feedKey(collection, id)
	f.mu.Lock()
	f.subs[key] = append(f.subs[key], sub)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		kept := f.subs[key][:0]
		for _, s := range f.subs[key] {
			if s != sub {
				kept = append(kept, s)
			}
		}
		f.subs[key] = kept
	}, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]entities.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]entities.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, j entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[j.ID]; exists {
		return entities.Job{}, errors.New("conditional check failed")
	}
	r.jobs[j.ID] = j
	return j, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[id], nil
}

func (r *fakeJobRepo) Save(_ context.Context, j entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[j.ID] = j
	return j, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) ListByOwner(_ context.Context, ownerContact string) ([]entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Job, 0)
	for _, j := range r.jobs {
		if j.OwnerContact == ownerContact {
			out = append(out, j)
		}
	}
	return out, nil
}

type fakeEstimateRepo struct {
	mu        sync.Mutex
	estimates map[string]entities.Estimate
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{estimates: make(map[string]entities.Estimate)}
}

func (r *fakeEstimateRepo) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.estimates[e.ID]; exists {
		return entities.Estimate{}, errors.New("conditional check failed")
	}
	r.estimates[e.ID] = e
	return e, nil
}

func (r *fakeEstimateRepo) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.estimates[id], nil
}

func (r *fakeEstimateRepo) Save(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.estimates[e.ID] = e
	return e, nil
}

func (r *fakeEstimateRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.estimates, id)
	return nil
}

func (r *fakeEstimateRepo) ListByOwner(_ context.Context, ownerContact string) ([]entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Estimate, 0)
	for _, e := range r.estimates {
		if e.OwnerContact == ownerContact {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEstimateRepo) ListByJobID(_ context.Context, jobID string) ([]entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Estimate, 0)
	for _, e := range r.estimates {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeInvitationRepo struct {
	mu          sync.Mutex
	invitations map[string]entities.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]entities.Invitation)}
}

func (r *fakeInvitationRepo) Create(_ context.Context, i entities.Invitation) (entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.invitations[i.ID]; exists {
		return entities.Invitation{}, errors.New("conditional check failed")
	}
	r.invitations[i.ID] = i
	return i, nil
}

func (r *fakeInvitationRepo) GetByID(_ context.Context, id string) (entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invitations[id], nil
}

func (r *fakeInvitationRepo) Save(_ context.Context, i entities.Invitation) (entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations[i.ID] = i
	return i, nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invitations, id)
	return nil
}

func (r *fakeInvitationRepo) ListByJobID(_ context.Context, jobID string) ([]entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Invitation, 0)
	for _, i := range r.invitations {
		if i.JobID == jobID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) ListByCollaborator(_ context.Context, collaboratorContact string) ([]entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Invitation, 0)
	for _, i := range r.invitations {
		if i.CollaboratorContact == collaboratorContact {
			out = append(out, i)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]entities.Invoice
	counters map[string]int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]entities.Invoice),
		counters: make(map[string]int64),
	}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, i entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.invoices[i.ID]; exists {
		return entities.Invoice{}, errors.New("conditional check failed")
	}
	r.invoices[i.ID] = i
	return i, nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) Save(_ context.Context, i entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices[i.ID] = i
	return i, nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) ListByOwner(_ context.Context, ownerContact string) ([]entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Invoice, 0)
	for _, i := range r.invoices {
		if i.OwnerContact == ownerContact {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) NextInvoiceNumber(_ context.Context, ownerContact string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[ownerContact]++
	return r.counters[ownerContact], nil
}

var (
	_ interfaces.IJobRepository        = (*fakeJobRepo)(nil)
	_ interfaces.IEstimateRepository   = (*fakeEstimateRepo)(nil)
	_ interfaces.IInvitationRepository = (*fakeInvitationRepo)(nil)
	_ interfaces.IInvoiceRepository    = (*fakeInvoiceRepo)(nil)
	_ interfaces.IChangeFeed           = (*memoryFeed)(nil)
)
