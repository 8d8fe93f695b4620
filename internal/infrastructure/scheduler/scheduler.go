// Package scheduler wires up the cron job that periodically reconciles the
// shared-job subscription set against the jobs that currently need syncing.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/robfig/cron/v3"

	"jobdesk/internal/usecase"
	"jobdesk/internal/usecase/interfaces"
)

// SyncScheduler wraps robfig/cron and manages the reconciliation loop.
//
// Live subscriptions are opened eagerly as shares are created and accepted;
// the periodic pass is the safety net that repairs the set after missed
// events, dropped connections or process restarts.
type SyncScheduler struct {
	cron *cron.Cron
	jobs interfaces.IJobRepository
	sync *usecase.SharedJobSyncManager
	spec string // cron spec, e.g. "@every 1m"

	mu       sync.Mutex
	contacts map[string]bool
}

// New creates a SyncScheduler that fires every intervalMinutes minutes.
func New(jobs interfaces.IJobRepository, syncManager *usecase.SharedJobSyncManager, intervalMinutes int) *SyncScheduler {
	return &SyncScheduler{
		cron:     cron.New(cron.WithLogger(cron.DefaultLogger)),
		jobs:     jobs,
		sync:     syncManager,
		spec:     fmt.Sprintf("@every %dm", intervalMinutes),
		contacts: make(map[string]bool),
	}
}

// Track adds an account to the reconciliation scope. Accounts are tracked the
// first time a request arrives for them; tracking is idempotent.
func (s *SyncScheduler) Track(ownerContact string) {
	if ownerContact == "" {
		return
	}
	s.mu.Lock()
	s.contacts[ownerContact] = true
	s.mu.Unlock()
}

// Start registers the job and starts the scheduler. Also runs one pass
// immediately so subscriptions are restored without waiting for the first
// tick.
func (s *SyncScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runReconcile(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started, spec: %s", s.spec)

	go s.runReconcile(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler and tears down all subscriptions.
func (s *SyncScheduler) Stop() {
	s.cron.Stop()
	s.sync.DetachAll()
	log.Println("[scheduler] Cron stopped")
}

// runReconcile computes the wanted subscription set across all tracked
// accounts and hands it to the sync manager.
func (s *SyncScheduler) runReconcile(ctx context.Context) {
	s.mu.Lock()
	contacts := make([]string, 0, len(s.contacts))
	for c := range s.contacts {
		contacts = append(contacts, c)
	}
	s.mu.Unlock()
	sort.Strings(contacts)

	if len(contacts) == 0 {
		return
	}

	wanted := make([]string, 0)
	for _, contact := range contacts {
		jobs, err := s.jobs.ListByOwner(ctx, contact)
		if err != nil {
			log.Printf("[scheduler] ListByOwner %s error: %v", contact, err)
			continue
		}
		for _, job := range jobs {
			if job.IsSharedCopy || len(job.AcceptedCollaborators()) > 0 {
				wanted = append(wanted, job.ID)
			}
		}
	}

	if err := s.sync.Reconcile(ctx, wanted); err != nil {
		log.Printf("[scheduler] Reconcile error: %v", err)
	}
}
