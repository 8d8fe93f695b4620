package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobdesk/internal/domain/entities"
	mock_interfaces "jobdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newJobFixture() (*JobUseCase, *fakeJobRepo, *fakeEstimateRepo, *fakeInvoiceRepo) {
	jobs := newFakeJobRepo()
	estimates := newFakeEstimateRepo()
	invoices := newFakeInvoiceRepo()
	return NewJobUseCase(jobs, estimates, invoices, newMemoryFeed()), jobs, estimates, invoices
}

func TestJobUseCase_CreateJob(t *testing.T) {
	t.Run("missing owner contact", func(t *testing.T) {
		uc, _, _, _ := newJobFixture()
		_, err := uc.CreateJob(context.Background(), "", JobInput{Title: "Deck"})
		if !errors.Is(err, ErrInvalidOwnerContact) {
			t.Fatalf("expected ErrInvalidOwnerContact, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		uc, _, _, _ := newJobFixture()
		_, err := uc.CreateJob(context.Background(), "owner@x.dev", JobInput{Title: "  "})
		if !errors.Is(err, ErrInvalidJobTitle) {
			t.Fatalf("expected ErrInvalidJobTitle, got %v", err)
		}
	})

	t.Run("defaults to scheduled", func(t *testing.T) {
		uc, _, _, _ := newJobFixture()
		created, err := uc.CreateJob(context.Background(), "owner@x.dev", JobInput{Title: "Deck repair", EstimatedCost: "300"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Status != entities.JobStatusScheduled {
			t.Fatalf("unexpected job: %+v", created)
		}
		if created.EstimatedCost != "300" {
			t.Fatalf("flat cost not stored: %q", created.EstimatedCost)
		}
	})
}

func TestJobUseCase_UpdateJob(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, _, _, _ := newJobFixture()
		_, err := uc.UpdateJob(context.Background(), "job-missing", JobInput{})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("flat cost editable while no estimates are linked", func(t *testing.T) {
		uc, jobs, _, _ := newJobFixture()
		ctx := context.Background()
		if _, err := jobs.Create(ctx, entities.Job{ID: "job-1", OwnerContact: "owner@x.dev", Title: "Deck", EstimatedCost: "300"}); err != nil {
			t.Fatalf("seed job: %v", err)
		}

		saved, err := uc.UpdateJob(ctx, "job-1", JobInput{EstimatedCost: "450"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.EstimatedCost != "450" {
			t.Fatalf("expected 450, got %q", saved.EstimatedCost)
		}
	})

	t.Run("derived cost is locked", func(t *testing.T) {
		uc, jobs, _, _ := newJobFixture()
		ctx := context.Background()
		if _, err := jobs.Create(ctx, entities.Job{
			ID: "job-1", OwnerContact: "owner@x.dev", Title: "Deck",
			EstimateIDs: []string{"est-1"}, EstimatedCost: "120",
		}); err != nil {
			t.Fatalf("seed job: %v", err)
		}

		_, err := uc.UpdateJob(ctx, "job-1", JobInput{EstimatedCost: "999"})
		if !errors.Is(err, ErrEstimatedCostLocked) {
			t.Fatalf("expected ErrEstimatedCostLocked, got %v", err)
		}

		// Echoing the current derived value back is not an edit.
		if _, err := uc.UpdateJob(ctx, "job-1", JobInput{EstimatedCost: "120", Title: "Deck phase 2"}); err != nil {
			t.Fatalf("echoed cost rejected: %v", err)
		}
	})
}

func TestJobUseCase_DeleteJob(t *testing.T) {
	t.Run("clears reverse references", func(t *testing.T) {
		uc, jobs, estimates, invoices := newJobFixture()
		ctx := context.Background()
		if _, err := jobs.Create(ctx, entities.Job{
			ID: "job-1", OwnerContact: "owner@x.dev", Title: "Deck",
			EstimateIDs: []string{"est-1"}, InvoiceID: "inv-1",
		}); err != nil {
			t.Fatalf("seed job: %v", err)
		}
		if _, err := estimates.Create(ctx, entities.Estimate{ID: "est-1", OwnerContact: "owner@x.dev", Name: "Quote", JobID: "job-1"}); err != nil {
			t.Fatalf("seed estimate: %v", err)
		}
		if _, err := invoices.Create(ctx, entities.Invoice{ID: "inv-1", OwnerContact: "owner@x.dev", JobID: "job-1", InvoiceNumber: 1}); err != nil {
			t.Fatalf("seed invoice: %v", err)
		}

		if err := uc.DeleteJob(ctx, "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if j, _ := jobs.GetByID(ctx, "job-1"); j.ID != "" {
			t.Fatal("job not deleted")
		}
		est, _ := estimates.GetByID(ctx, "est-1")
		if est.ID == "" {
			t.Fatal("estimate deleted with the job")
		}
		if est.JobID != "" {
			t.Fatalf("estimate backreference not cleared: %q", est.JobID)
		}
		inv, _ := invoices.GetByID(ctx, "inv-1")
		if inv.ID == "" {
			t.Fatal("invoice deleted with the job")
		}
		if inv.JobID != "" {
			t.Fatalf("invoice backreference not cleared: %q", inv.JobID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _, _ := newJobFixture()
		err := uc.DeleteJob(context.Background(), "job-missing")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_Clock(t *testing.T) {
	day := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, jobs *fakeJobRepo) {
		t.Helper()
		if _, err := jobs.Create(context.Background(), entities.Job{ID: "job-1", OwnerContact: "owner@x.dev", Title: "Deck"}); err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	t.Run("clock in then out appends one completed session", func(t *testing.T) {
		uc, jobs, _, _ := newJobFixture()
		ctx := context.Background()
		seed(t, jobs)

		j, err := uc.ClockIn(ctx, "job-1", day)
		if err != nil {
			t.Fatalf("clock in: %v", err)
		}
		if !j.ClockedIn || !j.CurrentSessionStart.Equal(day) {
			t.Fatalf("unexpected clock state: %+v", j)
		}

		j, err = uc.ClockOut(ctx, "job-1", day.Add(3*time.Hour))
		if err != nil {
			t.Fatalf("clock out: %v", err)
		}
		if j.ClockedIn || !j.CurrentSessionStart.IsZero() {
			t.Fatalf("marker not cleared: %+v", j)
		}
		if len(j.WorkSessions) != 1 || j.WorkSessions[0].Hours() != 3 {
			t.Fatalf("unexpected sessions: %+v", j.WorkSessions)
		}
	})

	t.Run("double clock in conflicts", func(t *testing.T) {
		uc, jobs, _, _ := newJobFixture()
		ctx := context.Background()
		seed(t, jobs)

		if _, err := uc.ClockIn(ctx, "job-1", day); err != nil {
			t.Fatalf("clock in: %v", err)
		}
		_, err := uc.ClockIn(ctx, "job-1", day.Add(time.Hour))
		if !errors.Is(err, ErrAlreadyClockedIn) {
			t.Fatalf("expected ErrAlreadyClockedIn, got %v", err)
		}
	})

	t.Run("clock out without clock in conflicts", func(t *testing.T) {
		uc, jobs, _, _ := newJobFixture()
		ctx := context.Background()
		seed(t, jobs)

		_, err := uc.ClockOut(ctx, "job-1", day)
		if !errors.Is(err, ErrNotClockedIn) {
			t.Fatalf("expected ErrNotClockedIn, got %v", err)
		}
	})

	t.Run("clock out before clock in rejected", func(t *testing.T) {
		uc, jobs, _, _ := newJobFixture()
		ctx := context.Background()
		seed(t, jobs)

		if _, err := uc.ClockIn(ctx, "job-1", day); err != nil {
			t.Fatalf("clock in: %v", err)
		}
		_, err := uc.ClockOut(ctx, "job-1", day.Add(-time.Hour))
		if !errors.Is(err, ErrInvalidClockOut) {
			t.Fatalf("expected ErrInvalidClockOut, got %v", err)
		}
	})

	t.Run("clock state reflects record after round trip", func(t *testing.T) {
		uc, jobs, _, _ := newJobFixture()
		ctx := context.Background()
		seed(t, jobs)

		clockedIn, _, err := uc.ClockState(ctx, "job-1")
		if err != nil || clockedIn {
			t.Fatalf("fresh job should be clocked out: %v %v", clockedIn, err)
		}

		if _, err := uc.ClockIn(ctx, "job-1", day); err != nil {
			t.Fatalf("clock in: %v", err)
		}
		clockedIn, start, err := uc.ClockState(ctx, "job-1")
		if err != nil || !clockedIn || !start.Equal(day) {
			t.Fatalf("unexpected state: %v %v %v", clockedIn, start, err)
		}

		if _, err := uc.ClockOut(ctx, "job-1", day.Add(time.Hour)); err != nil {
			t.Fatalf("clock out: %v", err)
		}
		clockedIn, _, err = uc.ClockState(ctx, "job-1")
		if err != nil || clockedIn {
			t.Fatalf("expected clocked out after round trip: %v %v", clockedIn, err)
		}
	})

	t.Run("failed write rolls the projection back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil)
		ctx := context.Background()

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", OwnerContact: "owner@x.dev", Title: "Deck"}, nil)
		jobs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("dynamodb unavailable"))

		if _, err := uc.ClockIn(ctx, "job-1", day); err == nil {
			t.Fatal("expected write failure")
		}

		// The projection reverted, so the next clock-in is allowed again.
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", OwnerContact: "owner@x.dev", Title: "Deck"}, nil)
		jobs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)
		j, err := uc.ClockIn(ctx, "job-1", day)
		if err != nil {
			t.Fatalf("clock in after rollback: %v", err)
		}
		if !j.ClockedIn {
			t.Fatalf("expected clocked in, got %+v", j)
		}
	})
}
