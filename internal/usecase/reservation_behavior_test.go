package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entproject "github.com/marwaELABIDI/ferme-platform/ent/project"
	entreservation "github.com/marwaELABIDI/ferme-platform/ent/reservation"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
)

func (h *harness) submitReservation(t *testing.T, fieldID string, surface float64) *ent.Reservation {
	t.Helper()
	start := time.Now().UTC()
	res, err := h.reservations.Create(context.Background(), CreateReservationInput{
		FieldID:        fieldID,
		ClientID:       "client-1",
		Surface:        surface,
		StartRequested: start,
		EndRequested:   start.AddDate(0, 3, 0),
	})
	if err != nil {
		t.Fatalf("submit reservation on %s (surface %v): %v", fieldID, surface, err)
	}
	return res
}

func TestReservationSubmission(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_submit")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	res := h.submitReservation(t, "f1", 80)
	if res.Status != entreservation.StatusPENDING {
		t.Fatalf("status = %s, want PENDING", res.Status)
	}

	// Submission never touches capacity.
	if got := h.freeCapacity(t, "f1"); got != 150 {
		t.Fatalf("free capacity after submission = %v, want 150", got)
	}

	t.Run("advisory capacity check", func(t *testing.T) {
		_, err := h.reservations.Create(ctx, CreateReservationInput{
			FieldID:        "f1",
			ClientID:       "client-1",
			Surface:        151,
			StartRequested: time.Now().UTC(),
			EndRequested:   time.Now().UTC().AddDate(0, 1, 0),
		})
		if !apperrors.HasCode(err, apperrors.CodeCapacityExceeded) {
			t.Fatalf("oversized request error = %v, want %s", err, apperrors.CodeCapacityExceeded)
		}
	})

	t.Run("end must follow start", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := h.reservations.Create(ctx, CreateReservationInput{
			FieldID:        "f1",
			ClientID:       "client-1",
			Surface:        10,
			StartRequested: now,
			EndRequested:   now,
		})
		if !apperrors.HasCode(err, apperrors.CodeInvalidRequest) {
			t.Fatalf("bad period error = %v, want %s", err, apperrors.CodeInvalidRequest)
		}
	})
}

func TestApprovalCreatesProjectAndConsumesCapacity(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_approve")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	res := h.submitReservation(t, "f1", 80)

	out, err := h.reservations.Decide(ctx, DecideReservationInput{
		ReservationID: res.ID,
		Decision:      "APPROVED",
		SupervisorID:  "supervisor-1",
		DecidedBy:     "admin-1",
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if out.ProjectID == "" {
		t.Fatal("approval must report the created project")
	}
	if got := h.freeCapacity(t, "f1"); got != 70 {
		t.Fatalf("free capacity after approval = %v, want 70", got)
	}

	decided, err := h.client.Reservation.Get(ctx, res.ID)
	if err != nil {
		t.Fatalf("reload reservation: %v", err)
	}
	if decided.Status != entreservation.StatusAPPROVED {
		t.Fatalf("reservation status = %s, want APPROVED", decided.Status)
	}
	if decided.SupervisorID != "supervisor-1" {
		t.Fatalf("supervisor = %q, want supervisor-1", decided.SupervisorID)
	}
	if decided.DecisionDate == nil {
		t.Fatal("decision date must be stamped")
	}

	proj, err := h.client.Project.Get(ctx, out.ProjectID)
	if err != nil {
		t.Fatalf("load created project: %v", err)
	}
	if proj.Status != entproject.StatusA_LANCER {
		t.Fatalf("project status = %s, want A_LANCER", proj.Status)
	}
	if proj.Surface != 80 || proj.FieldID != "f1" || proj.ClientID != "client-1" {
		t.Fatalf("project carries wrong reservation data: %+v", proj)
	}

	t.Run("decided reservation is terminal", func(t *testing.T) {
		_, err := h.reservations.Decide(ctx, DecideReservationInput{
			ReservationID: res.ID,
			Decision:      "REJECTED",
			DecidedBy:     "admin-1",
		})
		if !apperrors.HasCode(err, apperrors.CodeNotPending) {
			t.Fatalf("re-decide error = %v, want %s", err, apperrors.CodeNotPending)
		}
	})
}

func TestRejectionLeavesCapacityUntouched(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_reject")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	res := h.submitReservation(t, "f1", 80)

	out, err := h.reservations.Decide(ctx, DecideReservationInput{
		ReservationID: res.ID,
		Decision:      "REJECTED",
		DecidedBy:     "admin-1",
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if out.ProjectID != "" {
		t.Fatalf("rejection must not create a project, got %q", out.ProjectID)
	}
	if got := h.freeCapacity(t, "f1"); got != 150 {
		t.Fatalf("free capacity after rejection = %v, want 150", got)
	}

	decided, err := h.client.Reservation.Get(ctx, res.ID)
	if err != nil {
		t.Fatalf("reload reservation: %v", err)
	}
	if decided.Status != entreservation.StatusREJECTED {
		t.Fatalf("reservation status = %s, want REJECTED", decided.Status)
	}
	if decided.DecisionDate == nil {
		t.Fatal("decision date must be stamped")
	}
}

func TestApprovalRollsBackWhenCapacityIsGone(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_stale")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	// The request fit at submission time.
	res := h.submitReservation(t, "f1", 100)

	// Capacity drains before the decision.
	h.createProject(t, "f1", 120, "")

	_, err := h.reservations.Decide(ctx, DecideReservationInput{
		ReservationID: res.ID,
		Decision:      "APPROVED",
		SupervisorID:  "supervisor-1",
		DecidedBy:     "admin-1",
	})
	if !apperrors.HasCode(err, apperrors.CodeCapacityExceeded) {
		t.Fatalf("stale approval error = %v, want %s", err, apperrors.CodeCapacityExceeded)
	}

	// The whole decision rolled back: still PENDING, no project, no consumption.
	reloaded, gErr := h.client.Reservation.Get(ctx, res.ID)
	if gErr != nil {
		t.Fatalf("reload reservation: %v", gErr)
	}
	if reloaded.Status != entreservation.StatusPENDING {
		t.Fatalf("reservation status = %s, want PENDING", reloaded.Status)
	}
	if got := h.freeCapacity(t, "f1"); got != 30 {
		t.Fatalf("free capacity = %v, want 30", got)
	}
	count, cErr := h.client.Project.Query().Count(ctx)
	if cErr != nil {
		t.Fatalf("count projects: %v", cErr)
	}
	if count != 1 {
		t.Fatalf("project count = %d, want 1", count)
	}
}

func TestConcurrentDecisionsSingleWinner(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_concurrent")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	res := h.submitReservation(t, "f1", 100)

	const deciders = 2
	var wg sync.WaitGroup
	errs := make([]error, deciders)
	for i := 0; i < deciders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.reservations.Decide(ctx, DecideReservationInput{
				ReservationID: res.ID,
				Decision:      "APPROVED",
				SupervisorID:  "supervisor-1",
				DecidedBy:     "admin-1",
			})
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case apperrors.HasCode(err, apperrors.CodeNotPending):
			losses++
		default:
			t.Fatalf("unexpected decider error: %v", err)
		}
	}
	if wins != 1 || losses != deciders-1 {
		t.Fatalf("wins/losses = %d/%d, want 1/%d", wins, losses, deciders-1)
	}

	// Exactly one project, exactly one consumption.
	count, err := h.client.Project.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if count != 1 {
		t.Fatalf("project count = %d, want 1", count)
	}
	if got := h.freeCapacity(t, "f1"); got != 50 {
		t.Fatalf("free capacity = %v, want 50", got)
	}
}

func TestConcurrentApprovalsRespectCapacity(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_race_capacity")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	// Each request fits on its own; together they overdraw the field.
	first := h.submitReservation(t, "f1", 100)
	second := h.submitReservation(t, "f1", 80)

	ids := []string{first.ID, second.ID}
	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = h.reservations.Decide(ctx, DecideReservationInput{
				ReservationID: id,
				Decision:      "APPROVED",
				SupervisorID:  "supervisor-1",
				DecidedBy:     "admin-1",
			})
		}(i, id)
	}
	wg.Wait()

	winner := -1
	for i, err := range errs {
		switch {
		case err == nil:
			if winner != -1 {
				t.Fatal("both approvals succeeded on insufficient capacity")
			}
			winner = i
		case apperrors.HasCode(err, apperrors.CodeCapacityExceeded):
		default:
			t.Fatalf("approval %d error = %v, want nil or %s", i, err, apperrors.CodeCapacityExceeded)
		}
	}
	if winner == -1 {
		t.Fatal("no approval succeeded")
	}

	surfaces := []float64{100, 80}
	if got, want := h.freeCapacity(t, "f1"), 150-surfaces[winner]; got != want {
		t.Fatalf("free capacity = %v, want %v", got, want)
	}

	count, err := h.client.Project.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if count != 1 {
		t.Fatalf("project count = %d, want 1", count)
	}

	// The losing decision rolled back wholly; its reservation can be
	// re-decided once capacity frees up.
	loser, err := h.client.Reservation.Get(ctx, ids[1-winner])
	if err != nil {
		t.Fatalf("reload losing reservation: %v", err)
	}
	if loser.Status != entreservation.StatusPENDING {
		t.Fatalf("losing reservation status = %s, want PENDING", loser.Status)
	}
}

func TestDeleteReservation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_delete")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	t.Run("pending deletes", func(t *testing.T) {
		res := h.submitReservation(t, "f1", 10)
		if err := h.reservations.Delete(ctx, res.ID, "client-1"); err != nil {
			t.Fatalf("delete pending: %v", err)
		}
	})

	t.Run("decided is history", func(t *testing.T) {
		res := h.submitReservation(t, "f1", 10)
		if _, err := h.reservations.Decide(ctx, DecideReservationInput{
			ReservationID: res.ID,
			Decision:      "REJECTED",
			DecidedBy:     "admin-1",
		}); err != nil {
			t.Fatalf("reject: %v", err)
		}
		err := h.reservations.Delete(ctx, res.ID, "client-1")
		if !apperrors.HasCode(err, apperrors.CodeCannotDelete) {
			t.Fatalf("delete decided error = %v, want %s", err, apperrors.CodeCannotDelete)
		}
	})

	t.Run("unknown reservation", func(t *testing.T) {
		err := h.reservations.Delete(ctx, "missing", "client-1")
		if !apperrors.HasCode(err, apperrors.CodeReservationNotFound) {
			t.Fatalf("delete missing error = %v, want %s", err, apperrors.CodeReservationNotFound)
		}
	})
}

func TestDecideValidation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "res_validate")
	ctx := context.Background()

	t.Run("unknown decision", func(t *testing.T) {
		_, err := h.reservations.Decide(ctx, DecideReservationInput{ReservationID: "r1", Decision: "MAYBE"})
		if !apperrors.HasCode(err, apperrors.CodeInvalidRequest) {
			t.Fatalf("error = %v, want %s", err, apperrors.CodeInvalidRequest)
		}
	})

	t.Run("approval requires a supervisor", func(t *testing.T) {
		_, err := h.reservations.Decide(ctx, DecideReservationInput{ReservationID: "r1", Decision: "APPROVED"})
		if !apperrors.HasCode(err, apperrors.CodeInvalidRequest) {
			t.Fatalf("error = %v, want %s", err, apperrors.CodeInvalidRequest)
		}
	})

	t.Run("initial status must hold capacity", func(t *testing.T) {
		_, err := h.reservations.Decide(ctx, DecideReservationInput{
			ReservationID: "r1",
			Decision:      "APPROVED",
			SupervisorID:  "supervisor-1",
			InitialStatus: "FINALISE",
		})
		if !apperrors.HasCode(err, apperrors.CodeInvalidRequest) {
			t.Fatalf("error = %v, want %s", err, apperrors.CodeInvalidRequest)
		}
	})
}
