package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	entproject "github.com/marwaELABIDI/ferme-platform/ent/project"
	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/metrics"
	"github.com/marwaELABIDI/ferme-platform/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

type harness struct {
	client       *ent.Client
	fields       *FieldAdmin
	projects     *ProjectAllocation
	reservations *ReservationDecision
}

func newHarness(t *testing.T, prefix string) *harness {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	coord := NewCoordinator(client, 10*time.Second)
	recorder := metrics.NewRecorder()

	h := &harness{
		client:       client,
		fields:       NewFieldAdmin(coord, client),
		projects:     NewProjectAllocation(coord, client, recorder),
		reservations: NewReservationDecision(coord, client, recorder),
	}
	h.seedUser(t, "admin-1", entuser.RoleADMIN)
	h.seedUser(t, "supervisor-1", entuser.RoleSUPERVISOR)
	h.seedUser(t, "client-1", entuser.RoleCLIENT)
	return h
}

func (h *harness) seedUser(t *testing.T, id string, role entuser.Role) {
	t.Helper()
	_, err := h.client.User.Create().
		SetID(id).
		SetEmail(id + "@localhost").
		SetPasswordHash("x").
		SetRole(role).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func (h *harness) seedField(t *testing.T, id string, total float64) {
	t.Helper()
	_, err := h.client.Field.Create().
		SetID(id).
		SetName("field-" + id).
		SetTotalCapacity(total).
		SetFreeCapacity(total).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed field %s: %v", id, err)
	}
}

func (h *harness) freeCapacity(t *testing.T, fieldID string) float64 {
	t.Helper()
	f, err := h.client.Field.Query().Where(entfield.IDEQ(fieldID)).Only(context.Background())
	if err != nil {
		t.Fatalf("read field %s: %v", fieldID, err)
	}
	return f.FreeCapacity
}

func (h *harness) createProject(t *testing.T, fieldID string, surface float64, status string) *ent.Project {
	t.Helper()
	proj, err := h.projects.Create(context.Background(), CreateProjectInput{
		FieldID:      fieldID,
		ClientID:     "client-1",
		SupervisorID: "supervisor-1",
		Surface:      surface,
		StartDate:    time.Now().UTC(),
		Status:       status,
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("create project on %s (surface %v): %v", fieldID, surface, err)
	}
	return proj
}

func TestProjectCreationConsumesCapacity(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_create")
	ctx := context.Background()

	f, err := h.fields.Create(ctx, CreateFieldInput{Name: "parcelle-nord", TotalCapacity: 150, CreatedBy: "admin-1"})
	if err != nil {
		t.Fatalf("create field: %v", err)
	}
	if f.FreeCapacity != 150 {
		t.Fatalf("new field free capacity = %v, want 150", f.FreeCapacity)
	}

	proj := h.createProject(t, f.ID, 50, "")
	if proj.Status != entproject.StatusA_LANCER {
		t.Fatalf("default status = %s, want A_LANCER", proj.Status)
	}
	if got := h.freeCapacity(t, f.ID); got != 100 {
		t.Fatalf("free capacity after creation = %v, want 100", got)
	}
}

func TestProjectCreationRejectedWhenCapacityExhausted(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_exhaust")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	h.createProject(t, "f1", 100, "")
	h.createProject(t, "f1", 50, "EN_COURS")
	if got := h.freeCapacity(t, "f1"); got != 0 {
		t.Fatalf("free capacity = %v, want 0", got)
	}

	_, err := h.projects.Create(ctx, CreateProjectInput{
		FieldID:      "f1",
		ClientID:     "client-1",
		SupervisorID: "supervisor-1",
		Surface:      1,
		StartDate:    time.Now().UTC(),
	})
	if !apperrors.HasCode(err, apperrors.CodeCapacityExceeded) {
		t.Fatalf("third project error = %v, want %s", err, apperrors.CodeCapacityExceeded)
	}

	// The rejected creation must leave nothing behind.
	count, cErr := h.client.Project.Query().Count(ctx)
	if cErr != nil {
		t.Fatalf("count projects: %v", cErr)
	}
	if count != 2 {
		t.Fatalf("project count = %d, want 2", count)
	}
}

func TestFinaliseReleasesCapacity(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_finalise")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	p1 := h.createProject(t, "f1", 150, "")
	if got := h.freeCapacity(t, "f1"); got != 0 {
		t.Fatalf("free capacity = %v, want 0", got)
	}

	updated, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{
		ProjectID: p1.ID,
		NewStatus: "FINALISE",
		ActorID:   "supervisor-1",
	})
	if err != nil {
		t.Fatalf("finalise: %v", err)
	}
	if updated.Status != entproject.StatusFINALISE {
		t.Fatalf("status = %s, want FINALISE", updated.Status)
	}
	if got := h.freeCapacity(t, "f1"); got != 150 {
		t.Fatalf("free capacity after finalise = %v, want 150", got)
	}

	// The released surface is immediately available to a new project.
	h.createProject(t, "f1", 120, "")
	if got := h.freeCapacity(t, "f1"); got != 30 {
		t.Fatalf("free capacity = %v, want 30", got)
	}
}

func TestHoldingTransitionsAreCapacityNeutral(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_neutral")
	ctx := context.Background()
	h.seedField(t, "f1", 100)

	p := h.createProject(t, "f1", 60, "")
	for _, next := range []string{"PROGRAMME", "EN_COURS"} {
		if _, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p.ID, NewStatus: next}); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
		if got := h.freeCapacity(t, "f1"); got != 40 {
			t.Fatalf("free capacity after %s = %v, want 40", next, got)
		}
	}

	// Same-status transition is a no-op.
	if _, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p.ID, NewStatus: "EN_COURS"}); err != nil {
		t.Fatalf("same-status transition: %v", err)
	}
	if got := h.freeCapacity(t, "f1"); got != 40 {
		t.Fatalf("free capacity after no-op = %v, want 40", got)
	}
}

func TestReactivationChecksLiveCapacity(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_reactivate")
	ctx := context.Background()
	h.seedField(t, "f1", 150)

	p1 := h.createProject(t, "f1", 100, "")
	if _, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p1.ID, NewStatus: "FINALISE"}); err != nil {
		t.Fatalf("finalise p1: %v", err)
	}

	// Another project consumes the freed surface.
	h.createProject(t, "f1", 120, "")
	if got := h.freeCapacity(t, "f1"); got != 30 {
		t.Fatalf("free capacity = %v, want 30", got)
	}

	_, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p1.ID, NewStatus: "EN_COURS"})
	if !apperrors.HasCode(err, apperrors.CodeCapacityExceeded) {
		t.Fatalf("reactivation error = %v, want %s", err, apperrors.CodeCapacityExceeded)
	}

	// The failed reactivation leaves the project finalized.
	got, gErr := h.client.Project.Get(ctx, p1.ID)
	if gErr != nil {
		t.Fatalf("reload p1: %v", gErr)
	}
	if got.Status != entproject.StatusFINALISE {
		t.Fatalf("p1 status = %s, want FINALISE", got.Status)
	}
}

func TestEditSurfaceAdjustsLedger(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_resize")
	ctx := context.Background()
	h.seedField(t, "f1", 100)

	p := h.createProject(t, "f1", 40, "")

	t.Run("grow", func(t *testing.T) {
		if _, err := h.projects.EditSurface(ctx, EditProjectSurfaceInput{ProjectID: p.ID, NewSurface: 70}); err != nil {
			t.Fatalf("grow: %v", err)
		}
		if got := h.freeCapacity(t, "f1"); got != 30 {
			t.Fatalf("free capacity = %v, want 30", got)
		}
	})

	t.Run("shrink", func(t *testing.T) {
		if _, err := h.projects.EditSurface(ctx, EditProjectSurfaceInput{ProjectID: p.ID, NewSurface: 20}); err != nil {
			t.Fatalf("shrink: %v", err)
		}
		if got := h.freeCapacity(t, "f1"); got != 80 {
			t.Fatalf("free capacity = %v, want 80", got)
		}
	})

	t.Run("grow beyond the field fails atomically", func(t *testing.T) {
		_, err := h.projects.EditSurface(ctx, EditProjectSurfaceInput{ProjectID: p.ID, NewSurface: 101})
		if !apperrors.HasCode(err, apperrors.CodeCapacityExceeded) {
			t.Fatalf("overgrow error = %v, want %s", err, apperrors.CodeCapacityExceeded)
		}
		got, gErr := h.client.Project.Get(ctx, p.ID)
		if gErr != nil {
			t.Fatalf("reload project: %v", gErr)
		}
		if got.Surface != 20 {
			t.Fatalf("surface = %v, want 20 after failed grow", got.Surface)
		}
	})

	t.Run("finalized project resizes without ledger effect", func(t *testing.T) {
		if _, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p.ID, NewStatus: "FINALISE"}); err != nil {
			t.Fatalf("finalise: %v", err)
		}
		if _, err := h.projects.EditSurface(ctx, EditProjectSurfaceInput{ProjectID: p.ID, NewSurface: 95}); err != nil {
			t.Fatalf("resize finalized: %v", err)
		}
		if got := h.freeCapacity(t, "f1"); got != 100 {
			t.Fatalf("free capacity = %v, want 100", got)
		}
	})
}

func TestDeleteProjectReleasesCapacity(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_delete")
	ctx := context.Background()
	h.seedField(t, "f1", 100)

	p := h.createProject(t, "f1", 60, "")
	if err := h.projects.Delete(ctx, p.ID, "admin-1"); err != nil {
		t.Fatalf("delete holding project: %v", err)
	}
	if got := h.freeCapacity(t, "f1"); got != 100 {
		t.Fatalf("free capacity after delete = %v, want 100", got)
	}

	// Deleting a finalized project does not release anything twice.
	p2 := h.createProject(t, "f1", 30, "")
	if _, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p2.ID, NewStatus: "FINALISE"}); err != nil {
		t.Fatalf("finalise p2: %v", err)
	}
	if err := h.projects.Delete(ctx, p2.ID, "admin-1"); err != nil {
		t.Fatalf("delete finalized project: %v", err)
	}
	if got := h.freeCapacity(t, "f1"); got != 100 {
		t.Fatalf("free capacity = %v, want 100", got)
	}
}

func TestFieldDeactivationGuard(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_deactivate")
	ctx := context.Background()
	h.seedField(t, "f1", 100)

	p := h.createProject(t, "f1", 10, "")

	inactive := string(domain.FieldInactive)
	_, err := h.fields.Update(ctx, UpdateFieldInput{FieldID: "f1", Status: &inactive})
	if !apperrors.HasCode(err, apperrors.CodeInvalidTransition) {
		t.Fatalf("deactivate with holder error = %v, want %s", err, apperrors.CodeInvalidTransition)
	}

	if _, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p.ID, NewStatus: "FINALISE"}); err != nil {
		t.Fatalf("finalise: %v", err)
	}
	updated, err := h.fields.Update(ctx, UpdateFieldInput{FieldID: "f1", Status: &inactive})
	if err != nil {
		t.Fatalf("deactivate without holders: %v", err)
	}
	if updated.Status != entfield.StatusINACTIVE {
		t.Fatalf("status = %s, want INACTIVE", updated.Status)
	}

	// No new work enters an inactive field.
	_, err = h.projects.Create(ctx, CreateProjectInput{
		FieldID:      "f1",
		ClientID:     "client-1",
		SupervisorID: "supervisor-1",
		Surface:      5,
		StartDate:    time.Now().UTC(),
	})
	if !apperrors.HasCode(err, apperrors.CodeFieldInactive) {
		t.Fatalf("create on inactive field error = %v, want %s", err, apperrors.CodeFieldInactive)
	}

	// Reactivating a finalized project would make it a holder again, so
	// it is refused on an inactive field too.
	_, err = h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p.ID, NewStatus: "EN_COURS"})
	if !apperrors.HasCode(err, apperrors.CodeFieldInactive) {
		t.Fatalf("reactivate on inactive field error = %v, want %s", err, apperrors.CodeFieldInactive)
	}
	reloaded, gErr := h.client.Project.Get(ctx, p.ID)
	if gErr != nil {
		t.Fatalf("reload project: %v", gErr)
	}
	if reloaded.Status != entproject.StatusFINALISE {
		t.Fatalf("project status = %s, want FINALISE", reloaded.Status)
	}
}

func TestFieldDeleteGuard(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_field_delete")
	ctx := context.Background()
	h.seedField(t, "f1", 100)

	p := h.createProject(t, "f1", 10, "")

	err := h.fields.Delete(ctx, "f1", "admin-1")
	if !apperrors.HasCode(err, apperrors.CodeCannotDelete) {
		t.Fatalf("delete with holder error = %v, want %s", err, apperrors.CodeCannotDelete)
	}

	if _, err := h.projects.ChangeStatus(ctx, ChangeProjectStatusInput{ProjectID: p.ID, NewStatus: "FINALISE"}); err != nil {
		t.Fatalf("finalise: %v", err)
	}
	if err := h.fields.Delete(ctx, "f1", "admin-1"); err != nil {
		t.Fatalf("delete field: %v", err)
	}

	// Finalized history goes with the field.
	count, cErr := h.client.Project.Query().Count(ctx)
	if cErr != nil {
		t.Fatalf("count projects: %v", cErr)
	}
	if count != 0 {
		t.Fatalf("project count = %d, want 0", count)
	}
}

func TestFieldCapacityShrinkGuard(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "alloc_shrink")
	ctx := context.Background()
	h.seedField(t, "f1", 100)
	h.createProject(t, "f1", 60, "")

	smaller := 50.0
	_, err := h.fields.Update(ctx, UpdateFieldInput{FieldID: "f1", TotalCapacity: &smaller})
	if !apperrors.HasCode(err, apperrors.CodeInsufficientCapacity) {
		t.Fatalf("shrink below usage error = %v, want %s", err, apperrors.CodeInsufficientCapacity)
	}

	larger := 200.0
	updated, err := h.fields.Update(ctx, UpdateFieldInput{FieldID: "f1", TotalCapacity: &larger})
	if err != nil {
		t.Fatalf("grow: %v", err)
	}
	if updated.TotalCapacity != 200 || updated.FreeCapacity != 140 {
		t.Fatalf("total/free = %v/%v, want 200/140", updated.TotalCapacity, updated.FreeCapacity)
	}
}
