package modules

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/marwaELABIDI/ferme-platform/internal/api/handlers"
	"github.com/marwaELABIDI/ferme-platform/internal/jobs"
	"github.com/marwaELABIDI/ferme-platform/internal/usecase"
)

// AllocationModule wires the capacity-affecting use cases: project
// lifecycle and reservation decisions, both running through one shared
// transaction coordinator.
type AllocationModule struct {
	infra        *Infrastructure
	coordinator  *usecase.Coordinator
	projects     *usecase.ProjectAllocation
	reservations *usecase.ReservationDecision
}

// NewAllocationModule creates the allocation module with explicit constructor wiring.
func NewAllocationModule(infra *Infrastructure) *AllocationModule {
	coord := usecase.NewCoordinator(infra.EntClient, infra.Config.Allocation.TxTimeout)

	projects := usecase.NewProjectAllocation(coord, infra.EntClient, infra.Metrics).
		WithAuditLogger(infra.AuditLogger).
		WithTriggers(infra.Notifier)
	reservations := usecase.NewReservationDecision(coord, infra.EntClient, infra.Metrics).
		WithAuditLogger(infra.AuditLogger).
		WithTriggers(infra.Notifier)

	return &AllocationModule{
		infra:        infra,
		coordinator:  coord,
		projects:     projects,
		reservations: reservations,
	}
}

func (m *AllocationModule) Name() string { return "allocation" }

func (m *AllocationModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Projects = m.projects
	deps.Reservations = m.reservations
}

func (m *AllocationModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewCapacityReconcileWorker(m.infra.EntClient))
}

func (m *AllocationModule) Shutdown(context.Context) error { return nil }
