package modules

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/marwaELABIDI/ferme-platform/internal/api/handlers"
	"github.com/marwaELABIDI/ferme-platform/internal/usecase"
)

// AdminModule wires administrator capabilities: field management and the
// activity-type catalog.
type AdminModule struct {
	infra      *Infrastructure
	fieldAdmin *usecase.FieldAdmin
}

// NewAdminModule creates the admin module.
func NewAdminModule(infra *Infrastructure) *AdminModule {
	coord := usecase.NewCoordinator(infra.EntClient, infra.Config.Allocation.TxTimeout)
	fieldAdmin := usecase.NewFieldAdmin(coord, infra.EntClient).
		WithAuditLogger(infra.AuditLogger)

	return &AdminModule{
		infra:      infra,
		fieldAdmin: fieldAdmin,
	}
}

func (m *AdminModule) Name() string { return "admin" }

func (m *AdminModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.FieldAdmin = m.fieldAdmin
}

func (m *AdminModule) RegisterWorkers(_ *river.Workers) {}

func (m *AdminModule) Shutdown(context.Context) error { return nil }
